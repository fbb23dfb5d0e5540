// Package search keeps a bleve full-text index of colours, palettes and
// users so the search endpoint can answer name and email lookups without
// scanning the database.
package search

import (
	"strings"

	"github.com/colorpal/colorpal-server/internal/domain"
)

// DocType discriminates documents in the shared index.
type DocType string

// Document types.
const (
	DocTypeColor   DocType = "color"
	DocTypePalette DocType = "palette"
	DocTypeUser    DocType = "user"
)

// Document is the indexed form of any searchable record.
type Document struct {
	ID   string
	Type DocType
	Name string

	// Colours
	Hex     string
	Company string
	Code    string

	// Palettes
	OwnerID string
	Access  domain.Access

	// Users
	Email string

	UpdatedAt int64
}

// ToMap flattens the document into the field names used by the mapping.
// Name and email are also written lowercased into keyword fields so
// substring lookups see the whole value as one term.
func (d *Document) ToMap() map[string]any {
	m := map[string]any{
		"id":         d.ID,
		"type":       string(d.Type),
		"name":       d.Name,
		"name_exact": strings.ToLower(d.Name),
		"updated_at": d.UpdatedAt,
	}
	if d.Hex != "" {
		m["hex"] = d.Hex
	}
	if d.Company != "" {
		m["company"] = d.Company
	}
	if d.Code != "" {
		m["code"] = d.Code
	}
	if d.OwnerID != "" {
		m["owner_id"] = d.OwnerID
	}
	if d.Access != "" {
		m["access"] = string(d.Access)
	}
	if d.Email != "" {
		m["email"] = strings.ToLower(d.Email)
	}
	return m
}

// ColorDocument indexes a saved swatch.
func ColorDocument(c *domain.Color) *Document {
	return &Document{
		ID:        c.ID,
		Type:      DocTypeColor,
		Name:      c.Name,
		Hex:       c.Hex,
		Company:   c.Company,
		Code:      c.Code,
		UpdatedAt: c.UpdatedAt.UnixMilli(),
	}
}

// PaletteDocument indexes a palette with the fields access filtering needs.
func PaletteDocument(p *domain.Palette) *Document {
	return &Document{
		ID:        p.ID,
		Type:      DocTypePalette,
		Name:      p.Name,
		OwnerID:   p.UserID,
		Access:    p.Access,
		UpdatedAt: p.UpdatedAt.UnixMilli(),
	}
}

// UserDocument indexes a user by display name and email.
func UserDocument(u *domain.User) *Document {
	return &Document{
		ID:        u.ID,
		Type:      DocTypeUser,
		Name:      u.Name,
		Email:     u.Email,
		UpdatedAt: u.UpdatedAt.UnixMilli(),
	}
}
