package domain

import "github.com/colorpal/colorpal-server/internal/color"

// Access controls who may see a palette.
type Access string

const (
	AccessPublic  Access = "PUBLIC"
	AccessPrivate Access = "PRIVATE"
	AccessFriends Access = "FRIENDS"
)

// Valid reports whether a is a known access level.
func (a Access) Valid() bool {
	switch a {
	case AccessPublic, AccessPrivate, AccessFriends:
		return true
	}
	return false
}

// Palette is a named, ordered set of saved colours owned by one user.
type Palette struct {
	Record
	Name       string       `json:"name"`
	SchemeType color.Scheme `json:"scheme_type"`
	Access     Access       `json:"access"`
	UserID     string       `json:"user_id"`
	ColorIDs   []string     `json:"color_ids"`
	Colors     []*Color     `json:"colors,omitempty"`
}

// IsOwnedBy reports whether userID owns the palette.
func (p *Palette) IsOwnedBy(userID string) bool {
	return p.UserID == userID
}

// VisibleTo decides whether viewerID may read the palette. friendOfOwner
// says whether viewer and owner are friends.
func (p *Palette) VisibleTo(viewerID string, friendOfOwner bool) bool {
	switch {
	case p.IsOwnedBy(viewerID):
		return true
	case p.Access == AccessPublic:
		return true
	case p.Access == AccessFriends:
		return friendOfOwner
	default:
		return false
	}
}

// HasHex reports whether one of the loaded colours already uses hex.
func (p *Palette) HasHex(hex string) bool {
	for _, c := range p.Colors {
		if c.Hex == hex {
			return true
		}
	}
	return false
}
