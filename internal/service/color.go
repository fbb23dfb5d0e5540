package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/colorpal/colorpal-server/internal/domain"
	domainerrors "github.com/colorpal/colorpal-server/internal/errors"
	"github.com/colorpal/colorpal-server/internal/id"
	"github.com/colorpal/colorpal-server/internal/search"
	"github.com/colorpal/colorpal-server/internal/store"
)

// ColorService manages the shared swatch catalogue. The server derives the
// rgb, hsl and cmyk strings from hex; clients never send them.
type ColorService struct {
	store  store.Store
	search searchSync
	logger *slog.Logger
}

// NewColorService creates a colour service. idx may be nil.
func NewColorService(s store.Store, idx Indexer, logger *slog.Logger) *ColorService {
	logger = orDiscard(logger)
	return &ColorService{store: s, search: searchSync{idx: idx, logger: logger}, logger: logger}
}

// CreateColorRequest saves a named manufacturer swatch. Every field is required.
type CreateColorRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Hex     string `json:"hex" validate:"required,colorhex"`
	Company string `json:"company" validate:"required,max=100"`
	Code    string `json:"code" validate:"required,max=50"`
}

// UpdateColorRequest replaces a swatch. Only hex is required; blank name,
// company or code clear the stored value.
type UpdateColorRequest struct {
	Name    string `json:"name,omitempty" validate:"max=100"`
	Hex     string `json:"hex" validate:"required,colorhex"`
	Company string `json:"company,omitempty" validate:"max=100"`
	Code    string `json:"code,omitempty" validate:"max=50"`
}

// Create saves a new swatch on behalf of userID.
func (s *ColorService) Create(ctx context.Context, userID string, req CreateColorRequest) (*domain.Color, error) {
	trimColorFields(&req.Name, &req.Company, &req.Code)
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	colorID, err := id.Generate(id.PrefixColor)
	if err != nil {
		return nil, fmt.Errorf("generate color ID: %w", err)
	}
	c := &domain.Color{
		Record:    domain.Record{ID: colorID},
		Name:      req.Name,
		Company:   req.Company,
		Code:      req.Code,
		CreatedBy: userID,
	}
	if err := c.SetHex(req.Hex); err != nil {
		return nil, err
	}
	c.InitTimestamps()

	if err := s.store.CreateColor(ctx, c); err != nil {
		return nil, fmt.Errorf("create color: %w", err)
	}
	s.search.put(search.ColorDocument(c))

	s.logger.Debug("color created", "color_id", c.ID, "hex", c.Hex)
	return c, nil
}

// Get loads one swatch.
func (s *ColorService) Get(ctx context.Context, colorID string) (*domain.Color, error) {
	c, err := s.store.GetColor(ctx, colorID)
	if err != nil {
		return nil, notFoundOr(err, "color", "get color")
	}
	return c, nil
}

// List returns every swatch, newest first, or in order when it is set.
func (s *ColorService) List(ctx context.Context, order domain.SortOrder) ([]*domain.Color, error) {
	colors, err := s.store.ListColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	if order != "" {
		domain.SortColors(colors, order)
	}
	return colors, nil
}

// Update replaces a swatch's fields.
func (s *ColorService) Update(ctx context.Context, colorID string, req UpdateColorRequest) (*domain.Color, error) {
	trimColorFields(&req.Name, &req.Company, &req.Code)
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	c, err := s.store.GetColor(ctx, colorID)
	if err != nil {
		return nil, notFoundOr(err, "color", "get color")
	}
	oldHex := c.Hex
	if err := c.SetHex(req.Hex); err != nil {
		return nil, err
	}
	if c.Hex != oldHex {
		if err := s.checkPaletteHex(ctx, c); err != nil {
			return nil, err
		}
	}
	c.Name = req.Name
	c.Company = req.Company
	c.Code = req.Code
	c.Touch()

	if err := s.store.UpdateColor(ctx, c); err != nil {
		return nil, notFoundOr(err, "color", "update color")
	}
	s.search.put(search.ColorDocument(c))
	return c, nil
}

// Delete removes a swatch and drops it from every palette that used it.
func (s *ColorService) Delete(ctx context.Context, colorID string) error {
	if err := s.store.DeleteColor(ctx, colorID); err != nil {
		return notFoundOr(err, "color", "delete color")
	}
	s.search.remove(colorID)
	s.logger.Debug("color deleted", "color_id", colorID)
	return nil
}

// checkPaletteHex rejects a new hex when a palette holding c already has
// another swatch with that hex.
func (s *ColorService) checkPaletteHex(ctx context.Context, c *domain.Color) error {
	paletteIDs, err := s.store.ListPaletteIDsForColor(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("list palettes for color: %w", err)
	}
	palettes, err := s.store.GetPalettesByIDs(ctx, paletteIDs)
	if err != nil {
		return fmt.Errorf("load palettes: %w", err)
	}
	for _, p := range palettes {
		for _, other := range p.Colors {
			if other.ID != c.ID && other.Hex == c.Hex {
				return domainerrors.Conflictf("palette %s already contains %s", p.Name, c.Hex)
			}
		}
	}
	return nil
}

func trimColorFields(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
