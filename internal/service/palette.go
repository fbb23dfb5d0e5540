package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/colorpal/colorpal-server/internal/color"
	"github.com/colorpal/colorpal-server/internal/domain"
	domainerrors "github.com/colorpal/colorpal-server/internal/errors"
	"github.com/colorpal/colorpal-server/internal/id"
	"github.com/colorpal/colorpal-server/internal/search"
	"github.com/colorpal/colorpal-server/internal/store"
)

// maxPaletteColors bounds how many swatches one palette can hold.
const maxPaletteColors = 50

// PaletteService manages user palettes and their visibility.
type PaletteService struct {
	store  store.Store
	search searchSync
	logger *slog.Logger
}

// NewPaletteService creates a palette service. idx may be nil.
func NewPaletteService(s store.Store, idx Indexer, logger *slog.Logger) *PaletteService {
	logger = orDiscard(logger)
	return &PaletteService{store: s, search: searchSync{idx: idx, logger: logger}, logger: logger}
}

// CreatePaletteRequest creates a palette from saved colours.
type CreatePaletteRequest struct {
	Name       string        `json:"name" validate:"required,max=100"`
	SchemeType string        `json:"scheme_type" validate:"required,scheme"`
	ColorIDs   []string      `json:"color_ids" validate:"required,min=1,max=50,dive,required"`
	Access     domain.Access `json:"access,omitempty" validate:"omitempty,access"`
}

// UpdatePaletteRequest changes only the fields that are set.
type UpdatePaletteRequest struct {
	Name       *string        `json:"name,omitempty" validate:"omitempty,max=100"`
	SchemeType *string        `json:"scheme_type,omitempty" validate:"omitempty,scheme"`
	Access     *domain.Access `json:"access,omitempty" validate:"omitempty,access"`
	ColorIDs   []string       `json:"color_ids,omitempty" validate:"omitempty,min=1,max=50,dive,required"`
}

// Create saves a palette owned by userID. Access defaults to PRIVATE.
func (s *PaletteService) Create(ctx context.Context, userID string, req CreatePaletteRequest) (*domain.Palette, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Validate(req); err != nil {
		return nil, err
	}
	if req.Access == "" {
		req.Access = domain.AccessPrivate
	}
	scheme, err := color.ParseScheme(req.SchemeType)
	if err != nil {
		return nil, err
	}
	colors, err := s.resolveColors(ctx, req.ColorIDs)
	if err != nil {
		return nil, err
	}

	paletteID, err := id.Generate(id.PrefixPalette)
	if err != nil {
		return nil, fmt.Errorf("generate palette ID: %w", err)
	}
	p := &domain.Palette{
		Record:     domain.Record{ID: paletteID},
		Name:       req.Name,
		SchemeType: scheme,
		Access:     req.Access,
		UserID:     userID,
		ColorIDs:   req.ColorIDs,
		Colors:     colors,
	}
	p.InitTimestamps()

	if err := s.store.CreatePalette(ctx, p); err != nil {
		return nil, fmt.Errorf("create palette: %w", err)
	}
	s.search.put(search.PaletteDocument(p))

	s.logger.Info("palette created", "palette_id", p.ID, "user_id", userID, "colors", len(p.ColorIDs))
	return p, nil
}

// ListMine returns userID's palettes, most recently updated first.
func (s *PaletteService) ListMine(ctx context.Context, userID string) ([]*domain.Palette, error) {
	palettes, err := s.store.ListPalettesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list palettes: %w", err)
	}
	return palettes, nil
}

// Get loads a palette the viewer may see. Palettes hidden from the viewer
// are reported as missing.
func (s *PaletteService) Get(ctx context.Context, viewerID, paletteID string) (*domain.Palette, error) {
	p, err := s.store.GetPalette(ctx, paletteID)
	if err != nil {
		return nil, notFoundOr(err, "palette", "get palette")
	}
	visible, err := s.visible(ctx, viewerID, p)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, domainerrors.NotFound("palette not found")
	}
	return p, nil
}

// ListForUser returns ownerID's palettes that viewerID may see.
func (s *PaletteService) ListForUser(ctx context.Context, viewerID, ownerID string) ([]*domain.Palette, error) {
	if _, err := s.store.GetUser(ctx, ownerID); err != nil {
		return nil, notFoundOr(err, "user", "get user")
	}
	palettes, err := s.store.ListPalettesByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list palettes: %w", err)
	}

	friends := false
	if viewerID != ownerID {
		if friends, err = s.store.AreFriends(ctx, viewerID, ownerID); err != nil {
			return nil, fmt.Errorf("check friendship: %w", err)
		}
	}

	out := make([]*domain.Palette, 0, len(palettes))
	for _, p := range palettes {
		if p.VisibleTo(viewerID, friends) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update applies a partial change. Only the owner may update.
func (s *PaletteService) Update(ctx context.Context, userID, paletteID string, req UpdatePaletteRequest) (*domain.Palette, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, domainerrors.ValidationWithDetails("validation failed", map[string]string{"name": "is required"})
		}
		req.Name = &trimmed
	}
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	p, err := s.owned(ctx, userID, paletteID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.SchemeType != nil {
		if p.SchemeType, err = color.ParseScheme(*req.SchemeType); err != nil {
			return nil, err
		}
	}
	if req.Access != nil {
		p.Access = *req.Access
	}
	if req.ColorIDs != nil {
		if p.Colors, err = s.resolveColors(ctx, req.ColorIDs); err != nil {
			return nil, err
		}
		p.ColorIDs = req.ColorIDs
	}
	p.Touch()

	if err := s.store.UpdatePalette(ctx, p); err != nil {
		return nil, notFoundOr(err, "palette", "update palette")
	}
	s.search.put(search.PaletteDocument(p))
	return p, nil
}

// AddColorRequest appends a saved colour to a palette.
type AddColorRequest struct {
	ColorID string `json:"color_id" validate:"required"`
}

// AddColor appends a colour. A palette never holds two swatches with the
// same hex.
func (s *PaletteService) AddColor(ctx context.Context, userID, paletteID string, req AddColorRequest) (*domain.Palette, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}
	p, err := s.owned(ctx, userID, paletteID)
	if err != nil {
		return nil, err
	}
	if len(p.ColorIDs) >= maxPaletteColors {
		return nil, domainerrors.Validationf("a palette holds at most %d colors", maxPaletteColors)
	}

	c, err := s.store.GetColor(ctx, req.ColorID)
	if err != nil {
		return nil, notFoundOr(err, "color", "get color")
	}
	if p.HasHex(c.Hex) {
		return nil, domainerrors.Conflictf("palette already contains %s", c.Hex)
	}

	p.ColorIDs = append(p.ColorIDs, c.ID)
	p.Colors = append(p.Colors, c)
	p.Touch()
	if err := s.store.UpdatePalette(ctx, p); err != nil {
		return nil, fmt.Errorf("update palette: %w", err)
	}
	s.search.put(search.PaletteDocument(p))
	return p, nil
}

// Delete removes a palette. Only the owner may delete it.
func (s *PaletteService) Delete(ctx context.Context, userID, paletteID string) error {
	if _, err := s.owned(ctx, userID, paletteID); err != nil {
		return err
	}
	if err := s.store.DeletePalette(ctx, paletteID); err != nil {
		return notFoundOr(err, "palette", "delete palette")
	}
	s.search.remove(paletteID)
	s.logger.Info("palette deleted", "palette_id", paletteID, "user_id", userID)
	return nil
}

func (s *PaletteService) owned(ctx context.Context, userID, paletteID string) (*domain.Palette, error) {
	p, err := s.store.GetPalette(ctx, paletteID)
	if err != nil {
		return nil, notFoundOr(err, "palette", "get palette")
	}
	if !p.IsOwnedBy(userID) {
		return nil, domainerrors.Forbidden("palette belongs to another user")
	}
	return p, nil
}

func (s *PaletteService) visible(ctx context.Context, viewerID string, p *domain.Palette) (bool, error) {
	if p.Access != domain.AccessFriends || p.IsOwnedBy(viewerID) {
		return p.VisibleTo(viewerID, false), nil
	}
	friends, err := s.store.AreFriends(ctx, viewerID, p.UserID)
	if err != nil {
		return false, fmt.Errorf("check friendship: %w", err)
	}
	return p.VisibleTo(viewerID, friends), nil
}

// resolveColors loads ids in order, rejecting duplicate ids, unknown ids and
// two swatches with the same hex.
func (s *PaletteService) resolveColors(ctx context.Context, ids []string) ([]*domain.Color, error) {
	seen := make(map[string]bool, len(ids))
	for _, cid := range ids {
		if seen[cid] {
			return nil, domainerrors.Validationf("color %s is listed twice", cid)
		}
		seen[cid] = true
	}

	colors, err := s.store.GetColorsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load colors: %w", err)
	}
	if len(colors) != len(ids) {
		found := make(map[string]bool, len(colors))
		for _, c := range colors {
			found[c.ID] = true
		}
		for _, cid := range ids {
			if !found[cid] {
				return nil, domainerrors.NotFoundf("color %s not found", cid)
			}
		}
	}

	hexes := make(map[string]bool, len(colors))
	for _, c := range colors {
		if hexes[c.Hex] {
			return nil, domainerrors.Conflictf("palette already contains %s", c.Hex)
		}
		hexes[c.Hex] = true
	}
	return colors, nil
}
