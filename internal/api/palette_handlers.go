package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/service"
)

func (s *Server) registerPaletteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "createPalette",
		Method:        http.MethodPost,
		Path:          "/api/v1/palettes",
		Summary:       "Create a palette",
		Description:   "Creates a palette from saved colours. Access defaults to PRIVATE.",
		Tags:          []string{"Palettes"},
		Security:      bearer,
		DefaultStatus: http.StatusCreated,
	}, s.handleCreatePalette)

	huma.Register(s.api, huma.Operation{
		OperationID: "listMyPalettes",
		Method:      http.MethodGet,
		Path:        "/api/v1/palettes",
		Summary:     "List my palettes",
		Tags:        []string{"Palettes"},
		Security:    bearer,
	}, s.handleListMyPalettes)

	huma.Register(s.api, huma.Operation{
		OperationID: "getPalette",
		Method:      http.MethodGet,
		Path:        "/api/v1/palettes/{id}",
		Summary:     "Get a palette",
		Description: "Palettes the caller may not see are reported as not found",
		Tags:        []string{"Palettes"},
		Security:    bearer,
	}, s.handleGetPalette)

	huma.Register(s.api, huma.Operation{
		OperationID: "updatePalette",
		Method:      http.MethodPatch,
		Path:        "/api/v1/palettes/{id}",
		Summary:     "Update a palette",
		Description: "Changes only the fields present in the body. Owner only.",
		Tags:        []string{"Palettes"},
		Security:    bearer,
	}, s.handleUpdatePalette)

	huma.Register(s.api, huma.Operation{
		OperationID: "deletePalette",
		Method:      http.MethodDelete,
		Path:        "/api/v1/palettes/{id}",
		Summary:     "Delete a palette",
		Tags:        []string{"Palettes"},
		Security:    bearer,
	}, s.handleDeletePalette)

	huma.Register(s.api, huma.Operation{
		OperationID: "addPaletteColor",
		Method:      http.MethodPost,
		Path:        "/api/v1/palettes/{id}/colors",
		Summary:     "Add a colour to a palette",
		Tags:        []string{"Palettes"},
		Security:    bearer,
	}, s.handleAddPaletteColor)

	huma.Register(s.api, huma.Operation{
		OperationID: "listUserPalettes",
		Method:      http.MethodGet,
		Path:        "/api/v1/palettes/user/{id}",
		Summary:     "List a user's palettes",
		Description: "Returns the palettes of another user that the caller may see",
		Tags:        []string{"Palettes"},
		Security:    bearer,
	}, s.handleListUserPalettes)
}

// CreatePaletteInput wraps a new palette for Huma.
type CreatePaletteInput struct {
	Body service.CreatePaletteRequest
}

// UpdatePaletteInput wraps a partial palette update for Huma.
type UpdatePaletteInput struct {
	ID   string `path:"id" doc:"Palette ID"`
	Body service.UpdatePaletteRequest
}

// AddPaletteColorInput wraps a colour addition for Huma.
type AddPaletteColorInput struct {
	ID   string `path:"id" doc:"Palette ID"`
	Body service.AddColorRequest
}

// PaletteOutput wraps a palette for Huma.
type PaletteOutput struct {
	Body *domain.Palette
}

// PalettesOutput wraps a palette list for Huma.
type PalettesOutput struct {
	Body []*domain.Palette
}

func palettesOutput(ps []*domain.Palette) *PalettesOutput {
	if ps == nil {
		ps = []*domain.Palette{}
	}
	return &PalettesOutput{Body: ps}
}

func (s *Server) handleCreatePalette(ctx context.Context, input *CreatePaletteInput) (*PaletteOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.services.Palettes.Create(ctx, userID, input.Body)
	if err != nil {
		return nil, err
	}
	return &PaletteOutput{Body: p}, nil
}

func (s *Server) handleListMyPalettes(ctx context.Context, _ *struct{}) (*PalettesOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	ps, err := s.services.Palettes.ListMine(ctx, userID)
	if err != nil {
		return nil, err
	}
	return palettesOutput(ps), nil
}

func (s *Server) handleGetPalette(ctx context.Context, input *IDInput) (*PaletteOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.services.Palettes.Get(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}
	return &PaletteOutput{Body: p}, nil
}

func (s *Server) handleUpdatePalette(ctx context.Context, input *UpdatePaletteInput) (*PaletteOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.services.Palettes.Update(ctx, userID, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &PaletteOutput{Body: p}, nil
}

func (s *Server) handleDeletePalette(ctx context.Context, input *IDInput) (*MessageOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.services.Palettes.Delete(ctx, userID, input.ID); err != nil {
		return nil, err
	}
	return message("Palette deleted"), nil
}

func (s *Server) handleAddPaletteColor(ctx context.Context, input *AddPaletteColorInput) (*PaletteOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.services.Palettes.AddColor(ctx, userID, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &PaletteOutput{Body: p}, nil
}

func (s *Server) handleListUserPalettes(ctx context.Context, input *IDInput) (*PalettesOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	ps, err := s.services.Palettes.ListForUser(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}
	return palettesOutput(ps), nil
}
