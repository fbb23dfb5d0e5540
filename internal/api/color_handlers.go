package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/service"
)

func (s *Server) registerColorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "createColor",
		Method:        http.MethodPost,
		Path:          "/api/v1/colors",
		Summary:       "Save a colour",
		Description:   "Saves a swatch. RGB, HSL and CMYK are derived from the hex value.",
		Tags:          []string{"Colors"},
		Security:      bearer,
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateColor)

	huma.Register(s.api, huma.Operation{
		OperationID: "listColors",
		Method:      http.MethodGet,
		Path:        "/api/v1/colors",
		Summary:     "List colours",
		Description: "Returns the shared colour catalogue, newest first unless a sort is given",
		Tags:        []string{"Colors"},
		Security:    bearer,
	}, s.handleListColors)

	huma.Register(s.api, huma.Operation{
		OperationID: "getColor",
		Method:      http.MethodGet,
		Path:        "/api/v1/colors/{id}",
		Summary:     "Get a colour",
		Tags:        []string{"Colors"},
		Security:    bearer,
	}, s.handleGetColor)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateColor",
		Method:      http.MethodPut,
		Path:        "/api/v1/colors/{id}",
		Summary:     "Replace a colour",
		Tags:        []string{"Colors"},
		Security:    bearer,
	}, s.handleUpdateColor)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteColor",
		Method:      http.MethodDelete,
		Path:        "/api/v1/colors/{id}",
		Summary:     "Delete a colour",
		Description: "Deletes the swatch and removes it from every palette",
		Tags:        []string{"Colors"},
		Security:    bearer,
	}, s.handleDeleteColor)
}

// CreateColorInput wraps a new swatch for Huma.
type CreateColorInput struct {
	Body service.CreateColorRequest
}

// ListColorsInput selects the catalogue order.
type ListColorsInput struct {
	Sort string `query:"sort" enum:"hue,name,company" doc:"Sort order; newest first when empty"`
}

// UpdateColorInput wraps a swatch replacement for Huma.
type UpdateColorInput struct {
	ID   string `path:"id" doc:"Colour ID"`
	Body service.UpdateColorRequest
}

// ColorOutput wraps a colour for Huma.
type ColorOutput struct {
	Body *domain.Color
}

// ColorsOutput wraps a colour list for Huma.
type ColorsOutput struct {
	Body []*domain.Color
}

func (s *Server) handleCreateColor(ctx context.Context, input *CreateColorInput) (*ColorOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.services.Colors.Create(ctx, userID, input.Body)
	if err != nil {
		return nil, err
	}
	return &ColorOutput{Body: c}, nil
}

func (s *Server) handleListColors(ctx context.Context, input *ListColorsInput) (*ColorsOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}
	colors, err := s.services.Colors.List(ctx, domain.SortOrder(input.Sort))
	if err != nil {
		return nil, err
	}
	if colors == nil {
		colors = []*domain.Color{}
	}
	return &ColorsOutput{Body: colors}, nil
}

func (s *Server) handleGetColor(ctx context.Context, input *IDInput) (*ColorOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}
	c, err := s.services.Colors.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &ColorOutput{Body: c}, nil
}

func (s *Server) handleUpdateColor(ctx context.Context, input *UpdateColorInput) (*ColorOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}
	c, err := s.services.Colors.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &ColorOutput{Body: c}, nil
}

func (s *Server) handleDeleteColor(ctx context.Context, input *IDInput) (*MessageOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}
	if err := s.services.Colors.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return message("Color deleted"), nil
}
