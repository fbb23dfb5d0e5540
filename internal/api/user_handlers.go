package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/service"
)

func (s *Server) registerUserRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getCurrentUser",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/me",
		Summary:     "Get current user",
		Tags:        []string{"Users"},
		Security:    bearer,
	}, s.handleGetCurrentUser)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateCurrentUser",
		Method:      http.MethodPut,
		Path:        "/api/v1/users/me",
		Summary:     "Update current user",
		Description: "Changes the caller's display name",
		Tags:        []string{"Users"},
		Security:    bearer,
	}, s.handleUpdateCurrentUser)

	huma.Register(s.api, huma.Operation{
		OperationID: "getUserProfile",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}",
		Summary:     "Get user profile",
		Description: "Returns a profile with counts and the caller's relationship to the user",
		Tags:        []string{"Users"},
		Security:    bearer,
	}, s.handleGetUserProfile)
}

// UserOutput wraps a full user record for Huma.
type UserOutput struct {
	Body *domain.User
}

// UpdateUserInput wraps the profile update for Huma.
type UpdateUserInput struct {
	Body service.UpdateProfileRequest
}

// IDInput is a request addressed by path ID.
type IDInput struct {
	ID string `path:"id" doc:"Resource ID"`
}

// ProfileOutput wraps a profile for Huma.
type ProfileOutput struct {
	Body *service.Profile
}

func (s *Server) handleGetCurrentUser(ctx context.Context, _ *struct{}) (*UserOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.services.Users.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserOutput{Body: u}, nil
}

func (s *Server) handleUpdateCurrentUser(ctx context.Context, input *UpdateUserInput) (*UserOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.services.Users.UpdateName(ctx, userID, input.Body)
	if err != nil {
		return nil, err
	}
	return &UserOutput{Body: u}, nil
}

func (s *Server) handleGetUserProfile(ctx context.Context, input *IDInput) (*ProfileOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.services.Users.GetProfile(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}
	return &ProfileOutput{Body: p}, nil
}
