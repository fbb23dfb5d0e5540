package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/service"
)

func (s *Server) registerSocialRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "followUser",
		Method:      http.MethodPost,
		Path:        "/api/v1/users/follow",
		Summary:     "Follow a user",
		Tags:        []string{"Social"},
		Security:    bearer,
	}, s.handleFollow)

	huma.Register(s.api, huma.Operation{
		OperationID: "unfollowUser",
		Method:      http.MethodDelete,
		Path:        "/api/v1/users/follow/{id}",
		Summary:     "Unfollow a user",
		Tags:        []string{"Social"},
		Security:    bearer,
	}, s.handleUnfollow)

	huma.Register(s.api, huma.Operation{
		OperationID:   "sendFriendRequest",
		Method:        http.MethodPost,
		Path:          "/api/v1/users/friends",
		Summary:       "Send a friend request",
		Tags:          []string{"Social"},
		Security:      bearer,
		DefaultStatus: http.StatusCreated,
	}, s.handleSendFriendRequest)

	huma.Register(s.api, huma.Operation{
		OperationID: "listFriends",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/friends",
		Summary:     "List friends",
		Tags:        []string{"Social"},
		Security:    bearer,
	}, s.handleListFriends)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeFriend",
		Method:      http.MethodDelete,
		Path:        "/api/v1/users/friends/{id}",
		Summary:     "Remove a friend",
		Description: "Ends the friendship and drops follows in both directions",
		Tags:        []string{"Social"},
		Security:    bearer,
	}, s.handleRemoveFriend)

	huma.Register(s.api, huma.Operation{
		OperationID: "listFriendRequests",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/friend-requests",
		Summary:     "List pending friend requests",
		Tags:        []string{"Social"},
		Security:    bearer,
	}, s.handleListFriendRequests)

	huma.Register(s.api, huma.Operation{
		OperationID: "respondToFriendRequest",
		Method:      http.MethodPut,
		Path:        "/api/v1/users/friend-requests/{id}",
		Summary:     "Accept or reject a friend request",
		Tags:        []string{"Social"},
		Security:    bearer,
	}, s.handleRespondToFriendRequest)
}

// TargetInput names the user a social action applies to.
type TargetInput struct {
	Body service.TargetRequest
}

// RespondInput answers a friend request.
type RespondInput struct {
	ID   string `path:"id" doc:"Friend request ID"`
	Body service.RespondRequest
}

// FriendRequestOutput wraps a friend request for Huma.
type FriendRequestOutput struct {
	Body *domain.FriendRequest
}

// FriendRequestsOutput wraps pending requests for Huma.
type FriendRequestsOutput struct {
	Body []service.FriendRequestView
}

// UserSummariesOutput wraps a user list for Huma.
type UserSummariesOutput struct {
	Body []service.UserSummary
}

func (s *Server) handleFollow(ctx context.Context, input *TargetInput) (*MessageOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.services.Social.Follow(ctx, userID, input.Body.UserID); err != nil {
		return nil, err
	}
	return message("Followed"), nil
}

func (s *Server) handleUnfollow(ctx context.Context, input *IDInput) (*MessageOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.services.Social.Unfollow(ctx, userID, input.ID); err != nil {
		return nil, err
	}
	return message("Unfollowed"), nil
}

func (s *Server) handleSendFriendRequest(ctx context.Context, input *TargetInput) (*FriendRequestOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	req, err := s.services.Social.SendFriendRequest(ctx, userID, input.Body.UserID)
	if err != nil {
		return nil, err
	}
	return &FriendRequestOutput{Body: req}, nil
}

func (s *Server) handleListFriends(ctx context.Context, _ *struct{}) (*UserSummariesOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	friends, err := s.services.Social.ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserSummariesOutput{Body: friends}, nil
}

func (s *Server) handleRemoveFriend(ctx context.Context, input *IDInput) (*MessageOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.services.Social.RemoveFriend(ctx, userID, input.ID); err != nil {
		return nil, err
	}
	return message("Friend removed"), nil
}

func (s *Server) handleListFriendRequests(ctx context.Context, _ *struct{}) (*FriendRequestsOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	reqs, err := s.services.Social.ListFriendRequests(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &FriendRequestsOutput{Body: reqs}, nil
}

func (s *Server) handleRespondToFriendRequest(ctx context.Context, input *RespondInput) (*FriendRequestOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}
	req, err := s.services.Social.RespondToFriendRequest(ctx, userID, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &FriendRequestOutput{Body: req}, nil
}
