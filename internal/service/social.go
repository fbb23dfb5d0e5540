package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/colorpal/colorpal-server/internal/domain"
	domainerrors "github.com/colorpal/colorpal-server/internal/errors"
	"github.com/colorpal/colorpal-server/internal/id"
	"github.com/colorpal/colorpal-server/internal/store"
)

// SocialService manages follows, friend requests and friendships.
type SocialService struct {
	store  store.Store
	logger *slog.Logger
}

// NewSocialService creates a social service.
func NewSocialService(s store.Store, logger *slog.Logger) *SocialService {
	return &SocialService{store: s, logger: orDiscard(logger)}
}

// TargetRequest names the user an action applies to.
type TargetRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// RespondRequest answers a friend request.
type RespondRequest struct {
	Action domain.FriendRequestAction `json:"action" validate:"required,oneof=accept reject"`
}

// FriendRequestView is a pending request with its sender's summary.
type FriendRequestView struct {
	ID        string                     `json:"id"`
	Status    domain.FriendRequestStatus `json:"status"`
	CreatedAt time.Time                  `json:"created_at"`
	Sender    UserSummary                `json:"sender"`
}

// Follow makes userID follow targetID. Following twice is a no-op.
func (s *SocialService) Follow(ctx context.Context, userID, targetID string) error {
	if err := s.checkTarget(ctx, userID, targetID, "follow"); err != nil {
		return err
	}
	if err := s.store.Follow(ctx, userID, targetID); err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	s.logger.Debug("user followed", "user_id", userID, "target_id", targetID)
	return nil
}

// Unfollow stops userID following targetID.
func (s *SocialService) Unfollow(ctx context.Context, userID, targetID string) error {
	if err := s.checkTarget(ctx, userID, targetID, "unfollow"); err != nil {
		return err
	}
	if err := s.store.Unfollow(ctx, userID, targetID); err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	return nil
}

// SendFriendRequest asks targetID to become userID's friend.
func (s *SocialService) SendFriendRequest(ctx context.Context, userID, targetID string) (*domain.FriendRequest, error) {
	if err := s.checkTarget(ctx, userID, targetID, "befriend"); err != nil {
		return nil, err
	}

	friends, err := s.store.AreFriends(ctx, userID, targetID)
	if err != nil {
		return nil, fmt.Errorf("check friendship: %w", err)
	}
	if friends {
		return nil, domainerrors.Conflict("already friends with this user")
	}

	_, err = s.store.GetPendingFriendRequestBetween(ctx, userID, targetID)
	switch {
	case err == nil:
		return nil, domainerrors.Conflict("friend request already exists")
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("check pending request: %w", err)
	}

	reqID, err := id.Generate(id.PrefixFriendRequest)
	if err != nil {
		return nil, fmt.Errorf("generate request ID: %w", err)
	}
	now := time.Now()
	req := &domain.FriendRequest{
		ID:         reqID,
		SenderID:   userID,
		ReceiverID: targetID,
		Status:     domain.FriendRequestPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.CreateFriendRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("create friend request: %w", err)
	}

	s.logger.Info("friend request sent", "request_id", req.ID, "sender_id", userID, "receiver_id", targetID)
	return req, nil
}

// ListFriendRequests returns pending requests sent to userID, newest first.
func (s *SocialService) ListFriendRequests(ctx context.Context, userID string) ([]FriendRequestView, error) {
	reqs, err := s.store.ListPendingFriendRequests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friend requests: %w", err)
	}
	out := make([]FriendRequestView, 0, len(reqs))
	for _, r := range reqs {
		v := FriendRequestView{ID: r.ID, Status: r.Status, CreatedAt: r.CreatedAt}
		if r.Sender != nil {
			v.Sender = Summarize(r.Sender)
		} else {
			v.Sender = UserSummary{ID: r.SenderID}
		}
		out = append(out, v)
	}
	return out, nil
}

// RespondToFriendRequest accepts or rejects a pending request. Only the
// receiver may answer, and only once.
func (s *SocialService) RespondToFriendRequest(ctx context.Context, userID, requestID string, req RespondRequest) (*domain.FriendRequest, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	fr, err := s.store.GetFriendRequest(ctx, requestID)
	if err != nil {
		return nil, notFoundOr(err, "friend request", "get friend request")
	}
	if fr.ReceiverID != userID {
		return nil, domainerrors.Forbidden("only the receiver can respond to a friend request")
	}
	if !fr.IsPending() {
		return nil, domainerrors.Conflictf("friend request already %s", fr.Status)
	}

	status := domain.FriendRequestRejected
	if req.Action == domain.ActionAccept {
		status = domain.FriendRequestAccepted
	}
	if err := s.store.RespondToFriendRequest(ctx, requestID, status); err != nil {
		return nil, fmt.Errorf("respond to friend request: %w", err)
	}
	fr.Status = status
	fr.UpdatedAt = time.Now()

	s.logger.Info("friend request answered", "request_id", requestID, "status", status)
	return fr, nil
}

// RemoveFriend ends a friendship and drops follows in both directions.
func (s *SocialService) RemoveFriend(ctx context.Context, userID, friendID string) error {
	if err := s.checkTarget(ctx, userID, friendID, "unfriend"); err != nil {
		return err
	}
	if err := s.store.RemoveFriendship(ctx, userID, friendID); err != nil {
		return fmt.Errorf("remove friendship: %w", err)
	}
	s.logger.Info("friend removed", "user_id", userID, "friend_id", friendID)
	return nil
}

// ListFriends returns userID's friends in name order.
func (s *SocialService) ListFriends(ctx context.Context, userID string) ([]UserSummary, error) {
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user", "get user")
	}
	friends, err := s.store.GetUsersByIDs(ctx, u.FriendIDs)
	if err != nil {
		return nil, fmt.Errorf("load friends: %w", err)
	}
	return summarizeAll(friends), nil
}

// checkTarget rejects self-targeting and unknown users.
func (s *SocialService) checkTarget(ctx context.Context, userID, targetID, verb string) error {
	if targetID == "" {
		return domainerrors.ValidationWithDetails("validation failed", map[string]string{"user_id": "is required"})
	}
	if targetID == userID {
		return domainerrors.Validationf("cannot %s yourself", verb)
	}
	if _, err := s.store.GetUser(ctx, targetID); err != nil {
		return notFoundOr(err, "user", "get user")
	}
	return nil
}
