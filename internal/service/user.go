package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/search"
	"github.com/colorpal/colorpal-server/internal/store"
)

// UserSummary is the public face of a user in lists and search results.
type UserSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Image       string `json:"image,omitempty"`
	AvatarColor string `json:"avatar_color"`
}

// Summarize reduces u to its public fields.
func Summarize(u *domain.User) UserSummary {
	return UserSummary{
		ID:          u.ID,
		Name:        u.DisplayName(),
		Email:       u.Email,
		Image:       u.Image,
		AvatarColor: u.AvatarColor(),
	}
}

func summarizeAll(users []*domain.User) []UserSummary {
	out := make([]UserSummary, len(users))
	for i, u := range users {
		out[i] = Summarize(u)
	}
	return out
}

// Profile is a user as seen by another (or the same) user.
type Profile struct {
	UserSummary
	JoinedAt       time.Time `json:"joined_at"`
	FriendCount    int       `json:"friend_count"`
	FollowerCount  int       `json:"follower_count"`
	FollowingCount int       `json:"following_count"`
	PaletteCount   int       `json:"palette_count"`

	IsSelf         bool `json:"is_self"`
	IsFriend       bool `json:"is_friend"`
	IsFollowing    bool `json:"is_following"`
	FollowsYou     bool `json:"follows_you"`
	RequestPending bool `json:"request_pending"`
}

// UpdateProfileRequest renames the caller.
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// UserService reads profiles and lets users edit their own.
type UserService struct {
	store    store.Store
	palettes *PaletteService
	search   searchSync
	logger   *slog.Logger
}

// NewUserService creates a user service. idx may be nil.
func NewUserService(s store.Store, palettes *PaletteService, idx Indexer, logger *slog.Logger) *UserService {
	logger = orDiscard(logger)
	return &UserService{store: s, palettes: palettes, search: searchSync{idx: idx, logger: logger}, logger: logger}
}

// Me returns the caller's full record.
func (s *UserService) Me(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user", "get user")
	}
	return u, nil
}

// GetProfile returns userID's profile with the viewer's relationship to it.
// PaletteCount only counts palettes the viewer may see.
func (s *UserService) GetProfile(ctx context.Context, viewerID, userID string) (*Profile, error) {
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user", "get user")
	}
	visible, err := s.palettes.ListForUser(ctx, viewerID, userID)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		UserSummary:    Summarize(u),
		JoinedAt:       u.CreatedAt,
		FriendCount:    len(u.FriendIDs),
		FollowerCount:  len(u.FollowerIDs),
		FollowingCount: len(u.FollowingIDs),
		PaletteCount:   len(visible),
		IsSelf:         viewerID == userID,
		IsFriend:       u.IsFriend(viewerID),
		IsFollowing:    slices.Contains(u.FollowerIDs, viewerID),
		FollowsYou:     u.IsFollowing(viewerID),
	}
	if !p.IsSelf && !p.IsFriend {
		_, err := s.store.GetPendingFriendRequestBetween(ctx, viewerID, userID)
		switch {
		case err == nil:
			p.RequestPending = true
		case !errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("check friend request: %w", err)
		}
	}
	return p, nil
}

// UpdateName sets the caller's display name.
func (s *UserService) UpdateName(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Validate(req); err != nil {
		return nil, err
	}
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user", "get user")
	}
	u.Name = req.Name
	u.Touch()
	if err := s.store.UpdateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	s.search.put(search.UserDocument(u))
	return u, nil
}
