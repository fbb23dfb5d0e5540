// Package store defines ColorPal's persistence contract.
package store

import (
	"context"

	"github.com/colorpal/colorpal-server/internal/domain"
)

// Store is the persistence interface consumed by the services.
type Store interface {
	Close() error
	Ping(ctx context.Context) error

	// Users
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUsersByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
	CountUsers(ctx context.Context) (int, error)

	// Sessions
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, tokenHash string) (*domain.Session, error)
	UpdateSession(ctx context.Context, session *domain.Session) error
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int, error)

	// Colors
	CreateColor(ctx context.Context, c *domain.Color) error
	GetColor(ctx context.Context, id string) (*domain.Color, error)
	GetColorsByIDs(ctx context.Context, ids []string) ([]*domain.Color, error)
	ListColors(ctx context.Context) ([]*domain.Color, error)
	UpdateColor(ctx context.Context, c *domain.Color) error
	DeleteColor(ctx context.Context, id string) error
	ListPaletteIDsForColor(ctx context.Context, colorID string) ([]string, error)

	// Palettes
	CreatePalette(ctx context.Context, p *domain.Palette) error
	GetPalette(ctx context.Context, id string) (*domain.Palette, error)
	GetPalettesByIDs(ctx context.Context, ids []string) ([]*domain.Palette, error)
	ListPalettesByUser(ctx context.Context, userID string) ([]*domain.Palette, error)
	ListPalettes(ctx context.Context) ([]*domain.Palette, error)
	UpdatePalette(ctx context.Context, p *domain.Palette) error
	DeletePalette(ctx context.Context, id string) error

	// Social graph
	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	AreFriends(ctx context.Context, a, b string) (bool, error)
	RemoveFriendship(ctx context.Context, a, b string) error
	CreateFriendRequest(ctx context.Context, req *domain.FriendRequest) error
	GetFriendRequest(ctx context.Context, id string) (*domain.FriendRequest, error)
	GetPendingFriendRequestBetween(ctx context.Context, a, b string) (*domain.FriendRequest, error)
	ListPendingFriendRequests(ctx context.Context, receiverID string) ([]*domain.FriendRequest, error)
	RespondToFriendRequest(ctx context.Context, id string, status domain.FriendRequestStatus) error
}
