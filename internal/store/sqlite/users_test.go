package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/store"
)

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := makeTestUser("user-1", "Alice@Example.com")
	user.Role = domain.RoleAdmin
	user.Image = "https://example.com/a.png"
	user.LastLoginAt = time.Now()
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := s.GetUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "Alice@Example.com" {
		t.Errorf("Email: got %q", got.Email)
	}
	if got.Role != domain.RoleAdmin {
		t.Errorf("Role: got %q", got.Role)
	}
	if got.Image != user.Image {
		t.Errorf("Image: got %q", got.Image)
	}
	if !got.CreatedAt.Equal(user.CreatedAt) {
		t.Errorf("CreatedAt: got %v, want %v", got.CreatedAt, user.CreatedAt)
	}
	if got.LastLoginAt.IsZero() {
		t.Error("LastLoginAt not persisted")
	}
	if got.FriendIDs == nil || got.FollowerIDs == nil || got.FollowingIDs == nil {
		t.Error("relation lists should be empty, not nil")
	}
}

func TestGetUserByEmail_CaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateUser(ctx, makeTestUser("user-1", "Alice@Example.com")); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := s.GetUserByEmail(ctx, "  alice@EXAMPLE.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != "user-1" {
		t.Errorf("got %q", got.ID)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateUser(ctx, makeTestUser("user-1", "a@example.com")); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	err := s.CreateUser(ctx, makeTestUser("user-2", "A@example.com"))
	if !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetUser(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, "user-1")

	u.Name = "Renamed"
	u.Touch()
	if err := s.UpdateUser(ctx, u); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	got, _ := s.GetUser(ctx, "user-1")
	if got.Name != "Renamed" {
		t.Errorf("Name: got %q", got.Name)
	}

	ghost := makeTestUser("ghost", "ghost@example.com")
	if err := s.UpdateUser(ctx, ghost); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetUsersByIDsAndCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustCreateUser(t, s, "user-1")
	mustCreateUser(t, s, "user-2")
	mustCreateUser(t, s, "user-3")

	users, err := s.GetUsersByIDs(ctx, []string{"user-3", "user-1", "missing"})
	if err != nil {
		t.Fatalf("GetUsersByIDs: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	n, err := s.CountUsers(ctx)
	if err != nil || n != 3 {
		t.Errorf("CountUsers: got %d, %v", n, err)
	}

	all, err := s.ListUsers(ctx)
	if err != nil || len(all) != 3 {
		t.Errorf("ListUsers: got %d, %v", len(all), err)
	}
}
