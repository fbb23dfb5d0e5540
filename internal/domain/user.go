package domain

import (
	"strings"
	"time"

	"github.com/colorpal/colorpal-server/internal/color"
)

// Role is the user's permission level.
type Role string

const (
	// RoleAdmin is granted to the first registered user.
	RoleAdmin Role = "admin"
	// RoleMember is the default role.
	RoleMember Role = "member"
)

// User is an account. The relationship slices are filled from the
// friendship and follow tables on read and are never written directly.
type User struct {
	Record
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Image        string    `json:"image,omitempty"`
	Role         Role      `json:"role"`
	LastLoginAt  time.Time `json:"last_login_at,omitzero"`

	FriendIDs    []string `json:"friend_ids"`
	FollowerIDs  []string `json:"follower_ids"`
	FollowingIDs []string `json:"following_ids"`
}

// IsAdmin reports whether the user has administrative rights.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName prefers the chosen name and falls back to the email's local part.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}

// AvatarColor is the stable background colour for the user's initials.
func (u *User) AvatarColor() string {
	return color.ForUser(u.ID)
}

// IsFriend reports whether otherID is in the user's friend list.
func (u *User) IsFriend(otherID string) bool {
	return contains(u.FriendIDs, otherID)
}

// IsFollowing reports whether the user follows otherID.
func (u *User) IsFollowing(otherID string) bool {
	return contains(u.FollowingIDs, otherID)
}

// NormalizeEmail lowercases and trims an email for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
