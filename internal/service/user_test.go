package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorpal/colorpal-server/internal/domain"
	domainerrors "github.com/colorpal/colorpal-server/internal/errors"
	"github.com/colorpal/colorpal-server/internal/search"
)

func TestUserService_GetProfile(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	ada := env.register(t, "ada")
	grace := env.register(t, "grace")
	linus := env.register(t, "linus")

	c := env.createColor(t, ada.ID, "A", "#111111")
	env.createPalette(t, ada.ID, "Public", domain.AccessPublic, c.ID)
	env.createPalette(t, ada.ID, "Friends", domain.AccessFriends, c.ID)
	env.createPalette(t, ada.ID, "Private", domain.AccessPrivate, c.ID)

	env.befriend(t, ada.ID, grace.ID)
	require.NoError(t, env.social.Follow(ctx, linus.ID, ada.ID))
	_, err := env.social.SendFriendRequest(ctx, linus.ID, ada.ID)
	require.NoError(t, err)

	self, err := env.users.GetProfile(ctx, ada.ID, ada.ID)
	require.NoError(t, err)
	assert.True(t, self.IsSelf)
	assert.Equal(t, 3, self.PaletteCount)
	assert.Equal(t, 1, self.FriendCount)
	assert.Equal(t, 1, self.FollowerCount)
	assert.Zero(t, self.FollowingCount)
	assert.False(t, self.RequestPending)
	assert.Equal(t, ada.AvatarColor(), self.AvatarColor)

	byFriend, err := env.users.GetProfile(ctx, grace.ID, ada.ID)
	require.NoError(t, err)
	assert.False(t, byFriend.IsSelf)
	assert.True(t, byFriend.IsFriend)
	assert.Equal(t, 2, byFriend.PaletteCount)

	byStranger, err := env.users.GetProfile(ctx, linus.ID, ada.ID)
	require.NoError(t, err)
	assert.False(t, byStranger.IsFriend)
	assert.True(t, byStranger.IsFollowing)
	assert.False(t, byStranger.FollowsYou)
	assert.True(t, byStranger.RequestPending)
	assert.Equal(t, 1, byStranger.PaletteCount)

	_, err = env.users.GetProfile(ctx, ada.ID, "usr-missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserService_UpdateName(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	ada := env.register(t, "ada")

	u, err := env.users.UpdateName(ctx, ada.ID, UpdateProfileRequest{Name: "  Ada Lovelace "})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", u.Name)

	me, err := env.users.Me(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", me.Name)

	hits, err := env.index.Search(ctx, search.Params{Query: "lovelace", Type: search.DocTypeUser})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, ada.ID, hits[0].ID)

	_, err = env.users.UpdateName(ctx, ada.ID, UpdateProfileRequest{Name: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}
