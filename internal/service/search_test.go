package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorpal/colorpal-server/internal/domain"
)

func paletteNames(ps []*domain.Palette) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestSearchService_EmptyQuery(t *testing.T) {
	env := setupTestEnv(t)
	ada := env.register(t, "ada")

	for _, q := range []string{"", "   ", "@", "@  "} {
		res, err := env.search.Search(context.Background(), ada.ID, q)
		require.NoError(t, err)
		assert.NotNil(t, res.Users)
		assert.NotNil(t, res.Colors)
		assert.NotNil(t, res.Palettes)
		assert.Empty(t, res.Users)
		assert.Empty(t, res.Colors)
		assert.Empty(t, res.Palettes)
	}
}

func TestSearchService_Users(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	ada := env.register(t, "ada")
	env.register(t, "adam")
	env.register(t, "grace")

	res, err := env.search.Search(ctx, ada.ID, "@ada")
	require.NoError(t, err)
	require.Len(t, res.Users, 1)
	assert.Equal(t, "adam", res.Users[0].Name)
	assert.Empty(t, res.Colors)

	res, err = env.search.Search(ctx, ada.ID, "@GRACE@example")
	require.NoError(t, err)
	require.Len(t, res.Users, 1)
	assert.Equal(t, "grace", res.Users[0].Name)
}

func TestSearchService_ColorsAndPalettes(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	ada := env.register(t, "ada")
	grace := env.register(t, "grace")
	linus := env.register(t, "linus")
	env.befriend(t, ada.ID, grace.ID)

	c := env.createColor(t, ada.ID, "Ocean Blue", "#1e90ff")
	env.createColor(t, ada.ID, "Forest", "#228b22")
	env.createPalette(t, ada.ID, "Ocean public", domain.AccessPublic, c.ID)
	env.createPalette(t, ada.ID, "Ocean friends", domain.AccessFriends, c.ID)
	env.createPalette(t, ada.ID, "Ocean private", domain.AccessPrivate, c.ID)

	res, err := env.search.Search(ctx, grace.ID, "ocean")
	require.NoError(t, err)
	require.Len(t, res.Colors, 1)
	assert.Equal(t, c.ID, res.Colors[0].ID)
	assert.ElementsMatch(t, []string{"Ocean public", "Ocean friends"}, paletteNames(res.Palettes))
	assert.Empty(t, res.Users)

	res, err = env.search.Search(ctx, linus.ID, "OCEAN")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ocean public"}, paletteNames(res.Palettes))

	res, err = env.search.Search(ctx, ada.ID, "cean")
	require.NoError(t, err)
	assert.Len(t, res.Palettes, 3)
}

func TestSearchService_Reindex(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	ada := env.register(t, "ada")
	env.createColor(t, ada.ID, "Coral", "#ff7f50")

	require.NoError(t, env.index.Rebuild(nil))
	res, err := env.search.Search(ctx, ada.ID, "coral")
	require.NoError(t, err)
	assert.Empty(t, res.Colors)

	require.NoError(t, env.search.ReindexIfEmpty(ctx))
	res, err = env.search.Search(ctx, ada.ID, "coral")
	require.NoError(t, err)
	assert.Len(t, res.Colors, 1)

	n, err := env.index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
}
