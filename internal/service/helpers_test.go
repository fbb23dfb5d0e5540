package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/colorpal/colorpal-server/internal/auth"
	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/search"
	"github.com/colorpal/colorpal-server/internal/store/sqlite"
)

type testEnv struct {
	store    *sqlite.Store
	index    *search.SearchIndex
	tokens   *auth.TokenService
	auth     *AuthService
	sessions *SessionService
	colors   *ColorService
	palettes *PaletteService
	social   *SocialService
	users    *UserService
	search   *SearchService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := sqlite.Open(filepath.Join(dir, "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	idx, err := search.NewSearchIndex(search.Options{Dir: filepath.Join(dir, "search"), Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	key, err := auth.LoadOrGenerateKey(dir)
	require.NoError(t, err)
	tokens, err := auth.NewTokenService(key, 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	env := &testEnv{store: st, index: idx, tokens: tokens}
	env.sessions = NewSessionService(st, tokens, logger)
	env.auth = NewAuthService(st, tokens, env.sessions, idx, logger)
	env.colors = NewColorService(st, idx, logger)
	env.palettes = NewPaletteService(st, idx, logger)
	env.social = NewSocialService(st, logger)
	env.users = NewUserService(st, env.palettes, idx, logger)
	env.search = NewSearchService(st, idx, logger)
	return env
}

// register creates a user through the auth service and returns it.
func (e *testEnv) register(t *testing.T, name string) *domain.User {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), RegisterRequest{
		Email:    name + "@example.com",
		Password: "password123",
		Name:     name,
	})
	require.NoError(t, err)
	return resp.User
}

func (e *testEnv) createColor(t *testing.T, userID, name, hex string) *domain.Color {
	t.Helper()
	c, err := e.colors.Create(context.Background(), userID, CreateColorRequest{
		Name: name, Hex: hex, Company: "Acme Paints", Code: "AP-" + hex[1:],
	})
	require.NoError(t, err)
	return c
}

func (e *testEnv) createPalette(t *testing.T, userID, name string, access domain.Access, colorIDs ...string) *domain.Palette {
	t.Helper()
	p, err := e.palettes.Create(context.Background(), userID, CreatePaletteRequest{
		Name: name, SchemeType: "analogous", ColorIDs: colorIDs, Access: access,
	})
	require.NoError(t, err)
	return p
}

// befriend makes a and b friends through the request flow.
func (e *testEnv) befriend(t *testing.T, a, b string) {
	t.Helper()
	ctx := context.Background()
	req, err := e.social.SendFriendRequest(ctx, a, b)
	require.NoError(t, err)
	_, err = e.social.RespondToFriendRequest(ctx, b, req.ID, RespondRequest{Action: domain.ActionAccept})
	require.NoError(t, err)
}
