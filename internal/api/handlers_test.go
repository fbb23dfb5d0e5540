package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/service"
)

func TestGeneratorRoutes(t *testing.T) {
	ts := setupTestServer(t, Options{})

	resp := ts.api.Get("/api/v1/schemes")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decode[[]service.SchemeInfo](t, resp.Body.Bytes()).Data, 5)

	resp = ts.api.Post("/api/v1/schemes/generate", map[string]any{"base_hex": "#6366F1", "scheme": "triadic"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	gen := decode[service.GeneratedPalette](t, resp.Body.Bytes()).Data
	require.Len(t, gen.Colors, 5)
	assert.Equal(t, 0, gen.BaseIndex)
	assert.Equal(t, "#6366f1", gen.Colors[0].Hex)

	resp = ts.api.Post("/api/v1/schemes/generate", map[string]any{"base_hex": "#zzzzzz", "scheme": "triadic"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "INVALID_COLOR_FORMAT", decode[any](t, resp.Body.Bytes()).Code)

	resp = ts.api.Post("/api/v1/schemes/generate", map[string]any{"base_hex": "#6366f1", "scheme": "neon"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "UNKNOWN_SCHEME_TYPE", decode[any](t, resp.Body.Bytes()).Code)

	resp = ts.api.Get("/api/v1/colors/convert?hex=%23ff0000")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	sw := decode[service.Swatch](t, resp.Body.Bytes()).Data
	assert.Equal(t, "rgb(255, 0, 0)", sw.RGB)
	assert.Equal(t, "0%, 100%, 100%, 0%", sw.CMYK)

	resp = ts.api.Get("/api/v1/colors/convert?hex=ff0000&tint=50")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, "#ff8080", decode[service.Swatch](t, resp.Body.Bytes()).Data.Hex)

	resp = ts.api.Get("/api/v1/colors/convert?hex=ff0000&shade=50")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, "#800000", decode[service.Swatch](t, resp.Body.Bytes()).Data.Hex)

	resp = ts.api.Get("/api/v1/colors/convert?hex=ff0000&shade=150")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = ts.api.Get("/api/v1/colors/random")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Regexp(t, `^#[0-9a-f]{6}$`, decode[service.Swatch](t, resp.Body.Bytes()).Data.Hex)

	resp = ts.api.Post("/api/v1/colors/sort", map[string]any{"colors": []string{"#0000ff", "#ff0000"}})
	require.Equal(t, http.StatusOK, resp.Code)
	sorted := decode[[]service.Swatch](t, resp.Body.Bytes()).Data
	require.Len(t, sorted, 2)
	assert.Equal(t, "#ff0000", sorted[0].Hex)
}

func TestColorRoutes(t *testing.T) {
	ts := setupTestServer(t, Options{})
	token, _ := ts.register(t, "ada")
	auth := bearerHeader(token)

	id := ts.createColor(t, token, "Crimson", "#DC143C")

	resp := ts.api.Get("/api/v1/colors/"+id, auth)
	require.Equal(t, http.StatusOK, resp.Code)
	c := decode[domain.Color](t, resp.Body.Bytes()).Data
	assert.Equal(t, "#dc143c", c.Hex)
	assert.Equal(t, "rgb(220, 20, 60)", c.RGB)

	resp = ts.api.Post("/api/v1/colors", auth, map[string]any{
		"name": "Bad", "hex": "#12", "company": "Acme", "code": "X",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = ts.api.Put("/api/v1/colors/"+id, auth, map[string]any{"hex": "#000000"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	c = decode[domain.Color](t, resp.Body.Bytes()).Data
	assert.Empty(t, c.Name)
	assert.Equal(t, "#000000", c.Hex)

	ts.createColor(t, token, "Azure", "#007fff")
	resp = ts.api.Get("/api/v1/colors?sort=hue", auth)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decode[[]domain.Color](t, resp.Body.Bytes()).Data, 2)

	resp = ts.api.Get("/api/v1/colors?sort=rainbow", auth)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = ts.api.Delete("/api/v1/colors/"+id, auth)
	require.Equal(t, http.StatusOK, resp.Code)
	resp = ts.api.Get("/api/v1/colors/"+id, auth)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "NOT_FOUND", decode[any](t, resp.Body.Bytes()).Code)

	resp = ts.api.Get("/api/v1/colors")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestPaletteRoutes(t *testing.T) {
	ts := setupTestServer(t, Options{})
	adaToken, adaID := ts.register(t, "ada")
	graceToken, _ := ts.register(t, "grace")
	ada := bearerHeader(adaToken)
	grace := bearerHeader(graceToken)

	red := ts.createColor(t, adaToken, "Red", "#ff0000")
	blue := ts.createColor(t, adaToken, "Blue", "#0000ff")
	redAgain := ts.createColor(t, adaToken, "Red again", "#FF0000")

	resp := ts.api.Post("/api/v1/palettes", ada, map[string]any{
		"name": "Primary", "scheme_type": "complementary", "color_ids": []string{red},
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	p := decode[domain.Palette](t, resp.Body.Bytes()).Data
	assert.Equal(t, domain.AccessPrivate, p.Access)

	resp = ts.api.Get("/api/v1/palettes/"+p.ID, grace)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = ts.api.Patch("/api/v1/palettes/"+p.ID, grace, map[string]any{"name": "Mine now"})
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = ts.api.Patch("/api/v1/palettes/"+p.ID, ada, map[string]any{"access": "PUBLIC"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, "Primary", decode[domain.Palette](t, resp.Body.Bytes()).Data.Name)

	resp = ts.api.Get("/api/v1/palettes/"+p.ID, grace)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Post("/api/v1/palettes/"+p.ID+"/colors", ada, map[string]any{"color_id": blue})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, []string{red, blue}, decode[domain.Palette](t, resp.Body.Bytes()).Data.ColorIDs)

	resp = ts.api.Post("/api/v1/palettes/"+p.ID+"/colors", ada, map[string]any{"color_id": redAgain})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = ts.api.Get("/api/v1/palettes/user/"+adaID, grace)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decode[[]domain.Palette](t, resp.Body.Bytes()).Data, 1)

	resp = ts.api.Get("/api/v1/palettes", grace)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "[]", string(decode[rawData](t, resp.Body.Bytes()).Data))

	resp = ts.api.Delete("/api/v1/palettes/"+p.ID, grace)
	assert.Equal(t, http.StatusForbidden, resp.Code)
	resp = ts.api.Delete("/api/v1/palettes/"+p.ID, ada)
	assert.Equal(t, http.StatusOK, resp.Code)
	resp = ts.api.Delete("/api/v1/palettes/"+p.ID, ada)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSocialRoutes(t *testing.T) {
	ts := setupTestServer(t, Options{})
	adaToken, adaID := ts.register(t, "ada")
	graceToken, graceID := ts.register(t, "grace")
	ada := bearerHeader(adaToken)
	grace := bearerHeader(graceToken)

	resp := ts.api.Post("/api/v1/users/follow", ada, map[string]any{"user_id": adaID})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = ts.api.Post("/api/v1/users/follow", ada, map[string]any{"user_id": graceID})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Post("/api/v1/users/friends", ada, map[string]any{"user_id": graceID})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	req := decode[domain.FriendRequest](t, resp.Body.Bytes()).Data

	resp = ts.api.Post("/api/v1/users/friends", grace, map[string]any{"user_id": adaID})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = ts.api.Get("/api/v1/users/friend-requests", grace)
	require.Equal(t, http.StatusOK, resp.Code)
	pending := decode[[]service.FriendRequestView](t, resp.Body.Bytes()).Data
	require.Len(t, pending, 1)
	assert.Equal(t, "ada", pending[0].Sender.Name)

	resp = ts.api.Put("/api/v1/users/friend-requests/"+req.ID, ada, map[string]any{"action": "accept"})
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = ts.api.Put("/api/v1/users/friend-requests/"+req.ID, grace, map[string]any{"action": "accept"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = ts.api.Get("/api/v1/users/"+graceID, ada)
	require.Equal(t, http.StatusOK, resp.Code)
	profile := decode[service.Profile](t, resp.Body.Bytes()).Data
	assert.True(t, profile.IsFriend)
	assert.True(t, profile.IsFollowing)

	resp = ts.api.Get("/api/v1/users/friends", grace)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decode[[]service.UserSummary](t, resp.Body.Bytes()).Data, 1)

	resp = ts.api.Delete("/api/v1/users/friends/"+adaID, grace)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/users/"+graceID, ada)
	require.Equal(t, http.StatusOK, resp.Code)
	profile = decode[service.Profile](t, resp.Body.Bytes()).Data
	assert.False(t, profile.IsFriend)
	assert.False(t, profile.IsFollowing)

	resp = ts.api.Delete("/api/v1/users/follow/"+graceID, ada)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Put("/api/v1/users/me", ada, map[string]any{"name": "Ada Lovelace"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Ada Lovelace", decode[domain.User](t, resp.Body.Bytes()).Data.Name)
}

func TestSearchRoute(t *testing.T) {
	ts := setupTestServer(t, Options{})
	adaToken, _ := ts.register(t, "ada")
	ts.register(t, "grace")
	ada := bearerHeader(adaToken)
	ts.createColor(t, adaToken, "Sea Green", "#2e8b57")

	resp := ts.api.Get("/api/v1/search?q=green", ada)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	res := decode[service.SearchResults](t, resp.Body.Bytes()).Data
	require.Len(t, res.Colors, 1)
	assert.Equal(t, "Sea Green", res.Colors[0].Name)
	assert.Empty(t, res.Users)

	resp = ts.api.Get("/api/v1/search?q=%40gra", ada)
	require.Equal(t, http.StatusOK, resp.Code)
	res = decode[service.SearchResults](t, resp.Body.Bytes()).Data
	require.Len(t, res.Users, 1)
	assert.Equal(t, "grace", res.Users[0].Name)

	resp = ts.api.Get("/api/v1/search", ada)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"users":[],"colors":[],"palettes":[]}`, string(decode[rawData](t, resp.Body.Bytes()).Data))
}
