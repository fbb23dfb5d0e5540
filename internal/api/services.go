package api

import "github.com/colorpal/colorpal-server/internal/service"

// Services groups the business services used by the API server.
type Services struct {
	Auth      *service.AuthService
	Users     *service.UserService
	Social    *service.SocialService
	Colors    *service.ColorService
	Palettes  *service.PaletteService
	Generator *service.GeneratorService
	Search    *service.SearchService
	// Index reports search index health. May be nil.
	Index interface{ DocumentCount() (uint64, error) }
}
