package providers

import (
	"github.com/samber/do/v2"

	"github.com/colorpal/colorpal-server/internal/auth"
	"github.com/colorpal/colorpal-server/internal/logger"
	"github.com/colorpal/colorpal-server/internal/service"
)

// ProvideSessionService provides the session service.
func ProvideSessionService(i do.Injector) (*service.SessionService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSessionService(storeHandle.Store, tokenService, log.Logger), nil
}

// ProvideAuthService provides the authentication service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	sessionService := do.MustInvoke[*service.SessionService](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(storeHandle.Store, tokenService, sessionService, indexHandle.SearchIndex, log.Logger), nil
}

// ProvideColorService provides the colour catalogue service.
func ProvideColorService(i do.Injector) (*service.ColorService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewColorService(storeHandle.Store, indexHandle.SearchIndex, log.Logger), nil
}

// ProvidePaletteService provides the palette service.
func ProvidePaletteService(i do.Injector) (*service.PaletteService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewPaletteService(storeHandle.Store, indexHandle.SearchIndex, log.Logger), nil
}

// ProvideUserService provides the user profile service.
func ProvideUserService(i do.Injector) (*service.UserService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	paletteService := do.MustInvoke[*service.PaletteService](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewUserService(storeHandle.Store, paletteService, indexHandle.SearchIndex, log.Logger), nil
}

// ProvideSocialService provides the follow and friendship service.
func ProvideSocialService(i do.Injector) (*service.SocialService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSocialService(storeHandle.Store, log.Logger), nil
}

// ProvideGeneratorService provides the scheme generator, seeded from the
// process-wide random source.
func ProvideGeneratorService(i do.Injector) (*service.GeneratorService, error) {
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewGeneratorService(nil, log.Logger), nil
}
