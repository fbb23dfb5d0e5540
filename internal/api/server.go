// Package api serves the ColorPal HTTP API: huma operations on a chi router,
// every body wrapped in the versioned response envelope.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/colorpal/colorpal-server/internal/metrics"
	"github.com/colorpal/colorpal-server/internal/ratelimit"
	"github.com/colorpal/colorpal-server/internal/store"
)

// Version is reported in the OpenAPI document.
const Version = "1.0.0"

// Options configures a Server.
type Options struct {
	AllowedOrigins []string
	// AuthRateLimit is the number of auth requests allowed per client per
	// minute. Zero disables limiting.
	AuthRateLimit int
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store       store.Store
	services    *Services
	router      chi.Router
	api         huma.API
	authLimiter *ratelimit.KeyedRateLimiter
	logger      *slog.Logger
}

// NewServer builds the router, registers every operation and returns the
// server ready to serve.
func NewServer(st store.Store, services *Services, opts Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(metrics.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(authMiddleware(services.Auth))

	s := &Server{
		store:    st,
		services: services,
		router:   router,
		api:      humachi.New(router, humaConfig()),
		logger:   logger,
	}
	if opts.AuthRateLimit > 0 {
		s.authLimiter = ratelimit.PerMinute(opts.AuthRateLimit)
	}
	RegisterErrorHandler()

	router.Handle("/metrics", metrics.Handler())
	s.registerHealthRoutes()
	s.registerAuthRoutes()
	s.registerUserRoutes()
	s.registerSocialRoutes()
	s.registerColorRoutes()
	s.registerPaletteRoutes()
	s.registerGeneratorRoutes()
	s.registerSearchRoutes()

	return s
}

func humaConfig() huma.Config {
	cfg := huma.DefaultConfig("ColorPal API", Version)
	cfg.Info.Description = "Colour palette generation, conversion and sharing."
	cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "PASETO",
		},
	}
	cfg.Transformers = append(cfg.Transformers, EnvelopeTransformer)
	return cfg
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API exposes the huma API, mainly for tests and OpenAPI export.
func (s *Server) API() huma.API {
	return s.api
}

// Close releases background resources.
func (s *Server) Close() {
	if s.authLimiter != nil {
		s.authLimiter.Stop()
	}
}

// bearer marks an operation as requiring an access token in the OpenAPI
// document.
var bearer = []map[string][]string{{"bearer": {}}}
