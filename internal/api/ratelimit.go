package api

import (
	"net"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/colorpal/colorpal-server/internal/metrics"
)

// rateLimited returns huma middleware that limits requests per client IP
// with the auth limiter. It is a no-op when limiting is disabled.
func (s *Server) rateLimited() huma.Middlewares {
	if s.authLimiter == nil {
		return nil
	}
	return huma.Middlewares{func(ctx huma.Context, next func(huma.Context)) {
		key := clientIP(ctx.RemoteAddr())
		if !s.authLimiter.Allow(key) {
			route := ctx.Operation().Path
			metrics.RateLimited(route)
			s.logger.Warn("rate limit exceeded", "ip", key, "route", route)
			_ = huma.WriteErr(s.api, ctx, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}
		next(ctx)
	}}
}

// clientIP strips the port from a remote address. middleware.RealIP has
// already applied X-Forwarded-For and X-Real-IP.
func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
