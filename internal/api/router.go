package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	apiContext "smartlink/internal/api/context"
	"smartlink/internal/api/handlers"
	"smartlink/internal/api/middleware"
)

type Dependencies struct {
	RedirectHandler  *handlers.RedirectHandler
	LinkHandler      *handlers.LinkHandler
	AnalyticsHandler *handlers.AnalyticsHandler
	HealthHandler    *handlers.HealthHandler
	MetricsHandler   *handlers.MetricsHandler
	APIKeyMiddleware *middleware.APIKeyMiddleware
}

// NewRouter wires two trees: the reserved static surface (API, health,
// metrics) and the public redirect surface, where the first path
// segment is a platform tag. httprouter cannot mix a root wildcard
// with static siblings, so a thin prefix switch picks the tree.
func NewRouter(deps *Dependencies) http.Handler {
	static := httprouter.New()
	static.GET("/health", wrap(deps.HealthHandler.Check))
	static.GET("/metrics", wrap(deps.MetricsHandler.Export))

	auth := deps.APIKeyMiddleware

	// Link management
	static.POST("/api/v1/links",
		chain(deps.LinkHandler.Create, auth.Handle, middleware.RateLimit("api_write")))
	static.GET("/api/v1/links",
		chain(deps.LinkHandler.List, auth.Handle, middleware.RateLimit("api_read")))
	static.GET("/api/v1/links/:link_id",
		chain(deps.LinkHandler.Get, auth.Handle, middleware.RateLimit("api_read")))
	static.PATCH("/api/v1/links/:link_id",
		chain(deps.LinkHandler.SetActive, auth.Handle, middleware.RateLimit("api_write")))
	static.DELETE("/api/v1/links/:link_id",
		chain(deps.LinkHandler.Delete, auth.Handle, middleware.RateLimit("api_write")))
	static.GET("/api/v1/links/:link_id/qr",
		chain(deps.LinkHandler.GetQRCode, auth.Handle, middleware.RateLimit("api_read")))

	// Analytics
	static.GET("/api/v1/links/:link_id/analytics",
		chain(deps.AnalyticsHandler.GetLinkSummary, auth.Handle, middleware.RateLimit("api_read")))
	static.GET("/api/v1/links/:link_id/clicks",
		chain(deps.AnalyticsHandler.GetLinkClicks, auth.Handle, middleware.RateLimit("api_read")))

	redirects := httprouter.New()
	redirects.GET("/:platform/:code",
		chain(deps.RedirectHandler.Handle, middleware.RateLimit("redirect")))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isReservedPath(r.URL.Path) {
			static.ServeHTTP(w, r)
			return
		}
		redirects.ServeHTTP(w, r)
	})
}

func isReservedPath(path string) bool {
	return path == "/health" || path == "/metrics" || strings.HasPrefix(path, "/api/")
}

// Helper function to chain middlewares
func chain(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) httprouter.Handle {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return wrap(handler)
}

// Convert http.HandlerFunc to httprouter.Handle
func wrap(handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		// Inject params into context
		ctx := context.WithValue(r.Context(), apiContext.Params, ps)
		handler(w, r.WithContext(ctx))
	}
}
