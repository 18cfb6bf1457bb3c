package http

import (
	"net/http"

	"github.com/dreschagin/vitals-dashboard/internal/interfaces/http/handler"
	"github.com/dreschagin/vitals-dashboard/internal/interfaces/http/middleware"
	"github.com/dreschagin/vitals-dashboard/pkg/config"
	"github.com/dreschagin/vitals-dashboard/pkg/logger"
)

// Router настраивает маршруты приложения
type Router struct {
	mux              *http.ServeMux
	vitalsAPIHandler *handler.VitalsAPIHandler
	websocketHandler *handler.WebSocketHandler
	security         config.SecurityConfig
	rateLimiter      *middleware.IPRateLimiter
	logger           *logger.Logger
}

// NewRouter создает новый router
func NewRouter(
	vitalsAPIHandler *handler.VitalsAPIHandler,
	websocketHandler *handler.WebSocketHandler,
	security config.SecurityConfig,
	rateLimiter *middleware.IPRateLimiter,
	logger *logger.Logger,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		vitalsAPIHandler: vitalsAPIHandler,
		websocketHandler: websocketHandler,
		security:         security,
		rateLimiter:      rateLimiter,
		logger:           logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	// Health endpoints are intentionally unauthenticated for probes.
	rt.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	rt.mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	authMiddleware := middleware.Auth(middleware.AuthConfig{
		Enabled:     rt.security.AuthEnabled,
		BearerToken: rt.security.AuthToken,
	}, rt.logger)

	// WebSocket: push-вариант фида
	rt.mux.Handle("/ws", authMiddleware(http.HandlerFunc(rt.websocketHandler.HandleConnection)))

	// API endpoints: pull-вариант фида.
	// Compression только на API: gzip-обертка не поддерживает Hijack для WebSocket
	api := func(h http.Handler) http.Handler {
		return middleware.Compression(middleware.RateLimit(rt.rateLimiter)(authMiddleware(h)))
	}
	rt.mux.Handle("/api/v1/vitals/current", api(http.HandlerFunc(rt.vitalsAPIHandler.GetCurrentVitals)))
	rt.mux.Handle("/api/v1/vitals/history", api(http.HandlerFunc(rt.vitalsAPIHandler.GetVitalHistory)))

	// Применяем middleware
	var h http.Handler = rt.mux
	h = middleware.Logger(rt.logger)(h)
	h = middleware.Recovery(rt.logger)(h)

	return h
}
