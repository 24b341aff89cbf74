// Package commissiondashboard предоставляет маршруты для основного приложения.
package commissiondashboard

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/zatiq-tech/commission-dashboard/internal/http/handlers/auth/login"
	authsession "github.com/zatiq-tech/commission-dashboard/internal/http/handlers/auth/session"
	"github.com/zatiq-tech/commission-dashboard/internal/http/handlers/commission/health"
	"github.com/zatiq-tech/commission-dashboard/internal/http/handlers/commission/query"
	"github.com/zatiq-tech/commission-dashboard/internal/http/middlewarectx"
	authservice "github.com/zatiq-tech/commission-dashboard/internal/services/auth"
	commissionservice "github.com/zatiq-tech/commission-dashboard/internal/services/commission"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, commissionService *commissionservice.CommissionService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/auth/session", authsession.New(logger, authService).Probe)
			r.Post("/auth/logout", authsession.New(logger, authService).Logout)
			r.Get("/commission", query.New(logger, commissionService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
