package commissiondashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/zatiq-tech/commission-dashboard/internal/config"
	"github.com/zatiq-tech/commission-dashboard/internal/lib/jwt"
	authservice "github.com/zatiq-tech/commission-dashboard/internal/services/auth"
	commissionservice "github.com/zatiq-tech/commission-dashboard/internal/services/commission"
	"github.com/zatiq-tech/commission-dashboard/internal/session"
	"github.com/zatiq-tech/commission-dashboard/internal/storage/userstore"
	"github.com/zatiq-tech/commission-dashboard/internal/upstream"
)

type App struct {
	server   *http.Server
	logger   *slog.Logger
	sessions *session.Store
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	sessions, err := session.InitStore(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	users := userstore.New(cfg.UsersFilePath)
	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	upstreamClient := upstream.NewClient(cfg.BaseURL, cfg.TimeoutUpstream)

	authService := authservice.NewAuthService(users, sessions, jwtMaker)
	commissionService := commissionservice.NewCommissionService(upstreamClient, cfg.MaxPages, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, authService, commissionService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		sessions: sessions,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.sessions.Close(); cerr != nil {
			a.logger.Warn("failed to close session store", slog.Any("err", cerr))
		}
		return err
	}
}
