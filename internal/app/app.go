package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/reminders-backend/internal/adapter/postgres"
	reminderrepo "github.com/heartmarshall/reminders-backend/internal/adapter/postgres/reminder"
	tokenrepo "github.com/heartmarshall/reminders-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/reminders-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/reminders-backend/internal/auth"
	"github.com/heartmarshall/reminders-backend/internal/config"
	authsvc "github.com/heartmarshall/reminders-backend/internal/service/auth"
	remindersvc "github.com/heartmarshall/reminders-backend/internal/service/reminder"
	"github.com/heartmarshall/reminders-backend/internal/transport/middleware"
	"github.com/heartmarshall/reminders-backend/internal/transport/rest"
)

// Run is the API server entry point. It loads configuration, initializes the
// logger, connects to the database, wires repositories, services, and the REST
// transport, and serves HTTP until the context is cancelled or a termination
// signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	reminders := reminderrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, tx, jwtManager, cfg.Auth)
	reminderService := remindersvc.NewService(logger, reminders)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterConfig{
		Logger:    logger,
		Auth:      rest.NewAuthHandler(authService, logger),
		Reminders: rest.NewReminderHandler(reminderService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Middleware: []middleware.Middleware{
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			limiter.Limit(cfg.Server.RateLimitPerMin),
			middleware.Auth(authService),
		},
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
