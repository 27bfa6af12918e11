// Package rest wires HTTP handlers for the reminders API.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/reminders-backend/internal/transport/middleware"
)

// RouterConfig bundles the dependencies of the HTTP router.
type RouterConfig struct {
	Logger     *slog.Logger
	Auth       *AuthHandler
	Reminders  *ReminderHandler
	Health     *HealthHandler
	Middleware []middleware.Middleware
}

// NewRouter builds the API route table and applies the middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", cfg.Health.Live)
	mux.HandleFunc("GET /ready", cfg.Health.Ready)
	mux.HandleFunc("GET /health", cfg.Health.Health)

	mux.HandleFunc("POST /api/auth/register", cfg.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", cfg.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", cfg.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", cfg.Auth.Logout)

	mux.HandleFunc("POST /api/reminders", cfg.Reminders.Create)
	mux.HandleFunc("GET /api/reminders", cfg.Reminders.List)
	mux.HandleFunc("GET /api/reminders/counts", cfg.Reminders.Counts)
	mux.HandleFunc("GET /api/reminders/{id}", cfg.Reminders.Get)
	mux.HandleFunc("PUT /api/reminders/{id}", cfg.Reminders.Update)
	mux.HandleFunc("DELETE /api/reminders/{id}", cfg.Reminders.Delete)
	mux.HandleFunc("POST /api/reminders/{id}/complete", cfg.Reminders.Complete)
	mux.HandleFunc("POST /api/reminders/{id}/cancel", cfg.Reminders.Cancel)

	return middleware.Chain(cfg.Middleware...)(mux)
}
