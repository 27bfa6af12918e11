package app

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/reminders-backend/internal/config"
	"github.com/heartmarshall/reminders-backend/migrations"
)

// Migrate applies all pending embedded migrations and returns how many ran.
func Migrate(ctx context.Context, cfg config.DatabaseConfig) (int, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return 0, fmt.Errorf("migrate: open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return 0, fmt.Errorf("migrate: provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrate: up: %w", err)
	}

	return len(results), nil
}
