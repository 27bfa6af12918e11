package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/reminders-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedReminder creates an active reminder for the given owner with the given
// notification date. The event date is one day after the notification date.
func SeedReminder(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, notificationDate time.Time) domain.Reminder {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rem := domain.Reminder{
		ID:               uuid.New(),
		UserID:           ownerID,
		Title:            "Reminder " + uniqueSuffix(),
		EventDate:        notificationDate.AddDate(0, 0, 1),
		NotificationDate: notificationDate,
		Status:           domain.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	completed, cancelled := rem.Status.Flags()
	_, err := pool.Exec(ctx,
		`INSERT INTO reminders
		 (id, user_id, title, description, event_date, notification_date,
		  completed, cancelled, notified_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rem.ID, rem.UserID, rem.Title, rem.Description,
		rem.EventDate, rem.NotificationDate,
		completed, cancelled, rem.NotifiedAt, rem.CreatedAt, rem.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReminder insert: %v", err)
	}

	return rem
}
