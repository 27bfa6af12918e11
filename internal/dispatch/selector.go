package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reminders-backend/internal/domain"
)

// reminderRepo defines the reminder repository interface needed by dispatch.
type reminderRepo interface {
	ListDue(ctx context.Context, from, to time.Time) ([]domain.Reminder, error)
	MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error
}

// userRepo defines the user repository interface needed by dispatch.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// SelectDue returns the reminders whose notification date falls inside the
// window, restricted to active, not-yet-notified ones. The repository query
// already applies these predicates; the filter here guards against rows
// changed between query and dispatch.
func SelectDue(ctx context.Context, repo reminderRepo, w Window) ([]domain.Reminder, error) {
	items, err := repo.ListDue(ctx, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("dispatch: list due reminders: %w", err)
	}

	due := items[:0]
	for _, rem := range items {
		if !rem.IsActive() || rem.NotifiedAt != nil {
			continue
		}
		if !w.Contains(rem.NotificationDate) {
			continue
		}
		due = append(due, rem)
	}

	return due, nil
}
