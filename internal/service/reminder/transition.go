package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reminders-backend/internal/domain"
)

// Complete marks an active reminder as completed.
// Returns ErrInvalidTransition if the reminder is already terminal.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	return s.transition(ctx, id, "completed", (*domain.Reminder).MarkComplete)
}

// Cancel marks an active reminder as cancelled.
// Returns ErrInvalidTransition if the reminder is already terminal.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	return s.transition(ctx, id, "cancelled", (*domain.Reminder).Cancel)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, action string, apply func(*domain.Reminder) error) (*domain.Reminder, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	rem, err := s.reminders.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("reminder.%s: %w", action, err)
	}

	if err := apply(rem); err != nil {
		return nil, err
	}
	rem.UpdatedAt = time.Now()

	updated, err := s.reminders.Update(ctx, rem)
	if err != nil {
		return nil, fmt.Errorf("reminder.%s: %w", action, err)
	}

	s.log.InfoContext(ctx, "reminder "+action,
		slog.String("reminder_id", id.String()))

	return updated, nil
}
