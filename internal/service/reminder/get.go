package reminder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/reminders-backend/internal/domain"
)

// Get returns a single reminder owned by the authenticated user.
// Returns ErrNotFound for reminders of other users.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	rem, err := s.reminders.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("reminder.Get: %w", err)
	}

	return rem, nil
}

// List returns reminders owned by the authenticated user, optionally
// filtered by status, ordered by event date ascending.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Reminder, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, err := s.reminders.List(ctx, ownerID, domain.ReminderFilter{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("reminder.List: %w", err)
	}

	return items, nil
}

// Counts returns per-status reminder counts for the authenticated user.
func (s *Service) Counts(ctx context.Context) (domain.ReminderCounts, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return domain.ReminderCounts{}, err
	}

	counts, err := s.reminders.CountByStatus(ctx, ownerID)
	if err != nil {
		return domain.ReminderCounts{}, fmt.Errorf("reminder.Counts: %w", err)
	}

	return counts, nil
}
