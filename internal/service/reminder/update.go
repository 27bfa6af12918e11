package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reminders-backend/internal/domain"
)

// Update edits an active reminder. Nil input fields are left unchanged.
// Completed and cancelled reminders are immutable and return ErrInvalidTransition.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Reminder, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		input.Title = &trimmed
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rem, err := s.reminders.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("reminder.Update: %w", err)
	}

	if rem.Status.IsTerminal() {
		return nil, fmt.Errorf("reminder.Update: edit %s reminder: %w", rem.Status, domain.ErrInvalidTransition)
	}

	if input.Title != nil {
		rem.Title = *input.Title
	}
	if input.Description != nil {
		rem.Description = input.Description
	}
	if input.EventDate != nil {
		rem.EventDate = *input.EventDate
	}
	if input.NotificationDate != nil {
		rem.NotificationDate = *input.NotificationDate
	}
	rem.UpdatedAt = time.Now()

	updated, err := s.reminders.Update(ctx, rem)
	if err != nil {
		return nil, fmt.Errorf("reminder.Update: %w", err)
	}

	return updated, nil
}

// Delete removes a reminder owned by the authenticated user.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := s.reminders.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("reminder.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "reminder deleted")
	return nil
}
