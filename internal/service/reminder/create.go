package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reminders-backend/internal/domain"
)

// Create creates a new active reminder owned by the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Reminder, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	input.Title = strings.TrimSpace(input.Title)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	rem := &domain.Reminder{
		ID:               uuid.New(),
		UserID:           ownerID,
		Title:            input.Title,
		Description:      input.Description,
		EventDate:        input.EventDate,
		NotificationDate: input.NotificationDate,
		Status:           domain.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.reminders.Create(ctx, rem)
	if err != nil {
		return nil, fmt.Errorf("reminder.Create: %w", err)
	}

	s.log.InfoContext(ctx, "reminder created",
		slog.String("reminder_id", created.ID.String()),
		slog.String("user_id", ownerID.String()))

	return created, nil
}
