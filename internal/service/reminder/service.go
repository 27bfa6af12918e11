// Package reminder implements reminder lifecycle operations: creation,
// listing, editing and the Active -> Completed/Cancelled transitions.
package reminder

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/reminders-backend/internal/domain"
	"github.com/heartmarshall/reminders-backend/pkg/ctxutil"
)

// reminderRepo defines the reminder repository interface needed by the service.
type reminderRepo interface {
	Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Reminder, error)
	List(ctx context.Context, ownerID uuid.UUID, f domain.ReminderFilter) ([]domain.Reminder, error)
	CountByStatus(ctx context.Context, ownerID uuid.UUID) (domain.ReminderCounts, error)
	Update(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Service implements reminder operations.
type Service struct {
	log       *slog.Logger
	reminders reminderRepo
}

// NewService creates a new reminder service instance.
func NewService(logger *slog.Logger, reminders reminderRepo) *Service {
	return &Service{
		log:       logger.With("service", "reminder"),
		reminders: reminders,
	}
}

// ownerFromCtx extracts the authenticated user ID from context.
// Returns ErrUnauthorized if no userID is found.
func ownerFromCtx(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
