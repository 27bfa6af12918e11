package reminder

import (
	"strings"
	"time"

	"github.com/heartmarshall/reminders-backend/internal/domain"
)

// CreateInput holds parameters for creating a reminder.
type CreateInput struct {
	Title            string
	Description      *string
	EventDate        time.Time
	NotificationDate time.Time
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if i.EventDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "required"})
	}
	if i.NotificationDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "notification_date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for editing a reminder.
// Nil fields are left unchanged.
type UpdateInput struct {
	Title            *string
	Description      *string
	EventDate        *time.Time
	NotificationDate *time.Time
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if len(*i.Title) > 200 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}

	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if i.EventDate != nil && i.EventDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "must not be zero"})
	}
	if i.NotificationDate != nil && i.NotificationDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "notification_date", Message: "must not be zero"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for listing reminders.
type ListInput struct {
	Status *domain.Status
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil {
		switch *i.Status {
		case domain.StatusActive, domain.StatusCompleted, domain.StatusCancelled:
		default:
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
		}
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
