package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a reminder. A reminder is in exactly one
// state at any time; the storage layer's completed/cancelled flag pair is
// translated to and from this enum at the adapter boundary.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// String returns the status as a string.
func (s Status) String() string { return string(s) }

// IsTerminal returns true for Completed and Cancelled. No transition leads
// out of a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// StatusFromFlags derives the status from the stored flag pair. The flags are
// mutually exclusive (enforced by a DB check constraint); cancelled is checked
// first so an inconsistent row still maps to a terminal state.
func StatusFromFlags(completed, cancelled bool) Status {
	switch {
	case cancelled:
		return StatusCancelled
	case completed:
		return StatusCompleted
	default:
		return StatusActive
	}
}

// Flags returns the completed/cancelled column values for this status.
func (s Status) Flags() (completed, cancelled bool) {
	return s == StatusCompleted, s == StatusCancelled
}

// Reminder pairs a real-world event time with a desired notification time.
// EventDate and NotificationDate are independent: the system schedules on
// NotificationDate only and enforces no ordering between the two.
type Reminder struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Title            string
	Description      *string
	EventDate        time.Time
	NotificationDate time.Time
	Status           Status
	NotifiedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsActive returns true when the reminder participates in dispatch.
func (r *Reminder) IsActive() bool {
	return r.Status == StatusActive
}

// MarkComplete transitions the reminder from Active to Completed.
// Returns ErrInvalidTransition without state change for any other state.
func (r *Reminder) MarkComplete() error {
	if r.Status != StatusActive {
		return fmt.Errorf("mark complete from %s: %w", r.Status, ErrInvalidTransition)
	}
	r.Status = StatusCompleted
	return nil
}

// Cancel transitions the reminder from Active to Cancelled.
// Returns ErrInvalidTransition without state change for any other state.
func (r *Reminder) Cancel() error {
	if r.Status != StatusActive {
		return fmt.Errorf("cancel from %s: %w", r.Status, ErrInvalidTransition)
	}
	r.Status = StatusCancelled
	return nil
}
