package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/reminders-backend/internal/domain"
	"github.com/heartmarshall/reminders-backend/internal/mail"
)

// ErrOwnerLookup marks dispatch failures caused by a missing or unreadable
// reminder owner rather than by mail delivery.
var ErrOwnerLookup = errors.New("owner lookup failed")

// Result is the outcome of dispatching one reminder.
type Result struct {
	Reminder domain.Reminder
	Err      error
}

// Dispatcher delivers notification emails for a batch of due reminders.
// Failures are isolated per reminder.
type Dispatcher struct {
	log         *slog.Logger
	users       userRepo
	reminders   reminderRepo
	sender      mail.Sender
	loc         *time.Location
	sendTimeout time.Duration
	workers     int
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(
	logger *slog.Logger,
	users userRepo,
	reminders reminderRepo,
	sender mail.Sender,
	loc *time.Location,
	sendTimeout time.Duration,
	workers int,
) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{
		log:         logger.With("service", "dispatch"),
		users:       users,
		reminders:   reminders,
		sender:      sender,
		loc:         loc,
		sendTimeout: sendTimeout,
		workers:     workers,
	}
}

// Dispatch sends a notification for each reminder using a bounded worker
// pool. It returns one Result per input reminder, in input order. An error
// on one reminder never prevents the others from being attempted.
func (d *Dispatcher) Dispatch(ctx context.Context, items []domain.Reminder) []Result {
	results := make([]Result, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i, rem := range items {
		g.Go(func() error {
			results[i] = Result{Reminder: rem, Err: d.dispatchOne(gctx, rem)}
			return nil
		})
	}

	// Workers never return errors, they record them per item.
	_ = g.Wait()

	return results
}

func (d *Dispatcher) dispatchOne(ctx context.Context, rem domain.Reminder) error {
	user, err := d.users.GetByID(ctx, rem.UserID)
	if err != nil {
		return fmt.Errorf("%w: user %s: %v", ErrOwnerLookup, rem.UserID, err)
	}

	subject, body := mail.BuildReminderMessage(user, &rem, d.loc)

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, user.Email, subject, body); err != nil {
		return fmt.Errorf("send reminder %s: %w", rem.ID, err)
	}

	if err := d.reminders.MarkNotified(ctx, rem.ID, time.Now()); err != nil {
		// The mail went out; a failed bookkeeping write must not fail the item.
		d.log.WarnContext(ctx, "mark notified failed",
			slog.String("reminder_id", rem.ID.String()),
			slog.String("error", err.Error()))
	}

	d.log.InfoContext(ctx, "reminder notification sent",
		slog.String("reminder_id", rem.ID.String()),
		slog.String("user_id", rem.UserID.String()))

	return nil
}
