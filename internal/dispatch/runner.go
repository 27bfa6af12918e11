package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrRunInProgress is returned when a run is requested while the previous
// one has not finished.
var ErrRunInProgress = errors.New("dispatch run already in progress")

// Summary describes one completed dispatch run.
type Summary struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Selected    int
	Sent        int
	Failed      int
}

// Runner executes the daily dispatch cycle: compute today's window, select
// due reminders, hand them to the dispatcher. Runs never overlap.
type Runner struct {
	log        *slog.Logger
	reminders  reminderRepo
	dispatcher *Dispatcher
	loc        *time.Location
	clock      Clock

	mu sync.Mutex
}

// NewRunner creates a runner.
func NewRunner(logger *slog.Logger, reminders reminderRepo, dispatcher *Dispatcher, loc *time.Location, clock Clock) *Runner {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Runner{
		log:        logger.With("service", "dispatch"),
		reminders:  reminders,
		dispatcher: dispatcher,
		loc:        loc,
		clock:      clock,
	}
}

// RunOnce performs a single dispatch run.
// Returns ErrRunInProgress if another run is still active.
// A selection failure aborts the run before anything is sent.
func (r *Runner) RunOnce(ctx context.Context) (Summary, error) {
	if !r.mu.TryLock() {
		r.log.WarnContext(ctx, "dispatch run skipped, previous run still active")
		return Summary{}, ErrRunInProgress
	}
	defer r.mu.Unlock()

	window := DayWindow(r.clock.Now(), r.loc)
	summary := Summary{WindowStart: window.Start, WindowEnd: window.End}

	due, err := SelectDue(ctx, r.reminders, window)
	if err != nil {
		return summary, fmt.Errorf("dispatch run: %w", err)
	}
	summary.Selected = len(due)

	results := r.dispatcher.Dispatch(ctx, due)
	for _, res := range results {
		if res.Err != nil {
			summary.Failed++
			r.log.ErrorContext(ctx, "reminder dispatch failed",
				slog.String("reminder_id", res.Reminder.ID.String()),
				slog.String("error", res.Err.Error()))
			continue
		}
		summary.Sent++
	}

	r.log.InfoContext(ctx, "dispatch run finished",
		slog.Time("window_start", summary.WindowStart),
		slog.Time("window_end", summary.WindowEnd),
		slog.Int("selected", summary.Selected),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed))

	return summary, nil
}
