// Command dispatcher runs the daily reminder notification job. By default it
// schedules a run every day at the configured local time; with -once it
// performs a single run and exits.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/reminders-backend/internal/adapter/postgres"
	reminderrepo "github.com/heartmarshall/reminders-backend/internal/adapter/postgres/reminder"
	userrepo "github.com/heartmarshall/reminders-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/reminders-backend/internal/app"
	"github.com/heartmarshall/reminders-backend/internal/config"
	"github.com/heartmarshall/reminders-backend/internal/dispatch"
	"github.com/heartmarshall/reminders-backend/internal/mail"
)

func main() {
	once := flag.Bool("once", false, "run a single dispatch cycle and exit")
	flag.Parse()

	if err := run(*once); err != nil {
		log.Fatalf("dispatcher: %v", err)
	}
}

func run(once bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	loc, err := cfg.Dispatch.Location()
	if err != nil {
		return err
	}

	sender, err := mail.NewSMTPSender(cfg.SMTP)
	if err != nil {
		return err
	}

	users := userrepo.New(pool)
	reminders := reminderrepo.New(pool)

	dispatcher := dispatch.NewDispatcher(
		logger, users, reminders, sender,
		loc, cfg.Dispatch.SendTimeout, cfg.Dispatch.Workers,
	)
	runner := dispatch.NewRunner(logger, reminders, dispatcher, loc, dispatch.SystemClock{})

	if once {
		summary, err := runner.RunOnce(ctx)
		if err != nil {
			logger.Error("dispatch run failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("single dispatch run done",
			slog.Int("selected", summary.Selected),
			slog.Int("sent", summary.Sent),
			slog.Int("failed", summary.Failed))
		return nil
	}

	c := cron.New(cron.WithLocation(loc))
	spec := fmt.Sprintf("%d %d * * *", cfg.Dispatch.Minute, cfg.Dispatch.Hour)
	_, err = c.AddFunc(spec, func() {
		if _, err := runner.RunOnce(ctx); err != nil && !errors.Is(err, dispatch.ErrRunInProgress) {
			logger.Error("dispatch run failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule dispatch: %w", err)
	}

	logger.Info("dispatcher scheduled",
		slog.String("spec", spec),
		slog.String("timezone", cfg.Dispatch.Timezone))

	c.Start()
	<-ctx.Done()

	logger.Info("shutting down")
	<-c.Stop().Done()

	return nil
}
