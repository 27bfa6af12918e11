// Package reminder implements the Reminder repository using PostgreSQL.
package reminder

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/reminders-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reminders-backend/internal/domain"
)

const table = "reminders"

var columns = []string{
	"id", "user_id", "title", "description",
	"event_date", "notification_date",
	"completed", "cancelled", "notified_at",
	"created_at", "updated_at",
}

// builder is the squirrel statement builder configured for PostgreSQL placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides reminder persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reminder repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new reminder and returns the persisted domain.Reminder.
func (r *Repo) Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	completed, cancelled := rem.Status.Flags()

	query := builder.Insert(table).
		Columns(columns...).
		Values(rem.ID, rem.UserID, rem.Title, rem.Description,
			rem.EventDate, rem.NotificationDate,
			completed, cancelled, rem.NotifiedAt,
			rem.CreatedAt, rem.UpdatedAt).
		Suffix("RETURNING " + selectList())

	return r.queryOne(ctx, query, rem.ID)
}

// GetByID returns a reminder by primary key, scoped to its owner.
// A reminder belonging to another user yields ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Reminder, error) {
	query := builder.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": ownerID})

	return r.queryOne(ctx, query, id)
}

// List returns the owner's reminders matching the filter, ordered by
// event_date ascending.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, f domain.ReminderFilter) ([]domain.Reminder, error) {
	query := builder.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("event_date ASC")

	query = applyFilter(query, f)

	return r.queryMany(ctx, query)
}

// CountByStatus returns the owner's dashboard totals in a single query.
func (r *Repo) CountByStatus(ctx context.Context, ownerID uuid.UUID) (domain.ReminderCounts, error) {
	query := builder.Select(
		"COUNT(*) AS all_count",
		"COUNT(*) FILTER (WHERE NOT completed AND NOT cancelled) AS active_count",
		"COUNT(*) FILTER (WHERE completed) AS completed_count",
	).From(table).Where(sq.Eq{"user_id": ownerID})

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.ReminderCounts{}, fmt.Errorf("build count query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var counts domain.ReminderCounts
	err = q.QueryRow(ctx, sql, args...).Scan(&counts.All, &counts.Active, &counts.Completed)
	if err != nil {
		return domain.ReminderCounts{}, postgres.MapError(err, "reminder", ownerID)
	}

	return counts, nil
}

// Update persists the reminder's content fields, status flags, and updated_at,
// scoped to the owner. Returns ErrNotFound if no matching row exists.
func (r *Repo) Update(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	completed, cancelled := rem.Status.Flags()

	query := builder.Update(table).
		Set("title", rem.Title).
		Set("description", rem.Description).
		Set("event_date", rem.EventDate).
		Set("notification_date", rem.NotificationDate).
		Set("completed", completed).
		Set("cancelled", cancelled).
		Set("updated_at", rem.UpdatedAt).
		Where(sq.Eq{"id": rem.ID, "user_id": rem.UserID}).
		Suffix("RETURNING " + selectList())

	return r.queryOne(ctx, query, rem.ID)
}

// Delete removes the reminder entirely, scoped to the owner.
// Returns ErrNotFound if no matching row exists.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := builder.Delete(table).Where(sq.Eq{"id": id, "user_id": ownerID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "reminder", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reminder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListDue returns every active, not-yet-notified reminder whose
// notification_date falls in the half-open interval [from, to), across all
// owners. Ordered by notification_date for deterministic processing; callers
// must not rely on the order.
func (r *Repo) ListDue(ctx context.Context, from, to time.Time) ([]domain.Reminder, error) {
	query := builder.Select(columns...).
		From(table).
		Where(sq.Eq{"completed": false, "cancelled": false}).
		Where(sq.Eq{"notified_at": nil}).
		Where(sq.GtOrEq{"notification_date": from}).
		Where(sq.Lt{"notification_date": to}).
		OrderBy("notification_date ASC")

	return r.queryMany(ctx, query)
}

// MarkNotified records the delivery timestamp for a reminder.
func (r *Repo) MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := builder.Update(table).
		Set("notified_at", at).
		Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build mark-notified query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "reminder", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reminder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Query execution helpers
// ---------------------------------------------------------------------------

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer, id uuid.UUID) (*domain.Reminder, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "reminder", id)
	}

	rem, err := pgx.CollectOneRow(rows, scanReminder)
	if err != nil {
		return nil, postgres.MapError(err, "reminder", id)
	}

	return &rem, nil
}

func (r *Repo) queryMany(ctx context.Context, query sq.Sqlizer) ([]domain.Reminder, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "reminder", uuid.Nil)
	}

	reminders, err := pgx.CollectRows(rows, scanReminder)
	if err != nil {
		return nil, postgres.MapError(err, "reminder", uuid.Nil)
	}

	return reminders, nil
}

// scanReminder maps a result row to a domain.Reminder, deriving the status
// enum from the stored flag pair.
func scanReminder(row pgx.CollectableRow) (domain.Reminder, error) {
	var (
		rem                  domain.Reminder
		completed, cancelled bool
	)
	err := row.Scan(
		&rem.ID, &rem.UserID, &rem.Title, &rem.Description,
		&rem.EventDate, &rem.NotificationDate,
		&completed, &cancelled, &rem.NotifiedAt,
		&rem.CreatedAt, &rem.UpdatedAt,
	)
	if err != nil {
		return domain.Reminder{}, err
	}

	rem.Status = domain.StatusFromFlags(completed, cancelled)
	return rem, nil
}

func selectList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}
