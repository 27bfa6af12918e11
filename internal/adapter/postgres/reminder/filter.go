package reminder

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/reminders-backend/internal/domain"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

// applyFilter adds the status predicate and pagination clauses for a listing
// query. The status enum translates to the stored flag pair:
//
//	active    -> NOT completed AND NOT cancelled
//	completed -> completed
//	cancelled -> cancelled
func applyFilter(query sq.SelectBuilder, f domain.ReminderFilter) sq.SelectBuilder {
	if f.Status != nil {
		switch *f.Status {
		case domain.StatusActive:
			query = query.Where(sq.Eq{"completed": false, "cancelled": false})
		case domain.StatusCompleted:
			query = query.Where(sq.Eq{"completed": true})
		case domain.StatusCancelled:
			query = query.Where(sq.Eq{"cancelled": true})
		}
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	query = query.Limit(uint64(limit))

	if f.Offset > 0 {
		query = query.Offset(uint64(f.Offset))
	}

	return query
}
