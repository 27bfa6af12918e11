package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reminders-backend/internal/domain"
)

var _ reminderRepo = &reminderRepoMock{}

type reminderRepoMock struct {
	ListDueFunc      func(ctx context.Context, from, to time.Time) ([]domain.Reminder, error)
	MarkNotifiedFunc func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		ListDue []struct {
			Ctx  context.Context
			From time.Time
			To   time.Time
		}
		MarkNotified []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
	}
	lockListDue      sync.RWMutex
	lockMarkNotified sync.RWMutex
}

func (mock *reminderRepoMock) ListDue(ctx context.Context, from, to time.Time) ([]domain.Reminder, error) {
	if mock.ListDueFunc == nil {
		panic("reminderRepoMock.ListDueFunc: method is nil but reminderRepo.ListDue was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}{Ctx: ctx, From: from, To: to}
	mock.lockListDue.Lock()
	mock.calls.ListDue = append(mock.calls.ListDue, callInfo)
	mock.lockListDue.Unlock()
	return mock.ListDueFunc(ctx, from, to)
}

func (mock *reminderRepoMock) ListDueCalls() []struct {
	Ctx  context.Context
	From time.Time
	To   time.Time
} {
	mock.lockListDue.RLock()
	calls := mock.calls.ListDue
	mock.lockListDue.RUnlock()
	return calls
}

func (mock *reminderRepoMock) MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.MarkNotifiedFunc == nil {
		panic("reminderRepoMock.MarkNotifiedFunc: method is nil but reminderRepo.MarkNotified was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockMarkNotified.Lock()
	mock.calls.MarkNotified = append(mock.calls.MarkNotified, callInfo)
	mock.lockMarkNotified.Unlock()
	return mock.MarkNotifiedFunc(ctx, id, at)
}

func (mock *reminderRepoMock) MarkNotifiedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockMarkNotified.RLock()
	calls := mock.calls.MarkNotified
	mock.lockMarkNotified.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
