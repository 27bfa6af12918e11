package reminder

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/reminders-backend/internal/domain"
)

var _ reminderRepo = &reminderRepoMock{}

type reminderRepoMock struct {
	CreateFunc        func(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	GetByIDFunc       func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Reminder, error)
	ListFunc          func(ctx context.Context, ownerID uuid.UUID, f domain.ReminderFilter) ([]domain.Reminder, error)
	CountByStatusFunc func(ctx context.Context, ownerID uuid.UUID) (domain.ReminderCounts, error)
	UpdateFunc        func(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	DeleteFunc        func(ctx context.Context, ownerID, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Rem *domain.Reminder
		}
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			F       domain.ReminderFilter
		}
		CountByStatus []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			Rem *domain.Reminder
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockList          sync.RWMutex
	lockCountByStatus sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *reminderRepoMock) Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	if mock.CreateFunc == nil {
		panic("reminderRepoMock.CreateFunc: method is nil but reminderRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rem *domain.Reminder
	}{Ctx: ctx, Rem: rem}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rem)
}

func (mock *reminderRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rem *domain.Reminder
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reminderRepoMock) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Reminder, error) {
	if mock.GetByIDFunc == nil {
		panic("reminderRepoMock.GetByIDFunc: method is nil but reminderRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *reminderRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *reminderRepoMock) List(ctx context.Context, ownerID uuid.UUID, f domain.ReminderFilter) ([]domain.Reminder, error) {
	if mock.ListFunc == nil {
		panic("reminderRepoMock.ListFunc: method is nil but reminderRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		F       domain.ReminderFilter
	}{Ctx: ctx, OwnerID: ownerID, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, f)
}

func (mock *reminderRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	F       domain.ReminderFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reminderRepoMock) CountByStatus(ctx context.Context, ownerID uuid.UUID) (domain.ReminderCounts, error) {
	if mock.CountByStatusFunc == nil {
		panic("reminderRepoMock.CountByStatusFunc: method is nil but reminderRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, ownerID)
}

func (mock *reminderRepoMock) CountByStatusCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *reminderRepoMock) Update(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	if mock.UpdateFunc == nil {
		panic("reminderRepoMock.UpdateFunc: method is nil but reminderRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rem *domain.Reminder
	}{Ctx: ctx, Rem: rem}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rem)
}

func (mock *reminderRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Rem *domain.Reminder
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *reminderRepoMock) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reminderRepoMock.DeleteFunc: method is nil but reminderRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *reminderRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
