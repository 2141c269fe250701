package customer

import (
	"context"
	"github.com/heartmarshall/bookdesk/internal/domain"
	"sync"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	CountFunc     func(ctx context.Context) (int, error)
	CreateFunc    func(ctx context.Context, c *domain.Customer) (int64, error)
	DeleteFunc    func(ctx context.Context, id int64) error
	DeleteAllFunc func(ctx context.Context) (int64, error)
	GetByIDFunc   func(ctx context.Context, id int64) (*domain.Customer, error)
	ListFunc      func(ctx context.Context) ([]domain.Customer, error)
	UpdateFunc    func(ctx context.Context, c *domain.Customer) error

	calls struct {
		Count []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Customer
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		DeleteAll []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			C   *domain.Customer
		}
	}
	lockCount     sync.RWMutex
	lockCreate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockDeleteAll sync.RWMutex
	lockGetByID   sync.RWMutex
	lockList      sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *customerRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("customerRepoMock.CountFunc: method is nil but customerRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *customerRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *customerRepoMock) Create(ctx context.Context, c *domain.Customer) (int64, error) {
	if mock.CreateFunc == nil {
		panic("customerRepoMock.CreateFunc: method is nil but customerRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Customer
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *customerRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Customer
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *customerRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("customerRepoMock.DeleteFunc: method is nil but customerRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *customerRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *customerRepoMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("customerRepoMock.DeleteAllFunc: method is nil but customerRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *customerRepoMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *customerRepoMock) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if mock.GetByIDFunc == nil {
		panic("customerRepoMock.GetByIDFunc: method is nil but customerRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *customerRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *customerRepoMock) List(ctx context.Context) ([]domain.Customer, error) {
	if mock.ListFunc == nil {
		panic("customerRepoMock.ListFunc: method is nil but customerRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *customerRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *customerRepoMock) Update(ctx context.Context, c *domain.Customer) error {
	if mock.UpdateFunc == nil {
		panic("customerRepoMock.UpdateFunc: method is nil but customerRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Customer
	}{Ctx: ctx, C: c}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *customerRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   *domain.Customer
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
