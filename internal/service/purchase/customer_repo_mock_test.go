package purchase

import (
	"context"
	"github.com/heartmarshall/bookdesk/internal/domain"
	"sync"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Customer, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
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
