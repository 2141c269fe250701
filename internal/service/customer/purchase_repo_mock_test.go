package customer

import (
	"context"
	"sync"
)

var _ purchaseRepo = &purchaseRepoMock{}

type purchaseRepoMock struct {
	DeleteAllFunc func(ctx context.Context) (int64, error)

	calls struct {
		DeleteAll []struct {
			Ctx context.Context
		}
	}
	lockDeleteAll sync.RWMutex
}

func (mock *purchaseRepoMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("purchaseRepoMock.DeleteAllFunc: method is nil but purchaseRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *purchaseRepoMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}
