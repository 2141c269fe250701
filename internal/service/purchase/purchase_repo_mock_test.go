package purchase

import (
	"context"
	"github.com/heartmarshall/bookdesk/internal/domain"
	"sync"
)

var _ purchaseRepo = &purchaseRepoMock{}

type purchaseRepoMock struct {
	CreateFunc         func(ctx context.Context, p *domain.Purchase) (int64, error)
	GetByIDFunc        func(ctx context.Context, customerID int64, purchaseID int64) (*domain.Purchase, error)
	ListByCustomerFunc func(ctx context.Context, customerID int64) ([]domain.Purchase, error)
	UpdateFunc         func(ctx context.Context, p *domain.Purchase) error

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Purchase
		}
		GetByID []struct {
			Ctx        context.Context
			CustomerID int64
			PurchaseID int64
		}
		ListByCustomer []struct {
			Ctx        context.Context
			CustomerID int64
		}
		Update []struct {
			Ctx context.Context
			P   *domain.Purchase
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockListByCustomer sync.RWMutex
	lockUpdate         sync.RWMutex
}

func (mock *purchaseRepoMock) Create(ctx context.Context, p *domain.Purchase) (int64, error) {
	if mock.CreateFunc == nil {
		panic("purchaseRepoMock.CreateFunc: method is nil but purchaseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Purchase
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *purchaseRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Purchase
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *purchaseRepoMock) GetByID(ctx context.Context, customerID int64, purchaseID int64) (*domain.Purchase, error) {
	if mock.GetByIDFunc == nil {
		panic("purchaseRepoMock.GetByIDFunc: method is nil but purchaseRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID int64
		PurchaseID int64
	}{Ctx: ctx, CustomerID: customerID, PurchaseID: purchaseID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, customerID, purchaseID)
}

func (mock *purchaseRepoMock) GetByIDCalls() []struct {
	Ctx        context.Context
	CustomerID int64
	PurchaseID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *purchaseRepoMock) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Purchase, error) {
	if mock.ListByCustomerFunc == nil {
		panic("purchaseRepoMock.ListByCustomerFunc: method is nil but purchaseRepo.ListByCustomer was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID int64
	}{Ctx: ctx, CustomerID: customerID}
	mock.lockListByCustomer.Lock()
	mock.calls.ListByCustomer = append(mock.calls.ListByCustomer, callInfo)
	mock.lockListByCustomer.Unlock()
	return mock.ListByCustomerFunc(ctx, customerID)
}

func (mock *purchaseRepoMock) ListByCustomerCalls() []struct {
	Ctx        context.Context
	CustomerID int64
} {
	mock.lockListByCustomer.RLock()
	calls := mock.calls.ListByCustomer
	mock.lockListByCustomer.RUnlock()
	return calls
}

func (mock *purchaseRepoMock) Update(ctx context.Context, p *domain.Purchase) error {
	if mock.UpdateFunc == nil {
		panic("purchaseRepoMock.UpdateFunc: method is nil but purchaseRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Purchase
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *purchaseRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   *domain.Purchase
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
