// Package purchase implements the purchase lifecycle of a single customer.
// Open starts a Session bound to one customer; the Session holds the
// form draft and an explicit EMPTY/EDITING state that decides whether the
// next Submit inserts or updates.
package purchase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookdesk/internal/domain"
)

type purchaseRepo interface {
	GetByID(ctx context.Context, customerID, purchaseID int64) (*domain.Purchase, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Purchase, error)
	Create(ctx context.Context, p *domain.Purchase) (int64, error)
	Update(ctx context.Context, p *domain.Purchase) error
}

type customerRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service opens purchase sessions.
type Service struct {
	purchases purchaseRepo
	customers customerRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Purchase service.
func NewService(
	log *slog.Logger,
	purchases purchaseRepo,
	customers customerRepo,
	tx txManager,
) *Service {
	return &Service{
		purchases: purchases,
		customers: customers,
		tx:        tx,
		log:       log.With("service", "purchase"),
	}
}

// Open starts a purchase session for customerID. Zero means no customer is
// selected and yields domain.ErrNoCustomerSelected; an unknown customer
// yields domain.ErrNotFound.
func (s *Service) Open(ctx context.Context, customerID int64) (*Session, error) {
	if customerID == 0 {
		return nil, domain.ErrNoCustomerSelected
	}

	c, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("open purchases: %w", err)
	}

	s.log.DebugContext(ctx, "purchase session opened", slog.Int64("customer_id", c.ID))

	return newSession(s, *c), nil
}
