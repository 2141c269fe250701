package customer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/bookdesk/internal/domain"
)

type customerRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, c *domain.Customer) (int64, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type purchaseRepo interface {
	DeleteAll(ctx context.Context) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the customer lifecycle operations. It remembers which
// customer is loaded for editing: with no selection Submit inserts,
// otherwise it updates the selected record.
type Service struct {
	customers customerRepo
	purchases purchaseRepo
	tx        txManager
	log       *slog.Logger

	mu       sync.Mutex
	selected *int64
}

// NewService creates a new Customer service.
func NewService(
	log *slog.Logger,
	customers customerRepo,
	purchases purchaseRepo,
	tx txManager,
) *Service {
	return &Service{
		customers: customers,
		purchases: purchases,
		tx:        tx,
		log:       log.With("service", "customer"),
	}
}

// Selected returns the id loaded for editing, if any.
func (s *Service) Selected() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

// ClearSelection discards the edit selection so the next Submit inserts.
func (s *Service) ClearSelection() {
	s.setSelected(nil)
}

func (s *Service) setSelected(id *int64) {
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
}
