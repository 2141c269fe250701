package customer

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bookdesk/internal/domain"
)

// List returns all customers sorted by name.
func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	list, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return list, nil
}

// HasCustomers reports whether at least one customer exists. Bulk clear and
// export are only offered when it is true.
func (s *Service) HasCustomers(ctx context.Context) (bool, error) {
	n, err := s.customers.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count customers: %w", err)
	}
	return n > 0, nil
}

// LoadForEdit returns a snapshot of customer id and selects it, so the next
// Submit updates it.
func (s *Service) LoadForEdit(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	s.setSelected(&c.ID)
	return c, nil
}
