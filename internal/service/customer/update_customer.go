package customer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookdesk/pkg/ctxutil"
)

// Update validates input and overwrites customer id. The customer's own
// email never conflicts with itself. Returns domain.ErrNotFound if id is
// absent. On success the edit selection is cleared.
func (s *Service) Update(ctx context.Context, id int64, input CustomerInput) error {
	ctx = ctxutil.NewOperation(ctx)

	if err := input.Validate(); err != nil {
		return err
	}

	c := input.toDomain(id)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.customers.Update(txCtx, c); err != nil {
			return fmt.Errorf("update customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.ClearSelection()

	s.log.InfoContext(ctx, "customer updated",
		slog.Int64("customer_id", id),
		slog.String("email", c.Email),
	)

	return nil
}

// Submit inserts when no customer is selected and updates the selected one
// otherwise. It returns the id of the written customer.
func (s *Service) Submit(ctx context.Context, input CustomerInput) (int64, error) {
	id, ok := s.Selected()
	if !ok {
		return s.Create(ctx, input)
	}
	if err := s.Update(ctx, id, input); err != nil {
		return 0, err
	}
	return id, nil
}
