package customer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookdesk/pkg/ctxutil"
)

// Create validates input and inserts a new customer.
// Returns *domain.ValidationError or *domain.DuplicateEmailError without
// changing the store. On success the edit selection is cleared.
func (s *Service) Create(ctx context.Context, input CustomerInput) (int64, error) {
	ctx = ctxutil.NewOperation(ctx)

	if err := input.Validate(); err != nil {
		return 0, err
	}

	c := input.toDomain(0)

	var id int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		id, createErr = s.customers.Create(txCtx, c)
		if createErr != nil {
			return fmt.Errorf("create customer: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.ClearSelection()

	s.log.InfoContext(ctx, "customer created",
		slog.Int64("customer_id", id),
		slog.String("email", c.Email),
	)

	return id, nil
}
