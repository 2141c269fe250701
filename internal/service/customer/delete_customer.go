package customer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookdesk/internal/domain"
	"github.com/heartmarshall/bookdesk/pkg/ctxutil"
)

// Delete removes customer id together with all of its purchases.
// Returns domain.ErrConfirmationRequired unless confirmed is set.
func (s *Service) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	ctx = ctxutil.NewOperation(ctx)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.customers.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.ClearSelection()

	s.log.InfoContext(ctx, "customer deleted", slog.Int64("customer_id", id))

	return nil
}

// ClearAll deletes every purchase and every customer in one transaction.
// Returns domain.ErrConfirmationRequired unless confirmed is set.
func (s *Service) ClearAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	ctx = ctxutil.NewOperation(ctx)

	var purchases, customers int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if purchases, err = s.purchases.DeleteAll(txCtx); err != nil {
			return fmt.Errorf("delete all purchases: %w", err)
		}
		if customers, err = s.customers.DeleteAll(txCtx); err != nil {
			return fmt.Errorf("delete all customers: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.ClearSelection()

	s.log.InfoContext(ctx, "all records cleared",
		slog.Int64("customers", customers),
		slog.Int64("purchases", purchases),
	)

	return nil
}
