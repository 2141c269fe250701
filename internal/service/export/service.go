// Package export writes the customer roster to a CSV file.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/heartmarshall/bookdesk/internal/domain"
	"github.com/heartmarshall/bookdesk/pkg/ctxutil"
)

var header = []string{"ID", "Name", "Email", "Phone", "City", "Region"}

type customerLister interface {
	List(ctx context.Context) ([]domain.Customer, error)
}

// Service exports customers.
type Service struct {
	customers customerLister
	log       *slog.Logger
}

// NewService creates a new Export service.
func NewService(log *slog.Logger, customers customerLister) *Service {
	return &Service{
		customers: customers,
		log:       log.With("service", "export"),
	}
}

// ExportCustomersToCSV writes a header row and one row per customer, in
// list order, to path. The file is only written once the whole document is
// rendered, so a failed query leaves an existing file untouched.
// Write failures are returned as *domain.IOError.
func (s *Service) ExportCustomersToCSV(ctx context.Context, path string) error {
	ctx = ctxutil.NewOperation(ctx)

	customers, err := s.customers.List(ctx)
	if err != nil {
		return fmt.Errorf("export customers: %w", err)
	}

	data, err := render(customers)
	if err != nil {
		return &domain.IOError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.log.ErrorContext(ctx, "export failed", slog.String("path", path), slog.String("error", err.Error()))
		return &domain.IOError{Path: path, Err: err}
	}

	s.log.InfoContext(ctx, "customers exported",
		slog.String("path", path),
		slog.Int("rows", len(customers)),
	)

	return nil
}

func render(customers []domain.Customer) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, c := range customers {
		row := []string{strconv.FormatInt(c.ID, 10), c.Name, c.Email, c.Phone, c.City, c.Region}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
