// Package locality loads the region/city table offered to the operator.
// The remote lookup runs once; any failure degrades to the embedded
// fallback table and is reported as a warning, never as an error.
package locality

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/bookdesk/internal/domain"
)

const defaultTimeout = 10 * time.Second

var errEmptyTable = errors.New("provider returned no regions")

type provider interface {
	FetchLocalities(ctx context.Context) (domain.Localities, error)
}

// LoadResult is the outcome of a locality lookup.
// Warning is non-nil when Localities holds the fallback table.
type LoadResult struct {
	Localities domain.Localities
	Warning    *domain.LocalityLookupWarning
}

// Degraded reports whether the fallback table is in use.
func (r LoadResult) Degraded() bool { return r.Warning != nil }

// Service provides the cached locality table.
type Service struct {
	provider provider
	timeout  time.Duration
	log      *slog.Logger

	once   sync.Once
	result LoadResult
}

// NewService creates a locality Service. A non-positive timeout selects
// the default of 10 seconds.
func NewService(log *slog.Logger, p provider, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		provider: p,
		timeout:  timeout,
		log:      log.With("service", "locality"),
	}
}

// Load returns the locality table, querying the provider on first call only.
func (s *Service) Load(ctx context.Context) LoadResult {
	s.once.Do(func() {
		s.result = s.fetch(ctx)
	})
	return s.result
}

func (s *Service) fetch(ctx context.Context) LoadResult {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	locs, err := s.provider.FetchLocalities(ctx)
	if err == nil && len(locs) == 0 {
		err = errEmptyTable
	}
	if err != nil {
		warn := &domain.LocalityLookupWarning{Err: err}
		s.log.WarnContext(ctx, "locality lookup failed, using fallback",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)),
		)
		return LoadResult{Localities: domain.FallbackLocalities(), Warning: warn}
	}

	s.log.InfoContext(ctx, "localities loaded",
		slog.Int("regions", len(locs)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return LoadResult{Localities: locs}
}
