package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bookdesk/internal/adapter/postgres"
	customerrepo "github.com/heartmarshall/bookdesk/internal/adapter/postgres/customer"
	purchaserepo "github.com/heartmarshall/bookdesk/internal/adapter/postgres/purchase"
	"github.com/heartmarshall/bookdesk/internal/adapter/provider/ibge"
	"github.com/heartmarshall/bookdesk/internal/config"
	"github.com/heartmarshall/bookdesk/internal/service/customer"
	"github.com/heartmarshall/bookdesk/internal/service/export"
	"github.com/heartmarshall/bookdesk/internal/service/locality"
	"github.com/heartmarshall/bookdesk/internal/service/purchase"
)

// App owns the record store handle and the services built on it.
type App struct {
	Config *config.Config
	Log    *slog.Logger

	Customers  *customer.Service
	Purchases  *purchase.Service
	Export     *export.Service
	Localities *locality.Service

	pool *pgxpool.Pool
}

// New connects to the database, applies migrations when configured and
// wires every service. Close must be called to release the pool.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if !cfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	a := Wire(pool, cfg, logger)

	logger.InfoContext(ctx, "application ready", slog.String("version", BuildVersion()))

	return a, nil
}

// Wire builds the services on an existing pool.
func Wire(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) *App {
	txm := postgres.NewTxManager(pool)
	customers := customerrepo.New(pool)
	purchases := purchaserepo.New(pool)

	return &App{
		Config:     cfg,
		Log:        logger,
		Customers:  customer.NewService(logger, customers, purchases, txm),
		Purchases:  purchase.NewService(logger, purchases, customers, txm),
		Export:     export.NewService(logger, customers),
		Localities: NewLocalityService(cfg, logger),
		pool:       pool,
	}
}

// Close releases the database pool.
func (a *App) Close() {
	a.pool.Close()
}

// NewLocalityService builds the region/city lookup backed by the IBGE API.
// It needs no database.
func NewLocalityService(cfg *config.Config, logger *slog.Logger) *locality.Service {
	provider := ibge.NewProvider(logger,
		ibge.WithBaseURL(cfg.Locality.BaseURL),
		ibge.WithTimeout(cfg.Locality.Timeout),
		ibge.WithConcurrency(cfg.Locality.Concurrency),
	)
	return locality.NewService(logger, provider, cfg.Locality.Timeout)
}
