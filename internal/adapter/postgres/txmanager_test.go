package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bookdesk/internal/adapter/postgres"
	"github.com/heartmarshall/bookdesk/internal/adapter/postgres/testhelper"
)

const insertCustomerSQL = `INSERT INTO customers (name, email, phone, city, region)
VALUES ($1, $2, '(11) 98888-7777', 'Campinas', 'SP')`

func customerExists(t *testing.T, pool *pgxpool.Pool, email string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("customerExists query: %v", err)
	}
	return exists
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		_, err := postgres.QuerierFromCtx(ctx, pool).Exec(ctx, insertCustomerSQL, "Commit", "commit@example.com")
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !customerExists(t, pool, "commit@example.com") {
		t.Fatal("expected customer to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if _, err := postgres.QuerierFromCtx(ctx, pool).Exec(ctx, insertCustomerSQL, "Rollback", "rollback@example.com"); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	if customerExists(t, pool, "rollback@example.com") {
		t.Fatal("expected customer NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
			_, _ = postgres.QuerierFromCtx(ctx, pool).Exec(ctx, insertCustomerSQL, "Panic", "panic@example.com")
			panic("boom")
		})
	}()

	if customerExists(t, pool, "panic@example.com") {
		t.Fatal("expected customer NOT to exist after panic")
	}
}

func TestRunInTx_NestedJoinsOuter(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	sentinel := errors.New("outer failure")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		innerErr := tm.RunInTx(ctx, func(ctx context.Context) error {
			_, err := postgres.QuerierFromCtx(ctx, pool).Exec(ctx, insertCustomerSQL, "Nested", "nested@example.com")
			return err
		})
		if innerErr != nil {
			return innerErr
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	if customerExists(t, pool, "nested@example.com") {
		t.Fatal("inner write must roll back with the outer transaction")
	}
}

func TestQuerierFromCtx_NoTx_ReturnsPool(t *testing.T) {
	pool := testhelper.SetupTestDB(t)

	if q := postgres.QuerierFromCtx(context.Background(), pool); q != postgres.Querier(pool) {
		t.Fatal("expected pool when no transaction is in context")
	}
}
