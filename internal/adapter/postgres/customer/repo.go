// Package customer implements the Customer repository using PostgreSQL.
// Email uniqueness and the cascade to purchases are enforced by the schema;
// this package only translates their violations into domain errors.
package customer

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bookdesk/internal/adapter/postgres"
	"github.com/heartmarshall/bookdesk/internal/domain"
)

const table = "customers"

var columns = []string{"id", "name", "email", "phone", "city", "region"}

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new customer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a customer by primary key.
// Returns domain.ErrNotFound if the customer does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get customer: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)

	c, err := scanCustomer(row)
	if err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}
	return &c, nil
}

// List returns all customers ordered by name (id breaks ties).
// Returns an empty slice (not nil) when there are no customers.
func (r *Repo) List(ctx context.Context) ([]domain.Customer, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list customers: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	result := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return result, nil
}

// Count returns the number of stored customers.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count customers: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a customer and returns the store-assigned id.
// Returns *domain.DuplicateEmailError if the email is already registered.
func (r *Repo) Create(ctx context.Context, c *domain.Customer) (int64, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("name", "email", "phone", "city", "region").
		Values(c.Name, c.Email, c.Phone, c.City, c.Region).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert customer: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapWriteError(err, c)
	}
	return id, nil
}

// Update overwrites every mutable field of the customer with id c.ID.
// Returns domain.ErrNotFound if the customer does not exist and
// *domain.DuplicateEmailError if another customer owns the email.
func (r *Repo) Update(ctx context.Context, c *domain.Customer) error {
	query, args, err := postgres.Builder.
		Update(table).
		SetMap(map[string]any{
			"name":   c.Name,
			"email":  c.Email,
			"phone":  c.Phone,
			"city":   c.City,
			"region": c.Region,
		}).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update customer: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return mapWriteError(err, c)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %d: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a customer. CASCADE deletes its purchases.
// Returns domain.ErrNotFound if the customer does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete customer: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "customer", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every customer (and, by cascade, every purchase).
// Returns the number of customers removed.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := postgres.Builder.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete customers: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete all customers: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func mapWriteError(err error, c *domain.Customer) error {
	if postgres.IsUniqueViolation(err, postgres.CustomerEmailConstraint) {
		return &domain.DuplicateEmailError{Email: c.Email}
	}
	return postgres.MapError(err, "customer", c.ID)
}

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.Region)
	return c, err
}
