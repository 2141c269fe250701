// Package purchase implements the Purchase repository using PostgreSQL.
package purchase

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bookdesk/internal/adapter/postgres"
	"github.com/heartmarshall/bookdesk/internal/domain"
)

const table = "purchases"

var columns = []string{
	"id", "customer_id", "book_title", "book_author", "genre", "purchase_date", "total_value",
}

// Repo provides purchase persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new purchase repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a purchase owned by customerID.
// Returns domain.ErrNotFound if it does not exist or belongs to another customer.
func (r *Repo) GetByID(ctx context.Context, customerID, purchaseID int64) (*domain.Purchase, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": purchaseID, "customer_id": customerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get purchase: %w", err)
	}

	p, err := scanPurchase(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "purchase", purchaseID)
	}
	return &p, nil
}

// ListByCustomer returns the customer's purchases, newest purchase date
// first (id descending breaks ties). Returns an empty slice (not nil) when
// there are none.
func (r *Repo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Purchase, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("purchase_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list purchases: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	result := []domain.Purchase{}
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	return result, nil
}

// Create inserts a purchase and returns its id.
// Returns domain.ErrNotFound if the customer does not exist.
func (r *Repo) Create(ctx context.Context, p *domain.Purchase) (int64, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("customer_id", "book_title", "book_author", "genre", "purchase_date", "total_value").
		Values(p.CustomerID, p.BookTitle, p.BookAuthor, p.Genre, domain.DateOnly(p.PurchaseDate), p.TotalValue).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert purchase: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "customer", p.CustomerID)
	}
	return id, nil
}

// Update overwrites the book, genre, date and value of purchase p.ID.
// The owning customer never changes. Returns domain.ErrNotFound if the
// purchase does not exist for p.CustomerID.
func (r *Repo) Update(ctx context.Context, p *domain.Purchase) error {
	query, args, err := postgres.Builder.
		Update(table).
		SetMap(map[string]any{
			"book_title":    p.BookTitle,
			"book_author":   p.BookAuthor,
			"genre":         p.Genre,
			"purchase_date": domain.DateOnly(p.PurchaseDate),
			"total_value":   p.TotalValue,
		}).
		Where(sq.Eq{"id": p.ID, "customer_id": p.CustomerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update purchase: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "purchase", p.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("purchase %d: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every purchase of every customer.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := postgres.Builder.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete purchases: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete all purchases: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanPurchase(row pgx.Row) (domain.Purchase, error) {
	var p domain.Purchase
	err := row.Scan(&p.ID, &p.CustomerID, &p.BookTitle, &p.BookAuthor, &p.Genre, &p.PurchaseDate, &p.TotalValue)
	return p, err
}
