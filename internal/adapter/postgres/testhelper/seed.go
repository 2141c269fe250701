package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bookdesk/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCustomer inserts a customer with a unique email directly in the DB.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool, name string) domain.Customer {
	t.Helper()

	c := domain.Customer{
		Name:   name,
		Email:  strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "-" + uniqueSuffix() + "@example.com",
		Phone:  "(11) 98888-7777",
		City:   "Campinas",
		Region: "SP",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO customers (name, email, phone, city, region)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.Name, c.Email, c.Phone, c.City, c.Region,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer: %v", err)
	}

	return c
}

// SeedPurchase inserts a purchase for customerID directly in the DB.
func SeedPurchase(t *testing.T, pool *pgxpool.Pool, customerID int64, title string, date time.Time) domain.Purchase {
	t.Helper()

	p := domain.Purchase{
		CustomerID:   customerID,
		BookTitle:    title,
		BookAuthor:   "Author " + uniqueSuffix(),
		Genre:        domain.DefaultGenre(),
		PurchaseDate: domain.DateOnly(date),
		TotalValue:   49.9,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO purchases (customer_id, book_title, book_author, genre, purchase_date, total_value)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		p.CustomerID, p.BookTitle, p.BookAuthor, p.Genre, p.PurchaseDate, p.TotalValue,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPurchase: %v", err)
	}

	return p
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows(%s): %v", table, err)
	}
	return n
}
