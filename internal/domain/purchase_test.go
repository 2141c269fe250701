package domain

import (
	"testing"
	"time"
)

func TestPurchase_Row(t *testing.T) {
	t.Parallel()

	p := Purchase{
		ID:           3,
		CustomerID:   1,
		BookTitle:    "Dom Casmurro",
		BookAuthor:   "Machado de Assis",
		Genre:        "Romance",
		PurchaseDate: time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC),
		TotalValue:   1234.5,
	}

	row := p.Row()

	if row.Date != "09/06/2024" {
		t.Errorf("Date = %q, want 09/06/2024", row.Date)
	}
	if row.Value != "1234,50" {
		t.Errorf("Value = %q, want 1234,50", row.Value)
	}
	if row.ID != 3 || row.BookTitle != "Dom Casmurro" || row.Genre != "Romance" {
		t.Errorf("unexpected row: %+v", row)
	}
}

func TestDefaultGenre(t *testing.T) {
	t.Parallel()

	if DefaultGenre() != "Romance" {
		t.Errorf("DefaultGenre = %q", DefaultGenre())
	}
	if len(Genres) != 8 {
		t.Errorf("len(Genres) = %d, want 8", len(Genres))
	}
}
