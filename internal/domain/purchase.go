package domain

import "time"

// DatePlaceholder is the hint shown in an untouched purchase date field.
const DatePlaceholder = "DD/MM/AAAA"

// Genres lists the book genres offered when registering a purchase.
// Any non-empty genre is accepted on write; this list only drives the form.
var Genres = []string{
	"Romance",
	"LGBTQIAPN+",
	"Suspense/Horror",
	"Science Fiction",
	"Fantasy",
	"Biography",
	"History",
	"Other",
}

// DefaultGenre is the genre preselected in an empty purchase form.
func DefaultGenre() string {
	return Genres[0]
}

// Purchase is a single book sale tied to exactly one customer.
type Purchase struct {
	ID           int64
	CustomerID   int64
	BookTitle    string
	BookAuthor   string
	Genre        string
	PurchaseDate time.Time
	TotalValue   float64
}

// PurchaseRow is a purchase rendered for display.
type PurchaseRow struct {
	ID         int64
	BookTitle  string
	BookAuthor string
	Genre      string
	Date       string // DD/MM/YYYY
	Value      string // 1234,50
}

// Row renders p with display date and currency formats.
func (p Purchase) Row() PurchaseRow {
	return PurchaseRow{
		ID:         p.ID,
		BookTitle:  p.BookTitle,
		BookAuthor: p.BookAuthor,
		Genre:      p.Genre,
		Date:       FormatDate(p.PurchaseDate),
		Value:      FormatCurrency(p.TotalValue),
	}
}
