package purchase

import (
	"strings"

	"github.com/heartmarshall/bookdesk/internal/domain"
)

// PurchaseInput holds the purchase form fields as typed by the operator.
// Date is DD/MM/YYYY and Value uses a comma as decimal separator.
type PurchaseInput struct {
	BookTitle  string
	BookAuthor string
	Genre      string
	Date       string
	Value      string
}

// EmptyInput returns the form defaults: blank fields and the first genre.
func EmptyInput() PurchaseInput {
	return PurchaseInput{Genre: domain.DefaultGenre()}
}

// Validate checks presence of all fields and collects all errors.
// Date and value syntax are checked by parse.
func (i PurchaseInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.BookTitle) == "" {
		errs = append(errs, domain.FieldError{Field: "book_title", Message: "required"})
	}
	if strings.TrimSpace(i.BookAuthor) == "" {
		errs = append(errs, domain.FieldError{Field: "book_author", Message: "required"})
	}
	if strings.TrimSpace(i.Genre) == "" {
		errs = append(errs, domain.FieldError{Field: "genre", Message: "required"})
	}

	date := strings.TrimSpace(i.Date)
	switch {
	case date == "":
		errs = append(errs, domain.FieldError{Field: "purchase_date", Message: "required"})
	case date == domain.DatePlaceholder:
		errs = append(errs, domain.FieldError{Field: "purchase_date", Message: "not filled in"})
	}

	if strings.TrimSpace(i.Value) == "" {
		errs = append(errs, domain.FieldError{Field: "total_value", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// parse validates the input and converts it into a purchase.
// Returns *domain.ValidationError, *domain.InvalidDateError or
// *domain.InvalidAmountError.
func (i PurchaseInput) parse(customerID, purchaseID int64) (*domain.Purchase, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}

	date, err := domain.ParseDisplayDate(i.Date)
	if err != nil {
		return nil, err
	}

	value, err := domain.ParseAmount(i.Value)
	if err != nil {
		return nil, err
	}

	return &domain.Purchase{
		ID:           purchaseID,
		CustomerID:   customerID,
		BookTitle:    strings.TrimSpace(i.BookTitle),
		BookAuthor:   strings.TrimSpace(i.BookAuthor),
		Genre:        strings.TrimSpace(i.Genre),
		PurchaseDate: date,
		TotalValue:   value,
	}, nil
}

func inputFromPurchase(p *domain.Purchase) PurchaseInput {
	return PurchaseInput{
		BookTitle:  p.BookTitle,
		BookAuthor: p.BookAuthor,
		Genre:      p.Genre,
		Date:       domain.FormatDate(p.PurchaseDate),
		Value:      domain.FormatCurrency(p.TotalValue),
	}
}
