package customer

import (
	"strings"

	"github.com/heartmarshall/bookdesk/internal/domain"
)

// CustomerInput holds the customer form fields.
type CustomerInput struct {
	Name   string
	Email  string
	Phone  string
	Region string
	City   string
}

// Validate checks all fields and collects all errors.
func (i CustomerInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	email := strings.TrimSpace(i.Email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case !domain.ValidateEmail(email):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	phone := strings.TrimSpace(i.Phone)
	switch {
	case phone == "":
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	case phone == domain.PhonePlaceholder:
		errs = append(errs, domain.FieldError{Field: "phone", Message: "not filled in"})
	}

	if strings.TrimSpace(i.Region) == "" {
		errs = append(errs, domain.FieldError{Field: "region", Message: "required"})
	}
	if strings.TrimSpace(i.City) == "" {
		errs = append(errs, domain.FieldError{Field: "city", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CustomerInput) toDomain(id int64) *domain.Customer {
	return &domain.Customer{
		ID:     id,
		Name:   strings.TrimSpace(i.Name),
		Email:  strings.TrimSpace(i.Email),
		Phone:  strings.TrimSpace(i.Phone),
		City:   strings.TrimSpace(i.City),
		Region: strings.TrimSpace(i.Region),
	}
}
