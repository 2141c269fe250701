package domain

// PhonePlaceholder is the hint shown in an untouched phone field. A phone
// equal to it counts as not filled in.
const PhonePlaceholder = "(DD) XXXXX-XXXX"

// Customer is a registered bookstore customer.
type Customer struct {
	ID     int64
	Name   string
	Email  string
	Phone  string
	City   string
	Region string
}
