package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	displayDateLayout = "02/01/2006"
	storageDateLayout = "2006-01-02"

	phoneDigits = 11
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// ValidateEmail reports whether s looks like local@domain.tld.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// FormatPhoneMask keeps the digits of raw (at most 11) and re-applies the
// (DD) DDDDD-DDDD mask as far as the digits go:
//   - fewer than 3 digits: digits unchanged
//   - 3 to 7 digits: (DD) DDDDD
//   - 8 or more: (DD) DDDDD-DDDD
//
// FormatPhoneMask(FormatPhoneMask(x)) == FormatPhoneMask(x) for every x.
func FormatPhoneMask(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == phoneDigits {
				break
			}
		}
	}
	d := b.String()

	switch {
	case len(d) < 3:
		return d
	case len(d) <= 7:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// AcceptCurrencyKeystroke reports whether s is an acceptable intermediate
// value of a currency field: empty, or digits with at most one comma.
func AcceptCurrencyKeystroke(s string) bool {
	_, ok := ParseCurrencyInput(s)
	return ok
}

// ParseCurrencyInput parses a currency field as typed so far. The empty
// string is valid (nothing typed yet) and yields 0. The comma is the
// decimal separator and may appear at most once; "12," and ",5" are
// accepted intermediates.
func ParseCurrencyInput(s string) (float64, bool) {
	if s == "" {
		return 0, true
	}
	d, ok := parseDecimal(s)
	if !ok {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// ParseAmount is the strict parse applied on submit: s (surrounding spaces
// ignored) must be a finite non-negative number with an optional comma
// separator.
func ParseAmount(s string) (float64, error) {
	d, ok := parseDecimal(strings.TrimSpace(s))
	if !ok || d.IsNegative() {
		return 0, &InvalidAmountError{Value: s}
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, &InvalidAmountError{Value: s}
	}
	return f, nil
}

// parseDecimal accepts digits with at most one comma and at least one digit.
func parseDecimal(s string) (decimal.Decimal, bool) {
	if strings.Count(s, ",") > 1 {
		return decimal.Zero, false
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ',':
		default:
			return decimal.Zero, false
		}
	}
	if digits == 0 {
		return decimal.Zero, false
	}

	intPart, fracPart, _ := strings.Cut(s, ",")
	if intPart == "" {
		intPart = "0"
	}
	num := intPart
	if fracPart != "" {
		num += "." + fracPart
	}

	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatCurrency renders v with two fraction digits and a comma separator:
// 1234.5 -> "1234,50".
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
	}
	return strings.Replace(decimal.NewFromFloat(v).StringFixed(2), ".", ",", 1)
}

// ParseDisplayDate parses a DD/MM/YYYY date.
func ParseDisplayDate(s string) (time.Time, error) {
	t, err := time.Parse(displayDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: s}
	}
	return t, nil
}

// FormatDate renders t as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// ParseStorageDate parses the canonical YYYY-MM-DD form.
func ParseStorageDate(s string) (time.Time, error) {
	t, err := time.Parse(storageDateLayout, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: s}
	}
	return t, nil
}

// FormatStorageDate renders t in the canonical YYYY-MM-DD form.
func FormatStorageDate(t time.Time) string {
	return t.Format(storageDateLayout)
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
