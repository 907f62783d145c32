package domain

import "strings"

// Currency is one of the two ledgers the agency keeps.
type Currency string

const (
	USD Currency = "USD"
	SYP Currency = "SYP"
)

// ParseCurrency normalises a currency code. The empty string maps to fallback.
func ParseCurrency(code string, fallback Currency) (Currency, bool) {
	switch Currency(strings.ToUpper(strings.TrimSpace(code))) {
	case "":
		return fallback, true
	case USD:
		return USD, true
	case SYP:
		return SYP, true
	default:
		return "", false
	}
}
