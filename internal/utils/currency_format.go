package utils

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Whole units only: the agency never prints cents or piastres.
var formatters = map[domain.Currency]*money.Formatter{
	domain.USD: money.NewFormatter(0, ".", ",", "$", "$1"),
	domain.SYP: money.NewFormatter(0, ".", ",", "ل.س", "1 $"),
}

// Amounts beyond int64 cannot go through money.Formatter without wrapping.
var maxFormattable = decimal.NewFromInt(math.MaxInt64)

// FormatCurrency renders an amount for display.
// Example: 12500 USD returns "$12,500"
// Example: 12500 SYP returns "12,500 ل.س"
// Example: -2000 USD returns "-$2,000"
// Unknown currencies fall back to the plain rounded number followed by the code.
func FormatCurrency(amount decimal.Decimal, currency domain.Currency) string {
	rounded := amount.Round(0)
	f, ok := formatters[currency]
	if !ok || rounded.Abs().GreaterThan(maxFormattable) {
		return rounded.String() + " " + string(currency)
	}
	return f.Format(rounded.IntPart())
}
