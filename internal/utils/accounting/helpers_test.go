package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 10, 0, 0, 0, time.UTC)
}

func assertAmount(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "want %d, got %s %v", want, got.String(), msgAndArgs)
}

func payment(id string, amount int64, desc, projectID string, cur domain.Currency, date time.Time) domain.Transaction {
	return domain.Transaction{ID: id, Type: domain.Payment, Amount: d(amount), Description: desc, ProjectID: projectID, Currency: cur, Date: date}
}

func receipt(id string, amount int64, projectID string, cur domain.Currency, date time.Time) domain.Transaction {
	return domain.Transaction{ID: id, Type: domain.Receipt, Amount: d(amount), ProjectID: projectID, Currency: cur, Date: date}
}
