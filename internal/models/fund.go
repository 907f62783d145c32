package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrustTransaction is a row of the trust_transactions table.
type TrustTransaction struct {
	TrustTransactionID string          `db:"trust_transaction_id"`
	TrusteeID          string          `db:"trustee_id"`
	TransactionType    string          `db:"transaction_type"`
	Amount             decimal.Decimal `db:"amount"`
	TransactionDate    time.Time       `db:"transaction_date"`
	Description        string          `db:"description"`
}

// InvestorTransaction is a row of the investor_transactions table.
type InvestorTransaction struct {
	InvestorTransactionID string          `db:"investor_transaction_id"`
	InvestorID            string          `db:"investor_id"`
	TransactionType       string          `db:"transaction_type"`
	Amount                decimal.Decimal `db:"amount"`
	TransactionDate       time.Time       `db:"transaction_date"`
	Description           string          `db:"description"`
}
