package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Nullable references use
// sql.NullString so an absent project is stored as NULL, not "".
type Transaction struct {
	TransactionID     string          `db:"transaction_id"`
	TransactionType   string          `db:"transaction_type"`
	TransactionDate   time.Time       `db:"transaction_date"`
	Amount            decimal.Decimal `db:"amount"`
	CurrencyCode      string          `db:"currency_code"`
	Description       string          `db:"description"`
	ProjectID         sql.NullString  `db:"project_id"`
	RecipientID       sql.NullString  `db:"recipient_id"`
	RecipientType     sql.NullString  `db:"recipient_type"`
	Status            string          `db:"status"`
	OrphanedProjectID sql.NullString  `db:"orphaned_project_id"`
	AuditFields
}
