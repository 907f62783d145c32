package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table.
type Invoice struct {
	InvoiceID         string          `db:"invoice_id"`
	ProjectID         sql.NullString  `db:"project_id"`
	Amount            decimal.Decimal `db:"amount"`
	InvoiceDate       time.Time       `db:"invoice_date"`
	Category          string          `db:"category"`
	Description       string          `db:"description"`
	Status            string          `db:"status"`
	RelatedEmployeeID sql.NullString  `db:"related_employee_id"`
	OrphanedProjectID sql.NullString  `db:"orphaned_project_id"`
	AuditFields
}
