package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "Paid"
	InvoicePending InvoiceStatus = "Pending"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

// Invoice tracks project costs. When RelatedEmployeeID is set the invoice is a
// craftsman work-ledger entry: work performed and owed to that craftsman.
type Invoice struct {
	ID                string          `json:"id"`
	ProjectID         string          `json:"projectId"`
	Amount            decimal.Decimal `json:"amount"`
	Date              time.Time       `json:"date"`
	Category          string          `json:"category"`
	Description       string          `json:"description,omitempty"`
	Status            InvoiceStatus   `json:"status"`
	RelatedEmployeeID string          `json:"relatedEmployeeId,omitempty"`
	OrphanedProjectID string          `json:"orphanedProjectId,omitempty"`
	AuditFields
}
