package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a cash movement.
type TransactionType string

const (
	Receipt  TransactionType = "Receipt"
	Payment  TransactionType = "Payment"
	Transfer TransactionType = "Transfer"
	Journal  TransactionType = "Journal"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	TransactionCompleted         TransactionStatus = "Completed"
	TransactionPendingSettlement TransactionStatus = "Pending_Settlement"
)

// RecipientType identifies the pool RecipientID points into.
type RecipientType string

const (
	RecipientEmployee RecipientType = "Employee"
	RecipientSupplier RecipientType = "Supplier"
	RecipientTrustee  RecipientType = "Trustee"
	RecipientInvestor RecipientType = "Investor"
	RecipientOther    RecipientType = "Other"
)

// GeneralProjectID is the bucket used for payments that carry no project.
const GeneralProjectID = "General"

// Transaction is an entry in one of the currency ledgers. Append-only.
type Transaction struct {
	ID                string            `json:"id"`
	Type              TransactionType   `json:"type"`
	Date              time.Time         `json:"date"`
	Amount            decimal.Decimal   `json:"amount"` // Always positive; Type carries the direction
	Currency          Currency          `json:"currency"`
	Description       string            `json:"description"`
	ProjectID         string            `json:"projectId,omitempty"`
	RecipientID       string            `json:"recipientId,omitempty"`
	RecipientType     RecipientType     `json:"recipientType,omitempty"`
	Status            TransactionStatus `json:"status"`
	OrphanedProjectID string            `json:"orphanedProjectId,omitempty"` // Set when the project was deleted under the orphan policy
	AuditFields
}

// IsOverhead reports whether the transaction is not attributable to a project.
// A transaction detached from a deleted project still belongs to that project.
func (t Transaction) IsOverhead() bool {
	if t.OrphanedProjectID != "" {
		return false
	}
	return IsProjectless(t.ProjectID)
}

// IsProjectless reports whether projectID is one of the placeholders used for
// records that belong to no project.
func IsProjectless(projectID string) bool {
	switch projectID {
	case "", GeneralProjectID, "N/A":
		return true
	}
	return false
}
