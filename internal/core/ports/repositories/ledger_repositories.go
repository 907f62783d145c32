package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
)

// TransactionFilter narrows a transaction query. Zero values do not filter.
// Results are ordered newest first, ties by id.
type TransactionFilter struct {
	Currency    domain.Currency
	ProjectID   string
	RecipientID string
	From        time.Time // inclusive
	To          time.Time // exclusive

	// Keyset pagination: return only rows strictly after (AfterDate, AfterID).
	AfterDate *time.Time
	AfterID   string
	Limit     int // 0 means no limit
}

// InvoiceFilter narrows an invoice query. Zero values do not filter.
type InvoiceFilter struct {
	ProjectID         string
	RelatedEmployeeID string
}

// ProjectRepository stores projects.
type ProjectRepository interface {
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
}

// TransactionReader defines read operations for the currency ledgers.
type TransactionReader interface {
	FindTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the currency ledgers. Transactions
// are never updated except when the project they reference is deleted.
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// DeleteTransactionsByProject removes every transaction of the project and returns how many.
	DeleteTransactionsByProject(ctx context.Context, projectID string) (int, error)
	// DetachTransactionsFromProject clears ProjectID and records it in OrphanedProjectID.
	DetachTransactionsFromProject(ctx context.Context, projectID string) (int, error)
}

// TransactionRepositoryFacade combines the transaction interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// InvoiceRepositoryFacade stores invoices, with the same delete-policy hooks as transactions.
type InvoiceRepositoryFacade interface {
	FindInvoices(ctx context.Context, filter InvoiceFilter) ([]domain.Invoice, error)
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	DeleteInvoicesByProject(ctx context.Context, projectID string) (int, error)
	DetachInvoicesFromProject(ctx context.Context, projectID string) (int, error)
}

// FundRepositoryFacade stores trustee box and investor account movements.
type FundRepositoryFacade interface {
	FindTrustTransactions(ctx context.Context, trusteeID string) ([]domain.TrustTransaction, error)
	SaveTrustTransaction(ctx context.Context, txn domain.TrustTransaction) error
	FindInvestorTransactions(ctx context.Context, investorID string) ([]domain.InvestorTransaction, error)
	SaveInvestorTransaction(ctx context.Context, txn domain.InvestorTransaction) error
}
