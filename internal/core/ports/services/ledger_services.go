package services

import (
	"context"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
)

// ProjectSvcFacade exposes projects and their cash position.
type ProjectSvcFacade interface {
	ListProjects(ctx context.Context, actor domain.Principal) ([]domain.Project, error)
	GetProject(ctx context.Context, actor domain.Principal, projectID string) (*domain.Project, error)
	GetProjectSummary(ctx context.Context, actor domain.Principal, projectID string, currency domain.Currency) (*domain.ProjectFinancialSummary, error)
	// DeleteProject applies the configured delete policy to referencing records.
	DeleteProject(ctx context.Context, actor domain.Principal, projectID string) (*domain.ProjectDeletion, error)
}

// TransactionSvcFacade appends to and pages through the ledgers.
type TransactionSvcFacade interface {
	RecordTransaction(ctx context.Context, actor domain.Principal, req dto.RecordTransactionRequest) (*domain.Transaction, error)
	RecordInvoice(ctx context.Context, actor domain.Principal, req dto.RecordInvoiceRequest) (*domain.Invoice, error)
	ListTransactions(ctx context.Context, actor domain.Principal, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// LedgerSvcFacade derives trustee, investor and craftsman balances.
type LedgerSvcFacade interface {
	GetTrusteeStatement(ctx context.Context, actor domain.Principal, trusteeID string) (*domain.TrusteeStatement, error)
	GetInvestorStatement(ctx context.Context, actor domain.Principal, investorID string) (*domain.InvestorStatement, error)
	GetCraftsmanLedger(ctx context.Context, actor domain.Principal, employeeID string) (*domain.CraftsmanLedger, error)
	RecordTrustTransaction(ctx context.Context, actor domain.Principal, trusteeID string, req dto.RecordTrustTransactionRequest) (*domain.TrustTransaction, error)
	RecordInvestorTransaction(ctx context.Context, actor domain.Principal, investorID string, req dto.RecordInvestorTransactionRequest) (*domain.InvestorTransaction, error)
}
