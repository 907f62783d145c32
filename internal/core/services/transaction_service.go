package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/SscSPs/agency_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/agency_ledger_app/internal/utils/pagination"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
	projectRepo     portsrepo.ProjectRepository
	employeeRepo    portsrepo.EmployeeReader
	defaultCurrency domain.Currency
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionAuthorizer sets the route guard for the transaction service.
func WithTransactionAuthorizer(guard portssvc.RouteGuardSvc) TransactionServiceOption {
	return func(s *transactionService) {
		s.Authorizer = guard
	}
}

// WithTransactionDefaultCurrency sets the ledger listed when no currency is asked for.
func WithTransactionDefaultCurrency(currency domain.Currency) TransactionServiceOption {
	return func(s *transactionService) {
		s.defaultCurrency = currency
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	projectRepo portsrepo.ProjectRepository,
	employeeRepo portsrepo.EmployeeReader,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: transactionRepo,
		invoiceRepo:     invoiceRepo,
		projectRepo:     projectRepo,
		employeeRepo:    employeeRepo,
		defaultCurrency: domain.USD,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func newAuditFields(actor domain.Principal) domain.AuditFields {
	now := time.Now().UTC()
	return domain.AuditFields{CreatedAt: now, CreatedBy: actor.ID, LastUpdatedAt: now, LastUpdatedBy: actor.ID}
}

// requireProject checks that projectID refers to an existing project.
func (s *transactionService) requireProject(ctx context.Context, projectID string) error {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: project %s does not exist", apperrors.ErrValidation, projectID)
		}
		s.LogError(ctx, err, "Failed to find project", slog.String("project_id", projectID))
		return fmt.Errorf("failed to find project: %w", err)
	}
	return nil
}

func (s *transactionService) RecordTransaction(ctx context.Context, actor domain.Principal, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleTransactions); err != nil {
		return nil, err
	}
	currency, ok := domain.ParseCurrency(string(req.Currency), "")
	if !ok || currency == "" {
		return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, req.Currency)
	}
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	txn := domain.Transaction{
		ID:            uuid.NewString(),
		Type:          req.Type,
		Date:          req.Date.UTC(),
		Amount:        req.Amount,
		Currency:      currency,
		Description:   req.Description,
		ProjectID:     req.ProjectID,
		RecipientID:   req.RecipientID,
		RecipientType: req.RecipientType,
		Status:        req.Status,
		AuditFields:   newAuditFields(actor),
	}
	if txn.Status == "" {
		txn.Status = domain.TransactionCompleted
	}
	if !txn.IsOverhead() {
		if err := s.requireProject(ctx, txn.ProjectID); err != nil {
			return nil, err
		}
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.ID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.ID),
		slog.String("type", string(txn.Type)),
		slog.String("currency", string(txn.Currency)),
		slog.String("amount", txn.Amount.String()),
		slog.String("created_by", actor.ID))
	return &txn, nil
}

func (s *transactionService) RecordInvoice(ctx context.Context, actor domain.Principal, req dto.RecordInvoiceRequest) (*domain.Invoice, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleInvoices); err != nil {
		return nil, err
	}
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := s.requireProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	if req.RelatedEmployeeID != "" {
		if _, err := s.employeeRepo.FindEmployeeByID(ctx, req.RelatedEmployeeID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: employee %s does not exist", apperrors.ErrValidation, req.RelatedEmployeeID)
			}
			return nil, fmt.Errorf("failed to find employee: %w", err)
		}
	}

	invoice := domain.Invoice{
		ID:                uuid.NewString(),
		ProjectID:         req.ProjectID,
		Amount:            req.Amount,
		Date:              req.Date.UTC(),
		Category:          req.Category,
		Description:       req.Description,
		Status:            req.Status,
		RelatedEmployeeID: req.RelatedEmployeeID,
		AuditFields:       newAuditFields(actor),
	}
	if invoice.Status == "" {
		invoice.Status = domain.InvoicePending
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoice.ID))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}
	s.LogInfo(ctx, "Invoice recorded",
		slog.String("invoice_id", invoice.ID),
		slog.String("project_id", invoice.ProjectID),
		slog.String("amount", invoice.Amount.String()))
	return &invoice, nil
}

// ListTransactions pages through one currency ledger, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, actor domain.Principal, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleTransactions); err != nil {
		return nil, err
	}
	currency, ok := domain.ParseCurrency(params.Currency, s.defaultCurrency)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, params.Currency)
	}

	limit := pagination.ClampLimit(params.Limit)
	filter := portsrepo.TransactionFilter{
		Currency:  currency,
		ProjectID: params.ProjectID,
		Limit:     limit + 1,
	}
	if params.NextToken != "" {
		afterDate, afterID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filter.AfterDate = &afterDate
		filter.AfterID = afterID
	}

	txns, err := s.transactionRepo.FindTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("currency", string(currency)))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	resp := &dto.ListTransactionsResponse{Transactions: txns}
	if len(txns) > limit {
		resp.Transactions = txns[:limit]
		last := resp.Transactions[limit-1]
		token := pagination.EncodeToken(last.Date, last.ID)
		resp.NextToken = &token
	}
	return resp, nil
}
