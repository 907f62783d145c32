package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/SscSPs/agency_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// ledgerService derives the balances of trustees, investors and craftsmen.
// No balance is stored: every statement is recomputed from the movements.
type ledgerService struct {
	BaseService
	principalRepo   portsrepo.PrincipalRepositoryFacade
	fundRepo        portsrepo.FundRepositoryFacade
	transactionRepo portsrepo.TransactionReader
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerAuthorizer sets the route guard for the ledger service.
func WithLedgerAuthorizer(guard portssvc.RouteGuardSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Authorizer = guard
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(
	principalRepo portsrepo.PrincipalRepositoryFacade,
	fundRepo portsrepo.FundRepositoryFacade,
	transactionRepo portsrepo.TransactionReader,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	options ...LedgerServiceOption,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		principalRepo:   principalRepo,
		fundRepo:        fundRepo,
		transactionRepo: transactionRepo,
		invoiceRepo:     invoiceRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetTrusteeStatement(ctx context.Context, actor domain.Principal, trusteeID string) (*domain.TrusteeStatement, error) {
	if err := s.AuthorizeOwnerOrModule(ctx, actor, actor.TrusteeID == trusteeID, domain.ModuleTrusts); err != nil {
		return nil, err
	}
	trustee, err := s.principalRepo.FindTrusteeByID(ctx, trusteeID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "trustee", trusteeID)
	}
	txns, err := s.fundRepo.FindTrustTransactions(ctx, trusteeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load trust transactions", slog.String("trustee_id", trusteeID))
		return nil, fmt.Errorf("failed to load trust transactions: %w", err)
	}

	statement := accounting.BuildTrusteeStatement(*trustee, txns)
	if statement.Deficit {
		s.LogWarn(ctx, "Trustee box in deficit",
			slog.String("trustee_id", trusteeID),
			slog.String("balance", statement.Balance.String()))
	}
	return &statement, nil
}

func (s *ledgerService) GetInvestorStatement(ctx context.Context, actor domain.Principal, investorID string) (*domain.InvestorStatement, error) {
	if err := s.AuthorizeOwnerOrModule(ctx, actor, actor.InvestorID == investorID, domain.ModuleInvestors); err != nil {
		return nil, err
	}
	investor, err := s.principalRepo.FindInvestorByID(ctx, investorID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "investor", investorID)
	}
	txns, err := s.fundRepo.FindInvestorTransactions(ctx, investorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load investor transactions", slog.String("investor_id", investorID))
		return nil, fmt.Errorf("failed to load investor transactions: %w", err)
	}
	statement := accounting.BuildInvestorStatement(*investor, txns)
	return &statement, nil
}

// GetCraftsmanLedger pairs the work invoices of a craftsman with the payments made to them.
func (s *ledgerService) GetCraftsmanLedger(ctx context.Context, actor domain.Principal, employeeID string) (*domain.CraftsmanLedger, error) {
	if err := s.AuthorizeOwnerOrModule(ctx, actor, actor.EmployeeID == employeeID, domain.ModuleHR); err != nil {
		return nil, err
	}
	employee, err := s.principalRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "employee", employeeID)
	}
	if employee.Type == domain.EmployeeStaff {
		return nil, fmt.Errorf("%w: employee %s is salaried staff, not a craftsman", apperrors.ErrValidation, employeeID)
	}

	invoices, err := s.invoiceRepo.FindInvoices(ctx, portsrepo.InvoiceFilter{RelatedEmployeeID: employeeID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load craftsman invoices", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to load craftsman invoices: %w", err)
	}
	txns, err := s.transactionRepo.FindTransactions(ctx, portsrepo.TransactionFilter{RecipientID: employeeID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load craftsman payments", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to load craftsman payments: %w", err)
	}

	ledger := accounting.CraftsmanLedger(employeeID, invoices, txns)
	return &ledger, nil
}

func (s *ledgerService) RecordTrustTransaction(ctx context.Context, actor domain.Principal, trusteeID string, req dto.RecordTrustTransactionRequest) (*domain.TrustTransaction, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleTrusts); err != nil {
		return nil, err
	}
	if _, err := s.principalRepo.FindTrusteeByID(ctx, trusteeID); err != nil {
		return nil, s.lookupError(ctx, err, "trustee", trusteeID)
	}
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	txn := domain.TrustTransaction{
		ID:          uuid.NewString(),
		TrusteeID:   trusteeID,
		Type:        req.Type,
		Amount:      req.Amount,
		Date:        req.Date.UTC(),
		Description: req.Description,
	}
	if _, err := accounting.CalculateSignedTrustAmount(txn); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := s.fundRepo.SaveTrustTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save trust transaction", slog.String("trustee_id", trusteeID))
		return nil, fmt.Errorf("failed to save trust transaction: %w", err)
	}
	s.LogInfo(ctx, "Trust transaction recorded",
		slog.String("transaction_id", txn.ID),
		slog.String("trustee_id", trusteeID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *ledgerService) RecordInvestorTransaction(ctx context.Context, actor domain.Principal, investorID string, req dto.RecordInvestorTransactionRequest) (*domain.InvestorTransaction, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleInvestors); err != nil {
		return nil, err
	}
	if _, err := s.principalRepo.FindInvestorByID(ctx, investorID); err != nil {
		return nil, s.lookupError(ctx, err, "investor", investorID)
	}
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	txn := domain.InvestorTransaction{
		ID:          uuid.NewString(),
		InvestorID:  investorID,
		Type:        req.Type,
		Amount:      req.Amount,
		Date:        req.Date.UTC(),
		Description: req.Description,
	}
	if _, err := accounting.CalculateSignedInvestorAmount(txn); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := s.fundRepo.SaveInvestorTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save investor transaction", slog.String("investor_id", investorID))
		return nil, fmt.Errorf("failed to save investor transaction: %w", err)
	}
	s.LogInfo(ctx, "Investor transaction recorded",
		slog.String("transaction_id", txn.ID),
		slog.String("investor_id", investorID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *ledgerService) lookupError(ctx context.Context, err error, kind, id string) error {
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find "+kind, slog.String("id", id))
	}
	return fmt.Errorf("failed to get %s %s: %w", kind, id, err)
}
