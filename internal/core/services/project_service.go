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
	"github.com/SscSPs/agency_ledger_app/internal/utils/accounting"
)

type projectService struct {
	BaseService
	projectRepo     portsrepo.ProjectRepository
	transactionRepo portsrepo.TransactionRepositoryFacade
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
	audit           portssvc.AuditSvcFacade
	deletePolicy    domain.ProjectDeletePolicy
	defaultCurrency domain.Currency
}

// ProjectServiceOption is a functional option for configuring the project service
type ProjectServiceOption func(*projectService)

// WithProjectAuthorizer sets the route guard for the project service.
func WithProjectAuthorizer(guard portssvc.RouteGuardSvc) ProjectServiceOption {
	return func(s *projectService) {
		s.Authorizer = guard
	}
}

// WithProjectAudit records deletions in the audit trail.
func WithProjectAudit(audit portssvc.AuditSvcFacade) ProjectServiceOption {
	return func(s *projectService) {
		s.audit = audit
	}
}

// WithDeletePolicy sets how records referencing a deleted project are handled.
func WithDeletePolicy(policy domain.ProjectDeletePolicy) ProjectServiceOption {
	return func(s *projectService) {
		s.deletePolicy = policy
	}
}

// WithProjectDefaultCurrency sets the currency used when a summary names none.
func WithProjectDefaultCurrency(currency domain.Currency) ProjectServiceOption {
	return func(s *projectService) {
		s.defaultCurrency = currency
	}
}

// NewProjectService creates a new project service with the provided options
func NewProjectService(
	projectRepo portsrepo.ProjectRepository,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	options ...ProjectServiceOption,
) portssvc.ProjectSvcFacade {
	svc := &projectService{
		projectRepo:     projectRepo,
		transactionRepo: transactionRepo,
		invoiceRepo:     invoiceRepo,
		deletePolicy:    domain.DeleteRestrict,
		defaultCurrency: domain.USD,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) ListProjects(ctx context.Context, actor domain.Principal) ([]domain.Project, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleProjects); err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) GetProject(ctx context.Context, actor domain.Principal, projectID string) (*domain.Project, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleProjects); err != nil {
		return nil, err
	}
	return s.findProject(ctx, projectID)
}

func (s *projectService) findProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project", slog.String("project_id", projectID))
		}
		return nil, fmt.Errorf("failed to get project %s: %w", projectID, err)
	}
	return project, nil
}

func (s *projectService) GetProjectSummary(ctx context.Context, actor domain.Principal, projectID string, currency domain.Currency) (*domain.ProjectFinancialSummary, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleProjects); err != nil {
		return nil, err
	}
	if currency == "" {
		currency = s.defaultCurrency
	}
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.FindTransactions(ctx, portsrepo.TransactionFilter{ProjectID: projectID, Currency: currency})
	if err != nil {
		s.LogError(ctx, err, "Failed to load project transactions", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to load project transactions: %w", err)
	}

	summary := accounting.ProjectSummary(*project, txns, currency)
	if summary.WorkshopLow {
		s.LogWarn(ctx, "Project workshop balance below threshold",
			slog.String("project_id", projectID),
			slog.String("balance", summary.WorkshopBalance.String()),
			slog.String("threshold", summary.WorkshopThreshold.String()))
	}
	return &summary, nil
}

// DeleteProject removes a project after applying the delete policy to the
// transactions and invoices that reference it.
func (s *projectService) DeleteProject(ctx context.Context, actor domain.Principal, projectID string) (*domain.ProjectDeletion, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleProjects); err != nil {
		return nil, err
	}
	if _, err := s.findProject(ctx, projectID); err != nil {
		return nil, err
	}

	result := &domain.ProjectDeletion{ProjectID: projectID, Policy: s.deletePolicy}
	var err error
	switch s.deletePolicy {
	case domain.DeleteCascade:
		if result.TransactionsAffected, err = s.transactionRepo.DeleteTransactionsByProject(ctx, projectID); err != nil {
			break
		}
		result.InvoicesAffected, err = s.invoiceRepo.DeleteInvoicesByProject(ctx, projectID)
	case domain.DeleteOrphan:
		if result.TransactionsAffected, err = s.transactionRepo.DetachTransactionsFromProject(ctx, projectID); err != nil {
			break
		}
		result.InvoicesAffected, err = s.invoiceRepo.DetachInvoicesFromProject(ctx, projectID)
	default:
		err = s.ensureUnreferenced(ctx, projectID)
	}
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to apply project delete policy",
				slog.String("project_id", projectID),
				slog.String("policy", string(s.deletePolicy)))
		}
		return nil, fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}

	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}

	if s.audit != nil {
		s.audit.Record(ctx, "project_deleted", actor, fmt.Sprintf("%s policy=%s transactions=%d invoices=%d",
			projectID, s.deletePolicy, result.TransactionsAffected, result.InvoicesAffected))
	}
	s.LogInfo(ctx, "Project deleted",
		slog.String("project_id", projectID),
		slog.String("policy", string(s.deletePolicy)),
		slog.Int("transactions_affected", result.TransactionsAffected),
		slog.Int("invoices_affected", result.InvoicesAffected))
	return result, nil
}

func (s *projectService) ensureUnreferenced(ctx context.Context, projectID string) error {
	txns, err := s.transactionRepo.FindTransactions(ctx, portsrepo.TransactionFilter{ProjectID: projectID, Limit: 1})
	if err != nil {
		return err
	}
	invoices, err := s.invoiceRepo.FindInvoices(ctx, portsrepo.InvoiceFilter{ProjectID: projectID})
	if err != nil {
		return err
	}
	if len(txns) > 0 || len(invoices) > 0 {
		s.LogWarn(ctx, "Project still referenced, refusing to delete",
			slog.String("project_id", projectID),
			slog.Int("invoice_count", len(invoices)))
		return fmt.Errorf("%w: project %s has transactions or invoices", apperrors.ErrConflict, projectID)
	}
	return nil
}
