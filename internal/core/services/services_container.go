package services

import (
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The permission service is the route guard every other service authorizes through
	container.Permission = NewPermissionService(repos.PermissionRepo, repos.AuditRepo)
	guard := container.Permission.(portssvc.RouteGuardSvc)
	container.RouteGuard = guard

	container.Audit = NewAuditService(repos.AuditRepo, WithAuditAuthorizer(guard))
	container.Identity = NewIdentityService(repos.PrincipalRepo, container.Audit)
	container.Token = NewTokenService(cfg, repos.SessionRepo)

	container.Project = NewProjectService(
		repos.ProjectRepo,
		repos.TransactionRepo,
		repos.InvoiceRepo,
		WithProjectAuthorizer(guard),
		WithProjectAudit(container.Audit),
		WithDeletePolicy(cfg.ProjectDeletePolicy),
		WithProjectDefaultCurrency(cfg.DefaultReportCurrency),
	)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.InvoiceRepo,
		repos.ProjectRepo,
		repos.PrincipalRepo,
		WithTransactionAuthorizer(guard),
		WithTransactionDefaultCurrency(cfg.DefaultReportCurrency),
	)
	container.Ledger = NewLedgerService(
		repos.PrincipalRepo,
		repos.FundRepo,
		repos.TransactionRepo,
		repos.InvoiceRepo,
		WithLedgerAuthorizer(guard),
	)
	container.Reporting = NewReportingService(
		repos.TransactionRepo,
		repos.ProjectRepo,
		WithReportingAuthorizer(guard),
		WithReportingDefaultCurrency(cfg.DefaultReportCurrency),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.IdentitySvcFacade    = (*identityService)(nil)
	_ portssvc.PermissionSvcFacade  = (*permissionService)(nil)
	_ portssvc.RouteGuardSvc        = (*permissionService)(nil)
	_ portssvc.ReportingSvcFacade   = (*reportingService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
)
