package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PrincipalRepo   PrincipalRepositoryFacade
	PermissionRepo  PermissionRepository
	AuditRepo       AuditLogRepository
	SessionRepo     SessionRepository
	ProjectRepo     ProjectRepository
	TransactionRepo TransactionRepositoryFacade
	InvoiceRepo     InvoiceRepositoryFacade
	FundRepo        FundRepositoryFacade
	Health          HealthChecker // nil when there is nothing external to check
}
