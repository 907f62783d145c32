// Package memory holds the application state behind the repository ports.
// Every method takes a lock and hands out copies, so callers aggregate over
// stable snapshots without further synchronisation.
package memory

import (
	"sync"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
)

// Store is the in-memory state store.
type Store struct {
	mu sync.RWMutex

	users     []domain.User
	clients   []domain.Client
	employees []domain.Employee
	trustees  []domain.Trustee
	investors []domain.Investor

	permissions map[domain.Role]domain.RolePermissions
	roleOrder   []domain.Role
	auditLog    []domain.AuditLogEntry
	revoked     map[string]time.Time

	projects     []domain.Project
	transactions []domain.Transaction
	invoices     []domain.Invoice
	trustTxns    []domain.TrustTransaction
	investorTxns []domain.InvestorTransaction
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		permissions: make(map[domain.Role]domain.RolePermissions),
		revoked:     make(map[string]time.Time),
	}
}

// Provider returns a repository provider backed entirely by the store.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PrincipalRepo:   s,
		PermissionRepo:  s,
		AuditRepo:       s,
		SessionRepo:     s,
		ProjectRepo:     s,
		TransactionRepo: s,
		InvoiceRepo:     s,
		FundRepo:        s,
	}
}

var (
	_ portsrepo.PrincipalRepositoryFacade   = (*Store)(nil)
	_ portsrepo.PermissionRepository        = (*Store)(nil)
	_ portsrepo.AuditLogRepository          = (*Store)(nil)
	_ portsrepo.SessionRepository           = (*Store)(nil)
	_ portsrepo.ProjectRepository           = (*Store)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.InvoiceRepositoryFacade     = (*Store)(nil)
	_ portsrepo.FundRepositoryFacade        = (*Store)(nil)
)

// AddUser, AddClient and the other Add* methods load reference data. They are
// used by the demo seed and by tests.

func (s *Store) AddUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}

func (s *Store) AddClient(c domain.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, c)
}

func (s *Store) AddEmployee(e domain.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append(s.employees, e)
}

func (s *Store) AddTrustee(t domain.Trustee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trustees = append(s.trustees, t)
}

func (s *Store) AddInvestor(i domain.Investor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.investors = append(s.investors, i)
}

func (s *Store) AddProject(p domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, p)
}
