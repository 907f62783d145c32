package repositories

import (
	"context"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
)

// The Find*ByLogin methods return every record of the pool whose identifier
// matches; password verification happens in the identity resolver. An empty
// result (not ErrNotFound) means no candidate.

// UserReader defines read operations for staff users.
type UserReader interface {
	// FindUsersByLogin returns staff users whose email equals identifier exactly.
	FindUsersByLogin(ctx context.Context, identifier string) ([]domain.User, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// ClientReader defines read operations for portal clients.
type ClientReader interface {
	// FindClientsByLogin returns clients whose username equals identifier exactly.
	FindClientsByLogin(ctx context.Context, identifier string) ([]domain.Client, error)
}

// EmployeeReader defines read operations for employees.
type EmployeeReader interface {
	// FindEmployeesByLogin returns employees whose username, email or full name
	// equals identifier ignoring case.
	FindEmployeesByLogin(ctx context.Context, identifier string) ([]domain.Employee, error)
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// TrusteeReader defines read operations for trustees.
type TrusteeReader interface {
	FindTrusteesByLogin(ctx context.Context, identifier string) ([]domain.Trustee, error)
	FindTrusteeByID(ctx context.Context, trusteeID string) (*domain.Trustee, error)
	ListTrustees(ctx context.Context) ([]domain.Trustee, error)
}

// InvestorReader defines read operations for investors.
type InvestorReader interface {
	FindInvestorsByLogin(ctx context.Context, identifier string) ([]domain.Investor, error)
	FindInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error)
	ListInvestors(ctx context.Context) ([]domain.Investor, error)
}

// PrincipalRepositoryFacade combines the five principal pools.
type PrincipalRepositoryFacade interface {
	UserReader
	ClientReader
	EmployeeReader
	TrusteeReader
	InvestorReader
}
