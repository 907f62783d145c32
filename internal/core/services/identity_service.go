package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/observability/metrics"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
)

type identityService struct {
	BaseService
	principalRepo portsrepo.PrincipalRepositoryFacade
	audit         portssvc.AuditSvcFacade
}

// NewIdentityService creates the login resolver. audit may be nil.
func NewIdentityService(principalRepo portsrepo.PrincipalRepositoryFacade, audit portssvc.AuditSvcFacade) portssvc.IdentitySvcFacade {
	return &identityService{
		principalRepo: principalRepo,
		audit:         audit,
	}
}

var _ portssvc.IdentitySvcFacade = (*identityService)(nil)

// poolLookup resolves identifier within one pool. It returns nil when no
// candidate of the pool has a matching password.
type poolLookup func(ctx context.Context, identifier, password string) (*domain.Principal, error)

func (s *identityService) ResolveLogin(ctx context.Context, identifier, password string) (*domain.Principal, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		metrics.ObserveLogin(false, "")
		return nil, apperrors.ErrInvalidCredentials
	}

	pools := []struct {
		name   string
		lookup poolLookup
	}{
		{"users", s.resolveUser},
		{"clients", s.resolveClient},
		{"employees", s.resolveEmployee},
		{"trustees", s.resolveTrustee},
		{"investors", s.resolveInvestor},
	}
	for _, pool := range pools {
		p, err := pool.lookup(ctx, identifier, password)
		if err != nil {
			s.LogError(ctx, err, "Failed to look up login candidates", slog.String("pool", pool.name))
			return nil, fmt.Errorf("failed to resolve login in %s: %w", pool.name, err)
		}
		if p == nil {
			continue
		}

		metrics.ObserveLogin(true, string(p.Role))
		s.LogInfo(ctx, "Login resolved",
			slog.String("principal_id", p.ID),
			slog.String("role", string(p.Role)),
			slog.String("pool", pool.name))
		if !p.Role.IsPortal() && s.audit != nil {
			s.audit.Record(ctx, "login", *p, "")
		}
		return p, nil
	}

	metrics.ObserveLogin(false, "")
	s.LogInfo(ctx, "Login rejected")
	return nil, apperrors.ErrInvalidCredentials
}

func (s *identityService) resolveUser(ctx context.Context, identifier, password string) (*domain.Principal, error) {
	users, err := s.principalRepo.FindUsersByLogin(ctx, identifier)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if utils.CheckPasswordHash(password, u.PasswordHash) {
			return &domain.Principal{ID: u.UserID, Name: u.Name, Role: u.Role, Email: u.Email, Avatar: u.Avatar}, nil
		}
	}
	return nil, nil
}

func (s *identityService) resolveClient(ctx context.Context, identifier, password string) (*domain.Principal, error) {
	clients, err := s.principalRepo.FindClientsByLogin(ctx, identifier)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		if utils.CheckPasswordHash(password, c.PasswordHash) {
			return &domain.Principal{ID: c.ID, Name: c.Name, Role: domain.RoleClient, Email: c.Email, ClientUsername: c.Username}, nil
		}
	}
	return nil, nil
}

func (s *identityService) resolveEmployee(ctx context.Context, identifier, password string) (*domain.Principal, error) {
	employees, err := s.principalRepo.FindEmployeesByLogin(ctx, identifier)
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		if utils.CheckPasswordHash(password, e.PasswordHash) {
			return &domain.Principal{ID: e.ID, Name: e.Name, Role: domain.RoleEmployee, Email: e.Email, EmployeeID: e.ID}, nil
		}
	}
	return nil, nil
}

func (s *identityService) resolveTrustee(ctx context.Context, identifier, password string) (*domain.Principal, error) {
	trustees, err := s.principalRepo.FindTrusteesByLogin(ctx, identifier)
	if err != nil {
		return nil, err
	}
	for _, t := range trustees {
		if utils.CheckPasswordHash(password, t.PasswordHash) {
			return &domain.Principal{ID: t.ID, Name: t.Name, Role: domain.RoleTrustee, TrusteeID: t.ID}, nil
		}
	}
	return nil, nil
}

func (s *identityService) resolveInvestor(ctx context.Context, identifier, password string) (*domain.Principal, error) {
	investors, err := s.principalRepo.FindInvestorsByLogin(ctx, identifier)
	if err != nil {
		return nil, err
	}
	for _, i := range investors {
		if utils.CheckPasswordHash(password, i.PasswordHash) {
			return &domain.Principal{ID: i.ID, Name: i.Name, Role: domain.RoleInvestor, InvestorID: i.ID}, nil
		}
	}
	return nil, nil
}
