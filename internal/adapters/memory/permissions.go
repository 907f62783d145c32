package memory

import (
	"context"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
)

func clonePermissions(rp domain.RolePermissions) domain.RolePermissions {
	rp.CanView = append([]domain.ModuleTag{}, rp.CanView...)
	return rp
}

func (s *Store) FindRolePermissions(_ context.Context, role domain.Role) (*domain.RolePermissions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rp, ok := s.permissions[role]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := clonePermissions(rp)
	return &out, nil
}

// ListRolePermissions returns the table in insertion order.
func (s *Store) ListRolePermissions(_ context.Context) ([]domain.RolePermissions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RolePermissions, 0, len(s.roleOrder))
	for _, role := range s.roleOrder {
		out = append(out, clonePermissions(s.permissions[role]))
	}
	return out, nil
}

func (s *Store) SaveRolePermissions(_ context.Context, rp domain.RolePermissions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.permissions[rp.Role]; !ok {
		s.roleOrder = append(s.roleOrder, rp.Role)
	}
	s.permissions[rp.Role] = clonePermissions(rp)
	return nil
}

func (s *Store) AppendAuditLog(_ context.Context, entry domain.AuditLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditLog = append(s.auditLog, entry)
	return nil
}

func (s *Store) ListAuditLogs(_ context.Context, limit int) ([]domain.AuditLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.AuditLogEntry{}
	for i := len(s.auditLog) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, s.auditLog[i])
	}
	return out, nil
}

// RevokeSession remembers tokenID until expiresAt; expired entries are dropped lazily.
func (s *Store) RevokeSession(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, id)
		}
	}
	s.revoked[tokenID] = expiresAt
	return nil
}

func (s *Store) IsSessionRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[tokenID]
	return ok, nil
}
