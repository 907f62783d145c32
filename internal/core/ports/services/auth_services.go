package services

import (
	"context"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
)

// IdentitySvcFacade resolves login credentials against the principal pools.
type IdentitySvcFacade interface {
	// ResolveLogin tries staff users, clients, employees, trustees and investors in
	// that order. Any failure is apperrors.ErrInvalidCredentials.
	ResolveLogin(ctx context.Context, identifier, password string) (*domain.Principal, error)
}

// TokenSvcFacade issues and validates session tokens.
type TokenSvcFacade interface {
	IssueSession(ctx context.Context, p domain.Principal) (*domain.Session, error)
	// ParseSession returns the principal and token id, or apperrors.ErrUnauthorized.
	ParseSession(ctx context.Context, token string) (*domain.Principal, string, error)
	RevokeSession(ctx context.Context, token string) error
}

// AuditSvcFacade records and lists security relevant actions.
type AuditSvcFacade interface {
	Record(ctx context.Context, action string, p domain.Principal, details string)
	ListAuditLogs(ctx context.Context, actor domain.Principal, limit int) ([]domain.AuditLogEntry, error)
}
