package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
)

// PermissionRepository stores the role permission table.
type PermissionRepository interface {
	// FindRolePermissions returns apperrors.ErrNotFound when the role has no entry.
	FindRolePermissions(ctx context.Context, role domain.Role) (*domain.RolePermissions, error)
	ListRolePermissions(ctx context.Context) ([]domain.RolePermissions, error)
	// SaveRolePermissions replaces the allow-list of a role, creating the entry if needed.
	SaveRolePermissions(ctx context.Context, rp domain.RolePermissions) error
}

// AuditLogRepository stores the append-only audit trail.
type AuditLogRepository interface {
	AppendAuditLog(ctx context.Context, entry domain.AuditLogEntry) error
	// ListAuditLogs returns the newest entries first, at most limit of them.
	ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLogEntry, error)
}

// SessionRepository tracks revoked session tokens until they expire.
type SessionRepository interface {
	RevokeSession(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsSessionRevoked(ctx context.Context, tokenID string) (bool, error)
}
