package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/utils/pagination"
	"github.com/google/uuid"
)

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepository
}

// AuditServiceOption is a functional option for configuring the audit service
type AuditServiceOption func(*auditService)

// WithAuditAuthorizer sets the route guard used to protect the audit trail.
func WithAuditAuthorizer(guard portssvc.RouteGuardSvc) AuditServiceOption {
	return func(s *auditService) {
		s.Authorizer = guard
	}
}

// NewAuditService creates a new audit service with the provided options
func NewAuditService(repo portsrepo.AuditLogRepository, options ...AuditServiceOption) portssvc.AuditSvcFacade {
	svc := &auditService{auditRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record appends an entry. A failure to write is logged, never returned: the
// action being audited has already happened.
func (s *auditService) Record(ctx context.Context, action string, p domain.Principal, details string) {
	entry := domain.AuditLogEntry{
		ID:            uuid.NewString(),
		Action:        action,
		PrincipalID:   p.ID,
		PrincipalName: p.Name,
		Role:          p.Role,
		Details:       details,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.auditRepo.AppendAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append audit log",
			slog.String("action", action),
			slog.String("principal_id", p.ID))
		return
	}
	s.LogInfo(ctx, "Audit entry recorded",
		slog.String("action", action),
		slog.String("principal_id", p.ID),
		slog.String("role", string(p.Role)))
}

func (s *auditService) ListAuditLogs(ctx context.Context, actor domain.Principal, limit int) ([]domain.AuditLogEntry, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleSettings); err != nil {
		return nil, err
	}
	entries, err := s.auditRepo.ListAuditLogs(ctx, pagination.ClampLimit(limit))
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit logs")
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return entries, nil
}
