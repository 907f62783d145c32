package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/SscSPs/agency_ledger_app/internal/observability/metrics"
	"github.com/google/uuid"
)

// moduleAliases maps navigation targets onto the module that governs them.
var moduleAliases = map[domain.ModuleTag]domain.ModuleTag{
	domain.ModuleSYPTransactions: domain.ModuleTransactions,
	domain.ModuleManagerReports:  domain.ModuleHR,
	domain.ModuleProjectDetails:  domain.ModuleProjects,
}

func governingModule(m domain.ModuleTag) domain.ModuleTag {
	if alias, ok := moduleAliases[m]; ok {
		return alias
	}
	return m
}

// permissionService owns the permission table and acts as the route guard.
type permissionService struct {
	BaseService
	permissionRepo portsrepo.PermissionRepository
	auditRepo      portsrepo.AuditLogRepository
}

// NewPermissionService creates the permission service. The returned value also
// implements portssvc.RouteGuardSvc.
func NewPermissionService(permissionRepo portsrepo.PermissionRepository, auditRepo portsrepo.AuditLogRepository) portssvc.PermissionSvcFacade {
	svc := &permissionService{
		permissionRepo: permissionRepo,
		auditRepo:      auditRepo,
	}
	svc.Authorizer = svc
	return svc
}

var (
	_ portssvc.PermissionSvcFacade = (*permissionService)(nil)
	_ portssvc.RouteGuardSvc       = (*permissionService)(nil)
)

// CanView implements the default-allow rule: a role without a table entry sees everything.
func (s *permissionService) CanView(ctx context.Context, role domain.Role, module domain.ModuleTag) bool {
	rp, err := s.permissionRepo.FindRolePermissions(ctx, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Role absent from permission table, allowed by default",
				slog.String("role", string(role)),
				slog.String("module", string(module)))
			return true
		}
		s.LogError(ctx, err, "Failed to load role permissions, denying",
			slog.String("role", string(role)),
			slog.String("module", string(module)))
		return false
	}
	return rp.Allows(module)
}

func (s *permissionService) Navigate(ctx context.Context, p domain.Principal, target domain.ModuleTag) domain.NavigationDecision {
	if p.Role.IsPortal() {
		landing := p.LandingModule()
		return domain.NavigationDecision{
			Requested:  target,
			Checked:    landing,
			Target:     landing,
			Allowed:    true,
			Redirected: target != landing,
		}
	}

	checked := governingModule(target)
	decision := domain.NavigationDecision{Requested: target, Checked: checked}
	switch {
	case checked == domain.ModuleDashboard:
		decision.Allowed = true
	case !checked.IsStaffModule():
		decision.Allowed = false
	default:
		decision.Allowed = s.CanView(ctx, p.Role, checked)
	}

	if decision.Allowed {
		decision.Target = target
	} else {
		decision.Target = domain.ModuleDashboard
		decision.Redirected = true
		s.LogWarn(ctx, "Navigation denied, redirecting to dashboard",
			slog.String("principal_id", p.ID),
			slog.String("role", string(p.Role)),
			slog.String("requested", string(target)),
			slog.String("checked", string(checked)))
	}
	metrics.ObserveNavigation(string(p.Role), string(checked), decision.Allowed)
	return decision
}

func (s *permissionService) RequireModule(ctx context.Context, p domain.Principal, module domain.ModuleTag) error {
	checked := governingModule(module)
	if p.Role.IsPortal() {
		s.LogWarn(ctx, "Portal principal denied staff module",
			slog.String("principal_id", p.ID),
			slog.String("role", string(p.Role)),
			slog.String("module", string(checked)))
		metrics.ObserveNavigation(string(p.Role), string(checked), false)
		return apperrors.ErrForbidden
	}
	if checked == domain.ModuleDashboard || s.CanView(ctx, p.Role, checked) {
		return nil
	}
	s.LogWarn(ctx, "Permission denied",
		slog.String("principal_id", p.ID),
		slog.String("role", string(p.Role)),
		slog.String("module", string(checked)))
	metrics.ObserveNavigation(string(p.Role), string(checked), false)
	return apperrors.ErrForbidden
}

func (s *permissionService) ListRolePermissions(ctx context.Context, actor domain.Principal) ([]domain.RolePermissions, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleSettings); err != nil {
		return nil, err
	}
	table, err := s.permissionRepo.ListRolePermissions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list role permissions")
		return nil, fmt.Errorf("failed to list role permissions: %w", err)
	}
	return table, nil
}

func (s *permissionService) GetRolePermissions(ctx context.Context, actor domain.Principal, role domain.Role) (*domain.RolePermissions, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleSettings); err != nil {
		return nil, err
	}
	rp, err := s.permissionRepo.FindRolePermissions(ctx, role)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load role permissions", slog.String("role", string(role)))
		}
		return nil, fmt.Errorf("failed to get permissions for role %s: %w", role, err)
	}
	return rp, nil
}

// UpdateRolePermissions replaces a staff role's allow-list. Duplicates are
// dropped keeping first occurrence order.
func (s *permissionService) UpdateRolePermissions(ctx context.Context, actor domain.Principal, role domain.Role, req dto.UpdateRolePermissionsRequest) (*domain.RolePermissions, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleSettings); err != nil {
		return nil, err
	}
	if !role.IsKnown() || role.IsPortal() {
		return nil, fmt.Errorf("%w: role %q is not a staff role", apperrors.ErrValidation, role)
	}

	seen := make(map[domain.ModuleTag]bool, len(req.CanView))
	modules := make([]domain.ModuleTag, 0, len(req.CanView))
	for _, m := range req.CanView {
		if !m.IsStaffModule() {
			return nil, fmt.Errorf("%w: unknown module %q", apperrors.ErrValidation, m)
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		modules = append(modules, m)
	}

	rp := domain.RolePermissions{Role: role, CanView: modules}
	if err := s.permissionRepo.SaveRolePermissions(ctx, rp); err != nil {
		s.LogError(ctx, err, "Failed to save role permissions", slog.String("role", string(role)))
		return nil, fmt.Errorf("failed to save role permissions: %w", err)
	}

	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = string(m)
	}
	entry := domain.AuditLogEntry{
		ID:            uuid.NewString(),
		Action:        "permissions_updated",
		PrincipalID:   actor.ID,
		PrincipalName: actor.Name,
		Role:          actor.Role,
		Details:       fmt.Sprintf("%s: %s", role, strings.Join(names, ",")),
		Timestamp:     time.Now().UTC(),
	}
	if err := s.auditRepo.AppendAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append audit log", slog.String("action", entry.Action))
	}

	s.LogInfo(ctx, "Role permissions updated",
		slog.String("role", string(role)),
		slog.Int("module_count", len(modules)),
		slog.String("updated_by", actor.ID))
	return &rp, nil
}
