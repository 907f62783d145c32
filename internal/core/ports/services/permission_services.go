package services

import (
	"context"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
)

// PermissionReaderSvc answers allow-list questions.
type PermissionReaderSvc interface {
	// CanView reports whether role may view module. A role absent from the
	// table may view everything.
	CanView(ctx context.Context, role domain.Role, module domain.ModuleTag) bool
	ListRolePermissions(ctx context.Context, actor domain.Principal) ([]domain.RolePermissions, error)
	GetRolePermissions(ctx context.Context, actor domain.Principal, role domain.Role) (*domain.RolePermissions, error)
}

// PermissionWriterSvc mutates the permission table from the settings screen.
type PermissionWriterSvc interface {
	UpdateRolePermissions(ctx context.Context, actor domain.Principal, role domain.Role, req dto.UpdateRolePermissionsRequest) (*domain.RolePermissions, error)
}

// PermissionSvcFacade combines the permission interfaces.
type PermissionSvcFacade interface {
	PermissionReaderSvc
	PermissionWriterSvc
}

// RouteGuardSvc enforces the permission matrix on navigation.
type RouteGuardSvc interface {
	// Navigate decides where a principal lands when asking for target.
	// Denial is not an error: the decision redirects to the dashboard.
	Navigate(ctx context.Context, p domain.Principal, target domain.ModuleTag) domain.NavigationDecision
	// RequireModule returns apperrors.ErrForbidden unless p may view module.
	RequireModule(ctx context.Context, p domain.Principal, module domain.ModuleTag) error
}
