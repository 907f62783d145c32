package dto

import "github.com/SscSPs/agency_ledger_app/internal/core/domain"

// UpdateRolePermissionsRequest replaces the allow-list of one role.
type UpdateRolePermissionsRequest struct {
	CanView []domain.ModuleTag `json:"canView" binding:"required,dive,staff_module"`
}

// ListRolePermissionsResponse wraps the permission table.
type ListRolePermissionsResponse struct {
	Roles []domain.RolePermissions `json:"roles"`
}

// ListAuditLogsParams defines query parameters for the audit trail.
type ListAuditLogsParams struct {
	Limit int `form:"limit,default=100"`
}

// ListAuditLogsResponse wraps the audit trail.
type ListAuditLogsResponse struct {
	Entries []domain.AuditLogEntry `json:"entries"`
}
