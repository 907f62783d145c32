package domain

import "time"

// AuditLogEntry records a security relevant action.
type AuditLogEntry struct {
	ID            string    `json:"id"`
	Action        string    `json:"action"`
	PrincipalID   string    `json:"principalId"`
	PrincipalName string    `json:"principalName"`
	Role          Role      `json:"role"`
	Details       string    `json:"details,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
