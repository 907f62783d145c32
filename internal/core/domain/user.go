package domain

import "github.com/shopspring/decimal"

// User is a staff member of the agency who signs in with an email.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Avatar       string `json:"avatar,omitempty"`
	PasswordHash string `json:"-"`
}

// Client is a customer with access to the client portal.
type Client struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email,omitempty"`
	PasswordHash string `json:"-"`
}

// EmployeeType distinguishes salaried staff from craftsmen paid per work item.
type EmployeeType string

const (
	EmployeeStaff     EmployeeType = "Staff"
	EmployeeCraftsman EmployeeType = "Craftsman"
	EmployeeWorker    EmployeeType = "Worker"
)

// Employee has access to the employee portal. Craftsmen have a derived
// per-project ledger instead of a stored balance.
type Employee struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Type             EmployeeType    `json:"type"`
	Position         string          `json:"position,omitempty"`
	PettyCashBalance decimal.Decimal `json:"pettyCashBalance"`
	Username         string          `json:"username"`
	Email            string          `json:"email,omitempty"`
	PasswordHash     string          `json:"-"`
}
