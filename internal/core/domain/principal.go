package domain

// Role is the kind of principal driving permissions and routing.
type Role string

const (
	RoleGeneralManager Role = "General Manager"
	RoleAccountant     Role = "Accountant"
	RoleProjectManager Role = "Project Manager"
	RoleEngineer       Role = "Engineer"
	RoleSecretary      Role = "Secretary"

	RoleClient   Role = "Client"
	RoleEmployee Role = "Employee"
	RoleTrustee  Role = "Trustee"
	RoleInvestor Role = "Investor"
)

// StaffRoles lists the roles subject to the permission matrix.
var StaffRoles = []Role{RoleGeneralManager, RoleAccountant, RoleProjectManager, RoleEngineer, RoleSecretary}

// IsPortal reports whether the role is routed to a dedicated single-purpose portal
// instead of the staff navigation.
func (r Role) IsPortal() bool {
	switch r {
	case RoleClient, RoleEmployee, RoleTrustee, RoleInvestor:
		return true
	}
	return false
}

// IsKnown reports whether r is one of the nine enumerated roles.
func (r Role) IsKnown() bool {
	if r.IsPortal() {
		return true
	}
	for _, s := range StaffRoles {
		if s == r {
			return true
		}
	}
	return false
}

// Principal is the authenticated identity, whatever pool it was resolved from.
// At most one back-reference is set; it decides the portal the principal lands on.
type Principal struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	Email          string `json:"email,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
	ClientUsername string `json:"clientUsername,omitempty"`
	EmployeeID     string `json:"employeeId,omitempty"`
	TrusteeID      string `json:"trusteeId,omitempty"`
	InvestorID     string `json:"investorId,omitempty"`
}

// LandingModule returns the module a principal is sent to right after login.
func (p Principal) LandingModule() ModuleTag {
	switch {
	case p.ClientUsername != "":
		return ModuleClientPortal
	case p.EmployeeID != "":
		return ModuleEmployeePortal
	case p.TrusteeID != "":
		return ModuleTrusteePortal
	case p.InvestorID != "":
		return ModuleInvestorPortal
	default:
		return ModuleDashboard
	}
}
