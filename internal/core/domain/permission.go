package domain

// ModuleTag identifies a navigable module of the application.
type ModuleTag string

const (
	ModuleDashboard       ModuleTag = "dashboard"
	ModuleProjects        ModuleTag = "projects"
	ModuleProjectDetails  ModuleTag = "project_details"
	ModuleClients         ModuleTag = "clients"
	ModuleTransactions    ModuleTag = "transactions"
	ModuleSYPTransactions ModuleTag = "syp_transactions"
	ModuleInvoices        ModuleTag = "invoices"
	ModuleHR              ModuleTag = "hr"
	ModuleManagerReports  ModuleTag = "manager_reports"
	ModuleReports         ModuleTag = "reports"
	ModuleProfitLoss      ModuleTag = "profit_loss"
	ModuleTrusts          ModuleTag = "trusts"
	ModuleInvestors       ModuleTag = "investors"
	ModuleFiles           ModuleTag = "files"
	ModuleChat            ModuleTag = "chat"
	ModuleSettings        ModuleTag = "settings"

	ModuleClientPortal   ModuleTag = "client_portal"
	ModuleEmployeePortal ModuleTag = "employee_portal"
	ModuleTrusteePortal  ModuleTag = "trustee_portal"
	ModuleInvestorPortal ModuleTag = "investor_portal"
)

// StaffModules lists the modules that can appear in a staff allow-list.
var StaffModules = []ModuleTag{
	ModuleDashboard, ModuleProjects, ModuleProjectDetails, ModuleClients, ModuleTransactions,
	ModuleSYPTransactions, ModuleInvoices, ModuleHR, ModuleManagerReports, ModuleReports,
	ModuleProfitLoss, ModuleTrusts, ModuleInvestors, ModuleFiles, ModuleChat, ModuleSettings,
}

// IsStaffModule reports whether m is a known staff module.
func (m ModuleTag) IsStaffModule() bool {
	for _, s := range StaffModules {
		if s == m {
			return true
		}
	}
	return false
}

// RolePermissions is the allow-list of modules a staff role may view.
type RolePermissions struct {
	Role    Role        `json:"role"`
	CanView []ModuleTag `json:"canView"`
}

// Allows reports whether the allow-list contains module.
func (rp RolePermissions) Allows(module ModuleTag) bool {
	for _, m := range rp.CanView {
		if m == module {
			return true
		}
	}
	return false
}

// NavigationDecision is the outcome of a route guard check.
type NavigationDecision struct {
	Requested  ModuleTag `json:"requested"`  // The module asked for
	Checked    ModuleTag `json:"checked"`    // The module the permission check ran against, after aliasing
	Target     ModuleTag `json:"target"`     // Where the principal actually lands
	Allowed    bool      `json:"allowed"`
	Redirected bool      `json:"redirected"`
}
