package domain

import "github.com/shopspring/decimal"

// ProjectType drives the profit formula used by the profit/loss roll-up.
type ProjectType string

const (
	ProjectDesign      ProjectType = "Design"
	ProjectExecution   ProjectType = "Execution"
	ProjectSupervision ProjectType = "Supervision"
	ProjectOther       ProjectType = "Other"
)

// HasCostOfSales reports whether project expenses are deducted from revenue.
// Design and supervision work carries no cost of sales.
func (t ProjectType) HasCostOfSales() bool {
	return t != ProjectDesign && t != ProjectSupervision
}

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "Planning"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectOnHold     ProjectStatus = "On Hold"
	ProjectCompleted  ProjectStatus = "Completed"
)

// ContractType is the company compensation model for execution projects.
type ContractType string

const (
	ContractLumpSum    ContractType = "Lump Sum"
	ContractPercentage ContractType = "Percentage"
)

// Project is the central join key for transactions and invoices.
type Project struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	ClientName        string          `json:"clientName"`
	Budget            decimal.Decimal `json:"budget"`
	Type              ProjectType     `json:"type"`
	Status            ProjectStatus   `json:"status"`
	Progress          int             `json:"progress"` // 0..100
	WorkshopBalance   decimal.Decimal `json:"workshopBalance"`
	WorkshopThreshold decimal.Decimal `json:"workshopThreshold"`
	CompanyPercentage decimal.Decimal `json:"companyPercentage"`
	ContractType      ContractType    `json:"contractType"`
	AuditFields
}

// ProjectDeletePolicy decides what happens to records that reference a deleted project.
type ProjectDeletePolicy string

const (
	DeleteRestrict ProjectDeletePolicy = "restrict"
	DeleteCascade  ProjectDeletePolicy = "cascade"
	DeleteOrphan   ProjectDeletePolicy = "orphan"
)

// ParseDeletePolicy returns the policy for s, defaulting to restrict.
func ParseDeletePolicy(s string) ProjectDeletePolicy {
	switch ProjectDeletePolicy(s) {
	case DeleteCascade:
		return DeleteCascade
	case DeleteOrphan:
		return DeleteOrphan
	default:
		return DeleteRestrict
	}
}

// ProjectDeletion reports what a project delete did to the records referencing it.
type ProjectDeletion struct {
	ProjectID            string              `json:"projectId"`
	Policy               ProjectDeletePolicy `json:"policy"`
	TransactionsAffected int                 `json:"transactionsAffected"`
	InvoicesAffected     int                 `json:"invoicesAffected"`
}
