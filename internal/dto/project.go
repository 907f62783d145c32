package dto

import "github.com/SscSPs/agency_ledger_app/internal/core/domain"

// ListProjectsResponse wraps the list of projects.
type ListProjectsResponse struct {
	Projects []domain.Project `json:"projects"`
}

// ProjectSummaryParams defines query parameters for a project summary.
type ProjectSummaryParams struct {
	Currency string `form:"currency"`
}

// ProjectSummaryResponse is a project cash position with display strings.
type ProjectSummaryResponse struct {
	domain.ProjectFinancialSummary
	NetDisplay          string `json:"netDisplay"`
	CompanyShareDisplay string `json:"companyShareDisplay"`
}

func ToProjectSummaryResponse(s *domain.ProjectFinancialSummary) ProjectSummaryResponse {
	return ProjectSummaryResponse{
		ProjectFinancialSummary: *s,
		NetDisplay:              NewBalanceDisplay(s.Net, s.Currency).Formatted,
		CompanyShareDisplay:     NewBalanceDisplay(s.CompanyShare, s.Currency).Formatted,
	}
}
