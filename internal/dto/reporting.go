package dto

import (
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
)

// ReportParams defines query parameters shared by the period reports.
// Year 0 means the current year; an empty period is the whole year.
type ReportParams struct {
	Year     int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Period   string `form:"period"`
	Currency string `form:"currency"`
}

// DailySummaryParams defines query parameters for the daily cash summary.
type DailySummaryParams struct {
	Date string `form:"date"` // YYYY-MM-DD, defaults to today
}

// ProfitLossResponse is the profit and loss report with display strings for the headline figures.
type ProfitLossResponse struct {
	domain.ProfitLossReport
	Display struct {
		TotalProjectGrossProfit string `json:"totalProjectGrossProfit"`
		OperatingExpenses       string `json:"operatingExpenses"`
		NetProfit               string `json:"netProfit"`
	} `json:"display"`
}

func ToProfitLossResponse(r *domain.ProfitLossReport) ProfitLossResponse {
	resp := ProfitLossResponse{ProfitLossReport: *r}
	resp.Display.TotalProjectGrossProfit = utils.FormatCurrency(r.TotalProjectGrossProfit, r.Currency)
	resp.Display.OperatingExpenses = utils.FormatCurrency(r.OperatingExpenses, r.Currency)
	resp.Display.NetProfit = utils.FormatCurrency(r.NetProfit, r.Currency)
	return resp
}

// ExpenseReportResponse is the operating expense breakdown with a formatted total.
type ExpenseReportResponse struct {
	domain.ExpenseBreakdown
	TotalDisplay string `json:"totalDisplay"`
}

func ToExpenseReportResponse(b *domain.ExpenseBreakdown) ExpenseReportResponse {
	return ExpenseReportResponse{ExpenseBreakdown: *b, TotalDisplay: utils.FormatCurrency(b.TotalOpEx, b.Currency)}
}
