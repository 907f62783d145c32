package services

import (
	"context"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
)

// ReportingSvcFacade defines operations for generating financial reports.
type ReportingSvcFacade interface {
	// ExpenseReport categorizes the operating expenses of a period.
	ExpenseReport(ctx context.Context, actor domain.Principal, year int, period domain.ReportPeriod, currency domain.Currency) (*domain.ExpenseBreakdown, error)

	// ProfitAndLoss rolls project gross profit and operating expenses up for a period.
	ProfitAndLoss(ctx context.Context, actor domain.Principal, year int, period domain.ReportPeriod, currency domain.Currency) (*domain.ProfitLossReport, error)

	// DailySummary totals one day of cash movements per currency.
	DailySummary(ctx context.Context, actor domain.Principal, day time.Time) (*domain.DailySummary, error)
}
