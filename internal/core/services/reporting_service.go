package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/observability/metrics"
	"github.com/SscSPs/agency_ledger_app/internal/utils/accounting"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	projectRepo     portsrepo.ProjectRepository
	defaultCurrency domain.Currency
	now             func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingAuthorizer sets the route guard for the reporting service.
func WithReportingAuthorizer(guard portssvc.RouteGuardSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.Authorizer = guard
	}
}

// WithReportingDefaultCurrency sets the currency used when a report names none.
func WithReportingDefaultCurrency(currency domain.Currency) ReportingServiceOption {
	return func(s *reportingService) {
		s.defaultCurrency = currency
	}
}

// WithReportingClock overrides the clock used to pick the current year.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(transactionRepo portsrepo.TransactionReader, projectRepo portsrepo.ProjectRepository, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		transactionRepo: transactionRepo,
		projectRepo:     projectRepo,
		defaultCurrency: domain.USD,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// periodWindow resolves the year default and returns the half-open range covered.
func (s *reportingService) periodWindow(year int, period domain.ReportPeriod) (int, time.Time, time.Time) {
	if year == 0 {
		year = s.now().UTC().Year()
	}
	fromMonth, toMonth := period.MonthRange()
	from := time.Date(year, fromMonth, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, toMonth+1, 1, 0, 0, 0, 0, time.UTC)
	return year, from, to
}

func (s *reportingService) resolveCurrency(currency domain.Currency) (domain.Currency, error) {
	c, ok := domain.ParseCurrency(string(currency), s.defaultCurrency)
	if !ok {
		return "", fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, currency)
	}
	return c, nil
}

func (s *reportingService) ExpenseReport(ctx context.Context, actor domain.Principal, year int, period domain.ReportPeriod, currency domain.Currency) (*domain.ExpenseBreakdown, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleReports); err != nil {
		return nil, err
	}
	start := time.Now()
	currency, err := s.resolveCurrency(currency)
	if err != nil {
		return nil, err
	}
	year, from, to := s.periodWindow(year, period)

	txns, err := s.transactionRepo.FindTransactions(ctx, portsrepo.TransactionFilter{Currency: currency, From: from, To: to})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for expense report",
			slog.Int("year", year),
			slog.String("period", string(period)))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	breakdown := accounting.CategorizeExpenses(txns, currency)
	metrics.ObserveReport("expenses", time.Since(start))
	s.LogInfo(ctx, "Expense report generated successfully",
		slog.Int("year", year),
		slog.String("period", string(period)),
		slog.String("currency", string(currency)),
		slog.Int("bucket_count", len(breakdown.Breakdown)))
	return &breakdown, nil
}

func (s *reportingService) ProfitAndLoss(ctx context.Context, actor domain.Principal, year int, period domain.ReportPeriod, currency domain.Currency) (*domain.ProfitLossReport, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleProfitLoss); err != nil {
		return nil, err
	}
	start := time.Now()
	currency, err := s.resolveCurrency(currency)
	if err != nil {
		return nil, err
	}
	year, from, to := s.periodWindow(year, period)

	txns, err := s.transactionRepo.FindTransactions(ctx, portsrepo.TransactionFilter{Currency: currency, From: from, To: to})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for profit and loss report",
			slog.Int("year", year),
			slog.String("period", string(period)))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve projects for profit and loss report")
		return nil, fmt.Errorf("failed to retrieve projects: %w", err)
	}

	if orphans := accounting.OrphanTransactions(txns, projects); len(orphans) > 0 {
		metrics.AddOrphanTransactions(len(orphans))
		for _, txn := range orphans {
			s.LogWarn(ctx, "Transaction references unknown project, excluded from gross profit",
				slog.String("transaction_id", txn.ID),
				slog.String("project_id", txn.ProjectID))
		}
	}

	report := accounting.ComputeProfitLoss(year, period, txns, projects, currency)
	metrics.ObserveReport("profit_loss", time.Since(start))
	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.Int("year", year),
		slog.String("period", string(period)),
		slog.String("currency", string(currency)),
		slog.String("net_profit", report.NetProfit.String()))
	return &report, nil
}

func (s *reportingService) DailySummary(ctx context.Context, actor domain.Principal, day time.Time) (*domain.DailySummary, error) {
	if err := s.AuthorizeModule(ctx, actor, domain.ModuleReports); err != nil {
		return nil, err
	}
	start := time.Now()
	if day.IsZero() {
		day = s.now()
	}
	y, m, d := day.UTC().Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	txns, err := s.transactionRepo.FindTransactions(ctx, portsrepo.TransactionFilter{From: from, To: from.AddDate(0, 0, 1)})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for daily summary", slog.String("date", from.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	summary := accounting.DailySummary(from, txns)
	metrics.ObserveReport("daily", time.Since(start))
	return &summary, nil
}
