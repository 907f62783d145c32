package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/SscSPs/agency_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/expenses", h.getExpenseReport)
		reportingGroup.GET("/profit-loss", h.getProfitAndLoss)
		reportingGroup.GET("/daily", h.getDailySummary)
	}
}

// bindReportParams reads year, period and currency, answering 400 on bad input.
func bindReportParams(c *gin.Context, logger *slog.Logger) (dto.ReportParams, domain.ReportPeriod, bool) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return params, "", false
	}
	period, err := domain.ParseReportPeriod(params.Period)
	if err != nil {
		logger.Warn("Invalid report period", slog.String("period", params.Period))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return params, "", false
	}
	return params, period, true
}

// getExpenseReport categorizes the operating expenses of a period.
//
//	GET /api/v1/reports/expenses?year=2024&period=q1&currency=USD
func (h *reportingHandler) getExpenseReport(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	params, period, ok := bindReportParams(c, logger)
	if !ok {
		return
	}

	breakdown, err := h.reportingService.ExpenseReport(c.Request.Context(), principal, params.Year, period, domain.Currency(params.Currency))
	if err != nil {
		respondServiceError(c, logger, err, "generate expense report")
		return
	}
	logger.Info("Expense report generated", slog.Int("categories", len(breakdown.Breakdown)))
	c.JSON(http.StatusOK, dto.ToExpenseReportResponse(breakdown))
}

// getProfitAndLoss rolls project gross profit and operating expenses up for a period.
//
//	GET /api/v1/reports/profit-loss?year=2024&period=annual&currency=USD
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	params, period, ok := bindReportParams(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), principal, params.Year, period, domain.Currency(params.Currency))
	if err != nil {
		respondServiceError(c, logger, err, "generate profit and loss report")
		return
	}
	logger.Info("Profit and loss report generated", slog.String("net_profit", report.NetProfit.String()))
	c.JSON(http.StatusOK, dto.ToProfitLossResponse(report))
}

// getDailySummary totals one day of cash movements per currency.
//
//	GET /api/v1/reports/daily?date=2024-03-09
func (h *reportingHandler) getDailySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var params dto.DailySummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var day time.Time
	if params.Date != "" {
		parsed, err := time.Parse("2006-01-02", params.Date)
		if err != nil {
			logger.Warn("Invalid date format", slog.String("date", params.Date))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	summary, err := h.reportingService.DailySummary(c.Request.Context(), principal, day)
	if err != nil {
		respondServiceError(c, logger, err, "generate daily summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
