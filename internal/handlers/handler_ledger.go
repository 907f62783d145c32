package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/SscSPs/agency_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves the trustee, investor and craftsman balances. Portal
// principals reach their own records here; the service enforces ownership.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ledgerService}

	trustees := rg.Group("/trustees/:trusteeID")
	{
		trustees.GET("/statement", h.getTrusteeStatement)
		trustees.POST("/transactions", h.recordTrustTransaction)
	}

	investors := rg.Group("/investors/:investorID")
	{
		investors.GET("/statement", h.getInvestorStatement)
		investors.POST("/transactions", h.recordInvestorTransaction)
	}

	rg.GET("/employees/:employeeID/ledger", h.getCraftsmanLedger)
}

func (h *ledgerHandler) getTrusteeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	statement, err := h.ledgerService.GetTrusteeStatement(c.Request.Context(), principal, c.Param("trusteeID"))
	if err != nil {
		respondServiceError(c, logger, err, "get trustee statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrusteeStatementResponse(statement))
}

func (h *ledgerHandler) getInvestorStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	statement, err := h.ledgerService.GetInvestorStatement(c.Request.Context(), principal, c.Param("investorID"))
	if err != nil {
		respondServiceError(c, logger, err, "get investor statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvestorStatementResponse(statement))
}

func (h *ledgerHandler) getCraftsmanLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	ledger, err := h.ledgerService.GetCraftsmanLedger(c.Request.Context(), principal, c.Param("employeeID"))
	if err != nil {
		respondServiceError(c, logger, err, "get craftsman ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToCraftsmanLedgerResponse(ledger))
}

func (h *ledgerHandler) recordTrustTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req dto.RecordTrustTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind trust transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	txn, err := h.ledgerService.RecordTrustTransaction(c.Request.Context(), principal, c.Param("trusteeID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "record trust transaction")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

func (h *ledgerHandler) recordInvestorTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req dto.RecordInvestorTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind investor transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	txn, err := h.ledgerService.RecordInvestorTransaction(c.Request.Context(), principal, c.Param("investorID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "record investor transaction")
		return
	}
	c.JSON(http.StatusCreated, txn)
}
