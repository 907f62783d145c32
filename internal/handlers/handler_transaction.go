package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/SscSPs/agency_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: transactionService}

	rg.GET("/transactions", h.listTransactions)
	rg.POST("/transactions", h.recordTransaction)
	rg.POST("/invoices", h.recordInvoice)
}

// listTransactions pages through one currency ledger, newest first.
//
//	GET /api/v1/transactions?currency=&projectId=&limit=&nextToken=
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind list transactions query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	resp, err := h.transactionService.ListTransactions(c.Request.Context(), principal, params)
	if err != nil {
		respondServiceError(c, logger, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

//	POST /api/v1/transactions
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	txn, err := h.transactionService.RecordTransaction(c.Request.Context(), principal, req)
	if err != nil {
		respondServiceError(c, logger, err, "record transaction")
		return
	}
	logger.Info("Transaction recorded", slog.String("transaction_id", txn.ID), slog.String("currency", string(txn.Currency)))
	c.JSON(http.StatusCreated, txn)
}

//	POST /api/v1/invoices
func (h *transactionHandler) recordInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req dto.RecordInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind invoice request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	invoice, err := h.transactionService.RecordInvoice(c.Request.Context(), principal, req)
	if err != nil {
		respondServiceError(c, logger, err, "record invoice")
		return
	}
	c.JSON(http.StatusCreated, invoice)
}
