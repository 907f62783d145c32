package dto

import (
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the data needed to append a transaction to a currency ledger.
type RecordTransactionRequest struct {
	Type          domain.TransactionType   `json:"type" binding:"required,oneof=Receipt Payment Transfer Journal"`
	Date          time.Time                `json:"date" binding:"required"`
	Amount        decimal.Decimal          `json:"amount" binding:"required,decimal_gt0"`
	Currency      domain.Currency          `json:"currency" binding:"required,currency"`
	Description   string                   `json:"description" binding:"max=500"`
	ProjectID     string                   `json:"projectId"`
	RecipientID   string                   `json:"recipientId"`
	RecipientType domain.RecipientType     `json:"recipientType" binding:"omitempty,oneof=Employee Supplier Trustee Investor Other"`
	Status        domain.TransactionStatus `json:"status" binding:"omitempty,oneof=Completed Pending_Settlement"`
}

// RecordInvoiceRequest defines the data needed to record an invoice.
type RecordInvoiceRequest struct {
	ProjectID         string               `json:"projectId" binding:"required"`
	Amount            decimal.Decimal      `json:"amount" binding:"required,decimal_gt0"`
	Date              time.Time            `json:"date" binding:"required"`
	Category          string               `json:"category" binding:"required,max=100"`
	Description       string               `json:"description" binding:"max=500"`
	Status            domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=Paid Pending Overdue"`
	RelatedEmployeeID string               `json:"relatedEmployeeId"`
}

// RecordTrustTransactionRequest defines a movement in a trustee box.
type RecordTrustTransactionRequest struct {
	Type        domain.TrustTransactionType `json:"type" binding:"required,oneof=Deposit Withdrawal"`
	Amount      decimal.Decimal             `json:"amount" binding:"required,decimal_gt0"`
	Date        time.Time                   `json:"date" binding:"required"`
	Description string                      `json:"description" binding:"max=500"`
}

// RecordInvestorTransactionRequest defines a movement on an investor account.
type RecordInvestorTransactionRequest struct {
	Type        domain.InvestorTransactionType `json:"type" binding:"required,oneof=Capital_Injection Profit_Distribution Withdrawal"`
	Amount      decimal.Decimal                `json:"amount" binding:"required,decimal_gt0"`
	Date        time.Time                      `json:"date" binding:"required"`
	Description string                         `json:"description" binding:"max=500"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Currency  string `form:"currency"`
	ProjectID string `form:"projectId"`
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse is one page of a currency ledger.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextToken    *string              `json:"nextToken,omitempty"`
}

// BalanceDisplay is a balance with its display string.
type BalanceDisplay struct {
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
}

// NewBalanceDisplay formats amount in currency.
func NewBalanceDisplay(amount decimal.Decimal, currency domain.Currency) BalanceDisplay {
	return BalanceDisplay{Amount: amount, Formatted: utils.FormatCurrency(amount, currency)}
}

// TrusteeStatementResponse is a trustee statement plus its formatted balance.
type TrusteeStatementResponse struct {
	domain.TrusteeStatement
	Display BalanceDisplay `json:"display"`
}

// InvestorStatementResponse is an investor statement plus its formatted balance.
type InvestorStatementResponse struct {
	domain.InvestorStatement
	Display BalanceDisplay `json:"display"`
}

// CraftsmanLedgerResponse is a craftsman ledger plus its formatted balance.
type CraftsmanLedgerResponse struct {
	domain.CraftsmanLedger
	Display BalanceDisplay `json:"display"`
}

// Fund balances are kept in the agency's base currency.
const fundCurrency = domain.USD

func ToTrusteeStatementResponse(s *domain.TrusteeStatement) TrusteeStatementResponse {
	return TrusteeStatementResponse{TrusteeStatement: *s, Display: NewBalanceDisplay(s.Balance, fundCurrency)}
}

func ToInvestorStatementResponse(s *domain.InvestorStatement) InvestorStatementResponse {
	return InvestorStatementResponse{InvestorStatement: *s, Display: NewBalanceDisplay(s.Balance, fundCurrency)}
}

func ToCraftsmanLedgerResponse(l *domain.CraftsmanLedger) CraftsmanLedgerResponse {
	return CraftsmanLedgerResponse{CraftsmanLedger: *l, Display: NewBalanceDisplay(l.Balance, fundCurrency)}
}
