package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trustee holds a custody box on behalf of the company. The balance is never stored.
type Trustee struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// TrustTransactionType is the direction of a trust box movement.
type TrustTransactionType string

const (
	TrustDeposit    TrustTransactionType = "Deposit"
	TrustWithdrawal TrustTransactionType = "Withdrawal"
)

// TrustTransaction is a single-currency movement in a trustee's box.
type TrustTransaction struct {
	ID          string               `json:"id"`
	TrusteeID   string               `json:"trusteeId"`
	Type        TrustTransactionType `json:"type"`
	Amount      decimal.Decimal      `json:"amount"`
	Date        time.Time            `json:"date"`
	Description string               `json:"description,omitempty"`
}

// InvestorKind distinguishes capital investors from project partners.
type InvestorKind string

const (
	InvestorCapital InvestorKind = "Capital"
	InvestorPartner InvestorKind = "Partner"
)

// Investor funds the company globally (Capital) or specific execution projects (Partner).
type Investor struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Kind             InvestorKind    `json:"kind"`
	ProfitPercentage decimal.Decimal `json:"profitPercentage"` // Capital investors only
	LinkedProjectIDs []string        `json:"linkedProjectIds,omitempty"`
	Username         string          `json:"username"`
	PasswordHash     string          `json:"-"`
}

// InvestorTransactionType is the kind of investor fund movement.
type InvestorTransactionType string

const (
	CapitalInjection   InvestorTransactionType = "Capital_Injection"
	ProfitDistribution InvestorTransactionType = "Profit_Distribution"
	InvestorWithdrawal InvestorTransactionType = "Withdrawal"
)

// InvestorTransaction is a movement on an investor account.
type InvestorTransaction struct {
	ID          string                  `json:"id"`
	InvestorID  string                  `json:"investorId"`
	Type        InvestorTransactionType `json:"type"`
	Amount      decimal.Decimal         `json:"amount"`
	Date        time.Time               `json:"date"`
	Description string                  `json:"description,omitempty"`
}
