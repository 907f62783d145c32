package accounting

import (
	"fmt"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedTrustAmount applies the sign of a trust box movement.
// DEPOSIT -> Positive (+)
// WITHDRAWAL -> Negative (-)
func CalculateSignedTrustAmount(txn domain.TrustTransaction) (decimal.Decimal, error) {
	switch txn.Type {
	case domain.TrustDeposit:
		return txn.Amount, nil
	case domain.TrustWithdrawal:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown trust transaction type '%s' for transaction ID %s", txn.Type, txn.ID)
	}
}

// CalculateSignedInvestorAmount applies the sign of an investor account movement.
// CAPITAL_INJECTION / PROFIT_DISTRIBUTION -> Positive (+)
// WITHDRAWAL -> Negative (-)
func CalculateSignedInvestorAmount(txn domain.InvestorTransaction) (decimal.Decimal, error) {
	switch txn.Type {
	case domain.CapitalInjection, domain.ProfitDistribution:
		return txn.Amount, nil
	case domain.InvestorWithdrawal:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown investor transaction type '%s' for transaction ID %s", txn.Type, txn.ID)
	}
}

// ValidateAmount checks that a recorded amount is strictly positive.
// Direction is carried by the transaction type, never by the sign.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", amount.String())
	}
	return nil
}

// matchesCurrency treats the empty currency as "every ledger".
func matchesCurrency(txn domain.Transaction, currency domain.Currency) bool {
	return currency == "" || txn.Currency == currency
}
