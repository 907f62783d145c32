package accounting

import (
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrusteeBalance is Σ deposits − Σ withdrawals over the trustee's own transactions.
// The result may be negative (a broken box); that is a valid state.
func TrusteeBalance(trusteeID string, txns []domain.TrustTransaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range txns {
		if txn.TrusteeID != trusteeID {
			continue
		}
		signed, err := CalculateSignedTrustAmount(txn)
		if err != nil {
			continue
		}
		balance = balance.Add(signed)
	}
	return balance
}

// InvestorBalance is Σ capital + Σ profit − Σ withdrawals over the investor's own transactions.
func InvestorBalance(investorID string, txns []domain.InvestorTransaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range txns {
		if txn.InvestorID != investorID {
			continue
		}
		signed, err := CalculateSignedInvestorAmount(txn)
		if err != nil {
			continue
		}
		balance = balance.Add(signed)
	}
	return balance
}

// BuildTrusteeStatement totals a trustee box and keeps its transactions in date order.
func BuildTrusteeStatement(trustee domain.Trustee, txns []domain.TrustTransaction) domain.TrusteeStatement {
	stmt := domain.TrusteeStatement{
		TrusteeID:    trustee.ID,
		Name:         trustee.Name,
		Deposits:     decimal.Zero,
		Withdrawals:  decimal.Zero,
		Transactions: []domain.TrustTransaction{},
	}
	for _, txn := range txns {
		if txn.TrusteeID != trustee.ID {
			continue
		}
		switch txn.Type {
		case domain.TrustDeposit:
			stmt.Deposits = stmt.Deposits.Add(txn.Amount)
		case domain.TrustWithdrawal:
			stmt.Withdrawals = stmt.Withdrawals.Add(txn.Amount)
		}
		stmt.Transactions = append(stmt.Transactions, txn)
	}
	sortByDate(stmt.Transactions, func(t domain.TrustTransaction) int64 { return t.Date.UnixNano() })
	stmt.Balance = stmt.Deposits.Sub(stmt.Withdrawals)
	stmt.Deficit = stmt.Balance.IsNegative()
	return stmt
}

// BuildInvestorStatement totals an investor account and keeps its transactions in date order.
func BuildInvestorStatement(investor domain.Investor, txns []domain.InvestorTransaction) domain.InvestorStatement {
	stmt := domain.InvestorStatement{
		InvestorID:       investor.ID,
		Name:             investor.Name,
		Kind:             investor.Kind,
		Capital:          decimal.Zero,
		Profit:           decimal.Zero,
		Withdrawals:      decimal.Zero,
		LinkedProjectIDs: investor.LinkedProjectIDs,
		Transactions:     []domain.InvestorTransaction{},
	}
	for _, txn := range txns {
		if txn.InvestorID != investor.ID {
			continue
		}
		switch txn.Type {
		case domain.CapitalInjection:
			stmt.Capital = stmt.Capital.Add(txn.Amount)
		case domain.ProfitDistribution:
			stmt.Profit = stmt.Profit.Add(txn.Amount)
		case domain.InvestorWithdrawal:
			stmt.Withdrawals = stmt.Withdrawals.Add(txn.Amount)
		}
		stmt.Transactions = append(stmt.Transactions, txn)
	}
	sortByDate(stmt.Transactions, func(t domain.InvestorTransaction) int64 { return t.Date.UnixNano() })
	stmt.Balance = stmt.Capital.Add(stmt.Profit).Sub(stmt.Withdrawals)
	stmt.Deficit = stmt.Balance.IsNegative()
	return stmt
}
