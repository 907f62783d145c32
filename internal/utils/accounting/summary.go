package accounting

import (
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ProjectSummary computes the cash position of a project in one currency.
// Percentage contracts earn the company a share of expenses; lump sum contracts earn none here.
func ProjectSummary(project domain.Project, txns []domain.Transaction, currency domain.Currency) domain.ProjectFinancialSummary {
	s := domain.ProjectFinancialSummary{
		ProjectID:         project.ID,
		Currency:          currency,
		Revenue:           decimal.Zero,
		Expenses:          decimal.Zero,
		CompanyShare:      decimal.Zero,
		WorkshopBalance:   project.WorkshopBalance,
		WorkshopThreshold: project.WorkshopThreshold,
		WorkshopLow:       project.WorkshopBalance.LessThan(project.WorkshopThreshold),
	}
	for _, txn := range txns {
		if txn.ProjectID != project.ID || !matchesCurrency(txn, currency) {
			continue
		}
		switch txn.Type {
		case domain.Receipt:
			s.Revenue = s.Revenue.Add(txn.Amount)
		case domain.Payment:
			s.Expenses = s.Expenses.Add(txn.Amount)
		}
	}
	s.Net = s.Revenue.Sub(s.Expenses)
	if project.ContractType == domain.ContractPercentage {
		s.CompanyShare = s.Expenses.Mul(project.CompanyPercentage).Div(hundred)
	}
	return s
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// DailySummary totals receipts and payments per currency for the calendar day of day.
// Both currencies are always present, USD first.
func DailySummary(day time.Time, txns []domain.Transaction) domain.DailySummary {
	y, m, d := day.Date()
	out := domain.DailySummary{
		Date:   time.Date(y, m, d, 0, 0, 0, 0, day.Location()),
		Totals: []domain.CurrencyDayTotals{},
	}
	for _, cur := range []domain.Currency{domain.USD, domain.SYP} {
		t := domain.CurrencyDayTotals{Currency: cur, Receipts: decimal.Zero, Payments: decimal.Zero}
		for _, txn := range txns {
			if txn.Currency != cur || !sameDay(day, txn.Date) {
				continue
			}
			switch txn.Type {
			case domain.Receipt:
				t.Receipts = t.Receipts.Add(txn.Amount)
			case domain.Payment:
				t.Payments = t.Payments.Add(txn.Amount)
			default:
				continue
			}
			t.Count++
		}
		t.Net = t.Receipts.Sub(t.Payments)
		out.Totals = append(out.Totals, t)
	}
	return out
}
