package accounting

import (
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type grossRollup struct {
	projects []domain.ProjectProfit
	gross    decimal.Decimal
	opex     domain.ExpenseBreakdown
}

// rollup computes project gross profit and operating expenses over txns, which
// must already be filtered to the period and currency. Transactions pointing at a
// project missing from projects are skipped by the gross profit.
func rollup(txns []domain.Transaction, projects []domain.Project, currency domain.Currency) grossRollup {
	index := make(map[string]int, len(projects))
	for i, p := range projects {
		index[p.ID] = i
	}

	revenue := make([]decimal.Decimal, len(projects))
	expense := make([]decimal.Decimal, len(projects))
	seen := make([]bool, len(projects))
	for _, txn := range txns {
		i, ok := index[txn.ProjectID]
		if !ok {
			continue
		}
		seen[i] = true
		switch txn.Type {
		case domain.Receipt:
			revenue[i] = revenue[i].Add(txn.Amount)
		case domain.Payment:
			expense[i] = expense[i].Add(txn.Amount)
		}
	}

	r := grossRollup{projects: []domain.ProjectProfit{}, gross: decimal.Zero}
	for i, p := range projects {
		if !seen[i] {
			continue
		}
		profit := revenue[i]
		if p.Type.HasCostOfSales() {
			profit = revenue[i].Sub(expense[i])
		}
		r.projects = append(r.projects, domain.ProjectProfit{
			ProjectID:     p.ID,
			ProjectName:   p.Name,
			ProjectType:   p.Type,
			PeriodRevenue: revenue[i],
			PeriodExpense: expense[i],
			PeriodProfit:  profit,
		})
		r.gross = r.gross.Add(profit)
	}
	r.opex = CategorizeExpenses(txns, currency)
	return r
}

// ComputeProfitLoss rolls project gross profit and operating expenses up for a
// year and period in one currency, with one monthly point per month of the period.
func ComputeProfitLoss(year int, period domain.ReportPeriod, txns []domain.Transaction, projects []domain.Project, currency domain.Currency) domain.ProfitLossReport {
	inPeriod := []domain.Transaction{}
	for _, txn := range txns {
		if period.Contains(year, txn.Date) && matchesCurrency(txn, currency) {
			inPeriod = append(inPeriod, txn)
		}
	}

	total := rollup(inPeriod, projects, currency)
	report := domain.ProfitLossReport{
		Year:                    year,
		Period:                  period,
		Currency:                currency,
		Projects:                total.projects,
		TotalProjectGrossProfit: total.gross,
		OperatingExpenses:       total.opex.TotalOpEx,
		ExpenseBreakdown:        total.opex.Breakdown,
		NetProfit:               total.gross.Sub(total.opex.TotalOpEx),
		MonthlySeries:           []domain.MonthlyProfitPoint{},
	}

	from, to := period.MonthRange()
	for m := from; m <= to; m++ {
		month := domain.MonthPeriod(m)
		monthTxns := []domain.Transaction{}
		for _, txn := range inPeriod {
			if month.Contains(year, txn.Date) {
				monthTxns = append(monthTxns, txn)
			}
		}
		mr := rollup(monthTxns, projects, currency)
		report.MonthlySeries = append(report.MonthlySeries, domain.MonthlyProfitPoint{
			Month:                   m,
			TotalProjectGrossProfit: mr.gross,
			OperatingExpenses:       mr.opex.TotalOpEx,
			NetProfit:               mr.gross.Sub(mr.opex.TotalOpEx),
		})
	}
	return report
}

// OrphanTransactions returns the transactions that name a project missing from projects.
func OrphanTransactions(txns []domain.Transaction, projects []domain.Project) []domain.Transaction {
	known := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		known[p.ID] = struct{}{}
	}
	orphans := []domain.Transaction{}
	for _, txn := range txns {
		if txn.IsOverhead() {
			continue
		}
		if _, ok := known[txn.ProjectID]; !ok {
			orphans = append(orphans, txn)
		}
	}
	return orphans
}
