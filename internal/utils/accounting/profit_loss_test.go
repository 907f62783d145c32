package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProfitLossEmpty(t *testing.T) {
	report := ComputeProfitLoss(2024, domain.PeriodAnnual, nil, nil, domain.USD)

	assertAmount(t, 0, report.TotalProjectGrossProfit)
	assertAmount(t, 0, report.OperatingExpenses)
	assertAmount(t, 0, report.NetProfit)
	assert.NotNil(t, report.Projects)
	assert.Empty(t, report.Projects)
	assert.NotNil(t, report.ExpenseBreakdown)
	assert.Len(t, report.MonthlySeries, 12)
}

func TestComputeProfitLossProjectTypeRules(t *testing.T) {
	projects := []domain.Project{
		{ID: "exec", Name: "Villa", Type: domain.ProjectExecution},
		{ID: "design", Name: "Office", Type: domain.ProjectDesign},
	}
	when := day(2024, time.March, 10)
	txns := []domain.Transaction{
		receipt("r1", 10000, "exec", domain.USD, when),
		payment("p1", 4000, "مواد", "exec", domain.USD, when),
		receipt("r2", 10000, "design", domain.USD, when),
		payment("p2", 4000, "طباعة", "design", domain.USD, when),
	}

	report := ComputeProfitLoss(2024, domain.PeriodAnnual, txns, projects, domain.USD)

	require.Len(t, report.Projects, 2)
	assert.Equal(t, "exec", report.Projects[0].ProjectID)
	assertAmount(t, 6000, report.Projects[0].PeriodProfit)
	assert.Equal(t, "design", report.Projects[1].ProjectID)
	assertAmount(t, 10000, report.Projects[1].PeriodProfit)
	assertAmount(t, 4000, report.Projects[1].PeriodExpense)
	assertAmount(t, 16000, report.TotalProjectGrossProfit)
}

func TestComputeProfitLossDesignIgnoresLosses(t *testing.T) {
	projects := []domain.Project{{ID: "sup", Type: domain.ProjectSupervision}}
	when := day(2024, time.July, 1)
	txns := []domain.Transaction{
		receipt("r", 1000, "sup", domain.USD, when),
		payment("p", 5000, "", "sup", domain.USD, when),
	}
	report := ComputeProfitLoss(2024, domain.PeriodAnnual, txns, projects, domain.USD)
	assertAmount(t, 1000, report.TotalProjectGrossProfit)
}

func TestComputeProfitLossPeriodsAndOpEx(t *testing.T) {
	projects := []domain.Project{{ID: "exec", Name: "Villa", Type: domain.ProjectExecution}}
	txns := []domain.Transaction{
		receipt("jan", 5000, "exec", domain.USD, day(2024, time.January, 15)),
		receipt("feb", 3000, "exec", domain.USD, day(2024, time.February, 15)),
		payment("feb-cost", 1000, "حديد", "exec", domain.USD, day(2024, time.February, 20)),
		payment("feb-rent", 500, "إيجار المكتب", "", domain.USD, day(2024, time.February, 1)),
		receipt("apr", 9000, "exec", domain.USD, day(2024, time.April, 1)),
		receipt("last-year", 9000, "exec", domain.USD, day(2023, time.February, 1)),
		receipt("syp", 9000, "exec", domain.SYP, day(2024, time.February, 1)),
		receipt("orphan", 7000, "deleted-project", domain.USD, day(2024, time.February, 1)),
	}

	report := ComputeProfitLoss(2024, domain.PeriodQ1, txns, projects, domain.USD)

	assert.Equal(t, domain.PeriodQ1, report.Period)
	assertAmount(t, 7000, report.TotalProjectGrossProfit)
	assertAmount(t, 500, report.OperatingExpenses)
	assertAmount(t, 6500, report.NetProfit)
	require.Len(t, report.ExpenseBreakdown, 1)
	assert.Equal(t, domain.ExpenseRentUtilities, report.ExpenseBreakdown[0].Category)

	require.Len(t, report.MonthlySeries, 3)
	assert.Equal(t, time.January, report.MonthlySeries[0].Month)
	assertAmount(t, 5000, report.MonthlySeries[0].NetProfit)
	assertAmount(t, 2000, report.MonthlySeries[1].TotalProjectGrossProfit)
	assertAmount(t, 500, report.MonthlySeries[1].OperatingExpenses)
	assertAmount(t, 1500, report.MonthlySeries[1].NetProfit)
	assertAmount(t, 0, report.MonthlySeries[2].NetProfit)

	monthly := d(0)
	for _, p := range report.MonthlySeries {
		monthly = monthly.Add(p.NetProfit)
	}
	assert.True(t, monthly.Equal(report.NetProfit), "monthly series adds up to the period")

	single := ComputeProfitLoss(2024, domain.MonthPeriod(time.April), txns, projects, domain.USD)
	assertAmount(t, 9000, single.NetProfit)
	require.Len(t, single.MonthlySeries, 1)
	assert.Equal(t, time.April, single.MonthlySeries[0].Month)
}

func TestOrphanTransactions(t *testing.T) {
	projects := []domain.Project{{ID: "p-1"}}
	txns := []domain.Transaction{
		receipt("ok", 1, "p-1", domain.USD, day(2024, 1, 1)),
		receipt("orphan", 1, "gone", domain.USD, day(2024, 1, 1)),
		payment("overhead", 1, "", "", domain.USD, day(2024, 1, 1)),
		payment("general", 1, "", domain.GeneralProjectID, domain.USD, day(2024, 1, 1)),
	}
	orphans := OrphanTransactions(txns, projects)
	require.Len(t, orphans, 1)
	assert.Equal(t, "orphan", orphans[0].ID)
}

func TestComputeProfitLossBucketsNonUTCDatesByUTC(t *testing.T) {
	when := time.Date(2024, time.December, 31, 22, 0, 0, 0, time.UTC).In(time.FixedZone("UTC+3", 3*3600))
	txns := []domain.Transaction{payment("salary", 500, "راتب شهر ديسمبر", "", domain.USD, when)}

	report := ComputeProfitLoss(2024, domain.PeriodAnnual, txns, nil, domain.USD)
	assertAmount(t, 500, report.OperatingExpenses)
	require.Len(t, report.MonthlySeries, 12)
	assertAmount(t, 500, report.MonthlySeries[11].OperatingExpenses)

	next := ComputeProfitLoss(2025, domain.PeriodAnnual, txns, nil, domain.USD)
	assertAmount(t, 0, next.OperatingExpenses)
}
