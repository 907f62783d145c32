package accounting

import (
	"sort"
	"strings"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type expenseRule struct {
	category domain.ExpenseCategory
	label    string
	keywords []string
}

// expenseRules are evaluated in order; the first rule with a matching keyword wins.
// Miscellaneous has no keywords and catches everything else.
var expenseRules = []expenseRule{
	{domain.ExpenseSalaries, "رواتب وأجور الموظفين", []string{"راتب", "أجور", "سلفة", "مكافأة"}},
	{domain.ExpenseRentUtilities, "إيجار ومرافق", []string{"إيجار", "كهرباء", "ماء", "نت", "اتصالات"}},
	{domain.ExpenseHospitality, "ضيافة ونظافة", []string{"ضيافة", "قهوة", "شاي", "تنظيف", "منظفات", "مناديل"}},
	{domain.ExpenseMaintenance, "صيانة وإصلاحات", []string{"صيانة", "إصلاح", "تكييف"}},
	{domain.ExpenseMarketing, "تسويق وإعلان", []string{"تسويق", "إعلان", "سوشيال"}},
	{domain.ExpenseGovernmentFees, "رسوم حكومية وتراخيص", []string{"رخصة", "سجل", "غرفة", "تجديد", "جوازات"}},
	{domain.ExpenseMiscellaneous, "مصاريف نثرية ومتنوعة", nil},
}

// ExpenseLabel returns the display label of a category.
func ExpenseLabel(c domain.ExpenseCategory) string {
	for _, r := range expenseRules {
		if r.category == c {
			return r.label
		}
	}
	return ""
}

// ClassifyExpense returns the category of a description by ordered substring match.
func ClassifyExpense(description string) domain.ExpenseCategory {
	desc := strings.ToLower(description)
	for _, r := range expenseRules {
		for _, kw := range r.keywords {
			if strings.Contains(desc, kw) {
				return r.category
			}
		}
	}
	return domain.ExpenseMiscellaneous
}

// IsOperatingExpense reports whether txn is an overhead payment in currency.
func IsOperatingExpense(txn domain.Transaction, currency domain.Currency) bool {
	return txn.Type == domain.Payment && txn.IsOverhead() && matchesCurrency(txn, currency)
}

// CategorizeExpenses buckets the operating-expense payments of one currency.
// Buckets with no payments are omitted; the rest are sorted by descending total,
// ties keeping category order.
func CategorizeExpenses(txns []domain.Transaction, currency domain.Currency) domain.ExpenseBreakdown {
	totals := make([]decimal.Decimal, len(expenseRules))
	counts := make([]int, len(expenseRules))
	for i := range totals {
		totals[i] = decimal.Zero
	}

	grand := decimal.Zero
	for _, txn := range txns {
		if !IsOperatingExpense(txn, currency) {
			continue
		}
		cat := ClassifyExpense(txn.Description)
		for i, r := range expenseRules {
			if r.category == cat {
				totals[i] = totals[i].Add(txn.Amount)
				counts[i]++
				break
			}
		}
		grand = grand.Add(txn.Amount)
	}

	breakdown := []domain.ExpenseBucket{}
	for i, r := range expenseRules {
		if counts[i] == 0 {
			continue
		}
		breakdown = append(breakdown, domain.ExpenseBucket{
			Category:    r.category,
			Label:       r.label,
			TotalAmount: totals[i],
			Count:       counts[i],
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].TotalAmount.GreaterThan(breakdown[j].TotalAmount)
	})

	return domain.ExpenseBreakdown{
		Currency:  currency,
		TotalOpEx: grand,
		Breakdown: breakdown,
	}
}
