package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryKind tells work entries from payment entries in a craftsman ledger.
type LedgerEntryKind string

const (
	LedgerWork    LedgerEntryKind = "Work"
	LedgerPayment LedgerEntryKind = "Payment"
)

// LedgerEntry is one line in a craftsman project bucket.
type LedgerEntry struct {
	SourceID    string          `json:"sourceId"` // Invoice or transaction ID
	Kind        LedgerEntryKind `json:"kind"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// ProjectLedgerBucket groups a craftsman's work and payments for one project.
type ProjectLedgerBucket struct {
	ProjectID string          `json:"projectId"`
	Entries   []LedgerEntry   `json:"entries"`
	TotalWork decimal.Decimal `json:"totalWork"`
	TotalPaid decimal.Decimal `json:"totalPaid"`
	Balance   decimal.Decimal `json:"balance"`
}

// CraftsmanLedger is the derived balance of a craftsman. A positive Balance
// means the company owes the craftsman; negative means the craftsman owes the company.
type CraftsmanLedger struct {
	EmployeeID       string                `json:"employeeId"`
	ProjectBreakdown []ProjectLedgerBucket `json:"projectBreakdown"`
	TotalWork        decimal.Decimal       `json:"totalWork"`
	TotalPaid        decimal.Decimal       `json:"totalPaid"`
	Balance          decimal.Decimal       `json:"balance"`
}

// ExpenseCategory is an operating-expense bucket.
type ExpenseCategory string

const (
	ExpenseSalaries       ExpenseCategory = "salaries"
	ExpenseRentUtilities  ExpenseCategory = "rent_utilities"
	ExpenseHospitality    ExpenseCategory = "hospitality_cleaning"
	ExpenseMaintenance    ExpenseCategory = "maintenance"
	ExpenseMarketing      ExpenseCategory = "marketing"
	ExpenseGovernmentFees ExpenseCategory = "government_fees"
	ExpenseMiscellaneous  ExpenseCategory = "miscellaneous"
)

// ExpenseBucket is the total spent in one category.
type ExpenseBucket struct {
	Category    ExpenseCategory `json:"category"`
	Label       string          `json:"label"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int             `json:"count"`
}

// ExpenseBreakdown is the operating-expense report, sorted descending by total.
type ExpenseBreakdown struct {
	Currency  Currency        `json:"currency"`
	TotalOpEx decimal.Decimal `json:"totalOpEx"`
	Breakdown []ExpenseBucket `json:"breakdown"`
}

// ProjectProfit is the contribution of one project to the gross profit of a period.
type ProjectProfit struct {
	ProjectID     string          `json:"projectId"`
	ProjectName   string          `json:"projectName"`
	ProjectType   ProjectType     `json:"projectType"`
	PeriodRevenue decimal.Decimal `json:"periodRevenue"`
	PeriodExpense decimal.Decimal `json:"periodExpense"`
	PeriodProfit  decimal.Decimal `json:"periodProfit"`
}

// MonthlyProfitPoint is one point of the monthly chart series.
type MonthlyProfitPoint struct {
	Month                   time.Month      `json:"month"`
	TotalProjectGrossProfit decimal.Decimal `json:"totalProjectGrossProfit"`
	OperatingExpenses       decimal.Decimal `json:"operatingExpenses"`
	NetProfit               decimal.Decimal `json:"netProfit"`
}

// ProfitLossReport is the roll-up of project gross profit and operating expenses.
type ProfitLossReport struct {
	Year                    int                  `json:"year"`
	Period                  ReportPeriod         `json:"period"`
	Currency                Currency             `json:"currency"`
	Projects                []ProjectProfit      `json:"projects"`
	TotalProjectGrossProfit decimal.Decimal      `json:"totalProjectGrossProfit"`
	OperatingExpenses       decimal.Decimal      `json:"operatingExpenses"`
	ExpenseBreakdown        []ExpenseBucket      `json:"expenseBreakdown"`
	NetProfit               decimal.Decimal      `json:"netProfit"`
	MonthlySeries           []MonthlyProfitPoint `json:"monthlySeries"`
}

// ProjectFinancialSummary is the cash position of a single project in one currency.
type ProjectFinancialSummary struct {
	ProjectID         string          `json:"projectId"`
	Currency          Currency        `json:"currency"`
	Revenue           decimal.Decimal `json:"revenue"`
	Expenses          decimal.Decimal `json:"expenses"`
	Net               decimal.Decimal `json:"net"`
	CompanyShare      decimal.Decimal `json:"companyShare"`
	WorkshopBalance   decimal.Decimal `json:"workshopBalance"`
	WorkshopThreshold decimal.Decimal `json:"workshopThreshold"`
	WorkshopLow       bool            `json:"workshopLow"`
}

// TrusteeStatement summarises a trustee box.
type TrusteeStatement struct {
	TrusteeID    string             `json:"trusteeId"`
	Name         string             `json:"name"`
	Deposits     decimal.Decimal    `json:"deposits"`
	Withdrawals  decimal.Decimal    `json:"withdrawals"`
	Balance      decimal.Decimal    `json:"balance"`
	Deficit      bool               `json:"deficit"`
	Transactions []TrustTransaction `json:"transactions"`
}

// InvestorStatement summarises an investor account.
type InvestorStatement struct {
	InvestorID       string                `json:"investorId"`
	Name             string                `json:"name"`
	Kind             InvestorKind          `json:"kind"`
	Capital          decimal.Decimal       `json:"capital"`
	Profit           decimal.Decimal       `json:"profit"`
	Withdrawals      decimal.Decimal       `json:"withdrawals"`
	Balance          decimal.Decimal       `json:"balance"`
	Deficit          bool                  `json:"deficit"`
	LinkedProjectIDs []string              `json:"linkedProjectIds,omitempty"`
	Transactions     []InvestorTransaction `json:"transactions"`
}

// CurrencyDayTotals is the cash movement of one currency on one day.
type CurrencyDayTotals struct {
	Currency Currency        `json:"currency"`
	Receipts decimal.Decimal `json:"receipts"`
	Payments decimal.Decimal `json:"payments"`
	Net      decimal.Decimal `json:"net"`
	Count    int             `json:"count"`
}

// DailySummary is the cash movement of a single calendar day, per currency.
type DailySummary struct {
	Date   time.Time           `json:"date"`
	Totals []CurrencyDayTotals `json:"totals"`
}
