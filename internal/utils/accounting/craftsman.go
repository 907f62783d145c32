package accounting

import (
	"sort"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// sortByDate orders items ascending by key, keeping input order for equal keys.
func sortByDate[T any](items []T, key func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool { return key(items[i]) < key(items[j]) })
}

func bucketKey(projectID string) string {
	if domain.IsProjectless(projectID) {
		return domain.GeneralProjectID
	}
	return projectID
}

// CraftsmanLedger derives a craftsman's per-project position from invoices raised for
// work performed (owed to the craftsman) and payment transactions made to the craftsman.
// Balance = TotalWork − TotalPaid; positive means the company owes the craftsman.
func CraftsmanLedger(employeeID string, invoices []domain.Invoice, txns []domain.Transaction) domain.CraftsmanLedger {
	buckets := map[string]*domain.ProjectLedgerBucket{}
	get := func(projectID string) *domain.ProjectLedgerBucket {
		key := bucketKey(projectID)
		b, ok := buckets[key]
		if !ok {
			b = &domain.ProjectLedgerBucket{
				ProjectID: key,
				Entries:   []domain.LedgerEntry{},
				TotalWork: decimal.Zero,
				TotalPaid: decimal.Zero,
			}
			buckets[key] = b
		}
		return b
	}

	for _, inv := range invoices {
		if inv.RelatedEmployeeID != employeeID {
			continue
		}
		b := get(inv.ProjectID)
		b.TotalWork = b.TotalWork.Add(inv.Amount)
		b.Entries = append(b.Entries, domain.LedgerEntry{
			SourceID:    inv.ID,
			Kind:        domain.LedgerWork,
			Date:        inv.Date,
			Amount:      inv.Amount,
			Description: inv.Description,
		})
	}

	for _, txn := range txns {
		if txn.RecipientID != employeeID || txn.Type != domain.Payment {
			continue
		}
		b := get(txn.ProjectID)
		b.TotalPaid = b.TotalPaid.Add(txn.Amount)
		b.Entries = append(b.Entries, domain.LedgerEntry{
			SourceID:    txn.ID,
			Kind:        domain.LedgerPayment,
			Date:        txn.Date,
			Amount:      txn.Amount,
			Description: txn.Description,
		})
	}

	ledger := domain.CraftsmanLedger{
		EmployeeID:       employeeID,
		ProjectBreakdown: make([]domain.ProjectLedgerBucket, 0, len(buckets)),
		TotalWork:        decimal.Zero,
		TotalPaid:        decimal.Zero,
	}
	for _, b := range buckets {
		sortByDate(b.Entries, func(e domain.LedgerEntry) int64 { return e.Date.UnixNano() })
		b.Balance = b.TotalWork.Sub(b.TotalPaid)
		ledger.TotalWork = ledger.TotalWork.Add(b.TotalWork)
		ledger.TotalPaid = ledger.TotalPaid.Add(b.TotalPaid)
		ledger.ProjectBreakdown = append(ledger.ProjectBreakdown, *b)
	}
	// Project buckets by id, the General bucket last.
	sort.Slice(ledger.ProjectBreakdown, func(i, j int) bool {
		a, b := ledger.ProjectBreakdown[i].ProjectID, ledger.ProjectBreakdown[j].ProjectID
		if (a == domain.GeneralProjectID) != (b == domain.GeneralProjectID) {
			return b == domain.GeneralProjectID
		}
		return a < b
	})
	ledger.Balance = ledger.TotalWork.Sub(ledger.TotalPaid)
	return ledger
}
