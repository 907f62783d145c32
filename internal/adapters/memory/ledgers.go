package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/agency_ledger_app/internal/utils/pagination"
)

func (s *Store) FindProjectByID(_ context.Context, projectID string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == projectID {
			found := p
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListProjects(_ context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Project{}, s.projects...), nil
}

func (s *Store) DeleteProject(_ context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.projects {
		if p.ID == projectID {
			s.projects = append(s.projects[:i:i], s.projects[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func matchesFilter(txn domain.Transaction, f portsrepo.TransactionFilter) bool {
	if f.Currency != "" && txn.Currency != f.Currency {
		return false
	}
	if f.ProjectID != "" && txn.ProjectID != f.ProjectID {
		return false
	}
	if f.RecipientID != "" && txn.RecipientID != f.RecipientID {
		return false
	}
	if !f.From.IsZero() && txn.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !txn.Date.Before(f.To) {
		return false
	}
	if f.AfterDate != nil && !pagination.After(txn.Date, txn.ID, *f.AfterDate, f.AfterID) {
		return false
	}
	return true
}

// FindTransactions returns matching transactions newest first, ties by id.
func (s *Store) FindTransactions(_ context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	s.mu.RLock()
	out := []domain.Transaction{}
	for _, txn := range s.transactions {
		if matchesFilter(txn, filter) {
			out = append(out, txn)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return pagination.After(out[j].Date, out[j].ID, out[i].Date, out[i].ID)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *Store) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.transactions {
		if existing.ID == txn.ID {
			return apperrors.ErrDuplicate
		}
	}
	s.transactions = append(s.transactions, txn)
	return nil
}

func (s *Store) DeleteTransactionsByProject(_ context.Context, projectID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.transactions[:0:0]
	removed := 0
	for _, txn := range s.transactions {
		if txn.ProjectID == projectID {
			removed++
			continue
		}
		kept = append(kept, txn)
	}
	s.transactions = kept
	return removed, nil
}

func (s *Store) DetachTransactionsFromProject(_ context.Context, projectID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.transactions {
		if s.transactions[i].ProjectID == projectID {
			s.transactions[i].ProjectID = ""
			s.transactions[i].OrphanedProjectID = projectID
			n++
		}
	}
	return n, nil
}

func (s *Store) FindInvoices(_ context.Context, filter portsrepo.InvoiceFilter) ([]domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Invoice{}
	for _, inv := range s.invoices {
		if filter.ProjectID != "" && inv.ProjectID != filter.ProjectID {
			continue
		}
		if filter.RelatedEmployeeID != "" && inv.RelatedEmployeeID != filter.RelatedEmployeeID {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func (s *Store) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.invoices {
		if existing.ID == invoice.ID {
			return apperrors.ErrDuplicate
		}
	}
	s.invoices = append(s.invoices, invoice)
	return nil
}

func (s *Store) DeleteInvoicesByProject(_ context.Context, projectID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.invoices[:0:0]
	removed := 0
	for _, inv := range s.invoices {
		if inv.ProjectID == projectID {
			removed++
			continue
		}
		kept = append(kept, inv)
	}
	s.invoices = kept
	return removed, nil
}

func (s *Store) DetachInvoicesFromProject(_ context.Context, projectID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.invoices {
		if s.invoices[i].ProjectID == projectID {
			s.invoices[i].ProjectID = ""
			s.invoices[i].OrphanedProjectID = projectID
			n++
		}
	}
	return n, nil
}

func (s *Store) FindTrustTransactions(_ context.Context, trusteeID string) ([]domain.TrustTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.TrustTransaction{}
	for _, txn := range s.trustTxns {
		if trusteeID == "" || txn.TrusteeID == trusteeID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (s *Store) SaveTrustTransaction(_ context.Context, txn domain.TrustTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trustTxns = append(s.trustTxns, txn)
	return nil
}

func (s *Store) FindInvestorTransactions(_ context.Context, investorID string) ([]domain.InvestorTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.InvestorTransaction{}
	for _, txn := range s.investorTxns {
		if investorID == "" || txn.InvestorID == investorID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (s *Store) SaveInvestorTransaction(_ context.Context, txn domain.InvestorTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.investorTxns = append(s.investorTxns, txn)
	return nil
}
