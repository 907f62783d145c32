package memory

import (
	"context"
	"strings"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
)

func (s *Store) FindUsersByLogin(_ context.Context, identifier string) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.User{}
	for _, u := range s.users {
		if u.Email == identifier {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *Store) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.UserID == userID {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) FindClientsByLogin(_ context.Context, identifier string) ([]domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Client{}
	for _, c := range s.clients {
		if c.Username == identifier {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) FindEmployeesByLogin(_ context.Context, identifier string) ([]domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Employee{}
	for _, e := range s.employees {
		if strings.EqualFold(e.Username, identifier) ||
			(e.Email != "" && strings.EqualFold(e.Email, identifier)) ||
			strings.EqualFold(e.Name, identifier) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) FindEmployeeByID(_ context.Context, employeeID string) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.ID == employeeID {
			found := e
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListEmployees(_ context.Context) ([]domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Employee{}, s.employees...), nil
}

func (s *Store) FindTrusteesByLogin(_ context.Context, identifier string) ([]domain.Trustee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Trustee{}
	for _, t := range s.trustees {
		if t.Username == identifier {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) FindTrusteeByID(_ context.Context, trusteeID string) (*domain.Trustee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trustees {
		if t.ID == trusteeID {
			found := t
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListTrustees(_ context.Context) ([]domain.Trustee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Trustee{}, s.trustees...), nil
}

func (s *Store) FindInvestorsByLogin(_ context.Context, identifier string) ([]domain.Investor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Investor{}
	for _, i := range s.investors {
		if i.Username == identifier {
			out = append(out, i)
		}
	}
	return out, nil
}

func (s *Store) FindInvestorByID(_ context.Context, investorID string) (*domain.Investor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, i := range s.investors {
		if i.ID == investorID {
			found := i
			found.LinkedProjectIDs = append([]string(nil), i.LinkedProjectIDs...)
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListInvestors(_ context.Context) ([]domain.Investor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Investor, 0, len(s.investors))
	for _, i := range s.investors {
		i.LinkedProjectIDs = append([]string(nil), i.LinkedProjectIDs...)
		out = append(out, i)
	}
	return out, nil
}
