package mapping

import (
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/SscSPs/agency_ledger_app/internal/models"
)

func ToModelTrustTransaction(d domain.TrustTransaction) models.TrustTransaction {
	return models.TrustTransaction{
		TrustTransactionID: d.ID,
		TrusteeID:          d.TrusteeID,
		TransactionType:    string(d.Type),
		Amount:             d.Amount,
		TransactionDate:    d.Date,
		Description:        d.Description,
	}
}

func ToDomainTrustTransaction(m models.TrustTransaction) domain.TrustTransaction {
	return domain.TrustTransaction{
		ID:          m.TrustTransactionID,
		TrusteeID:   m.TrusteeID,
		Type:        domain.TrustTransactionType(m.TransactionType),
		Amount:      m.Amount,
		Date:        m.TransactionDate.UTC(),
		Description: m.Description,
	}
}

func ToModelInvestorTransaction(d domain.InvestorTransaction) models.InvestorTransaction {
	return models.InvestorTransaction{
		InvestorTransactionID: d.ID,
		InvestorID:            d.InvestorID,
		TransactionType:       string(d.Type),
		Amount:                d.Amount,
		TransactionDate:       d.Date,
		Description:           d.Description,
	}
}

func ToDomainInvestorTransaction(m models.InvestorTransaction) domain.InvestorTransaction {
	return domain.InvestorTransaction{
		ID:          m.InvestorTransactionID,
		InvestorID:  m.InvestorID,
		Type:        domain.InvestorTransactionType(m.TransactionType),
		Amount:      m.Amount,
		Date:        m.TransactionDate.UTC(),
		Description: m.Description,
	}
}
