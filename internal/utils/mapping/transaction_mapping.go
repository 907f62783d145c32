package mapping

import (
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/SscSPs/agency_ledger_app/internal/models"
)

func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     d.ID,
		TransactionType:   string(d.Type),
		TransactionDate:   d.Date,
		Amount:            d.Amount,
		CurrencyCode:      string(d.Currency),
		Description:       d.Description,
		ProjectID:         nullString(d.ProjectID),
		RecipientID:       nullString(d.RecipientID),
		RecipientType:     nullString(string(d.RecipientType)),
		Status:            string(d.Status),
		OrphanedProjectID: nullString(d.OrphanedProjectID),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:                m.TransactionID,
		Type:              domain.TransactionType(m.TransactionType),
		Date:              m.TransactionDate.UTC(),
		Amount:            m.Amount,
		Currency:          domain.Currency(m.CurrencyCode),
		Description:       m.Description,
		ProjectID:         fromNullString(m.ProjectID),
		RecipientID:       fromNullString(m.RecipientID),
		RecipientType:     domain.RecipientType(fromNullString(m.RecipientType)),
		Status:            domain.TransactionStatus(m.Status),
		OrphanedProjectID: fromNullString(m.OrphanedProjectID),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:         d.ID,
		ProjectID:         nullString(d.ProjectID),
		Amount:            d.Amount,
		InvoiceDate:       d.Date,
		Category:          d.Category,
		Description:       d.Description,
		Status:            string(d.Status),
		RelatedEmployeeID: nullString(d.RelatedEmployeeID),
		OrphanedProjectID: nullString(d.OrphanedProjectID),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:                m.InvoiceID,
		ProjectID:         fromNullString(m.ProjectID),
		Amount:            m.Amount,
		Date:              m.InvoiceDate.UTC(),
		Category:          m.Category,
		Description:       m.Description,
		Status:            domain.InvoiceStatus(m.Status),
		RelatedEmployeeID: fromNullString(m.RelatedEmployeeID),
		OrphanedProjectID: fromNullString(m.OrphanedProjectID),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
