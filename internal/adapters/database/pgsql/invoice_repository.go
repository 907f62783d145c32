package pgsql

import (
	"context"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/agency_ledger_app/internal/models"
	"github.com/SscSPs/agency_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (invoice_id, project_id, amount, invoice_date, category, description, status,
			related_employee_id, orphaned_project_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID,
		m.ProjectID,
		m.Amount,
		m.InvoiceDate,
		m.Category,
		m.Description,
		m.Status,
		m.RelatedEmployeeID,
		m.OrphanedProjectID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return insertError(err, "invoice "+m.InvoiceID)
	}
	return nil
}

// FindInvoices treats empty filter fields as wildcards.
func (r *PgxInvoiceRepository) FindInvoices(ctx context.Context, filter portsrepo.InvoiceFilter) ([]domain.Invoice, error) {
	query := `
		SELECT invoice_id, project_id, amount, invoice_date, category, description, status,
		       related_employee_id, orphaned_project_id, created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		WHERE ($1 = '' OR project_id = $1) AND ($2 = '' OR related_employee_id = $2)
		ORDER BY invoice_date ASC, invoice_id ASC;`
	rows, err := r.Pool.Query(ctx, query, filter.ProjectID, filter.RelatedEmployeeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(
			&m.InvoiceID,
			&m.ProjectID,
			&m.Amount,
			&m.InvoiceDate,
			&m.Category,
			&m.Description,
			&m.Status,
			&m.RelatedEmployeeID,
			&m.OrphanedProjectID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) DeleteInvoicesByProject(ctx context.Context, projectID string) (int, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE project_id = $1;`, projectID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete invoices of project "+projectID, err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *PgxInvoiceRepository) DetachInvoicesFromProject(ctx context.Context, projectID string) (int, error) {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE invoices
		SET orphaned_project_id = project_id, project_id = NULL, last_updated_at = NOW()
		WHERE project_id = $1;`, projectID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to detach invoices of project "+projectID, err)
	}
	return int(tag.RowsAffected()), nil
}
