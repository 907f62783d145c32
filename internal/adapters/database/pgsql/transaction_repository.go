package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/agency_ledger_app/internal/models"
	"github.com/SscSPs/agency_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, transaction_type, transaction_date, amount, currency_code, description,
	project_id, recipient_id, recipient_type, status, orphaned_project_id,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.TransactionType,
		m.TransactionDate,
		m.Amount,
		m.CurrencyCode,
		m.Description,
		m.ProjectID,
		m.RecipientID,
		m.RecipientType,
		m.Status,
		m.OrphanedProjectID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return insertError(err, "transaction "+m.TransactionID)
	}
	return nil
}

// FindTransactions returns matching rows newest first, ties by id.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var (
		where []string
		args  []any
	)
	add := func(clause string, values ...any) {
		for i := range values {
			clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", len(args)+i+1), 1)
		}
		where = append(where, clause)
		args = append(args, values...)
	}

	if filter.Currency != "" {
		add("currency_code = ?", string(filter.Currency))
	}
	if filter.ProjectID != "" {
		add("project_id = ?", filter.ProjectID)
	}
	if filter.RecipientID != "" {
		add("recipient_id = ?", filter.RecipientID)
	}
	if !filter.From.IsZero() {
		add("transaction_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		add("transaction_date < ?", filter.To)
	}
	if filter.AfterDate != nil {
		add("(transaction_date < ? OR (transaction_date = ? AND transaction_id > ?))", *filter.AfterDate, *filter.AfterDate, filter.AfterID)
	}

	query := "SELECT " + transactionColumns + " FROM transactions"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY transaction_date DESC, transaction_id ASC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.TransactionType,
			&m.TransactionDate,
			&m.Amount,
			&m.CurrencyCode,
			&m.Description,
			&m.ProjectID,
			&m.RecipientID,
			&m.RecipientType,
			&m.Status,
			&m.OrphanedProjectID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) DeleteTransactionsByProject(ctx context.Context, projectID string) (int, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE project_id = $1;`, projectID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete transactions of project "+projectID, err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *PgxTransactionRepository) DetachTransactionsFromProject(ctx context.Context, projectID string) (int, error) {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE transactions
		SET orphaned_project_id = project_id, project_id = NULL, last_updated_at = NOW()
		WHERE project_id = $1;`, projectID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to detach transactions of project "+projectID, err)
	}
	return int(tag.RowsAffected()), nil
}
