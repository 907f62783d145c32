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

// PgxFundRepository stores trustee box and investor account movements.
type PgxFundRepository struct {
	BaseRepository
}

func newPgxFundRepository(pool *pgxpool.Pool) *PgxFundRepository {
	return &PgxFundRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FundRepositoryFacade = (*PgxFundRepository)(nil)

func (r *PgxFundRepository) SaveTrustTransaction(ctx context.Context, txn domain.TrustTransaction) error {
	m := mapping.ToModelTrustTransaction(txn)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO trust_transactions (trust_transaction_id, trustee_id, transaction_type, amount, transaction_date, description)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		m.TrustTransactionID, m.TrusteeID, m.TransactionType, m.Amount, m.TransactionDate, m.Description)
	if err != nil {
		return insertError(err, "trust transaction "+m.TrustTransactionID)
	}
	return nil
}

// FindTrustTransactions returns the movements of one trustee, or of all when trusteeID is empty.
func (r *PgxFundRepository) FindTrustTransactions(ctx context.Context, trusteeID string) ([]domain.TrustTransaction, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT trust_transaction_id, trustee_id, transaction_type, amount, transaction_date, description
		FROM trust_transactions
		WHERE $1 = '' OR trustee_id = $1
		ORDER BY transaction_date ASC, trust_transaction_id ASC;`, trusteeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trust transactions", err)
	}
	defer rows.Close()

	txns := []domain.TrustTransaction{}
	for rows.Next() {
		var m models.TrustTransaction
		if err := rows.Scan(&m.TrustTransactionID, &m.TrusteeID, &m.TransactionType, &m.Amount, &m.TransactionDate, &m.Description); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trust transaction row", err)
		}
		txns = append(txns, mapping.ToDomainTrustTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trust transaction rows", err)
	}
	return txns, nil
}

func (r *PgxFundRepository) SaveInvestorTransaction(ctx context.Context, txn domain.InvestorTransaction) error {
	m := mapping.ToModelInvestorTransaction(txn)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO investor_transactions (investor_transaction_id, investor_id, transaction_type, amount, transaction_date, description)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		m.InvestorTransactionID, m.InvestorID, m.TransactionType, m.Amount, m.TransactionDate, m.Description)
	if err != nil {
		return insertError(err, "investor transaction "+m.InvestorTransactionID)
	}
	return nil
}

// FindInvestorTransactions returns the movements of one investor, or of all when investorID is empty.
func (r *PgxFundRepository) FindInvestorTransactions(ctx context.Context, investorID string) ([]domain.InvestorTransaction, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT investor_transaction_id, investor_id, transaction_type, amount, transaction_date, description
		FROM investor_transactions
		WHERE $1 = '' OR investor_id = $1
		ORDER BY transaction_date ASC, investor_transaction_id ASC;`, investorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query investor transactions", err)
	}
	defer rows.Close()

	txns := []domain.InvestorTransaction{}
	for rows.Next() {
		var m models.InvestorTransaction
		if err := rows.Scan(&m.InvestorTransactionID, &m.InvestorID, &m.TransactionType, &m.Amount, &m.TransactionDate, &m.Description); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan investor transaction row", err)
		}
		txns = append(txns, mapping.ToDomainInvestorTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating investor transaction rows", err)
	}
	return txns, nil
}
