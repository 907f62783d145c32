package pgsql

import (
	portsrepo "github.com/SscSPs/agency_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WithLedgerRepositories moves the ledgers of base onto PostgreSQL: transactions,
// invoices and fund movements. Principals, projects and permissions stay where base keeps them.
func WithLedgerRepositories(dbPool *pgxpool.Pool, base portsrepo.RepositoryProvider) portsrepo.RepositoryProvider {
	base.TransactionRepo = newPgxTransactionRepository(dbPool)
	base.InvoiceRepo = newPgxInvoiceRepository(dbPool)
	base.FundRepo = newPgxFundRepository(dbPool)
	base.Health = &BaseRepository{Pool: dbPool}
	return base
}
