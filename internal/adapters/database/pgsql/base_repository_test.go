package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/agency_ledger_app/internal/adapters/memory"
	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertError_UniqueViolationIsDuplicate(t *testing.T) {
	err := insertError(fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), "transaction tx1")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestInsertError_OtherFailuresAreInternal(t *testing.T) {
	cause := errors.New("connection reset")
	err := insertError(cause, "invoice inv1")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestWithLedgerRepositories_KeepsNonLedgerRepos(t *testing.T) {
	store := memory.NewStore()
	base := store.Provider()

	repos := WithLedgerRepositories(nil, base)

	assert.IsType(t, &PgxTransactionRepository{}, repos.TransactionRepo)
	assert.IsType(t, &PgxInvoiceRepository{}, repos.InvoiceRepo)
	assert.IsType(t, &PgxFundRepository{}, repos.FundRepo)
	assert.NotNil(t, repos.Health)
	assert.Same(t, store, repos.PrincipalRepo)
	assert.Same(t, store, repos.ProjectRepo)
}
