package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/apperrors"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrusteeStatement_Deficit(t *testing.T) {
	_, c := newSeededContainer(domain.DeleteRestrict)
	ctx := context.Background()

	statement, err := c.Ledger.GetTrusteeStatement(ctx, accountant, "t1")
	require.NoError(t, err)
	assert.True(t, statement.Balance.Equal(amount(-2000)), statement.Balance.String())
	assert.True(t, statement.Deficit)
	assert.Len(t, statement.Transactions, 2)
}

func TestGetTrusteeStatement_Access(t *testing.T) {
	_, c := newSeededContainer(domain.DeleteRestrict)
	ctx := context.Background()

	_, err := c.Ledger.GetTrusteeStatement(ctx, trusteeP, "t1")
	assert.NoError(t, err, "a trustee reads its own box")

	other := domain.Principal{ID: "t2", Role: domain.RoleTrustee, TrusteeID: "t2"}
	_, err = c.Ledger.GetTrusteeStatement(ctx, other, "t1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = c.Ledger.GetTrusteeStatement(ctx, engineer, "t1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = c.Ledger.GetTrusteeStatement(ctx, gm, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetInvestorStatement(t *testing.T) {
	_, c := newSeededContainer(domain.DeleteRestrict)
	ctx := context.Background()

	statement, err := c.Ledger.GetInvestorStatement(ctx, accountant, "i1")
	require.NoError(t, err)
	assert.True(t, statement.Balance.Equal(amount(52000)), statement.Balance.String())
	assert.Equal(t, domain.InvestorCapital, statement.Kind)

	partner := domain.Principal{ID: "i2", Role: domain.RoleInvestor, InvestorID: "i2"}
	statement, err = c.Ledger.GetInvestorStatement(ctx, partner, "i2")
	require.NoError(t, err)
	assert.True(t, statement.Balance.Equal(amount(15000)))
	assert.Equal(t, []string{"p2"}, statement.LinkedProjectIDs)
}

func TestGetCraftsmanLedger(t *testing.T) {
	_, c := newSeededContainer(domain.DeleteRestrict)
	ctx := context.Background()

	ledger, err := c.Ledger.GetCraftsmanLedger(ctx, gm, "e1")
	require.NoError(t, err)
	assert.True(t, ledger.TotalWork.Equal(amount(1500)))
	assert.True(t, ledger.TotalPaid.Equal(amount(700)))
	assert.True(t, ledger.Balance.Equal(amount(800)))
	require.Len(t, ledger.ProjectBreakdown, 1)
	assert.Equal(t, "p2", ledger.ProjectBreakdown[0].ProjectID)

	_, err = c.Ledger.GetCraftsmanLedger(ctx, gm, "e2")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "salaried staff have no work ledger")

	// Accountant has no hr module in the seeded table.
	_, err = c.Ledger.GetCraftsmanLedger(ctx, accountant, "e1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRecordTrustTransaction(t *testing.T) {
	_, c := newSeededContainer(domain.DeleteRestrict)
	ctx := context.Background()

	txn, err := c.Ledger.RecordTrustTransaction(ctx, accountant, "t1", dto.RecordTrustTransactionRequest{
		Type: domain.TrustDeposit, Amount: amount(2500), Date: date(2024, time.April, 1),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, txn.ID)

	statement, err := c.Ledger.GetTrusteeStatement(ctx, accountant, "t1")
	require.NoError(t, err)
	assert.True(t, statement.Balance.Equal(amount(500)))
	assert.False(t, statement.Deficit)

	_, err = c.Ledger.RecordTrustTransaction(ctx, accountant, "t1", dto.RecordTrustTransactionRequest{
		Type: domain.TrustDeposit, Amount: amount(0), Date: date(2024, time.April, 1),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = c.Ledger.RecordTrustTransaction(ctx, accountant, "nobody", dto.RecordTrustTransactionRequest{
		Type: domain.TrustDeposit, Amount: amount(1), Date: date(2024, time.April, 1),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRecordInvestorTransaction(t *testing.T) {
	_, c := newSeededContainer(domain.DeleteRestrict)
	ctx := context.Background()

	_, err := c.Ledger.RecordInvestorTransaction(ctx, accountant, "i2", dto.RecordInvestorTransactionRequest{
		Type: domain.InvestorWithdrawal, Amount: amount(20000), Date: date(2024, time.April, 2),
	})
	require.NoError(t, err)

	statement, err := c.Ledger.GetInvestorStatement(ctx, accountant, "i2")
	require.NoError(t, err)
	assert.True(t, statement.Balance.Equal(amount(-5000)))
	assert.True(t, statement.Deficit)

	_, err = c.Ledger.RecordInvestorTransaction(ctx, engineer, "i2", dto.RecordInvestorTransactionRequest{
		Type: domain.CapitalInjection, Amount: amount(1), Date: date(2024, time.April, 2),
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
