package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/jewelerp/backend/internal/domain/shared"
)

func newEmiPaymentRepository(t *testing.T) *GormEmiPaymentRepository {
	t.Helper()
	db := newSqliteDB(t, &finance.EmiPayment{}, &finance.EmiInstallment{})
	return NewGormEmiPaymentRepository(db)
}

func seedEmiPlan(t *testing.T, repo *GormEmiPaymentRepository, shopID uuid.UUID, start time.Time) *finance.EmiPayment {
	t.Helper()
	plan, err := finance.NewEmiPayment(shopID, uuid.New(), nil,
		decimal.NewFromInt(600), 6, decimal.NewFromInt(100), start)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), plan))
	return plan
}

func TestGormEmiPaymentRepository_FindDueForSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only plans with a pending installment past due", func(t *testing.T) {
		repo := newEmiPaymentRepository(t)
		shopID := uuid.New()
		now := time.Now()

		overdue := seedEmiPlan(t, repo, shopID, now.AddDate(0, -2, 0))
		seedEmiPlan(t, repo, shopID, now.AddDate(0, 1, 0))
		seedEmiPlan(t, repo, uuid.New(), now.AddDate(0, -2, 0))

		due, err := repo.FindDueForSweep(ctx, shopID, now)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, overdue.ID, due[0].ID)
		require.Len(t, due[0].Installments, 6)
		assert.Equal(t, 1, due[0].Installments[0].InstallmentNumber)
	})

	t.Run("a settled plan is not swept even with old due dates", func(t *testing.T) {
		repo := newEmiPaymentRepository(t)
		shopID := uuid.New()
		now := time.Now()

		settled := seedEmiPlan(t, repo, shopID, now.AddDate(0, -7, 0))
		for n := 1; n <= 6; n++ {
			require.NoError(t, settled.ApplyInstallmentPayment(n, decimal.NewFromInt(100)))
		}
		require.NoError(t, repo.Save(ctx, settled))

		due, err := repo.FindDueForSweep(ctx, shopID, now)
		require.NoError(t, err)
		assert.Empty(t, due)
	})
}

func TestGormEmiPaymentRepository_FindByIDForShop(t *testing.T) {
	t.Run("loads installments in schedule order and scopes by shop", func(t *testing.T) {
		repo := newEmiPaymentRepository(t)
		ctx := context.Background()
		shopID := uuid.New()

		plan := seedEmiPlan(t, repo, shopID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

		loaded, err := repo.FindByIDForShop(ctx, plan.ID, shopID)
		require.NoError(t, err)
		require.Len(t, loaded.Installments, 6)
		for idx, inst := range loaded.Installments {
			assert.Equal(t, idx+1, inst.InstallmentNumber)
		}

		_, err = repo.FindByIDForShop(ctx, plan.ID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
