package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nivas/backend/internal/domain/billing"
	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/domain/shared"
)

func seedBills(t *testing.T, db *gorm.DB, society *identity.Society, period string, residents ...*identity.Account) []*billing.Bill {
	t.Helper()
	bills := make([]*billing.Bill, len(residents))
	for i, resident := range residents {
		bill, err := billing.NewBill(society.ID, resident.ID, period, decimal.NewFromInt(1500))
		require.NoError(t, err)
		bills[i] = bill
	}
	return bills
}

func TestGormBillRepositoryCreateBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBillRepository(db)
	ctx := context.Background()

	society := seedSociety(t, db, "Billing Heights")
	r1 := seedResident(t, db, society, "A-101", "r1@bh.example.com")
	r2 := seedResident(t, db, society, "A-102", "r2@bh.example.com")

	t.Run("inserts one bill per resident", func(t *testing.T) {
		require.NoError(t, repo.CreateBatch(ctx, seedBills(t, db, society, "March 2026", r1, r2)))

		exists, err := repo.ExistsByPeriod(ctx, society.ID, "March 2026")
		require.NoError(t, err)
		assert.True(t, exists)

		all, err := repo.FindAll(ctx, society.ID)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("second batch for the same period collides on the unique index", func(t *testing.T) {
		err := repo.CreateBatch(ctx, seedBills(t, db, society, "March 2026", r1, r2))
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)

		// the failed batch must leave nothing behind
		all, err := repo.FindAll(ctx, society.ID)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("period labels are compared literally", func(t *testing.T) {
		exists, err := repo.ExistsByPeriod(ctx, society.ID, "march 2026")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.CreateBatch(ctx, nil))
	})
}

func TestGormBillRepositoryMarkPaid(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBillRepository(db)
	ctx := context.Background()

	society := seedSociety(t, db, "Payment Park")
	resident := seedResident(t, db, society, "B-201", "r1@pp.example.com")
	require.NoError(t, repo.CreateBatch(ctx, seedBills(t, db, society, "April 2026", resident)))

	bills, err := repo.FindByAccount(ctx, resident.ID)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	billID := bills[0].ID

	t.Run("first settlement wins", func(t *testing.T) {
		paid, err := repo.MarkPaid(ctx, society.ID, billID, "pay_first", "razorpay")
		require.NoError(t, err)
		assert.Equal(t, billing.BillStatusPaid, paid.Status)
		assert.Equal(t, "pay_first", paid.ExternalPaymentID)
		require.NotNil(t, paid.PaidAt)
	})

	t.Run("second settlement is rejected and keeps the first payment id", func(t *testing.T) {
		_, err := repo.MarkPaid(ctx, society.ID, billID, "pay_second", "razorpay")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_PAID", domainErr.Code)

		bill, err := repo.FindByID(ctx, society.ID, billID)
		require.NoError(t, err)
		assert.Equal(t, "pay_first", bill.ExternalPaymentID)
	})

	t.Run("wrong society cannot settle the bill", func(t *testing.T) {
		other := seedSociety(t, db, "Other Gardens")
		_, err := repo.MarkPaid(ctx, other.ID, billID, "pay_cross", "razorpay")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormBillRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBillRepository(db)
	ctx := context.Background()

	society := seedSociety(t, db, "Cleanup Colony")
	r1 := seedResident(t, db, society, "C-301", "r1@cc.example.com")
	r2 := seedResident(t, db, society, "C-302", "r2@cc.example.com")
	require.NoError(t, repo.CreateBatch(ctx, seedBills(t, db, society, "May 2026", r1, r2)))
	require.NoError(t, repo.CreateBatch(ctx, seedBills(t, db, society, "June 2026", r1)))

	t.Run("delete by period returns the count", func(t *testing.T) {
		deleted, err := repo.DeleteByPeriod(ctx, society.ID, "May 2026")
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		remaining, err := repo.FindAll(ctx, society.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})

	t.Run("delete by unknown period deletes nothing", func(t *testing.T) {
		deleted, err := repo.DeleteByPeriod(ctx, society.ID, "May 2026")
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})

	t.Run("single delete of a missing bill is ErrNotFound", func(t *testing.T) {
		err := repo.Delete(ctx, society.ID, r1.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
