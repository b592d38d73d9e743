package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockBillRepo creates a repository with a mocked DB so the conditional
// UPDATE behind MarkPaid can be asserted at the SQL level.
func newMockBillRepo(t *testing.T) (*GormBillRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormBillRepository(gormDB), mock, mockDB
}

func TestMarkPaidConditionalUpdate(t *testing.T) {
	t.Run("update is guarded by the Unpaid status", func(t *testing.T) {
		repo, mock, mockDB := newMockBillRepo(t)
		defer mockDB.Close()

		societyID := uuid.New()
		billID := uuid.New()

		// The WHERE clause must carry status = 'Unpaid' so a concurrent
		// settlement makes this a zero-row update instead of an overwrite.
		mock.ExpectExec(`UPDATE "bills" SET .* WHERE society_id = \$\d+ AND id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// follow-up read of the settled bill
		rows := sqlmock.NewRows([]string{"id", "society_id", "status", "external_payment_id"}).
			AddRow(billID, societyID, "Paid", "pay_1")
		mock.ExpectQuery(`SELECT .* FROM "bills" WHERE society_id = \$\d+ AND id = \$\d+`).
			WillReturnRows(rows)

		bill, err := repo.MarkPaid(context.Background(), societyID, billID, "pay_1", "razorpay")
		require.NoError(t, err)
		assert.Equal(t, "pay_1", bill.ExternalPaymentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows triggers a re-read to classify the failure", func(t *testing.T) {
		repo, mock, mockDB := newMockBillRepo(t)
		defer mockDB.Close()

		societyID := uuid.New()
		billID := uuid.New()

		mock.ExpectExec(`UPDATE "bills" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		rows := sqlmock.NewRows([]string{"id", "society_id", "status", "external_payment_id"}).
			AddRow(billID, societyID, "Paid", "pay_winner")
		mock.ExpectQuery(`SELECT .* FROM "bills"`).
			WillReturnRows(rows)

		_, err := repo.MarkPaid(context.Background(), societyID, billID, "pay_loser", "razorpay")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already been paid")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
