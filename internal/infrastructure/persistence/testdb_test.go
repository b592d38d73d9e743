package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/nivas/backend/internal/domain/billing"
	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/identity"
)

// setupTestDB creates an in-memory SQLite database with the full schema,
// including the composite unique indexes that back concurrency guarantees.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&identity.Society{},
		&identity.Account{},
		&billing.Bill{},
		&community.Visitor{},
		&community.Complaint{},
		&community.Expense{},
		&community.Notice{},
		&community.NoticeRead{},
		&community.Vehicle{},
		&community.EmergencyContact{},
	))

	for _, stmt := range []string{
		`CREATE UNIQUE INDEX idx_bills_society_period_account ON bills (society_id, period, account_id)`,
		`CREATE UNIQUE INDEX idx_vehicles_society_number ON vehicles (society_id, vehicle_number)`,
		`CREATE UNIQUE INDEX idx_accounts_society_unit ON accounts (society_id, unit_label) WHERE role = 'resident'`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}
