package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/shared"
)

func TestGormVisitorRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormVisitorRepository(db)
	ctx := context.Background()

	society := seedSociety(t, db, "Gate View")
	other := seedSociety(t, db, "Other View")

	inside, err := community.NewVisitorEntry(society.ID, "Ravi", "9000000001", "A-101", "Visit", "", "Security", time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, inside))

	expected, err := community.NewPreApprovedVisitor(society.ID, "Courier", "9000000002", "B-202", "Parcel", "", time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, expected))

	t.Run("find by status", func(t *testing.T) {
		got, err := repo.FindByStatus(ctx, society.ID, community.VisitorStatusInside)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, inside.ID, got[0].ID)
	})

	t.Run("find by unit", func(t *testing.T) {
		got, err := repo.FindByUnit(ctx, society.ID, "B-202")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, expected.ID, got[0].ID)
	})

	t.Run("mark exited persists through update", func(t *testing.T) {
		require.NoError(t, inside.MarkExited(time.Now()))
		require.NoError(t, repo.Update(ctx, inside))

		got, err := repo.FindByID(ctx, society.ID, inside.ID)
		require.NoError(t, err)
		assert.Equal(t, community.VisitorStatusExited, got.Status)
		assert.NotNil(t, got.ExitTime)
	})

	t.Run("entries are invisible to another society", func(t *testing.T) {
		_, err := repo.FindByID(ctx, other.ID, inside.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		got, err := repo.FindAll(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestGormExpenseRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormExpenseRepository(db)
	ctx := context.Background()

	society := seedSociety(t, db, "Ledger Lane")
	admin := seedResident(t, db, society, "ADM", "admin@ll.example.com")

	add := func(category string, amount int64, when time.Time) {
		expense, err := community.NewExpense(society.ID, admin.ID, category, decimal.NewFromInt(amount), "", when)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, expense))
	}

	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	add("Security", 9000, feb)
	add("Security", 1000, mar)
	add("Water", 500, mar)

	t.Run("summarize by category", func(t *testing.T) {
		summaries, err := repo.SummarizeByCategory(ctx, society.ID)
		require.NoError(t, err)
		require.Len(t, summaries, 2)

		assert.Equal(t, "Security", summaries[0].Category)
		assert.True(t, summaries[0].Total.Equal(decimal.NewFromInt(10000)))
		assert.Equal(t, int64(2), summaries[0].Count)

		assert.Equal(t, "Water", summaries[1].Category)
		assert.True(t, summaries[1].Total.Equal(decimal.NewFromInt(500)))
	})

	t.Run("delete by month removes only that calendar month", func(t *testing.T) {
		start, end, err := community.MonthRange("March 2026")
		require.NoError(t, err)

		deleted, err := repo.DeleteByMonth(ctx, society.ID, start, end)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		remaining, err := repo.FindAll(ctx, society.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, feb, remaining[0].IncurredAt.UTC())
	})
}

func TestGormNoticeRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormNoticeRepository(db)
	ctx := context.Background()

	society := seedSociety(t, db, "Notice Nagar")
	resident := seedResident(t, db, society, "A-101", "r1@nn.example.com")

	notice, err := community.NewNotice(society.ID, "Water supply", "Maintenance on Sunday", community.NoticePriorityUrgent)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, notice))

	t.Run("mark read is idempotent", func(t *testing.T) {
		require.NoError(t, repo.MarkRead(ctx, society.ID, notice.ID, resident.ID))
		require.NoError(t, repo.MarkRead(ctx, society.ID, notice.ID, resident.ID))

		got, err := repo.FindByID(ctx, society.ID, notice.ID)
		require.NoError(t, err)
		require.Len(t, got.ReadBy, 1)
		assert.Equal(t, resident.ID, got.ReadBy[0])
	})

	t.Run("mark read on a missing notice is ErrNotFound", func(t *testing.T) {
		err := repo.MarkRead(ctx, society.ID, resident.ID, resident.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("delete removes the read receipts too", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, society.ID, notice.ID))

		var readCount int64
		require.NoError(t, db.Model(&community.NoticeRead{}).Count(&readCount).Error)
		assert.Zero(t, readCount)
	})
}

func TestGormVehicleRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormVehicleRepository(db)
	ctx := context.Background()

	society := seedSociety(t, db, "Parking Plaza")
	other := seedSociety(t, db, "Other Plaza")
	owner := seedResident(t, db, society, "A-101", "r1@park.example.com")
	otherOwner := seedResident(t, db, other, "A-101", "r1@otherpark.example.com")

	vehicle, err := community.NewVehicle(society.ID, owner.ID, "ka01ab1234", "2 Wheeler", "Activa")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, vehicle))

	t.Run("duplicate plate in the same society is rejected", func(t *testing.T) {
		dup, err := community.NewVehicle(society.ID, owner.ID, "KA01AB1234", "4 Wheeler", "Swift")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)
	})

	t.Run("same plate in another society is fine", func(t *testing.T) {
		same, err := community.NewVehicle(other.ID, otherOwner.ID, "KA01AB1234", "4 Wheeler", "Swift")
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, same))
	})

	t.Run("lookup normalizes the plate", func(t *testing.T) {
		got, err := repo.FindByNumber(ctx, society.ID, " ka01ab1234 ")
		require.NoError(t, err)
		assert.Equal(t, vehicle.ID, got.ID)
	})

	t.Run("find by owner", func(t *testing.T) {
		got, err := repo.FindByOwner(ctx, society.ID, owner.ID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestGormEmergencyContactRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormEmergencyContactRepository(db)
	ctx := context.Background()

	society := seedSociety(t, db, "SOS Sector")
	resident := seedResident(t, db, society, "A-101", "r1@sos.example.com")

	t.Run("upsert creates then replaces", func(t *testing.T) {
		contact, err := community.NewEmergencyContact(society.ID, resident.ID, "Mom", "9111111111")
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, contact))

		replacement, err := community.NewEmergencyContact(society.ID, resident.ID, "Dad", "9222222222")
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, replacement))

		got, err := repo.FindByAccount(ctx, society.ID, resident.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dad", got.CustomName)
		assert.Equal(t, "9222222222", got.CustomNumber)

		var count int64
		require.NoError(t, db.Model(&community.EmergencyContact{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "upsert must not create a second row")
	})

	t.Run("delete by account", func(t *testing.T) {
		require.NoError(t, repo.DeleteByAccount(ctx, society.ID, resident.ID))
		_, err := repo.FindByAccount(ctx, society.ID, resident.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
