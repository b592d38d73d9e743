package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nivas/backend/internal/domain/billing"
	"github.com/nivas/backend/internal/domain/shared"
)

// GormBillRepository implements billing.BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// CreateBatch inserts a period's bills in one transaction. The unique index
// on (society_id, period, account_id) makes the loser of two racing batch
// generations fail; the violation maps to ErrAlreadyExists.
func (r *GormBillRepository) CreateBatch(ctx context.Context, bills []*billing.Bill) error {
	if len(bills) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(bills).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// ExistsByPeriod checks whether any bill exists for the exact period label
func (r *GormBillRepository) ExistsByPeriod(ctx context.Context, societyID uuid.UUID, period string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&billing.Bill{}).
		Where("society_id = ? AND period = ?", societyID, period).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByID finds a bill by ID within a society
func (r *GormBillRepository) FindByID(ctx context.Context, societyID, id uuid.UUID) (*billing.Bill, error) {
	var bill billing.Bill
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND id = ?", societyID, id).
		First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &bill, nil
}

// FindAll lists every bill of a society, newest first
func (r *GormBillRepository) FindAll(ctx context.Context, societyID uuid.UUID) ([]*billing.Bill, error) {
	var bills []*billing.Bill
	if err := r.db.WithContext(ctx).
		Where("society_id = ?", societyID).
		Order("created_at DESC").
		Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// FindByAccount lists a resident's own bills, newest first
func (r *GormBillRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*billing.Bill, error) {
	var bills []*billing.Bill
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// MarkPaid performs the Unpaid -> Paid transition as a conditional update.
// When zero rows match, the bill is either missing or already paid; a
// follow-up read tells the two apart so a lost double-verification race
// surfaces as ALREADY_PAID instead of silently overwriting the winner.
func (r *GormBillRepository) MarkPaid(ctx context.Context, societyID, id uuid.UUID, paymentID, method string) (*billing.Bill, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&billing.Bill{}).
		Where("society_id = ? AND id = ? AND status = ?", societyID, id, billing.BillStatusUnpaid).
		Updates(map[string]interface{}{
			"status":              billing.BillStatusPaid,
			"paid_at":             now,
			"external_payment_id": paymentID,
			"payment_method":      method,
			"updated_at":          now,
			"version":             gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		bill, err := r.FindByID(ctx, societyID, id)
		if err != nil {
			return nil, err
		}
		if bill.Status == billing.BillStatusPaid {
			return nil, shared.NewDomainError("ALREADY_PAID", "Bill has already been paid")
		}
		return nil, shared.ErrConcurrencyConflict
	}

	return r.FindByID(ctx, societyID, id)
}

// Delete removes a single bill within a society
func (r *GormBillRepository) Delete(ctx context.Context, societyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("society_id = ? AND id = ?", societyID, id).
		Delete(&billing.Bill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByPeriod removes every bill with the exact period label and returns
// the number removed
func (r *GormBillRepository) DeleteByPeriod(ctx context.Context, societyID uuid.UUID, period string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("society_id = ? AND period = ?", societyID, period).
		Delete(&billing.Bill{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

var _ billing.BillRepository = (*GormBillRepository)(nil)
