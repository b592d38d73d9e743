package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/shared"
)

// GormExpenseRepository implements community.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// Create inserts an expense record
func (r *GormExpenseRepository) Create(ctx context.Context, expense *community.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// FindByID finds an expense by ID within a society
func (r *GormExpenseRepository) FindByID(ctx context.Context, societyID, id uuid.UUID) (*community.Expense, error) {
	var expense community.Expense
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND id = ?", societyID, id).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// FindAll lists a society's expenses, most recent outgoing first
func (r *GormExpenseRepository) FindAll(ctx context.Context, societyID uuid.UUID) ([]*community.Expense, error) {
	var expenses []*community.Expense
	if err := r.db.WithContext(ctx).
		Where("society_id = ?", societyID).
		Order("incurred_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// SummarizeByCategory aggregates total and count per category for the
// resident transparency dashboard
func (r *GormExpenseRepository) SummarizeByCategory(ctx context.Context, societyID uuid.UUID) ([]community.CategorySummary, error) {
	var summaries []community.CategorySummary
	if err := r.db.WithContext(ctx).
		Model(&community.Expense{}).
		Select("category, SUM(amount) AS total, COUNT(*) AS count").
		Where("society_id = ?", societyID).
		Group("category").
		Order("category ASC").
		Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// Delete removes a single expense
func (r *GormExpenseRepository) Delete(ctx context.Context, societyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("society_id = ? AND id = ?", societyID, id).
		Delete(&community.Expense{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByMonth removes every expense incurred in [start, end)
func (r *GormExpenseRepository) DeleteByMonth(ctx context.Context, societyID uuid.UUID, start, end time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("society_id = ? AND incurred_at >= ? AND incurred_at < ?", societyID, start, end).
		Delete(&community.Expense{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

var _ community.ExpenseRepository = (*GormExpenseRepository)(nil)
