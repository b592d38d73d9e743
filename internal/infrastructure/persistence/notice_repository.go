package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/shared"
)

// GormNoticeRepository implements community.NoticeRepository using GORM
type GormNoticeRepository struct {
	db *gorm.DB
}

// NewGormNoticeRepository creates a new GormNoticeRepository
func NewGormNoticeRepository(db *gorm.DB) *GormNoticeRepository {
	return &GormNoticeRepository{db: db}
}

// Create inserts a notice
func (r *GormNoticeRepository) Create(ctx context.Context, notice *community.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

// FindByID finds a notice by ID within a society, with its read receipts
func (r *GormNoticeRepository) FindByID(ctx context.Context, societyID, id uuid.UUID) (*community.Notice, error) {
	var notice community.Notice
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND id = ?", societyID, id).
		First(&notice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadReadBy(ctx, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

// FindAll lists a society's notices, newest first, with read receipts
func (r *GormNoticeRepository) FindAll(ctx context.Context, societyID uuid.UUID) ([]*community.Notice, error) {
	var notices []*community.Notice
	if err := r.db.WithContext(ctx).
		Where("society_id = ?", societyID).
		Order("created_at DESC").
		Find(&notices).Error; err != nil {
		return nil, err
	}
	for _, notice := range notices {
		if err := r.loadReadBy(ctx, notice); err != nil {
			return nil, err
		}
	}
	return notices, nil
}

// MarkRead records a read receipt; a second mark by the same account is a no-op
func (r *GormNoticeRepository) MarkRead(ctx context.Context, societyID, noticeID, accountID uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&community.Notice{}).
		Where("society_id = ? AND id = ?", societyID, noticeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.ErrNotFound
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&community.NoticeRead{NoticeID: noticeID, AccountID: accountID}).Error
}

// Delete removes a notice together with its read receipts
func (r *GormNoticeRepository) Delete(ctx context.Context, societyID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("society_id = ? AND id = ?", societyID, id).
			Delete(&community.Notice{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Where("notice_id = ?", id).Delete(&community.NoticeRead{}).Error
	})
}

func (r *GormNoticeRepository) loadReadBy(ctx context.Context, notice *community.Notice) error {
	var reads []community.NoticeRead
	if err := r.db.WithContext(ctx).
		Where("notice_id = ?", notice.ID).
		Find(&reads).Error; err != nil {
		return err
	}
	notice.ReadBy = make([]uuid.UUID, len(reads))
	for i, read := range reads {
		notice.ReadBy[i] = read.AccountID
	}
	return nil
}

var _ community.NoticeRepository = (*GormNoticeRepository)(nil)
