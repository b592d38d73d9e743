package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nivas/backend/internal/domain/billing"
	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/domain/shared"
)

// GormSocietyRepository implements identity.SocietyRepository using GORM
type GormSocietyRepository struct {
	db *gorm.DB
}

// NewGormSocietyRepository creates a new GormSocietyRepository
func NewGormSocietyRepository(db *gorm.DB) *GormSocietyRepository {
	return &GormSocietyRepository{db: db}
}

// Create inserts a new society; a duplicate name maps to ErrAlreadyExists
func (r *GormSocietyRepository) Create(ctx context.Context, society *identity.Society) error {
	if err := r.db.WithContext(ctx).Create(society).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// CreateWithAdmin provisions a society together with its admin account in
// one transaction, so a half-provisioned tenant can never be observed.
// Duplicate name or admin email maps to ErrAlreadyExists.
func (r *GormSocietyRepository) CreateWithAdmin(ctx context.Context, society *identity.Society, admin *identity.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(society).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.ErrAlreadyExists
			}
			return err
		}
		if err := tx.Create(admin).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
}

// Update saves an existing society
func (r *GormSocietyRepository) Update(ctx context.Context, society *identity.Society) error {
	if err := r.db.WithContext(ctx).Save(society).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID finds a society by its ID
func (r *GormSocietyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Society, error) {
	var society identity.Society
	if err := r.db.WithContext(ctx).First(&society, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &society, nil
}

// FindByName finds a society by its unique name
func (r *GormSocietyRepository) FindByName(ctx context.Context, name string) (*identity.Society, error) {
	var society identity.Society
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&society).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &society, nil
}

// FindAll lists every provisioned society
func (r *GormSocietyRepository) FindAll(ctx context.Context) ([]*identity.Society, error) {
	var societies []*identity.Society
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&societies).Error; err != nil {
		return nil, err
	}
	return societies, nil
}

// DeleteCascade removes the society and every record scoped to it in one
// transaction. Dependent ledgers go first, accounts next, the society row
// last; a failure anywhere rolls the whole teardown back.
func (r *GormSocietyRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var society identity.Society
		if err := tx.First(&society, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		scoped := []interface{}{
			&billing.Bill{},
			&community.Visitor{},
			&community.Complaint{},
			&community.Expense{},
			&community.Vehicle{},
			&community.EmergencyContact{},
		}
		for _, model := range scoped {
			if err := tx.Where("society_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		// Notice read receipts have no society column; join through notices.
		if err := tx.Where("notice_id IN (?)",
			tx.Model(&community.Notice{}).Select("id").Where("society_id = ?", id),
		).Delete(&community.NoticeRead{}).Error; err != nil {
			return err
		}
		if err := tx.Where("society_id = ?", id).Delete(&community.Notice{}).Error; err != nil {
			return err
		}

		if err := tx.Where("society_id = ?", id).Delete(&identity.Account{}).Error; err != nil {
			return err
		}

		return tx.Delete(&society).Error
	})
}

var _ identity.SocietyRepository = (*GormSocietyRepository)(nil)
