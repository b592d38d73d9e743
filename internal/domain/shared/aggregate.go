package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// SocietyAggregateRoot extends BaseAggregateRoot with the owning society.
// Every society-scoped aggregate embeds this so the tenant column can never
// be forgotten on a new table.
type SocietyAggregateRoot struct {
	BaseAggregateRoot
	SocietyID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewSocietyAggregateRoot creates a new society-scoped aggregate root
func NewSocietyAggregateRoot(societyID uuid.UUID) SocietyAggregateRoot {
	return SocietyAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		SocietyID:         societyID,
	}
}
