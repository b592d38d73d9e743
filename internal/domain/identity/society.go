package identity

import (
	"strings"

	"github.com/nivas/backend/internal/domain/shared"
)

// Society represents a residential society, the tenant unit of the system.
// Every other aggregate is scoped to exactly one society; deleting a society
// removes all data scoped to it.
type Society struct {
	shared.BaseAggregateRoot
	Name               string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Address            string `gorm:"type:text;not null"`
	AdminContactEmail  string `gorm:"type:varchar(200);not null"`
	ProvisioningSecret string `gorm:"type:varchar(200);not null" json:"-"`
	SecurityDeskPhone  string `gorm:"type:varchar(50)"`
	IsActive           bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Society) TableName() string {
	return "societies"
}

// NewSociety creates a new society with required fields
func NewSociety(name, address, adminEmail, provisioningSecret string) (*Society, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Society name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Society name cannot exceed 200 characters")
	}
	if strings.TrimSpace(address) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Society address cannot be empty")
	}
	if err := validateEmail(adminEmail); err != nil {
		return nil, err
	}
	if provisioningSecret == "" {
		return nil, shared.NewDomainError("INVALID_SECRET", "Provisioning secret cannot be empty")
	}

	return &Society{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		Name:               name,
		Address:            strings.TrimSpace(address),
		AdminContactEmail:  strings.ToLower(strings.TrimSpace(adminEmail)),
		ProvisioningSecret: provisioningSecret,
		IsActive:           true,
	}, nil
}

// SetSecurityDeskPhone updates the security desk phone number
func (s *Society) SetSecurityDeskPhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	s.SecurityDeskPhone = strings.TrimSpace(phone)
	s.Touch()
	s.IncrementVersion()
	return nil
}

// Deactivate marks the society inactive without deleting its data
func (s *Society) Deactivate() error {
	if !s.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Society is already inactive")
	}
	s.IsActive = false
	s.Touch()
	s.IncrementVersion()
	return nil
}

// Activate reactivates a deactivated society
func (s *Society) Activate() error {
	if s.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Society is already active")
	}
	s.IsActive = true
	s.Touch()
	s.IncrementVersion()
	return nil
}
