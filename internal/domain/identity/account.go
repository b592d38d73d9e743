package identity

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/nivas/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents the capability set of an account. The three roles are
// disjoint: admin is not a superset of resident, and developer is a
// tenant-less provisioning role that never belongs to a society.
type Role string

const (
	RoleResident  Role = "resident"
	RoleAdmin     Role = "admin"
	RoleDeveloper Role = "developer"
)

// Password cost for bcrypt
const bcryptCost = 12

// Account represents a login identity. Non-developer accounts belong to
// exactly one society; developer accounts have SocietyID == nil.
type Account struct {
	shared.BaseAggregateRoot
	DisplayName    string     `gorm:"type:varchar(200);not null"`
	Email          string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	CredentialHash string     `gorm:"type:varchar(200);not null" json:"-"`
	Role           Role       `gorm:"type:varchar(20);not null;index"`
	UnitLabel      string     `gorm:"type:varchar(50)"`
	ContactPhone   string     `gorm:"type:varchar(50)"`
	SocietyID      *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewResident creates a resident account bound to a society
func NewResident(societyID uuid.UUID, displayName, email, password, unitLabel, phone string) (*Account, error) {
	if societyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOCIETY", "Resident must belong to a society")
	}
	if strings.TrimSpace(unitLabel) == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit label cannot be empty")
	}
	account, err := newAccount(displayName, email, password, RoleResident)
	if err != nil {
		return nil, err
	}
	account.SocietyID = &societyID
	account.UnitLabel = strings.TrimSpace(unitLabel)
	account.ContactPhone = strings.TrimSpace(phone)
	return account, nil
}

// NewAdmin creates the administrator account for a society
func NewAdmin(societyID uuid.UUID, displayName, email, password, phone string) (*Account, error) {
	if societyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOCIETY", "Admin must belong to a society")
	}
	account, err := newAccount(displayName, email, password, RoleAdmin)
	if err != nil {
		return nil, err
	}
	account.SocietyID = &societyID
	account.ContactPhone = strings.TrimSpace(phone)
	return account, nil
}

// NewDeveloper creates a tenant-less provisioning account
func NewDeveloper(displayName, email, password string) (*Account, error) {
	return newAccount(displayName, email, password, RoleDeveloper)
}

func newAccount(displayName, email, password string, role Role) (*Account, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Display name cannot be empty")
	}
	if len(displayName) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Display name cannot exceed 200 characters")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DisplayName:       displayName,
		Email:             strings.ToLower(strings.TrimSpace(email)),
		CredentialHash:    hash,
		Role:              role,
	}, nil
}

// IsDeveloper reports whether the account holds the tenant-less developer role
func (a *Account) IsDeveloper() bool {
	return a.Role == RoleDeveloper
}

// VerifyPassword verifies if the provided password matches the stored hash
func (a *Account) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.CredentialHash), []byte(password))
	return err == nil
}

// SetPassword replaces the credential hash (admin reset, no old-password check)
func (a *Account) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	a.CredentialHash = hash
	a.Touch()
	a.IncrementVersion()
	return nil
}

// SetDisplayName updates the display name
func (a *Account) SetDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Display name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Display name cannot exceed 200 characters")
	}
	a.DisplayName = name
	a.Touch()
	a.IncrementVersion()
	return nil
}

// SetEmail updates the account email
func (a *Account) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	a.Email = strings.ToLower(strings.TrimSpace(email))
	a.Touch()
	a.IncrementVersion()
	return nil
}

// SetContactPhone updates the contact phone
func (a *Account) SetContactPhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	a.ContactPhone = strings.TrimSpace(phone)
	a.Touch()
	a.IncrementVersion()
	return nil
}

// SocietyUUID returns the owning society ID, or uuid.Nil for developers
func (a *Account) SocietyUUID() uuid.UUID {
	if a.SocietyID == nil {
		return uuid.Nil
	}
	return *a.SocietyID
}

// Validation functions

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
