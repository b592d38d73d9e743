package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/nivas/backend/internal/domain/identity"
)

// LoginInput contains the input for account login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	TokenType string
	Account   AccountInfo
}

// AccountInfo is the account view returned to the client. The credential
// hash and the society's provisioning secret never appear here.
type AccountInfo struct {
	ID          uuid.UUID  `json:"id"`
	DisplayName string     `json:"display_name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	UnitLabel   string     `json:"unit_label,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	SocietyID   *uuid.UUID `json:"society_id,omitempty"`
}

// NewAccountInfo projects a domain account into the client view
func NewAccountInfo(account *identity.Account) AccountInfo {
	return AccountInfo{
		ID:          account.ID,
		DisplayName: account.DisplayName,
		Email:       account.Email,
		Role:        string(account.Role),
		UnitLabel:   account.UnitLabel,
		Phone:       account.ContactPhone,
		SocietyID:   account.SocietyID,
	}
}

// LogoutInput contains the input for logout
type LogoutInput struct {
	TokenJTI  string
	TokenTTL  time.Duration
	AccountID uuid.UUID
}

// UpdateProfileInput contains the self-service profile changes. Nil fields
// are left untouched.
type UpdateProfileInput struct {
	AccountID   uuid.UUID
	DisplayName *string
	Email       *string
	Phone       *string
	NewPassword *string
}

// CreateSocietyInput contains the input for provisioning a new society
type CreateSocietyInput struct {
	Name          string
	Address       string
	AdminName     string
	AdminEmail    string
	AdminPassword string
	AdminPhone    string
	SecurityPhone string
}

// CreateSocietyResult contains the provisioned society and its admin
type CreateSocietyResult struct {
	Society SocietyInfo
	Admin   AccountInfo
}

// SocietyInfo is the society view returned to the client; the provisioning
// secret is never serialized.
type SocietyInfo struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	AdminContactEmail string    `json:"admin_contact_email"`
	SecurityDeskPhone string    `json:"security_desk_phone,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewSocietyInfo projects a domain society into the client view
func NewSocietyInfo(society *identity.Society) SocietyInfo {
	return SocietyInfo{
		ID:                society.ID,
		Name:              society.Name,
		Address:           society.Address,
		AdminContactEmail: society.AdminContactEmail,
		SecurityDeskPhone: society.SecurityDeskPhone,
		IsActive:          society.IsActive,
		CreatedAt:         society.CreatedAt,
	}
}

// ResetAdminPasswordInput contains the input for a developer-initiated
// admin password reset
type ResetAdminPasswordInput struct {
	SocietyID   uuid.UUID
	NewPassword string
}

// AddResidentInput contains the input for admin resident creation
type AddResidentInput struct {
	SocietyID   uuid.UUID
	DisplayName string
	Email       string
	Password    string
	UnitLabel   string
	Phone       string
}
