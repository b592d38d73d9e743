package identity

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository defines persistence operations for accounts.
// Society-scoped lookups take the society ID as an explicit parameter so a
// missing tenant filter is a compile error, not a runtime oversight.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	FindResidentByUnit(ctx context.Context, societyID uuid.UUID, unitLabel string) (*Account, error)
	FindResidents(ctx context.Context, societyID uuid.UUID) ([]*Account, error)
	FindAdmin(ctx context.Context, societyID uuid.UUID) (*Account, error)
	FindByIDInSociety(ctx context.Context, societyID, id uuid.UUID) (*Account, error)

	// DeleteResident removes a resident account together with its bills,
	// vehicles and emergency-contact record in one transaction.
	DeleteResident(ctx context.Context, societyID, id uuid.UUID) error
}

// SocietyRepository defines persistence operations for societies.
// All methods are developer-scope (cross-tenant) except FindByID, which the
// SOS read path uses within a resolved tenant.
type SocietyRepository interface {
	Create(ctx context.Context, society *Society) error
	// CreateWithAdmin provisions a society and its admin account in one
	// transaction; either both rows exist afterwards or neither does.
	CreateWithAdmin(ctx context.Context, society *Society, admin *Account) error
	Update(ctx context.Context, society *Society) error
	FindByID(ctx context.Context, id uuid.UUID) (*Society, error)
	FindByName(ctx context.Context, name string) (*Society, error)
	FindAll(ctx context.Context) ([]*Society, error)

	// DeleteCascade removes the society and every record scoped to it in a
	// single transaction: bills, visitors, complaints, expenses, notices,
	// vehicles, emergency contacts, accounts, then the society row itself.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}
