package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nivas/backend/internal/domain/identity"
)

// MockAccountRepository is a mock implementation of identity.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *identity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *identity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*identity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) FindResidentByUnit(ctx context.Context, societyID uuid.UUID, unitLabel string) (*identity.Account, error) {
	args := m.Called(ctx, societyID, unitLabel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindResidents(ctx context.Context, societyID uuid.UUID) ([]*identity.Account, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAdmin(ctx context.Context, societyID uuid.UUID) (*identity.Account, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByIDInSociety(ctx context.Context, societyID, id uuid.UUID) (*identity.Account, error) {
	args := m.Called(ctx, societyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockAccountRepository) DeleteResident(ctx context.Context, societyID, id uuid.UUID) error {
	args := m.Called(ctx, societyID, id)
	return args.Error(0)
}

var _ identity.AccountRepository = (*MockAccountRepository)(nil)

// MockSocietyRepository is a mock implementation of identity.SocietyRepository
type MockSocietyRepository struct {
	mock.Mock
}

func (m *MockSocietyRepository) Create(ctx context.Context, society *identity.Society) error {
	args := m.Called(ctx, society)
	return args.Error(0)
}

func (m *MockSocietyRepository) CreateWithAdmin(ctx context.Context, society *identity.Society, admin *identity.Account) error {
	args := m.Called(ctx, society, admin)
	return args.Error(0)
}

func (m *MockSocietyRepository) Update(ctx context.Context, society *identity.Society) error {
	args := m.Called(ctx, society)
	return args.Error(0)
}

func (m *MockSocietyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Society, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Society), args.Error(1)
}

func (m *MockSocietyRepository) FindByName(ctx context.Context, name string) (*identity.Society, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Society), args.Error(1)
}

func (m *MockSocietyRepository) FindAll(ctx context.Context) ([]*identity.Society, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.Society), args.Error(1)
}

func (m *MockSocietyRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ identity.SocietyRepository = (*MockSocietyRepository)(nil)
