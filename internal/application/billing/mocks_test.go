package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/nivas/backend/internal/domain/billing"
	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/infrastructure/payment"
)

// MockBillRepository is a mock implementation of billing.BillRepository
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) CreateBatch(ctx context.Context, bills []*billing.Bill) error {
	args := m.Called(ctx, bills)
	return args.Error(0)
}

func (m *MockBillRepository) ExistsByPeriod(ctx context.Context, societyID uuid.UUID, period string) (bool, error) {
	args := m.Called(ctx, societyID, period)
	return args.Bool(0), args.Error(1)
}

func (m *MockBillRepository) FindByID(ctx context.Context, societyID, id uuid.UUID) (*billing.Bill, error) {
	args := m.Called(ctx, societyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *MockBillRepository) FindAll(ctx context.Context, societyID uuid.UUID) ([]*billing.Bill, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*billing.Bill, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Bill), args.Error(1)
}

func (m *MockBillRepository) MarkPaid(ctx context.Context, societyID, id uuid.UUID, paymentID, method string) (*billing.Bill, error) {
	args := m.Called(ctx, societyID, id, paymentID, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *MockBillRepository) Delete(ctx context.Context, societyID, id uuid.UUID) error {
	args := m.Called(ctx, societyID, id)
	return args.Error(0)
}

func (m *MockBillRepository) DeleteByPeriod(ctx context.Context, societyID uuid.UUID, period string) (int64, error) {
	args := m.Called(ctx, societyID, period)
	return args.Get(0).(int64), args.Error(1)
}

var _ billing.BillRepository = (*MockBillRepository)(nil)

// MockAccountRepository mocks the subset of identity.AccountRepository the
// billing service touches; the remaining methods satisfy the interface.
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

// MockGateway is a mock implementation of payment.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, receipt string) (*payment.Order, error) {
	args := m.Called(ctx, amount, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Order), args.Error(1)
}

func (m *MockGateway) VerifySignature(orderID, paymentID, signature string) error {
	args := m.Called(orderID, paymentID, signature)
	return args.Error(0)
}

var _ payment.Gateway = (*MockGateway)(nil)
