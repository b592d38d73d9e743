package community

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/infrastructure/email"
)

// MockVisitorRepository is a mock implementation of community.VisitorRepository
type MockVisitorRepository struct {
	mock.Mock
}

func (m *MockVisitorRepository) Create(ctx context.Context, visitor *community.Visitor) error {
	args := m.Called(ctx, visitor)
	return args.Error(0)
}

func (m *MockVisitorRepository) Update(ctx context.Context, visitor *community.Visitor) error {
	args := m.Called(ctx, visitor)
	return args.Error(0)
}

func (m *MockVisitorRepository) FindByID(ctx context.Context, societyID, id uuid.UUID) (*community.Visitor, error) {
	args := m.Called(ctx, societyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) FindAll(ctx context.Context, societyID uuid.UUID) ([]*community.Visitor, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*community.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) FindByStatus(ctx context.Context, societyID uuid.UUID, status community.VisitorStatus) ([]*community.Visitor, error) {
	args := m.Called(ctx, societyID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*community.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) FindByUnit(ctx context.Context, societyID uuid.UUID, unitLabel string) ([]*community.Visitor, error) {
	args := m.Called(ctx, societyID, unitLabel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*community.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) Delete(ctx context.Context, societyID, id uuid.UUID) error {
	args := m.Called(ctx, societyID, id)
	return args.Error(0)
}

var _ community.VisitorRepository = (*MockVisitorRepository)(nil)

// MockComplaintRepository is a mock implementation of community.ComplaintRepository
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(ctx context.Context, complaint *community.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepository) Update(ctx context.Context, complaint *community.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepository) FindByID(ctx context.Context, societyID, id uuid.UUID) (*community.Complaint, error) {
	args := m.Called(ctx, societyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) FindAll(ctx context.Context, societyID uuid.UUID) ([]*community.Complaint, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*community.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) FindByAccount(ctx context.Context, societyID, accountID uuid.UUID) ([]*community.Complaint, error) {
	args := m.Called(ctx, societyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*community.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) Delete(ctx context.Context, societyID, id uuid.UUID) error {
	args := m.Called(ctx, societyID, id)
	return args.Error(0)
}

var _ community.ComplaintRepository = (*MockComplaintRepository)(nil)

// MockExpenseRepository is a mock implementation of community.ExpenseRepository
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *community.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, societyID, id uuid.UUID) (*community.Expense, error) {
	args := m.Called(ctx, societyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAll(ctx context.Context, societyID uuid.UUID) ([]*community.Expense, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*community.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SummarizeByCategory(ctx context.Context, societyID uuid.UUID) ([]community.CategorySummary, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]community.CategorySummary), args.Error(1)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, societyID, id uuid.UUID) error {
	args := m.Called(ctx, societyID, id)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteByMonth(ctx context.Context, societyID uuid.UUID, start, end time.Time) (int64, error) {
	args := m.Called(ctx, societyID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

var _ community.ExpenseRepository = (*MockExpenseRepository)(nil)

// MockNoticeRepository is a mock implementation of community.NoticeRepository
type MockNoticeRepository struct {
	mock.Mock
}

func (m *MockNoticeRepository) Create(ctx context.Context, notice *community.Notice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockNoticeRepository) FindByID(ctx context.Context, societyID, id uuid.UUID) (*community.Notice, error) {
	args := m.Called(ctx, societyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Notice), args.Error(1)
}

func (m *MockNoticeRepository) FindAll(ctx context.Context, societyID uuid.UUID) ([]*community.Notice, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*community.Notice), args.Error(1)
}

func (m *MockNoticeRepository) MarkRead(ctx context.Context, societyID, noticeID, accountID uuid.UUID) error {
	args := m.Called(ctx, societyID, noticeID, accountID)
	return args.Error(0)
}

func (m *MockNoticeRepository) Delete(ctx context.Context, societyID, id uuid.UUID) error {
	args := m.Called(ctx, societyID, id)
	return args.Error(0)
}

var _ community.NoticeRepository = (*MockNoticeRepository)(nil)

// MockVehicleRepository is a mock implementation of community.VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *community.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, societyID, id uuid.UUID) (*community.Vehicle, error) {
	args := m.Called(ctx, societyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindAll(ctx context.Context, societyID uuid.UUID) ([]*community.Vehicle, error) {
	args := m.Called(ctx, societyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*community.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByOwner(ctx context.Context, societyID, ownerID uuid.UUID) ([]*community.Vehicle, error) {
	args := m.Called(ctx, societyID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*community.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByNumber(ctx context.Context, societyID uuid.UUID, number string) (*community.Vehicle, error) {
	args := m.Called(ctx, societyID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, societyID, id uuid.UUID) error {
	args := m.Called(ctx, societyID, id)
	return args.Error(0)
}

var _ community.VehicleRepository = (*MockVehicleRepository)(nil)

// MockEmergencyContactRepository is a mock implementation of
// community.EmergencyContactRepository
type MockEmergencyContactRepository struct {
	mock.Mock
}

func (m *MockEmergencyContactRepository) Upsert(ctx context.Context, contact *community.EmergencyContact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockEmergencyContactRepository) FindByAccount(ctx context.Context, societyID, accountID uuid.UUID) (*community.EmergencyContact, error) {
	args := m.Called(ctx, societyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.EmergencyContact), args.Error(1)
}

func (m *MockEmergencyContactRepository) DeleteByAccount(ctx context.Context, societyID, accountID uuid.UUID) error {
	args := m.Called(ctx, societyID, accountID)
	return args.Error(0)
}

var _ community.EmergencyContactRepository = (*MockEmergencyContactRepository)(nil)

// MockAccountRepository mocks identity.AccountRepository for notification
// fan-out and SOS assembly.
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

// MockSocietyRepository mocks identity.SocietyRepository for SOS assembly
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

// recordingNotifier captures fan-out emails; Wait blocks until one Send
// lands so tests can assert on asynchronous notifications.
type recordingNotifier struct {
	mu       sync.Mutex
	sent     [][]string
	subjects []string
	signal   chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{signal: make(chan struct{}, 8)}
}

func (n *recordingNotifier) Send(_ context.Context, to []string, subject, _ string) error {
	n.mu.Lock()
	n.sent = append(n.sent, to)
	n.subjects = append(n.subjects, subject)
	n.mu.Unlock()
	n.signal <- struct{}{}
	return nil
}

func (n *recordingNotifier) Wait(timeout time.Duration) bool {
	select {
	case <-n.signal:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (n *recordingNotifier) Subjects() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.subjects))
	copy(out, n.subjects)
	return out
}

func (n *recordingNotifier) Recipients() [][]string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([][]string, len(n.sent))
	copy(out, n.sent)
	return out
}

var _ email.Notifier = (*recordingNotifier)(nil)
