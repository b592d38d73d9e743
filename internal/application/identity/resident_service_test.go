package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/domain/shared"
)

func validResidentInput(societyID uuid.UUID) AddResidentInput {
	return AddResidentInput{
		SocietyID:   societyID,
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "password123",
		UnitLabel:   "A-101",
	}
}

func TestResidentServiceAddResident(t *testing.T) {
	societyID := uuid.New()

	t.Run("creates the resident", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindResidentByUnit", mock.Anything, societyID, "A-101").Return(nil, shared.ErrNotFound)
		repo.On("ExistsByEmail", mock.Anything, "asha@example.com").Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		svc := NewResidentService(repo, zap.NewNop())

		info, err := svc.AddResident(context.Background(), validResidentInput(societyID))
		require.NoError(t, err)
		assert.Equal(t, "resident", info.Role)
		assert.Equal(t, "A-101", info.UnitLabel)
		repo.AssertExpectations(t)
	})

	t.Run("occupied unit is DUPLICATE_UNIT", func(t *testing.T) {
		occupant, err := identity.NewResident(societyID, "Ravi", "ravi@example.com", "password123", "A-101", "")
		require.NoError(t, err)

		repo := new(MockAccountRepository)
		repo.On("FindResidentByUnit", mock.Anything, societyID, "A-101").Return(occupant, nil)
		svc := NewResidentService(repo, zap.NewNop())

		_, err = svc.AddResident(context.Background(), validResidentInput(societyID))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_UNIT", domainErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("taken email is DUPLICATE_EMAIL", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindResidentByUnit", mock.Anything, societyID, "A-101").Return(nil, shared.ErrNotFound)
		repo.On("ExistsByEmail", mock.Anything, "asha@example.com").Return(true, nil)
		svc := NewResidentService(repo, zap.NewNop())

		_, err := svc.AddResident(context.Background(), validResidentInput(societyID))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_EMAIL", domainErr.Code)
	})

	t.Run("email race on the unique index is DUPLICATE_EMAIL", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindResidentByUnit", mock.Anything, societyID, "A-101").Return(nil, shared.ErrNotFound)
		repo.On("ExistsByEmail", mock.Anything, "asha@example.com").Return(false, nil).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)
		// the concurrent add has landed by the time the failure is classified
		repo.On("ExistsByEmail", mock.Anything, "asha@example.com").Return(true, nil).Once()
		svc := NewResidentService(repo, zap.NewNop())

		_, err := svc.AddResident(context.Background(), validResidentInput(societyID))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_EMAIL", domainErr.Code)
	})

	t.Run("unit race on the unique index is DUPLICATE_UNIT", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindResidentByUnit", mock.Anything, societyID, "A-101").Return(nil, shared.ErrNotFound)
		repo.On("ExistsByEmail", mock.Anything, "asha@example.com").Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)
		svc := NewResidentService(repo, zap.NewNop())

		_, err := svc.AddResident(context.Background(), validResidentInput(societyID))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_UNIT", domainErr.Code)
	})
}

func TestResidentServiceDeleteResident(t *testing.T) {
	societyID := uuid.New()
	residentID := uuid.New()

	t.Run("delegates the cascade to the repository", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("DeleteResident", mock.Anything, societyID, residentID).Return(nil)
		svc := NewResidentService(repo, zap.NewNop())

		require.NoError(t, svc.DeleteResident(context.Background(), societyID, residentID))
		repo.AssertExpectations(t)
	})

	t.Run("unknown resident is NOT_FOUND", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("DeleteResident", mock.Anything, societyID, residentID).Return(shared.ErrNotFound)
		svc := NewResidentService(repo, zap.NewNop())

		assert.ErrorIs(t, svc.DeleteResident(context.Background(), societyID, residentID), shared.ErrNotFound)
	})
}

func TestResidentServiceListResidents(t *testing.T) {
	societyID := uuid.New()
	r1, err := identity.NewResident(societyID, "Asha", "a1@example.com", "password123", "A-101", "")
	require.NoError(t, err)
	r2, err := identity.NewResident(societyID, "Ravi", "a2@example.com", "password123", "A-102", "")
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	repo.On("FindResidents", mock.Anything, societyID).Return([]*identity.Account{r1, r2}, nil)
	svc := NewResidentService(repo, zap.NewNop())

	infos, err := svc.ListResidents(context.Background(), societyID)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "A-101", infos[0].UnitLabel)
}
