package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ministryshare/internal/domain/catalog"
	catalogvo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/shared/errors"
)

func newCreateRequestUseCase(
	requestRepo *mockRequestRepository,
	resourceRepo *mockResourceRepository,
	churchRepo *mockChurchRepository,
) (*CreateLoanRequestUseCase, *mockRecorder, *mockNotifier) {
	recorder := &mockRecorder{}
	notifier := &mockNotifier{}
	uc := NewCreateLoanRequestUseCase(
		requestRepo, resourceRepo, churchRepo,
		&mockUserRepository{}, recorder, notifier, nopLogger{},
	)
	return uc, recorder, notifier
}

func validCreateCommand() CreateLoanRequestCommand {
	return CreateLoanRequestCommand{
		ResourceID:    100,
		ActorUserID:   requesterUserID,
		ActorChurchID: uintPtr(requesterChurchID),
		ReturnByDate:  time.Now().AddDate(0, 0, 21),
		Message:       "needed for vacation bible school",
	}
}

func TestCreateLoanRequest_Success(t *testing.T) {
	resourceRepo := &mockResourceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Resource, error) {
			return testResource(t, catalogvo.AvailabilityAvailable), nil
		},
	}
	churchRepo := &mockChurchRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*church.Church, error) {
			return testActiveChurch(t, requesterChurchID, "Grace Fellowship"), nil
		},
	}
	uc, recorder, notifier := newCreateRequestUseCase(&mockRequestRepository{}, resourceRepo, churchRepo)

	result, err := uc.Execute(context.Background(), validCreateCommand())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "PENDING", result.Status)
	assert.Equal(t, requesterChurchID, result.RequestingChurchID)
	assert.Contains(t, recorder.actions, "CREATE_LOAN_REQUEST")
	assert.Contains(t, notifier.kinds, "request_created")
}

func TestCreateLoanRequest_ResourceNotFound(t *testing.T) {
	uc, _, notifier := newCreateRequestUseCase(&mockRequestRepository{}, &mockResourceRepository{}, &mockChurchRepository{})

	result, err := uc.Execute(context.Background(), validCreateCommand())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Empty(t, notifier.kinds)
}

func TestCreateLoanRequest_OwnResource(t *testing.T) {
	resourceRepo := &mockResourceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Resource, error) {
			return testResource(t, catalogvo.AvailabilityAvailable), nil
		},
	}
	uc, _, _ := newCreateRequestUseCase(&mockRequestRepository{}, resourceRepo, &mockChurchRepository{})

	cmd := validCreateCommand()
	cmd.ActorChurchID = uintPtr(ownerChurchID)
	result, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	assert.Equal(t, errors.ReasonOwnResource, appErr.Reason)
}

func TestCreateLoanRequest_NotAvailable(t *testing.T) {
	resourceRepo := &mockResourceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Resource, error) {
			return testResource(t, catalogvo.AvailabilityOnLoan), nil
		},
	}
	uc, _, _ := newCreateRequestUseCase(&mockRequestRepository{}, resourceRepo, &mockChurchRepository{})

	result, err := uc.Execute(context.Background(), validCreateCommand())

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ReasonNotAvailable, appErr.Reason)
}

func TestCreateLoanRequest_DuplicatePending(t *testing.T) {
	resourceRepo := &mockResourceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Resource, error) {
			return testResource(t, catalogvo.AvailabilityAvailable), nil
		},
	}
	churchRepo := &mockChurchRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*church.Church, error) {
			return testActiveChurch(t, requesterChurchID, "Grace Fellowship"), nil
		},
	}
	requestRepo := &mockRequestRepository{
		ExistsPendingFunc: func(ctx context.Context, resourceID, requestingChurchID uint) (bool, error) {
			return true, nil
		},
	}
	uc, _, _ := newCreateRequestUseCase(requestRepo, resourceRepo, churchRepo)

	result, err := uc.Execute(context.Background(), validCreateCommand())

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ReasonDuplicatePending, appErr.Reason)
}

func TestCreateLoanRequest_NoChurchMembership(t *testing.T) {
	uc, _, _ := newCreateRequestUseCase(&mockRequestRepository{}, &mockResourceRepository{}, &mockChurchRepository{})

	cmd := validCreateCommand()
	cmd.ActorChurchID = nil
	result, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateLoanRequest_ExceedsMaxLoanWeeks(t *testing.T) {
	weeks := 2
	resourceRepo := &mockResourceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Resource, error) {
			r, err := catalog.ReconstructResource(
				100, ownerChurchID, catalogvo.CategoryMusic, "Hymnal",
				catalog.Attributes{Quantity: 1, MaxLoanWeeks: &weeks},
				catalogvo.AvailabilityAvailable, nil, time.Now(), time.Now(),
			)
			require.NoError(t, err)
			return r, nil
		},
	}
	churchRepo := &mockChurchRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*church.Church, error) {
			return testActiveChurch(t, requesterChurchID, "Grace Fellowship"), nil
		},
	}
	uc, _, _ := newCreateRequestUseCase(&mockRequestRepository{}, resourceRepo, churchRepo)

	cmd := validCreateCommand()
	cmd.ReturnByDate = time.Now().AddDate(0, 0, 30)
	result, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
