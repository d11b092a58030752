package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ministryshare/internal/domain/church"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/errors"
)

func pendingChurch(t *testing.T, id uint, name string) *church.Church {
	t.Helper()
	c, err := church.NewChurch(name, church.Profile{Email: "office@example.org"})
	require.NoError(t, err)
	require.NoError(t, c.SetID(id))
	return c
}

func TestRegisterChurch_StartsPendingInactive(t *testing.T) {
	churchRepo := &mockChurchRepository{}
	uc := NewRegisterChurchUseCase(churchRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), RegisterChurchCommand{
		Name:    "First Baptist of Pharr",
		Profile: ChurchProfileInput{City: "Pharr", State: "TX", Email: "office@fbp.org"},
	})

	require.NoError(t, err)
	assert.Equal(t, "PENDING", result.RegistrationStatus)
	assert.False(t, result.IsActive)
}

func TestRegisterChurch_DuplicateNameConflicts(t *testing.T) {
	existing := pendingChurch(t, 1, "First Baptist")
	churchRepo := &mockChurchRepository{
		GetByNameFunc: func(ctx context.Context, name string) (*church.Church, error) {
			return existing, nil
		},
	}
	uc := NewRegisterChurchUseCase(churchRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), RegisterChurchCommand{Name: "First Baptist"})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestCreateChurch_AdminSkipsReview(t *testing.T) {
	recorder := &mockRecorder{}
	uc := NewCreateChurchUseCase(&mockChurchRepository{}, recorder, nopLogger{})

	result, err := uc.Execute(context.Background(), CreateChurchCommand{
		ActorUserID: 1,
		Name:        "Iglesia Bautista Emanuel",
	})

	require.NoError(t, err)
	assert.Equal(t, "APPROVED", result.RegistrationStatus)
	assert.True(t, result.IsActive)
	assert.Contains(t, recorder.actions, "REGISTER_CHURCH")
}

func TestApproveChurch_ActivatesAndNotifies(t *testing.T) {
	c := pendingChurch(t, 5, "Grace Fellowship")
	churchRepo := &mockChurchRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*church.Church, error) { return c, nil },
	}
	recorder := &mockRecorder{}
	notifier := &mockNotifier{}
	uc := NewReviewChurchUseCase(churchRepo, &mockUserRepository{}, recorder, notifier, nopLogger{})

	result, err := uc.Approve(context.Background(), ApproveChurchCommand{ChurchID: 5, ActorUserID: 1})

	require.NoError(t, err)
	assert.Equal(t, "APPROVED", result.RegistrationStatus)
	assert.True(t, result.IsActive)
	assert.Contains(t, recorder.actions, "APPROVE_CHURCH")
	assert.Contains(t, notifier.kinds, "church_approved")
	// the contact address hears about the decision even with no members yet
	require.Len(t, notifier.recipients, 1)
	require.Len(t, notifier.recipients[0], 1)
	assert.Equal(t, "office@example.org", notifier.recipients[0][0].Email)
}

func TestApproveChurch_NotPendingConflicts(t *testing.T) {
	c := pendingChurch(t, 5, "Grace Fellowship")
	require.NoError(t, c.Approve())
	churchRepo := &mockChurchRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*church.Church, error) { return c, nil },
	}
	uc := NewReviewChurchUseCase(churchRepo, &mockUserRepository{}, &mockRecorder{}, &mockNotifier{}, nopLogger{})

	_, err := uc.Approve(context.Background(), ApproveChurchCommand{ChurchID: 5, ActorUserID: 1})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRejectChurch_RecordsReason(t *testing.T) {
	c := pendingChurch(t, 5, "Unknown Congregation")
	churchRepo := &mockChurchRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*church.Church, error) { return c, nil },
	}
	notifier := &mockNotifier{}
	uc := NewReviewChurchUseCase(churchRepo, &mockUserRepository{}, &mockRecorder{}, notifier, nopLogger{})

	result, err := uc.Reject(context.Background(), RejectChurchCommand{
		ChurchID: 5, ActorUserID: 1, Reason: "not part of the district",
	})

	require.NoError(t, err)
	assert.Equal(t, "REJECTED", result.RegistrationStatus)
	assert.Equal(t, "not part of the district", result.RejectionReason)
	assert.False(t, result.IsActive)
	assert.Contains(t, notifier.kinds, "church_rejected")
}

func TestUpdateChurch_EditorOwnChurchOnly(t *testing.T) {
	c := pendingChurch(t, 5, "Grace Fellowship")
	require.NoError(t, c.Approve())
	churchRepo := &mockChurchRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*church.Church, error) { return c, nil },
	}
	uc := NewManageChurchUseCase(churchRepo, &mockRecorder{}, nopLogger{})

	_, err := uc.Update(context.Background(), UpdateChurchCommand{
		ChurchID: 5, ActorUserID: 10,
		ActorRole: authorization.RoleEditor, ActorChurchID: uintPtr(9),
		Name: "Renamed",
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	result, err := uc.Update(context.Background(), UpdateChurchCommand{
		ChurchID: 5, ActorUserID: 10,
		ActorRole: authorization.RoleEditor, ActorChurchID: uintPtr(5),
		Name:    "Grace Fellowship Church",
		Profile: ChurchProfileInput{City: "McAllen"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Grace Fellowship Church", result.Name)
	assert.Equal(t, "McAllen", result.City)
}

func TestSetChurchActive_RequiresApproval(t *testing.T) {
	c := pendingChurch(t, 5, "Grace Fellowship")
	churchRepo := &mockChurchRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*church.Church, error) { return c, nil },
	}
	uc := NewManageChurchUseCase(churchRepo, &mockRecorder{}, nopLogger{})

	_, err := uc.SetActive(context.Background(), SetChurchActiveCommand{ChurchID: 5, ActorUserID: 1, Active: true})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	require.NoError(t, c.Approve())
	result, err := uc.SetActive(context.Background(), SetChurchActiveCommand{ChurchID: 5, ActorUserID: 1, Active: false})
	require.NoError(t, err)
	assert.False(t, result.IsActive)
}

func TestListChurches_StatusValidation(t *testing.T) {
	var captured church.ListFilter
	churchRepo := &mockChurchRepository{
		ListFunc: func(ctx context.Context, filter church.ListFilter) ([]*church.Church, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	uc := NewListChurchesUseCase(churchRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), ListChurchesCommand{RegistrationStatus: "LIMBO"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListChurchesCommand{RegistrationStatus: "PENDING", ActiveOnly: false})
	require.NoError(t, err)
	require.NotNil(t, captured.RegistrationStatus)
	assert.Equal(t, church.RegistrationPending, *captured.RegistrationStatus)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.PageSize)
}
