package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/errors"
)

func musicTag(t *testing.T, id uint, name string) *catalog.Tag {
	t.Helper()
	tag, err := catalog.NewTag(name, "", vo.TagCategoryMusic)
	require.NoError(t, err)
	require.NoError(t, tag.SetID(id))
	return tag
}

func bothTag(t *testing.T, id uint, name string) *catalog.Tag {
	t.Helper()
	tag, err := catalog.NewTag(name, "", vo.TagCategoryBoth)
	require.NoError(t, err)
	require.NoError(t, tag.SetID(id))
	return tag
}

func TestCreateResource_EditorOwnChurch(t *testing.T) {
	var created *catalog.Resource
	resourceRepo := &mockResourceRepository{
		CreateFunc: func(ctx context.Context, resource *catalog.Resource) error {
			created = resource
			return resource.SetID(100)
		},
	}
	recorder := &mockRecorder{}
	uc := NewCreateResourceUseCase(resourceRepo, &mockTagRepository{}, recorder, nopLogger{})

	result, err := uc.Execute(context.Background(), CreateResourceCommand{
		ActorUserID:   10,
		ActorRole:     authorization.RoleEditor,
		ActorChurchID: uintPtr(1),
		Category:      "MUSIC",
		Title:         "Cantata: Night of Miracles",
		Subcategory:   strPtr("CANTATA"),
		Format:        strPtr("SHEET"),
		Quantity:      30,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(1), result.ChurchID)
	assert.Equal(t, "AVAILABLE", result.Availability)
	assert.Equal(t, 30, result.Quantity)
	assert.Contains(t, recorder.actions, "CREATE_RESOURCE")
}

func TestCreateResource_EditorCannotTargetAnotherChurch(t *testing.T) {
	uc := NewCreateResourceUseCase(&mockResourceRepository{}, &mockTagRepository{}, &mockRecorder{}, nopLogger{})

	_, err := uc.Execute(context.Background(), CreateResourceCommand{
		ActorUserID:   10,
		ActorRole:     authorization.RoleEditor,
		ActorChurchID: uintPtr(1),
		ChurchID:      uintPtr(2),
		Category:      "MUSIC",
		Title:         "Hymnal",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateResource_AdminCreatesForAnyChurch(t *testing.T) {
	resourceRepo := &mockResourceRepository{}
	uc := NewCreateResourceUseCase(resourceRepo, &mockTagRepository{}, &mockRecorder{}, nopLogger{})

	result, err := uc.Execute(context.Background(), CreateResourceCommand{
		ActorUserID: 1,
		ActorRole:   authorization.RoleAdmin,
		ChurchID:    uintPtr(7),
		Category:    "STUDY",
		Title:       "Experiencing God",
		Subcategory: strPtr("BIBLE_STUDY"),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.ChurchID)
}

func TestCreateResource_SubcategoryMustMatchCategory(t *testing.T) {
	uc := NewCreateResourceUseCase(&mockResourceRepository{}, &mockTagRepository{}, &mockRecorder{}, nopLogger{})

	_, err := uc.Execute(context.Background(), CreateResourceCommand{
		ActorUserID:   10,
		ActorRole:     authorization.RoleEditor,
		ActorChurchID: uintPtr(1),
		Category:      "STUDY",
		Title:         "Handel's Messiah",
		Subcategory:   strPtr("CANTATA"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateResource_TagMustApplyToCategory(t *testing.T) {
	tagRepo := &mockTagRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*catalog.Tag, error) {
			return []*catalog.Tag{musicTag(t, 3, "Christmas")}, nil
		},
	}
	uc := NewCreateResourceUseCase(&mockResourceRepository{}, tagRepo, &mockRecorder{}, nopLogger{})

	_, err := uc.Execute(context.Background(), CreateResourceCommand{
		ActorUserID:   10,
		ActorRole:     authorization.RoleEditor,
		ActorChurchID: uintPtr(1),
		Category:      "STUDY",
		Title:         "Advent Study",
		TagIDs:        []uint{3},
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateResource_BothTagAppliesEverywhere(t *testing.T) {
	tagRepo := &mockTagRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*catalog.Tag, error) {
			return []*catalog.Tag{bothTag(t, 4, "Seasonal")}, nil
		},
	}
	uc := NewCreateResourceUseCase(&mockResourceRepository{}, tagRepo, &mockRecorder{}, nopLogger{})

	result, err := uc.Execute(context.Background(), CreateResourceCommand{
		ActorUserID:   10,
		ActorRole:     authorization.RoleEditor,
		ActorChurchID: uintPtr(1),
		Category:      "STUDY",
		Title:         "Advent Study",
		TagIDs:        []uint{4},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{4}, result.TagIDs)
}

func TestCreateResource_UnknownTagRejected(t *testing.T) {
	tagRepo := &mockTagRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*catalog.Tag, error) {
			return []*catalog.Tag{}, nil
		},
	}
	uc := NewCreateResourceUseCase(&mockResourceRepository{}, tagRepo, &mockRecorder{}, nopLogger{})

	_, err := uc.Execute(context.Background(), CreateResourceCommand{
		ActorUserID:   10,
		ActorRole:     authorization.RoleEditor,
		ActorChurchID: uintPtr(1),
		Category:      "MUSIC",
		Title:         "Hymnal",
		TagIDs:        []uint{99},
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateResource_EditorWithoutChurch(t *testing.T) {
	uc := NewCreateResourceUseCase(&mockResourceRepository{}, &mockTagRepository{}, &mockRecorder{}, nopLogger{})

	_, err := uc.Execute(context.Background(), CreateResourceCommand{
		ActorUserID: 10,
		ActorRole:   authorization.RoleEditor,
		Category:    "MUSIC",
		Title:       "Hymnal",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
