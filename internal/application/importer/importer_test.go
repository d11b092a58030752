package importer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/errors"
)

func activeChurchRepo(t *testing.T) *mockChurchRepository {
	t.Helper()
	return &mockChurchRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*church.Church, error) {
			c, err := church.NewApprovedChurch(fmt.Sprintf("Church %d", id), church.Profile{})
			require.NoError(t, err)
			require.NoError(t, c.SetID(id))
			return c, nil
		},
	}
}

func importCommand(csvBody string) ImportCommand {
	return ImportCommand{
		ActorUserID:   10,
		ActorRole:     authorization.RoleEditor,
		ActorChurchID: uintPtr(1),
		Filename:      "catalog.csv",
		File:          strings.NewReader(csvBody),
	}
}

func TestImport_ValidRowsCreated(t *testing.T) {
	resourceRepo := &mockResourceRepository{}
	recorder := &mockRecorder{}
	uc := NewImportResourcesUseCase(resourceRepo, &mockTagRepository{}, activeChurchRepo(t), recorder, nopLogger{})

	result, err := uc.Execute(context.Background(), importCommand(
		"Category,Title,Qty\nMUSIC,Hymnal,5\nSTUDY,Devotional,\n"))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Failed)
	require.Len(t, resourceRepo.batches, 1)
	require.Len(t, resourceRepo.batches[0], 2)
	assert.Equal(t, uint(1), resourceRepo.batches[0][0].ChurchID())
	assert.Equal(t, 5, resourceRepo.batches[0][0].Quantity())
	assert.Contains(t, recorder.actions, "IMPORT_RESOURCES")
}

func TestImport_AuditsEachCreatedResource(t *testing.T) {
	resourceRepo := &mockResourceRepository{}
	recorder := &mockRecorder{}
	uc := NewImportResourcesUseCase(resourceRepo, &mockTagRepository{}, activeChurchRepo(t), recorder, nopLogger{})

	result, err := uc.Execute(context.Background(), importCommand(
		"Category,Title\nMUSIC,Hymnal\nSTUDY,Devotional\nVIDEO,Bad Category\n"))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)

	var createdIDs []uint
	for i, action := range recorder.actions {
		if action != "CREATE_RESOURCE" {
			continue
		}
		assert.Equal(t, "RESOURCE", recorder.entityTypes[i])
		require.NotNil(t, recorder.entityIDs[i])
		createdIDs = append(createdIDs, *recorder.entityIDs[i])
	}
	assert.ElementsMatch(t, []uint{1, 2}, createdIDs, "one entry per created resource, none for failed rows")
}

func TestImport_InvalidRowsReportedNotFatal(t *testing.T) {
	resourceRepo := &mockResourceRepository{}
	uc := NewImportResourcesUseCase(resourceRepo, &mockTagRepository{}, activeChurchRepo(t), &mockRecorder{}, nopLogger{})

	result, err := uc.Execute(context.Background(), importCommand(
		"Category,Title\nMUSIC,Hymnal\nVIDEO,Bad Category\nMUSIC,\n"))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, 4, result.Errors[1].Row)
}

func TestImport_NewTagsCreatedOnceAcrossBatch(t *testing.T) {
	tagRepo := &mockTagRepository{}
	resourceRepo := &mockResourceRepository{}
	uc := NewImportResourcesUseCase(resourceRepo, tagRepo, activeChurchRepo(t), &mockRecorder{}, nopLogger{})

	result, err := uc.Execute(context.Background(), importCommand(
		"Category,Title,Tags\nMUSIC,Hymnal,Easter\nMUSIC,Anthem Book,easter\n"))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	require.Len(t, tagRepo.created, 1, "duplicate names should collapse case-insensitively")
	assert.Equal(t, "Easter", tagRepo.created[0].Name())
	assert.Equal(t, vo.TagCategoryMusic, tagRepo.created[0].Category())

	// both rows end up linked to the one created tag
	require.Len(t, resourceRepo.batches, 1)
	for _, r := range resourceRepo.batches[0] {
		assert.Len(t, r.TagIDs(), 1)
	}
}

func TestImport_ExistingTagReusedAfterRecheck(t *testing.T) {
	existing, err := catalog.NewTag("Easter", "", vo.TagCategoryBoth)
	require.NoError(t, err)
	require.NoError(t, existing.SetID(7))

	tagRepo := &mockTagRepository{
		// not in the initial listing, but present on the direct lookup
		GetByNameFoldFunc: func(ctx context.Context, name string) (*catalog.Tag, error) {
			if strings.EqualFold(name, "Easter") {
				return existing, nil
			}
			return nil, catalog.ErrTagNotFound
		},
	}
	resourceRepo := &mockResourceRepository{}
	uc := NewImportResourcesUseCase(resourceRepo, tagRepo, activeChurchRepo(t), &mockRecorder{}, nopLogger{})

	_, err = uc.Execute(context.Background(), importCommand(
		"Category,Title,Tags\nMUSIC,Hymnal,Easter\n"))

	require.NoError(t, err)
	assert.Empty(t, tagRepo.created)
	require.Len(t, resourceRepo.batches, 1)
	assert.Equal(t, []uint{7}, resourceRepo.batches[0][0].TagIDs())
}

func TestImport_BatchFailureFallsBackPerRow(t *testing.T) {
	var singles int
	resourceRepo := &mockResourceRepository{
		CreateBatchFunc: func(ctx context.Context, resources []*catalog.Resource) error {
			return fmt.Errorf("duplicate key")
		},
		CreateFunc: func(ctx context.Context, resource *catalog.Resource) error {
			singles++
			if resource.Title() == "Broken" {
				return fmt.Errorf("constraint violation")
			}
			return resource.SetID(uint(singles))
		},
	}
	uc := NewImportResourcesUseCase(resourceRepo, &mockTagRepository{}, activeChurchRepo(t), &mockRecorder{}, nopLogger{})

	result, err := uc.Execute(context.Background(), importCommand(
		"Category,Title\nMUSIC,Hymnal\nMUSIC,Broken\nMUSIC,Anthem Book\n"))

	require.NoError(t, err)
	assert.Equal(t, 3, singles)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)
}

func TestImport_MalformedFileFailsWhole(t *testing.T) {
	uc := NewImportResourcesUseCase(&mockResourceRepository{}, &mockTagRepository{}, activeChurchRepo(t), &mockRecorder{}, nopLogger{})

	_, err := uc.Execute(context.Background(), importCommand("Category,Title\nMUSIC,\"unterminated\n"))

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestImport_EditorCannotTargetAnotherChurch(t *testing.T) {
	uc := NewImportResourcesUseCase(&mockResourceRepository{}, &mockTagRepository{}, activeChurchRepo(t), &mockRecorder{}, nopLogger{})

	cmd := importCommand("Category,Title\nMUSIC,Hymnal\n")
	cmd.ChurchID = uintPtr(2)
	_, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestImport_AdminImportsForNamedChurch(t *testing.T) {
	resourceRepo := &mockResourceRepository{}
	uc := NewImportResourcesUseCase(resourceRepo, &mockTagRepository{}, activeChurchRepo(t), &mockRecorder{}, nopLogger{})

	_, err := uc.Execute(context.Background(), ImportCommand{
		ActorUserID: 1,
		ActorRole:   authorization.RoleAdmin,
		ChurchID:    uintPtr(5),
		Filename:    "catalog.csv",
		File:        strings.NewReader("Category,Title\nMUSIC,Hymnal\n"),
	})

	require.NoError(t, err)
	require.Len(t, resourceRepo.batches, 1)
	assert.Equal(t, uint(5), resourceRepo.batches[0][0].ChurchID())
}
