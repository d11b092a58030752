package importer

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type ImportCommand struct {
	ActorUserID   uint
	ActorRole     authorization.UserRole
	ActorChurchID *uint
	ChurchID      *uint // admin may import for any church
	Filename      string
	File          io.Reader
}

// RowError reports why one row failed, by source file line.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type ImportResult struct {
	Created  int        `json:"created"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors"`
	Warnings []string   `json:"warnings,omitempty"`
}

// ImportResourcesUseCase runs the whole pipeline: parse, validate, reconcile
// tags, persist in batches. Row failures are collected, not fatal.
type ImportResourcesUseCase struct {
	resourceRepo catalog.Repository
	tagRepo      catalog.TagRepository
	churchRepo   church.Repository
	recorder     activity.Recorder
	logger       logger.Interface
}

func NewImportResourcesUseCase(
	resourceRepo catalog.Repository,
	tagRepo catalog.TagRepository,
	churchRepo church.Repository,
	recorder activity.Recorder,
	logger logger.Interface,
) *ImportResourcesUseCase {
	return &ImportResourcesUseCase{
		resourceRepo: resourceRepo,
		tagRepo:      tagRepo,
		churchRepo:   churchRepo,
		recorder:     recorder,
		logger:       logger,
	}
}

func (uc *ImportResourcesUseCase) Execute(ctx context.Context, cmd ImportCommand) (*ImportResult, error) {
	churchID, err := uc.resolveChurch(ctx, cmd)
	if err != nil {
		return nil, err
	}

	rows, err := Parse(cmd.Filename, cmd.File)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(rows) == 0 {
		return nil, errors.NewValidationError("the file contains no data rows")
	}

	tags, err := uc.tagRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load tags", "error", err)
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	index := NewTagIndex(tags)

	result := &ImportResult{Errors: []RowError{}}
	validated := make([]ValidatedRow, 0, len(rows))
	for _, row := range rows {
		v := ValidateRow(row, index)
		result.Warnings = append(result.Warnings, v.Warnings...)
		if !v.Valid() {
			result.Failed++
			result.Errors = append(result.Errors, RowError{Row: v.Line, Error: strings.Join(v.Errors, "; ")})
			continue
		}
		validated = append(validated, v)
	}

	createdTags := uc.reconcileTags(ctx, index, validated)
	for i := range validated {
		for _, name := range validated[i].NewTagNames {
			if id, ok := createdTags[strings.ToLower(name)]; ok {
				validated[i].TagIDs = append(validated[i].TagIDs, id)
			}
		}
	}

	uc.persistRows(ctx, cmd.ActorUserID, churchID, validated, result)

	uc.logger.Infow("import finished",
		"church_id", churchID,
		"created", result.Created,
		"failed", result.Failed,
	)
	uc.recorder.Record(cmd.ActorUserID, constants.ActionImportResources, constants.EntityChurch, &churchID, map[string]any{
		"created": result.Created,
		"failed":  result.Failed,
	})
	return result, nil
}

func (uc *ImportResourcesUseCase) resolveChurch(ctx context.Context, cmd ImportCommand) (uint, error) {
	var churchID uint
	switch {
	case cmd.ActorRole.IsAdmin():
		switch {
		case cmd.ChurchID != nil:
			churchID = *cmd.ChurchID
		case cmd.ActorChurchID != nil:
			churchID = *cmd.ActorChurchID
		default:
			return 0, errors.NewValidationError("a church must be specified")
		}
	case cmd.ActorChurchID == nil:
		return 0, errors.NewValidationError("a church membership is required")
	case cmd.ChurchID != nil && *cmd.ChurchID != *cmd.ActorChurchID:
		return 0, errors.NewForbiddenError("cannot import for another church")
	default:
		churchID = *cmd.ActorChurchID
	}

	if _, err := uc.churchRepo.GetByID(ctx, churchID); err != nil {
		if stderrors.Is(err, church.ErrChurchNotFound) {
			return 0, errors.NewNotFoundError("church not found")
		}
		return 0, fmt.Errorf("failed to get church: %w", err)
	}
	return churchID, nil
}

// reconcileTags creates the tags the file references that don't exist yet.
// Names are deduped across the batch and re-checked case-insensitively
// against the store before creating. New tags default to the MUSIC category.
// Returns lowercased name to created tag ID.
func (uc *ImportResourcesUseCase) reconcileTags(ctx context.Context, index *TagIndex, rows []ValidatedRow) map[string]uint {
	pending := make(map[string]string)
	for _, row := range rows {
		for _, name := range row.NewTagNames {
			key := strings.ToLower(name)
			if _, ok := pending[key]; !ok {
				pending[key] = name
			}
		}
	}

	created := make(map[string]uint, len(pending))
	for key, name := range pending {
		if existing, err := uc.tagRepo.GetByNameFold(ctx, name); err == nil {
			index.Add(existing)
			created[key] = existing.ID()
			continue
		}
		tag, err := catalog.NewTag(name, "", vo.TagCategoryMusic)
		if err != nil {
			uc.logger.Warnw("skipping invalid tag name", "tag", name, "error", err)
			continue
		}
		if err := uc.tagRepo.Create(ctx, tag); err != nil {
			uc.logger.Errorw("failed to create tag", "tag", name, "error", err)
			continue
		}
		index.Add(tag)
		created[key] = tag.ID()
	}
	return created
}

// persistRows builds resources and inserts them in batches. When a batch
// insert fails the rows are retried one at a time so a single bad row does
// not sink its neighbors.
func (uc *ImportResourcesUseCase) persistRows(ctx context.Context, actorUserID, churchID uint, rows []ValidatedRow, result *ImportResult) {
	type pendingResource struct {
		line     int
		resource *catalog.Resource
	}

	var batch []pendingResource
	flush := func() {
		if len(batch) == 0 {
			return
		}
		resources := make([]*catalog.Resource, len(batch))
		for i, p := range batch {
			resources[i] = p.resource
		}
		if err := uc.resourceRepo.CreateBatch(ctx, resources); err != nil {
			uc.logger.Warnw("batch insert failed, retrying rows individually", "error", err, "rows", len(batch))
			for _, p := range batch {
				if err := uc.resourceRepo.Create(ctx, p.resource); err != nil {
					result.Failed++
					result.Errors = append(result.Errors, RowError{Row: p.line, Error: err.Error()})
					continue
				}
				result.Created++
				uc.recordCreated(actorUserID, p.resource)
			}
		} else {
			result.Created += len(batch)
			for _, p := range batch {
				uc.recordCreated(actorUserID, p.resource)
			}
		}
		batch = batch[:0]
	}

	for _, row := range rows {
		resource, err := catalog.NewResource(churchID, row.Category, row.Title, catalog.Attributes{
			TitleEs:        row.TitleEs,
			AuthorComposer: row.AuthorComposer,
			Publisher:      row.Publisher,
			Description:    row.Description,
			DescriptionEs:  row.DescriptionEs,
			Subcategory:    row.Subcategory,
			Format:         row.Format,
			Quantity:       row.Quantity,
			MaxLoanWeeks:   row.MaxLoanWeeks,
		})
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, RowError{Row: row.Line, Error: err.Error()})
			continue
		}
		if len(row.TagIDs) > 0 {
			resource.SetTagIDs(row.TagIDs)
		}
		batch = append(batch, pendingResource{line: row.Line, resource: resource})
		if len(batch) >= constants.ImportBatchSize {
			flush()
		}
	}
	flush()
}

// recordCreated writes the same per-resource audit entry the single-create
// path does, so imported resources are individually traceable.
func (uc *ImportResourcesUseCase) recordCreated(actorUserID uint, resource *catalog.Resource) {
	resourceID := resource.ID()
	uc.recorder.Record(actorUserID, constants.ActionCreateResource, constants.EntityResource, &resourceID, map[string]any{
		"title":    resource.Title(),
		"imported": true,
	})
}
