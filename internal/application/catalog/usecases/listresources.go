package usecases

import (
	"context"
	"fmt"

	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type ListResourcesCommand struct {
	Search       string
	Category     string
	Subcategory  string
	ChurchID     *uint
	Availability string
	TagIDs       []uint
	Sort         string
	Page         int
	PageSize     int
}

type ListResourcesResult struct {
	Resources []*ResourceResult `json:"resources"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

type ListResourcesUseCase struct {
	resourceRepo catalog.Repository
	logger       logger.Interface
}

func NewListResourcesUseCase(resourceRepo catalog.Repository, logger logger.Interface) *ListResourcesUseCase {
	return &ListResourcesUseCase{resourceRepo: resourceRepo, logger: logger}
}

func (uc *ListResourcesUseCase) Execute(ctx context.Context, cmd ListResourcesCommand) (*ListResourcesResult, error) {
	filter, err := buildListFilter(cmd)
	if err != nil {
		return nil, err
	}

	resources, total, err := uc.resourceRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list resources", "error", err)
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	results := make([]*ResourceResult, 0, len(resources))
	for _, r := range resources {
		results = append(results, toResourceResult(r))
	}
	return &ListResourcesResult{
		Resources: results,
		Total:     total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	}, nil
}

func buildListFilter(cmd ListResourcesCommand) (catalog.ListFilter, error) {
	filter := catalog.ListFilter{
		Search:   cmd.Search,
		ChurchID: cmd.ChurchID,
		TagIDs:   cmd.TagIDs,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}

	if cmd.Category != "" {
		category := vo.Category(cmd.Category)
		if !category.IsValid() {
			return filter, errors.NewValidationError(fmt.Sprintf("invalid category: %s", cmd.Category))
		}
		filter.Category = &category
		if cmd.Subcategory != "" {
			sub := vo.Subcategory(cmd.Subcategory)
			if !sub.IsValidFor(category) {
				return filter, errors.NewValidationError(
					fmt.Sprintf("subcategory %s is not valid for category %s", cmd.Subcategory, cmd.Category))
			}
			filter.Subcategory = &sub
		}
	} else if cmd.Subcategory != "" {
		return filter, errors.NewValidationError("subcategory filter requires a category")
	}

	if cmd.Availability != "" {
		availability := vo.AvailabilityStatus(cmd.Availability)
		if !availability.IsValid() {
			return filter, errors.NewValidationError(fmt.Sprintf("invalid availability status: %s", cmd.Availability))
		}
		filter.Availability = &availability
	}

	switch catalog.SortOrder(cmd.Sort) {
	case "":
		filter.Sort = catalog.SortNewest
	case catalog.SortNewest, catalog.SortTitle, catalog.SortAuthor:
		filter.Sort = catalog.SortOrder(cmd.Sort)
	default:
		return filter, errors.NewValidationError(fmt.Sprintf("invalid sort order: %s", cmd.Sort))
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	return filter, nil
}
