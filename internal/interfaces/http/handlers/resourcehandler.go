package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ministryshare/internal/application/catalog/usecases"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

type ResourceHandler struct {
	createUseCase *usecases.CreateResourceUseCase
	listUseCase   *usecases.ListResourcesUseCase
	getUseCase    *usecases.GetResourceUseCase
	updateUseCase *usecases.UpdateResourceUseCase
	deleteUseCase *usecases.DeleteResourceUseCase
	logger        logger.Interface
}

func NewResourceHandler(
	createUC *usecases.CreateResourceUseCase,
	listUC *usecases.ListResourcesUseCase,
	getUC *usecases.GetResourceUseCase,
	updateUC *usecases.UpdateResourceUseCase,
	deleteUC *usecases.DeleteResourceUseCase,
	logger logger.Interface,
) *ResourceHandler {
	return &ResourceHandler{
		createUseCase: createUC,
		listUseCase:   listUC,
		getUseCase:    getUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

type ResourceRequest struct {
	ChurchID       *uint   `json:"church_id"`
	Category       string  `json:"category" binding:"required,oneof=MUSIC STUDY"`
	Title          string  `json:"title" binding:"required,min=1,max=255"`
	TitleEs        string  `json:"title_es" binding:"omitempty,max=255"`
	AuthorComposer string  `json:"author_composer" binding:"omitempty,max=255"`
	Publisher      string  `json:"publisher" binding:"omitempty,max=255"`
	Description    string  `json:"description"`
	DescriptionEs  string  `json:"description_es"`
	Subcategory    *string `json:"subcategory"`
	Format         *string `json:"format"`
	Quantity       int     `json:"quantity" binding:"omitempty,min=1"`
	MaxLoanWeeks   *int    `json:"max_loan_weeks" binding:"omitempty,min=1"`
	TagIDs         []uint  `json:"tag_ids"`
}

func (h *ResourceHandler) Create(c *gin.Context) {
	var req ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	a := actorFrom(c)
	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateResourceCommand{
		ActorUserID:    a.UserID,
		ActorRole:      a.Role,
		ActorChurchID:  a.ChurchID,
		ChurchID:       req.ChurchID,
		Category:       req.Category,
		Title:          req.Title,
		TitleEs:        req.TitleEs,
		AuthorComposer: req.AuthorComposer,
		Publisher:      req.Publisher,
		Description:    req.Description,
		DescriptionEs:  req.DescriptionEs,
		Subcategory:    req.Subcategory,
		Format:         req.Format,
		Quantity:       req.Quantity,
		MaxLoanWeeks:   req.MaxLoanWeeks,
		TagIDs:         req.TagIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *ResourceHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	cmd := usecases.ListResourcesCommand{
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		Subcategory:  c.Query("subcategory"),
		ChurchID:     utils.QueryUint(c, "church_id"),
		Availability: c.Query("availability"),
		TagIDs:       queryUintList(c, "tags"),
		Sort:         c.Query("sort"),
		Page:         p.Page,
		PageSize:     p.PageSize,
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Resources, result.Total, result.Page, result.PageSize)
}

func (h *ResourceHandler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ResourceHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	a := actorFrom(c)
	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateResourceCommand{
		ResourceID:     id,
		ActorUserID:    a.UserID,
		ActorRole:      a.Role,
		ActorChurchID:  a.ChurchID,
		Category:       req.Category,
		Title:          req.Title,
		TitleEs:        req.TitleEs,
		AuthorComposer: req.AuthorComposer,
		Publisher:      req.Publisher,
		Description:    req.Description,
		DescriptionEs:  req.DescriptionEs,
		Subcategory:    req.Subcategory,
		Format:         req.Format,
		Quantity:       req.Quantity,
		MaxLoanWeeks:   req.MaxLoanWeeks,
		TagIDs:         req.TagIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "resource updated", result)
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := actorFrom(c)
	err = h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteResourceCommand{
		ResourceID:    id,
		ActorUserID:   a.UserID,
		ActorRole:     a.Role,
		ActorChurchID: a.ChurchID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// queryUintList parses a comma-separated list of IDs, ignoring bad entries.
func queryUintList(c *gin.Context, name string) []uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}

	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
