package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ministryshare/internal/application/church/usecases"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

type ChurchHandler struct {
	registerUseCase *usecases.RegisterChurchUseCase
	createUseCase   *usecases.CreateChurchUseCase
	listUseCase     *usecases.ListChurchesUseCase
	getUseCase      *usecases.GetChurchUseCase
	manageUseCase   *usecases.ManageChurchUseCase
	reviewUseCase   *usecases.ReviewChurchUseCase
	logger          logger.Interface
}

func NewChurchHandler(
	registerUC *usecases.RegisterChurchUseCase,
	createUC *usecases.CreateChurchUseCase,
	listUC *usecases.ListChurchesUseCase,
	getUC *usecases.GetChurchUseCase,
	manageUC *usecases.ManageChurchUseCase,
	reviewUC *usecases.ReviewChurchUseCase,
	logger logger.Interface,
) *ChurchHandler {
	return &ChurchHandler{
		registerUseCase: registerUC,
		createUseCase:   createUC,
		listUseCase:     listUC,
		getUseCase:      getUC,
		manageUseCase:   manageUC,
		reviewUseCase:   reviewUC,
		logger:          logger,
	}
}

type ChurchProfileRequest struct {
	NameEs        string `json:"name_es" binding:"omitempty,max=200"`
	Address       string `json:"address" binding:"omitempty,max=255"`
	City          string `json:"city" binding:"omitempty,max=100"`
	State         string `json:"state" binding:"omitempty,max=100"`
	Zip           string `json:"zip" binding:"omitempty,max=20"`
	Phone         string `json:"phone" binding:"omitempty,max=30"`
	Email         string `json:"email" binding:"omitempty,email"`
	Pastor        string `json:"pastor" binding:"omitempty,max=100"`
	Website       string `json:"website" binding:"omitempty,max=255"`
	Description   string `json:"description"`
	DescriptionEs string `json:"description_es"`
}

type RegisterChurchRequest struct {
	Name    string               `json:"name" binding:"required,min=2,max=200"`
	Profile ChurchProfileRequest `json:"profile"`
}

type UpdateChurchRequest struct {
	Name    string               `json:"name" binding:"required,min=2,max=200"`
	Profile ChurchProfileRequest `json:"profile"`
}

type RejectChurchRequest struct {
	Reason string `json:"reason" binding:"required,min=2"`
}

type SetChurchActiveRequest struct {
	Active bool `json:"active"`
}

func (r ChurchProfileRequest) toInput() usecases.ChurchProfileInput {
	return usecases.ChurchProfileInput{
		NameEs:        r.NameEs,
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		Zip:           r.Zip,
		Phone:         r.Phone,
		Email:         r.Email,
		Pastor:        r.Pastor,
		Website:       r.Website,
		Description:   r.Description,
		DescriptionEs: r.DescriptionEs,
	}
}

// Register handles public church self-registration.
func (h *ChurchHandler) Register(c *gin.Context) {
	var req RegisterChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterChurchCommand{
		Name:    req.Name,
		Profile: req.Profile.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "registration submitted for review", result)
}

// Create lets an admin add a church that skips the review queue.
func (h *ChurchHandler) Create(c *gin.Context) {
	var req RegisterChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	a := actorFrom(c)
	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateChurchCommand{
		ActorUserID: a.UserID,
		Name:        req.Name,
		Profile:     req.Profile.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *ChurchHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	cmd := usecases.ListChurchesCommand{
		Search:             c.Query("search"),
		RegistrationStatus: c.Query("status"),
		ActiveOnly:         c.Query("active_only") == "true",
		Page:               p.Page,
		PageSize:           p.PageSize,
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Churches, result.Total, result.Page, result.PageSize)
}

// Directory is the public church listing; only approved, active churches.
func (h *ChurchHandler) Directory(c *gin.Context) {
	p := utils.ParsePagination(c)

	cmd := usecases.ListChurchesCommand{
		Search:     c.Query("search"),
		ActiveOnly: true,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Churches, result.Total, result.Page, result.PageSize)
}

func (h *ChurchHandler) Get(c *gin.Context) {
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

func (h *ChurchHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	a := actorFrom(c)
	result, err := h.manageUseCase.Update(c.Request.Context(), usecases.UpdateChurchCommand{
		ChurchID:      id,
		ActorUserID:   a.UserID,
		ActorRole:     a.Role,
		ActorChurchID: a.ChurchID,
		Name:          req.Name,
		Profile:       req.Profile.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "church updated", result)
}

func (h *ChurchHandler) SetActive(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetChurchActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	a := actorFrom(c)
	result, err := h.manageUseCase.SetActive(c.Request.Context(), usecases.SetChurchActiveCommand{
		ChurchID:    id,
		ActorUserID: a.UserID,
		Active:      req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "church updated", result)
}

func (h *ChurchHandler) Approve(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := actorFrom(c)
	result, err := h.reviewUseCase.Approve(c.Request.Context(), usecases.ApproveChurchCommand{
		ChurchID:    id,
		ActorUserID: a.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "church approved", result)
}

func (h *ChurchHandler) Reject(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	a := actorFrom(c)
	result, err := h.reviewUseCase.Reject(c.Request.Context(), usecases.RejectChurchCommand{
		ChurchID:    id,
		ActorUserID: a.UserID,
		Reason:      req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "church rejected", result)
}
