package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ministryshare/internal/application/user/usecases"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

// UserHandler is the admin account administration surface.
type UserHandler struct {
	manageUseCase *usecases.ManageUsersUseCase
	logger        logger.Interface
}

func NewUserHandler(manageUC *usecases.ManageUsersUseCase, logger logger.Interface) *UserHandler {
	return &UserHandler{manageUseCase: manageUC, logger: logger}
}

type UpdateUserRequest struct {
	Role     *string `json:"role" binding:"omitempty,oneof=ADMIN EDITOR"`
	ChurchID *uint   `json:"church_id"`
	Active   *bool   `json:"active"`
}

func (h *UserHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	cmd := usecases.ListUsersCommand{
		Search:   c.Query("search"),
		ChurchID: utils.QueryUint(c, "church_id"),
		Role:     c.Query("role"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	result, err := h.manageUseCase.List(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	a := actorFrom(c)
	result, err := h.manageUseCase.Update(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:      id,
		ActorUserID: a.UserID,
		Role:        req.Role,
		ChurchID:    req.ChurchID,
		Active:      req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated", result)
}
