package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ministryshare/internal/application/setting/usecases"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

type SettingHandler struct {
	settingsUseCase *usecases.SiteSettingsUseCase
	logger          logger.Interface
}

func NewSettingHandler(settingsUC *usecases.SiteSettingsUseCase, logger logger.Interface) *SettingHandler {
	return &SettingHandler{settingsUseCase: settingsUC, logger: logger}
}

type UpdateSettingsRequest struct {
	EmailNotifications *bool `json:"email_notifications" binding:"required"`
}

func (h *SettingHandler) Get(c *gin.Context) {
	result, err := h.settingsUseCase.Get(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SettingHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	a := actorFrom(c)
	result, err := h.settingsUseCase.Update(c.Request.Context(), usecases.UpdateSettingsCommand{
		ActorUserID:        a.UserID,
		EmailNotifications: *req.EmailNotifications,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "settings updated", result)
}
