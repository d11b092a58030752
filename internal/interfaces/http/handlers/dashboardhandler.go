package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ministryshare/internal/application/admin/usecases"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

type DashboardHandler struct {
	statsUseCase *usecases.GetDashboardStatsUseCase
	logger       logger.Interface
}

func NewDashboardHandler(statsUC *usecases.GetDashboardStatsUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{statsUseCase: statsUC, logger: logger}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	result, err := h.statsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
