package handlers

import (
	"github.com/gin-gonic/gin"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

type ActivityHandler struct {
	listUseCase *activity.ListActivityUseCase
	logger      logger.Interface
}

func NewActivityHandler(listUC *activity.ListActivityUseCase, logger logger.Interface) *ActivityHandler {
	return &ActivityHandler{listUseCase: listUC, logger: logger}
}

func (h *ActivityHandler) List(c *gin.Context) {
	a := actorFrom(c)
	p := utils.ParsePagination(c)

	cmd := activity.ListActivityCommand{
		ActorUserID:   a.UserID,
		ActorRole:     a.Role,
		ActorChurchID: a.ChurchID,
		Action:        c.Query("action"),
		EntityType:    c.Query("entity_type"),
		Pagination:    p,
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entries, result.Total, p.Page, p.PageSize)
}
