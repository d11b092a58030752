package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ministryshare/internal/application/catalog/usecases"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

type TagHandler struct {
	listUseCase *usecases.ListTagsUseCase
	logger      logger.Interface
}

func NewTagHandler(listUC *usecases.ListTagsUseCase, logger logger.Interface) *TagHandler {
	return &TagHandler{listUseCase: listUC, logger: logger}
}

func (h *TagHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListTagsCommand{
		Category: c.Query("category"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
