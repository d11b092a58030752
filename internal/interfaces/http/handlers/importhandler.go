package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ministryshare/internal/application/importer"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

// 10 MB is generous for a spreadsheet of catalog rows.
const maxImportFileSize = 10 << 20

type ImportHandler struct {
	importUseCase *importer.ImportResourcesUseCase
	logger        logger.Interface
}

func NewImportHandler(importUC *importer.ImportResourcesUseCase, logger logger.Interface) *ImportHandler {
	return &ImportHandler{importUseCase: importUC, logger: logger}
}

// Import ingests an uploaded CSV or XLSX catalog file.
func (h *ImportHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "a file upload is required")
		return
	}
	if fileHeader.Size > maxImportFileSize {
		utils.ErrorResponse(c, http.StatusBadRequest, "file exceeds the 10 MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	a := actorFrom(c)
	result, err := h.importUseCase.Execute(c.Request.Context(), importer.ImportCommand{
		ActorUserID:   a.UserID,
		ActorRole:     a.Role,
		ActorChurchID: a.ChurchID,
		ChurchID:      utils.QueryUint(c, "church_id"),
		Filename:      fileHeader.Filename,
		File:          file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "import completed", result)
}

// Template serves a downloadable import template. Format defaults to CSV.
func (h *ImportHandler) Template(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	switch format {
	case "csv":
		data, err := importer.CSVTemplate()
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="resource_import_template.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	case "xlsx":
		data, err := importer.XLSXTemplate()
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="resource_import_template.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		utils.ErrorResponse(c, http.StatusBadRequest, "unsupported template format")
	}
}
