package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamasanicharan/BoldScholars/internal/services"
	"github.com/kamasanicharan/BoldScholars/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams XLSX workbooks to admins.
type ExportHandler struct {
	BaseHandler
	exportService services.ExportService
}

func NewExportHandler(exportService services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler:   NewBaseHandler(logger),
		exportService: exportService,
	}
}

func (h *ExportHandler) ExportUsers(c *gin.Context) {
	buf, err := h.exportService.ExportUsers(c.Request.Context())
	if err != nil {
		h.RespondError(c, err, "Failed to export members")
		return
	}

	filename := fmt.Sprintf("members-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) ExportFeedback(c *gin.Context) {
	buf, err := h.exportService.ExportFeedback(c.Request.Context())
	if err != nil {
		h.RespondError(c, err, "Failed to export feedback")
		return
	}

	filename := fmt.Sprintf("feedback-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
