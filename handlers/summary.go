package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbanku/tbanku-api/services"
	"github.com/tbanku/tbanku-api/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SummaryHandler struct {
	Summary *services.SummaryService
	Export  *services.ExportService
}

// GetSummary returns the dashboard totals
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	summary, err := h.Summary.Summary(c.Request.Context())
	if err != nil {
		utils.SafeError("❌ GET /api/summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportXLSX sends every collection as an Excel workbook
func (h *SummaryHandler) ExportXLSX(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.Export.WriteWorkbook(c.Request.Context(), &buf); err != nil {
		utils.SafeError("❌ export xlsx: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	fileName := "tbanku-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
