package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acc-api/internal/service"
	"github.com/noah-isme/acc-api/pkg/response"
)

// ReportHandler serves per-course grade report downloads.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs handler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Export godoc
// @Summary Download a course grade report
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Course ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /courses/{id}/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	format := service.ReportFormat(c.DefaultQuery("format", string(service.FormatCSV)))
	report, err := h.reports.Render(c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	c.Data(http.StatusOK, report.ContentType, report.Data)
}
