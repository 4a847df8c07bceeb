package report

import (
	"fmt"
	"net/http"

	"registro-clientes/internal/export"
	xerrors "registro-clientes/internal/pkg/errors"
	"registro-clientes/internal/pkg/response"
	service "registro-clientes/internal/service/report"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// List enumerates the report catalog in its fixed order.
func (h *ReportHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "reports listed", h.reportService.List())
}

// Run executes a report. The optional q parameter applies the quick
// text filter over the rows.
func (h *ReportHandler) Run(c *gin.Context) {
	result, err := h.reportService.Run(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	if term := c.Query("q"); term != "" {
		result = service.Filter(result, term)
	}
	response.Success(c, http.StatusOK, "report generated", result)
}

// Export runs a report and streams it as csv, xlsx or pdf.
func (h *ReportHandler) Export(c *gin.Context) {
	name := c.Param("name")
	entry, ok := service.Lookup(name)
	if !ok {
		response.NotFound(c, "no existe el reporte")
		return
	}

	result, err := h.reportService.Run(c.Request.Context(), name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if term := c.Query("q"); term != "" {
		result = service.Filter(result, term)
	}

	format := c.DefaultQuery("format", "csv")
	var (
		data        []byte
		contentType string
	)
	switch format {
	case "csv":
		data, err = export.CSV(result)
		contentType = "text/csv; charset=utf-8"
	case "xlsx":
		data, err = export.Excel(result)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		data, err = export.PDF(entry.Name, result)
		contentType = "application/pdf"
	default:
		response.Error(c, http.StatusBadRequest, "unsupported format", fmt.Errorf("format %q not in csv, xlsx, pdf", format))
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to export report", err)
		return
	}

	filename := fmt.Sprintf("%s.%s", entry.Slug, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// Chart runs a report and renders its PNG chart.
func (h *ReportHandler) Chart(c *gin.Context) {
	name := c.Param("name")
	entry, ok := service.Lookup(name)
	if !ok {
		response.NotFound(c, "no existe el reporte")
		return
	}

	result, err := h.reportService.Run(c.Request.Context(), name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	png, err := export.Chart(entry.Name, entry.Chart, result)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "failed to render chart", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *ReportHandler) writeError(c *gin.Context, err error) {
	if xerrors.Is(err, xerrors.ErrNotFound) {
		response.NotFound(c, "no existe el reporte")
		return
	}
	response.Error(c, http.StatusInternalServerError, "no se pudo ejecutar la consulta", err)
}
