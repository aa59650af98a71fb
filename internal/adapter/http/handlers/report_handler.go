package handlers

import (
	"fmt"
	"net/http"
	"time"

	response "barbearia/internal/adapter/http/dto/response"
	"barbearia/internal/usecase"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	usecase usecase.IReportUseCase
	now     func() time.Time
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc, now: time.Now}
}

func (h *ReportHandler) Summary(c *gin.Context) {
	report, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSalesReport(report))
}

// ExportSales streams every sale as an .xlsx workbook.
func (h *ReportHandler) ExportSales(c *gin.Context) {
	data, err := h.usecase.ExportXLSX(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	name := fmt.Sprintf("vendas-%s.xlsx", h.now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}
