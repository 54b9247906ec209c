package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capilarrd/pos_api/internal/pdf"
	"github.com/capilarrd/pos_api/internal/service"
	"github.com/capilarrd/pos_api/internal/utils"
)

// ReportHandler handles daily sales report endpoints.
type ReportHandler struct {
	reportService *service.ReportService
	business      pdf.Business
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(reportService *service.ReportService, business pdf.Business) *ReportHandler {
	return &ReportHandler{reportService: reportService, business: business}
}

// GetDailyReport handles GET /v1/reports/daily?date=YYYY-MM-DD
func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.Error(c, 400, "INVALID_REQUEST", "date query parameter is required")
		return
	}

	report, err := h.reportService.Daily(date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, 200, "Report generated", report)
}

// GetDailyReportPDF handles GET /v1/reports/daily/pdf?date=YYYY-MM-DD and
// streams the printable report document.
func (h *ReportHandler) GetDailyReportPDF(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.Error(c, 400, "INVALID_REQUEST", "date query parameter is required")
		return
	}

	report, err := h.reportService.Daily(date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	data := pdf.ReportData{
		Business:      h.business,
		Date:          report.Date,
		GrossTotal:    report.GrossTotal,
		DiscountTotal: report.DiscountTotal,
		NetTotal:      report.NetTotal,
	}
	for _, sale := range report.Sales {
		data.Rows = append(data.Rows, pdf.ReportRow{
			InvoiceNumber: sale.InvoiceNumber,
			Date:          sale.SaleDate,
			Total:         sale.Total,
			Discount:      sale.Discount,
			Products:      sale.ProductSummary,
		})
	}

	doc, err := pdf.DailyReport(data)
	if err != nil {
		utils.Error(c, 500, "PDF_GENERATION_FAILED", "Failed to render report document")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("report_%s.pdf", report.Date)))
	c.Data(http.StatusOK, "application/pdf", doc)
}
