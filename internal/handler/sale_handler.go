package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capilarrd/pos_api/internal/models"
	"github.com/capilarrd/pos_api/internal/pdf"
	"github.com/capilarrd/pos_api/internal/service"
	"github.com/capilarrd/pos_api/internal/utils"
)

// SaleHandler handles sale recording and invoice retrieval endpoints.
type SaleHandler struct {
	saleService *service.SaleService
	business    pdf.Business
}

// NewSaleHandler constructs a SaleHandler. business is printed on rendered
// invoices.
func NewSaleHandler(saleService *service.SaleService, business pdf.Business) *SaleHandler {
	return &SaleHandler{saleService: saleService, business: business}
}

// SaleItemRequest is one line of a draft submitted for recording.
type SaleItemRequest struct {
	ProductID int64   `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"unitPrice" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
}

// RecordSaleRequest is the payload for POST /v1/sales. A non-empty
// discountCode applies the per-unit discount at the given tier.
type RecordSaleRequest struct {
	Items           []SaleItemRequest `json:"items" binding:"required"`
	DiscountCode    string            `json:"discountCode"`
	DiscountPerUnit float64           `json:"discountPerUnit"`
}

// RecordSale handles POST /v1/sales. The caller submits the full invoice
// draft; on success the committed sale with its invoice number is returned.
func (h *SaleHandler) RecordSale(c *gin.Context) {
	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	draft := &models.InvoiceDraft{
		DiscountApplied: req.DiscountCode != "",
		DiscountCode:    req.DiscountCode,
		DiscountPerUnit: req.DiscountPerUnit,
	}
	for _, item := range req.Items {
		draft.Items = append(draft.Items, models.DraftItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	sale, err := h.saleService.RecordSale(draft)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, 201, "Sale recorded successfully", sale)
}

// ListSales handles GET /v1/sales?date=YYYY-MM-DD
func (h *SaleHandler) ListSales(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.Error(c, 400, "INVALID_REQUEST", "date query parameter is required")
		return
	}

	sales, err := h.saleService.ListSalesByDate(date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, 200, "Sales retrieved", sales)
}

// GetSale handles GET /v1/sales/:invoiceNumber
func (h *SaleHandler) GetSale(c *gin.Context) {
	sale, err := h.saleService.GetSale(c.Param("invoiceNumber"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, 200, "Sale retrieved", sale)
}

// GetSalePDF handles GET /v1/sales/:invoiceNumber/pdf and streams the
// printable invoice document.
func (h *SaleHandler) GetSalePDF(c *gin.Context) {
	sale, err := h.saleService.GetSale(c.Param("invoiceNumber"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	data := pdf.InvoiceData{
		Business:      h.business,
		InvoiceNumber: sale.InvoiceNumber,
		Date:          sale.SaleDate,
		DiscountTotal: sale.Discount,
		Total:         sale.Total,
	}
	if sale.DiscountCode != nil {
		data.DiscountCode = *sale.DiscountCode
	}
	for _, item := range sale.Items {
		data.Lines = append(data.Lines, pdf.InvoiceLine{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Discount:  item.Discount,
			LineTotal: item.LineTotal,
		})
	}

	doc, err := pdf.Invoice(data)
	if err != nil {
		utils.Error(c, 500, "PDF_GENERATION_FAILED", "Failed to render invoice document")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("invoice_%s.pdf", sale.InvoiceNumber)))
	c.Data(http.StatusOK, "application/pdf", doc)
}
