package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/capilarrd/pos_api/internal/service"
	"github.com/capilarrd/pos_api/internal/utils"
)

// CustomerHandler handles customer CRUD HTTP endpoints.
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CustomerRequest is the payload for registering or updating a customer.
type CustomerRequest struct {
	Name       string `json:"name" binding:"required"`
	NationalID string `json:"nationalId" binding:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// ListCustomers handles GET /v1/customers. By default only active customers
// are returned; pass ?active=false to include deactivated ones.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "true") != "false"

	customers, err := h.customerService.ListCustomers(activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, 200, "Customers retrieved", customers)
}

// CreateCustomer handles POST /v1/customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(req.Name, req.NationalID, req.Phone, req.Address)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, 201, "Customer registered successfully", customer)
}

// UpdateCustomer handles PUT /v1/customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid customer ID")
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(id, req.Name, req.NationalID, req.Phone, req.Address)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, 200, "Customer updated successfully", customer)
}

// DeactivateCustomer handles DELETE /v1/customers/:id. Customers are soft
// deleted; the row is preserved for historical discount-code linkage.
func (h *CustomerHandler) DeactivateCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid customer ID")
		return
	}

	if err := h.customerService.DeactivateCustomer(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, 200, "Customer deactivated", nil)
}

// FindByDiscountCode handles GET /v1/customers/discount-code/:code. Used by
// the invoicing flow to validate a presented code.
func (h *CustomerHandler) FindByDiscountCode(c *gin.Context) {
	customer, err := h.customerService.FindByDiscountCode(c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, 200, "Discount code valid", customer)
}
