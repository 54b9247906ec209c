package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capilarrd/pos_api/internal/utils"
)

// respondServiceError maps service-layer errors onto the response envelope.
// Unclassified errors are reported with a generic diagnostic so storage
// internals never reach the caller verbatim.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrInvalidInput):
		utils.Error(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, utils.ErrDuplicateName):
		utils.Error(c, http.StatusConflict, "DUPLICATE_NAME", err.Error())
	case errors.Is(err, utils.ErrDuplicateKey),
		errors.Is(err, utils.ErrDuplicateDiscountCode),
		errors.Is(err, utils.ErrDuplicateInvoiceNumber),
		errors.Is(err, utils.ErrCodeGenerationExhausted):
		utils.Error(c, http.StatusConflict, "DUPLICATE_KEY", err.Error())
	case errors.Is(err, utils.ErrProductNotFound),
		errors.Is(err, utils.ErrCustomerNotFound),
		errors.Is(err, utils.ErrSaleNotFound):
		utils.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, utils.ErrIntegrity):
		utils.Error(c, http.StatusConflict, "INTEGRITY_ERROR", err.Error())
	default:
		utils.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "unexpected storage failure")
	}
}
