package utils

import "errors"

// Common application errors used across services. Handlers translate these
// into HTTP status codes; anything not in this list is treated as an
// unexpected storage failure and reported with a generic message.
var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrDuplicateName           = errors.New("name already exists")
	ErrDuplicateKey            = errors.New("duplicate key")
	ErrDuplicateDiscountCode   = errors.New("discount code already exists")
	ErrDuplicateInvoiceNumber  = errors.New("invoice number already exists")
	ErrProductNotFound         = errors.New("product not found")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrSaleNotFound            = errors.New("sale not found")
	ErrIntegrity               = errors.New("integrity constraint violation")
	ErrCodeGenerationExhausted = errors.New("could not generate a unique code")
)
