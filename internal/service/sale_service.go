package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/capilarrd/pos_api/internal/models"
	"github.com/capilarrd/pos_api/internal/utils"
)

// invoiceNumberAttempts bounds invoice-number generation retries on a
// unique-constraint collision at the store.
const invoiceNumberAttempts = 5

// productSummaryLimit caps the product-name summary column on the sale
// header; longer summaries are truncated with an ellipsis.
const productSummaryLimit = 255

// SaleStore is the sale persistence contract consumed by SaleService and
// ReportService. Implemented by repository.SaleRepository.
type SaleStore interface {
	Create(sale *models.Sale, items []models.SaleItem) error
	GetByInvoiceNumber(invoiceNumber string) (*models.Sale, error)
	GetByDate(date string) ([]models.Sale, error)
}

// SaleService records invoice drafts as committed sales. The discount policy
// is per-unit: a preset per-unit amount is subtracted from each line's unit
// price, capped at that unit price, then multiplied across quantity.
type SaleService struct {
	sales     SaleStore
	customers CustomerStore
	tiers     []float64
	now       func() time.Time
}

// NewSaleService constructs a SaleService. tiers are the selectable per-unit
// discount amounts.
func NewSaleService(sales SaleStore, customers CustomerStore, tiers []float64) *SaleService {
	return &SaleService{
		sales:     sales,
		customers: customers,
		tiers:     tiers,
		now:       time.Now,
	}
}

// RecordSale validates a draft, computes its totals, and commits it with a
// freshly generated invoice number. The header and line items are persisted
// atomically; invoice-number collisions are retried up to
// invoiceNumberAttempts times.
//
// The total after discounts must be strictly positive; a draft discounted to
// zero is rejected.
func (s *SaleService) RecordSale(draft *models.InvoiceDraft) (*models.Sale, error) {
	if draft == nil || len(draft.Items) == 0 {
		return nil, fmt.Errorf("%w: draft has no line items", utils.ErrInvalidInput)
	}

	perUnit := 0.0
	var discountCode *string
	if draft.DiscountApplied {
		if !s.validTier(draft.DiscountPerUnit) {
			return nil, fmt.Errorf("%w: %v is not a valid discount tier", utils.ErrInvalidInput, draft.DiscountPerUnit)
		}
		customer, err := s.customers.GetByDiscountCode(strings.TrimSpace(draft.DiscountCode))
		if err != nil {
			if errors.Is(err, utils.ErrCustomerNotFound) {
				return nil, fmt.Errorf("%w: unknown discount code", utils.ErrInvalidInput)
			}
			return nil, err
		}
		perUnit = draft.DiscountPerUnit
		code := customer.DiscountCode
		discountCode = &code
	}

	items := make([]models.SaleItem, 0, len(draft.Items))
	names := make([]string, 0, len(draft.Items))
	total := 0.0
	totalDiscount := 0.0
	for i, line := range draft.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: line %d quantity must be greater than zero", utils.ErrInvalidInput, i+1)
		}
		if line.UnitPrice <= 0 {
			return nil, fmt.Errorf("%w: line %d unit price must be greater than zero", utils.ErrInvalidInput, i+1)
		}

		// Cap the per-unit discount at the unit price: a line can be
		// discounted to zero but never below.
		lineDiscountPerUnit := perUnit
		if lineDiscountPerUnit > line.UnitPrice {
			lineDiscountPerUnit = line.UnitPrice
		}
		lineDiscount := lineDiscountPerUnit * float64(line.Quantity)
		lineTotal := line.UnitPrice*float64(line.Quantity) - lineDiscount
		if lineTotal < 0 {
			lineTotal = 0
		}

		productID := line.ProductID
		items = append(items, models.SaleItem{
			ProductID:   &productID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Discount:    lineDiscount,
			LineTotal:   lineTotal,
		})
		names = append(names, line.Name)
		total += lineTotal
		totalDiscount += lineDiscount
	}

	if total <= 0 {
		return nil, fmt.Errorf("%w: total must be greater than zero, adjust the discounts", utils.ErrInvalidInput)
	}

	sale := &models.Sale{
		SaleDate:       s.now().Format("2006-01-02"),
		Total:          total,
		Discount:       totalDiscount,
		DiscountCode:   discountCode,
		ProductSummary: summarizeProducts(names),
	}

	for attempt := 1; attempt <= invoiceNumberAttempts; attempt++ {
		number, err := utils.GenerateInvoiceNumber()
		if err != nil {
			return nil, err
		}
		sale.InvoiceNumber = number

		err = s.sales.Create(sale, items)
		if err == nil {
			sale.Items = items
			return sale, nil
		}
		if errors.Is(err, utils.ErrDuplicateInvoiceNumber) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: invoice number space exhausted after %d attempts", utils.ErrCodeGenerationExhausted, invoiceNumberAttempts)
}

// GetSale returns a committed sale with its line items.
func (s *SaleService) GetSale(invoiceNumber string) (*models.Sale, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return nil, fmt.Errorf("%w: invoice number is required", utils.ErrInvalidInput)
	}
	return s.sales.GetByInvoiceNumber(invoiceNumber)
}

// ListSalesByDate returns all sales recorded on the given date (YYYY-MM-DD).
func (s *SaleService) ListSalesByDate(date string) ([]models.Sale, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	return s.sales.GetByDate(date)
}

func (s *SaleService) validTier(amount float64) bool {
	for _, t := range s.tiers {
		if t == amount {
			return true
		}
	}
	return false
}

// summarizeProducts joins line-item names for the sale header column,
// truncating to productSummaryLimit bytes.
func summarizeProducts(names []string) string {
	summary := strings.Join(names, ", ")
	if len(summary) > productSummaryLimit {
		summary = summary[:productSummaryLimit-3] + "..."
	}
	return summary
}
