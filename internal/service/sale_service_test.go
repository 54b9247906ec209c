package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capilarrd/pos_api/internal/models"
	"github.com/capilarrd/pos_api/internal/utils"
)

func newTestSaleService(sales *memSaleStore, customers *memCustomerStore) *SaleService {
	svc := NewSaleService(sales, customers, []float64{50, 100})
	svc.now = func() time.Time {
		return time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	}
	return svc
}

func seedCustomerWithCode(store *memCustomerStore, code string) {
	store.seq++
	store.customers = append(store.customers, models.Customer{
		ID:           store.seq,
		Name:         "Juan Perez",
		NationalID:   "001-1234567-8",
		DiscountCode: code,
		Active:       true,
	})
}

func TestRecordSaleWithoutDiscount(t *testing.T) {
	sales := newMemSaleStore()
	svc := newTestSaleService(sales, &memCustomerStore{})

	sale, err := svc.RecordSale(&models.InvoiceDraft{
		Items: []models.DraftItem{
			{ProductID: 1, Name: "Shampoo", UnitPrice: 500, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, sale.Total)
	assert.Equal(t, 0.0, sale.Discount)
	assert.Nil(t, sale.DiscountCode)
	assert.Equal(t, "2025-03-14", sale.SaleDate)
	assert.Equal(t, "Shampoo", sale.ProductSummary)
	assert.True(t, strings.HasPrefix(sale.InvoiceNumber, "FACT-"))
}

func TestRecordSalePerUnitDiscount(t *testing.T) {
	sales := newMemSaleStore()
	customers := &memCustomerStore{}
	seedCustomerWithCode(customers, "JP-TEST")
	svc := newTestSaleService(sales, customers)

	sale, err := svc.RecordSale(&models.InvoiceDraft{
		Items: []models.DraftItem{
			{ProductID: 1, Name: "Shampoo", UnitPrice: 500, Quantity: 3},
		},
		DiscountApplied: true,
		DiscountCode:    "JP-TEST",
		DiscountPerUnit: 100,
	})
	require.NoError(t, err)

	// Effective unit price 400, quantity 3.
	assert.Equal(t, 1200.0, sale.Total)
	assert.Equal(t, 300.0, sale.Discount)
	require.NotNil(t, sale.DiscountCode)
	assert.Equal(t, "JP-TEST", *sale.DiscountCode)
}

func TestRecordSaleDiscountCappedAtUnitPrice(t *testing.T) {
	sales := newMemSaleStore()
	customers := &memCustomerStore{}
	seedCustomerWithCode(customers, "JP-TEST")
	svc := newTestSaleService(sales, customers)

	// The cheap line is discounted to zero but never negative; the draft
	// still records because the other line keeps the total positive.
	sale, err := svc.RecordSale(&models.InvoiceDraft{
		Items: []models.DraftItem{
			{ProductID: 1, Name: "Hair Clip", UnitPrice: 80, Quantity: 2},
			{ProductID: 2, Name: "Shampoo", UnitPrice: 500, Quantity: 1},
		},
		DiscountApplied: true,
		DiscountCode:    "JP-TEST",
		DiscountPerUnit: 100,
	})
	require.NoError(t, err)

	require.Len(t, sale.Items, 2)
	assert.Equal(t, 160.0, sale.Items[0].Discount) // capped at 80 per unit
	assert.Equal(t, 0.0, sale.Items[0].LineTotal)
	assert.Equal(t, 100.0, sale.Items[1].Discount)
	assert.Equal(t, 400.0, sale.Items[1].LineTotal)
	assert.Equal(t, 400.0, sale.Total)
	assert.Equal(t, 260.0, sale.Discount)
}

func TestRecordSaleRejectsZeroTotal(t *testing.T) {
	sales := newMemSaleStore()
	customers := &memCustomerStore{}
	seedCustomerWithCode(customers, "JP-TEST")
	svc := newTestSaleService(sales, customers)

	_, err := svc.RecordSale(&models.InvoiceDraft{
		Items: []models.DraftItem{
			{ProductID: 1, Name: "Hair Clip", UnitPrice: 80, Quantity: 2},
		},
		DiscountApplied: true,
		DiscountCode:    "JP-TEST",
		DiscountPerUnit: 100,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Empty(t, sales.sales, "no partial rows on rejection")
}

func TestRecordSaleValidation(t *testing.T) {
	customers := &memCustomerStore{}
	seedCustomerWithCode(customers, "JP-TEST")

	tests := []struct {
		name  string
		draft *models.InvoiceDraft
	}{
		{"nil draft", nil},
		{"no items", &models.InvoiceDraft{}},
		{"zero quantity", &models.InvoiceDraft{
			Items: []models.DraftItem{{ProductID: 1, Name: "Shampoo", UnitPrice: 500, Quantity: 0}},
		}},
		{"negative unit price", &models.InvoiceDraft{
			Items: []models.DraftItem{{ProductID: 1, Name: "Shampoo", UnitPrice: -1, Quantity: 1}},
		}},
		{"unknown tier", &models.InvoiceDraft{
			Items:           []models.DraftItem{{ProductID: 1, Name: "Shampoo", UnitPrice: 500, Quantity: 1}},
			DiscountApplied: true,
			DiscountCode:    "JP-TEST",
			DiscountPerUnit: 75,
		}},
		{"unknown discount code", &models.InvoiceDraft{
			Items:           []models.DraftItem{{ProductID: 1, Name: "Shampoo", UnitPrice: 500, Quantity: 1}},
			DiscountApplied: true,
			DiscountCode:    "XX-0000",
			DiscountPerUnit: 50,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestSaleService(newMemSaleStore(), customers)
			_, err := svc.RecordSale(tt.draft)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestRecordSaleInvoiceNumbersUnique(t *testing.T) {
	sales := newMemSaleStore()
	svc := newTestSaleService(sales, &memCustomerStore{})

	draft := func() *models.InvoiceDraft {
		return &models.InvoiceDraft{
			Items: []models.DraftItem{{ProductID: 1, Name: "Shampoo", UnitPrice: 500, Quantity: 1}},
		}
	}

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		sale, err := svc.RecordSale(draft())
		require.NoError(t, err)
		assert.False(t, seen[sale.InvoiceNumber], "invoice number %s issued twice", sale.InvoiceNumber)
		seen[sale.InvoiceNumber] = true
	}
}

func TestRecordSaleRetriesInvoiceNumberCollision(t *testing.T) {
	sales := newMemSaleStore()
	sales.collideNumbers = 2
	svc := newTestSaleService(sales, &memCustomerStore{})

	sale, err := svc.RecordSale(&models.InvoiceDraft{
		Items: []models.DraftItem{{ProductID: 1, Name: "Shampoo", UnitPrice: 500, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, sales.creates)
	assert.NotEmpty(t, sale.InvoiceNumber)
}

func TestRecordSaleInvoiceNumberExhaustion(t *testing.T) {
	sales := newMemSaleStore()
	sales.collideNumbers = invoiceNumberAttempts
	svc := newTestSaleService(sales, &memCustomerStore{})

	_, err := svc.RecordSale(&models.InvoiceDraft{
		Items: []models.DraftItem{{ProductID: 1, Name: "Shampoo", UnitPrice: 500, Quantity: 1}},
	})
	assert.ErrorIs(t, err, utils.ErrCodeGenerationExhausted)
}

func TestSummarizeProductsTruncation(t *testing.T) {
	short := summarizeProducts([]string{"Shampoo", "Conditioner"})
	assert.Equal(t, "Shampoo, Conditioner", short)

	long := summarizeProducts([]string{strings.Repeat("A", 300)})
	assert.Len(t, long, productSummaryLimit)
	assert.True(t, strings.HasSuffix(long, "..."))
}

func TestListSalesByDateValidation(t *testing.T) {
	svc := newTestSaleService(newMemSaleStore(), &memCustomerStore{})

	_, err := svc.ListSalesByDate("14-03-2025")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	sales, err := svc.ListSalesByDate("2025-03-14")
	require.NoError(t, err)
	assert.Empty(t, sales)
}
