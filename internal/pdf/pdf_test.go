package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBusiness = Business{
	Name:    "Cuidado Capilar RD",
	Address: "Av. Principal #12, Santo Domingo",
	Phone:   "809-555-0100",
}

func TestInvoiceRendersPDF(t *testing.T) {
	doc, err := Invoice(InvoiceData{
		Business:      testBusiness,
		InvoiceNumber: "FACT-AAAAAAAAAA",
		Date:          "2025-03-14",
		DiscountCode:  "JP-TEST",
		DiscountTotal: 300,
		Total:         1200,
		Lines: []InvoiceLine{
			{Name: "Shampoo", Quantity: 3, UnitPrice: 500, Discount: 300, LineTotal: 1200},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestInvoiceHandlesLongProductNames(t *testing.T) {
	doc, err := Invoice(InvoiceData{
		Business:      testBusiness,
		InvoiceNumber: "FACT-AAAAAAAAAA",
		Date:          "2025-03-14",
		Total:         100,
		Lines: []InvoiceLine{
			{Name: "Tratamiento Capilar Profundo de Keratina con Aceite de Argan Premium", Quantity: 1, UnitPrice: 100, LineTotal: 100},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestDailyReportRendersPDF(t *testing.T) {
	doc, err := DailyReport(ReportData{
		Business:      testBusiness,
		Date:          "2025-03-14",
		GrossTotal:    2000,
		DiscountTotal: 300,
		NetTotal:      1700,
		Rows: []ReportRow{
			{InvoiceNumber: "FACT-AAAAAAAAAA", Date: "2025-03-14", Total: 1200, Discount: 300, Products: "Shampoo"},
			{InvoiceNumber: "FACT-BBBBBBBBBB", Date: "2025-03-14", Total: 500, Products: "Conditioner"},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestDailyReportEmptyDay(t *testing.T) {
	doc, err := DailyReport(ReportData{Business: testBusiness, Date: "2025-03-14"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
