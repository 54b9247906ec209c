// Package pdf renders printable sale invoices and daily sales reports.
// Layout is intentionally simple: a business identity header, a line-item
// or per-sale table, and a totals block. All monetary values arrive fully
// computed; this package does no arithmetic beyond formatting.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// Business identifies the issuing business on every document.
type Business struct {
	Name    string
	Address string
	Phone   string
}

// InvoiceLine is one row of the invoice table.
type InvoiceLine struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Discount  float64
	LineTotal float64
}

// InvoiceData carries everything needed to render one invoice.
type InvoiceData struct {
	Business      Business
	InvoiceNumber string
	Date          string
	DiscountCode  string // empty when no discount was applied
	DiscountTotal float64
	Lines         []InvoiceLine
	Total         float64
}

// Invoice renders a printable invoice document and returns the PDF bytes.
func Invoice(data InvoiceData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "Letter", "")
	doc.AddPage()

	writeBusinessHeader(doc, data.Business)

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 7, fmt.Sprintf("Invoice No: %s", data.InvoiceNumber), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, fmt.Sprintf("Date: %s", data.Date), "", 1, "L", false, 0, "")

	if data.DiscountCode != "" {
		doc.CellFormat(0, 6, fmt.Sprintf("Discount code: %s", data.DiscountCode), "", 1, "L", false, 0, "")
		doc.CellFormat(0, 6, fmt.Sprintf("Total discount applied: $%.2f", data.DiscountTotal), "", 1, "L", false, 0, "")
	}
	doc.Ln(6)

	widths := []float64{80, 20, 28, 28, 30}
	headers := []string{"Product", "Qty", "Unit Price", "Discount", "Total"}
	writeTableHeader(doc, widths, headers)

	doc.SetFont("Helvetica", "", 9)
	doc.SetFillColor(245, 245, 245)
	doc.SetTextColor(0, 0, 0)
	for _, line := range data.Lines {
		name := line.Name
		if len(name) > 35 {
			name = name[:35]
		}
		doc.CellFormat(widths[0], 7, name, "1", 0, "L", true, 0, "")
		doc.CellFormat(widths[1], 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", true, 0, "")
		doc.CellFormat(widths[2], 7, fmt.Sprintf("$%.2f", line.UnitPrice), "1", 0, "R", true, 0, "")
		doc.CellFormat(widths[3], 7, fmt.Sprintf("-$%.2f", line.Discount), "1", 0, "R", true, 0, "")
		doc.CellFormat(widths[4], 7, fmt.Sprintf("$%.2f", line.LineTotal), "1", 1, "R", true, 0, "")
	}

	doc.Ln(8)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, fmt.Sprintf("Total Due: $%.2f", data.Total), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, "Thank you for your business!", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// writeBusinessHeader prints the centered business identity block shared by
// all documents.
func writeBusinessHeader(doc *gofpdf.Fpdf, b Business) {
	doc.SetTextColor(42, 42, 42)
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, b.Name, "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 5, b.Address, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 5, fmt.Sprintf("Tel: %s", b.Phone), "", 1, "C", false, 0, "")
	doc.Ln(6)
}

// writeTableHeader prints a dark table header row.
func writeTableHeader(doc *gofpdf.Fpdf, widths []float64, headers []string) {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(42, 42, 42)
	doc.SetTextColor(245, 245, 245)
	for i, h := range headers {
		last := 0
		if i == len(headers)-1 {
			last = 1
		}
		doc.CellFormat(widths[i], 8, h, "1", last, "C", true, 0, "")
	}
}
