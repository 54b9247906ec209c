package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// ReportRow is one sale in the daily report table.
type ReportRow struct {
	InvoiceNumber string
	Date          string
	Total         float64
	Discount      float64
	Products      string
}

// ReportData carries everything needed to render one daily report.
type ReportData struct {
	Business      Business
	Date          string
	Rows          []ReportRow
	GrossTotal    float64
	DiscountTotal float64
	NetTotal      float64
}

// DailyReport renders a printable daily sales report and returns the PDF
// bytes.
func DailyReport(data ReportData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "Letter", "")
	doc.AddPage()

	writeBusinessHeader(doc, data.Business)

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 7, fmt.Sprintf("Sales Report: %s", data.Date), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, fmt.Sprintf("Day Total: $%.2f", data.NetTotal), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf("Total Discounts: $%.2f", data.DiscountTotal), "", 1, "L", false, 0, "")
	doc.Ln(5)

	widths := []float64{42, 26, 26, 26, 66}
	headers := []string{"Invoice No", "Date", "Total", "Discount", "Products"}
	writeTableHeader(doc, widths, headers)

	doc.SetFont("Helvetica", "", 9)
	doc.SetFillColor(245, 245, 245)
	doc.SetTextColor(0, 0, 0)
	for _, row := range data.Rows {
		products := row.Products
		if len(products) > 50 {
			products = products[:47] + "..."
		}
		doc.CellFormat(widths[0], 7, row.InvoiceNumber, "1", 0, "C", true, 0, "")
		doc.CellFormat(widths[1], 7, row.Date, "1", 0, "C", true, 0, "")
		doc.CellFormat(widths[2], 7, fmt.Sprintf("$%.2f", row.Total), "1", 0, "R", true, 0, "")
		doc.CellFormat(widths[3], 7, fmt.Sprintf("$%.2f", row.Discount), "1", 0, "R", true, 0, "")
		doc.CellFormat(widths[4], 7, products, "1", 1, "L", true, 0, "")
	}

	doc.Ln(8)
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 7, "Summary", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(60, 7, "Gross Sales", "1", 0, "L", false, 0, "")
	doc.CellFormat(40, 7, fmt.Sprintf("$%.2f", data.GrossTotal), "1", 1, "R", false, 0, "")
	doc.CellFormat(60, 7, "Total Discounts", "1", 0, "L", false, 0, "")
	doc.CellFormat(40, 7, fmt.Sprintf("-$%.2f", data.DiscountTotal), "1", 1, "R", false, 0, "")
	doc.CellFormat(60, 7, "Net Total", "1", 0, "L", false, 0, "")
	doc.CellFormat(40, 7, fmt.Sprintf("$%.2f", data.NetTotal), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}
