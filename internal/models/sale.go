package models

import "time"

// Sale is a committed sale header. Total is the amount due after per-line
// discounts; Discount is the sum of all line discounts. InvoiceNumber is
// globally unique and assigned at commit time.
type Sale struct {
	ID             int64     `db:"id" json:"id"`
	SaleDate       string    `db:"sale_date" json:"saleDate"` // YYYY-MM-DD
	Total          float64   `db:"total" json:"total"`
	InvoiceNumber  string    `db:"invoice_number" json:"invoiceNumber"`
	Discount       float64   `db:"discount" json:"discount"`
	DiscountCode   *string   `db:"discount_code" json:"discountCode,omitempty"`
	ProductSummary string    `db:"product_summary" json:"productSummary"`
	CreatedAt      time.Time `db:"created_at" json:"-"`

	// Items is populated on detail reads, not by list queries.
	Items []SaleItem `db:"-" json:"items,omitempty"`
}

// SaleItem is one line of a committed sale. Quantity and UnitPrice are
// snapshots taken at commit time; ProductID becomes NULL if the catalog
// product is later deleted.
type SaleItem struct {
	SaleID      int64   `db:"sale_id" json:"-"`
	ProductID   *int64  `db:"product_id" json:"productId,omitempty"`
	ProductName string  `db:"product_name" json:"productName"`
	Quantity    int     `db:"quantity" json:"quantity"`
	UnitPrice   float64 `db:"unit_price" json:"unitPrice"`
	Discount    float64 `db:"discount" json:"discount"`
	LineTotal   float64 `db:"-" json:"lineTotal"`
}

// InvoiceDraft is an in-memory, not-yet-committed sale. The caller owns the
// draft and passes it to the sale recorder; nothing is persisted until the
// draft is recorded.
type InvoiceDraft struct {
	Items           []DraftItem `json:"items"`
	DiscountApplied bool        `json:"discountApplied"`
	DiscountCode    string      `json:"discountCode,omitempty"`
	// DiscountPerUnit is the per-unit discount amount, one of the configured
	// preset tiers. Ignored unless DiscountApplied is true.
	DiscountPerUnit float64 `json:"discountPerUnit,omitempty"`
}

// DraftItem is one product line of an invoice draft. Name and UnitPrice are
// snapshots of the catalog entry at the time the line was added.
type DraftItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// DailyReport aggregates all sales recorded on a single calendar date.
type DailyReport struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	SaleCount     int     `json:"saleCount"`
	GrossTotal    float64 `json:"grossTotal"`    // sum of totals before discounts
	DiscountTotal float64 `json:"discountTotal"` // sum of discounts
	NetTotal      float64 `json:"netTotal"`      // sum of amounts actually due
	Sales         []Sale  `json:"sales"`
}
