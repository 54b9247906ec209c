package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/capilarrd/pos_api/internal/models"
	"github.com/capilarrd/pos_api/internal/utils"
)

// SaleRepository handles data access for sales and their line items.
type SaleRepository struct {
	db *sqlx.DB
}

// NewSaleRepository creates a new SaleRepository.
func NewSaleRepository(db *sqlx.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// Create persists a sale header and its line items as a single transaction.
// Either everything commits or nothing does; a mid-sequence failure leaves
// no partial rows. An invoice-number collision is reported as
// utils.ErrDuplicateInvoiceNumber so the caller can retry with a new number.
func (r *SaleRepository) Create(sale *models.Sale, items []models.SaleItem) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin sale transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after a successful commit
	}()

	const headerQ = `INSERT INTO sales (sale_date, total, invoice_number, discount, discount_code, product_summary)
                    VALUES (?, ?, ?, ?, ?, ?)`

	res, err := tx.Exec(headerQ, sale.SaleDate, sale.Total, sale.InvoiceNumber, sale.Discount, sale.DiscountCode, sale.ProductSummary)
	if err != nil {
		if isUniqueViolation(err, "sales.invoice_number") {
			return utils.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("insert sale header: %w", err)
	}
	saleID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	const itemQ = `INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, discount)
                  VALUES (?, ?, ?, ?, ?)`

	for _, item := range items {
		if _, err := tx.Exec(itemQ, saleID, item.ProductID, item.Quantity, item.UnitPrice, item.Discount); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: line item references unknown product", utils.ErrIntegrity)
			}
			return fmt.Errorf("insert sale line item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sale: %w", err)
	}
	sale.ID = saleID
	return nil
}

// GetByInvoiceNumber returns a sale header with its line items. Product
// names are resolved from the live catalog; lines whose product was deleted
// keep their snapshots and are labeled "(deleted product)".
func (r *SaleRepository) GetByInvoiceNumber(invoiceNumber string) (*models.Sale, error) {
	const headerQ = `SELECT id, sale_date, total, invoice_number, discount, discount_code, product_summary, created_at
                    FROM sales WHERE invoice_number = ? LIMIT 1`

	var sale models.Sale
	if err := r.db.Get(&sale, headerQ, invoiceNumber); err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrSaleNotFound
		}
		return nil, err
	}

	const itemsQ = `SELECT si.sale_id, si.product_id, COALESCE(p.name, '(deleted product)') AS product_name,
                          si.quantity, si.unit_price, si.discount
                   FROM sale_items si
                   LEFT JOIN products p ON p.id = si.product_id
                   WHERE si.sale_id = ?
                   ORDER BY si.rowid`

	items := []models.SaleItem{}
	if err := r.db.Select(&items, itemsQ, sale.ID); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].LineTotal = items[i].UnitPrice*float64(items[i].Quantity) - items[i].Discount
	}
	sale.Items = items
	return &sale, nil
}

// GetByDate returns all sale headers recorded on the given calendar date,
// in insertion order.
func (r *SaleRepository) GetByDate(date string) ([]models.Sale, error) {
	const q = `SELECT id, sale_date, total, invoice_number, discount, discount_code, product_summary, created_at
              FROM sales WHERE sale_date = ? ORDER BY id`

	sales := []models.Sale{}
	if err := r.db.Select(&sales, q, date); err != nil {
		return nil, err
	}
	return sales, nil
}

// Delete removes a sale by id; line items go with it via the cascade rule.
func (r *SaleRepository) Delete(id int64) error {
	const q = `DELETE FROM sales WHERE id = ?`

	res, err := r.db.Exec(q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return utils.ErrSaleNotFound
	}
	return nil
}
