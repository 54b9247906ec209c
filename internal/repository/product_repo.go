package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/capilarrd/pos_api/internal/models"
	"github.com/capilarrd/pos_api/internal/utils"
)

// ProductRepository handles data access for catalog products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetAll returns every product in insertion order.
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	const q = `SELECT id, name, price, created_at, updated_at FROM products ORDER BY id`

	products := []models.Product{}
	if err := r.db.Select(&products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id int64) (*models.Product, error) {
	const q = `SELECT id, name, price, created_at, updated_at FROM products WHERE id = ? LIMIT 1`

	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new product. A name collision is reported as
// utils.ErrDuplicateName.
func (r *ProductRepository) Create(product *models.Product) error {
	const q = `INSERT INTO products (name, price) VALUES (?, ?)`

	res, err := r.db.Exec(q, product.Name, product.Price)
	if err != nil {
		if isUniqueViolation(err, "products.name") {
			return fmt.Errorf("%w: %s", utils.ErrDuplicateName, product.Name)
		}
		return err
	}
	product.ID, err = res.LastInsertId()
	return err
}

// Update modifies an existing product's name and price.
func (r *ProductRepository) Update(product *models.Product) error {
	const q = `UPDATE products SET name = ?, price = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	res, err := r.db.Exec(q, product.Name, product.Price, product.ID)
	if err != nil {
		if isUniqueViolation(err, "products.name") {
			return fmt.Errorf("%w: %s", utils.ErrDuplicateName, product.Name)
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}

// Delete removes a product by id. Historical sale line items referencing the
// product keep their quantity/price snapshots; the FK rule nulls their
// product reference.
func (r *ProductRepository) Delete(id int64) error {
	const q = `DELETE FROM products WHERE id = ?`

	res, err := r.db.Exec(q, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return utils.ErrIntegrity
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}
