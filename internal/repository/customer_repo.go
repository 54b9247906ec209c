package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/capilarrd/pos_api/internal/models"
	"github.com/capilarrd/pos_api/internal/utils"
)

// CustomerRepository handles data access for customers.
type CustomerRepository struct {
	db *sqlx.DB
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, name, national_id, phone, address, discount_code, active, created_at, updated_at`

// GetAll returns customers in insertion order. When activeOnly is true,
// deactivated customers are excluded.
func (r *CustomerRepository) GetAll(activeOnly bool) ([]models.Customer, error) {
	q := `SELECT ` + customerColumns + ` FROM customers ORDER BY id`
	if activeOnly {
		q = `SELECT ` + customerColumns + ` FROM customers WHERE active = 1 ORDER BY id`
	}

	customers := []models.Customer{}
	if err := r.db.Select(&customers, q); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetByID returns a single customer by id.
func (r *CustomerRepository) GetByID(id int64) (*models.Customer, error) {
	q := `SELECT ` + customerColumns + ` FROM customers WHERE id = ? LIMIT 1`

	var c models.Customer
	if err := r.db.Get(&c, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetByDiscountCode returns the active customer holding the given discount
// code. Deactivated customers no longer validate.
func (r *CustomerRepository) GetByDiscountCode(code string) (*models.Customer, error) {
	q := `SELECT ` + customerColumns + ` FROM customers WHERE discount_code = ? AND active = 1 LIMIT 1`

	var c models.Customer
	if err := r.db.Get(&c, q, code); err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a new customer. National-id collisions are reported as
// utils.ErrDuplicateKey; discount-code collisions as
// utils.ErrDuplicateDiscountCode so the caller can retry with a new code.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	const q = `INSERT INTO customers (name, national_id, phone, address, discount_code)
              VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.Exec(q, customer.Name, customer.NationalID, customer.Phone, customer.Address, customer.DiscountCode)
	if err != nil {
		switch {
		case isUniqueViolation(err, "customers.national_id"):
			return fmt.Errorf("%w: national id %s already registered", utils.ErrDuplicateKey, customer.NationalID)
		case isUniqueViolation(err, "customers.discount_code"):
			return utils.ErrDuplicateDiscountCode
		}
		return err
	}
	customer.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}
	customer.Active = true
	return nil
}

// Update modifies a customer's contact details. The discount code is
// immutable once assigned and is deliberately not part of the statement.
func (r *CustomerRepository) Update(customer *models.Customer) error {
	const q = `UPDATE customers
              SET name = ?, national_id = ?, phone = ?, address = ?, updated_at = CURRENT_TIMESTAMP
              WHERE id = ?`

	res, err := r.db.Exec(q, customer.Name, customer.NationalID, customer.Phone, customer.Address, customer.ID)
	if err != nil {
		if isUniqueViolation(err, "customers.national_id") {
			return fmt.Errorf("%w: national id %s already registered", utils.ErrDuplicateKey, customer.NationalID)
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return utils.ErrCustomerNotFound
	}
	return nil
}

// Deactivate soft-deletes a customer. The row is preserved so past sales
// keep their discount-code linkage.
func (r *CustomerRepository) Deactivate(id int64) error {
	const q = `UPDATE customers SET active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	res, err := r.db.Exec(q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return utils.ErrCustomerNotFound
	}
	return nil
}
