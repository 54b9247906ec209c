package models

import "time"

// Customer represents a registered customer. Each customer is issued a unique
// discount code at registration; the code is immutable afterwards. Customers
// are soft-deleted (Active = false) so historical sales keep a valid
// discount-code linkage.
type Customer struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	NationalID   string    `db:"national_id" json:"nationalId"`
	Phone        string    `db:"phone" json:"phone"`
	Address      string    `db:"address" json:"address"`
	DiscountCode string    `db:"discount_code" json:"discountCode"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
