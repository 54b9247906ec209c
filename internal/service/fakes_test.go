package service

import (
	"fmt"

	"github.com/capilarrd/pos_api/internal/models"
	"github.com/capilarrd/pos_api/internal/utils"
)

// In-memory store fakes mirroring the repository contracts, including the
// sentinel errors the SQLite implementations produce on constraint
// violations.

type memProductStore struct {
	seq      int64
	products []models.Product
}

func (m *memProductStore) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *memProductStore) GetByID(id int64) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, utils.ErrProductNotFound
}

func (m *memProductStore) Create(product *models.Product) error {
	for _, p := range m.products {
		if p.Name == product.Name {
			return fmt.Errorf("%w: %s", utils.ErrDuplicateName, product.Name)
		}
	}
	m.seq++
	product.ID = m.seq
	m.products = append(m.products, *product)
	return nil
}

func (m *memProductStore) Update(product *models.Product) error {
	for _, p := range m.products {
		if p.Name == product.Name && p.ID != product.ID {
			return fmt.Errorf("%w: %s", utils.ErrDuplicateName, product.Name)
		}
	}
	for i, p := range m.products {
		if p.ID == product.ID {
			m.products[i].Name = product.Name
			m.products[i].Price = product.Price
			return nil
		}
	}
	return utils.ErrProductNotFound
}

func (m *memProductStore) Delete(id int64) error {
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return utils.ErrProductNotFound
}

type memCustomerStore struct {
	seq       int64
	customers []models.Customer

	// collideCodes forces the first N creates to fail with a discount-code
	// collision, regardless of the generated code.
	collideCodes int
	creates      int
}

func (m *memCustomerStore) GetAll(activeOnly bool) ([]models.Customer, error) {
	out := []models.Customer{}
	for _, c := range m.customers {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *memCustomerStore) GetByID(id int64) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, utils.ErrCustomerNotFound
}

func (m *memCustomerStore) GetByDiscountCode(code string) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.DiscountCode == code && c.Active {
			cp := c
			return &cp, nil
		}
	}
	return nil, utils.ErrCustomerNotFound
}

func (m *memCustomerStore) Create(customer *models.Customer) error {
	m.creates++
	if m.creates <= m.collideCodes {
		return utils.ErrDuplicateDiscountCode
	}
	for _, c := range m.customers {
		if c.NationalID == customer.NationalID {
			return fmt.Errorf("%w: national id %s already registered", utils.ErrDuplicateKey, customer.NationalID)
		}
		if c.DiscountCode == customer.DiscountCode {
			return utils.ErrDuplicateDiscountCode
		}
	}
	m.seq++
	customer.ID = m.seq
	customer.Active = true
	m.customers = append(m.customers, *customer)
	return nil
}

func (m *memCustomerStore) Update(customer *models.Customer) error {
	for _, c := range m.customers {
		if c.NationalID == customer.NationalID && c.ID != customer.ID {
			return fmt.Errorf("%w: national id %s already registered", utils.ErrDuplicateKey, customer.NationalID)
		}
	}
	for i, c := range m.customers {
		if c.ID == customer.ID {
			m.customers[i].Name = customer.Name
			m.customers[i].NationalID = customer.NationalID
			m.customers[i].Phone = customer.Phone
			m.customers[i].Address = customer.Address
			return nil
		}
	}
	return utils.ErrCustomerNotFound
}

func (m *memCustomerStore) Deactivate(id int64) error {
	for i, c := range m.customers {
		if c.ID == id {
			m.customers[i].Active = false
			return nil
		}
	}
	return utils.ErrCustomerNotFound
}

type memSaleStore struct {
	seq   int64
	sales []models.Sale
	items map[int64][]models.SaleItem

	// collideNumbers forces the first N creates to fail with an
	// invoice-number collision, regardless of the generated number.
	collideNumbers int
	creates        int
}

func newMemSaleStore() *memSaleStore {
	return &memSaleStore{items: map[int64][]models.SaleItem{}}
}

func (m *memSaleStore) Create(sale *models.Sale, items []models.SaleItem) error {
	m.creates++
	if m.creates <= m.collideNumbers {
		return utils.ErrDuplicateInvoiceNumber
	}
	for _, s := range m.sales {
		if s.InvoiceNumber == sale.InvoiceNumber {
			return utils.ErrDuplicateInvoiceNumber
		}
	}
	m.seq++
	sale.ID = m.seq
	header := *sale
	header.Items = nil
	m.sales = append(m.sales, header)
	stored := make([]models.SaleItem, len(items))
	copy(stored, items)
	for i := range stored {
		stored[i].SaleID = sale.ID
	}
	m.items[sale.ID] = stored
	return nil
}

func (m *memSaleStore) GetByInvoiceNumber(invoiceNumber string) (*models.Sale, error) {
	for _, s := range m.sales {
		if s.InvoiceNumber == invoiceNumber {
			cp := s
			cp.Items = append([]models.SaleItem{}, m.items[s.ID]...)
			return &cp, nil
		}
	}
	return nil, utils.ErrSaleNotFound
}

func (m *memSaleStore) GetByDate(date string) ([]models.Sale, error) {
	out := []models.Sale{}
	for _, s := range m.sales {
		if s.SaleDate == date {
			out = append(out, s)
		}
	}
	return out, nil
}
