package service

import (
	"fmt"
	"strings"

	"github.com/capilarrd/pos_api/internal/models"
	"github.com/capilarrd/pos_api/internal/utils"
)

// ProductStore is the catalog persistence contract consumed by CatalogService.
// Implemented by repository.ProductRepository.
type ProductStore interface {
	GetAll() ([]models.Product, error)
	GetByID(id int64) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id int64) error
}

// CatalogService handles product CRUD operations.
type CatalogService struct {
	products ProductStore
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(products ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

// ListProducts returns all products in insertion order.
func (s *CatalogService) ListProducts() ([]models.Product, error) {
	return s.products.GetAll()
}

// CreateProduct validates and inserts a new product.
func (s *CatalogService) CreateProduct(name string, price float64) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if err := validateProductInput(name, price); err != nil {
		return nil, err
	}

	product := &models.Product{Name: name, Price: price}
	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct validates and applies new name/price to an existing product.
func (s *CatalogService) UpdateProduct(id int64, name string, price float64) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if err := validateProductInput(name, price); err != nil {
		return nil, err
	}

	product := &models.Product{ID: id, Name: name, Price: price}
	if err := s.products.Update(product); err != nil {
		return nil, err
	}
	return s.products.GetByID(id)
}

// DeleteProduct removes a product from the catalog. Historical sale line
// items keep their snapshots; only the product reference is nulled.
func (s *CatalogService) DeleteProduct(id int64) error {
	return s.products.Delete(id)
}

func validateProductInput(name string, price float64) error {
	if name == "" {
		return fmt.Errorf("%w: product name is required", utils.ErrInvalidInput)
	}
	if price <= 0 {
		return fmt.Errorf("%w: price must be greater than zero", utils.ErrInvalidInput)
	}
	return nil
}
