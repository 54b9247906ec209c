package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/capilarrd/pos_api/internal/models"
	"github.com/capilarrd/pos_api/internal/utils"
)

// codeGenAttempts bounds discount-code generation retries. The random suffix
// is only four characters, so collisions are possible; the store's unique
// constraint is the actual guard and exhaustion surfaces as an error.
const codeGenAttempts = 5

// CustomerStore is the customer persistence contract consumed by
// CustomerService. Implemented by repository.CustomerRepository.
type CustomerStore interface {
	GetAll(activeOnly bool) ([]models.Customer, error)
	GetByID(id int64) (*models.Customer, error)
	GetByDiscountCode(code string) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	Deactivate(id int64) error
}

// CustomerService handles customer registration, updates, and soft deletes.
type CustomerService struct {
	customers CustomerStore
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(customers CustomerStore) *CustomerService {
	return &CustomerService{customers: customers}
}

// ListCustomers returns customers, optionally restricted to active ones.
func (s *CustomerService) ListCustomers(activeOnly bool) ([]models.Customer, error) {
	return s.customers.GetAll(activeOnly)
}

// FindByDiscountCode resolves a discount code to the active customer holding
// it. Codes belonging to deactivated customers no longer validate.
func (s *CustomerService) FindByDiscountCode(code string) (*models.Customer, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: discount code is required", utils.ErrInvalidInput)
	}
	return s.customers.GetByDiscountCode(code)
}

// CreateCustomer registers a customer and issues their discount code.
// Code collisions are retried with a fresh random suffix up to
// codeGenAttempts times before giving up.
func (s *CustomerService) CreateCustomer(name, nationalID, phone, address string) (*models.Customer, error) {
	name = strings.TrimSpace(name)
	nationalID = strings.TrimSpace(nationalID)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", utils.ErrInvalidInput)
	}
	if nationalID == "" {
		return nil, fmt.Errorf("%w: national id is required", utils.ErrInvalidInput)
	}

	for attempt := 1; attempt <= codeGenAttempts; attempt++ {
		code, err := GenerateDiscountCode(name)
		if err != nil {
			return nil, err
		}

		customer := &models.Customer{
			Name:         name,
			NationalID:   nationalID,
			Phone:        strings.TrimSpace(phone),
			Address:      strings.TrimSpace(address),
			DiscountCode: code,
		}
		err = s.customers.Create(customer)
		if err == nil {
			return customer, nil
		}
		if errors.Is(err, utils.ErrDuplicateDiscountCode) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: discount code space exhausted after %d attempts", utils.ErrCodeGenerationExhausted, codeGenAttempts)
}

// UpdateCustomer modifies a customer's contact details. The discount code is
// immutable once assigned.
func (s *CustomerService) UpdateCustomer(id int64, name, nationalID, phone, address string) (*models.Customer, error) {
	name = strings.TrimSpace(name)
	nationalID = strings.TrimSpace(nationalID)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", utils.ErrInvalidInput)
	}
	if nationalID == "" {
		return nil, fmt.Errorf("%w: national id is required", utils.ErrInvalidInput)
	}

	customer := &models.Customer{
		ID:         id,
		Name:       name,
		NationalID: nationalID,
		Phone:      strings.TrimSpace(phone),
		Address:    strings.TrimSpace(address),
	}
	if err := s.customers.Update(customer); err != nil {
		return nil, err
	}
	return s.customers.GetByID(id)
}

// DeactivateCustomer soft-deletes a customer. The row is kept so historical
// sales retain their discount-code linkage.
func (s *CustomerService) DeactivateCustomer(id int64) error {
	return s.customers.Deactivate(id)
}

// GenerateDiscountCode builds a discount code candidate from the customer's
// name: the uppercased initials of the first two name tokens, a dash, and
// four random uppercase-alphanumeric characters. Example: "JP-8F2K".
// The result is not guaranteed collision-free.
func GenerateDiscountCode(name string) (string, error) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: customer name is required", utils.ErrInvalidInput)
	}
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}

	var prefix strings.Builder
	for _, token := range tokens {
		r := []rune(token)[0]
		prefix.WriteRune(unicode.ToUpper(r))
	}

	suffix, err := utils.RandomToken(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", prefix.String(), suffix), nil
}
