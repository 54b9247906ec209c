package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capilarrd/pos_api/internal/utils"
)

func TestCreateProductValidation(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		price       float64
	}{
		{"empty name", "", 100},
		{"whitespace name", "   ", 100},
		{"zero price", "Shampoo", 0},
		{"negative price", "Shampoo", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(&memProductStore{})
			_, err := svc.CreateProduct(tt.productName, tt.price)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestCreateProductDuplicateNameLeavesCatalogUnchanged(t *testing.T) {
	store := &memProductStore{}
	svc := NewCatalogService(store)

	_, err := svc.CreateProduct("Shampoo", 500)
	require.NoError(t, err)

	_, err = svc.CreateProduct("Shampoo", 750)
	assert.ErrorIs(t, err, utils.ErrDuplicateName)

	products, err := svc.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 500.0, products[0].Price)
}

func TestUpdateProduct(t *testing.T) {
	store := &memProductStore{}
	svc := NewCatalogService(store)

	created, err := svc.CreateProduct("Shampoo", 500)
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(created.ID, "Conditioner", 650)
	require.NoError(t, err)
	assert.Equal(t, "Conditioner", updated.Name)
	assert.Equal(t, 650.0, updated.Price)

	_, err = svc.UpdateProduct(999, "Gel", 100)
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	store := &memProductStore{}
	svc := NewCatalogService(store)

	created, err := svc.CreateProduct("Shampoo", 500)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(created.ID))
	assert.ErrorIs(t, svc.DeleteProduct(created.ID), utils.ErrProductNotFound)
}
