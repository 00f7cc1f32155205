package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
)

type capturingProductRepository struct {
	products    []domain.Product
	findErr     error
	gotLimit    int
	gotOffset   int
	gotCategory string
}

func (c *capturingProductRepository) Create(*domain.Product) error {
	return errors.New("not implemented")
}

func (c *capturingProductRepository) FindByID(id uint) (*domain.Product, error) {
	for i := range c.products {
		if c.products[i].ID == id {
			return &c.products[i], nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (c *capturingProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	c.gotLimit = limit
	c.gotOffset = offset
	return c.products, c.findErr
}

func (c *capturingProductRepository) FindByCategory(category string, limit, offset int) ([]domain.Product, error) {
	c.gotCategory = category
	c.gotLimit = limit
	c.gotOffset = offset
	return c.products, c.findErr
}

func (c *capturingProductRepository) Update(*domain.Product) error {
	return errors.New("not implemented")
}
func (c *capturingProductRepository) Delete(uint) error     { return errors.New("not implemented") }
func (c *capturingProductRepository) Count() (int64, error) { return int64(len(c.products)), nil }

func (c *capturingProductRepository) DecrementStock(uint, int) (*domain.Product, error) {
	return nil, errors.New("not implemented")
}

func TestListProducts_DefaultLimit(t *testing.T) {
	repo := &capturingProductRepository{}
	handler := NewListProductsHandler(repo)

	_, err := handler.Handle(ListProductsQuery{})
	require.NoError(t, err)
	assert.Equal(t, 50, repo.gotLimit)
	assert.Equal(t, 0, repo.gotOffset)
	assert.Empty(t, repo.gotCategory)
}

func TestListProducts_CategoryFilter(t *testing.T) {
	repo := &capturingProductRepository{
		products: []domain.Product{{ID: 1, Name: "Nohut", Category: "Bakliyat"}},
	}
	handler := NewListProductsHandler(repo)

	products, err := handler.Handle(ListProductsQuery{Category: "Bakliyat", Limit: 10, Offset: 20})
	require.NoError(t, err)

	assert.Equal(t, "Bakliyat", repo.gotCategory)
	assert.Equal(t, 10, repo.gotLimit)
	assert.Equal(t, 20, repo.gotOffset)
	assert.Len(t, products, 1)
}

func TestListProducts_WrapsRepositoryError(t *testing.T) {
	repo := &capturingProductRepository{findErr: errors.New("connection reset")}
	handler := NewListProductsHandler(repo)

	_, err := handler.Handle(ListProductsQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list products")
}

func TestGetProduct(t *testing.T) {
	repo := &capturingProductRepository{
		products: []domain.Product{{ID: 5, Name: "Sarı Mercimek"}},
	}
	handler := NewGetProductHandler(repo)

	product, err := handler.Handle(GetProductQuery{ID: 5})
	require.NoError(t, err)
	assert.Equal(t, "Sarı Mercimek", product.Name)

	_, err = handler.Handle(GetProductQuery{ID: 6})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
