package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
)

// fakeProductRepository is an in-memory ProductRepository with the same
// conditional-decrement semantics as the database implementation.
type fakeProductRepository struct {
	products map[uint]*domain.Product
	nextID   uint
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: map[uint]*domain.Product{}, nextID: 1}
}

func (f *fakeProductRepository) add(p domain.Product) *domain.Product {
	p.ID = f.nextID
	f.nextID++
	f.products[p.ID] = &p
	return &p
}

func (f *fakeProductRepository) Create(product *domain.Product) error {
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepository) FindByID(id uint) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var result []domain.Product
	for _, p := range f.products {
		result = append(result, *p)
	}
	return result, nil
}

func (f *fakeProductRepository) FindByCategory(category string, limit, offset int) ([]domain.Product, error) {
	var result []domain.Product
	for _, p := range f.products {
		if p.Category == category {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (f *fakeProductRepository) Update(product *domain.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepository) Delete(id uint) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepository) Count() (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepository) DecrementStock(id uint, quantity int) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, ok := f.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if product.Quantity < quantity {
		return nil, &domain.InsufficientStockError{
			ProductID:   id,
			ProductName: product.Name,
			Available:   product.Quantity,
			Requested:   quantity,
		}
	}
	product.Quantity -= quantity
	copied := *product
	return &copied, nil
}

func TestCreateProduct(t *testing.T) {
	repo := newFakeProductRepository()
	handler := NewCreateProductHandler(repo)

	t.Run("creates with defaulted entry date", func(t *testing.T) {
		product, err := handler.Handle(CreateProductCommand{
			Name:     "Kırmızı Mercimek",
			Brand:    "Yayla",
			Quantity: 20,
			Price:    55.5,
			Category: "Bakliyat",
		})
		require.NoError(t, err)

		assert.NotZero(t, product.ID)
		assert.WithinDuration(t, time.Now(), product.EntryDate, time.Minute)
		assert.Nil(t, product.ExpiryDate)
	})

	t.Run("honours explicit dates", func(t *testing.T) {
		entry := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
		expiry := entry.AddDate(1, 0, 0)

		product, err := handler.Handle(CreateProductCommand{
			Name:       "Dana Kıyma",
			Brand:      "Yerli",
			Quantity:   10,
			Price:      320,
			Category:   "Et Ürünleri",
			EntryDate:  &entry,
			ExpiryDate: &expiry,
		})
		require.NoError(t, err)

		assert.Equal(t, entry, product.EntryDate)
		require.NotNil(t, product.ExpiryDate)
		assert.Equal(t, expiry, *product.ExpiryDate)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := handler.Handle(CreateProductCommand{
			Brand:    "Yayla",
			Quantity: 1,
			Price:    10,
			Category: "Bakliyat",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := handler.Handle(CreateProductCommand{
			Name:     "Nohut",
			Brand:    "Yayla",
			Quantity: 1,
			Price:    0,
			Category: "Bakliyat",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := handler.Handle(CreateProductCommand{
			Name:     "Nohut",
			Brand:    "Yayla",
			Quantity: -3,
			Price:    10,
			Category: "Bakliyat",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUpdateProduct(t *testing.T) {
	repo := newFakeProductRepository()
	existing := repo.add(domain.Product{
		Name:     "Toz Biber",
		Brand:    "Bağdat",
		Quantity: 5,
		Price:    80,
		Category: "Baharat",
	})
	handler := NewUpdateProductHandler(repo)

	t.Run("updates all fields", func(t *testing.T) {
		product, err := handler.Handle(UpdateProductCommand{
			ID:       existing.ID,
			Name:     "Pul Biber",
			Brand:    "Bağdat",
			Quantity: 8,
			Price:    95,
			Category: "Baharat",
		})
		require.NoError(t, err)

		assert.Equal(t, "Pul Biber", product.Name)
		assert.Equal(t, 8, product.Quantity)
		assert.InDelta(t, 95, product.Price, 0.001)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := handler.Handle(UpdateProductCommand{ID: 999, Name: "X", Brand: "Y", Price: 1, Category: "Z"})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		_, err := handler.Handle(UpdateProductCommand{
			ID:       existing.ID,
			Brand:    "Bağdat",
			Quantity: 8,
			Price:    95,
			Category: "Baharat",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeProductRepository()
	existing := repo.add(domain.Product{Name: "Nohut", Brand: "Yayla", Quantity: 2, Price: 60, Category: "Bakliyat"})
	handler := NewDeleteProductHandler(repo)

	require.NoError(t, handler.Handle(DeleteProductCommand{ID: existing.ID}))

	_, err := repo.FindByID(existing.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.ErrorIs(t, handler.Handle(DeleteProductCommand{ID: existing.ID}), domain.ErrProductNotFound)
}

func TestDeductStock(t *testing.T) {
	repo := newFakeProductRepository()
	existing := repo.add(domain.Product{
		Name:     "Kuzu Pirzola",
		Brand:    "Yerli",
		Quantity: 10,
		Price:    450,
		Category: "Et Ürünleri",
	})
	handler := NewDeductStockHandler(repo)

	t.Run("decrements and prices the removed quantity", func(t *testing.T) {
		result, err := handler.Handle(DeductStockCommand{ProductID: existing.ID, Quantity: 3})
		require.NoError(t, err)

		assert.Equal(t, 7, result.Product.Quantity)
		assert.InDelta(t, 1350, result.Cost, 0.001)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := handler.Handle(DeductStockCommand{ProductID: existing.ID, Quantity: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("rejects overdraw", func(t *testing.T) {
		_, err := handler.Handle(DeductStockCommand{ProductID: existing.ID, Quantity: 100})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)

		var stockErr *domain.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 7, stockErr.Available)
		assert.Equal(t, 100, stockErr.Requested)

		// Failed deduction leaves the stock untouched
		product, err := repo.FindByID(existing.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, product.Quantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := handler.Handle(DeductStockCommand{ProductID: 999, Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
