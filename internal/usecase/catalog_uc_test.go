package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lautarovg/cartaviva/internal/domain"
)

// --- Mock repos ---

type mockProductRepo struct {
	products []domain.Product
	err      error
}

func (m *mockProductRepo) ListByBusiness(_ context.Context, _ uuid.UUID) ([]domain.Product, error) {
	return m.products, m.err
}

func (m *mockProductRepo) FindByID(_ context.Context, _ uuid.UUID, id uuid.UUID) (*domain.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockProductRepo) Save(_ context.Context, _ *domain.Product) error          { return nil }
func (m *mockProductRepo) Delete(_ context.Context, _ uuid.UUID, _ uuid.UUID) error { return nil }

type mockDiscountRepo struct {
	discounts []domain.Discount
	err       error
}

func (m *mockDiscountRepo) ListByBusiness(_ context.Context, _ uuid.UUID) ([]domain.Discount, error) {
	return m.discounts, m.err
}
func (m *mockDiscountRepo) Save(_ context.Context, _ *domain.Discount) error { return nil }
func (m *mockDiscountRepo) DeleteByProduct(_ context.Context, _ uuid.UUID, _ uuid.UUID) error {
	return nil
}

type mockInventoryRepo struct {
	inventories []domain.Inventory
	err         error
}

func (m *mockInventoryRepo) ListByBusiness(_ context.Context, _ uuid.UUID) ([]domain.Inventory, error) {
	return m.inventories, m.err
}
func (m *mockInventoryRepo) Upsert(_ context.Context, _ *domain.Inventory) error { return nil }
func (m *mockInventoryRepo) DeleteByProduct(_ context.Context, _ uuid.UUID, _ uuid.UUID) error {
	return nil
}

func fixtureProducts(businessID uuid.UUID) []domain.Product {
	return []domain.Product{
		{ID: uuid.New(), BusinessID: businessID, Name: "Milanesa", Price: decimal.NewFromInt(100), ImageURL: "/uploads/mila.jpg", Available: true},
		{ID: uuid.New(), BusinessID: businessID, Name: "Flan", Price: decimal.NewFromInt(40), Available: true},
	}
}

func TestAssembleEnrichesProducts(t *testing.T) {
	businessID := uuid.New()
	products := fixtureProducts(businessID)
	stock := 3

	uc := &CatalogUC{
		Products: &mockProductRepo{products: products},
		Discounts: &mockDiscountRepo{discounts: []domain.Discount{{
			ID:            uuid.New(),
			BusinessID:    businessID,
			ProductID:     products[0].ID,
			OriginalPrice: decimal.NewFromInt(100),
			Percentage:    decimal.NewFromInt(10),
			FinalPrice:    decimal.NewFromInt(90),
		}}},
		Inventories: &mockInventoryRepo{inventories: []domain.Inventory{{
			ID: uuid.New(), BusinessID: businessID, ProductID: products[1].ID, Stock: stock,
		}}},
	}

	got, err := uc.Assemble(context.Background(), businessID)

	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, got[0].Price.Equal(decimal.NewFromInt(90)))
	require.NotNil(t, got[0].OriginalPrice)
	assert.Nil(t, got[0].Stock)

	assert.True(t, got[1].Price.Equal(decimal.NewFromInt(40)))
	assert.Nil(t, got[1].OriginalPrice)
	require.NotNil(t, got[1].Stock)
	assert.Equal(t, stock, *got[1].Stock)
}

func TestAssembleProductFetchFailureIsFatal(t *testing.T) {
	uc := &CatalogUC{
		Products:    &mockProductRepo{err: errors.New("conexión rechazada")},
		Discounts:   &mockDiscountRepo{},
		Inventories: &mockInventoryRepo{},
	}

	_, err := uc.Assemble(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestAssembleDegradesOnDiscountFailure(t *testing.T) {
	businessID := uuid.New()
	products := fixtureProducts(businessID)

	uc := &CatalogUC{
		Products:  &mockProductRepo{products: products},
		Discounts: &mockDiscountRepo{err: errors.New("timeout")},
		Inventories: &mockInventoryRepo{inventories: []domain.Inventory{{
			ID: uuid.New(), BusinessID: businessID, ProductID: products[0].ID, Stock: 9,
		}}},
	}

	got, err := uc.Assemble(context.Background(), businessID)

	require.NoError(t, err, "la falla de descuentos no es fatal")
	require.Len(t, got, 2)
	for i, p := range got {
		assert.Equal(t, products[i].Name, p.Name)
		assert.Equal(t, products[i].ImageURL, p.ImageURL)
		assert.True(t, p.Price.Equal(products[i].Price), "sin descuentos el precio base pasa directo")
		assert.Nil(t, p.OriginalPrice)
		assert.Nil(t, p.DiscountPercentage)
	}
	require.NotNil(t, got[0].Stock, "el enriquecimiento de stock sigue funcionando")
}

func TestAssembleDegradesOnInventoryFailure(t *testing.T) {
	businessID := uuid.New()
	products := fixtureProducts(businessID)

	uc := &CatalogUC{
		Products:    &mockProductRepo{products: products},
		Discounts:   &mockDiscountRepo{},
		Inventories: &mockInventoryRepo{err: errors.New("timeout")},
	}

	got, err := uc.Assemble(context.Background(), businessID)

	require.NoError(t, err)
	for _, p := range got {
		assert.Nil(t, p.Stock)
	}
}

func TestAssemblePreservesRepositoryOrder(t *testing.T) {
	businessID := uuid.New()
	products := fixtureProducts(businessID)

	uc := &CatalogUC{
		Products:    &mockProductRepo{products: products},
		Discounts:   &mockDiscountRepo{},
		Inventories: &mockInventoryRepo{},
	}

	got, err := uc.Assemble(context.Background(), businessID)

	require.NoError(t, err)
	require.Len(t, got, len(products))
	for i := range products {
		assert.Equal(t, products[i].ID, got[i].ID)
	}
}

func TestEnrichedSingleProduct(t *testing.T) {
	businessID := uuid.New()
	products := fixtureProducts(businessID)

	uc := &CatalogUC{
		Products:    &mockProductRepo{products: products},
		Discounts:   &mockDiscountRepo{},
		Inventories: &mockInventoryRepo{},
	}

	p, err := uc.Enriched(context.Background(), businessID, products[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Flan", p.Name)

	_, err = uc.Enriched(context.Background(), businessID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
