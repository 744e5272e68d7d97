package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type recordingDiscountRepo struct {
	mockDiscountRepo
	saved   []*domain.Discount
	deleted []uuid.UUID
}

func (m *recordingDiscountRepo) Save(_ context.Context, d *domain.Discount) error {
	m.saved = append(m.saved, d)
	return nil
}

func (m *recordingDiscountRepo) DeleteByProduct(_ context.Context, _ uuid.UUID, productID uuid.UUID) error {
	m.deleted = append(m.deleted, productID)
	return nil
}

func TestApplySnapshotsPriceAndReplaces(t *testing.T) {
	businessID := uuid.New()
	products := fixtureProducts(businessID)
	repo := &recordingDiscountRepo{}

	uc := &DiscountUC{
		Products:  &mockProductRepo{products: products},
		Discounts: repo,
	}

	d, err := uc.Apply(context.Background(), businessID, products[0].ID, decimal.NewFromInt(30))

	require.NoError(t, err)
	assert.True(t, d.OriginalPrice.Equal(products[0].Price), "el precio base se congela como precio original")
	assert.True(t, d.FinalPrice.Equal(decimal.NewFromInt(70)))
	require.Len(t, repo.deleted, 1, "el descuento anterior se reemplaza, no se acumula")
	assert.Equal(t, products[0].ID, repo.deleted[0])
	require.Len(t, repo.saved, 1)
}

func TestApplyRejectsInvalidPercentageBeforeWrite(t *testing.T) {
	businessID := uuid.New()
	products := fixtureProducts(businessID)
	repo := &recordingDiscountRepo{}

	uc := &DiscountUC{
		Products:  &mockProductRepo{products: products},
		Discounts: repo,
	}

	_, err := uc.Apply(context.Background(), businessID, products[0].ID, decimal.NewFromInt(120))

	assert.ErrorIs(t, err, domain.ErrInvalidDiscountPercentage)
	assert.Empty(t, repo.saved, "no se intenta ninguna escritura")
	assert.Empty(t, repo.deleted)
}

func TestApplyUnknownProduct(t *testing.T) {
	uc := &DiscountUC{
		Products:  &mockProductRepo{},
		Discounts: &recordingDiscountRepo{},
	}

	_, err := uc.Apply(context.Background(), uuid.New(), uuid.New(), decimal.NewFromInt(10))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
