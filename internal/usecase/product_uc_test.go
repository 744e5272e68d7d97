package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type recordingProductRepo struct {
	mockProductRepo
	saved []*domain.Product
}

func (m *recordingProductRepo) Save(_ context.Context, p *domain.Product) error {
	m.saved = append(m.saved, p)
	return nil
}

func TestUpdateKeepsCreationTimestamp(t *testing.T) {
	businessID := uuid.New()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	products := fixtureProducts(businessID)
	products[0].CreatedAt = created
	repo := &recordingProductRepo{mockProductRepo: mockProductRepo{products: products}}

	uc := &ProductUC{Products: repo}

	err := uc.Update(context.Background(), &domain.Product{
		ID:         products[0].ID,
		BusinessID: businessID,
		Name:       "Milanesa napolitana",
		Price:      decimal.NewFromInt(120),
		Available:  true,
	})

	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	assert.True(t, repo.saved[0].CreatedAt.Equal(created), "la edición no debe pisar created_at, el catálogo ordena por él")
	assert.Equal(t, "Milanesa napolitana", repo.saved[0].Name)
}

func TestUpdateUnknownProductWritesNothing(t *testing.T) {
	repo := &recordingProductRepo{}
	uc := &ProductUC{Products: repo}

	err := uc.Update(context.Background(), &domain.Product{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Name:       "Fantasma",
		Price:      decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.saved)
}
