package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type BusinessUC struct {
	Businesses domain.BusinessRepo
}

func (uc *BusinessUC) GetBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, errors.New("slug vacío")
	}
	return uc.Businesses.FindBySlug(ctx, slug)
}

func (uc *BusinessUC) Get(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	return uc.Businesses.FindByID(ctx, id)
}

// Update rewrites the tenant settings. The tax rate is stored exactly as
// given, fraction or whole percentage; normalization happens at read time in
// the totals computation, never against stored data.
func (uc *BusinessUC) Update(ctx context.Context, b *domain.Business) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return uc.Businesses.Save(ctx, b)
}
