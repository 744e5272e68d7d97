package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type ProductUC struct {
	Products domain.ProductRepo
}

func (uc *ProductUC) List(ctx context.Context, businessID uuid.UUID) ([]domain.Product, error) {
	return uc.Products.ListByBusiness(ctx, businessID)
}

func (uc *ProductUC) Get(ctx context.Context, businessID, id uuid.UUID) (*domain.Product, error) {
	return uc.Products.FindByID(ctx, businessID, id)
}

func (uc *ProductUC) Create(ctx context.Context, p *domain.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return err
	}
	return uc.Products.Save(ctx, p)
}

func (uc *ProductUC) Update(ctx context.Context, p *domain.Product) error {
	existing, err := uc.Products.FindByID(ctx, p.BusinessID, p.ID)
	if err != nil {
		return err
	}
	// Save writes every column, so the original timestamp must be carried
	// over or the catalog order (created_at asc) breaks.
	p.CreatedAt = existing.CreatedAt
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return err
	}
	return uc.Products.Save(ctx, p)
}

func (uc *ProductUC) Delete(ctx context.Context, businessID, id uuid.UUID) error {
	return uc.Products.Delete(ctx, businessID, id)
}
