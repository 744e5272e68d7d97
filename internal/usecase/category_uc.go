package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type CategoryUC struct {
	Categories domain.CategoryRepo
}

func (uc *CategoryUC) List(ctx context.Context, businessID uuid.UUID) ([]domain.Category, error) {
	return uc.Categories.ListByBusiness(ctx, businessID)
}

func (uc *CategoryUC) Create(ctx context.Context, c *domain.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return err
	}
	return uc.Categories.Save(ctx, c)
}

func (uc *CategoryUC) Delete(ctx context.Context, businessID, id uuid.UUID) error {
	return uc.Categories.Delete(ctx, businessID, id)
}
