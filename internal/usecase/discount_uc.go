package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type DiscountUC struct {
	Products  domain.ProductRepo
	Discounts domain.DiscountRepo
}

// Apply creates or replaces the promotion for a product. The current base
// price is snapshotted as the original price and the final price is derived
// and stored once; reads trust it afterwards. Any existing discount records
// for the product are replaced rather than accumulated.
func (uc *DiscountUC) Apply(ctx context.Context, businessID, productID uuid.UUID, percentage decimal.Decimal) (*domain.Discount, error) {
	p, err := uc.Products.FindByID(ctx, businessID, productID)
	if err != nil {
		return nil, err
	}
	d, err := domain.NewDiscount(businessID, productID, p.Price, percentage)
	if err != nil {
		return nil, err
	}
	if err := uc.Discounts.DeleteByProduct(ctx, businessID, productID); err != nil {
		return nil, err
	}
	if err := uc.Discounts.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Remove ends the promotion for a product; no-op when none exists.
func (uc *DiscountUC) Remove(ctx context.Context, businessID, productID uuid.UUID) error {
	return uc.Discounts.DeleteByProduct(ctx, businessID, productID)
}

func (uc *DiscountUC) List(ctx context.Context, businessID uuid.UUID) ([]domain.Discount, error) {
	return uc.Discounts.ListByBusiness(ctx, businessID)
}
