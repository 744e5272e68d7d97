package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type InventoryUC struct {
	Products    domain.ProductRepo
	Inventories domain.InventoryRepo
}

// SetStock starts or updates stock tracking for a product.
func (uc *InventoryUC) SetStock(ctx context.Context, businessID, productID uuid.UUID, stock int) (*domain.Inventory, error) {
	if _, err := uc.Products.FindByID(ctx, businessID, productID); err != nil {
		return nil, err
	}
	inv := &domain.Inventory{
		ID:         uuid.New(),
		BusinessID: businessID,
		ProductID:  productID,
		Stock:      stock,
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if err := uc.Inventories.Upsert(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Untrack removes the inventory record. The product then shows no stock
// figure at all, which is different from stock zero.
func (uc *InventoryUC) Untrack(ctx context.Context, businessID, productID uuid.UUID) error {
	return uc.Inventories.DeleteByProduct(ctx, businessID, productID)
}

func (uc *InventoryUC) List(ctx context.Context, businessID uuid.UUID) ([]domain.Inventory, error) {
	return uc.Inventories.ListByBusiness(ctx, businessID)
}
