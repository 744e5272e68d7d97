package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type InventoryRepo struct{ db *gorm.DB }

func NewInventoryRepo(db *gorm.DB) *InventoryRepo { return &InventoryRepo{db: db} }

func (r *InventoryRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.Inventory, error) {
	var list []domain.Inventory
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Upsert keeps at most one inventory row per product: an existing row is
// updated in place, otherwise the given record is inserted.
func (r *InventoryRepo) Upsert(ctx context.Context, inv *domain.Inventory) error {
	var existing domain.Inventory
	err := r.db.WithContext(ctx).
		First(&existing, "business_id = ? AND product_id = ?", inv.BusinessID, inv.ProductID).Error
	if err == nil {
		inv.ID = existing.ID
		inv.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(inv).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InventoryRepo) DeleteByProduct(ctx context.Context, businessID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("business_id = ? AND product_id = ?", businessID, productID).
		Delete(&domain.Inventory{}).Error
}
