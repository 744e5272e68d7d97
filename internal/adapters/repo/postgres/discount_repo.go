package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type DiscountRepo struct{ db *gorm.DB }

func NewDiscountRepo(db *gorm.DB) *DiscountRepo { return &DiscountRepo{db: db} }

func (r *DiscountRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.Discount, error) {
	var list []domain.Discount
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at asc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *DiscountRepo) Save(ctx context.Context, d *domain.Discount) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DiscountRepo) DeleteByProduct(ctx context.Context, businessID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("business_id = ? AND product_id = ?", businessID, productID).
		Delete(&domain.Discount{}).Error
}
