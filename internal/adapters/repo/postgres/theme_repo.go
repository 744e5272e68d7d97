package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type ThemeRepo struct{ db *gorm.DB }

func NewThemeRepo(db *gorm.DB) *ThemeRepo { return &ThemeRepo{db: db} }

func (r *ThemeRepo) FindByBusiness(ctx context.Context, businessID uuid.UUID) (*domain.ThemeSettings, error) {
	var ts domain.ThemeSettings
	if err := r.db.WithContext(ctx).First(&ts, "business_id = ?", businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ts, nil
}

func (r *ThemeRepo) Save(ctx context.Context, ts *domain.ThemeSettings) error {
	err := r.db.WithContext(ctx).Save(ts).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	return err
}
