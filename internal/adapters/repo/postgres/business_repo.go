package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type BusinessRepo struct{ db *gorm.DB }

func NewBusinessRepo(db *gorm.DB) *BusinessRepo { return &BusinessRepo{db: db} }

func (r *BusinessRepo) FindBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	var b domain.Business
	if err := r.db.WithContext(ctx).First(&b, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BusinessRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	var b domain.Business
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BusinessRepo) Save(ctx context.Context, b *domain.Business) error {
	err := r.db.WithContext(ctx).Save(b).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	return err
}
