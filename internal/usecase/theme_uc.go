package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type ThemeUC struct {
	Themes domain.ThemeRepo
}

// Resolve loads the stored theme and merges it over the default preset. A
// missing record is normal (business never customized) and yields the preset.
func (uc *ThemeUC) Resolve(ctx context.Context, businessID uuid.UUID) (domain.ResolvedTheme, error) {
	ts, err := uc.Themes.FindByBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ResolveTheme(nil), nil
		}
		return domain.ResolvedTheme{}, err
	}
	return domain.ResolveTheme(ts), nil
}

// Save creates the record on first customization and updates it afterwards.
func (uc *ThemeUC) Save(ctx context.Context, ts *domain.ThemeSettings) error {
	existing, err := uc.Themes.FindByBusiness(ctx, ts.BusinessID)
	switch {
	case err == nil:
		ts.ID = existing.ID
		ts.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrNotFound):
		if ts.ID == uuid.Nil {
			ts.ID = uuid.New()
		}
	default:
		return err
	}
	return uc.Themes.Save(ctx, ts)
}

// Settings returns the raw stored record for the admin editor, or nil when
// the business never saved one.
func (uc *ThemeUC) Settings(ctx context.Context, businessID uuid.UUID) (*domain.ThemeSettings, error) {
	ts, err := uc.Themes.FindByBusiness(ctx, businessID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return ts, err
}
