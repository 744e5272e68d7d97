package domain

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Repositories are the Record Store boundary. Multi-tenant isolation is by
// query filter only: every read takes the owning business id, and callers must
// never skip it.

type BusinessRepo interface {
	FindBySlug(ctx context.Context, slug string) (*Business, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Business, error)
	Save(ctx context.Context, b *Business) error
}

type ProductRepo interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]Product, error)
	FindByID(ctx context.Context, businessID, id uuid.UUID) (*Product, error)
	Save(ctx context.Context, p *Product) error
	Delete(ctx context.Context, businessID, id uuid.UUID) error
}

type CategoryRepo interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]Category, error)
	Save(ctx context.Context, c *Category) error
	Delete(ctx context.Context, businessID, id uuid.UUID) error
}

type DiscountRepo interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]Discount, error)
	Save(ctx context.Context, d *Discount) error
	DeleteByProduct(ctx context.Context, businessID, productID uuid.UUID) error
}

type InventoryRepo interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]Inventory, error)
	Upsert(ctx context.Context, inv *Inventory) error
	DeleteByProduct(ctx context.Context, businessID, productID uuid.UUID) error
}

type ThemeRepo interface {
	// FindByBusiness returns ErrNotFound when no theme was ever saved; the
	// resolver then falls back to the default preset.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) (*ThemeSettings, error)
	Save(ctx context.Context, ts *ThemeSettings) error
}

// FileStorage stores uploaded product and brand images and returns a public URL path.
type FileStorage interface {
	Save(name string, r io.Reader) (string, error)
	Remove(urlPath string) error
}
