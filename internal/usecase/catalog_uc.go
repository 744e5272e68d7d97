package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lautarovg/cartaviva/internal/domain"
)

// CatalogUC assembles the public catalog for a business: base products
// overlaid with discount and inventory data.
type CatalogUC struct {
	Products    domain.ProductRepo
	Discounts   domain.DiscountRepo
	Inventories domain.InventoryRepo
}

// Assemble fetches the three collections concurrently and joins before
// enriching. A failed product fetch is fatal (ErrCatalogUnavailable). Failed
// discount or inventory fetches are logged and that dimension is skipped, so
// the base catalog still renders. Output keeps the repository's product order.
func (uc *CatalogUC) Assemble(ctx context.Context, businessID uuid.UUID) ([]domain.EnrichedProduct, error) {
	var (
		products    []domain.Product
		discounts   []domain.Discount
		inventories []domain.Inventory

		prodErr, discErr, invErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		products, prodErr = uc.Products.ListByBusiness(ctx, businessID)
	}()
	go func() {
		defer wg.Done()
		discounts, discErr = uc.Discounts.ListByBusiness(ctx, businessID)
	}()
	go func() {
		defer wg.Done()
		inventories, invErr = uc.Inventories.ListByBusiness(ctx, businessID)
	}()
	wg.Wait()

	if prodErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, prodErr)
	}
	if discErr != nil {
		log.Warn().Err(discErr).Str("business_id", businessID.String()).Msg("descuentos no disponibles, se omiten")
		discounts = nil
	}
	if invErr != nil {
		log.Warn().Err(invErr).Str("business_id", businessID.String()).Msg("inventario no disponible, se omite")
		inventories = nil
	}

	out := make([]domain.EnrichedProduct, 0, len(products))
	for _, p := range products {
		out = append(out, domain.Enrich(p, discounts, inventories))
	}
	return out, nil
}

// Enriched resolves a single product through the same pipeline; used when an
// item is added to the cart so the snapshot carries the display price.
func (uc *CatalogUC) Enriched(ctx context.Context, businessID, productID uuid.UUID) (*domain.EnrichedProduct, error) {
	items, err := uc.Assemble(ctx, businessID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == productID {
			return &items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
