package domain

import "github.com/shopspring/decimal"

// EnrichedProduct is a Product overlaid with discount and stock data for
// display. Optional fields are pointers so presence and absence stay explicit:
// a nil Stock means "untracked", never zero. It is transient and never persisted.
type EnrichedProduct struct {
	Product
	OriginalPrice      *decimal.Decimal `json:"original_price,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
	Stock              *int             `json:"stock,omitempty"`
}

// PriceInfo is the result of resolving a product against its discount set.
type PriceInfo struct {
	Price              decimal.Decimal
	OriginalPrice      *decimal.Decimal
	DiscountPercentage *decimal.Decimal
}

// ResolvePrice picks the first discount matching the product. The stored
// FinalPrice is authoritative; it is not re-derived here. Without a match the
// base price passes through and the optional fields stay nil.
//
// Multiple discounts for one product are possible in the store; first match
// wins, matching what admins see when they re-apply a promotion.
func ResolvePrice(p Product, discounts []Discount) PriceInfo {
	for i := range discounts {
		if discounts[i].ProductID != p.ID {
			continue
		}
		original := discounts[i].OriginalPrice
		pct := discounts[i].Percentage
		return PriceInfo{
			Price:              discounts[i].FinalPrice,
			OriginalPrice:      &original,
			DiscountPercentage: &pct,
		}
	}
	return PriceInfo{Price: p.Price}
}

// ResolveStock returns the stock count of the first matching inventory record,
// or nil when the product is untracked.
func ResolveStock(p Product, inventories []Inventory) *int {
	for i := range inventories {
		if inventories[i].ProductID == p.ID {
			stock := inventories[i].Stock
			return &stock
		}
	}
	return nil
}

// Enrich overlays one product with its discount and inventory side tables.
func Enrich(p Product, discounts []Discount, inventories []Inventory) EnrichedProduct {
	info := ResolvePrice(p, discounts)
	ep := EnrichedProduct{
		Product:            p,
		OriginalPrice:      info.OriginalPrice,
		DiscountPercentage: info.DiscountPercentage,
		Stock:              ResolveStock(p, inventories),
	}
	ep.Price = info.Price
	return ep
}
