package httpserver

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lautarovg/cartaviva/internal/domain"
)

// demoCatalog is the fallback dataset served when the base product fetch
// fails, so the storefront shows something alongside the retry prompt.
func demoCatalog(businessID uuid.UUID) []domain.EnrichedProduct {
	demo := []struct {
		name  string
		desc  string
		price int64
	}{
		{"Hamburguesa clásica", "Carne, queso, lechuga y tomate", 5500},
		{"Papas fritas", "Porción grande", 2500},
		{"Limonada", "Exprimida en el momento", 1800},
		{"Brownie", "Con nuez, porción individual", 2200},
	}
	out := make([]domain.EnrichedProduct, 0, len(demo))
	for _, d := range demo {
		out = append(out, domain.EnrichedProduct{Product: domain.Product{
			ID:          uuid.New(),
			BusinessID:  businessID,
			Name:        d.name,
			Description: d.desc,
			Price:       decimal.NewFromInt(d.price),
			Available:   true,
		}})
	}
	return out
}
