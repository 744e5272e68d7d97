package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Business is a tenant. Every other record in the store hangs off its ID, and
// every repository query filters by it.
type Business struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string          `gorm:"size:140;not null" json:"name"`
	Slug         string          `gorm:"uniqueIndex;size:140;not null" json:"slug"`
	WhatsApp     string          `gorm:"size:30" json:"whatsapp"`
	TaxRate      decimal.Decimal `gorm:"type:decimal(8,4);default:0" json:"tax_rate"`
	ShippingCost decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"shipping_cost"`
	HeroTitle    string          `gorm:"size:180" json:"hero_title"`
	HeroSubtitle string          `gorm:"size:255" json:"hero_subtitle"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (b *Business) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: nombre requerido", ErrValidation)
	}
	if strings.TrimSpace(b.Slug) == "" {
		return fmt.Errorf("%w: slug requerido", ErrValidation)
	}
	if b.TaxRate.IsNegative() {
		return fmt.Errorf("%w: tasa de impuesto negativa", ErrValidation)
	}
	if b.ShippingCost.IsNegative() {
		return fmt.Errorf("%w: costo de envío negativo", ErrValidation)
	}
	return nil
}

var one = decimal.NewFromInt(1)

// NormalizeTaxRate tolerates the two storage conventions for the tax rate:
// a value greater than 1 is a whole-number percentage (19 -> 0.19), anything
// else is already a fraction. Existing data uses both, so the heuristic stays.
func NormalizeTaxRate(rate decimal.Decimal) decimal.Decimal {
	if rate.GreaterThan(one) {
		return rate.Div(decimal.NewFromInt(100))
	}
	return rate
}
