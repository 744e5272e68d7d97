package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Discount is a promotional override for one product. FinalPrice is derived
// once here, stored, and trusted as-is on every read; the read path never
// recomputes it against OriginalPrice and Percentage.
type Discount struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID    uuid.UUID       `gorm:"type:uuid;index;not null" json:"business_id"`
	ProductID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"product_id"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"original_price"`
	Percentage    decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentage"`
	FinalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"final_price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewDiscount is the only constructor; all write paths go through it so the
// percentage range and the stored final price are checked exactly once.
func NewDiscount(businessID, productID uuid.UUID, originalPrice, percentage decimal.Decimal) (*Discount, error) {
	if originalPrice.IsNegative() {
		return nil, fmt.Errorf("%w: precio original negativo", ErrValidation)
	}
	if percentage.IsNegative() || percentage.GreaterThan(hundred) {
		return nil, ErrInvalidDiscountPercentage
	}
	final := originalPrice.Mul(hundred.Sub(percentage)).Div(hundred).Round(2)
	return &Discount{
		ID:            uuid.New(),
		BusinessID:    businessID,
		ProductID:     productID,
		OriginalPrice: originalPrice,
		Percentage:    percentage,
		FinalPrice:    final,
	}, nil
}
