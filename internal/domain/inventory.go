package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Inventory tracks stock for one product. The absence of a record means the
// product is untracked, which is not the same as stock zero.
type Inventory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null" json:"business_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Stock      int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (i *Inventory) Validate() error {
	if i.Stock < 0 {
		return fmt.Errorf("%w: stock negativo", ErrValidation)
	}
	return nil
}
