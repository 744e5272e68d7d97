package domain

import "errors"

var (
	// ErrNotFound is returned when a record does not exist in the store.
	ErrNotFound = errors.New("registro no encontrado")

	// ErrCatalogUnavailable is returned when the base product fetch fails.
	// Discount/inventory fetch failures never produce it.
	ErrCatalogUnavailable = errors.New("catálogo no disponible")

	// ErrInvalidDiscountPercentage rejects percentages outside [0,100] at write time.
	ErrInvalidDiscountPercentage = errors.New("porcentaje de descuento fuera de rango (0-100)")

	// ErrValidation wraps field-level validation failures rejected before any write.
	ErrValidation = errors.New("datos inválidos")

	// ErrConflict maps duplicate-key writes. Setup/seed flows treat it as already satisfied.
	ErrConflict = errors.New("registro duplicado")
)
