package export

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lautarovg/cartaviva/internal/domain"
)

func TestCatalogWorkbook(t *testing.T) {
	b := &domain.Business{ID: uuid.New(), Name: "La Esquina", Slug: "la-esquina"}
	stock := 5
	orig := decimal.NewFromInt(100)
	pct := decimal.NewFromInt(10)
	items := []domain.EnrichedProduct{
		{
			Product:            domain.Product{Name: "Milanesa", Price: decimal.NewFromInt(90), Available: true},
			OriginalPrice:      &orig,
			DiscountPercentage: &pct,
			Stock:              &stock,
		},
		{
			Product: domain.Product{Name: "Flan", Price: decimal.NewFromInt(40), Available: true},
		},
	}

	f, err := CatalogWorkbook(b, items)
	require.NoError(t, err)

	get := func(cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Producto", get("A1"))
	assert.Equal(t, "Stock", get("F1"))

	assert.Equal(t, "Milanesa", get("A2"))
	assert.Equal(t, "90", get("C2"))
	assert.Equal(t, "100", get("D2"))
	assert.Equal(t, "5", get("F2"))

	assert.Equal(t, "Flan", get("A3"))
	assert.Empty(t, get("D3"), "sin promoción la celda queda vacía")
	assert.Empty(t, get("F3"), "stock sin seguimiento queda en blanco, nunca 0")
}
