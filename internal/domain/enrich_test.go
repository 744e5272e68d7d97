package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(price int64) Product {
	return Product{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Name:       "Café con leche",
		Price:      decimal.NewFromInt(price),
		Available:  true,
	}
}

func TestResolvePriceTrustsStoredFinalPrice(t *testing.T) {
	p := product(100)
	// FinalPrice deliberately does not match originalPrice*(1-pct/100):
	// reads must take the stored value as-is instead of re-deriving.
	d := Discount{
		ID:            uuid.New(),
		BusinessID:    p.BusinessID,
		ProductID:     p.ID,
		OriginalPrice: decimal.NewFromInt(100),
		Percentage:    decimal.NewFromInt(20),
		FinalPrice:    decimal.NewFromInt(75),
	}

	info := ResolvePrice(p, []Discount{d})

	assert.True(t, info.Price.Equal(decimal.NewFromInt(75)), "precio = %s", info.Price)
	require.NotNil(t, info.OriginalPrice)
	require.NotNil(t, info.DiscountPercentage)
	assert.True(t, info.OriginalPrice.Equal(decimal.NewFromInt(100)))
	assert.True(t, info.DiscountPercentage.Equal(decimal.NewFromInt(20)))
}

func TestResolvePriceWithoutMatch(t *testing.T) {
	p := product(100)
	other := Discount{ID: uuid.New(), ProductID: uuid.New(), FinalPrice: decimal.NewFromInt(1)}

	info := ResolvePrice(p, []Discount{other})

	assert.True(t, info.Price.Equal(p.Price))
	assert.Nil(t, info.OriginalPrice)
	assert.Nil(t, info.DiscountPercentage)
}

func TestResolvePriceFirstMatchWins(t *testing.T) {
	p := product(100)
	first := Discount{ID: uuid.New(), ProductID: p.ID, FinalPrice: decimal.NewFromInt(80)}
	second := Discount{ID: uuid.New(), ProductID: p.ID, FinalPrice: decimal.NewFromInt(60)}

	info := ResolvePrice(p, []Discount{first, second})

	assert.True(t, info.Price.Equal(decimal.NewFromInt(80)))
}

func TestResolveStockAbsentMeansUntracked(t *testing.T) {
	p := product(100)

	stock := ResolveStock(p, nil)
	assert.Nil(t, stock, "sin registro de inventario el stock debe quedar sin definir, no en cero")

	stock = ResolveStock(p, []Inventory{{ProductID: uuid.New(), Stock: 7}})
	assert.Nil(t, stock)
}

func TestResolveStockZeroIsTracked(t *testing.T) {
	p := product(100)

	stock := ResolveStock(p, []Inventory{{ProductID: p.ID, Stock: 0}})

	require.NotNil(t, stock)
	assert.Equal(t, 0, *stock)
}

func TestEnrichOverlaysBothDimensions(t *testing.T) {
	p := product(100)
	d := Discount{ID: uuid.New(), ProductID: p.ID, OriginalPrice: decimal.NewFromInt(100), Percentage: decimal.NewFromInt(10), FinalPrice: decimal.NewFromInt(90)}
	inv := Inventory{ID: uuid.New(), ProductID: p.ID, Stock: 4}

	ep := Enrich(p, []Discount{d}, []Inventory{inv})

	assert.True(t, ep.Price.Equal(decimal.NewFromInt(90)))
	require.NotNil(t, ep.OriginalPrice)
	assert.True(t, ep.OriginalPrice.Equal(decimal.NewFromInt(100)))
	require.NotNil(t, ep.Stock)
	assert.Equal(t, 4, *ep.Stock)
	assert.Equal(t, p.Name, ep.Name)
}
