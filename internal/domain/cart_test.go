package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enriched(name string, price int64) EnrichedProduct {
	return EnrichedProduct{Product: Product{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.NewFromInt(price),
	}}
}

func TestAddItemMergesByProduct(t *testing.T) {
	c := NewCart()
	p := enriched("Pizza", 100)

	c.AddItem(p, 1)
	c.AddItem(p, 1)

	items := c.Items()
	require.Len(t, items, 1, "agregar dos veces el mismo producto no duplica la línea")
	assert.Equal(t, 2, items[0].Qty)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	c := NewCart()
	a, b, d := enriched("A", 10), enriched("B", 20), enriched("C", 30)

	c.AddItem(a, 1)
	c.AddItem(b, 1)
	c.AddItem(d, 1)
	c.UpdateQuantity(a.ID, 5)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Name)
	assert.Equal(t, 5, items[0].Qty)
	assert.Equal(t, "B", items[1].Name)
	assert.Equal(t, "C", items[2].Name)
}

func TestAddItemCoercesQuantityFloor(t *testing.T) {
	c := NewCart()
	c.AddItem(enriched("Pizza", 100), 0)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Qty)
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -5} {
		c := NewCart()
		p := enriched("Pizza", 100)
		c.AddItem(p, 3)

		c.UpdateQuantity(p.ID, qty)

		assert.Equal(t, 0, c.Len(), "qty=%d debe eliminar la línea", qty)
	}
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	c := NewCart()
	c.AddItem(enriched("Pizza", 100), 1)

	c.RemoveItem(uuid.New())

	assert.Equal(t, 1, c.Len())
}

func TestOpenFlagOnlySetByAdd(t *testing.T) {
	c := NewCart()
	assert.False(t, c.IsOpen())

	p := enriched("Pizza", 100)
	c.AddItem(p, 1)
	assert.True(t, c.IsOpen())

	c.Clear()
	assert.False(t, c.IsOpen())

	c2 := RestoreCart([]CartItem{{ProductID: p.ID, Name: p.Name, UnitPrice: p.Price, Qty: 1}})
	c2.UpdateQuantity(p.ID, 4)
	c2.RemoveItem(p.ID)
	assert.False(t, c2.IsOpen(), "update/remove no abren el panel del carrito")
}

func TestTotalsWorkedExample(t *testing.T) {
	c := NewCart()
	c.AddItem(enriched("A", 100), 2)
	c.AddItem(enriched("B", 50), 1)

	got := c.Totals(decimal.NewFromInt(19), decimal.NewFromInt(10))

	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal = %s", got.Subtotal)
	assert.True(t, got.Tax.Equal(decimal.NewFromFloat(47.5)), "tax = %s", got.Tax)
	assert.True(t, got.Shipping.Equal(decimal.NewFromInt(10)))
	assert.True(t, got.Total.Equal(decimal.NewFromFloat(307.5)), "total = %s", got.Total)
}

func TestTaxRateDualConvention(t *testing.T) {
	// 19 (whole percentage) and 0.19 (fraction) are the same stored rate.
	build := func() *Cart {
		c := NewCart()
		c.AddItem(enriched("A", 100), 2)
		return c
	}
	whole := build().Totals(decimal.NewFromInt(19), decimal.Zero)
	fraction := build().Totals(decimal.NewFromFloat(0.19), decimal.Zero)

	assert.True(t, whole.Tax.Equal(fraction.Tax), "%s != %s", whole.Tax, fraction.Tax)
	assert.True(t, whole.Total.Equal(fraction.Total))
}

func TestTotalsWithoutShippingOrTax(t *testing.T) {
	c := NewCart()
	c.AddItem(enriched("A", 100), 1)

	got := c.Totals(decimal.Zero, decimal.Zero)

	assert.True(t, got.Tax.IsZero())
	assert.True(t, got.Shipping.IsZero())
	assert.True(t, got.Total.Equal(decimal.NewFromInt(100)))
}

func TestTotalsShippingIsUnconditionalFlatCost(t *testing.T) {
	// The configured cost applies as-is; there is no minimum line count.
	c := NewCart()

	got := c.Totals(decimal.Zero, decimal.NewFromInt(10))

	assert.True(t, got.Shipping.Equal(decimal.NewFromInt(10)))
	assert.True(t, got.Total.Equal(decimal.NewFromInt(10)))
}

func TestOrderMessageFormat(t *testing.T) {
	c := NewCart()
	c.AddItem(enriched("Hamburguesa", 100), 2)
	c.AddItem(enriched("Papas", 50), 1)

	msg := c.OrderMessage("La Esquina", decimal.NewFromInt(19), decimal.NewFromInt(10))

	assert.Contains(t, msg, "La Esquina")
	assert.Contains(t, msg, "• 2x Hamburguesa ($200)")
	assert.Contains(t, msg, "• 1x Papas ($50)")
	assert.Contains(t, msg, "Subtotal: $250")
	assert.Contains(t, msg, "Impuestos: $47.50")
	assert.Contains(t, msg, "Envío: $10")
	assert.True(t, strings.HasSuffix(msg, "*Total: $307.50*"), "el total va en negrita al final: %q", msg)
}

func TestOrderMessageOmitsZeroLines(t *testing.T) {
	c := NewCart()
	c.AddItem(enriched("Papas", 50), 1)

	msg := c.OrderMessage("La Esquina", decimal.Zero, decimal.Zero)

	assert.NotContains(t, msg, "Impuestos")
	assert.NotContains(t, msg, "Envío")
	assert.Contains(t, msg, "*Total: $50*")
}

func TestRestoreCartDropsBrokenQuantities(t *testing.T) {
	id := uuid.New()
	c := RestoreCart([]CartItem{
		{ProductID: id, Name: "ok", UnitPrice: decimal.NewFromInt(10), Qty: 2},
		{ProductID: uuid.New(), Name: "roto", UnitPrice: decimal.NewFromInt(10), Qty: 0},
	})

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ProductID)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "10", FormatAmount(decimal.NewFromInt(10)))
	assert.Equal(t, "47.50", FormatAmount(decimal.NewFromFloat(47.5)))
	assert.Equal(t, "0", FormatAmount(decimal.Zero))
}
