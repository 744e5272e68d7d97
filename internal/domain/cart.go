package domain

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is a snapshot of an enriched product plus a quantity. The unit
// price is whatever the enrichment pipeline resolved at add time.
type CartItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Qty       int             `json:"qty"`
}

func (it CartItem) LineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Qty)))
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Cart holds the ordered, product-unique item list for one session. It is the
// only mutable shared state in the core; the mutex keeps each mutation atomic
// should the owning session ever run handlers in parallel. One instance per
// session, rebuilt from the signed cart cookie on each request, never stored
// server-side.
type Cart struct {
	mu    sync.Mutex
	items []CartItem
	open  bool
}

func NewCart() *Cart { return &Cart{} }

// RestoreCart rebuilds a cart from persisted items, dropping entries that
// were corrupted into nonsense quantities.
func RestoreCart(items []CartItem) *Cart {
	c := &Cart{}
	for _, it := range items {
		if it.Qty < 1 {
			continue
		}
		c.items = append(c.items, it)
	}
	return c
}

// AddItem appends the product or, if already present, bumps its quantity.
// Insertion order is preserved. Adding also flips the "open" flag, which is a
// presentation signal only; no other mutation touches it.
func (c *Cart) AddItem(p EnrichedProduct, qty int) {
	if qty < 1 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Qty += qty
			return
		}
	}
	c.items = append(c.items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Qty:       qty,
	})
}

// UpdateQuantity replaces the stored quantity. Zero or negative removes the
// item. No upper bound: stock limits are a collaborator's concern.
func (c *Cart) UpdateQuantity(productID uuid.UUID, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Qty = qty
			return
		}
	}
}

// RemoveItem deletes the entry; no-op when absent.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.open = false
}

// Items returns a copy in insertion order.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// IsOpen reports whether the last mutation should pop the cart panel open.
func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Totals computes subtotal, tax, shipping and grand total. The tax rate goes
// through NormalizeTaxRate so both stored conventions (0.19 and 19) yield the
// same tax. Shipping is the flat configured cost, or zero when unset.
func (c *Cart) Totals(taxRate, shippingCost decimal.Decimal) Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	subtotal := decimal.Zero
	for _, it := range c.items {
		subtotal = subtotal.Add(it.LineTotal())
	}
	tax := subtotal.Mul(NormalizeTaxRate(taxRate))
	shipping := decimal.Zero
	if shippingCost.IsPositive() {
		shipping = shippingCost
	}
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}

// OrderMessage formats the cart as the WhatsApp order text: one bullet line
// per item, then the cost breakdown. Tax and shipping lines appear only when
// positive; the total is bold per WhatsApp markup.
func (c *Cart) OrderMessage(businessName string, taxRate, shippingCost decimal.Decimal) string {
	totals := c.Totals(taxRate, shippingCost)
	items := c.Items()

	var b strings.Builder
	fmt.Fprintf(&b, "Hola! Quiero hacer un pedido en %s:\n\n", businessName)
	for _, it := range items {
		fmt.Fprintf(&b, "• %dx %s ($%s)\n", it.Qty, it.Name, FormatAmount(it.LineTotal()))
	}
	fmt.Fprintf(&b, "\nSubtotal: $%s\n", FormatAmount(totals.Subtotal))
	if totals.Tax.IsPositive() {
		fmt.Fprintf(&b, "Impuestos: $%s\n", FormatAmount(totals.Tax))
	}
	if totals.Shipping.IsPositive() {
		fmt.Fprintf(&b, "Envío: $%s\n", FormatAmount(totals.Shipping))
	}
	fmt.Fprintf(&b, "*Total: $%s*", FormatAmount(totals.Total))
	return b.String()
}

// FormatAmount prints whole amounts without decimals and everything else with
// two, so "$10" and "$47.50" both read naturally in the order message.
func FormatAmount(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return d.StringFixed(2)
}
