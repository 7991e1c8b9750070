package domain

import "github.com/shopspring/decimal"

type CartLine struct {
	Item     MenuItem
	Quantity int
}

func (l CartLine) Total() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals are derived from the cart lines and never stored.
type Totals struct {
	Subtotal   decimal.Decimal
	ServiceFee decimal.Decimal
	Total      decimal.Decimal
	ItemCount  int
}

// Cart keeps lines in first-added order with at most one line per item id.
// A line never has a quantity below 1.
type Cart struct {
	lines []CartLine
}

// NewCart builds a cart from stored lines. Lines with a quantity below 1 are
// dropped and repeated ids are merged into the first occurrence.
func NewCart(lines []CartLine) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.Quantity <= 0 || l.Item.ID == "" {
			continue
		}
		if i := c.index(l.Item.ID); i >= 0 {
			c.lines[i].Quantity += l.Quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

func (c *Cart) index(itemID string) int {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			return i
		}
	}
	return -1
}

// Add increments the line for item, appending a new line if needed.
func (c *Cart) Add(item MenuItem) {
	if i := c.index(item.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: 1})
}

// RemoveOne decrements the line, deleting it when the last unit goes.
func (c *Cart) RemoveOne(itemID string) bool {
	i := c.index(itemID)
	if i < 0 {
		return false
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
		return true
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

func (c *Cart) Delete(itemID string) bool {
	i := c.index(itemID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// SetQuantity sets the quantity of an existing line. A quantity of zero or
// less deletes it. Unknown ids are left alone since there is no item data to
// build a line from.
func (c *Cart) SetQuantity(itemID string, quantity int) bool {
	if quantity <= 0 {
		return c.Delete(itemID)
	}
	i := c.index(itemID)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity = quantity
	return true
}

func (c *Cart) QuantityOf(itemID string) int {
	if i := c.index(itemID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the lines in cart order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Totals computes subtotal, service fee and total. The fee is rounded to
// cents; a zero rate yields a zero fee.
func (c *Cart) Totals(feeRate decimal.Decimal) Totals {
	subtotal := c.Subtotal()
	fee := subtotal.Mul(feeRate).Round(2)
	return Totals{
		Subtotal:   subtotal,
		ServiceFee: fee,
		Total:      subtotal.Add(fee),
		ItemCount:  c.ItemCount(),
	}
}
