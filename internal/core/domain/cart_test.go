package domain

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func item(id, price string) MenuItem {
	return MenuItem{ID: id, Name: id, Price: decimal.RequireFromString(price), Category: "Test"}
}

func TestCart_AddTwiceMergesLine(t *testing.T) {
	c := NewCart(nil)
	pizza := item("pizza-1", "11.00")

	c.Add(pizza)
	c.Add(pizza)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", lines[0].Quantity)
	}
	if !c.Subtotal().Equal(decimal.RequireFromString("22.00")) {
		t.Errorf("expected subtotal 22.00, got %s", c.Subtotal())
	}
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	c := NewCart([]CartLine{{Item: item("dolci-1", "7.50"), Quantity: 1}})

	c.SetQuantity("dolci-1", 0)

	if !c.IsEmpty() {
		t.Errorf("expected empty cart, got %d lines", len(c.Lines()))
	}
}

func TestCart_SetQuantityUnknownIsNoop(t *testing.T) {
	c := NewCart(nil)

	if c.SetQuantity("ghost", 3) {
		t.Error("expected no change for unknown id")
	}
	if !c.IsEmpty() {
		t.Error("expected cart to stay empty")
	}
}

func TestCart_AddThenRemoveRestoresState(t *testing.T) {
	a := item("a", "1.00")
	b := item("b", "2.50")
	c := NewCart([]CartLine{{Item: a, Quantity: 2}, {Item: b, Quantity: 1}})
	before := c.Lines()

	for _, it := range []MenuItem{a, b, item("c", "3.00")} {
		c.Add(it)
		c.RemoveOne(it.ID)

		after := c.Lines()
		if len(after) != len(before) {
			t.Fatalf("after %s: expected %d lines, got %d", it.ID, len(before), len(after))
		}
		for i := range before {
			if after[i].Item.ID != before[i].Item.ID || after[i].Quantity != before[i].Quantity {
				t.Errorf("after %s: line %d = %s x%d, want %s x%d", it.ID, i,
					after[i].Item.ID, after[i].Quantity, before[i].Item.ID, before[i].Quantity)
			}
		}
	}
}

func TestCart_QuantityOf(t *testing.T) {
	c := NewCart(nil)
	c.Add(item("a", "1.00"))

	if q := c.QuantityOf("never"); q != 0 {
		t.Errorf("expected 0 for unknown id, got %d", q)
	}
	if q := c.QuantityOf("a"); q != 1 {
		t.Errorf("expected 1, got %d", q)
	}

	c.RemoveOne("a")
	if q := c.QuantityOf("a"); q != 0 {
		t.Errorf("expected 0 after removal, got %d", q)
	}
}

func TestCart_DeleteIgnoresQuantity(t *testing.T) {
	c := NewCart([]CartLine{{Item: item("a", "1.00"), Quantity: 7}})

	if !c.Delete("a") {
		t.Fatal("expected delete to report a change")
	}
	if c.Delete("a") {
		t.Error("expected second delete to be a no-op")
	}
	if !c.IsEmpty() {
		t.Error("expected empty cart")
	}
}

func TestCart_InsertionOrderKept(t *testing.T) {
	c := NewCart(nil)
	for _, id := range []string{"c", "a", "b", "a"} {
		c.Add(item(id, "1.00"))
	}

	want := []string{"c", "a", "b"}
	got := c.Lines()
	for i, id := range want {
		if got[i].Item.ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].Item.ID)
		}
	}
}

func TestNewCart_NormalizesStoredLines(t *testing.T) {
	c := NewCart([]CartLine{
		{Item: item("a", "1.00"), Quantity: 1},
		{Item: item("b", "1.00"), Quantity: 0},
		{Item: item("a", "1.00"), Quantity: 2},
		{Item: item("c", "1.00"), Quantity: -4},
	})

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Errorf("expected merged quantity 3, got %d", lines[0].Quantity)
	}
}

func TestCart_Totals(t *testing.T) {
	c := NewCart([]CartLine{
		{Item: item("a", "8.50"), Quantity: 2},
		{Item: item("b", "2.50"), Quantity: 3},
	})

	tot := c.Totals(decimal.RequireFromString("0.10"))

	if !tot.Subtotal.Equal(decimal.RequireFromString("24.50")) {
		t.Errorf("subtotal: got %s", tot.Subtotal)
	}
	if !tot.ServiceFee.Equal(decimal.RequireFromString("2.45")) {
		t.Errorf("service fee: got %s", tot.ServiceFee)
	}
	if !tot.Total.Equal(decimal.RequireFromString("26.95")) {
		t.Errorf("total: got %s", tot.Total)
	}
	if tot.ItemCount != 5 {
		t.Errorf("item count: got %d", tot.ItemCount)
	}

	noFee := c.Totals(decimal.Zero)
	if !noFee.Total.Equal(noFee.Subtotal) {
		t.Errorf("expected total == subtotal with zero fee, got %s vs %s", noFee.Total, noFee.Subtotal)
	}
}

func TestCart_RandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	items := []MenuItem{item("a", "1.25"), item("b", "3.00"), item("c", "0.99"), item("d", "12.00")}
	c := NewCart(nil)

	for step := 0; step < 2000; step++ {
		it := items[rng.Intn(len(items))]
		switch rng.Intn(4) {
		case 0:
			c.Add(it)
		case 1:
			c.RemoveOne(it.ID)
		case 2:
			c.Delete(it.ID)
		case 3:
			c.SetQuantity(it.ID, rng.Intn(6)-2)
		}

		seen := make(map[string]bool)
		expected := decimal.Zero
		for _, l := range c.Lines() {
			if l.Quantity <= 0 {
				t.Fatalf("step %d: line %s has quantity %d", step, l.Item.ID, l.Quantity)
			}
			if seen[l.Item.ID] {
				t.Fatalf("step %d: duplicate line %s", step, l.Item.ID)
			}
			seen[l.Item.ID] = true
			expected = expected.Add(l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		if !c.Subtotal().Equal(expected) {
			t.Fatalf("step %d: subtotal %s, expected %s", step, c.Subtotal(), expected)
		}
	}
}
