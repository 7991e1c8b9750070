package handler

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/rl1809/tableside/internal/adapter/handler/tableapi"
	"github.com/rl1809/tableside/internal/core/domain"
)

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func toMenuItem(it domain.MenuItem, quantity int) tableapi.MenuItem {
	return tableapi.MenuItem{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       money(it.Price),
		Category:    it.Category,
		Image:       it.Image,
		Vegetarian:  it.Vegetarian,
		Quantity:    quantity,
	}
}

func toLines(lines []domain.CartLine) []tableapi.Line {
	out := make([]tableapi.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, tableapi.Line{
			Item:      toMenuItem(l.Item, l.Quantity),
			Quantity:  l.Quantity,
			LineTotal: money(l.Total()),
		})
	}
	return out
}

func toTotals(t domain.Totals) tableapi.Totals {
	return tableapi.Totals{
		Subtotal:   money(t.Subtotal),
		ServiceFee: money(t.ServiceFee),
		Total:      money(t.Total),
		ItemCount:  t.ItemCount,
	}
}

func toReceipt(r domain.Receipt) tableapi.Receipt {
	return tableapi.Receipt{
		ID:       r.ID,
		TableID:  r.TableID,
		Lines:    toLines(r.Lines),
		Totals:   toTotals(r.Totals),
		PlacedAt: r.PlacedAt,
	}
}

func toSession(s domain.Session) tableapi.Session {
	view := tableapi.Session{
		State:       string(s.State),
		TableID:     s.TableID,
		Lines:       toLines(s.Lines),
		Totals:      toTotals(s.Totals),
		OrderPlaced: s.OrderPlaced,
		CanCheckout: len(s.Lines) > 0,
	}
	if s.LastReceipt != nil {
		r := toReceipt(*s.LastReceipt)
		view.LastReceipt = &r
	}
	return view
}
