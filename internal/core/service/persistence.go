package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/tableside/internal/core/domain"
	"github.com/rl1809/tableside/internal/port"
)

const (
	tableKey         = "tableNumber"
	cartKey          = "cart"
	receiptKeyPrefix = "receipt:"
)

var errMissingPrice = errors.New("missing price")

// storedLine is the persisted shape of a cart line: the menu item fields
// flattened next to the quantity.
type storedLine struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Category    string      `json:"category"`
	Vegetarian  bool        `json:"vegetarian,omitempty"`
	Image       string      `json:"image,omitempty"`
	Quantity    int         `json:"quantity"`
}

func toStoredLines(lines []domain.CartLine) []storedLine {
	out := make([]storedLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, storedLine{
			ID:          l.Item.ID,
			Name:        l.Item.Name,
			Description: l.Item.Description,
			Price:       json.Number(l.Item.Price.StringFixed(2)),
			Category:    l.Item.Category,
			Vegetarian:  l.Item.Vegetarian,
			Image:       l.Item.Image,
			Quantity:    l.Quantity,
		})
	}
	return out
}

func fromStoredLines(stored []storedLine) ([]domain.CartLine, error) {
	lines := make([]domain.CartLine, 0, len(stored))
	for _, s := range stored {
		if s.Price == "" {
			return nil, fmt.Errorf("line %s: %w", s.ID, errMissingPrice)
		}
		price, err := decimal.NewFromString(s.Price.String())
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", s.ID, err)
		}
		lines = append(lines, domain.CartLine{
			Item: domain.MenuItem{
				ID:          s.ID,
				Name:        s.Name,
				Description: s.Description,
				Price:       price,
				Category:    s.Category,
				Vegetarian:  s.Vegetarian,
				Image:       s.Image,
			},
			Quantity: s.Quantity,
		})
	}
	return lines, nil
}

func encodeCart(lines []domain.CartLine) (string, error) {
	b, err := json.Marshal(toStoredLines(lines))
	if err != nil {
		return "", fmt.Errorf("marshal cart: %w", err)
	}
	return string(b), nil
}

func decodeCart(raw string) ([]domain.CartLine, error) {
	var stored []storedLine
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return fromStoredLines(stored)
}

type storedReceipt struct {
	ID         string       `json:"id"`
	TableID    string       `json:"table_id"`
	Lines      []storedLine `json:"lines"`
	Subtotal   json.Number  `json:"subtotal"`
	ServiceFee json.Number  `json:"service_fee"`
	Total      json.Number  `json:"total"`
	ItemCount  int          `json:"item_count"`
	PlacedAt   time.Time    `json:"placed_at"`
}

// ReceiptJournal writes placed-order receipts to the key-value store under
// receipt:<id>.
type ReceiptJournal struct {
	store port.KeyValueStore
}

func NewReceiptJournal(store port.KeyValueStore) *ReceiptJournal {
	return &ReceiptJournal{store: store}
}

func (j *ReceiptJournal) Record(ctx context.Context, r domain.Receipt) error {
	b, err := json.Marshal(storedReceipt{
		ID:         r.ID,
		TableID:    r.TableID,
		Lines:      toStoredLines(r.Lines),
		Subtotal:   json.Number(r.Totals.Subtotal.StringFixed(2)),
		ServiceFee: json.Number(r.Totals.ServiceFee.StringFixed(2)),
		Total:      json.Number(r.Totals.Total.StringFixed(2)),
		ItemCount:  r.Totals.ItemCount,
		PlacedAt:   r.PlacedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal receipt: %w", err)
	}

	if err := j.store.Set(ctx, receiptKeyPrefix+r.ID, string(b)); err != nil {
		return fmt.Errorf("save receipt %s: %w", r.ID, err)
	}
	return nil
}

// Lookup reads a journaled receipt back.
func (j *ReceiptJournal) Lookup(ctx context.Context, id string) (*domain.Receipt, error) {
	raw, ok, err := j.store.Get(ctx, receiptKeyPrefix+id)
	if err != nil {
		return nil, fmt.Errorf("load receipt %s: %w", id, err)
	}
	if !ok {
		return nil, nil
	}

	var sr storedReceipt
	if err := json.Unmarshal([]byte(raw), &sr); err != nil {
		return nil, fmt.Errorf("unmarshal receipt %s: %w", id, err)
	}
	lines, err := fromStoredLines(sr.Lines)
	if err != nil {
		return nil, fmt.Errorf("receipt %s: %w", id, err)
	}

	var amounts [3]decimal.Decimal
	for i, n := range []json.Number{sr.Subtotal, sr.ServiceFee, sr.Total} {
		amounts[i], err = decimal.NewFromString(n.String())
		if err != nil {
			return nil, fmt.Errorf("receipt %s: %w", id, err)
		}
	}

	return &domain.Receipt{
		ID:      sr.ID,
		TableID: sr.TableID,
		Lines:   lines,
		Totals: domain.Totals{
			Subtotal:   amounts[0],
			ServiceFee: amounts[1],
			Total:      amounts[2],
			ItemCount:  sr.ItemCount,
		},
		PlacedAt: sr.PlacedAt,
	}, nil
}
