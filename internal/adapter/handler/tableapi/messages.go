package tableapi

import (
	"encoding/json"
	"time"
)

// Money amounts are JSON numbers with two decimals, e.g. 11.00.

type Empty struct{}

type MenuItem struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Category    string      `json:"category"`
	Image       string      `json:"image,omitempty"`
	Vegetarian  bool        `json:"vegetarian,omitempty"`
	Quantity    int         `json:"quantity"`
}

type Line struct {
	Item      MenuItem    `json:"item"`
	Quantity  int         `json:"quantity"`
	LineTotal json.Number `json:"line_total"`
}

type Totals struct {
	Subtotal   json.Number `json:"subtotal"`
	ServiceFee json.Number `json:"service_fee"`
	Total      json.Number `json:"total"`
	ItemCount  int         `json:"item_count"`
}

type Receipt struct {
	ID       string    `json:"id"`
	TableID  string    `json:"table_id"`
	Lines    []Line    `json:"lines"`
	Totals   Totals    `json:"totals"`
	PlacedAt time.Time `json:"placed_at"`
}

type Session struct {
	State       string   `json:"state"`
	TableID     string   `json:"table_id,omitempty"`
	Lines       []Line   `json:"lines"`
	Totals      Totals   `json:"totals"`
	OrderPlaced bool     `json:"order_placed"`
	CanCheckout bool     `json:"can_checkout"`
	LastReceipt *Receipt `json:"last_receipt,omitempty"`
}

const (
	MethodManual = "manual"
	MethodScan   = "scan"
)

type IdentifyRequest struct {
	Method string `json:"method"`
	Number string `json:"number,omitempty"`
}

type ListItemsRequest struct {
	Category string `json:"category"`
}

type ItemRequest struct {
	ItemID string `json:"item_id"`
}

type SetQuantityRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type CategoriesReply struct {
	Categories []string `json:"categories"`
}

type ItemsReply struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}

type CheckoutReply struct {
	Receipt Receipt `json:"receipt"`
	Session Session `json:"session"`
}
