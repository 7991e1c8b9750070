package domain

import "github.com/shopspring/decimal"

// MenuItem is a catalog entry. Items are defined once and never mutated.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Image       string
	Vegetarian  bool
}
