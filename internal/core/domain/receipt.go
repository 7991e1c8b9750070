package domain

import "time"

// Receipt is the confirmation produced by a checkout.
type Receipt struct {
	ID       string
	TableID  string
	Lines    []CartLine
	Totals   Totals
	PlacedAt time.Time
}
