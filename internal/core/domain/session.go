package domain

type SessionState string

const (
	SessionUnidentified SessionState = "unidentified"
	SessionIdentified   SessionState = "identified"
	SessionOrderPlaced  SessionState = "order_placed"
)

// Session is a point-in-time copy of the table session, safe to hand to transports.
type Session struct {
	State       SessionState
	TableID     string
	Lines       []CartLine
	Totals      Totals
	OrderPlaced bool
	LastReceipt *Receipt
}
