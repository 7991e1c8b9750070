package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rl1809/tableside/internal/core/domain"
	"github.com/rl1809/tableside/internal/port"
)

const (
	DefaultResetDelay    = 5 * time.Second
	defaultReceiptBuffer = 16
	persistTimeout       = 5 * time.Second
)

var DefaultServiceFeeRate = decimal.New(10, -2)

var (
	ErrEmptyTableID  = errors.New("empty table id")
	ErrSessionClosed = errors.New("session closed")
	ErrEmptyCart     = errors.New("cart is empty")
)

type Option func(*SessionService)

// WithResetDelay sets how long a placed order stays on display before the
// cart is cleared.
func WithResetDelay(d time.Duration) Option {
	return func(s *SessionService) { s.resetDelay = d }
}

// WithServiceFeeRate sets the fee applied on top of the subtotal. Zero disables it.
func WithServiceFeeRate(rate decimal.Decimal) Option {
	return func(s *SessionService) { s.feeRate = rate }
}

func WithReceiptBuffer(n int) Option {
	return func(s *SessionService) { s.receiptBuffer = n }
}

// SessionService owns the single table session of this kiosk. Every mutation
// is written through to the store before the call returns.
type SessionService struct {
	store         port.KeyValueStore
	resetDelay    time.Duration
	feeRate       decimal.Decimal
	receiptBuffer int

	mu          sync.Mutex
	tableID     string
	cart        *domain.Cart
	orderPlaced bool
	cartChanged bool // since the last checkout
	lastReceipt *domain.Receipt
	resetTimer  *time.Timer
	resetGen    uint64
	closed      bool

	receipts chan domain.Receipt
}

func NewSessionService(store port.KeyValueStore, opts ...Option) *SessionService {
	s := &SessionService{
		store:         store,
		resetDelay:    DefaultResetDelay,
		feeRate:       DefaultServiceFeeRate,
		receiptBuffer: defaultReceiptBuffer,
		cart:          domain.NewCart(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.receipts = make(chan domain.Receipt, s.receiptBuffer)
	return s
}

// Restore loads the table id and cart written by a previous run. A cart that
// cannot be decoded is logged and replaced by an empty one.
func (s *SessionService) Restore(ctx context.Context) error {
	tableID, _, err := s.store.Get(ctx, tableKey)
	if err != nil {
		return fmt.Errorf("restore table: %w", err)
	}

	raw, ok, err := s.store.Get(ctx, cartKey)
	if err != nil {
		return fmt.Errorf("restore cart: %w", err)
	}

	var lines []domain.CartLine
	if ok && raw != "" {
		lines, err = decodeCart(raw)
		if err != nil {
			log.Printf("session: discarding stored cart: %v", err)
			lines = nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tableID = tableID
	s.cart = domain.NewCart(lines)
	return nil
}

func (s *SessionService) Identify(ctx context.Context, tableID string) error {
	if strings.TrimSpace(tableID) == "" {
		return ErrEmptyTableID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tableID = tableID
	if err := s.store.Set(ctx, tableKey, tableID); err != nil {
		return fmt.Errorf("persist table: %w", err)
	}
	return nil
}

// ClearIdentity forgets the table. The cart is left as it is.
func (s *SessionService) ClearIdentity(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tableID = ""
	if err := s.store.Delete(ctx, tableKey); err != nil {
		return fmt.Errorf("remove table: %w", err)
	}
	return nil
}

func (s *SessionService) AddItem(ctx context.Context, item domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(item)
	return s.persistCartLocked(ctx)
}

func (s *SessionService) RemoveOneUnit(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.RemoveOne(itemID)
	return s.persistCartLocked(ctx)
}

func (s *SessionService) DeleteItem(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Delete(itemID)
	return s.persistCartLocked(ctx)
}

// SetQuantity sets the quantity of a line already in the cart; quantity <= 0
// deletes it. Ids not in the cart are ignored.
func (s *SessionService) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.SetQuantity(itemID, quantity)
	return s.persistCartLocked(ctx)
}

func (s *SessionService) QuantityOf(itemID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.QuantityOf(itemID)
}

func (s *SessionService) CanCheckout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.cart.IsEmpty()
}

// Checkout marks the order as placed and schedules the cart reset. Calling it
// again before the reset fires replaces the pending reset; if the cart has not
// changed since, the placed receipt is returned again rather than a new one.
func (s *SessionService) Checkout(ctx context.Context) (domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.Receipt{}, ErrSessionClosed
	}
	if s.cart.IsEmpty() {
		return domain.Receipt{}, ErrEmptyCart
	}
	if s.orderPlaced && !s.cartChanged && s.lastReceipt != nil {
		s.scheduleResetLocked()
		return *s.lastReceipt, nil
	}

	receipt := domain.Receipt{
		ID:       uuid.New().String(),
		TableID:  s.tableID,
		Lines:    s.cart.Lines(),
		Totals:   s.cart.Totals(s.feeRate),
		PlacedAt: time.Now(),
	}
	s.orderPlaced = true
	s.cartChanged = false
	s.lastReceipt = &receipt
	s.scheduleResetLocked()

	select {
	case s.receipts <- receipt:
	default:
		log.Printf("session: receipt queue full, dropping receipt %s", receipt.ID)
	}

	return receipt, nil
}

func (s *SessionService) scheduleResetLocked() {
	if s.resetTimer != nil {
		s.resetTimer.Stop()
	}
	s.resetGen++
	gen := s.resetGen
	s.resetTimer = time.AfterFunc(s.resetDelay, func() {
		s.finishOrder(gen)
	})
}

// finishOrder runs when the reset timer fires. A stale generation means the
// timer was replaced or cancelled after it had already started.
func (s *SessionService) finishOrder(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.resetGen {
		return
	}

	s.resetTimer = nil
	s.orderPlaced = false
	s.cart.Clear()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.persistCartLocked(ctx); err != nil {
		log.Printf("session: failed to persist cleared cart: %v", err)
	}
}

func (s *SessionService) persistCartLocked(ctx context.Context) error {
	s.cartChanged = true
	raw, err := encodeCart(s.cart.Lines())
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, cartKey, raw); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current session with freshly computed totals.
func (s *SessionService) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := domain.SessionIdentified
	switch {
	case s.orderPlaced:
		state = domain.SessionOrderPlaced
	case s.tableID == "":
		state = domain.SessionUnidentified
	}

	var last *domain.Receipt
	if s.lastReceipt != nil {
		r := *s.lastReceipt
		last = &r
	}

	return domain.Session{
		State:       state,
		TableID:     s.tableID,
		Lines:       s.cart.Lines(),
		Totals:      s.cart.Totals(s.feeRate),
		OrderPlaced: s.orderPlaced,
		LastReceipt: last,
	}
}

// Receipts delivers a receipt for every checkout. The channel is closed by Close.
func (s *SessionService) Receipts() <-chan domain.Receipt {
	return s.receipts
}

// Close cancels a pending cart reset and closes the receipt channel. The
// persisted state is left as last written.
func (s *SessionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.resetGen++
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
	close(s.receipts)
}
