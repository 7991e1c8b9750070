package identify

import (
	"context"
	"sync"

	"github.com/rl1809/tableside/internal/port"
)

// CameraScan reports the first payload decoded by the scanner verbatim and
// then stops the scanner.
type CameraScan struct {
	scanner port.Scanner

	mu     sync.Mutex
	active chan struct{}
	finish func() bool
}

func NewCameraScan(scanner port.Scanner) *CameraScan {
	return &CameraScan{scanner: scanner}
}

func (c *CameraScan) Kind() Kind {
	return KindCameraScan
}

func (c *CameraScan) Activate(ctx context.Context, report ReportFunc) error {
	if c.scanner == nil {
		return &UnavailableError{Reason: ReasonNoDevice, Err: port.ErrNoDevice}
	}

	c.mu.Lock()
	if c.finish != nil {
		c.mu.Unlock()
		return ErrAlreadyActive
	}
	done := make(chan struct{})
	var once sync.Once
	// finish returns true only for the first caller: a result, ctx or Close.
	finish := func() bool {
		first := false
		once.Do(func() {
			first = true
			close(done)
		})
		return first
	}
	c.active = done
	c.finish = finish
	c.mu.Unlock()

	err := c.scanner.Start(ctx, func(payload string) {
		if finish() {
			report(payload)
		}
	})
	if err != nil {
		finish()
		c.release(done)
		return classify(err)
	}

	go func() {
		select {
		case <-done:
		case <-ctx.Done():
			finish()
		}
		c.stop(done)
	}()
	return nil
}

func (c *CameraScan) release(done chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == done {
		c.active = nil
		c.finish = nil
	}
}

// stop stops the scanner for the activation identified by done, unless that
// activation was already released and the scanner may belong to a newer one.
func (c *CameraScan) stop(done chan struct{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != done {
		return nil
	}
	c.active = nil
	c.finish = nil
	return c.scanner.Stop()
}

// Close stops an activation that has not reported yet.
func (c *CameraScan) Close() error {
	c.mu.Lock()
	done, finish := c.active, c.finish
	c.mu.Unlock()

	if finish == nil {
		return nil
	}
	finish()
	return c.stop(done)
}
