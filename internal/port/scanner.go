package port

import (
	"context"
	"errors"
)

var (
	ErrPermissionDenied = errors.New("scanner permission denied")
	ErrNoDevice         = errors.New("no scanner device")
	ErrDeviceBusy       = errors.New("scanner device in use")
)

// Scanner is a code-reading device. Decoding happens inside the device; the
// scanner hands over decoded text payloads.
type Scanner interface {
	// Start begins consuming the device and calls onResult for each decoded
	// payload until Stop is called or ctx is done. Start fails with one of
	// ErrPermissionDenied, ErrNoDevice, ErrDeviceBusy or another error.
	Start(ctx context.Context, onResult func(payload string)) error

	// Stop releases the device. Stopping an idle scanner is a no-op.
	Stop() error
}
