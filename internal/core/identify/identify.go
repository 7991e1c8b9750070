// Package identify resolves which table a session belongs to, either from a
// scanned code or from a number typed by the diner.
package identify

import (
	"context"
	"errors"
	"fmt"

	"github.com/rl1809/tableside/internal/port"
)

type Kind string

const (
	KindCameraScan  Kind = "camera_scan"
	KindManualEntry Kind = "manual_entry"
)

// ReportFunc receives the resolved table id.
type ReportFunc func(tableID string)

// Capability reports a table id at most once per activation. The caller
// closes it when it is no longer needed.
type Capability interface {
	Kind() Kind
	Activate(ctx context.Context, report ReportFunc) error
	Close() error
}

var ErrAlreadyActive = errors.New("capability already active")

type Reason string

const (
	ReasonPermissionDenied Reason = "permission_denied"
	ReasonNoDevice         Reason = "no_device"
	ReasonDeviceBusy       Reason = "device_busy"
	ReasonUnknown          Reason = "unknown"
)

// UnavailableError means the scanner could not be started. Callers fall
// back to manual entry.
type UnavailableError struct {
	Reason Reason
	Err    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("scanner unavailable (%s): %v", e.Reason, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Message is the text shown to the diner.
func (e *UnavailableError) Message() string {
	switch e.Reason {
	case ReasonPermissionDenied:
		return "Camera access was denied. Please enter your table number instead."
	case ReasonNoDevice:
		return "No camera was found on this device. Please enter your table number instead."
	case ReasonDeviceBusy:
		return "The camera is in use by another application. Please enter your table number instead."
	default:
		return "Camera access denied or not available"
	}
}

func classify(err error) *UnavailableError {
	switch {
	case errors.Is(err, port.ErrPermissionDenied):
		return &UnavailableError{Reason: ReasonPermissionDenied, Err: err}
	case errors.Is(err, port.ErrNoDevice):
		return &UnavailableError{Reason: ReasonNoDevice, Err: err}
	case errors.Is(err, port.ErrDeviceBusy):
		return &UnavailableError{Reason: ReasonDeviceBusy, Err: err}
	default:
		return &UnavailableError{Reason: ReasonUnknown, Err: err}
	}
}

// NeedsManualEntry reports whether err should send the diner to manual entry.
func NeedsManualEntry(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}

// Await activates c and blocks until it reports or ctx is done. c is closed
// before Await returns.
func Await(ctx context.Context, c Capability) (string, error) {
	result := make(chan string, 1)
	if err := c.Activate(ctx, func(tableID string) { result <- tableID }); err != nil {
		return "", err
	}
	defer c.Close()

	select {
	case tableID := <-result:
		return tableID, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
