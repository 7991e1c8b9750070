package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
	"sync"
	"syscall"

	"github.com/rl1809/tableside/internal/port"
)

// DeviceScanner reads decoded codes from a line-oriented reader device, such
// as a QR reader exposed as /dev/hidraw* or a serial port. Each non-empty
// line is one payload.
type DeviceScanner struct {
	path string
	open func(path string) (io.ReadCloser, error)

	mu     sync.Mutex
	device io.ReadCloser
}

func NewDeviceScanner(path string) *DeviceScanner {
	return &DeviceScanner{
		path: path,
		open: func(path string) (io.ReadCloser, error) { return os.Open(path) },
	}
}

func (d *DeviceScanner) Start(ctx context.Context, onResult func(payload string)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.device != nil {
		return port.ErrDeviceBusy
	}
	if d.path == "" {
		return port.ErrNoDevice
	}

	device, err := d.open(d.path)
	if err != nil {
		return classifyOpenError(d.path, err)
	}
	d.device = device

	stop := context.AfterFunc(ctx, func() { d.release(device) })
	go func() {
		defer stop()
		defer d.release(device)
		d.readLoop(device, onResult)
	}()

	return nil
}

func classifyOpenError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("open %s: %w", path, port.ErrPermissionDenied)
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("open %s: %w", path, port.ErrNoDevice)
	case errors.Is(err, syscall.EBUSY):
		return fmt.Errorf("open %s: %w", path, port.ErrDeviceBusy)
	default:
		return fmt.Errorf("open %s: %w", path, err)
	}
}

func (d *DeviceScanner) readLoop(device io.Reader, onResult func(string)) {
	sc := bufio.NewScanner(device)
	for sc.Scan() {
		payload := strings.TrimSpace(sc.Text())
		if payload == "" {
			continue
		}
		onResult(payload)
	}
	if err := sc.Err(); err != nil && !errors.Is(err, os.ErrClosed) && !errors.Is(err, io.ErrClosedPipe) {
		log.Printf("scanner: read %s: %v", d.path, err)
	}
}

// release closes device if it is still the active one.
func (d *DeviceScanner) release(device io.ReadCloser) {
	d.mu.Lock()
	if d.device != device {
		d.mu.Unlock()
		return
	}
	d.device = nil
	d.mu.Unlock()

	device.Close()
}

func (d *DeviceScanner) Stop() error {
	d.mu.Lock()
	device := d.device
	d.mu.Unlock()

	if device != nil {
		d.release(device)
	}
	return nil
}
