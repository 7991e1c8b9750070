package scanner

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/rl1809/tableside/internal/port"
)

func pipeScanner(t *testing.T) (*DeviceScanner, *io.PipeWriter) {
	pr, pw := io.Pipe()
	s := NewDeviceScanner("/dev/qr-test")
	s.open = func(string) (io.ReadCloser, error) { return pr, nil }
	t.Cleanup(func() { pw.Close() })
	return s, pw
}

func TestDeviceScanner_ReportsLines(t *testing.T) {
	s, pw := pipeScanner(t)

	results := make(chan string, 4)
	if err := s.Start(context.Background(), func(p string) { results <- p }); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer s.Stop()

	go io.WriteString(pw, "\n  Table 8  \r\nTable 9\n")

	for _, want := range []string{"Table 8", "Table 9"} {
		select {
		case got := <-results:
			if got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestDeviceScanner_BusyWhileRunning(t *testing.T) {
	s, _ := pipeScanner(t)

	if err := s.Start(context.Background(), func(string) {}); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	err := s.Start(context.Background(), func(string) {})
	if !errors.Is(err, port.ErrDeviceBusy) {
		t.Errorf("expected ErrDeviceBusy, got %v", err)
	}

	s.Stop()
	s.Stop()
}

func TestDeviceScanner_StopEndsReading(t *testing.T) {
	s, pw := pipeScanner(t)

	var mu sync.Mutex
	count := 0
	s.Start(context.Background(), func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	s.Stop()

	// The reader side is closed, so writes fail and nothing is reported
	if _, err := io.WriteString(pw, "Table 1\n"); err == nil {
		t.Error("expected write to a stopped scanner to fail")
	}

	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Errorf("expected no results after stop, got %d", count)
	}
}

func TestDeviceScanner_ContextCancel(t *testing.T) {
	s, _ := pipeScanner(t)
	ctx, cancel := context.WithCancel(context.Background())

	s.Start(ctx, func(string) {})
	cancel()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if err := s.Start(context.Background(), func(string) {}); err == nil {
			s.Stop()
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("expected device to be released after cancel")
}

func TestDeviceScanner_OpenErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		open error
		want error
	}{
		{"no path", "", nil, port.ErrNoDevice},
		{"missing", "/dev/qr0", fs.ErrNotExist, port.ErrNoDevice},
		{"permission", "/dev/qr0", fs.ErrPermission, port.ErrPermissionDenied},
		{"busy", "/dev/qr0", &os.PathError{Op: "open", Path: "/dev/qr0", Err: syscall.EBUSY}, port.ErrDeviceBusy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDeviceScanner(tt.path)
			s.open = func(string) (io.ReadCloser, error) { return nil, tt.open }

			err := s.Start(context.Background(), func(string) {})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDeviceScanner_RealMissingFile(t *testing.T) {
	s := NewDeviceScanner(filepath.Join(t.TempDir(), "no-such-device"))

	err := s.Start(context.Background(), func(string) {})
	if !errors.Is(err, port.ErrNoDevice) {
		t.Errorf("expected ErrNoDevice, got %v", err)
	}
}
