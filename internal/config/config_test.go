package config

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "STORE_BACKEND", "SERVICE_FEE_RATE", "ORDER_RESET_DELAY", "SCAN_TIMEOUT", "TABLE_LABEL", "SCANNER_DEVICE", "MENU_FILE"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.HTTPAddr != ":8080" || cfg.Server.GRPCAddr != ":50051" {
		t.Errorf("unexpected addresses: %+v", cfg.Server)
	}
	if cfg.Store.Backend != BackendMemory {
		t.Errorf("expected memory backend, got %s", cfg.Store.Backend)
	}
	if !cfg.Session.ServiceFeeRate.Equal(decimal.RequireFromString("0.1")) {
		t.Errorf("expected 10%% fee, got %s", cfg.Session.ServiceFeeRate)
	}
	if cfg.Session.OrderResetDelay != 5*time.Second {
		t.Errorf("expected 5s reset delay, got %s", cfg.Session.OrderResetDelay)
	}
	if cfg.Session.TableLabel != "Table" {
		t.Errorf("expected Table label, got %q", cfg.Session.TableLabel)
	}
	if cfg.Scanner.Device != "" || cfg.Scanner.Timeout != 30*time.Second {
		t.Errorf("unexpected scanner config: %+v", cfg.Scanner)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("STORE_NAMESPACE", "table-4")
	t.Setenv("SERVICE_FEE_RATE", "0")
	t.Setenv("ORDER_RESET_DELAY", "250ms")
	t.Setenv("SCANNER_DEVICE", "/dev/hidraw0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Store.Backend != BackendRedis || cfg.Store.Namespace != "table-4" {
		t.Errorf("unexpected store config: %+v", cfg.Store)
	}
	if !cfg.Session.ServiceFeeRate.IsZero() {
		t.Errorf("expected zero fee, got %s", cfg.Session.ServiceFeeRate)
	}
	if cfg.Session.OrderResetDelay != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", cfg.Session.OrderResetDelay)
	}
	if cfg.Scanner.Device != "/dev/hidraw0" {
		t.Errorf("unexpected device %q", cfg.Scanner.Device)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"STORE_BACKEND", "sqlite"},
		{"SERVICE_FEE_RATE", "ten percent"},
		{"SERVICE_FEE_RATE", "-0.1"},
		{"ORDER_RESET_DELAY", "soon"},
		{"SCAN_TIMEOUT", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
