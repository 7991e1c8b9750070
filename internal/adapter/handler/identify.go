package handler

import (
	"context"
	"errors"
	"time"

	"github.com/rl1809/tableside/internal/core/identify"
	"github.com/rl1809/tableside/internal/core/service"
	"github.com/rl1809/tableside/internal/port"
)

var ErrScanTimeout = errors.New("no code scanned before timeout")

// IdentifyConfig controls how transports resolve table ids.
type IdentifyConfig struct {
	Scanner     port.Scanner // nil when the kiosk has no camera
	ScanTimeout time.Duration
	TableLabel  string
}

// tableIdentifier runs one identification capability per request and hands
// the result to the session.
type tableIdentifier struct {
	session *service.SessionService
	cfg     IdentifyConfig
}

func (t *tableIdentifier) manual(ctx context.Context, number string) error {
	tableID, err := identify.Await(ctx, identify.NewManualEntry(t.cfg.TableLabel, number))
	if err != nil {
		return err
	}
	return t.session.Identify(ctx, tableID)
}

func (t *tableIdentifier) scan(ctx context.Context) error {
	if t.cfg.ScanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.ScanTimeout)
		defer cancel()
	}

	tableID, err := identify.Await(ctx, identify.NewCameraScan(t.cfg.Scanner))
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrScanTimeout
	}
	if err != nil {
		return err
	}
	return t.session.Identify(ctx, tableID)
}
