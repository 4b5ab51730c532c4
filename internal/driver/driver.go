package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultTickLength is the simulation pulse. Timed game effects accrue in
// wall-clock time, so the tick length only bounds how promptly they fire.
const DefaultTickLength = time.Second

// Manager is anything that advances game state on the pulse.
type Manager interface {
	Tick(context.Context) error
}

// MudDriver owns the simulation pulse, ticking each manager in order
// until its context is cancelled. It satisfies service.Worker.
type MudDriver struct {
	tickLength time.Duration
	managers   []Manager
}

func NewMudDriver(managers []Manager, opts ...MudDriverOpt) *MudDriver {
	d := &MudDriver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *MudDriver) Start(ctx context.Context) error {
	slog.InfoContext(ctx, "driver starting", "tick", d.tickLength)

	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := d.Tick(ctx); err != nil {
				return err
			}
		}
	}
}

// Tick advances every manager once. A manager error stops the pulse.
func (d *MudDriver) Tick(ctx context.Context) error {
	for i, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return fmt.Errorf("ticking manager %d: %w", i, err)
		}
	}
	return nil
}

type MudDriverOpt func(*MudDriver)

// WithTickLength overrides the simulation pulse interval.
func WithTickLength(tickLength time.Duration) MudDriverOpt {
	return func(d *MudDriver) {
		d.tickLength = tickLength
	}
}
