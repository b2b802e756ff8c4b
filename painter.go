package vtcore

import (
	"context"
	"time"
)

// Painter is the periodic task that acquires the Model under its mutex
// and invokes the Renderer against a DisplayAdapter. The display
// adapter is owned exclusively by the Painter and never shared with
// producer goroutines.
type Painter struct {
	model    *Model
	adapter  DisplayAdapter
	renderer *Renderer
	interval time.Duration
	logger   Logger
}

// NewPainter constructs a Painter. interval defaults to the Model's
// configured paint interval (itself defaulting to
// DefaultPaintIntervalMillis) if zero is passed.
func NewPainter(m *Model, adapter DisplayAdapter, interval time.Duration) *Painter {
	if interval <= 0 {
		interval = time.Duration(m.paintIntervalMillis) * time.Millisecond
	}
	return &Painter{
		model:    m,
		adapter:  adapter,
		renderer: NewRenderer(),
		interval: interval,
		logger:   m.logger,
	}
}

// Run drives the paint loop on a fixed-interval ticker until ctx is
// canceled. Missed ticks do not backlog: each iteration completes a
// full paint before awaiting the next tick, so Run is cancellation-safe.
func (p *Painter) Run(ctx context.Context) {
	_ = p.adapter.SetVerticalScrollRegion(0, 0)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.paintOnce()
		}
	}
}

func (p *Painter) paintOnce() {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Errorf("vtcore: panic during paint: %v", r)
		}
	}()
	p.renderer.Paint(p.model, p.adapter)
}
