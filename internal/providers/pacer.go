package providers

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMinInterval is the minimum gap enforced between consecutive
// outbound requests.
const DefaultMinInterval = time.Second

// Pacer serializes outbound requests behind a single shared cooldown: every
// upstream client funnels through one Pacer instance, so the service as a
// whole never issues requests closer together than the configured interval.
type Pacer struct {
	limiter *rate.Limiter
	onWait  func(waited time.Duration)
}

// NewPacer builds a pacer allowing one request per interval with no burst
// allowance. A non-positive interval falls back to DefaultMinInterval.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		interval = DefaultMinInterval
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// ObserveWaits registers a callback invoked with the time each Wait call
// actually spent blocked. Used to feed pacing telemetry.
func (p *Pacer) ObserveWaits(fn func(waited time.Duration)) {
	if p == nil {
		return
	}
	p.onWait = fn
}

// Wait suspends the caller until the cooldown since the previous request has
// elapsed, or the context is canceled. The limiter's reservation is taken
// exactly once per call, so each attempt that reaches the network advances
// the shared last-request marker.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return nil
	}
	start := time.Now()
	err := p.limiter.Wait(ctx)
	if err == nil && p.onWait != nil {
		p.onWait(time.Since(start))
	}
	return err
}
