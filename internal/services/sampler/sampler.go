// Package sampler polls a utilization gauge in the background and keeps the
// last good value.
package sampler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the pause between samples.
const DefaultInterval = time.Second

// Gauge reads one utilization value in percent.
type Gauge interface {
	Sample(ctx context.Context) (float64, error)
}

// GaugeFunc adapts a function to Gauge.
type GaugeFunc func(ctx context.Context) (float64, error)

// Sample implements Gauge.
func (f GaugeFunc) Sample(ctx context.Context) (float64, error) {
	return f(ctx)
}

// Sampler runs a gauge until stopped. A failing or panicking sample is
// logged and skipped; it never ends the loop.
type Sampler struct {
	gauge    Gauge
	interval time.Duration
	logger   *slog.Logger

	stopping atomic.Bool
	alive    atomic.Bool
	started  atomic.Bool

	mu      sync.RWMutex
	last    float64
	hasLast bool

	wake     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a sampler. A non-positive interval uses DefaultInterval.
func New(gauge Gauge, interval time.Duration, logger *slog.Logger) *Sampler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sampler{
		gauge:    gauge,
		interval: interval,
		logger:   logger,
		wake:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop. Later calls do nothing.
func (s *Sampler) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	s.alive.Store(true)
	go s.loop(ctx)
}

// Stop sets the stop flag and waits for the loop to exit.
func (s *Sampler) Stop() {
	s.stopping.Store(true)
	s.stopOnce.Do(func() {
		close(s.wake)
	})
	if s.started.Load() {
		<-s.done
	}
}

// Last returns the most recent good sample.
func (s *Sampler) Last() (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.hasLast
}

// Alive reports whether the loop is running.
func (s *Sampler) Alive() bool {
	return s.alive.Load()
}

func (s *Sampler) loop(ctx context.Context) {
	defer close(s.done)
	defer s.alive.Store(false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for !s.stopping.Load() {
		s.sampleOnce(ctx)

		select {
		case <-ctx.Done():
			return
		case <-s.wake:
		case <-ticker.C:
		}
	}
}

func (s *Sampler) sampleOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WarnContext(ctx, "Utilization gauge panicked", "error", fmt.Sprint(r))
		}
	}()

	value, err := s.gauge.Sample(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "Utilization sample failed", "error", err)
		return
	}

	s.mu.Lock()
	s.last = value
	s.hasLast = true
	s.mu.Unlock()
}
