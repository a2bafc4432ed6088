package engine

import (
	"errors"
	"log/slog"
	"time"
)

// Sentinel errors returned by engine.
var (
	// ErrUnknownAlgorithm indicates a strategy name that is neither a display
	// name nor an alias.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrNilGrid indicates that a nil board was passed to the Runner.
	ErrNilGrid = errors.New("engine: grid is nil")
)

// DefaultStepDelay paces Runner frames when no delay is configured.
const DefaultStepDelay = 10 * time.Millisecond

// Options configures an Engine.
//
// Logger   – structured logger; defaults to slog.Default().
// Registry – strategy lookup table; defaults to DefaultRegistry().
// Metrics  – optional Prometheus collectors; nil disables instrumentation.
type Options struct {
	Logger   *slog.Logger
	Registry *Registry
	Metrics  *Metrics
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegistry replaces the strategy registry.
func WithRegistry(r *Registry) Option {
	return func(o *Options) {
		if r != nil {
			o.Registry = r
		}
	}
}

// WithMetrics enables instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// DefaultOptions returns Options with the default logger and registry and
// no metrics.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.Default(),
		Registry: DefaultRegistry(),
	}
}

// RunnerOptions configures a Runner.
//
// Delay     – pause after every step; 0 disables pacing.
// Buffer    – per-subscriber frame buffer; frames are dropped when full.
// OnDone    – called on the worker goroutine when a run completes.
type RunnerOptions struct {
	Delay  time.Duration
	Buffer int
	OnDone func(Done)
}

// RunnerOption represents a functional option for configuring a Runner.
type RunnerOption func(*RunnerOptions)

// WithDelay sets the pause after every step. Negative values mean 0.
func WithDelay(d time.Duration) RunnerOption {
	return func(o *RunnerOptions) {
		if d < 0 {
			d = 0
		}
		o.Delay = d
	}
}

// WithBuffer sets the per-subscriber frame buffer.
func WithBuffer(n int) RunnerOption {
	return func(o *RunnerOptions) {
		if n > 0 {
			o.Buffer = n
		}
	}
}

// WithOnDone registers a completion callback.
func WithOnDone(fn func(Done)) RunnerOption {
	return func(o *RunnerOptions) {
		o.OnDone = fn
	}
}

// DefaultRunnerOptions returns a DefaultStepDelay pace and a 64-frame buffer.
func DefaultRunnerOptions() RunnerOptions {
	return RunnerOptions{Delay: DefaultStepDelay, Buffer: 64}
}
