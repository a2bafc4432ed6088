package dijkstra

import (
	"errors"
	"math"
)

// Name is the display name reported in search.Result.Algorithm.
const Name = "Dijkstra"

// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
var ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

// Options configures a Dijkstra search.
//
// MaxDistance – cheapest frontier cost at which exploration stops. Must be ≥ 0.
// Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not expanded.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
