package rtree

import (
	"fmt"
	"math"
)

// DefaultMaxEntries is M when no WithMaxEntries option is given.
const DefaultMaxEntries = 8

// Config holds the two tunables that govern node fan-out (spec §6):
// MaxEntries (M), the upper bound on any node's entry count, and
// MinEntries (m), the lower bound on every non-root node.
type Config struct {
	MaxEntries int
	MinEntries int
}

// configOptions accumulates option values before NewConfig fills in
// defaults for anything left unset. Unset is tracked with a nil pointer
// rather than a sentinel value, so that an explicit (if unusual) value
// such as WithMaxEntries(-1) is validated and rejected instead of being
// mistaken for "not supplied" and silently replaced by the default.
type configOptions struct {
	maxEntries *int
	minEntries *int
}

// Option configures a Config via NewConfig, or a Tree via New.
type Option func(*configOptions)

// WithMaxEntries sets M. It must be at least 4.
func WithMaxEntries(m int) Option {
	return func(o *configOptions) { o.maxEntries = &m }
}

// WithMinEntries sets m. It must be in [2, ceil(M/2)].
func WithMinEntries(m int) Option {
	return func(o *configOptions) { o.minEntries = &m }
}

// DefaultConfig returns the configuration used when no options are given:
// MaxEntries=8, MinEntries=ceil(0.4*MaxEntries).
func DefaultConfig() Config {
	return Config{
		MaxEntries: DefaultMaxEntries,
		MinEntries: defaultMinEntries(DefaultMaxEntries),
	}
}

func defaultMinEntries(max int) int {
	return int(math.Ceil(0.4 * float64(max)))
}

// NewConfig builds and validates a Config from options, the way the
// teacher's NewInsertionPolicy builds and validates node-size parameters.
// Unlike a contract violation, a bad configuration is a normal, recoverable
// error (spec §7) and is returned rather than panicked.
func NewConfig(opts ...Option) (Config, error) {
	var o configOptions
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Config{}
	if o.maxEntries != nil {
		cfg.MaxEntries = *o.maxEntries
	} else {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if o.minEntries != nil {
		cfg.MinEntries = *o.minEntries
	} else {
		cfg.MinEntries = defaultMinEntries(cfg.MaxEntries)
	}

	if cfg.MaxEntries < 4 {
		return Config{}, fmt.Errorf("rtree: MaxEntries must be >= 4, got %d", cfg.MaxEntries)
	}
	upperBound := (cfg.MaxEntries + 1) / 2 // ceil(M/2)
	if cfg.MinEntries < 2 || cfg.MinEntries > upperBound {
		return Config{}, fmt.Errorf(
			"rtree: MinEntries must be in [2, %d] (ceil(MaxEntries/2)), got %d",
			upperBound, cfg.MinEntries,
		)
	}
	return cfg, nil
}
