package engine

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/cinemath/screen"
)

// Option customizes a Resolve call. Option constructors validate and panic
// on meaningless values; Resolve itself never panics.
type Option func(*config)

type config struct {
	logger *zap.Logger
	screen screen.Options
}

// newConfig applies opts over the defaults, later options overriding earlier.
func newConfig(opts ...Option) config {
	cfg := config{
		logger: zap.NewNop(),
		screen: screen.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes the per-stage trace to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithDiagonalIterations caps the diagonal correction loop. Panics on n ≤ 0.
func WithDiagonalIterations(n int) Option {
	if n <= 0 {
		panic("engine: WithDiagonalIterations(n<=0)")
	}
	return func(c *config) {
		c.screen.DiagonalIterations = n
	}
}

// WithPositionIterations caps the screen position loop. Panics on n ≤ 0.
func WithPositionIterations(n int) Option {
	if n <= 0 {
		panic("engine: WithPositionIterations(n<=0)")
	}
	return func(c *config) {
		c.screen.PositionIterations = n
	}
}
