package gen

import (
	"errors"
	"fmt"
)

// ErrTooSmall is returned when a grid dimension is below 1.
var ErrTooSmall = errors.New("gen: grid too small")

// Defaults used by DefaultConfig.
const (
	DefaultRows         = 4
	DefaultCols         = 4
	DefaultSpacing      = 100.0
	DefaultJitter       = 0.25
	DefaultSeed         = 1
	DefaultDiagonalProb = 0.3
)

// maxJitter keeps neighbouring cities from swapping places.
const maxJitter = 0.45

// Config describes a generated grid.
type Config struct {
	Rows, Cols int

	// Spacing is the lattice pitch in pixels.
	Spacing float64

	// Jitter is the maximum displacement as a fraction of Spacing, in [0, 0.45].
	Jitter float64

	Seed int64

	// DiagonalProb is the noise threshold below which a cell gets a diagonal road.
	DiagonalProb float64
}

// DefaultConfig returns a 4×4 grid with 100px spacing and seed 1.
func DefaultConfig() Config {
	return Config{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		Spacing:      DefaultSpacing,
		Jitter:       DefaultJitter,
		Seed:         DefaultSeed,
		DiagonalProb: DefaultDiagonalProb,
	}
}

// Option customizes a Config before generation.
// Option constructors panic on meaningless input.
type Option func(*Config)

// WithSeed sets the noise seed.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithJitter sets the displacement fraction. Panics outside [0, 0.45].
func WithJitter(j float64) Option {
	if j < 0 || j > maxJitter {
		panic(fmt.Sprintf("gen: WithJitter(%g) outside [0, %g]", j, maxJitter))
	}

	return func(c *Config) {
		c.Jitter = j
	}
}

// WithSpacing sets the lattice pitch. Panics unless s > 0.
func WithSpacing(s float64) Option {
	if !(s > 0) {
		panic(fmt.Sprintf("gen: WithSpacing(%g) must be positive", s))
	}

	return func(c *Config) {
		c.Spacing = s
	}
}

// WithDiagonalProb sets the diagonal threshold. Panics outside [0, 1].
// 0 disables diagonals, 1 adds one to every cell.
func WithDiagonalProb(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("gen: WithDiagonalProb(%g) outside [0, 1]", p))
	}

	return func(c *Config) {
		c.DiagonalProb = p
	}
}
