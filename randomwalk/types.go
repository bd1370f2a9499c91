package randomwalk

import "errors"

var (
	// ErrTooFewSegments is returned when the requested segment count
	// cannot produce a valid curve (a closed polygon needs at least 3
	// edges, an open walk at least 1).
	ErrTooFewSegments = errors.New("randomwalk: too few segments")

	// ErrBadDistance is returned by OpenByDistance when the closure
	// distance fraction lies outside [0, 1].
	ErrBadDistance = errors.New("randomwalk: distance must be in [0, 1]")
)

// DefaultNormalisation is the average edge length curves are scaled
// to. The value is cosmetic; it matches the plotting defaults of the
// plotting tools this generator grew up with.
const DefaultNormalisation = 7.5

// options collects the tunables shared by all generators.
type options struct {
	seed          int64
	normalisation float64
}

// Option mutates generation options.
type Option func(*options)

// WithSeed fixes the random seed. Seed 0 (also the default) maps to a
// fixed internal seed, so generation is deterministic either way.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithNormalisation sets the average edge length of the returned
// curve. Panics if f is not positive; options are programmer input,
// not user input.
func WithNormalisation(f float64) Option {
	if f <= 0 {
		panic("randomwalk: normalisation must be positive")
	}
	return func(o *options) { o.normalisation = f }
}

func buildOptions(opts []Option) options {
	o := options{normalisation: DefaultNormalisation}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
