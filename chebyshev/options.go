// SPDX-License-Identifier: MIT

package chebyshev

// DefaultSamples is the size of the uniform fitting grid.
const DefaultSamples = 500

const panicSamplesInvalid = "chebyshev: WithSamples: n must be >= 2"

// Option configures Fit.
type Option func(*options)

type options struct {
	samples int
}

// WithSamples sets the number of uniform grid points f is sampled on.
// Panics for n < 2 (programmer error).
func WithSamples(n int) Option {
	if n < 2 {
		panic(panicSamplesInvalid)
	}

	return func(o *options) { o.samples = n }
}

func gatherOptions(user ...Option) options {
	o := options{samples: DefaultSamples}
	for _, set := range user {
		set(&o)
	}

	return o
}
