package codec

import (
	"github.com/tomerfiliba-org/reedsolomon/rslog"
	"github.com/tomerfiliba-org/reedsolomon/rsmetrics"
)

type config struct {
	m             int
	nsize         int
	nsizeExplicit bool
	fcr           int
	prim          int
	primExplicit  bool
	generator     int
	singleGen     bool
	logger        *rslog.Logger
	metrics       *rsmetrics.Registry
}

func defaultConfig() config {
	return config{
		m:         8,
		nsize:     255,
		fcr:       0,
		prim:      0x11D,
		generator: 2,
		singleGen: true,
	}
}

// Option configures a Codec at construction time.
type Option func(*config)

// WithFieldSize sets the field exponent m (3 <= m <= 16). Defaults to 8.
func WithFieldSize(m int) Option {
	return func(c *config) { c.m = m }
}

// WithSize sets nsize, the maximum chunk length (message symbols + parity
// symbols). Defaults to 255.
func WithSize(nsize int) Option {
	return func(c *config) {
		c.nsize = nsize
		c.nsizeExplicit = true
	}
}

// WithFCR sets the first-consecutive-root exponent offset. Defaults to 0.
// ADS-B UAT callers want 120.
func WithFCR(fcr int) Option {
	return func(c *config) { c.fcr = fcr }
}

// WithPrim sets the primitive polynomial explicitly, overriding the
// automatic find_prime_polys search that otherwise runs whenever the field
// exponent is not the default 8. Defaults to 0x11D (valid only for m=8).
func WithPrim(prim int) Option {
	return func(c *config) {
		c.prim = prim
		c.primExplicit = true
	}
}

// WithGenerator sets the generator of the multiplicative group. Defaults
// to 2.
func WithGenerator(generator int) Option {
	return func(c *config) { c.generator = generator }
}

// WithSingleGenerator controls whether the Codec precomputes only the
// generator polynomial for nsym (true, the default) or one for every
// nsym in [0, nsize] (false). Both modes accept an EncodeWithNSym call
// with a different nsym: with true, that call rebuilds the generator each
// time; with false, it is read from the precomputed cache, at the cost of
// construction time and memory. Decode uses no generator polynomial.
func WithSingleGenerator(single bool) Option {
	return func(c *config) { c.singleGen = single }
}

// WithLogger attaches a logger; construction and Encode/Decode calls log at
// debug level, decode failures at warn level. Defaults to a discarding
// logger.
func WithLogger(l *rslog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics attaches a metrics registry. Defaults to a private Registry
// owned by the Codec.
func WithMetrics(m *rsmetrics.Registry) Option {
	return func(c *config) { c.metrics = m }
}
