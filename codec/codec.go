// Package codec implements the chunking Reed-Solomon facade of spec.md
// §4.6: a Codec owns a field and one or more generator polynomials and
// exposes Encode/Decode/Check/MaxErrata over arbitrarily long inputs,
// transparently splitting them into n_max-bounded chunks.
//
// Grounded on the teacher's functional-options construction style
// (wyf-ACCEPT-eth2030 uses the same pattern for its client config) and on
// das/erasure's top-level Encode/Decode entry points for the chunk-loop
// shape, generalized to variable nsym/nsize/fcr/prim/generator and to the
// errors-and-erasures decoder in package rs.
package codec

import (
	"fmt"

	"github.com/tomerfiliba-org/reedsolomon/gf"
	"github.com/tomerfiliba-org/reedsolomon/rs"
	"github.com/tomerfiliba-org/reedsolomon/rslog"
	"github.com/tomerfiliba-org/reedsolomon/rsmetrics"
)

// Codec encodes and decodes data in Reed-Solomon chunks. A Codec is
// immutable after New returns and safe for concurrent use by multiple
// goroutines, since each instance owns its own field tables (spec.md §5;
// see SPEC_FULL.md §5 for why the legacy process-wide-table save/restore
// design is not carried over).
type Codec struct {
	nsym      int
	nsize     int
	fcr       int
	field     *gf.Field
	singleGen []gf.Symbol
	gens      *rs.GeneratorCache
	encoder   *rs.Encoder
	decoder   *rs.Decoder

	log     *rslog.Logger
	metrics *rsmetrics.Registry

	callCounter   *rsmetrics.Counter
	errataCounter *rsmetrics.Counter
	failCounter   *rsmetrics.Counter
	latency       *rsmetrics.Histogram
}

// New constructs a Codec with nsym parity symbols per chunk and the given
// options, applying the field-size/prim/nsize auto-derivation rules of
// spec.md §4.6.
func New(nsym int, opts ...Option) (*Codec, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.nsize > 255 && cfg.m <= 8 {
		for (1 << uint(cfg.m)) < cfg.nsize+1 {
			cfg.m++
		}
	}
	if cfg.m != 8 && !cfg.primExplicit {
		polys, err := gf.FindPrimePolys(cfg.generator, cfg.m, true, true)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg.prim = polys[0]
	}
	if !cfg.nsizeExplicit && cfg.m != 8 {
		cfg.nsize = (1 << uint(cfg.m)) - 1
	}
	if nsym < 0 || nsym >= cfg.nsize {
		return nil, fmt.Errorf("%w: nsym=%d must be in [0, nsize=%d)", ErrInvalidConfig, nsym, cfg.nsize)
	}

	field, err := gf.New(cfg.m, cfg.prim, cfg.generator)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	c := &Codec{
		nsym:    nsym,
		nsize:   cfg.nsize,
		fcr:     cfg.fcr,
		field:   field,
		encoder: rs.NewEncoder(field),
		decoder: rs.NewDecoder(field, cfg.fcr),
	}

	if cfg.singleGen {
		c.singleGen = rs.GeneratorPoly(field, nsym, cfg.fcr)
	} else {
		c.gens = rs.NewGeneratorCache(field, cfg.nsize, cfg.fcr)
	}

	if cfg.logger != nil {
		c.log = cfg.logger.Module("codec")
	} else {
		c.log = rslog.NewDiscard().Module("codec")
	}
	if cfg.metrics != nil {
		c.metrics = cfg.metrics
	} else {
		c.metrics = rsmetrics.NewRegistry()
	}
	c.callCounter = c.metrics.Counter("codec_calls_total")
	c.errataCounter = c.metrics.Counter("codec_errata_total")
	c.failCounter = c.metrics.Counter("codec_decode_failures_total")
	c.latency = c.metrics.Histogram("codec_call_latency_ms")

	c.log.Debug("codec constructed", "nsym", nsym, "nsize", cfg.nsize, "m", cfg.m, "fcr", cfg.fcr, "prim", fmt.Sprintf("0x%X", cfg.prim), "single_gen", cfg.singleGen)
	return c, nil
}

// NSym returns the default parity-symbol count the Codec was built with.
func (c *Codec) NSym() int { return c.nsym }

// NSize returns the maximum chunk length.
func (c *Codec) NSize() int { return c.nsize }

// Field returns the field the Codec operates over.
func (c *Codec) Field() *gf.Field { return c.field }

func (c *Codec) generatorFor(nsym int) []gf.Symbol {
	if c.gens != nil {
		return c.gens.Get(nsym)
	}
	if nsym == c.nsym {
		return c.singleGen
	}
	return rs.GeneratorPoly(c.field, nsym, c.fcr)
}

// Encode splits data into chunksize = nsize-nsym chunks (the last may be
// shorter; no padding is added), encodes each with nsym parity symbols,
// and concatenates message||parity for every chunk.
func (c *Codec) Encode(data []gf.Symbol) ([]gf.Symbol, error) {
	return c.EncodeWithNSym(data, c.nsym)
}

// EncodeWithNSym is Encode with an nsym overriding the Codec's default,
// per spec.md §6's encode(data, [nsym]).
func (c *Codec) EncodeWithNSym(data []gf.Symbol, nsym int) ([]gf.Symbol, error) {
	timer := rsmetrics.NewTimer(c.latency)
	defer timer.Stop()
	c.callCounter.Inc()

	if nsym < 0 || nsym >= c.nsize {
		return nil, fmt.Errorf("%w: nsym=%d must be in [0, nsize=%d)", ErrInvalidConfig, nsym, c.nsize)
	}
	chunkSize := c.nsize - nsym
	gen := c.generatorFor(nsym)

	out := make([]gf.Symbol, 0, (len(data)/chunkSize+1)*c.nsize)
	for off := 0; off < len(data); off += chunkSize {
		end := off + chunkSize
		if end > len(data) {
			end = len(data)
		}
		encoded, err := c.encoder.EncodeChunk(data[off:end], gen)
		if err != nil {
			return nil, err
		}
		out = append(out, encoded...)
	}
	c.log.Debug("encode", "input_symbols", len(data), "nsym", nsym, "output_symbols", len(out))
	return out, nil
}

// EncodeBytes is Encode for byte-sized fields (m<=8): data is interpreted
// as a symbol sequence one byte each, and the parity output is likewise
// byte-sized.
func (c *Codec) EncodeBytes(data []byte) ([]byte, error) {
	out, err := c.Encode(bytesToSymbols(data))
	if err != nil {
		return nil, err
	}
	return symbolsToBytes(out)
}

// DecodeResult is the outcome of a Decode call.
type DecodeResult struct {
	Message []gf.Symbol
	Full    []gf.Symbol
	Errata  []int
}

// Decode splits data into nsize chunks, decodes each (using the
// chunk-local subset of erasePos, positions renumbered modulo nsize), and
// concatenates results. A failure in any chunk aborts the whole call with
// no partial output, per spec.md §7.
func (c *Codec) Decode(data []gf.Symbol, nsym int, erasePos []int, onlyErasures bool) (*DecodeResult, error) {
	timer := rsmetrics.NewTimer(c.latency)
	defer timer.Stop()
	c.callCounter.Inc()

	if nsym < 0 || nsym >= c.nsize {
		return nil, fmt.Errorf("%w: nsym=%d must be in [0, nsize=%d)", ErrInvalidConfig, nsym, c.nsize)
	}

	chunkErase := make(map[int][]int)
	for _, p := range erasePos {
		idx := p / c.nsize
		chunkErase[idx] = append(chunkErase[idx], p%c.nsize)
	}

	var msg, full []gf.Symbol
	var errata []int
	for i, off := 0, 0; off < len(data); i, off = i+1, off+c.nsize {
		end := off + c.nsize
		if end > len(data) {
			end = len(data)
		}
		res, err := c.decoder.DecodeChunk(data[off:end], nsym, chunkErase[i], onlyErasures)
		if err != nil {
			c.failCounter.Inc()
			if rsErr, ok := err.(*rs.ReedSolomonError); ok {
				rsErr.Chunk = i
			}
			c.log.Warn("decode failed", "chunk", i, "err", err)
			return nil, err
		}
		msg = append(msg, res.Message...)
		full = append(full, res.Full...)
		errata = append(errata, res.Errata...)
	}

	c.errataCounter.Add(int64(len(errata)))
	c.log.Debug("decode", "input_symbols", len(data), "nsym", nsym, "errata", len(errata))
	return &DecodeResult{Message: msg, Full: full, Errata: errata}, nil
}

// DecodeBytes is Decode for byte-sized fields (m<=8).
func (c *Codec) DecodeBytes(data []byte, nsym int, erasePos []int, onlyErasures bool) (*DecodeBytesResult, error) {
	res, err := c.Decode(bytesToSymbols(data), nsym, erasePos, onlyErasures)
	if err != nil {
		return nil, err
	}
	msg, err := symbolsToBytes(res.Message)
	if err != nil {
		return nil, err
	}
	full, err := symbolsToBytes(res.Full)
	if err != nil {
		return nil, err
	}
	return &DecodeBytesResult{Message: msg, Full: full, Errata: res.Errata}, nil
}

// DecodeBytesResult is DecodeResult for byte-sized fields.
type DecodeBytesResult struct {
	Message []byte
	Full    []byte
	Errata  []int
}

// Check splits data into nsize chunks and reports, per chunk, whether its
// syndromes are all zero (i.e. it looks clean).
func (c *Codec) Check(data []gf.Symbol, nsym int) ([]bool, error) {
	if nsym < 0 || nsym >= c.nsize {
		return nil, fmt.Errorf("%w: nsym=%d must be in [0, nsize=%d)", ErrInvalidConfig, nsym, c.nsize)
	}
	var out []bool
	for off := 0; off < len(data); off += c.nsize {
		end := off + c.nsize
		if end > len(data) {
			end = len(data)
		}
		synd := c.decoder.Syndromes(data[off:end], nsym)
		out = append(out, rs.AllZero(synd))
	}
	return out, nil
}

// MaxErrata reports the maximum correctable error/erasure counts for nsym
// parity symbols, per spec.md §4.6: with neither argument, (floor(nsym/2),
// nsym); with erasures=v, (floor((nsym-v)/2), v); with errors=e, (e,
// nsym-2e). Returns ErrInvalidConfig if the supplied value exceeds the
// Singleton bound.
func (c *Codec) MaxErrata(nsym int, errors, erasures *int) (maxErrors, maxErasures int, err error) {
	switch {
	case erasures != nil:
		v := *erasures
		if v > nsym {
			return 0, 0, fmt.Errorf("%w: erasures=%d exceeds nsym=%d", ErrInvalidConfig, v, nsym)
		}
		return (nsym - v) / 2, v, nil
	case errors != nil:
		e := *errors
		if 2*e > nsym {
			return 0, 0, fmt.Errorf("%w: errors=%d exceeds nsym/2=%d", ErrInvalidConfig, e, nsym/2)
		}
		return e, nsym - 2*e, nil
	default:
		return nsym / 2, nsym, nil
	}
}

func bytesToSymbols(b []byte) []gf.Symbol {
	out := make([]gf.Symbol, len(b))
	for i, v := range b {
		out[i] = gf.Symbol(v)
	}
	return out
}

func symbolsToBytes(s []gf.Symbol) ([]byte, error) {
	out := make([]byte, len(s))
	for i, v := range s {
		if v > 0xFF {
			return nil, fmt.Errorf("codec: symbol %d at index %d does not fit in a byte; field exponent > 8", v, i)
		}
		out[i] = byte(v)
	}
	return out, nil
}
