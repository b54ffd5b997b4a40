package rs

import (
	"fmt"

	"github.com/tomerfiliba-org/reedsolomon/gf"
)

// Encoder computes systematic Reed-Solomon parity over a single field.
type Encoder struct {
	f *gf.Field
}

// NewEncoder returns an Encoder for f.
func NewEncoder(f *gf.Field) *Encoder {
	return &Encoder{f: f}
}

// EncodeChunk appends len(gen)-1 parity symbols to msg, returning
// msg||parity. gen must be a generator polynomial (see GeneratorPoly) for
// the desired parity count; the encoding is systematic, so out[:len(msg)]
// is always exactly msg. Per spec.md §4.4, parity is the remainder of the
// extended synthetic division of msg||0^nsym by gen, computed directly over
// the output buffer without materializing the quotient.
func (e *Encoder) EncodeChunk(msg []gf.Symbol, gen []gf.Symbol) ([]gf.Symbol, error) {
	nsym := len(gen) - 1
	nMax := int(e.f.Charac())
	if len(msg)+nsym > nMax {
		return nil, fmt.Errorf("%w: message length %d + %d parity symbols exceeds field capacity %d", ErrMessageTooLong, len(msg), nsym, nMax)
	}

	out := make([]gf.Symbol, len(msg)+nsym)
	copy(out, msg)

	for i := 0; i < len(msg); i++ {
		coef := out[i]
		if coef == 0 {
			continue
		}
		for j := 1; j < len(gen); j++ {
			if gen[j] != 0 {
				out[i+j] = gf.Add(out[i+j], e.f.Mul(coef, gen[j]))
			}
		}
	}

	// The loop above leaves the quotient's working values in
	// out[1:len(msg)]; copying msg back over them leaves out as
	// msg||remainder, matching spec.md's literal "overwrite out[0..|msg|)
	// with msg" step.
	copy(out, msg)
	return out, nil
}
