package codec

import "errors"

// ErrInvalidConfig is returned when parameters fail validation: by New for
// nsym >= nsize, an out-of-range field exponent, or a prim that turns out
// not to be irreducible; by Encode/Decode/Check for an nsym outside
// [0, nsize); and by MaxErrata for an erasures/errors argument that exceeds
// the Singleton bound.
var ErrInvalidConfig = errors.New("codec: invalid configuration")
