// Package gf implements arithmetic over the binary extension field
// GF(2^m), 3 <= m <= 16, used by the Reed-Solomon codec in package rs.
//
// A Field is built once from a primitive polynomial and a generator of the
// multiplicative group, and is immutable afterwards: all arithmetic reads
// pre-computed log/exp tables owned by the Field value, so distinct Field
// instances with different parameters never interfere with each other.
//
// Grounded on the teacher's struct-based GaloisField (das/erasure/gf_field.go),
// generalized from the fixed GF(2^8)/prim=0x11D/generator=2 case to an
// arbitrary m, prim and generator as required by spec.md.
package gf

import (
	"errors"
	"fmt"
)

// Symbol is a single element of GF(2^m), 0 <= value < 2^m. One Symbol type
// is used for every supported m, per spec.md's "single symbol type per
// codec instance" requirement.
type Symbol uint32

// ErrDivideByZero is returned by Div when the divisor is zero.
var ErrDivideByZero = errors.New("gf: division by zero")

// Field holds the pre-computed log/exp tables for GF(2^m) under a chosen
// primitive polynomial and generator. Field is immutable after New returns;
// concurrent reads from multiple goroutines are safe.
type Field struct {
	m    int
	q    uint32 // 2^m
	// charac is q-1, the order of the multiplicative group.
	charac uint32
	// exp[i] = generator^i for 0 <= i < charac; doubled (exp[i+charac] ==
	// exp[i]) so that Mul never needs a modulo reduction.
	exp []Symbol
	// log[x] is the discrete log of x (base generator) for 1 <= x < q.
	// log[0] is unused and never read.
	log []uint32

	prim      int
	generator int
}

// M returns the field exponent.
func (f *Field) M() int { return f.m }

// Q returns the field size 2^m.
func (f *Field) Q() uint32 { return f.q }

// Charac returns the multiplicative order q-1.
func (f *Field) Charac() uint32 { return f.charac }

// Prim returns the primitive polynomial used to build the field.
func (f *Field) Prim() int { return f.prim }

// Generator returns the generator of the multiplicative group.
func (f *Field) Generator() int { return f.generator }

// New builds GF(2^m) under the given primitive polynomial prim and
// generator. prim must be an irreducible polynomial of degree m over GF(2);
// generator must generate the full multiplicative group. Both properties
// are verified incidentally by table construction: if prim is not
// irreducible or generator does not generate the group, the constructed
// powers will repeat or leave [0, q) before charac steps and New returns an
// error instead of silently building a broken field.
func New(m, prim, generator int) (*Field, error) {
	if m < 3 || m > 16 {
		return nil, fmt.Errorf("gf: field exponent m=%d out of range [3,16]", m)
	}
	q := uint32(1) << uint(m)
	charac := q - 1

	f := &Field{
		m:         m,
		q:         q,
		charac:    charac,
		exp:       make([]Symbol, 2*charac),
		log:       make([]uint32, q),
		prim:      prim,
		generator: generator,
	}

	seen := make([]bool, q)
	x := Symbol(1)
	for i := uint32(0); i < charac; i++ {
		if uint32(x) >= q || seen[x] {
			return nil, fmt.Errorf("gf: prim=0x%x generator=%d do not generate a field of order %d (out of range or repeated at step %d)", prim, generator, charac, i)
		}
		seen[x] = true
		f.exp[i] = x
		f.log[x] = i
		x = carrylessMul(x, Symbol(generator), uint32(prim), q)
	}
	for i := uint32(0); i < charac; i++ {
		f.exp[i+charac] = f.exp[i]
	}
	return f, nil
}

// carrylessMul multiplies x by y as GF(2)[x] polynomials (no carry between
// bit positions) and reduces the result modulo prim whenever it would
// overflow past q. This is the Russian-peasant routine from spec.md §4.1:
// accumulate XOR of shifted x into r when the low bit of y is set; shift x
// left; whenever x reaches or exceeds q, XOR it down with prim.
func carrylessMul(x, y Symbol, prim, q uint32) Symbol {
	var r uint32
	xv := uint32(x)
	yv := uint32(y)
	for yv > 0 {
		if yv&1 != 0 {
			r ^= xv
		}
		yv >>= 1
		xv <<= 1
		if xv >= q {
			xv ^= prim
		}
	}
	return Symbol(r)
}

// Add returns x + y in GF(2^m). Addition in characteristic 2 is XOR.
func Add(x, y Symbol) Symbol { return x ^ y }

// Sub returns x - y in GF(2^m). Subtraction equals addition in
// characteristic 2.
func Sub(x, y Symbol) Symbol { return x ^ y }

// Mul returns x * y in GF(2^m).
func (f *Field) Mul(x, y Symbol) Symbol {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[f.log[x]+f.log[y]]
}

// Div returns x / y in GF(2^m). Returns ErrDivideByZero if y is zero.
func (f *Field) Div(x, y Symbol) (Symbol, error) {
	if y == 0 {
		return 0, ErrDivideByZero
	}
	if x == 0 {
		return 0, nil
	}
	idx := (f.log[x] + f.charac - f.log[y]) % f.charac
	return f.exp[idx], nil
}

// Inv returns the multiplicative inverse of x. The caller must ensure x is
// non-zero; Inv(0) is an internal invariant violation and panics, matching
// spec.md §7's treatment of field arithmetic errors as unreachable from
// valid public-API usage.
func (f *Field) Inv(x Symbol) Symbol {
	if x == 0 {
		panic("gf: inverse of zero")
	}
	return f.exp[f.charac-f.log[x]]
}

// Pow returns x^p in GF(2^m). p may be negative; it is interpreted modulo
// charac after normalization, matching spec.md §4.1.
func (f *Field) Pow(x Symbol, p int) Symbol {
	if p == 0 {
		return 1
	}
	if x == 0 {
		return 0
	}
	charac := int(f.charac)
	p %= charac
	if p < 0 {
		p += charac
	}
	idx := (int(f.log[x]) * p) % charac
	return f.exp[idx]
}

// Exp returns generator^i, i.e. the i-th power of the field's generator.
// i may be negative or >= charac; it is reduced modulo charac.
func (f *Field) Exp(i int) Symbol {
	charac := int(f.charac)
	idx := i % charac
	if idx < 0 {
		idx += charac
	}
	return f.exp[idx]
}

// Log returns the discrete logarithm of x, base generator. The caller must
// ensure x is non-zero.
func (f *Field) Log(x Symbol) int {
	if x == 0 {
		panic("gf: log of zero")
	}
	return int(f.log[x])
}
