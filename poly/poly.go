// Package poly implements polynomial arithmetic over a gf.Field, as used by
// the Reed-Solomon generator, encoder and decoder in package rs.
//
// Convention: every function in this package treats a []gf.Symbol as a
// polynomial in HIGH-DEGREE-FIRST order — index 0 holds the coefficient of
// the highest-degree term present in the slice, and the last index holds
// the constant term. This is the convention the encoder, generator and
// error-locator polynomials all use in spec.md (message/codeword arrays
// read left-to-right from most to least significant symbol; the generator
// polynomial and the Berlekamp-Massey error locator grow by appending a
// zero constant term at the end, which only makes sense under this
// ordering). spec.md §9 calls out that the original source mixes this
// convention with a low-degree-first one and papers over it with explicit
// reversals at the boundary; this package picks the single convention above
// for everything and never reverses internally. Grounded on the teacher's
// GF256Poly* family (das/erasure/galois_field.go), which implements the same
// operations under the opposite (low-degree-first) convention — the
// arithmetic here is the same convolution/Horner math, just documented and
// indexed the other way around.
package poly

import "github.com/tomerfiliba-org/reedsolomon/gf"

// Scale multiplies every coefficient of p by the scalar s.
func Scale(f *gf.Field, p []gf.Symbol, s gf.Symbol) []gf.Symbol {
	out := make([]gf.Symbol, len(p))
	for i, c := range p {
		out[i] = f.Mul(c, s)
	}
	return out
}

// Add returns p + q, right-aligning the two operands (so that constant
// terms, at the end of each slice, line up) and padding the shorter one
// with zeros on the left.
func Add(p, q []gf.Symbol) []gf.Symbol {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make([]gf.Symbol, n)
	copy(out[n-len(p):], p)
	for i, c := range q {
		out[n-len(q)+i] = gf.Add(out[n-len(q)+i], c)
	}
	return out
}

// Mul multiplies two polynomials, returning a slice of length
// len(p)+len(q)-1. Zero coefficients in p are skipped as an optimization;
// this is the same O(|p|*|q|) schoolbook convolution regardless of
// high/low-degree-first convention, since convolution commutes with
// reversing both operands and the result together.
func Mul(f *gf.Field, p, q []gf.Symbol) []gf.Symbol {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	out := make([]gf.Symbol, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			if b == 0 {
				continue
			}
			out[i+j] = gf.Add(out[i+j], f.Mul(a, b))
		}
	}
	return out
}

// Eval evaluates p at x using Horner's method. p[0] is the highest-degree
// coefficient, so Horner runs forward: y <- p[0]; for each subsequent
// coefficient, y <- y*x XOR coefficient.
func Eval(f *gf.Field, p []gf.Symbol, x gf.Symbol) gf.Symbol {
	if len(p) == 0 {
		return 0
	}
	y := p[0]
	for i := 1; i < len(p); i++ {
		y = gf.Add(f.Mul(y, x), p[i])
	}
	return y
}

// Div performs extended synthetic division of dividend by a monic divisor
// (divisor[0] == 1), per spec.md §4.2: the working buffer is a copy of
// dividend; after the loop the trailing len(divisor)-1 elements are the
// remainder and the leading elements are the quotient. Because divisor is
// monic, no leading-coefficient normalization step is needed.
func Div(f *gf.Field, dividend, divisor []gf.Symbol) (quotient, remainder []gf.Symbol) {
	out := append([]gf.Symbol(nil), dividend...)
	for i := 0; i <= len(dividend)-len(divisor); i++ {
		coef := out[i]
		if coef == 0 {
			continue
		}
		for j := 1; j < len(divisor); j++ {
			if divisor[j] != 0 {
				out[i+j] = gf.Add(out[i+j], f.Mul(divisor[j], coef))
			}
		}
	}
	sep := len(out) - (len(divisor) - 1)
	return out[:sep], out[sep:]
}

// DivRemainder returns only the remainder of dividend / divisor, avoiding
// the allocation of the quotient slice when the caller (e.g. the systematic
// encoder) only needs the parity tail.
func DivRemainder(f *gf.Field, dividend, divisor []gf.Symbol) []gf.Symbol {
	_, rem := Div(f, dividend, divisor)
	return rem
}

// Degree returns the degree of p (len(p)-1 minus any leading zero
// coefficients). Returns -1 for a slice that is entirely zero or empty.
func Degree(p []gf.Symbol) int {
	for i, c := range p {
		if c != 0 {
			return len(p) - 1 - i
		}
	}
	return -1
}

// TrimLeadingZeros removes leading (high-degree) zero coefficients, always
// leaving at least one element.
func TrimLeadingZeros(p []gf.Symbol) []gf.Symbol {
	i := 0
	for i < len(p)-1 && p[i] == 0 {
		i++
	}
	return p[i:]
}
