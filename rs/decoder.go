package rs

import (
	"fmt"

	"github.com/tomerfiliba-org/reedsolomon/gf"
	"github.com/tomerfiliba-org/reedsolomon/poly"
)

// Decoder performs errors-and-erasures Reed-Solomon decoding over a single
// field, at a fixed first-consecutive-root (fcr) convention.
type Decoder struct {
	f   *gf.Field
	fcr int
}

// NewDecoder returns a Decoder for f, evaluating syndromes starting at
// alpha^fcr.
func NewDecoder(f *gf.Field, fcr int) *Decoder {
	return &Decoder{f: f, fcr: fcr}
}

// DecodeResult is the outcome of a successful DecodeChunk call.
type DecodeResult struct {
	// Message is the corrected data portion (received[:len-nsym]).
	Message []gf.Symbol
	// Full is the corrected chunk, message and parity together.
	Full []gf.Symbol
	// Errata holds every position (erasure or error) that was corrected,
	// erasures first.
	Errata []int
}

// DecodeChunk corrects received in place (on a private copy) against nsym
// parity symbols, given a set of known erasure positions. When onlyErasures
// is true, decoding skips error search entirely (Forney syndromes,
// Berlekamp-Massey, Chien search) and treats every erasure position's value
// as unknown to be solved for directly — the spec.md §4.5 "only_erasures"
// fast path. Otherwise it also searches for and corrects up to
// floor((nsym-|erasePos|)/2) additional unlocated errors.
func (d *Decoder) DecodeChunk(received []gf.Symbol, nsym int, erasePos []int, onlyErasures bool) (*DecodeResult, error) {
	nmess := len(received)
	if nsym < 0 || nsym > nmess {
		return nil, fmt.Errorf("rs: invalid nsym=%d for a chunk of length %d", nsym, nmess)
	}
	if len(erasePos) > nsym {
		return nil, newStageError("erasures", ErrTooManyErasures)
	}
	for _, e := range erasePos {
		if e < 0 || e >= nmess {
			return nil, fmt.Errorf("rs: erasure position %d out of range [0,%d)", e, nmess)
		}
	}

	r := append([]gf.Symbol(nil), received...)
	for _, e := range erasePos {
		r[e] = 0
	}

	synd := d.Syndromes(r, nsym)
	if AllZero(synd) {
		return &DecodeResult{
			Message: append([]gf.Symbol{}, r[:nmess-nsym]...),
			Full:    r,
			Errata:  append([]int(nil), erasePos...),
		}, nil
	}

	var errataPositions []int
	var errLocAll []gf.Symbol

	if onlyErasures {
		errataPositions = append([]int(nil), erasePos...)
		errLocAll = errataLocator(d.f, nmess, erasePos)
	} else {
		fsynd := forneySyndromes(d.f, synd, erasePos, nmess)
		errLocUnknown, err := berlekampMassey(d.f, fsynd, nsym, len(erasePos))
		if err != nil {
			return nil, newStageError("berlekamp-massey", err)
		}
		errPositions, err := chienSearch(d.f, errLocUnknown, nmess)
		if err != nil {
			return nil, newStageError("chien-search", err)
		}
		errataPositions = append(append([]int(nil), erasePos...), errPositions...)
		errLocAll = errataLocator(d.f, nmess, errataPositions)
	}

	if err := applyForney(d.f, r, synd, errLocAll, errataPositions, d.fcr); err != nil {
		return nil, newStageError("forney", err)
	}

	residual := d.Syndromes(r, nsym)
	if !AllZero(residual) {
		return nil, newStageError("verify", ErrUncorrectableResidual)
	}

	return &DecodeResult{
		Message: append([]gf.Symbol{}, r[:nmess-nsym]...),
		Full:    r,
		Errata:  errataPositions,
	}, nil
}

// Syndromes returns S of length nsym+1 with S[0]=0 and
// S[k] = Eval(r, alpha^(fcr+k-1)) for k in [1, nsym]. Exported so the codec
// facade's Check can test a chunk for corruption without a full decode.
func (d *Decoder) Syndromes(r []gf.Symbol, nsym int) []gf.Symbol {
	s := make([]gf.Symbol, nsym+1)
	for k := 0; k < nsym; k++ {
		s[k+1] = poly.Eval(d.f, r, d.f.Exp(k+d.fcr))
	}
	return s
}

// AllZero reports whether every syndrome in s is zero, i.e. the chunk the
// syndromes were computed over is (as far as this code can tell) clean.
func AllZero(s []gf.Symbol) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// errataLocator returns Product_{p in positions} (1 + alpha^(nmess-1-p) x),
// the polynomial whose roots are alpha^(nmess-1-p) for each given position.
func errataLocator(f *gf.Field, nmess int, positions []int) []gf.Symbol {
	loc := []gf.Symbol{1}
	for _, p := range positions {
		root := f.Exp(nmess - 1 - p)
		loc = poly.Mul(f, loc, []gf.Symbol{root, 1})
	}
	return loc
}

// forneySyndromes folds the contribution of known erasures out of the
// syndrome sequence, leaving a syndrome-like sequence that Berlekamp-Massey
// can run on to find only the unknown errors.
func forneySyndromes(f *gf.Field, synd []gf.Symbol, erasePos []int, nmess int) []gf.Symbol {
	fsynd := append([]gf.Symbol(nil), synd[1:]...)
	for _, p := range erasePos {
		x := f.Exp(nmess - 1 - p)
		for j := 0; j < len(fsynd)-1; j++ {
			fsynd[j] = gf.Add(f.Mul(fsynd[j], x), fsynd[j+1])
		}
	}
	return fsynd
}

// berlekampMassey runs the iterative Berlekamp-Massey recurrence over fsynd
// (a Forney-folded syndrome sequence, eraseCount erasures already removed)
// for nsym-eraseCount iterations, returning the error-locator polynomial for
// the remaining unlocated errors.
func berlekampMassey(f *gf.Field, fsynd []gf.Symbol, nsym, eraseCount int) ([]gf.Symbol, error) {
	errLoc := []gf.Symbol{1}
	oldLoc := []gf.Symbol{1}

	iterations := nsym - eraseCount
	syndShift := 0
	if len(fsynd) > nsym {
		syndShift = len(fsynd) - nsym
	}

	for i := 0; i < iterations; i++ {
		k := i + syndShift
		delta := fsynd[k]
		for j := 1; j < len(errLoc); j++ {
			delta = gf.Add(delta, f.Mul(errLoc[len(errLoc)-1-j], fsynd[k-j]))
		}
		oldLoc = append(oldLoc, 0)
		if delta != 0 {
			if len(oldLoc) > len(errLoc) {
				newLoc := poly.Scale(f, oldLoc, delta)
				oldLoc = poly.Scale(f, errLoc, f.Inv(delta))
				errLoc = newLoc
			}
			errLoc = poly.Add(errLoc, poly.Scale(f, oldLoc, delta))
		}
	}

	errLoc = poly.TrimLeadingZeros(errLoc)
	errs := poly.Degree(errLoc)
	if errs < 0 {
		errs = 0
	}
	if errs*2+eraseCount > nsym {
		return nil, ErrTooManyErrors
	}
	return errLoc, nil
}

// chienSearch finds the error positions encoded by errLoc, the locator
// Lambda(x) = Product (1 + X_j x) with X_j = alpha^(nmess-1-p_j), whose roots
// are the inverses of the X_j. It evaluates the coefficient-reversed
// polynomial, whose roots are the X_j themselves, at alpha^0..alpha^(nmess-1)
// and translates each root index i to the error position nmess-1-i. Fails if
// the number of roots found does not match the locator's degree.
func chienSearch(f *gf.Field, errLoc []gf.Symbol, nmess int) ([]int, error) {
	want := poly.Degree(errLoc)
	if want < 0 {
		want = 0
	}
	rev := reverseSymbols(errLoc)
	var positions []int
	for i := 0; i < nmess; i++ {
		if poly.Eval(f, rev, f.Exp(i)) == 0 {
			positions = append(positions, nmess-1-i)
		}
	}
	if len(positions) != want {
		return nil, ErrChienMismatch
	}
	return positions, nil
}

// applyForney computes error magnitudes for every position in positions
// using the Forney algorithm and XORs the corrections into r in place.
// errLocAll must be the combined errata locator (errataLocator over
// exactly positions) and synd the full (unfolded) syndrome sequence.
func applyForney(f *gf.Field, r []gf.Symbol, synd, errLocAll []gf.Symbol, positions []int, fcr int) error {
	if len(positions) == 0 {
		return nil
	}
	nmess := len(r)
	nsym := len(synd) - 1

	// Omega(x) = (S(x) * Lambda_all(x)) mod x^(nsym+1), kept as the tail
	// (nsym+1) coefficients of the full product, in this package's
	// high-degree-first convention. synd holds S_k at index k (array
	// position is the power of x, low-degree-first), the opposite of that
	// convention, so it is reversed once before the multiplication. See
	// poly's package doc and spec.md §9 on the source's mixed conventions.
	prod := poly.Mul(f, reverseSymbols(synd), errLocAll)
	tailLen := nsym + 1
	if tailLen > len(prod) {
		tailLen = len(prod)
	}
	omega := prod[len(prod)-tailLen:]

	x := make([]gf.Symbol, len(positions))
	for i, p := range positions {
		x[i] = f.Exp(nmess - 1 - p)
	}

	delta := make([]gf.Symbol, nmess)
	for i, p := range positions {
		xi := x[i]
		xiInv := f.Inv(xi)

		locPrime := gf.Symbol(1)
		for j, xj := range x {
			if j == i {
				continue
			}
			locPrime = f.Mul(locPrime, gf.Sub(1, f.Mul(xiInv, xj)))
		}
		if locPrime == 0 {
			return ErrForneyDegenerate
		}

		y := f.Mul(f.Pow(xi, 1-fcr), poly.Eval(f, omega, xiInv))
		magnitude, err := f.Div(y, locPrime)
		if err != nil {
			return err
		}
		delta[p] = magnitude
	}

	for i := range r {
		r[i] = gf.Add(r[i], delta[i])
	}
	return nil
}

func reverseSymbols(p []gf.Symbol) []gf.Symbol {
	out := make([]gf.Symbol, len(p))
	for i, c := range p {
		out[len(p)-1-i] = c
	}
	return out
}
