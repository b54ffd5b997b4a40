// Package rs implements the Reed-Solomon generator, systematic encoder and
// errors-and-erasures decoder over a gf.Field, per spec.md §4.3-§4.5.
//
// Grounded on the teacher's RSGeneratorPoly/RSCalcSyndromes/
// RSBerlekampMassey/RSErrorLocatorRoots/RSForneyAlgorithm family in
// das/erasure/polynomial_ops.go, re-derived under the high-degree-first
// convention of package poly, and cross-checked against the classic
// syndrome/Berlekamp-Massey/Chien/Forney pipeline ported faithfully (cgo
// aside) in doismellburning-samoyed's src/fx25_extract.go.
package rs

import (
	"github.com/tomerfiliba-org/reedsolomon/gf"
	"github.com/tomerfiliba-org/reedsolomon/poly"
)

// GeneratorPoly returns g(x) = Product_{i=0}^{nsym-1} (x + alpha^(i+fcr)),
// the degree-nsym generator polynomial used by the systematic encoder.
func GeneratorPoly(f *gf.Field, nsym, fcr int) []gf.Symbol {
	gen := []gf.Symbol{1}
	for i := 0; i < nsym; i++ {
		root := f.Exp(i + fcr)
		gen = poly.Mul(f, gen, []gf.Symbol{1, root})
	}
	return gen
}

// GeneratorCache holds GeneratorPoly(f, k, fcr) for every k in [0, nMax],
// built incrementally (each entry is one factor away from the last) so a
// codec that needs generators for several nsym values under one field and
// fcr never recomputes a shared prefix. Mirrors spec.md §4.3's
// "all_generators" cache.
type GeneratorCache struct {
	fcr  int
	gens [][]gf.Symbol
}

// NewGeneratorCache builds generator polynomials for every nsym in
// [0, nMax].
func NewGeneratorCache(f *gf.Field, nMax, fcr int) *GeneratorCache {
	gens := make([][]gf.Symbol, nMax+1)
	gens[0] = []gf.Symbol{1}
	for k := 1; k <= nMax; k++ {
		root := f.Exp(k - 1 + fcr)
		gens[k] = poly.Mul(f, gens[k-1], []gf.Symbol{1, root})
	}
	return &GeneratorCache{fcr: fcr, gens: gens}
}

// Get returns the cached generator polynomial of degree nsym.
func (c *GeneratorCache) Get(nsym int) []gf.Symbol {
	return c.gens[nsym]
}
