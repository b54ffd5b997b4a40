package gf

// FindPrimePolys searches for primitive polynomials of degree m that, paired
// with the given generator, produce a valid GF(2^m) (every non-zero element
// reachable, no repeats before charac steps). Candidates are tried in
// (q, 2q), per spec.md §4.1. When fast is set, the search is restricted to
// candidates that are prime integers (via a sieve over [0, 2q)), which skips
// most candidates before the O(q) table simulation runs. Integer primality
// is not a necessary condition, so the fast search also skips some valid
// polynomials (e.g. 0x187 = 17*23 for m=8). When single is set,
// FindPrimePolys returns as soon as it finds one candidate.
func FindPrimePolys(generator, m int, fast, single bool) ([]int, error) {
	if m < 3 || m > 16 {
		return nil, errOutOfRange(m)
	}
	q := 1 << uint(m)

	var isPrime []bool
	if fast {
		isPrime = sieve(2 * q)
	}

	var found []int
	for candidate := q + 1; candidate < 2*q; candidate++ {
		if fast && !isPrime[candidate] {
			continue
		}
		if isCandidateValid(candidate, generator, q) {
			found = append(found, candidate)
			if single {
				return found, nil
			}
		}
	}
	if len(found) == 0 {
		return nil, errNoPrimePoly(generator, m)
	}
	return found, nil
}

// isCandidateValid simulates the table build under candidate and reports
// whether it generates all q-1 non-zero elements without repetition, i.e.
// whether candidate is a valid primitive polynomial for this generator.
func isCandidateValid(candidate, generator, q int) bool {
	charac := q - 1
	seen := make([]bool, q)
	x := Symbol(1)
	for i := 0; i < charac; i++ {
		if int(x) > q-1 || seen[x] {
			return false
		}
		seen[x] = true
		x = carrylessMul(x, Symbol(generator), uint32(candidate), uint32(q))
	}
	return true
}

// sieve returns a boolean table of length n where isPrime[i] reports
// whether i is prime, using the sieve of Eratosthenes.
func sieve(n int) []bool {
	isPrime := make([]bool, n)
	for i := 2; i < n; i++ {
		isPrime[i] = true
	}
	for p := 2; p*p < n; p++ {
		if !isPrime[p] {
			continue
		}
		for m := p * p; m < n; m += p {
			isPrime[m] = false
		}
	}
	return isPrime
}
