package gf

import "fmt"

func errOutOfRange(m int) error {
	return fmt.Errorf("gf: field exponent m=%d out of range [3,16]", m)
}

func errNoPrimePoly(generator, m int) error {
	return fmt.Errorf("gf: no primitive polynomial found for generator=%d, m=%d", generator, m)
}
