package vis

import "errors"

// ErrGCDUndefined is returned for Gcd(0, 0), which has no greatest common
// divisor. It only arises from a zero-length segment, which callers
// special-case before reaching the general line-of-sight path.
var ErrGCDUndefined = errors.New("gcd undefined for 0, 0")

// Gcd returns the greatest common divisor of the absolute values of a and b
// by Euclidean remainder reduction.
func Gcd(a, b int) (int, error) {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	switch {
	case a == 0 && b == 0:
		return 0, ErrGCDUndefined
	case a == 0:
		return b, nil
	case b == 0:
		return a, nil
	}
	for a > 0 && b > 0 {
		if a > b {
			a %= b
		} else {
			b %= a
		}
	}
	if a == 0 {
		return b, nil
	}
	return a, nil
}
