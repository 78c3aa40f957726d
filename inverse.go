package montgomery

// ModInverse computes v^-1 mod n via the extended Euclidean algorithm adapted
// for unsigned inputs, following
// https://jeffhurchalla.com/2018/10/13/implementing-the-extended-euclidean-algorithm-with-unsigned-inputs/
//
// Requires n > 1. S must be the signed type of the same bit width as T (the
// "signed companion" the original derives via extensible_make_signed<T> — Go
// generics have no associated-type mechanism to do this automatically, so
// callers name S explicitly, e.g. ModInverse[uint32, int32](v, n)).
//
// Returns (inv, gcd). If gcd(v, n) == 1, inv is the unique value in [1, n)
// with v*inv ≡ 1 (mod n). Otherwise inv is 0 — a safe sentinel, since for
// n > 1 a true inverse is never 0 — and gcd is the actual greatest common
// divisor of v and n.
func ModInverse[T Unsigned, S Signed](v, n T) (inv T, gcd T) {
	if n <= 1 {
		panic("montgomery: ModInverse requires n > 1")
	}

	var y0 S = 1
	var y1 S = 0
	a1 := n
	a2 := v
	var q T = 0

	for a2 > 1 {
		y2 := y0 - S(q)*y1
		y0, y1 = y1, y2

		a0 := a1
		a1 = a2
		q = a0 / a1
		a2 = a0 - q*a1
	}

	if a2 == 1 {
		y := y0 - S(q)*y1
		if y < 0 {
			inv = T(y) + n
		} else {
			inv = T(y)
		}
		return inv, 1
	}
	return 0, a1
}
