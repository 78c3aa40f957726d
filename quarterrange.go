package montgomery

// QuarterRange restricts the modulus to n < R/4. In exchange, every value it
// produces or accepts may be "non-canonical": any representative of its
// residue class in [0, 2n), not just the one in [0, n). Add, Subtract, and
// Negate can then be computed with a single unconditional bound check
// instead of branching on operand order, because x, y < 2n and n < R/4
// together guarantee x + 2n - y < 4n <= R can never overflow T.
type QuarterRange[T Unsigned] struct {
	base[T]
}

// QuarterRangeMaxModulus returns the largest modulus QuarterRange accepts
// for T: R/4 - 1.
func QuarterRangeMaxModulus[T Unsigned]() T {
	return T(1)<<uint(bitWidth[T]()-2) - 1
}

// NewQuarterRange constructs a QuarterRange context for modulus n < R/4.
func NewQuarterRange[T Unsigned](n T) (*QuarterRange[T], error) {
	b, err := newBase(n, bitWidth[T]()-2, "QuarterRange")
	if err != nil {
		return nil, err
	}
	return &QuarterRange[T]{base: b}, nil
}

func (q *QuarterRange[T]) Modulus() T      { return q.n }
func (q *QuarterRange[T]) Canonical() bool { return false }

func (q *QuarterRange[T]) ConvertIn(x T) (Value[T], error) {
	if x >= q.n {
		return Value[T]{}, &InvalidValueError{Reason: "value must be in [0, n)"}
	}
	hi, lo := wideMul(x, q.rSquaredModN)
	return newValue(redc(hi, lo, q.n, q.invN)), nil
}

// ConvertOut reduces v — canonical or not — to the plain residue in [0, n).
// REDC's bound only needs the high word to be below n, and that word is
// always 0 here, so this is correct regardless of which representative in
// [0, 2n) v happens to be.
func (q *QuarterRange[T]) ConvertOut(v Value[T]) T {
	return redc(0, v.v, q.n, q.invN)
}

func (q *QuarterRange[T]) Unity() Value[T]  { return newValue(q.unityVal) }
func (q *QuarterRange[T]) Zero() Value[T]   { return newValue(T(0)) }
func (q *QuarterRange[T]) NegOne() Value[T] { return newValue(q.negOneVal) }

// Add returns x+y, reduced at most once by 2n to stay within [0, 2n).
func (q *QuarterRange[T]) Add(x, y Value[T]) Value[T] {
	return newValue(addBelowBound(x.v, y.v, 2*q.n))
}

// Subtract is UnorderedSubtract: like ModSub it accepts x < y, but it adds
// the 2n bound unconditionally instead of branching on operand order.
func (q *QuarterRange[T]) Subtract(x, y Value[T]) Value[T] {
	return q.UnorderedSubtract(x, y)
}

// UnorderedSubtract computes x-y mod n within [0, 2n), without branching on
// whether x >= y. It adds 2n unconditionally (safe since n < R/4) and
// reduces once if that pushed the result past the 2n bound.
func (q *QuarterRange[T]) UnorderedSubtract(x, y Value[T]) Value[T] {
	bound := 2 * q.n
	result := x.v + bound - y.v
	if result >= bound {
		result -= bound
	}
	return newValue(result)
}

// Negate returns n's additive inverse of x, also within [0, 2n).
func (q *QuarterRange[T]) Negate(x Value[T]) Value[T] {
	if x.v == 0 {
		return x
	}
	return newValue(2*q.n - x.v)
}

// GetCanonical reduces a value in [0, 2n) to [0, n) with a single
// conditional subtraction, matching quarterrange_get_canonical.h's cmov.
func (q *QuarterRange[T]) GetCanonical(v Value[T]) Value[T] {
	if v.v >= q.n {
		return newValue(v.v - q.n)
	}
	return v
}

func (q *QuarterRange[T]) Multiply(x, y Value[T]) Value[T] {
	hi, lo := wideMul(x.v, y.v)
	return newValue(redc(hi, lo, q.n, q.invN))
}

func (q *QuarterRange[T]) Square(x Value[T]) Value[T] {
	return q.Multiply(x, x)
}

func (q *QuarterRange[T]) FusedMultiplyAdd(x, y, z Value[T]) Value[T] {
	return q.Add(q.Multiply(x, y), z)
}

func (q *QuarterRange[T]) FusedMultiplySubtract(x, y, z Value[T]) Value[T] {
	return q.Subtract(q.Multiply(x, y), z)
}

// addBelowBound returns a+b, reduced by bound once if needed. Requires
// a, b < bound and 2*bound representable in T (both hold for QuarterRange's
// and SixthRange's own bound choices).
func addBelowBound[T Unsigned](a, b, bound T) T {
	result := a + b
	if result >= bound {
		result -= bound
	}
	return result
}
