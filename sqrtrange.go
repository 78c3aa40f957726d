package montgomery

// SqrtRange restricts the modulus to n < sqrt(R). That's tight enough that
// any two domain values x, y in (0, n] satisfy x*y <= n*n < R: the product
// already fits in a single T-width register, so Multiply never needs
// wideMul for that step (only REDC's internal m*n still can, since m ranges
// over all of [0, R)).
//
// This variant represents its residue class for 0 using n itself rather
// than 0, i.e. every value lives in (0, n] instead of [0, n). That keeps the
// additive identity out of the arithmetic entirely, which is what lets Add
// and Subtract below use a single unconditional bound check apiece instead
// of the two-sided check a [0, n) representation would need near zero.
type SqrtRange[T Unsigned] struct {
	base[T]
}

// SqrtRangeMaxModulus returns the largest modulus SqrtRange accepts for T:
// 2^(W/2) - 1, the greatest value strictly below sqrt(R).
func SqrtRangeMaxModulus[T Unsigned]() T {
	return T(uint64(1)<<uint(bitWidth[T]()/2) - 1)
}

// NewSqrtRange constructs a SqrtRange context for modulus n < sqrt(R).
func NewSqrtRange[T Unsigned](n T) (*SqrtRange[T], error) {
	w := bitWidth[T]()
	if n%2 == 0 {
		return nil, &InvalidModulusError{Variant: "SqrtRange", N: uint64(n), Reason: "modulus must be odd"}
	}
	if n <= 1 {
		return nil, &InvalidModulusError{Variant: "SqrtRange", N: uint64(n), Reason: "modulus must be greater than 1"}
	}
	if limit := uint64(1) << uint(w/2); uint64(n) >= limit {
		return nil, &InvalidModulusError{Variant: "SqrtRange", N: uint64(n), Reason: "modulus must be below sqrt(R)"}
	}

	b, err := newBase(n, w, "SqrtRange")
	if err != nil {
		return nil, err
	}
	return &SqrtRange[T]{base: b}, nil
}

func (s *SqrtRange[T]) Modulus() T      { return s.n }
func (s *SqrtRange[T]) Canonical() bool { return false }

// foldZero maps the plain-REDC result 0 to this variant's representative n.
func (s *SqrtRange[T]) foldZero(v T) T {
	if v == 0 {
		return s.n
	}
	return v
}

func (s *SqrtRange[T]) ConvertIn(x T) (Value[T], error) {
	if x >= s.n {
		return Value[T]{}, &InvalidValueError{Reason: "value must be in [0, n)"}
	}
	hi, lo := wideMul(x, s.rSquaredModN)
	return newValue(s.foldZero(redc(hi, lo, s.n, s.invN))), nil
}

// ConvertOut needs no folding the other way: redc(0, n, n, invN) already
// equals 0 directly (m = n*invN mod R = 1 by construction, so the reduction
// collapses to 0 - 0), so passing the n-representative straight through
// already yields the right plain residue.
func (s *SqrtRange[T]) ConvertOut(v Value[T]) T {
	return redc(0, v.v, s.n, s.invN)
}

// GetCanonical maps this variant's (0, n] representative back into the
// general [0, n) contract: only the n-representative of zero needs folding.
func (s *SqrtRange[T]) GetCanonical(v Value[T]) Value[T] {
	if v.v == s.n {
		return newValue(T(0))
	}
	return v
}

// Negate returns n's additive inverse of x within (0, n]: n-x lands in
// [0, n), and foldZero brings a zero result back to the n-representative.
func (s *SqrtRange[T]) Negate(x Value[T]) Value[T] {
	return newValue(s.foldZero(s.n - x.v))
}

func (s *SqrtRange[T]) Unity() Value[T]  { return newValue(s.foldZero(s.unityVal)) }
func (s *SqrtRange[T]) Zero() Value[T]   { return newValue(s.n) }
func (s *SqrtRange[T]) NegOne() Value[T] { return newValue(s.foldZero(s.negOneVal)) }

// Add keeps both operands in (0, n]: their sum lies in (0, 2n], so a single
// conditional subtraction of n restores that range.
func (s *SqrtRange[T]) Add(x, y Value[T]) Value[T] {
	sum := x.v + y.v
	if sum > s.n {
		sum -= s.n
	}
	return newValue(sum)
}

// Subtract computes x-y within (0, n] without branching on operand order:
// (x+n)-y can't underflow since x >= 1 and y <= n, and lands in [1, 2n-1],
// so one conditional subtraction of n restores (0, n].
func (s *SqrtRange[T]) Subtract(x, y Value[T]) Value[T] {
	diff := x.v + s.n - y.v
	if diff > s.n {
		diff -= s.n
	}
	return newValue(diff)
}

// Multiply computes x*y natively (exact, since x, y <= n and n*n < R) and
// reduces the single-word product through REDC.
func (s *SqrtRange[T]) Multiply(x, y Value[T]) Value[T] {
	lo := x.v * y.v
	return newValue(s.foldZero(redc(0, lo, s.n, s.invN)))
}

func (s *SqrtRange[T]) Square(x Value[T]) Value[T] {
	return s.Multiply(x, x)
}

func (s *SqrtRange[T]) FusedMultiplyAdd(x, y, z Value[T]) Value[T] {
	return s.Add(s.Multiply(x, y), z)
}

func (s *SqrtRange[T]) FusedMultiplySubtract(x, y, z Value[T]) Value[T] {
	return s.Subtract(s.Multiply(x, y), z)
}
