package montgomery

// HalfRange restricts the modulus to n < R/2 in exchange for a cheaper
// ConvertIn/ConvertOut path in the original (it can skip a branch REDC needs
// when n can be as large as R-1). This package's REDC (see redc.go) is
// already branch-free on n's size, so HalfRange reuses FullRange outright;
// it exists as its own type purely so the narrower precondition is visible
// at the type/constructor level and enforced at construction time, the way
// the original's tag-based variant hierarchy exposes it.
type HalfRange[T Unsigned] struct {
	FullRange[T]
}

// HalfRangeMaxModulus returns the largest modulus HalfRange accepts for T:
// R/2 - 1, the greatest value strictly below R/2.
func HalfRangeMaxModulus[T Unsigned]() T {
	return T(1)<<uint(bitWidth[T]()-1) - 1
}

// NewHalfRange constructs a HalfRange context for modulus n < R/2.
func NewHalfRange[T Unsigned](n T) (*HalfRange[T], error) {
	b, err := newBase(n, bitWidth[T]()-1, "HalfRange")
	if err != nil {
		return nil, err
	}
	return &HalfRange[T]{FullRange: FullRange[T]{base: b}}, nil
}
