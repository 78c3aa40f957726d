package montgomery

// SixthRange tightens QuarterRange's precondition further, to n < R/6. The
// extra headroom (2n*3 < R rather than just 2n*2 < R) is what lets a caller
// chain an extra unordered add/subtract against a SixthRange value before
// any reduction is needed — useful for accumulating several terms before
// normalizing, the way the original's tag hierarchy lets SixthRange code
// fall back to QuarterRange's operations wherever the tighter bound isn't
// actually required. Every operation here is therefore inherited unchanged
// from QuarterRange; only construction enforces the tighter bound.
type SixthRange[T Unsigned] struct {
	QuarterRange[T]
}

// sixthRangeLimit returns floor(R/6), the exclusive upper bound on the
// modulus, for width w.
func sixthRangeLimit(w int) uint64 {
	if w < 64 {
		return (uint64(1) << uint(w)) / 6
	}
	// floor(2^64/6), computed once since 2^64 itself overflows uint64.
	return 3074457345618258602
}

// SixthRangeMaxModulus returns the largest modulus SixthRange accepts for T:
// floor(R/6) - 1.
func SixthRangeMaxModulus[T Unsigned]() T {
	return T(sixthRangeLimit(bitWidth[T]()) - 1)
}

// NewSixthRange constructs a SixthRange context for modulus n < R/6.
func NewSixthRange[T Unsigned](n T) (*SixthRange[T], error) {
	w := bitWidth[T]()
	// R/6 isn't a power of two, so this can't reuse newBase's maxBits shift
	// check directly: compute the bound as a value and compare explicitly.
	if n%2 == 0 {
		return nil, &InvalidModulusError{Variant: "SixthRange", N: uint64(n), Reason: "modulus must be odd"}
	}
	if n <= 1 {
		return nil, &InvalidModulusError{Variant: "SixthRange", N: uint64(n), Reason: "modulus must be greater than 1"}
	}
	if limit := sixthRangeLimit(w); uint64(n) >= limit {
		return nil, &InvalidModulusError{Variant: "SixthRange", N: uint64(n), Reason: "modulus must be below R/6"}
	}

	b, err := newBase(n, w, "SixthRange")
	if err != nil {
		return nil, err
	}
	return &SixthRange[T]{QuarterRange: QuarterRange[T]{base: b}}, nil
}
