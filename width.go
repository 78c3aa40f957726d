package montgomery

// Unsigned is the set of machine-word unsigned integer types this package
// operates on. It stands in for the "parametric unsigned integer type T of
// bit-width W" from the data model: every Montgomery context, value, and
// primitive in this package is generic over one of these four widths.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the signed companion family used by the extended-GCD inverse
// (ModInverse), which mixes unsigned remainders with a signed cofactor
// sequence. Callers that need a signed companion for a given
// Unsigned type T must supply the S of matching bit width themselves (Go has
// no associated-type mechanism to derive it automatically the way
// extensible_make_signed<T> does in the original).
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// bitWidth returns the bit-width W of T.
func bitWidth[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		// unreachable: Unsigned has exactly these four type terms.
		panic("montgomery: unsupported width")
	}
}

// hasWiderType reports whether a native unsigned type of width 2W exists and
// is no wider than the platform's pointer width (64 bits, here). This is the
// C1 "does a wider type exist?" query; New does not consult it, since it
// picks a variant from n's magnitude instead. It is true for
// uint8, uint16, and uint32 (whose doubled widths are uint16, uint32, and
// uint64), and false for uint64, whose doubled width (128 bits) has no
// native Go type.
func hasWiderType[T Unsigned]() bool {
	return bitWidth[T]() < 64
}
