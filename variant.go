package montgomery

// Variant is the common interface every Montgomery representation (C5's five
// range-restricted variants) implements. A Context (C6) holds one of these to
// dispatch the default variant choice at runtime; advanced callers can also
// use a concrete variant type directly to monomorphize via generics instead.
//
// Values passed to and returned from these methods are Montgomery-domain
// values (see Value), not the plain residues they represent. Canonical
// reports whether a variant's domain is [0, n) (true) or the wider
// [0, 2n)-style non-canonical domain some variants use internally for speed
// (false); ConvertOut always produces a plain residue in [0, n) regardless.
type Variant[T Unsigned] interface {
	Modulus() T
	Canonical() bool

	ConvertIn(x T) (Value[T], error)
	ConvertOut(v Value[T]) T

	Unity() Value[T]
	Zero() Value[T]
	NegOne() Value[T]

	Add(x, y Value[T]) Value[T]
	Subtract(x, y Value[T]) Value[T]
	Negate(x Value[T]) Value[T]
	Multiply(x, y Value[T]) Value[T]
	Square(x Value[T]) Value[T]
	FusedMultiplyAdd(x, y, z Value[T]) Value[T]
	FusedMultiplySubtract(x, y, z Value[T]) Value[T]

	// GetCanonical reduces v to the variant's canonical representation,
	// 0 <= v < n, idempotently. For variants whose domain is already
	// canonical (FullRange, HalfRange) this is the identity.
	GetCanonical(v Value[T]) Value[T]
}

// base holds the construction state shared by every variant: the modulus,
// its Montgomery inverse, and the cached Montgomery forms of the constants
// every variant needs regardless of its value-range convention.
type base[T Unsigned] struct {
	n            T
	invN         T
	rSquaredModN T
	unityVal     T
	negOneVal    T
}

// computeInvN finds invN such that n*invN ≡ 1 (mod R), R = 2^W, via
// Newton-Raphson / Hensel lifting (Hurchalla's REDC.h derives the same
// constant with the opposite sign convention; ours stays unnegated — see
// redc.go for why that keeps FullRange's intermediate values within T's
// width). The starting guess (3n) XOR 2 is already correct to 3 bits for any
// odd n; each iteration of x = x*(2-n*x) doubles the number of correct bits,
// so five iterations comfortably clear the widest width this package
// supports (64 bits: 3 -> 6 -> 12 -> 24 -> 48 -> 96).
func computeInvN[T Unsigned](n T) T {
	x := (3 * n) ^ T(2)
	for precision := 3; precision < bitWidth[T](); precision *= 2 {
		x = x * (2 - n*x)
	}
	return x
}

// pow2ModN returns 2^k mod n via repeated doubling, used to build R mod n and
// (from that) R² mod n without ever needing to represent R itself in T.
func pow2ModN[T Unsigned](k int, n T) T {
	var r T = 1 % n
	for i := 0; i < k; i++ {
		r = ModAdd(r, r, n)
	}
	return r
}

// newBase validates n and builds the shared constants every variant needs.
// maxBits restricts how large n may be relative to R = 2^W: n must be below
// 2^maxBits (W for FullRange's "no extra restriction beyond odd", W-1 for
// HalfRange's n < R/2, W-2 for QuarterRange's n < R/4);
// variantName is used only to label a returned InvalidModulusError.
func newBase[T Unsigned](n T, maxBits int, variantName string) (base[T], error) {
	if n%2 == 0 {
		return base[T]{}, &InvalidModulusError{Variant: variantName, N: uint64(n), Reason: "modulus must be odd"}
	}
	if n <= 1 {
		return base[T]{}, &InvalidModulusError{Variant: variantName, N: uint64(n), Reason: "modulus must be greater than 1"}
	}
	if maxBits < bitWidth[T]() {
		limit := T(1) << uint(maxBits)
		if n >= limit {
			return base[T]{}, &InvalidModulusError{Variant: variantName, N: uint64(n), Reason: "modulus out of range for this variant"}
		}
	}

	w := bitWidth[T]()
	invN := computeInvN(n)
	rModN := pow2ModN[T](w, n)
	rSquaredModN := ModMul(rModN, rModN, n)

	unityVal := rModN
	negOneVal, _ := redcFrom(n-1, n, invN, rSquaredModN)

	return base[T]{
		n:            n,
		invN:         invN,
		rSquaredModN: rSquaredModN,
		unityVal:     unityVal,
		negOneVal:    negOneVal,
	}, nil
}

// redcFrom converts a plain residue x (0 <= x < n) into its canonical
// Montgomery form, i.e. x*R mod n.
func redcFrom[T Unsigned](x, n, invN, rSquaredModN T) (T, error) {
	hi, lo := wideMul(x, rSquaredModN)
	return redc(hi, lo, n, invN), nil
}
