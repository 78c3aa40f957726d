package montgomery

import "math/bits"

// wideMul computes the full 2W-bit product of a and b, returning the high and
// low W-bit halves such that hi*2^W + lo == a*b over the integers (C2).
//
// For widths with a native wider Go type (uint8, uint16, uint32) this takes
// the cast-and-split fast path: promote both operands to the wider type,
// multiply, then split. uint64 has no native 128-bit Go type, so it takes the
// platform fast path exposed by math/bits.Mul64 — the same word-at-a-time
// primitive the teacher's mulAddScalar uses, and the portable equivalent of
// the half-split algorithm below (see portableWideMul64 for that algorithm
// spelled out explicitly, kept for cross-checking in tests).
func wideMul[T Unsigned](a, b T) (hi, lo T) {
	switch bitWidth[T]() {
	case 8:
		p := uint16(a) * uint16(b)
		return T(p >> 8), T(p)
	case 16:
		p := uint32(a) * uint32(b)
		return T(p >> 16), T(p)
	case 32:
		p := uint64(a) * uint64(b)
		return T(p >> 32), T(p)
	case 64:
		h, l := bits.Mul64(uint64(a), uint64(b))
		return T(h), T(l)
	default:
		panic("montgomery: unsupported width")
	}
}

// portableWideMul64 computes the 128-bit product of two uint64 values using
// the half-split decomposition from spec §4.2, without relying on a native
// wider type or a hardware-intrinsic widening multiply. It exists to
// demonstrate (and test against bits.Mul64) the fallback algorithm required
// for platforms where no wider type and no widening-multiply instruction is
// available.
func portableWideMul64(a, b uint64) (hi, lo uint64) {
	const halfShift = 32
	const mask = 1<<halfShift - 1

	u0, u1 := a&mask, a>>halfShift
	v0, v1 := b&mask, b>>halfShift

	loLo := u0 * v0
	hiLo := u1 * v0
	loHi := u0 * v1
	hiHi := u1 * v1

	// The first two addends of cross fit in 32 bits and loHi is at most
	// (2^32-1)^2, so the sum is bounded by 2^64-1 and the combine step below
	// cannot overflow uint64.
	cross := (loLo >> halfShift) + (hiLo & mask) + loHi
	hi = (hiLo >> halfShift) + (cross >> halfShift) + hiHi
	lo = (cross << halfShift) | (loLo & mask)
	return hi, lo
}
