package montgomery

import "math/bits"

// selectValue merges onZero/onOne on a 0/1 bit without branching on it: bit
// is fanned out into an all-zero or all-one mask and the two candidates are
// merged bitwise, the same shape the pack's field-arithmetic cmov helpers
// use (e.g. poseidon2's Fr.cmov). Both onZero and onOne must already be
// computed by the caller — selectValue only ever merges, never skips work.
func selectValue[T Unsigned](bit T, onZero, onOne Value[T]) Value[T] {
	mask := T(0) - bit
	return newValue(onZero.v ^ ((onZero.v ^ onOne.v) & mask))
}

// Pow computes base^exponent via right-to-left (least significant bit
// first) square-and-multiply over a
// Montgomery-domain value. It works against the Variant interface, so it
// runs unchanged whether v is a concrete variant (FullRange, QuarterRange,
// ...) or a Context wrapping one.
//
// Every iteration computes both the squaring and the multiply-by-base
// unconditionally; only the merge of "keep result" vs. "result times b" is
// conditional on the exponent bit, via selectValue, rather than skipping
// the multiply outright.
func Pow[T Unsigned](v Variant[T], base Value[T], exponent uint64) Value[T] {
	if exponent == 0 {
		return v.Unity()
	}
	result := v.Unity()
	b := base
	for exponent > 0 {
		bit := T(exponent & 1)
		multiplied := v.Multiply(result, b)
		result = selectValue(bit, result, multiplied)
		b = v.Square(b)
		exponent >>= 1
	}
	return result
}

// TwoPow specializes Pow for base == 2: the Montgomery form of 2 is Unity
// doubled (2*R mod n), so it's obtained with one Add instead of a full
// ConvertIn.
func TwoPow[T Unsigned](v Variant[T], exponent uint64) Value[T] {
	two := v.Add(v.Unity(), v.Unity())
	return Pow(v, two, exponent)
}

// WindowedPow computes base^exponent using a fixed-width k-ary window:
// windowBits consecutive exponent bits are consumed per step against a
// precomputed table of base^0..base^(2^windowBits-1), trading the table's
// construction cost for fewer multiplies overall on large exponents.
func WindowedPow[T Unsigned](v Variant[T], base Value[T], exponent uint64, windowBits int) Value[T] {
	if exponent == 0 {
		return v.Unity()
	}
	if windowBits < 1 {
		windowBits = 1
	}

	tableSize := 1 << uint(windowBits)
	table := make([]Value[T], tableSize)
	table[0] = v.Unity()
	for i := 1; i < tableSize; i++ {
		table[i] = v.Multiply(table[i-1], base)
	}

	result := v.Unity()
	pos := bits.Len64(exponent) - 1
	for pos >= 0 {
		w := windowBits
		if pos+1 < w {
			w = pos + 1
		}
		for i := 0; i < w; i++ {
			result = v.Square(result)
		}
		shift := pos - w + 1
		mask := uint64(1<<uint(w)) - 1
		windowVal := (exponent >> uint(shift)) & mask
		// table[0] is Unity, so multiplying unconditionally is already a
		// no-op for a zero window instead of needing a branch to skip it.
		result = v.Multiply(result, table[windowVal])
		pos -= w
	}
	return result
}

// ArrayPow computes bases[i]^exponent for every i, sharing a single
// exponent across the array. tag selects the merge strategy: LowLatencyTag
// interleaves every base's squaring and multiply within the same bit-loop
// iteration, so the latency of one base's Square/Multiply can overlap with
// independent work on the others; LowUopsTag instead runs each base's
// exponentiation to completion before starting the next, which is simpler
// but gives the scheduler no independent work to interleave. A nil (or
// otherwise unrecognized) tag behaves like LowUopsTag.
func ArrayPow[T Unsigned](v Variant[T], bases []Value[T], exponent uint64, tag any) []Value[T] {
	if _, ok := tag.(LowLatencyTag); ok {
		return arrayPowInterleaved(v, bases, exponent)
	}
	return arrayPowSequential(v, bases, exponent)
}

func arrayPowSequential[T Unsigned](v Variant[T], bases []Value[T], exponent uint64) []Value[T] {
	results := make([]Value[T], len(bases))
	for i, base := range bases {
		results[i] = Pow(v, base, exponent)
	}
	return results
}

func arrayPowInterleaved[T Unsigned](v Variant[T], bases []Value[T], exponent uint64) []Value[T] {
	n := len(bases)
	results := make([]Value[T], n)
	for i := range results {
		results[i] = v.Unity()
	}
	working := make([]Value[T], n)
	copy(working, bases)

	for exponent > 0 {
		bit := T(exponent & 1)
		for i := 0; i < n; i++ {
			multiplied := v.Multiply(results[i], working[i])
			results[i] = selectValue(bit, results[i], multiplied)
		}
		for i := 0; i < n; i++ {
			working[i] = v.Square(working[i])
		}
		exponent >>= 1
	}
	return results
}
