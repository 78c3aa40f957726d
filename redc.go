package montgomery

// redcIncomplete performs Montgomery reduction given (u_hi, u_lo) with
// u_hi*R + u_lo < n*R (equivalently u_hi < n), the odd modulus n, and invN
// satisfying n*invN ≡ 1 (mod R) — the ordinary modular inverse of n, not its
// negation.
//
// With that convention, m = u_lo*invN mod R makes m*n agree with u_lo in its
// low word exactly (not merely mod R): m*n ≡ u_lo*invN*n ≡ u_lo (mod R), and
// both sides already lie in [0, R), so they're equal outright. That means
// u - m*n is an exact multiple of R whose quotient is simply u_hi - t_hi,
// where t_hi is the high word of m*n — no separate handling of u_lo == 0 is
// needed, unlike the addition-based form of REDC.
//
// The standard Montgomery bound (u < n*R, m < R) guarantees
// -n < u_hi - t_hi < n, so the wrapped T subtraction below always differs
// from the true mathematical value by at most one n: it underflows exactly
// when the true value is negative, and canonical callers (FullRange,
// HalfRange) recover the right answer by adding n back in that case alone.
// This keeps every intermediate value within T's width even when n is close
// to R, which an addition-based REDC cannot guarantee.
func redcIncomplete[T Unsigned](uHi, uLo, n, invN T) (result T, isNegative bool) {
	m := uLo * invN
	tHi, _ := wideMul(m, n)
	result = uHi - tHi
	isNegative = uHi < tHi
	return result, isNegative
}

// redc performs Montgomery reduction and canonicalizes the result into
// [0, n), suitable for FullRange and HalfRange.
func redc[T Unsigned](uHi, uLo, n, invN T) T {
	result, isNegative := redcIncomplete(uHi, uLo, n, invN)
	if isNegative {
		result += n
	}
	return result
}
