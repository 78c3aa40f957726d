// Package bigref is an arbitrary-precision Montgomery multiplication oracle
// used by the fixed-width package's property tests as ground truth: it
// mirrors the same CIOS algorithm word-for-word, but over math/big so it has
// no width limit to cross-check against.
package bigref

import (
	"math/big"
	"math/bits"
)

// Montgomery holds the precomputed values for CIOS Montgomery multiplication
// modulo N, where R = 2^(64*S) for the smallest S that covers N.
type Montgomery struct {
	n  *big.Int
	rr *big.Int // R² mod N
	ni uint64   // -N^-1 mod 2^64
	s  int      // number of 64-bit words in R
	nn []uint64 // N as little-endian 64-bit words
}

// New builds a Montgomery oracle for modulus n, which must be odd and
// greater than 1.
func New(n *big.Int) *Montgomery {
	bitLen := n.BitLen()
	s := (bitLen + 63) / 64

	r := new(big.Int).Lsh(big.NewInt(1), uint(64*s))
	rr := new(big.Int).Mul(r, r)
	rr.Mod(rr, n)

	return &Montgomery{
		n:  new(big.Int).Set(n),
		rr: rr,
		ni: newtonRaphsonInverse(n.Uint64()),
		s:  s,
		nn: frombigInt(n, s),
	}
}

// MulMod computes (x*y) mod N by converting both operands into Montgomery
// form, multiplying there, and converting the product back out.
func (m *Montgomery) MulMod(x, y *big.Int) *big.Int {
	xMont := m.redc(x, m.rr)
	yMont := m.redc(y, m.rr)
	result := m.redc(xMont, yMont)
	return m.redc(result, big.NewInt(1))
}

// ExpMod computes base^exponent mod N via square-and-multiply, entirely in
// Montgomery form.
func (m *Montgomery) ExpMod(base, exponent *big.Int) *big.Int {
	one := big.NewInt(1)
	result := m.redc(one, m.rr) // Montgomery form of 1
	b := m.redc(base, m.rr)     // Montgomery form of base

	e := new(big.Int).Set(exponent)
	zero := big.NewInt(0)
	for e.Cmp(zero) > 0 {
		if e.Bit(0) == 1 {
			result = m.redc(result, b)
		}
		b = m.redc(b, b)
		e.Rsh(e, 1)
	}
	return m.redc(result, one)
}

// redc performs CIOS Montgomery reduction: (x*y*R^-1) mod N.
func (m *Montgomery) redc(x, y *big.Int) *big.Int {
	T := make([]uint64, len(x.Bits())+len(y.Bits())+m.s+1)

	xx := frombigInt(x, 0)
	yy := frombigInt(y, 0)

	for i := 0; i < m.s; i++ {
		yi := uint64(0)
		if i < len(yy) {
			yi = yy[i]
		}

		mulAddScalar(T, xx, yi)

		mul := T[0] * m.ni
		mulAddScalar(T, m.nn, mul)

		T = T[1:]
	}

	t := tobigInt(T)
	if t.Cmp(m.n) >= 0 {
		t.Sub(t, m.n)
	}
	return t
}

// newtonRaphsonInverse computes -n^-1 mod 2^64 via Newton-Raphson: starting
// from x=1 (correct to 1 bit), x = x*(2-n*x) doubles the correct precision
// each step, reaching 64 bits after 6 iterations.
func newtonRaphsonInverse(n uint64) uint64 {
	x := uint64(1)
	for i := 0; i < 6; i++ {
		x = x * (2 - n*x)
	}
	return -x
}

// tobigInt converts little-endian 64-bit words to a *big.Int.
func tobigInt(words []uint64) *big.Int {
	w := make([]big.Word, len(words))
	for i, v := range words {
		w[i] = big.Word(v)
	}
	result := new(big.Int)
	result.SetBits(w)
	return result
}

// frombigInt converts x to little-endian 64-bit words, zero-padded to at
// least minWords entries.
func frombigInt(x *big.Int, minWords int) []uint64 {
	words := x.Bits()
	n := len(words)
	if n < minWords {
		n = minWords
	}
	result := make([]uint64, n)
	for i, w := range words {
		result[i] = uint64(w)
	}
	return result
}

// mulAddScalar computes T += arr*scalar using 64-bit word arithmetic, with
// carry propagated across word boundaries.
func mulAddScalar(T []uint64, arr []uint64, scalar uint64) {
	carry := uint64(0)
	for i, ai := range arr {
		hi, lo := bits.Mul64(ai, scalar)
		s, c1 := bits.Add64(T[i], lo, 0)
		sum, c2 := bits.Add64(s, carry, 0)
		T[i] = sum
		carry = hi + c1 + c2
	}
	for k := len(arr); carry > 0 && k < len(T); k++ {
		sum, c := bits.Add64(T[k], carry, 0)
		T[k] = sum
		carry = c
	}
}

// NaiveMulMod computes (x*y) mod n directly, with no Montgomery form
// involved. Used as an independent sanity check for MulMod itself.
func NaiveMulMod(x, y, n *big.Int) *big.Int {
	result := new(big.Int).Mul(x, y)
	return result.Mod(result, n)
}
