package montgomery

import (
	"math/bits"
	"testing"
	"testing/quick"
)

func TestWideMul_uint8(t *testing.T) {
	hi, lo := wideMul[uint8](250, 250)
	want := uint16(250) * uint16(250)
	if uint16(hi)<<8|uint16(lo) != want {
		t.Errorf("wideMul(250,250) = (%d,%d); want product %d", hi, lo, want)
	}
}

func TestWideMul_uint64_matchesBitsMul64(t *testing.T) {
	f := func(a, b uint64) bool {
		hi, lo := wideMul(a, b)
		wantHi, wantLo := bits.Mul64(a, b)
		return hi == wantHi && lo == wantLo
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

func TestPortableWideMul64_matchesBitsMul64(t *testing.T) {
	f := func(a, b uint64) bool {
		hi, lo := portableWideMul64(a, b)
		wantHi, wantLo := bits.Mul64(a, b)
		return hi == wantHi && lo == wantLo
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

func TestWideMul_widths_quick(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		f := func(a, b uint8) bool {
			hi, lo := wideMul(a, b)
			want := uint16(a) * uint16(b)
			return uint16(hi)<<8|uint16(lo) == want
		}
		if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
			t.Error(err)
		}
	})
	t.Run("uint16", func(t *testing.T) {
		f := func(a, b uint16) bool {
			hi, lo := wideMul(a, b)
			want := uint32(a) * uint32(b)
			return uint32(hi)<<16|uint32(lo) == want
		}
		if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
			t.Error(err)
		}
	})
	t.Run("uint32", func(t *testing.T) {
		f := func(a, b uint32) bool {
			hi, lo := wideMul(a, b)
			want := uint64(a) * uint64(b)
			return uint64(hi)<<32|uint64(lo) == want
		}
		if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
			t.Error(err)
		}
	})
}
