package montgomery

import (
	"testing"
	"testing/quick"
)

func TestModAdd_quick(t *testing.T) {
	f := func(a, b, nRaw uint8) bool {
		n := nRaw
		if n == 0 {
			n = 1
		}
		a %= n
		b %= n
		got := ModAdd(a, b, n)
		want := uint8((uint16(a) + uint16(b)) % uint16(n))
		return got == want
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 1000}); err != nil {
		t.Error(err)
	}
}

func TestModSub_quick(t *testing.T) {
	f := func(a, b, nRaw uint8) bool {
		n := nRaw
		if n == 0 {
			n = 1
		}
		a %= n
		b %= n
		got := ModSub(a, b, n)
		want := uint8(((int(a) - int(b)) % int(n) + int(n)) % int(n))
		return got == want
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 1000}); err != nil {
		t.Error(err)
	}
}

func TestAbsDiff(t *testing.T) {
	tests := []struct{ a, b, want uint32 }{
		{5, 3, 2},
		{3, 5, 2},
		{7, 7, 0},
	}
	for _, tt := range tests {
		if got := AbsDiff(tt.a, tt.b); got != tt.want {
			t.Errorf("AbsDiff(%d,%d) = %d; want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestModMul_quick(t *testing.T) {
	f := func(a, b uint32, nRaw uint16) bool {
		n := uint32(nRaw)
		if n == 0 {
			n = 1
		}
		got := ModMul(a, b, n)
		want := uint32((uint64(a) * uint64(b)) % uint64(n))
		return got == want
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 1000}); err != nil {
		t.Error(err)
	}
}
