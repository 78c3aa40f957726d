package montgomery

import (
	"testing"
	"testing/quick"

	"github.com/blck-snwmn/monty/internal/bigref"
	"math/big"
)

func TestFullRange_n13_roundTripAndMultiply(t *testing.T) {
	fr, err := NewFullRange[uint8](13)
	if err != nil {
		t.Fatal(err)
	}

	five, err := fr.ConvertIn(5)
	if err != nil {
		t.Fatal(err)
	}
	if got := fr.ConvertOut(five); got != 5 {
		t.Errorf("convert_out(convert_in(5)) = %d; want 5", got)
	}

	six, err := fr.ConvertIn(6)
	if err != nil {
		t.Fatal(err)
	}
	product := fr.Multiply(five, six)
	if got := fr.ConvertOut(product); got != 4 {
		t.Errorf("mul(5,6) mod 13 = %d; want 4", got)
	}
}

func TestFullRange_n13_fermat(t *testing.T) {
	fr, err := NewFullRange[uint8](13)
	if err != nil {
		t.Fatal(err)
	}
	two, err := fr.ConvertIn(2)
	if err != nil {
		t.Fatal(err)
	}
	result := Pow[uint8](fr, two, 12)
	if got := fr.ConvertOut(result); got != 1 {
		t.Errorf("pow(convert_in(2), 12) mod 13 = %d; want 1 (Fermat)", got)
	}
}

func TestFullRange_powIdentities(t *testing.T) {
	fr, err := NewFullRange[uint32](1_000_003)
	if err != nil {
		t.Fatal(err)
	}
	x, _ := fr.ConvertIn(12345)

	if got := fr.ConvertOut(Pow[uint32](fr, x, 0)); got != 1 {
		t.Errorf("pow(x,0) = %d; want 1", got)
	}
	if got := fr.ConvertOut(Pow[uint32](fr, x, 1)); got != 12345 {
		t.Errorf("pow(x,1) = %d; want 12345", got)
	}
	unity := fr.Unity()
	if got := fr.ConvertOut(Pow[uint32](fr, unity, 777)); got != 1 {
		t.Errorf("pow(unity, e) = %d; want 1", got)
	}
}

func TestFullRange_matchesBigrefOracle_quick(t *testing.T) {
	f := func(xRaw, yRaw uint32, nRaw uint32) bool {
		n := uint64(nRaw) | 1
		if n <= 1 {
			n += 2
		}
		fr, err := NewFullRange[uint64](n)
		if err != nil {
			return true
		}
		x := uint64(xRaw) % n
		y := uint64(yRaw) % n

		xv, _ := fr.ConvertIn(x)
		yv, _ := fr.ConvertIn(y)
		got := fr.ConvertOut(fr.Multiply(xv, yv))

		want := bigref.NaiveMulMod(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y), new(big.Int).SetUint64(n))
		return new(big.Int).SetUint64(got).Cmp(want) == 0
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

func TestFullRange_negate(t *testing.T) {
	fr, err := NewFullRange[uint8](13)
	if err != nil {
		t.Fatal(err)
	}
	five, _ := fr.ConvertIn(5)
	negFive := fr.Negate(five)
	sum := fr.Add(five, negFive)
	if got := fr.ConvertOut(sum); got != 0 {
		t.Errorf("5 + negate(5) mod 13 = %d; want 0", got)
	}
	if got := fr.ConvertOut(fr.Negate(fr.Zero())); got != 0 {
		t.Errorf("negate(0) mod 13 = %d; want 0", got)
	}
}

func TestFullRange_invalidModulus(t *testing.T) {
	if _, err := NewFullRange[uint8](4); err == nil {
		t.Error("NewFullRange(4): want error for even modulus")
	}
	if _, err := NewFullRange[uint8](1); err == nil {
		t.Error("NewFullRange(1): want error for modulus <= 1")
	}
}

func TestFullRange_invalidValue(t *testing.T) {
	fr, err := NewFullRange[uint8](13)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fr.ConvertIn(13); err == nil {
		t.Error("ConvertIn(13) with n=13: want error, value must be in [0,n)")
	}
}
