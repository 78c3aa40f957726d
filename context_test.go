package montgomery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContext_New_picksNarrowestApplicableVariant(t *testing.T) {
	tests := []struct {
		name       string
		n          uint8
		wantCanon  bool
		wantModVal uint8
	}{
		{name: "tiny modulus prefers SqrtRange", n: 13, wantCanon: false, wantModVal: 13},
		{name: "modulus too big for Sqrt/Sixth/Quarter falls back to HalfRange", n: 99, wantCanon: true, wantModVal: 99}, // 99 < 256/2, fits HalfRange
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := New[uint8](tt.n)
			if err != nil {
				t.Fatal(err)
			}
			if ctx.Modulus() != tt.wantModVal {
				t.Errorf("Modulus() = %d; want %d", ctx.Modulus(), tt.wantModVal)
			}
			if ctx.Canonical() != tt.wantCanon {
				t.Errorf("Canonical() = %v; want %v", ctx.Canonical(), tt.wantCanon)
			}
		})
	}
}

func TestContext_arithmeticMatchesDirectVariant(t *testing.T) {
	ctx, err := New[uint32](1_000_003)
	if err != nil {
		t.Fatal(err)
	}
	x, _ := ctx.ConvertIn(123456)
	y, _ := ctx.ConvertIn(654321)

	product := ctx.Multiply(x, y)
	got := ctx.ConvertOut(product)
	want := uint32((uint64(123456) * uint64(654321)) % 1_000_003)
	if got != want {
		t.Errorf("Context multiply mismatch: got %d; want %d", got, want)
	}
}

func TestContext_invalidModulus(t *testing.T) {
	if _, err := New[uint8](4); err == nil {
		t.Error("New(4): want error for even modulus")
	}
}

func TestContext_invalidModulusError_fields(t *testing.T) {
	_, err := New[uint8](4)
	if err == nil {
		t.Fatal("New(4): want error for even modulus")
	}
	modErr, ok := err.(*InvalidModulusError)
	if !ok {
		t.Fatalf("New(4) error type = %T; want *InvalidModulusError", err)
	}
	want := &InvalidModulusError{Variant: "FullRange", N: 4, Reason: "modulus must be odd"}
	if diff := cmp.Diff(want, modErr); diff != "" {
		t.Errorf("InvalidModulusError mismatch (-want +got):\n%s", diff)
	}
}
