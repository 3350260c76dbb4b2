package numeric

import (
	"cmp"
	"math"
	"testing"

	"github.com/matzehuels/linechart/pkg/errors"
)

// cents is a fixed-point kind defined outside the built-in set.
type cents int64

func (c cents) Scalar() float64          { return float64(c) / 100 }
func (cents) FromScalar(f float64) cents { return cents(math.Round(f * 100)) }
func (c cents) Compare(o cents) int      { return cmp.Compare(c, o) }

func roundTrip[T Value[T]](t *testing.T, values ...T) {
	t.Helper()
	for _, v := range values {
		if got := v.FromScalar(v.Scalar()); got.Compare(v) != 0 {
			t.Errorf("%s round trip of %v = %v", KindOf[T](), v, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("int", func(t *testing.T) { roundTrip(t, Int(0), Int(-42), Int(1<<30)) })
	t.Run("int8", func(t *testing.T) { roundTrip(t, Int8(math.MinInt8), Int8(0), Int8(math.MaxInt8)) })
	t.Run("int16", func(t *testing.T) { roundTrip(t, Int16(math.MinInt16), Int16(7), Int16(math.MaxInt16)) })
	t.Run("int32", func(t *testing.T) { roundTrip(t, Int32(math.MinInt32), Int32(-1), Int32(math.MaxInt32)) })
	t.Run("int64", func(t *testing.T) { roundTrip(t, Int64(math.MinInt64), Int64(1<<53), Int64(-(1 << 53))) })
	t.Run("uint", func(t *testing.T) { roundTrip(t, Uint(0), Uint(1<<31)) })
	t.Run("uint8", func(t *testing.T) { roundTrip(t, Uint8(0), Uint8(math.MaxUint8)) })
	t.Run("uint16", func(t *testing.T) { roundTrip(t, Uint16(1), Uint16(math.MaxUint16)) })
	t.Run("uint32", func(t *testing.T) { roundTrip(t, Uint32(0), Uint32(math.MaxUint32)) })
	t.Run("uint64", func(t *testing.T) { roundTrip(t, Uint64(0), Uint64(1<<63), Uint64(math.MaxUint64)) })
	t.Run("float32", func(t *testing.T) { roundTrip(t, Float32(19.1), Float32(-0.5), Float32(math.MaxFloat32)) })
	t.Run("float64", func(t *testing.T) { roundTrip(t, Float64(19.7), Float64(math.SmallestNonzeroFloat64), Float64(-1e300)) })
	t.Run("custom", func(t *testing.T) { roundTrip(t, cents(1910), cents(-5)) })
}

func TestCompareIsNative(t *testing.T) {
	// Both round to the same float64.
	a, b := Int64(1<<62), Int64(1<<62+1)
	if a.Scalar() != b.Scalar() {
		t.Fatalf("precondition: scalars differ")
	}
	if got := a.Compare(b); got != -1 {
		t.Errorf("Compare = %d, want -1", got)
	}

	c, d := Uint64(math.MaxUint64), Uint64(math.MaxUint64-1)
	if got := c.Compare(d); got != 1 {
		t.Errorf("Compare = %d, want 1", got)
	}
}

func TestFromScalarSaturates(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Int8
	}{
		{"round half up", 2.5, 3},
		{"round half away from zero", -2.5, -3},
		{"truncates below half", 2.4, 2},
		{"above max", 1000, math.MaxInt8},
		{"below min", -1000, math.MinInt8},
		{"+inf", math.Inf(1), math.MaxInt8},
		{"-inf", math.Inf(-1), math.MinInt8},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int8(0).FromScalar(tt.in); got != tt.want {
				t.Errorf("FromScalar(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}

	if got := Uint8(0).FromScalar(-3); got != 0 {
		t.Errorf("Uint8 FromScalar(-3) = %d, want 0", got)
	}
	if got := Uint64(0).FromScalar(math.Inf(1)); got != math.MaxUint64 {
		t.Errorf("Uint64 FromScalar(+Inf) = %d, want max", got)
	}
}

func TestConvert(t *testing.T) {
	if got := Convert[Int32](Float64(19.6)); got != 20 {
		t.Errorf("Convert[Int32](19.6) = %d, want 20", got)
	}
	if got := Convert[Float64](Uint16(65535)); got != 65535 {
		t.Errorf("Convert[Float64](65535) = %v", got)
	}
	if got := Convert[Uint8](Int(-5)); got != 0 {
		t.Errorf("Convert[Uint8](-5) = %d, want 0", got)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap[Int64]([]int{3, 1, 4})
	want := []Int64{3, 1, 4}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if Wrap[Float64]([]float64{}) == nil {
		t.Error("Wrap of empty slice should be empty, not nil")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(Float64(1)) || !IsFinite(Int64(math.MaxInt64)) {
		t.Error("finite values reported non-finite")
	}
	if IsFinite(Float64(math.NaN())) || IsFinite(Float32(math.Inf(-1))) {
		t.Error("non-finite values reported finite")
	}
}

func TestParse(t *testing.T) {
	t.Run("int64 beyond float precision", func(t *testing.T) {
		got, err := Parse[Int64]("9007199254740993")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got != 9007199254740993 {
			t.Errorf("Parse = %d, want 9007199254740993", got)
		}
	})

	t.Run("integral float notation", func(t *testing.T) {
		got, err := Parse[Int]("1e3")
		if err != nil || got != 1000 {
			t.Errorf("Parse(1e3) = %d, %v", got, err)
		}
	})

	t.Run("uint64 max", func(t *testing.T) {
		got, err := Parse[Uint64]("18446744073709551615")
		if err != nil || got != math.MaxUint64 {
			t.Errorf("Parse = %d, %v", got, err)
		}
	})

	t.Run("float with whitespace", func(t *testing.T) {
		got, err := Parse[Float64](" 19.34 ")
		if err != nil || got != 19.34 {
			t.Errorf("Parse = %v, %v", got, err)
		}
	})

	errCases := []struct {
		name string
		fn   func() error
	}{
		{"fraction into int", func() error { _, err := Parse[Int32]("1.5"); return err }},
		{"overflow int8", func() error { _, err := Parse[Int8]("128"); return err }},
		{"negative uint", func() error { _, err := Parse[Uint]("-1"); return err }},
		{"garbage", func() error { _, err := Parse[Float64]("abc"); return err }},
		{"empty", func() error { _, err := Parse[Float32]("  "); return err }},
	}
	for _, tt := range errCases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestKinds(t *testing.T) {
	names := Kinds()
	if len(names) != 12 {
		t.Fatalf("Kinds() = %d names, want 12", len(names))
	}
	for _, n := range names {
		if err := ValidKind(n); err != nil {
			t.Errorf("ValidKind(%q) = %v", n, err)
		}
	}
	names[0] = "mutated"
	if Kinds()[0] == "mutated" {
		t.Error("Kinds() must return a copy")
	}

	err := ValidKind("decimal")
	if !errors.Is(err, errors.ErrCodeInvalidOption) {
		t.Errorf("ValidKind(decimal) = %v, want INVALID_OPTION", err)
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf[Uint16](); got != "uint16" {
		t.Errorf("KindOf[Uint16] = %q", got)
	}
	if got := KindOf[cents](); got != "custom" {
		t.Errorf("KindOf[cents] = %q", got)
	}
}
