// Package numeric defines the contract that lets heterogeneous numeric
// representations take part in chart geometry.
//
// A [Value] converts to and from a float64 scalar for coordinate math and
// compares natively for ordering decisions. Ordering never goes through the
// scalar: an Int64 above 2^53 or a Uint64 near its maximum rounds when
// converted to float64, and two distinct values could otherwise compare equal
// or swap places after conversion.
//
// Every built-in integer and float width has a concrete kind ([Int64],
// [Float64], ...). Callers may add their own kinds, such as fixed-point money,
// by implementing the three methods.
//
//	values := numeric.Wrap[numeric.Float64]([]float64{19.10, 19.34, 19.25})
//	s := series.New[numeric.Float64]()
//	s.Set(labels, values)
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Value is implemented by numeric representations usable as chart values.
//
// Implementations must satisfy, for every v:
//
//	v.FromScalar(v.Scalar()).Compare(v) == 0
//
// within the kind's own precision. Conversion is total: FromScalar accepts
// any float64, including NaN and ±Inf, and returns some value of the kind.
type Value[T any] interface {
	// Scalar converts the value to a float64 for geometry.
	Scalar() float64
	// FromScalar converts a float64 back into the kind. The receiver is
	// only used to select the kind; its own value is ignored.
	FromScalar(f float64) T
	// Compare orders the value against o using the native representation.
	// It returns -1, 0 or +1.
	Compare(o T) int
}

// Number is the set of Go numeric types with a native ordering.
type Number interface {
	constraints.Integer | constraints.Float
}

// Convert coerces a value of one kind into another through the scalar
// intermediate. There is no implicit numeric promotion.
func Convert[To Value[To], From Value[From]](v From) To {
	var zero To
	return zero.FromScalar(v.Scalar())
}

// Wrap converts a slice of plain Go numbers into values of kind V using Go
// conversion rules (so float inputs truncate when V is an integer kind).
//
//	numeric.Wrap[numeric.Int64]([]int{3, 1, 4})
func Wrap[V interface {
	Number
	Value[V]
}, N Number](xs []N) []V {
	out := make([]V, len(xs))
	for i, x := range xs {
		out[i] = V(x)
	}
	return out
}

// Scalars converts values to their float64 scalars in order.
func Scalars[T Value[T]](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.Scalar()
	}
	return out
}

// IsFinite reports whether the value's scalar is neither NaN nor ±Inf.
func IsFinite[T Value[T]](v T) bool {
	f := v.Scalar()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// saturate rounds f half away from zero into an integer kind, clamping to
// [lo, hi]. NaN maps to zero.
func saturate[N constraints.Integer](f float64, lo, hi N) N {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	}
	return N(math.Round(f))
}
