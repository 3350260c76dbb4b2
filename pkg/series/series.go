// Package series holds the labelled data that drives one chart and the axis
// bounds derived from it.
//
// Bounds are a pure function of the most recent [Series.Set]: every
// assignment rescans the values with their native ordering and discards any
// range installed by [Series.OverrideAxisRange]. Bounds stay in the element
// type until a layout pass reads them as scalars.
package series

import (
	"fmt"
	"slices"

	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/numeric"
)

// Initial bounds of a series that has never received values.
const (
	DefaultAxisMin = 0
	DefaultAxisMax = 10
)

// Series is an ordered sequence of labels paired with up to as many values.
// Column indices are driven by the labels; drawing stops at the last value.
//
// The zero value is not ready for use; call [New].
type Series[T numeric.Value[T]] struct {
	labels     []string
	values     []T
	min, max   T
	overridden bool
}

// New returns an empty series with the default axis range [0, 10].
func New[T numeric.Value[T]]() *Series[T] {
	var zero T
	return &Series[T]{
		min: zero.FromScalar(DefaultAxisMin),
		max: zero.FromScalar(DefaultAxisMax),
	}
}

// Set replaces labels and values as one step and recomputes the axis range.
//
// The lengths may differ: bounds cover every value, while drawing stops at
// whichever runs out first. An empty (or entirely non-finite) value slice
// keeps the previous bounds. Any override is discarded.
func (s *Series[T]) Set(labels []string, values []T) {
	s.labels = slices.Clone(labels)
	s.values = slices.Clone(values)
	s.overridden = false
	if lo, hi, ok := Bounds(s.values); ok {
		s.min, s.max = lo, hi
	}
}

// OverrideAxisRange installs a manual range until the next Set.
// lo must not exceed hi under native ordering.
func (s *Series[T]) OverrideAxisRange(lo, hi T) error {
	if !numeric.IsFinite(lo) || !numeric.IsFinite(hi) {
		return errors.New(errors.ErrCodeInvalidRange, "axis range must be finite, got [%v, %v]", lo, hi)
	}
	if lo.Compare(hi) > 0 {
		return errors.New(errors.ErrCodeInvalidRange, "axis min %v exceeds max %v", lo, hi)
	}
	s.min, s.max = lo, hi
	s.overridden = true
	return nil
}

// AxisRange returns the current bounds in the element type.
func (s *Series[T]) AxisRange() (lo, hi T) { return s.min, s.max }

// Overridden reports whether the bounds came from OverrideAxisRange.
func (s *Series[T]) Overridden() bool { return s.overridden }

// Labels returns a copy of the labels.
func (s *Series[T]) Labels() []string { return slices.Clone(s.labels) }

// Values returns a copy of the values.
func (s *Series[T]) Values() []T { return slices.Clone(s.values) }

// Label returns the label at column i.
func (s *Series[T]) Label(i int) string { return s.labels[i] }

// Value returns the value at index i.
func (s *Series[T]) Value(i int) T { return s.values[i] }

// IntervalCount is the number of label columns.
func (s *Series[T]) IntervalCount() int { return len(s.labels) }

// Len is the number of values.
func (s *Series[T]) Len() int { return len(s.values) }

// Bounds returns the native minimum and maximum of values in one linear
// scan. Non-finite values are skipped; ok is false when nothing remains.
func Bounds[T numeric.Value[T]](values []T) (lo, hi T, ok bool) {
	for _, v := range values {
		if !numeric.IsFinite(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v.Compare(lo) < 0 {
			lo = v
		}
		if v.Compare(hi) > 0 {
			hi = v
		}
	}
	return lo, hi, ok
}

// Stringify formats arbitrary label values with fmt's default verb.
func Stringify[L any](labels []L) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = fmt.Sprint(l)
	}
	return out
}

// Range returns the labels 1..n as strings.
func Range(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprint(i + 1)
	}
	return out
}
