package layout

import (
	"math"

	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/numeric"
)

// MinIntervalWidth is the narrowest horizontal span between two columns.
const MinIntervalWidth = 1.0

// Viewport is the size of the view a layout pass targets.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Validate rejects negative or non-finite sizes.
func (v Viewport) Validate() error {
	return errors.ValidateViewport(v.Width, v.Height)
}

// IntervalWidth returns the horizontal distance between adjacent columns:
//
//	max((viewWidth - left - right) / (intervalCount - 1), 1)
//
// With one column or none there is no span to divide, and the width is the
// minimum of 1. The result is never below 1 and never NaN.
func IntervalWidth(viewWidth, left, right float64, intervalCount int) float64 {
	if intervalCount <= 1 {
		return MinIntervalWidth
	}
	w := (viewWidth - left - right) / float64(intervalCount-1)
	if !(w >= MinIntervalWidth) || math.IsInf(w, 1) {
		return MinIntervalWidth
	}
	return w
}

// OriginPadding is the x offset of column 0: the right padding when reversed,
// the left padding otherwise. Only the origin flips; columns still advance
// to the right.
func OriginPadding(p Padding, reversed bool) float64 {
	if reversed {
		return p.Right
	}
	return p.Left
}

// XCoordinate maps a column index to x.
func XCoordinate(column int, intervalWidth, originPadding float64) float64 {
	return float64(column)*intervalWidth + originPadding
}

// Proportion returns where value sits in [lo, hi] as a fraction. A zero
// range, or any result that is not finite, yields 0. Operands are halved so
// that a range spanning most of float64 does not overflow.
func Proportion(value, lo, hi float64) float64 {
	r := hi/2 - lo/2
	if r == 0 {
		return 0
	}
	p := (value/2 - lo/2) / r
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}

// YCoordinate maps a data value to y for point geometry, offset by the
// bottom padding only.
func YCoordinate(value, lo, hi, viewHeight, top, bottom float64) float64 {
	return (viewHeight-top-bottom)*Proportion(value, lo, hi) + bottom
}

// LabelYCoordinate maps an axis tick value to y for gridlines and labels,
// offset by both top and bottom padding.
func LabelYCoordinate(value, lo, hi, viewHeight, top, bottom float64) float64 {
	return (viewHeight-top-bottom)*Proportion(value, lo, hi) + top + bottom
}

// Geometry is the set of constants one layout pass derives from a config, a
// viewport, the column count and the scalar axis range.
type Geometry struct {
	Viewport Viewport
	Padding  Padding
	Reversed bool
	Columns  int
	Interval float64
	Min, Max float64
}

// NewGeometry normalizes padding and computes the interval width.
func NewGeometry(cfg Config, vp Viewport, columns int, lo, hi float64) Geometry {
	p := cfg.Effective()
	return Geometry{
		Viewport: vp,
		Padding:  p,
		Reversed: cfg.Reversed,
		Columns:  columns,
		Interval: IntervalWidth(vp.Width, p.Left, p.Right, columns),
		Min:      lo,
		Max:      hi,
	}
}

// Origin is the x offset of column 0.
func (g Geometry) Origin() float64 { return OriginPadding(g.Padding, g.Reversed) }

// X maps a column to x.
func (g Geometry) X(column int) float64 { return XCoordinate(column, g.Interval, g.Origin()) }

// LastColumn is the highest column index, or 0 for an empty series.
func (g Geometry) LastColumn() int { return max(g.Columns-1, 0) }

// Left is the x of the vertical axis.
func (g Geometry) Left() float64 { return g.Padding.Left }

// Right is the x where the horizontal axis and gridlines end.
func (g Geometry) Right() float64 { return g.X(g.LastColumn()) }

// Baseline is the y of the horizontal axis.
func (g Geometry) Baseline() float64 { return g.Padding.Bottom }

// Top is the y where the vertical axis and gridlines end.
func (g Geometry) Top() float64 { return g.Viewport.Height - g.Padding.Top }

// ScalarY maps a scalar on the point path.
func (g Geometry) ScalarY(v float64) float64 {
	return YCoordinate(v, g.Min, g.Max, g.Viewport.Height, g.Padding.Top, g.Padding.Bottom)
}

// TickY maps an axis tick on the label path.
func (g Geometry) TickY(v float64) float64 {
	return LabelYCoordinate(v, g.Min, g.Max, g.Viewport.Height, g.Padding.Top, g.Padding.Bottom)
}

// PointY maps a data value of the series' own kind to y. The value becomes a
// scalar only here, at draw time.
func PointY[T numeric.Value[T]](g Geometry, v T) float64 {
	return g.ScalarY(v.Scalar())
}
