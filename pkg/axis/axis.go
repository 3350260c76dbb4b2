// Package axis computes gridline steps, tick positions and tick labels.
//
// The vertical axis is divided from the axis minimum upward in fixed unit
// steps. Unless a caller installs a custom step, the unit is re-derived from
// the current bounds on every pass so that three gridlines span the range.
//
//	ts := axis.Compute(19.0, 19.7, axis.Step{DecimalPlaces: 2})
//	for _, t := range ts.Ticks {
//	    fmt.Println(t.Label) // 19.00, 19.23, 19.47, 19.70
//	}
package axis

import (
	"math"
	"strconv"

	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/layout"
)

const (
	// DefaultDecimalPlaces is the label precision unless configured.
	DefaultDecimalPlaces = 2

	// DefaultGridlines is the number of intervals a default step yields.
	DefaultGridlines = 3

	// MinUnitStep replaces any unit step that is not a positive finite number.
	MinUnitStep = 0.01

	// MaxTickCount bounds the gridlines of one pass. A tiny step over a wide
	// range would otherwise emit millions of gridlines.
	MaxTickCount = 10000
)

// Step configures the vertical gridline spacing.
type Step struct {
	Unit          float64 `json:"unit_step"`
	DecimalPlaces int     `json:"decimal_places"`
	// Custom pins Unit. Otherwise Unit is derived from the bounds.
	Custom bool `json:"custom,omitempty"`
}

// DefaultStep is a derived step with default label precision.
func DefaultStep() Step {
	return Step{DecimalPlaces: DefaultDecimalPlaces}
}

// Validate checks the label precision. Any unit is acceptable.
func (s Step) Validate() error {
	return errors.ValidateDecimalPlaces(s.DecimalPlaces)
}

// Resolve returns the unit step used for bounds [lo, hi].
func (s Step) Resolve(lo, hi float64) float64 {
	if s.Custom {
		return NormalizeUnitStep(s.Unit)
	}
	return NormalizeUnitStep(DefaultUnitStep(lo, hi))
}

// DefaultUnitStep divides the range into DefaultGridlines intervals.
func DefaultUnitStep(lo, hi float64) float64 {
	return 2 * (halfSpan(lo, hi) / DefaultGridlines)
}

// halfSpan is (hi-lo)/2, finite for any finite bounds.
func halfSpan(lo, hi float64) float64 {
	return hi/2 - lo/2
}

// tickValue is lo + i*unit without overflowing near the float64 limits.
func tickValue(lo, unit, i float64) float64 {
	return 2 * (lo/2 + i*(unit/2))
}

// NormalizeUnitStep replaces a zero, negative or non-finite step with
// MinUnitStep.
func NormalizeUnitStep(unit float64) float64 {
	if !(unit > 0) || math.IsInf(unit, 1) {
		return MinUnitStep
	}
	return unit
}

// TickCount returns the number of gridlines above the minimum.
//
// The count is round((hi-lo)/unit). If the top tick, rounded to the display
// precision, would read above hi, the count drops by one so no label
// overshoots the axis maximum.
func TickCount(lo, hi, unit float64, places int) int {
	unit = NormalizeUnitStep(unit)
	n := math.Round(2 * (halfSpan(lo, hi) / unit))
	if !(n > 0) {
		return 0
	}
	n = min(n, MaxTickCount)
	scale := math.Pow(10, float64(places))
	top := tickValue(lo, unit, n)
	if scaled := top * scale; !math.IsInf(scaled, 0) {
		top = math.Round(scaled) / scale
	}
	if top > hi {
		n--
	}
	return int(n)
}

// TickValues returns lo + i*unit for i in [0, count]. The minimum is always
// the first element.
func TickValues(lo, unit float64, count int) []float64 {
	count = max(count, 0)
	out := make([]float64, count+1)
	out[0] = lo
	for i := 1; i <= count; i++ {
		out[i] = tickValue(lo, unit, float64(i))
	}
	return out
}

// FormatLabel formats v in fixed-point with exactly places fractional digits.
func FormatLabel(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', max(places, 0), 64)
}

// Tick is one vertical axis position with its label.
type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// TickSet is the derived vertical axis for one pass.
type TickSet struct {
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	Unit          float64 `json:"unit_step"`
	DecimalPlaces int     `json:"decimal_places"`
	Count         int     `json:"tick_count"`
	// Ticks has Count+1 entries; Ticks[0] is the minimum.
	Ticks []Tick `json:"ticks"`
}

// Compute derives the tick set for bounds [lo, hi].
func Compute(lo, hi float64, step Step) TickSet {
	unit := step.Resolve(lo, hi)
	places := min(max(step.DecimalPlaces, 0), errors.MaxDecimalPlaces)
	count := TickCount(lo, hi, unit, places)
	values := TickValues(lo, unit, count)

	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Value: v, Label: FormatLabel(v, places)}
	}
	return TickSet{
		Min:           lo,
		Max:           hi,
		Unit:          unit,
		DecimalPlaces: places,
		Count:         count,
		Ticks:         ticks,
	}
}

// Labels returns the tick labels in order.
func (ts TickSet) Labels() []string {
	out := make([]string, len(ts.Ticks))
	for i, t := range ts.Ticks {
		out[i] = t.Label
	}
	return out
}

// Gridlines returns the ticks above the minimum.
func (ts TickSet) Gridlines() []Tick {
	if len(ts.Ticks) == 0 {
		return nil
	}
	return ts.Ticks[1:]
}

// XTick is one horizontal axis position.
type XTick struct {
	Column int     `json:"column"`
	X      float64 `json:"x"`
}

// XTicks returns the x position of every label column.
func XTicks(g layout.Geometry) []XTick {
	out := make([]XTick, max(g.Columns, 0))
	for i := range out {
		out[i] = XTick{Column: i, X: g.X(i)}
	}
	return out
}
