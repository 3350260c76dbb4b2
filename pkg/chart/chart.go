// Package chart is the embedding surface of the line chart engine.
//
// A [Chart] owns one series, one layout config, one axis step and one style.
// Mutators validate before they change anything, so a rejected call leaves
// the chart exactly as it was. [Chart.Plan] recomputes everything from the
// current state; calling it twice with the same viewport yields the same
// plan.
//
// A Chart is not safe for concurrent mutation. Callers serialize updates,
// typically on one UI goroutine.
//
//	c := chart.New[numeric.Float64]()
//	c.SetSeries(labels, values)
//	plan, err := c.Plan(800, 400)
package chart

import (
	"github.com/matzehuels/linechart/pkg/axis"
	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/layout"
	"github.com/matzehuels/linechart/pkg/numeric"
	"github.com/matzehuels/linechart/pkg/render"
	"github.com/matzehuels/linechart/pkg/series"
)

// Chart is a line chart over values of kind T.
type Chart[T numeric.Value[T]] struct {
	series *series.Series[T]
	layout layout.Config
	step   axis.Step
	style  render.Style
}

// New returns a chart with an empty series and default layout, step and
// style.
func New[T numeric.Value[T]]() *Chart[T] {
	return &Chart[T]{
		series: series.New[T](),
		layout: layout.DefaultConfig(),
		step:   axis.DefaultStep(),
		style:  render.DefaultStyle(),
	}
}

// SetSeries replaces labels and values and re-derives the axis range,
// discarding any override.
func (c *Chart[T]) SetSeries(labels []string, values []T) {
	c.series.Set(labels, values)
}

// OverrideAxisRange pins the axis range until the next SetSeries.
func (c *Chart[T]) OverrideAxisRange(lo, hi T) error {
	return c.series.OverrideAxisRange(lo, hi)
}

// Series exposes the underlying series for reads.
func (c *Chart[T]) Series() *series.Series[T] { return c.series }

// SetLayout installs a layout config. Sides below the floor are clamped.
func (c *Chart[T]) SetLayout(cfg layout.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Padding = cfg.Effective()
	c.layout = cfg
	return nil
}

// Layout returns the current layout config.
func (c *Chart[T]) Layout() layout.Config { return c.layout }

// SetAxisStep pins the gridline unit and label precision. A unit that is not
// positive is replaced by axis.MinUnitStep when ticks are computed.
func (c *Chart[T]) SetAxisStep(unit float64, decimalPlaces int) error {
	step := axis.Step{Unit: unit, DecimalPlaces: decimalPlaces, Custom: true}
	if err := step.Validate(); err != nil {
		return err
	}
	c.step = step
	return nil
}

// SetDecimalPlaces changes label precision without pinning the unit.
func (c *Chart[T]) SetDecimalPlaces(places int) error {
	if err := errors.ValidateDecimalPlaces(places); err != nil {
		return err
	}
	c.step.DecimalPlaces = places
	return nil
}

// ResetAxisStep returns to a unit derived from the bounds, keeping the
// current label precision.
func (c *Chart[T]) ResetAxisStep() {
	c.step = axis.Step{DecimalPlaces: c.step.DecimalPlaces}
}

// AxisStep returns the configured step.
func (c *Chart[T]) AxisStep() axis.Step { return c.step }

// SetStyle installs a style.
func (c *Chart[T]) SetStyle(s render.Style) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.style = s
	return nil
}

// Style returns the current style.
func (c *Chart[T]) Style() render.Style { return c.style }

// Apply installs a layout config, an axis step and a style together. All
// three are validated before any is committed.
func (c *Chart[T]) Apply(cfg layout.Config, step axis.Step, s render.Style) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := step.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	cfg.Padding = cfg.Effective()
	c.layout, c.step, c.style = cfg, step, s
	return nil
}

// Ticks computes the vertical tick set for the current bounds.
func (c *Chart[T]) Ticks() axis.TickSet {
	lo, hi := c.series.AxisRange()
	return axis.Compute(lo.Scalar(), hi.Scalar(), c.step)
}

// Geometry computes the layout constants for a viewport.
func (c *Chart[T]) Geometry(width, height float64) layout.Geometry {
	lo, hi := c.series.AxisRange()
	return layout.NewGeometry(c.layout, layout.Viewport{Width: width, Height: height}, c.series.IntervalCount(), lo.Scalar(), hi.Scalar())
}

// Plan runs a layout pass for a width x height viewport.
func (c *Chart[T]) Plan(width, height float64) (render.Plan, error) {
	return render.Build(c.series, c.layout, c.step, c.style, layout.Viewport{Width: width, Height: height})
}
