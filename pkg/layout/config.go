// Package layout maps series columns and values into view coordinates.
//
// The view uses a bottom-left origin with y growing upward. Every side of the
// plot area is inset by padding, and no side is ever narrower than the
// configured minimum: assignments below the floor are clamped, not rejected.
//
// Two vertical mappings coexist. [YCoordinate] places data points and offsets
// by the bottom padding only. [LabelYCoordinate] places horizontal gridlines
// and their labels and offsets by top and bottom padding. They are distinct
// operations and must not be merged.
package layout

import (
	"github.com/matzehuels/linechart/pkg/errors"
)

// DefaultMinPadding is the floor applied to every side unless configured.
const DefaultMinPadding = 20

// Padding is the inset of the plot area from each view edge.
type Padding struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Uniform returns a padding with the same inset on every side.
func Uniform(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Side names one edge of the plot area.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Visibility suppresses individual draw-command groups. The zero value shows
// everything.
type Visibility struct {
	HideXAxis      bool `json:"hide_x_axis,omitempty"`
	HideYAxis      bool `json:"hide_y_axis,omitempty"`
	HideXGridlines bool `json:"hide_x_gridlines,omitempty"`
	HideYGridlines bool `json:"hide_y_gridlines,omitempty"`
	HideXLabels    bool `json:"hide_x_labels,omitempty"`
	HideYLabels    bool `json:"hide_y_labels,omitempty"`
}

// Config collects the layout parameters of one chart. A zero MinPadding
// selects DefaultMinPadding, so a literal that leaves it unset keeps the
// default floor.
type Config struct {
	Padding    Padding    `json:"padding"`
	MinPadding float64    `json:"min_padding"`
	Reversed   bool       `json:"reversed,omitempty"`
	Visibility Visibility `json:"visibility"`
}

// DefaultConfig returns a config with every side at the default floor.
func DefaultConfig() Config {
	return Config{
		Padding:    Uniform(DefaultMinPadding),
		MinPadding: DefaultMinPadding,
	}
}

// SetPadding overwrites all four sides with v, clamped to the floor.
func (c *Config) SetPadding(v float64) {
	c.Padding = Uniform(clamp(v, c.Floor()))
}

// SetSide assigns one side, clamped to the floor.
func (c *Config) SetSide(side Side, v float64) {
	v = clamp(v, c.Floor())
	switch side {
	case Top:
		c.Padding.Top = v
	case Right:
		c.Padding.Right = v
	case Bottom:
		c.Padding.Bottom = v
	case Left:
		c.Padding.Left = v
	}
}

// SetMinPadding changes the floor and re-clamps every side against it.
func (c *Config) SetMinPadding(v float64) {
	c.MinPadding = v
	c.Padding = NormalizePadding(c.Padding, c.Floor())
}

// Floor is the minimum padding in effect.
func (c Config) Floor() float64 {
	if c.MinPadding == 0 {
		return DefaultMinPadding
	}
	return c.MinPadding
}

// Effective returns the padding actually used for layout.
func (c Config) Effective() Padding {
	return NormalizePadding(c.Padding, c.Floor())
}

// Validate checks that the floor is finite and non-negative and that no side
// is infinite. Sides below the floor are not errors.
func (c Config) Validate() error {
	if err := errors.ValidateFinite("min padding", c.MinPadding); err != nil {
		return err
	}
	if c.MinPadding < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "min padding cannot be negative, got %v", c.MinPadding)
	}
	sides := []struct {
		name string
		v    float64
	}{
		{"top padding", c.Padding.Top},
		{"right padding", c.Padding.Right},
		{"bottom padding", c.Padding.Bottom},
		{"left padding", c.Padding.Left},
	}
	for _, s := range sides {
		if err := errors.ValidateFinite(s.name, s.v); err != nil {
			return err
		}
	}
	return nil
}

// NormalizePadding clamps every side to max(side, floor). It is idempotent.
func NormalizePadding(p Padding, floor float64) Padding {
	return Padding{
		Top:    clamp(p.Top, floor),
		Right:  clamp(p.Right, floor),
		Bottom: clamp(p.Bottom, floor),
		Left:   clamp(p.Left, floor),
	}
}

// clamp raises v to floor; NaN is treated as below any floor.
func clamp(v, floor float64) float64 {
	if !(v >= floor) {
		return floor
	}
	return v
}
