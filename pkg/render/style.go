package render

import (
	"image/color"
	"slices"

	"github.com/matzehuels/linechart/pkg/errors"
)

// Default palette.
var (
	Cyan       = color.RGBA{R: 0x00, G: 0xF0, B: 0xFF, A: 0xFF}
	LightGray  = color.RGBA{R: 0xCD, G: 0xCD, B: 0xCD, A: 0xFF}
	White      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Charcoal   = color.RGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	SystemFont = Font{Family: "system", Size: 12}
)

// LineStyle is the stroke applied to one kind of line.
type LineStyle struct {
	Width float64
	Cap   CapStyle
	Join  JoinStyle
	Dash  []float64
	Color color.RGBA
}

func (l LineStyle) stroke() StrokePath {
	return StrokePath{
		LineWidth: l.Width,
		Cap:       l.Cap,
		Join:      l.Join,
		Dash:      slices.Clone(l.Dash),
		Color:     l.Color,
	}
}

// TextStyle is the appearance of one kind of label.
type TextStyle struct {
	Font  Font
	Align Alignment
	Color color.RGBA
}

// Style holds the appearance of every command group.
type Style struct {
	Background color.RGBA

	Line LineStyle
	// MarkerSize is the diameter of each point marker.
	MarkerSize  float64
	MarkerColor color.RGBA

	XAxis      LineStyle
	YAxis      LineStyle
	XGridlines LineStyle
	YGridlines LineStyle

	XLabels TextStyle
	YLabels TextStyle
}

// DefaultStyle returns a cyan line with light gray axes and white labels on
// a charcoal background.
func DefaultStyle() Style {
	axis := LineStyle{Width: 0.6, Cap: CapButt, Join: JoinMiter, Color: LightGray}
	grid := LineStyle{Width: 0.2, Cap: CapButt, Join: JoinMiter, Dash: []float64{4, 0}, Color: LightGray}
	return Style{
		Background:  Charcoal,
		Line:        LineStyle{Width: 1, Cap: CapButt, Join: JoinRound, Color: Cyan},
		MarkerSize:  4,
		MarkerColor: Cyan,
		XAxis:       axis,
		YAxis:       axis,
		XGridlines:  grid,
		YGridlines:  LineStyle{Width: grid.Width, Cap: grid.Cap, Join: grid.Join, Dash: []float64{4, 0}, Color: grid.Color},
		XLabels:     TextStyle{Font: SystemFont, Align: AlignCenter, Color: White},
		YLabels:     TextStyle{Font: SystemFont, Align: AlignLeft, Color: White},
	}
}

// Validate rejects unknown enum values and negative or non-finite sizes.
func (s Style) Validate() error {
	lines := []struct {
		name string
		l    LineStyle
	}{
		{"line", s.Line},
		{"x axis", s.XAxis},
		{"y axis", s.YAxis},
		{"x gridlines", s.XGridlines},
		{"y gridlines", s.YGridlines},
	}
	for _, l := range lines {
		if err := l.l.validate(l.name); err != nil {
			return err
		}
	}
	if err := validSize("marker size", s.MarkerSize); err != nil {
		return err
	}
	if err := s.XLabels.validate("x labels"); err != nil {
		return err
	}
	return s.YLabels.validate("y labels")
}

func (l LineStyle) validate(name string) error {
	if !l.Cap.Valid() {
		return errors.New(errors.ErrCodeInvalidOption, "%s: invalid cap style %s", name, l.Cap)
	}
	if !l.Join.Valid() {
		return errors.New(errors.ErrCodeInvalidOption, "%s: invalid join style %s", name, l.Join)
	}
	if err := validSize(name+" width", l.Width); err != nil {
		return err
	}
	for _, d := range l.Dash {
		if err := validSize(name+" dash", d); err != nil {
			return err
		}
	}
	return nil
}

func (t TextStyle) validate(name string) error {
	if !t.Align.Valid() {
		return errors.New(errors.ErrCodeInvalidOption, "%s: invalid alignment %s", name, t.Align)
	}
	if err := validSize(name+" font size", t.Font.Size); err != nil {
		return err
	}
	return nil
}

func validSize(name string, v float64) error {
	if err := errors.ValidateFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%s cannot be negative, got %v", name, v)
	}
	return nil
}
