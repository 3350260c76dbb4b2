package render

import (
	"image/color"
	"math"
)

// Op names a draw command.
type Op string

const (
	OpMoveTo     Op = "moveTo"
	OpLineTo     Op = "lineTo"
	OpStrokePath Op = "strokePath"
	OpFillCircle Op = "fillCircle"
	OpDrawText   Op = "drawText"
)

// Point is a position in view coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) finite() bool { return finite(p.X) && finite(p.Y) }

// Font selects a typeface. Family "system" means the backend's default
// sans-serif face.
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
}

// Command is one backend instruction. The set is closed: MoveTo, LineTo,
// StrokePath, FillCircle and DrawText.
type Command interface {
	Op() Op
	isCommand()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point
}

// LineTo extends the current subpath to a point.
type LineTo struct {
	Point
}

// StrokePath strokes the current path and clears it.
type StrokePath struct {
	LineWidth float64
	Cap       CapStyle
	Join      JoinStyle
	// Dash alternates on and off lengths. Empty means solid.
	Dash  []float64
	Color color.RGBA
}

// FillCircle fills a circle.
type FillCircle struct {
	Center Point
	Radius float64
	Color  color.RGBA
}

// DrawText draws a single line of text. Origin is the left end of the
// baseline for AlignLeft, its middle for AlignCenter and its right end for
// AlignRight.
type DrawText struct {
	Text   string
	Origin Point
	Font   Font
	Align  Alignment
	Color  color.RGBA
}

func (MoveTo) Op() Op     { return OpMoveTo }
func (LineTo) Op() Op     { return OpLineTo }
func (StrokePath) Op() Op { return OpStrokePath }
func (FillCircle) Op() Op { return OpFillCircle }
func (DrawText) Op() Op   { return OpDrawText }

func (MoveTo) isCommand()     {}
func (LineTo) isCommand()     {}
func (StrokePath) isCommand() {}
func (FillCircle) isCommand() {}
func (DrawText) isCommand()   {}

// Finite reports whether every coordinate and size in c is finite.
func Finite(c Command) bool {
	switch c := c.(type) {
	case MoveTo:
		return c.finite()
	case LineTo:
		return c.finite()
	case StrokePath:
		if !finite(c.LineWidth) {
			return false
		}
		for _, d := range c.Dash {
			if !finite(d) {
				return false
			}
		}
		return true
	case FillCircle:
		return c.Center.finite() && finite(c.Radius)
	case DrawText:
		return c.Origin.finite() && finite(c.Font.Size)
	}
	return false
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
