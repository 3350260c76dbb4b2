package render

import (
	"github.com/matzehuels/linechart/pkg/axis"
	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/layout"
	"github.com/matzehuels/linechart/pkg/numeric"
	"github.com/matzehuels/linechart/pkg/series"
)

// xLabelGap separates x labels from the baseline.
const xLabelGap = 4

// Build runs one layout pass and returns its plan.
//
// Configuration is validated first; a caller error returns before any
// geometry is computed. Degenerate data (no values, one column, a zero axis
// range) yields a smaller plan, never an error.
func Build[T numeric.Value[T]](s *series.Series[T], cfg layout.Config, step axis.Step, style Style, vp layout.Viewport) (Plan, error) {
	if err := vp.Validate(); err != nil {
		return Plan{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Plan{}, err
	}
	if err := step.Validate(); err != nil {
		return Plan{}, err
	}
	if err := style.Validate(); err != nil {
		return Plan{}, err
	}

	lo, hi := s.AxisRange()
	g := layout.NewGeometry(cfg, vp, s.IntervalCount(), lo.Scalar(), hi.Scalar())
	vis := cfg.Visibility

	b := &builder{plan: Plan{Width: vp.Width, Height: vp.Height, Background: style.Background}}

	if !vis.HideXAxis {
		b.begin(GroupXAxis)
		b.line(Point{g.Left(), g.Baseline()}, Point{g.Right(), g.Baseline()})
		b.add(style.XAxis.stroke())
	}
	if !vis.HideYAxis {
		b.begin(GroupYAxis)
		b.line(Point{g.Left(), g.Baseline()}, Point{g.Left(), g.Top()})
		b.add(style.YAxis.stroke())
	}
	if !vis.HideXGridlines && g.Columns > 1 {
		b.begin(GroupXGridlines)
		for col := 1; col < g.Columns; col++ {
			x := g.X(col)
			b.line(Point{x, g.Baseline()}, Point{x, g.Top()})
		}
		b.add(style.XGridlines.stroke())
	}
	if !vis.HideXLabels {
		b.begin(GroupXLabels)
		y := max(g.Baseline()-style.XLabels.Font.Size-xLabelGap, 0)
		for _, t := range axis.XTicks(g) {
			if l := s.Label(t.Column); l != "" {
				b.add(text(l, Point{t.X, y}, style.XLabels))
			}
		}
	}

	if s.Len() > 0 {
		ticks := axis.Compute(g.Min, g.Max, step)
		grid := ticks.Gridlines()
		if !vis.HideYGridlines && len(grid) > 0 {
			b.begin(GroupYGridlines)
			for _, t := range grid {
				y := g.TickY(t.Value)
				b.line(Point{g.Left(), y}, Point{g.Right(), y})
			}
			b.add(style.YGridlines.stroke())
		}
		if !vis.HideYLabels {
			b.begin(GroupYLabels)
			for _, t := range grid {
				b.add(text(t.Label, Point{g.Left(), g.TickY(t.Value)}, style.YLabels))
			}
			b.begin(GroupYMinLabel)
			m := ticks.Ticks[0]
			b.add(text(m.Label, Point{g.Left(), g.TickY(m.Value)}, style.YLabels))
		}
		polyline(b, s, g, style)
	}
	b.end()

	for _, grp := range b.plan.Groups {
		for _, c := range grp.Commands {
			if !Finite(c) {
				return Plan{}, errors.New(errors.ErrCodeInternal, "non-finite %s in %s group", c.Op(), grp.Kind)
			}
		}
	}
	return b.plan, nil
}

type vertex struct {
	at Point
	ok bool
}

// polyline emits the data path and one marker per finite value. Forward
// passes place value i at column i; reversed passes place the last value at
// the last column and walk backward. A non-finite value breaks the path and
// gets no marker.
func polyline[T numeric.Value[T]](b *builder, s *series.Series[T], g layout.Geometry, style Style) {
	n := s.Len()
	last := g.LastColumn()
	vs := make([]vertex, 0, n)
	for k := 0; k < n; k++ {
		i, col := k, k
		if g.Reversed {
			i, col = n-1-k, last-k
		}
		if col < 0 || col >= g.Columns {
			break
		}
		v := s.Value(i)
		if !numeric.IsFinite(v) {
			vs = append(vs, vertex{})
			continue
		}
		vs = append(vs, vertex{at: Point{g.X(col), layout.PointY(g, v)}, ok: true})
	}

	b.begin(GroupPolyline)
	pen := false
	for _, v := range vs {
		switch {
		case !v.ok:
			pen = false
		case pen:
			b.add(LineTo{v.at})
		default:
			b.add(MoveTo{v.at})
			pen = true
		}
	}
	if len(b.cur.Commands) > 0 {
		b.add(style.Line.stroke())
	}

	if style.MarkerSize > 0 {
		b.begin(GroupMarkers)
		for _, v := range vs {
			if v.ok {
				b.add(FillCircle{Center: v.at, Radius: style.MarkerSize / 2, Color: style.MarkerColor})
			}
		}
	}
}

func text(s string, at Point, ts TextStyle) DrawText {
	return DrawText{Text: s, Origin: at, Font: ts.Font, Align: ts.Align, Color: ts.Color}
}
