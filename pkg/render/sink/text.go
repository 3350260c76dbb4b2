package sink

import (
	"bytes"
	"math"

	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/render"
)

// Glyphs used by [RenderText].
const (
	GlyphAxis     = '+'
	GlyphGridline = '.'
	GlyphMarker   = 'o'
	GlyphBlank    = ' '
)

type raster struct {
	cols, rows    int
	sx, sy        float64
	width, height float64
	cells         [][]rune
}

// RenderText draws the plan onto a cols x rows character grid, top row
// first, one line per row. Axes draw as '+', gridlines as '.', the data
// line with '-', '|', '/' and '\', markers as 'o' and labels as themselves.
// Later groups overwrite earlier ones.
func RenderText(p render.Plan, cols, rows int) ([]byte, error) {
	if cols <= 0 || rows <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidViewport, "text grid must be at least 1x1, got %dx%d", cols, rows)
	}
	if err := checkSize(p); err != nil {
		return nil, err
	}

	r := &raster{
		cols:   cols,
		rows:   rows,
		sx:     float64(cols) / p.Width,
		sy:     float64(rows) / p.Height,
		width:  p.Width,
		height: p.Height,
		cells:  make([][]rune, rows),
	}
	for i := range r.cells {
		r.cells[i] = bytes.Runes(bytes.Repeat([]byte{GlyphBlank}, cols))
	}

	for _, g := range p.Groups {
		r.group(g)
	}

	var buf bytes.Buffer
	for _, row := range r.cells {
		buf.WriteString(string(trimRight(row)))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func (r *raster) group(g render.Group) {
	var pen render.Point
	for _, c := range g.Commands {
		switch c := c.(type) {
		case render.MoveTo:
			pen = c.Point
		case render.LineTo:
			r.line(pen, c.Point, g.Kind)
			pen = c.Point
		case render.FillCircle:
			col, row := r.cell(c.Center)
			r.set(col, row, GlyphMarker)
		case render.DrawText:
			r.text(c)
		}
	}
}

// cell maps a plan point to a grid position, flipping y.
func (r *raster) cell(p render.Point) (int, int) {
	col := int(math.Floor(p.X * r.sx))
	row := int(math.Floor((r.height - p.Y) * r.sy))
	return min(col, r.cols-1), min(row, r.rows-1)
}

func (r *raster) set(col, row int, ch rune) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	r.cells[row][col] = ch
}

// line clips the segment to the view, then walks it with Bresenham's
// algorithm.
func (r *raster) line(from, to render.Point, kind render.GroupKind) {
	from, to, ok := clip(from, to, r.width, r.height)
	if !ok {
		return
	}
	x0, y0 := r.cell(from)
	x1, y1 := r.cell(to)
	ch := lineGlyph(kind, x1-x0, y1-y0)

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		r.set(x0, y0, ch)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clip trims the segment p-q to the rectangle [0, w] x [0, h] using the
// Liang-Barsky parametric form. ok is false when nothing lies inside.
func clip(p, q render.Point, w, h float64) (render.Point, render.Point, bool) {
	dx, dy := q.X-p.X, q.Y-p.Y
	if math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return p, q, false
	}
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{{-dx, p.X}, {dx, w - p.X}, {-dy, p.Y}, {dy, h - p.Y}}
	for _, e := range edges {
		pe, qe := e[0], e[1]
		if pe == 0 {
			if qe < 0 {
				return p, q, false
			}
			continue
		}
		t := qe / pe
		if pe < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return p, q, false
		}
	}
	return render.Point{X: p.X + t0*dx, Y: p.Y + t0*dy}, render.Point{X: p.X + t1*dx, Y: p.Y + t1*dy}, true
}

func (r *raster) text(t render.DrawText) {
	col, row := r.cell(t.Origin)
	runes := []rune(t.Text)
	switch t.Align {
	case render.AlignCenter:
		col -= len(runes) / 2
	case render.AlignRight:
		col -= len(runes)
	}
	for i, ch := range runes {
		r.set(col+i, row, ch)
	}
}

func lineGlyph(kind render.GroupKind, dx, dy int) rune {
	switch kind {
	case render.GroupXAxis, render.GroupYAxis:
		return GlyphAxis
	case render.GroupXGridlines, render.GroupYGridlines:
		return GlyphGridline
	}
	switch {
	case dy == 0:
		return '-'
	case dx == 0:
		return '|'
	case (dx > 0) == (dy < 0):
		// Rows grow downward, so rising to the right is a negative dy.
		return '/'
	}
	return '\\'
}

func trimRight(row []rune) []rune {
	n := len(row)
	for n > 0 && row[n-1] == GlyphBlank {
		n--
	}
	return row[:n]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
