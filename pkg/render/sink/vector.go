package sink

import (
	"bytes"
	"math"
	"sync"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/render"
)

// DefaultScale is the PNG pixel density relative to one pixel per unit.
const DefaultScale = 2.0

var registerFonts sync.Once

// sans is the face used for the "system" family on gonum canvases.
var sans = font.Font{Typeface: "Liberation", Variant: "Sans"}

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the plan. The image is Width*scale by Height*scale
// pixels.
func RenderPNG(p render.Plan, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) || math.IsInf(r.scale, 0) {
		return nil, errors.New(errors.ErrCodeInvalidOption, "png scale must be positive and finite, got %v", r.scale)
	}
	if err := checkSize(p); err != nil {
		return nil, err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(p.Width), vg.Length(p.Height)),
		vgimg.UseDPI(int(math.Round(float64(vg.Inch)*r.scale))),
	)
	draw(c, p)

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// RenderPDF renders the plan as a single-page PDF sized Width by Height
// points, with the fonts embedded.
func RenderPDF(p render.Plan) ([]byte, error) {
	if err := checkSize(p); err != nil {
		return nil, err
	}

	c := vgpdf.New(vg.Length(p.Width), vg.Length(p.Height))
	c.EmbedFonts(true)
	draw(c, p)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode pdf")
	}
	return buf.Bytes(), nil
}

func checkSize(p render.Plan) error {
	if !(p.Width > 0) || !(p.Height > 0) || math.IsInf(p.Width, 0) || math.IsInf(p.Height, 0) {
		return errors.New(errors.ErrCodeInvalidViewport, "cannot rasterize a %vx%v plan", p.Width, p.Height)
	}
	return nil
}

// draw executes the plan on a gonum canvas. Canvas coordinates are y-up with
// the origin at the bottom-left, the same as plan coordinates. gonum
// canvases have no cap or join control, so those fields are ignored.
func draw(c vg.Canvas, p render.Plan) {
	registerFonts.Do(func() { font.DefaultCache.Add(liberation.Collection()) })

	if p.Background.A > 0 {
		var bg vg.Path
		bg.Move(vg.Point{})
		bg.Line(vg.Point{X: vg.Length(p.Width)})
		bg.Line(vg.Point{X: vg.Length(p.Width), Y: vg.Length(p.Height)})
		bg.Line(vg.Point{Y: vg.Length(p.Height)})
		bg.Close()
		c.SetColor(p.Background)
		c.Fill(bg)
	}

	var path vg.Path
	for _, cmd := range p.Commands() {
		switch cmd := cmd.(type) {
		case render.MoveTo:
			path.Move(point(cmd.Point))
		case render.LineTo:
			path.Line(point(cmd.Point))
		case render.StrokePath:
			if len(path) > 0 {
				c.SetLineWidth(vg.Length(cmd.LineWidth))
				c.SetLineDash(lengths(dashPattern(cmd.Dash)), 0)
				c.SetColor(cmd.Color)
				c.Stroke(path)
			}
			path = nil
		case render.FillCircle:
			var dot vg.Path
			center := point(cmd.Center)
			dot.Move(vg.Point{X: center.X + vg.Length(cmd.Radius), Y: center.Y})
			dot.Arc(center, vg.Length(cmd.Radius), 0, 2*math.Pi)
			dot.Close()
			c.SetColor(cmd.Color)
			c.Fill(dot)
		case render.DrawText:
			face := font.DefaultCache.Lookup(faceFor(cmd.Font), vg.Length(cmd.Font.Size))
			at := point(cmd.Origin)
			switch cmd.Align {
			case render.AlignCenter:
				at.X -= face.Width(cmd.Text) / 2
			case render.AlignRight:
				at.X -= face.Width(cmd.Text)
			}
			c.SetColor(cmd.Color)
			c.FillString(face, at, cmd.Text)
		}
	}
}

// faceFor maps a family onto the Liberation collection, the only one
// registered. Unknown families fall back to sans.
func faceFor(f render.Font) font.Font {
	switch f.Family {
	case "serif":
		return font.Font{Typeface: "Liberation", Variant: "Serif"}
	case "mono", "monospace":
		return font.Font{Typeface: "Liberation", Variant: "Mono"}
	}
	return sans
}

func point(p render.Point) vg.Point {
	return vg.Point{X: vg.Length(p.X), Y: vg.Length(p.Y)}
}

func lengths(fs []float64) []vg.Length {
	if len(fs) == 0 {
		return nil
	}
	out := make([]vg.Length, len(fs))
	for i, f := range fs {
		out[i] = vg.Length(f)
	}
	return out
}
