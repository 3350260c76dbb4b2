package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/linechart/pkg/render"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fontFamily string
	background bool
}

// WithFontFamily sets the CSS family used for the "system" font.
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// WithoutBackground omits the background rectangle.
func WithoutBackground() SVGOption { return func(r *svgRenderer) { r.background = false } }

// RenderSVG renders the plan as a standalone SVG document. Each command
// group becomes a <g> whose class is the group kind.
func RenderSVG(p render.Plan, opts ...SVGOption) []byte {
	r := svgRenderer{fontFamily: "sans-serif", background: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(p.Width), num(p.Height), num(p.Width), num(p.Height))
	if r.background && p.Background.A > 0 {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%s" height="%s" fill="%s"%s/>`+"\n",
			num(p.Width), num(p.Height), hexColor(p.Background), opacityAttr("fill-opacity", p.Background.A))
	}

	for _, g := range p.Groups {
		fmt.Fprintf(&buf, `  <g class="%s">`+"\n", g.Kind)
		r.renderGroup(&buf, p.Height, g)
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderGroup(buf *bytes.Buffer, height float64, g render.Group) {
	var d strings.Builder
	for _, c := range g.Commands {
		switch c := c.(type) {
		case render.MoveTo:
			if d.Len() > 0 {
				d.WriteByte(' ')
			}
			fmt.Fprintf(&d, "M %s %s", num(c.X), num(height-c.Y))
		case render.LineTo:
			if d.Len() > 0 {
				d.WriteByte(' ')
			}
			fmt.Fprintf(&d, "L %s %s", num(c.X), num(height-c.Y))
		case render.StrokePath:
			if d.Len() > 0 {
				renderPath(buf, d.String(), c)
			}
			d.Reset()
		case render.FillCircle:
			fmt.Fprintf(buf, `    <circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`+"\n",
				num(c.Center.X), num(height-c.Center.Y), num(c.Radius), hexColor(c.Color), opacityAttr("fill-opacity", c.Color.A))
		case render.DrawText:
			fmt.Fprintf(buf, `    <text x="%s" y="%s" text-anchor="%s" font-family="%s" font-size="%s" fill="%s"%s>%s</text>`+"\n",
				num(c.Origin.X), num(height-c.Origin.Y), textAnchor(c.Align), escapeXML(r.family(c.Font)),
				num(c.Font.Size), hexColor(c.Color), opacityAttr("fill-opacity", c.Color.A), escapeXML(c.Text))
		}
	}
}

func renderPath(buf *bytes.Buffer, d string, s render.StrokePath) {
	fmt.Fprintf(buf, `    <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="%s" stroke-linejoin="%s"`,
		d, hexColor(s.Color), num(s.LineWidth), s.Cap, s.Join)
	if dash := dashPattern(s.Dash); dash != nil {
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, joinNums(dash))
	}
	buf.WriteString(opacityAttr("stroke-opacity", s.Color.A))
	buf.WriteString("/>\n")
}

func (r svgRenderer) family(f render.Font) string {
	if f.Family == "" || f.Family == SystemFamily {
		return r.fontFamily
	}
	return f.Family
}

func textAnchor(a render.Alignment) string {
	switch a {
	case render.AlignCenter:
		return "middle"
	case render.AlignRight:
		return "end"
	}
	return "start"
}

func opacityAttr(name string, a uint8) string {
	if a == 0xFF {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, name, num(float64(a)/0xFF))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
