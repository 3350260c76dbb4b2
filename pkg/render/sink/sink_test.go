package sink

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/linechart/pkg/chart"
	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/numeric"
	"github.com/matzehuels/linechart/pkg/render"
	"github.com/matzehuels/linechart/pkg/series"
)

var red = color.RGBA{R: 0xFF, A: 0xFF}

func testPlan() render.Plan {
	return render.Plan{
		Width:      100,
		Height:     100,
		Background: render.Charcoal,
		Groups: []render.Group{
			{Kind: render.GroupPolyline, Commands: []render.Command{
				render.MoveTo{Point: render.Point{X: 10, Y: 20}},
				render.LineTo{Point: render.Point{X: 30, Y: 40}},
				render.StrokePath{LineWidth: 1, Cap: render.CapRound, Join: render.JoinBevel, Color: render.Cyan},
			}},
			{Kind: render.GroupYGridlines, Commands: []render.Command{
				render.MoveTo{Point: render.Point{X: 0, Y: 50}},
				render.LineTo{Point: render.Point{X: 100, Y: 50}},
				render.StrokePath{LineWidth: 0.2, Dash: []float64{2, 3}, Color: render.LightGray},
			}},
			{Kind: render.GroupMarkers, Commands: []render.Command{
				render.FillCircle{Center: render.Point{X: 10, Y: 20}, Radius: 2, Color: red},
			}},
			{Kind: render.GroupXLabels, Commands: []render.Command{
				render.DrawText{Text: "<a&b>", Origin: render.Point{X: 50, Y: 5}, Font: render.SystemFont, Align: render.AlignCenter, Color: render.White},
			}},
		},
	}
}

func scenarioPlan(t *testing.T) render.Plan {
	t.Helper()
	c := chart.New[numeric.Float64]()
	values := numeric.Wrap[numeric.Float64]([]float64{19.10, 19.34, 19.25, 19.50, 19.30, 19.70, 19.55, 19.60, 19.20, 19.3, 19.10, 19.0})
	c.SetSeries(series.Range(12), values)
	p, err := c.Plan(800, 400)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	return p
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testPlan()))

	want := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="100" height="100">`,
		`<rect x="0" y="0" width="100" height="100" fill="#1e1e1e"/>`,
		`<g class="polyline">`,
		`<path d="M 10 80 L 30 60" fill="none" stroke="#00f0ff" stroke-width="1" stroke-linecap="round" stroke-linejoin="bevel"/>`,
		`stroke-dasharray="2 3"`,
		`<circle cx="10" cy="80" r="2" fill="#ff0000"/>`,
		`<text x="50" y="95" text-anchor="middle" font-family="sans-serif" font-size="12" fill="#ffffff">&lt;a&amp;b&gt;</text>`,
	}
	for _, w := range want {
		if !strings.Contains(svg, w) {
			t.Errorf("SVG missing %q\n%s", w, svg)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG not closed")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	svg := string(RenderSVG(testPlan(), WithoutBackground(), WithFontFamily("Helvetica")))
	if strings.Contains(svg, "<rect") {
		t.Error("background rect rendered despite WithoutBackground")
	}
	if !strings.Contains(svg, `font-family="Helvetica"`) {
		t.Error("font family option ignored")
	}
}

func TestRenderSVGPaths(t *testing.T) {
	p := render.Plan{Width: 10, Height: 10, Groups: []render.Group{
		{Kind: render.GroupXAxis, Commands: []render.Command{
			render.MoveTo{Point: render.Point{X: 0, Y: 0}},
			render.LineTo{Point: render.Point{X: 10, Y: 0}},
			render.StrokePath{LineWidth: 1, Dash: []float64{4, 0}, Color: render.LightGray},
			render.MoveTo{Point: render.Point{X: 5, Y: 5}},
			render.LineTo{Point: render.Point{X: 6, Y: 6}},
		}},
	}}
	svg := string(RenderSVG(p))

	if n := strings.Count(svg, "<path"); n != 1 {
		t.Errorf("paths = %d, want 1 (unstroked path dropped)", n)
	}
	if strings.Contains(svg, "dasharray") {
		t.Error("gapless dash rendered as dashed")
	}
	if strings.Contains(svg, "<rect") {
		t.Error("transparent background rendered")
	}
}

func TestRenderSVGScenario(t *testing.T) {
	p := scenarioPlan(t)
	svg := string(RenderSVG(p))
	for _, g := range p.Groups {
		if !strings.Contains(svg, `<g class="`+string(g.Kind)+`">`) {
			t.Errorf("missing group %s", g.Kind)
		}
	}
	if n := strings.Count(svg, "<circle"); n != 12 {
		t.Errorf("circles = %d, want 12", n)
	}
	if !bytes.Equal(RenderSVG(p), RenderSVG(p)) {
		t.Error("SVG output not deterministic")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testPlan())
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out.Width != 100 || out.Height != 100 || out.Background != "#1e1e1e" {
		t.Errorf("header = %v x %v %s", out.Width, out.Height, out.Background)
	}
	if len(out.Groups) != 4 || out.Groups[0].Name != "polyline" || out.Groups[3].Name != "x-labels" {
		t.Fatalf("groups = %+v", out.Groups)
	}

	move := out.Groups[0].Commands[0]
	if move.Op != render.OpMoveTo || *move.X != 10 || *move.Y != 20 {
		t.Errorf("moveTo = %+v", move)
	}
	stroke := out.Groups[0].Commands[2]
	if stroke.Cap != "round" || stroke.Join != "bevel" || stroke.Color != "#00f0ff" || *stroke.LineWidth != 1 {
		t.Errorf("strokePath = %+v", stroke)
	}
	circle := out.Groups[2].Commands[0]
	if *circle.Radius != 2 || circle.Color != "#ff0000" || circle.Opacity != nil {
		t.Errorf("fillCircle = %+v", circle)
	}
	text := out.Groups[3].Commands[0]
	if *text.Text != "<a&b>" || text.Align != "center" || text.Font.Size != 12 {
		t.Errorf("drawText = %+v", text)
	}
}

func TestRenderJSONCompact(t *testing.T) {
	p := scenarioPlan(t)
	a, _ := RenderJSON(p, WithCompactJSON())
	b, _ := RenderJSON(p, WithCompactJSON())
	if !bytes.Equal(a, b) {
		t.Error("JSON output not deterministic")
	}
	if bytes.Contains(a, []byte("\n")) {
		t.Error("compact JSON contains newlines")
	}
}

func TestRenderPNG(t *testing.T) {
	tests := []struct {
		name  string
		opts  []PNGOption
		width int
	}{
		{"default scale", nil, 1600},
		{"scale 1", []PNGOption{WithScale(1)}, 800},
	}
	p := scenarioPlan(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(p, tt.opts...)
			if err != nil {
				t.Fatalf("RenderPNG: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("png.Decode: %v", err)
			}
			if w := img.Bounds().Dx(); w != tt.width {
				t.Errorf("width = %d, want %d", w, tt.width)
			}
		})
	}
}

func TestRenderPNGErrors(t *testing.T) {
	if _, err := RenderPNG(testPlan(), WithScale(0)); !errors.Is(err, errors.ErrCodeInvalidOption) {
		t.Errorf("scale 0: error = %v, want INVALID_OPTION", err)
	}
	if _, err := RenderPNG(render.Plan{}); !errors.Is(err, errors.ErrCodeInvalidViewport) {
		t.Errorf("empty plan: error = %v, want INVALID_VIEWPORT", err)
	}
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(scenarioPlan(t))
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF: %q", data[:min(8, len(data))])
	}
	if _, err := RenderPDF(render.Plan{Width: 10}); !errors.Is(err, errors.ErrCodeInvalidViewport) {
		t.Errorf("zero height: error = %v, want INVALID_VIEWPORT", err)
	}
}

func TestRenderText(t *testing.T) {
	p := render.Plan{Width: 10, Height: 5, Groups: []render.Group{
		{Kind: render.GroupXLabels, Commands: []render.Command{
			render.DrawText{Text: "hi", Origin: render.Point{X: 5, Y: 2.5}, Align: render.AlignCenter},
		}},
		{Kind: render.GroupPolyline, Commands: []render.Command{
			render.MoveTo{Point: render.Point{X: 0, Y: 0}},
			render.LineTo{Point: render.Point{X: 10, Y: 0}},
			render.StrokePath{LineWidth: 1},
		}},
		{Kind: render.GroupMarkers, Commands: []render.Command{
			render.FillCircle{Center: render.Point{X: 0.5, Y: 4.5}, Radius: 1},
		}},
	}}

	got, err := RenderText(p, 10, 5)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	want := "o\n\n    hi\n\n----------\n"
	if string(got) != want {
		t.Errorf("RenderText =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderTextGlyphs(t *testing.T) {
	p := render.Plan{Width: 4, Height: 4, Groups: []render.Group{
		{Kind: render.GroupYAxis, Commands: []render.Command{
			render.MoveTo{Point: render.Point{X: 0, Y: 0}},
			render.LineTo{Point: render.Point{X: 0, Y: 4}},
		}},
		{Kind: render.GroupPolyline, Commands: []render.Command{
			render.MoveTo{Point: render.Point{X: 1, Y: 0}},
			render.LineTo{Point: render.Point{X: 4, Y: 3}},
		}},
	}}

	got, err := RenderText(p, 4, 4)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	want := "+\n+  /\n+ /\n+/\n"
	if string(got) != want {
		t.Errorf("RenderText =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderTextClipsOffGridSegments(t *testing.T) {
	p := render.Plan{Width: 10, Height: 5, Groups: []render.Group{
		{Kind: render.GroupPolyline, Commands: []render.Command{
			render.MoveTo{Point: render.Point{X: 5, Y: -1e12}},
			render.LineTo{Point: render.Point{X: 5, Y: 2.5}},
			render.MoveTo{Point: render.Point{X: -100, Y: -100}},
			render.LineTo{Point: render.Point{X: -50, Y: -1e15}},
		}},
	}}

	got, err := RenderText(p, 10, 5)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	want := "\n\n     |\n     |\n     |\n"
	if string(got) != want {
		t.Errorf("RenderText =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderTextErrors(t *testing.T) {
	if _, err := RenderText(testPlan(), 0, 10); !errors.Is(err, errors.ErrCodeInvalidViewport) {
		t.Errorf("zero cols: error = %v, want INVALID_VIEWPORT", err)
	}
}

func TestDashPattern(t *testing.T) {
	tests := []struct {
		in    []float64
		solid bool
	}{
		{nil, true},
		{[]float64{4, 0}, true},
		{[]float64{4, 0, 2, 0}, true},
		{[]float64{2, 3}, false},
		{[]float64{4}, false},
		{[]float64{0}, true},
		{[]float64{2, -1}, true},
	}
	for _, tt := range tests {
		if got := dashPattern(tt.in) == nil; got != tt.solid {
			t.Errorf("dashPattern(%v) solid = %v, want %v", tt.in, got, tt.solid)
		}
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{0: "0", 80: "80", 65.5: "65.5", 1.0 / 3: "0.33", -0.001: "0", 100: "100"}
	for in, want := range tests {
		if got := num(in); got != want {
			t.Errorf("num(%v) = %q, want %q", in, got, want)
		}
	}
}
