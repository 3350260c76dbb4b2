package sink

import (
	"encoding/json"
	"image/color"

	"github.com/matzehuels/linechart/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent bool
}

// WithCompactJSON disables indentation.
func WithCompactJSON() JSONOption { return func(r *jsonRenderer) { r.indent = false } }

type jsonOutput struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Background string      `json:"background"`
	Groups     []jsonGroup `json:"groups"`
}

type jsonGroup struct {
	Name     string        `json:"name"`
	Commands []jsonCommand `json:"commands"`
}

// jsonCommand is the flattened form of every command; fields that do not
// apply to an op are omitted.
type jsonCommand struct {
	Op        render.Op    `json:"op"`
	X         *float64     `json:"x,omitempty"`
	Y         *float64     `json:"y,omitempty"`
	Radius    *float64     `json:"radius,omitempty"`
	LineWidth *float64     `json:"line_width,omitempty"`
	Cap       string       `json:"cap,omitempty"`
	Join      string       `json:"join,omitempty"`
	Dash      []float64    `json:"dash,omitempty"`
	Text      *string      `json:"text,omitempty"`
	Font      *render.Font `json:"font,omitempty"`
	Align     string       `json:"align,omitempty"`
	Color     string       `json:"color,omitempty"`
	Opacity   *float64     `json:"opacity,omitempty"`
}

// RenderJSON exports the plan as a JSON document:
//
//	{"width": 800, "height": 400, "background": "#1e1e1e",
//	 "groups": [{"name": "x-axis", "commands": [{"op": "moveTo", "x": 20, "y": 20}, ...]}]}
//
// The output preserves group and command order, so two equal plans encode to
// identical bytes.
func RenderJSON(p render.Plan, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{indent: true}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      p.Width,
		Height:     p.Height,
		Background: hexColor(p.Background),
		Groups:     make([]jsonGroup, 0, len(p.Groups)),
	}
	for _, g := range p.Groups {
		jg := jsonGroup{Name: string(g.Kind), Commands: make([]jsonCommand, 0, len(g.Commands))}
		for _, c := range g.Commands {
			jg.Commands = append(jg.Commands, encodeCommand(c))
		}
		out.Groups = append(out.Groups, jg)
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func encodeCommand(c render.Command) jsonCommand {
	out := jsonCommand{Op: c.Op()}
	switch c := c.(type) {
	case render.MoveTo:
		out.X, out.Y = ptr(c.X), ptr(c.Y)
	case render.LineTo:
		out.X, out.Y = ptr(c.X), ptr(c.Y)
	case render.StrokePath:
		out.LineWidth = ptr(c.LineWidth)
		out.Cap, out.Join = c.Cap.String(), c.Join.String()
		out.Dash = c.Dash
		setColor(&out, c.Color)
	case render.FillCircle:
		out.X, out.Y = ptr(c.Center.X), ptr(c.Center.Y)
		out.Radius = ptr(c.Radius)
		setColor(&out, c.Color)
	case render.DrawText:
		out.X, out.Y = ptr(c.Origin.X), ptr(c.Origin.Y)
		out.Text = ptr(c.Text)
		font := c.Font
		out.Font = &font
		out.Align = c.Align.String()
		setColor(&out, c.Color)
	}
	return out
}

func setColor(out *jsonCommand, c color.RGBA) {
	out.Color = hexColor(c)
	if c.A != 0xFF {
		out.Opacity = ptr(opacity(c))
	}
}

func ptr[T any](v T) *T { return &v }
