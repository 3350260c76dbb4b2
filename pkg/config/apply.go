package config

import (
	"image/color"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/linechart/pkg/axis"
	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/layout"
	"github.com/matzehuels/linechart/pkg/render"
)

// ApplyLayout overlays the [layout] and [visibility] sections onto cfg. The
// floor is applied first so that the uniform padding and then each side are
// clamped against it.
func (f *File) ApplyLayout(cfg *layout.Config) {
	l := f.Layout
	if l.MinPadding != nil {
		cfg.SetMinPadding(*l.MinPadding)
	}
	if l.Padding != nil {
		cfg.SetPadding(*l.Padding)
	}
	sides := []struct {
		side layout.Side
		v    *float64
	}{
		{layout.Top, l.Top},
		{layout.Right, l.Right},
		{layout.Bottom, l.Bottom},
		{layout.Left, l.Left},
	}
	for _, s := range sides {
		if s.v != nil {
			cfg.SetSide(s.side, *s.v)
		}
	}
	if l.Reversed != nil {
		cfg.Reversed = *l.Reversed
	}

	v := f.Visibility
	cfg.Visibility = layout.Visibility{
		HideXAxis:      cfg.Visibility.HideXAxis || v.HideXAxis,
		HideYAxis:      cfg.Visibility.HideYAxis || v.HideYAxis,
		HideXGridlines: cfg.Visibility.HideXGridlines || v.HideXGridlines,
		HideYGridlines: cfg.Visibility.HideYGridlines || v.HideYGridlines,
		HideXLabels:    cfg.Visibility.HideXLabels || v.HideXLabels,
		HideYLabels:    cfg.Visibility.HideYLabels || v.HideYLabels,
	}
}

// ApplyAxis overlays the [axis] section. A unit step pins the step; without
// one the step stays derived from the bounds.
func (f *File) ApplyAxis(step *axis.Step) {
	if f.Axis.UnitStep != nil {
		step.Unit = *f.Axis.UnitStep
		step.Custom = true
	}
	if f.Axis.DecimalPlaces != nil {
		step.DecimalPlaces = *f.Axis.DecimalPlaces
	}
}

// ApplyStyle overlays the [style] section. Unknown enum names fail with
// INVALID_OPTION, malformed colors with INVALID_CONFIG. On error s is left
// unchanged.
func (f *File) ApplyStyle(s *render.Style) error {
	out := *s
	st := f.Style

	if err := setColor(&out.Background, st.Background, "style.background"); err != nil {
		return err
	}
	lines := []struct {
		name string
		src  Line
		dst  *render.LineStyle
	}{
		{"line", st.Line, &out.Line},
		{"x_axis", st.XAxis, &out.XAxis},
		{"y_axis", st.YAxis, &out.YAxis},
		{"x_gridlines", st.XGridlines, &out.XGridlines},
		{"y_gridlines", st.YGridlines, &out.YGridlines},
	}
	for _, l := range lines {
		if err := applyLine(l.dst, l.src, "style."+l.name); err != nil {
			return err
		}
	}
	if st.MarkerSize != nil {
		out.MarkerSize = *st.MarkerSize
	}
	if err := setColor(&out.MarkerColor, st.MarkerColor, "style.marker_color"); err != nil {
		return err
	}
	if err := applyText(&out.XLabels, st.XLabels, "style.x_labels"); err != nil {
		return err
	}
	if err := applyText(&out.YLabels, st.YLabels, "style.y_labels"); err != nil {
		return err
	}

	*s = out
	return nil
}

func applyLine(dst *render.LineStyle, src Line, key string) error {
	if src.Width != nil {
		dst.Width = *src.Width
	}
	if src.Cap != "" {
		c, err := render.ParseCapStyle(src.Cap)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidOption, err, "%s.cap", key)
		}
		dst.Cap = c
	}
	if src.Join != "" {
		j, err := render.ParseJoinStyle(src.Join)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidOption, err, "%s.join", key)
		}
		dst.Join = j
	}
	if src.Dash != nil {
		dst.Dash = slices.Clone(src.Dash)
	}
	return setColor(&dst.Color, src.Color, key+".color")
}

func applyText(dst *render.TextStyle, src Text, key string) error {
	if src.Font != "" {
		dst.Font.Family = src.Font
	}
	if src.Size != nil {
		dst.Font.Size = *src.Size
	}
	if src.Align != "" {
		a, err := render.ParseAlignment(src.Align)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidOption, err, "%s.align", key)
		}
		dst.Align = a
	}
	return setColor(&dst.Color, src.Color, key+".color")
}

func setColor(dst *color.RGBA, hex, key string) error {
	if hex == "" {
		return nil
	}
	c, err := ParseColor(hex)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", key)
	}
	*dst = c
	return nil
}

// ParseColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid color %q", hex)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// Hex formats an RGBA color as "#rrggbb", dropping alpha.
func Hex(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}
