package sink

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// SystemFamily is the font family that selects the backend default face.
const SystemFamily = "system"

// hexColor renders the opaque part of c as #rrggbb. A fully transparent
// color renders as "none".
func hexColor(c color.RGBA) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "none"
	}
	return cf.Hex()
}

// opacity is c's alpha in [0, 1].
func opacity(c color.RGBA) float64 {
	return float64(c.A) / 0xFF
}

// dashPattern returns d when it describes a visible gap, nil for a solid
// stroke. Patterns whose off segments are all zero draw solid lines.
func dashPattern(d []float64) []float64 {
	if len(d) == 0 {
		return nil
	}
	gap := false
	for i, v := range d {
		if v < 0 {
			return nil
		}
		if i%2 == 1 && v > 0 {
			gap = true
		}
	}
	if len(d)%2 == 1 {
		// An odd pattern repeats, so every entry is an off segment once.
		for _, v := range d {
			if v > 0 {
				gap = true
			}
		}
	}
	if !gap {
		return nil
	}
	return d
}

// num formats a coordinate with at most two decimals.
func num(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func joinNums(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = num(f)
	}
	return strings.Join(parts, " ")
}
