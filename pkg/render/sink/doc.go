// Package sink interprets a [render.Plan] into concrete output formats.
//
// # Overview
//
// A "sink" is a backend: it walks the plan's groups in order and executes
// each draw command against a surface. This package provides:
//
//   - SVG: hand-written markup, one <g> per command group
//   - JSON: the plan itself, for external tools and golden tests
//   - PNG: raster output through gonum's vgimg canvas
//   - PDF: vector output through gonum's vgpdf canvas
//   - Text: a coarse ASCII raster for terminals
//
// Plans use view coordinates with the origin at the bottom-left corner and
// y growing upward. SVG and the text raster have a top-left origin, so those
// sinks flip every y as height - y. The gonum canvases are y-up already.
//
// # Paths
//
// MoveTo and LineTo accumulate into a pending path. StrokePath strokes the
// pending path with its own width, cap, join, dash and color, then clears
// it. A pending path that is never stroked is discarded.
//
// # Fonts
//
// The font family "system" maps to the backend's sans-serif face: the
// generic sans-serif family in SVG and Liberation Sans on gonum canvases.
//
//	plan, _ := c.Plan(800, 400)
//	svg := sink.RenderSVG(plan)
//	png, err := sink.RenderPNG(plan, sink.WithScale(2))
package sink
