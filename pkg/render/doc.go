// Package render assembles backend-agnostic draw commands for a line chart.
//
// # Overview
//
// A layout pass turns a series, a layout config, an axis step and a style
// into a [Plan]: an ordered list of command groups. Backends execute the
// commands against their own canvas; this package never touches a drawing
// surface. Concrete backends live in the [sink] subpackage.
//
// # Commands
//
// Every command is one of [MoveTo], [LineTo], [StrokePath], [FillCircle] or
// [DrawText]. MoveTo and LineTo build the current path; StrokePath strokes
// and clears it. Coordinates use a bottom-left origin with y growing upward.
//
// # Group Order
//
// Groups are always emitted in this order, each omitted when hidden or empty:
//
//  1. x-axis baseline
//  2. y-axis baseline
//  3. vertical gridlines, one per column except the first
//  4. x labels, one per column
//  5. horizontal gridlines, one per tick above the minimum
//  6. their y labels
//  7. the minimum y label
//  8. the data polyline
//  9. one marker per data value
//
// The plan is a pure function of its inputs and contains no NaN or Inf
// coordinate.
//
//	plan, err := render.Build(s, layout.DefaultConfig(), axis.DefaultStep(), render.DefaultStyle(), layout.Viewport{Width: 800, Height: 400})
//	svg := sink.RenderSVG(plan)
//
// [sink]: github.com/matzehuels/linechart/pkg/render/sink
package render
