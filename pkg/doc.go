// Package pkg provides the libraries behind linechart.
//
// # Overview
//
// Linechart turns a labeled series of numbers into a line chart. The engine
// never draws: one layout pass produces a backend-agnostic plan of draw
// commands, and sinks execute that plan on a concrete surface. The pkg
// directory is organized into three areas:
//
//  1. Engine - [numeric], [series], [layout], [axis], [render], [chart]
//  2. Output - [render/sink] (SVG, JSON, PNG, PDF, terminal text)
//  3. Plumbing - [io], [config], [pipeline], [cache], [observability], [errors]
//
// # Architecture
//
// The typical data flow:
//
//	CSV / JSON table        TOML / YAML / JSON config
//	         ↓                         ↓
//	    [io] package            [config] package
//	         ↓                         ↓
//	    [chart] package (series + layout + axis step + style)
//	         ↓
//	    [render] package (Plan: ordered draw commands)
//	         ↓
//	    [render/sink] package
//	         ↓
//	SVG/JSON/PNG/PDF/TXT output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/linechart/pkg/chart"
//	    "github.com/matzehuels/linechart/pkg/numeric"
//	    "github.com/matzehuels/linechart/pkg/render/sink"
//	)
//
//	c := chart.New[numeric.Float64]()
//	c.SetSeries([]string{"mon", "tue", "wed"}, []numeric.Float64{19.1, 19.3, 19.2})
//	plan, _ := c.Plan(800, 400)
//	svg := sink.RenderSVG(plan)
//
// # Main Packages
//
// [numeric] - The value kinds a series can hold (signed and unsigned
// integers of every width, float32, float64) with native ordering and a lossy
// scalar view used only for geometry.
//
// [series] - Labels and values with axis bounds that are recomputed on every
// assignment. An override holds until the next assignment.
//
// [layout] - Padding, visibility and the coordinate formulas.
//
// [axis] - Vertical tick computation and label formatting.
//
// [render] - Draw commands, styles and [render.Build], the one layout pass.
//
// [chart] - The embedding surface combining the above.
//
// [pipeline] - Load, plan and render with an artifact cache, shared by the
// CLI, the terminal viewer and the HTTP server.
package pkg
