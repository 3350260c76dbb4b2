package chart_test

import (
	"fmt"

	"github.com/matzehuels/linechart/pkg/chart"
	"github.com/matzehuels/linechart/pkg/layout"
	"github.com/matzehuels/linechart/pkg/numeric"
	"github.com/matzehuels/linechart/pkg/render"
	"github.com/matzehuels/linechart/pkg/series"
)

func Example() {
	c := chart.New[numeric.Float64]()
	values := numeric.Wrap[numeric.Float64]([]float64{
		19.10, 19.34, 19.25, 19.50, 19.30, 19.70, 19.55, 19.60, 19.20, 19.3, 19.10, 19.0,
	})
	c.SetSeries(series.Range(12), values)

	plan, err := c.Plan(800, 400)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, g := range plan.Groups {
		fmt.Println(g.Kind, len(g.Commands))
	}
	// Output:
	// x-axis 3
	// y-axis 3
	// x-gridlines 23
	// x-labels 12
	// y-gridlines 7
	// y-labels 3
	// y-min-label 1
	// polyline 13
	// markers 12
}

func ExampleChart_OverrideAxisRange() {
	c := chart.New[numeric.Int]()
	c.SetSeries([]string{"a", "b", "c"}, []numeric.Int{2, 4, 6})
	_ = c.OverrideAxisRange(0, 30)
	fmt.Println(c.Ticks().Labels())

	// The next assignment discards the override.
	c.SetSeries([]string{"a", "b", "c"}, []numeric.Int{2, 4, 6})
	fmt.Println(c.Ticks().Labels())
	// Output:
	// [0.00 10.00 20.00 30.00]
	// [2.00 3.33 4.67 6.00]
}

func ExampleChart_SetLayout() {
	c := chart.New[numeric.Float64]()
	c.SetSeries([]string{"1", "2", "3"}, []numeric.Float64{1, 2, 3})

	cfg := c.Layout()
	cfg.Reversed = true
	cfg.SetSide(layout.Bottom, 60)
	_ = c.SetLayout(cfg)

	plan, _ := c.Plan(200, 200)
	poly, _ := plan.Group(render.GroupPolyline)
	start := poly.Commands[0].(render.MoveTo)
	fmt.Printf("%.0f,%.0f\n", start.X, start.Y)
	// Output: 180,180
}
