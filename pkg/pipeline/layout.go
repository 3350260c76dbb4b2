package pipeline

import (
	"github.com/matzehuels/linechart/pkg/axis"
	"github.com/matzehuels/linechart/pkg/chart"
	"github.com/matzehuels/linechart/pkg/config"
	lcio "github.com/matzehuels/linechart/pkg/io"
	"github.com/matzehuels/linechart/pkg/layout"
	"github.com/matzehuels/linechart/pkg/numeric"
	"github.com/matzehuels/linechart/pkg/render"
)

// Planned is the outcome of the plan stage.
type Planned struct {
	Plan     render.Plan
	Ticks    axis.TickSet
	Geometry layout.Geometry
}

// Plan builds a chart of opts.Kind from opts.Table, applies opts.Config and
// runs one layout pass. Call ValidateAndSetDefaults first.
func Plan(opts Options) (Planned, error) {
	t, f := opts.Table, opts.config()
	w, h := opts.Width, opts.Height

	switch opts.Kind {
	case numeric.KindInt:
		return planAs[numeric.Int](t, f, w, h)
	case numeric.KindInt8:
		return planAs[numeric.Int8](t, f, w, h)
	case numeric.KindInt16:
		return planAs[numeric.Int16](t, f, w, h)
	case numeric.KindInt32:
		return planAs[numeric.Int32](t, f, w, h)
	case numeric.KindInt64:
		return planAs[numeric.Int64](t, f, w, h)
	case numeric.KindUint:
		return planAs[numeric.Uint](t, f, w, h)
	case numeric.KindUint8:
		return planAs[numeric.Uint8](t, f, w, h)
	case numeric.KindUint16:
		return planAs[numeric.Uint16](t, f, w, h)
	case numeric.KindUint32:
		return planAs[numeric.Uint32](t, f, w, h)
	case numeric.KindUint64:
		return planAs[numeric.Uint64](t, f, w, h)
	case numeric.KindFloat32:
		return planAs[numeric.Float32](t, f, w, h)
	case numeric.KindFloat64:
		return planAs[numeric.Float64](t, f, w, h)
	}
	return Planned{}, numeric.ValidKind(opts.Kind)
}

func planAs[T numeric.Value[T]](t lcio.Table, f *config.File, width, height float64) (Planned, error) {
	c, err := NewChart[T](t, f)
	if err != nil {
		return Planned{}, err
	}
	p, err := c.Plan(width, height)
	if err != nil {
		return Planned{}, err
	}
	return Planned{Plan: p, Ticks: c.Ticks(), Geometry: c.Geometry(width, height)}, nil
}

// NewChart builds a chart of kind T holding t, configured from f.
func NewChart[T numeric.Value[T]](t lcio.Table, f *config.File) (*chart.Chart[T], error) {
	if f == nil {
		f = &config.File{}
	}
	values, err := lcio.Values[T](t)
	if err != nil {
		return nil, err
	}

	c := chart.New[T]()
	c.SetSeries(t.Labels, values)
	if err := Configure(c, f); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure applies a config file to an existing chart. On error the chart
// is left as it was.
func Configure[T numeric.Value[T]](c *chart.Chart[T], f *config.File) error {
	cfg := c.Layout()
	f.ApplyLayout(&cfg)

	step := c.AxisStep()
	f.ApplyAxis(&step)

	style := c.Style()
	if err := f.ApplyStyle(&style); err != nil {
		return err
	}
	return c.Apply(cfg, step, style)
}
