package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linechart/pkg/config"
	"github.com/matzehuels/linechart/pkg/numeric"
	"github.com/matzehuels/linechart/pkg/pipeline"
)

// chartFlags are the chart settings shared by render, ticks and view.
type chartFlags struct {
	config   string
	kind     string
	width    float64
	height   float64
	reversed bool
	step     float64
	decimals int
	sort     bool
}

func (f *chartFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.config, "config", "c", "", "chart config file (.toml, .yaml, .json)")
	flags.StringVarP(&f.kind, "kind", "k", "", "value kind: "+kindList())
	flags.Float64Var(&f.width, "width", 0, "viewport width in pixels (default 800)")
	flags.Float64Var(&f.height, "height", 0, "viewport height in pixels (default 400)")
	flags.BoolVar(&f.reversed, "reversed", false, "start the series at the right edge")
	flags.Float64Var(&f.step, "step", 0, "pin the vertical gridline unit")
	flags.IntVar(&f.decimals, "decimals", 0, "decimal places of axis labels")
	flags.BoolVar(&f.sort, "sort", false, "sort rows by label in natural order")
}

// options loads the table and config named by the flags. changed reports
// whether a flag was set explicitly; only those override the config file.
func (f *chartFlags) options(input string, changed func(name string) bool) (pipeline.Options, error) {
	table, err := pipeline.Load(input, f.sort)
	if err != nil {
		return pipeline.Options{}, err
	}

	file := &config.File{}
	if f.config != "" {
		if file, err = config.Load(f.config); err != nil {
			return pipeline.Options{}, err
		}
	}
	f.overlay(file, changed)

	return pipeline.Options{
		Table:      table,
		SortLabels: f.sort,
		Config:     file,
		Kind:       f.kind,
		Width:      f.width,
		Height:     f.height,
	}, nil
}

// overlay writes explicitly set flags into file.
func (f *chartFlags) overlay(file *config.File, changed func(name string) bool) {
	if changed("reversed") {
		v := f.reversed
		file.Layout.Reversed = &v
	}
	if changed("step") {
		v := f.step
		file.Axis.UnitStep = &v
	}
	if changed("decimals") {
		v := f.decimals
		file.Axis.DecimalPlaces = &v
	}
}

func kindList() string { return strings.Join(numeric.Kinds(), ", ") }
