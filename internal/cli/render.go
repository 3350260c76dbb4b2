package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/pipeline"
)

// renderFlags holds the output options of the render command.
type renderFlags struct {
	chart   chartFlags
	output  string
	formats string
	scale   float64
	cols    int
	rows    int
	noCache bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render [data]",
		Short: "Render a chart from a CSV or JSON table",
		Long: `Render a line chart from a data table.

The table is either CSV with a label and a value column (an optional header
row is skipped) or JSON of the form {"labels": [...], "values": [...]}.
Output formats: ` + strings.Join(pipeline.Formats(), ", ") + `.`,
		Example: `  linechart render prices.csv
  linechart render prices.csv -f svg,png -o out/prices
  linechart render prices.json --kind int64 --step 5 --reversed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.chart.options(args[0], cmd.Flags().Changed)
			if err != nil {
				return err
			}
			opts.Formats = parseFormats(f.formats)
			opts.Scale = f.scale
			opts.TextCols = f.cols
			opts.TextRows = f.rows
			opts.Refresh = f.refresh
			return c.runRender(cmd.Context(), args[0], opts, f)
		},
	}

	f.chart.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output path (default: input name with format extension)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output formats, comma separated (default svg)")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "PNG pixel density (default 2)")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "txt format columns (default 100)")
	cmd.Flags().IntVar(&f.rows, "rows", 0, "txt format rows (default 30)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, f renderFlags) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if f.output == "-" && len(opts.Formats) != 1 {
		return errors.New(errors.ErrCodeInvalidOption, "output - needs exactly one format, got %d", len(opts.Formats))
	}

	runner, err := c.newRunner(f.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}

	if f.output == "-" {
		spinner.Stop()
		return writeOutput("-", result.Artifacts[opts.Formats[0]])
	}

	paths := outputPaths(f.output, input, opts.Formats)
	spinner.StopWithSuccess("Rendered " + input)
	printStats(result.Stats.Points, result.Stats.Commands, result.CacheInfo.RenderHit)
	for _, format := range opts.Formats {
		data := result.Artifacts[format]
		if err := writeOutput(paths[format], data); err != nil {
			return err
		}
		printFile(fmt.Sprintf("%s %s", paths[format], StyleDim.Render(humanize.Bytes(uint64(len(data))))))
	}
	printNextStep("Preview in the terminal", appName+" view "+input)
	return nil
}

// outputPaths maps each format to a file path. A single format with an
// explicit output file (or "-") writes exactly there; otherwise files share
// the base path and differ by extension.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	explicit := output == "-" || pipeline.ValidFormats[strings.TrimPrefix(filepath.Ext(output), ".")]
	if len(formats) == 1 && explicit {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, format := range formats {
		paths[format] = base + "." + format
	}
	return paths
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeOutput writes data to path, creating parent directories. The path "-"
// writes to stdout.
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
