package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linechart/pkg/axis"
	"github.com/matzehuels/linechart/pkg/config"
	"github.com/matzehuels/linechart/pkg/pipeline"
)

const (
	// Pixel size of one terminal cell. Planning at this resolution keeps the
	// default padding proportional on a character grid.
	cellWidth  = 8
	cellHeight = 16

	// viewChrome is the number of rows taken by the header and key help.
	viewChrome = 3

	minViewCols = 20
	minViewRows = 5
)

// viewCommand creates the interactive preview command.
func (c *CLI) viewCommand() *cobra.Command {
	var f chartFlags

	cmd := &cobra.Command{
		Use:   "view [data]",
		Short: "Preview a chart in the terminal",
		Long: `Preview a chart as text. The plan is recomputed for the terminal size.

Keys: r reverse, + / - widen or narrow the gridline unit, 0 derive the unit
from the data, g toggle gridlines, q quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(args[0], cmd.Flags().Changed)
			if err != nil {
				return err
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			m := newViewModel(filepath.Base(args[0]), opts)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	f.register(cmd)
	return cmd
}

// =============================================================================
// viewModel - Interactive chart preview
// =============================================================================

// viewModel previews one table. file is a working copy of the loaded config
// that the keys edit; the loaded config itself is never modified.
type viewModel struct {
	title string
	base  pipeline.Options
	file  config.File

	width  int
	height int

	plot  string
	ticks axis.TickSet
	err   error
}

func newViewModel(title string, opts pipeline.Options) viewModel {
	m := viewModel{title: title, base: opts, width: 80, height: 24}
	if opts.Config != nil {
		m.file = *opts.Config
	}
	m.recompute()
	return m
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			v := !m.reversed()
			m.file.Layout.Reversed = &v
		case "+", "=":
			v := m.ticks.Unit * 2
			m.file.Axis.UnitStep = &v
		case "-", "_":
			v := max(m.ticks.Unit/2, axis.MinUnitStep)
			m.file.Axis.UnitStep = &v
		case "0":
			m.file.Axis.UnitStep = nil
		case "g":
			hide := !m.file.Visibility.HideYGridlines
			m.file.Visibility.HideXGridlines = hide
			m.file.Visibility.HideYGridlines = hide
		default:
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	default:
		return m, nil
	}
	m.recompute()
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName) + " " + StyleValue.Render(m.title) + "  " + StyleDim.Render(m.status()))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error() + "\n")
	} else {
		b.WriteString(m.plot)
	}
	b.WriteString(StyleDim.Render("r reverse  +/- unit  0 auto  g grid  q quit"))

	return b.String()
}

// grid returns the plot size in cells.
func (m viewModel) grid() (cols, rows int) {
	return max(m.width, minViewCols), max(m.height-viewChrome, minViewRows)
}

func (m viewModel) reversed() bool {
	return m.file.Layout.Reversed != nil && *m.file.Layout.Reversed
}

func (m viewModel) status() string {
	parts := []string{
		"unit " + strconv.FormatFloat(m.ticks.Unit, 'g', -1, 64),
		fmt.Sprintf("%d ticks", m.ticks.Count),
	}
	if m.reversed() {
		parts = append(parts, "reversed")
	}
	if m.file.Visibility.HideYGridlines {
		parts = append(parts, "no grid")
	}
	return strings.Join(parts, " · ")
}

// recompute plans the chart for the current grid and rasterizes it.
func (m *viewModel) recompute() {
	cols, rows := m.grid()
	f := m.file

	opts := m.base
	opts.Config = &f
	opts.Width = float64(cols * cellWidth)
	opts.Height = float64(rows * cellHeight)
	opts.TextCols = cols
	opts.TextRows = rows
	opts.Formats = []string{pipeline.FormatText}

	if m.err = opts.ValidateAndSetDefaults(); m.err != nil {
		return
	}
	planned, err := pipeline.Plan(opts)
	if err != nil {
		m.err = err
		return
	}
	data, err := pipeline.RenderFormat(planned.Plan, pipeline.FormatText, opts)
	if err != nil {
		m.err = err
		return
	}
	m.plot, m.ticks = string(data), planned.Ticks
}
