package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linechart/pkg/axis"
	"github.com/matzehuels/linechart/pkg/layout"
)

// ticksCommand creates the ticks command.
func (c *CLI) ticksCommand() *cobra.Command {
	var f chartFlags

	cmd := &cobra.Command{
		Use:   "ticks [data]",
		Short: "Print the vertical axis of a chart",
		Long:  `Print the axis bounds, the gridline unit and every tick with its label and vertical position.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(args[0], cmd.Flags().Changed)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			planned, err := runner.Plan(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printTicks(planned.Ticks, planned.Geometry)
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func printTicks(ts axis.TickSet, g layout.Geometry) {
	printKeyValue("Range", fmt.Sprintf("%s … %s", axis.FormatLabel(ts.Min, ts.DecimalPlaces), axis.FormatLabel(ts.Max, ts.DecimalPlaces)))
	printKeyValue("Unit step", strconv.FormatFloat(ts.Unit, 'g', -1, 64))
	printKeyValue("Ticks", strconv.Itoa(ts.Count))
	printKeyValue("Columns", strconv.Itoa(g.Columns))
	fmt.Println(tickTable(ts, g))
}

// tickTable renders ticks top to bottom, the way they appear on the chart.
func tickTable(ts axis.TickSet, g layout.Geometry) string {
	rows := make([][]string, 0, len(ts.Ticks))
	for i := len(ts.Ticks) - 1; i >= 0; i-- {
		tk := ts.Ticks[i]
		rows = append(rows, []string{
			strconv.Itoa(i),
			tk.Label,
			strconv.FormatFloat(g.TickY(tk.Value), 'f', 1, 64),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Label", "Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 1:
				return StyleNumber
			default:
				return StyleDim
			}
		}).
		Render()
}
