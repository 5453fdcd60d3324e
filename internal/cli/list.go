package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/chart/catalog"
	"github.com/jefffranzen/capviz/pkg/manifest"
)

// listCommand creates the list command showing the available charts.
func (c *CLI) listCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the charts available to render",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := catalog.Charts()
			if manifestPath != "" {
				m, err := manifest.Load(manifestPath)
				if err != nil {
					return err
				}
				specs = m.Charts
			}
			printChartTable(specs)
			printNewline()
			printNextStep("Render everything", "capviz render")
			printNextStep("Render a subset", "capviz render "+specs[0].ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "list charts from a TOML manifest instead of the catalog")
	return cmd
}

// printChartTable prints the chart set as a bordered table.
func printChartTable(specs []chart.Spec) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(specs))
	for i, spec := range specs {
		rows[i] = []string{
			spec.ID,
			string(spec.Kind),
			spec.Title,
			fmt.Sprintf("%d", dataPoints(spec)),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Kind", "Title", "Points").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			if col == 1 {
				return StyleDim
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	fmt.Println(StyleDim.Render(fmt.Sprintf("  %d charts", len(specs))))
}

// dataPoints counts the values a spec carries regardless of shape.
func dataPoints(spec chart.Spec) int {
	if !spec.Kind.Seriated() {
		return len(spec.Points)
	}
	n := 0
	for _, s := range spec.Series {
		n += len(s.Values)
	}
	return n
}

// chartSummary renders a one-line description used by the picker.
func chartSummary(spec chart.Spec) string {
	return fmt.Sprintf("%-24s %s %s", spec.ID, StyleDim.Render(string(spec.Kind)),
		strings.TrimSpace(spec.Title))
}
