package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jefffranzen/capviz/pkg/chart"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ChartListModel - Interactive chart selection
// =============================================================================

// ChartListModel is the bubbletea model for interactive chart selection.
// Space toggles charts, enter confirms the selection.
type ChartListModel struct {
	Charts    []chart.Spec
	Cursor    int
	Checked   map[int]bool
	Confirmed bool
}

// NewChartListModel creates a new chart list model.
func NewChartListModel(charts []chart.Spec) ChartListModel {
	return ChartListModel{
		Charts:  charts,
		Checked: make(map[int]bool),
	}
}

func (m ChartListModel) Init() tea.Cmd {
	return nil
}

func (m ChartListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Charts)-1 {
				m.Cursor++
			}
		case " ":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "a":
			for i := range m.Charts {
				m.Checked[i] = true
			}
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ChartListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Charts"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  space: toggle  a: all  enter: confirm  q: quit"))
	b.WriteString("\n\n")

	for i, spec := range m.Charts {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		check := "[ ]"
		if m.Checked[i] {
			check = StyleSuccess.Render("[x]")
		}

		line := fmt.Sprintf("%s%s %s", cursor, check, chartSummary(spec))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if m.Checked[i] {
			b.WriteString(listNormalStyle.Render(line))
		} else {
			b.WriteString(listDimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d selected]", len(m.Selection()))))

	return b.String()
}

// Selection returns the checked charts in catalog order. When nothing is
// checked, the chart under the cursor counts as the selection.
func (m ChartListModel) Selection() []chart.Spec {
	var picked []chart.Spec
	for i, spec := range m.Charts {
		if m.Checked[i] {
			picked = append(picked, spec)
		}
	}
	if picked == nil && len(m.Charts) > 0 {
		picked = []chart.Spec{m.Charts[m.Cursor]}
	}
	return picked
}

// pickCharts runs the interactive picker and returns the chosen charts.
// A nil slice means the user quit without confirming.
func pickCharts(specs []chart.Spec) ([]chart.Spec, error) {
	final, err := tea.NewProgram(NewChartListModel(specs)).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(ChartListModel)
	if !ok || !m.Confirmed {
		return nil, nil
	}
	return m.Selection(), nil
}
