package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jefffranzen/capviz/pkg/chart/catalog"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestChartListModelNavigation(t *testing.T) {
	m := NewChartListModel(catalog.Charts())

	next, _ := m.Update(keyMsg("j"))
	m = next.(ChartListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(ChartListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.Cursor)
	}

	// Up at the top stays put
	next, _ = m.Update(keyMsg("k"))
	m = next.(ChartListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
}

func TestChartListModelToggle(t *testing.T) {
	m := NewChartListModel(catalog.Charts())

	next, _ := m.Update(keyMsg(" "))
	m = next.(ChartListModel)
	if !m.Checked[0] {
		t.Error("space should check the chart under the cursor")
	}

	next, _ = m.Update(keyMsg(" "))
	m = next.(ChartListModel)
	if m.Checked[0] {
		t.Error("space should uncheck a checked chart")
	}
}

func TestChartListModelSelectAll(t *testing.T) {
	charts := catalog.Charts()
	m := NewChartListModel(charts)

	next, _ := m.Update(keyMsg("a"))
	m = next.(ChartListModel)
	if got := len(m.Selection()); got != len(charts) {
		t.Errorf("Selection() = %d charts after 'a', want %d", got, len(charts))
	}
}

func TestChartListModelDefaultSelection(t *testing.T) {
	m := NewChartListModel(catalog.Charts())
	next, _ := m.Update(keyMsg("j"))
	m = next.(ChartListModel)

	// Nothing checked: the cursor chart is the selection
	sel := m.Selection()
	if len(sel) != 1 || sel[0].ID != catalog.Charts()[1].ID {
		t.Errorf("Selection() = %+v, want cursor chart", sel)
	}
}

func TestChartListModelConfirm(t *testing.T) {
	m := NewChartListModel(catalog.Charts())
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(ChartListModel)

	if !m.Confirmed {
		t.Error("enter should confirm the selection")
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestChartListModelView(t *testing.T) {
	m := NewChartListModel(catalog.Charts())
	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}
	for _, spec := range catalog.Charts() {
		if !strings.Contains(view, spec.ID) {
			t.Errorf("view missing chart %q", spec.ID)
		}
	}
}
