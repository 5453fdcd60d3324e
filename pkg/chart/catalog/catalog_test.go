package catalog

import (
	"testing"

	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/errors"
)

func TestChartsAllValid(t *testing.T) {
	for _, spec := range Charts() {
		if err := spec.Validate(); err != nil {
			t.Errorf("catalog chart %q fails validation: %v", spec.ID, err)
		}
	}
}

func TestChartsUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, spec := range Charts() {
		if seen[spec.ID] {
			t.Errorf("duplicate chart id %q", spec.ID)
		}
		seen[spec.ID] = true
	}
}

func TestCatalogShape(t *testing.T) {
	specs := Charts()
	if len(specs) != 8 {
		t.Fatalf("catalog has %d charts, want 8", len(specs))
	}

	wantKinds := map[string]chart.Kind{
		"roi_disaster_type":     chart.KindHorizontalBar,
		"roi_partner_type":      chart.KindRankedBar,
		"cost_containment":      chart.KindDonut,
		"ia_uptake":             chart.KindGroupedBar,
		"speed_advantage":       chart.KindAnnotatedBar,
		"volunteer_trends":      chart.KindMultiLine,
		"homes_safer":           chart.KindBubbleScatterLog,
		"stakeholder_sentiment": chart.KindRadar,
	}
	for _, spec := range specs {
		want, ok := wantKinds[spec.ID]
		if !ok {
			t.Errorf("unexpected chart id %q", spec.ID)
			continue
		}
		if spec.Kind != want {
			t.Errorf("chart %q kind = %s, want %s", spec.ID, spec.Kind, want)
		}
	}
}

func TestByID(t *testing.T) {
	spec, err := ByID("roi_disaster_type")
	if err != nil {
		t.Fatalf("ByID error: %v", err)
	}
	if spec.Points[0].Label != "Hurricane" || spec.Points[0].Value != 37.30 {
		t.Errorf("unexpected first point: %+v", spec.Points[0])
	}

	_, err = ByID("nonexistent")
	if !errors.Is(err, errors.ErrCodeChartNotFound) {
		t.Errorf("ByID(nonexistent) code = %q, want CHART_NOT_FOUND", errors.GetCode(err))
	}
}

func TestIDsMatchCharts(t *testing.T) {
	ids := IDs()
	specs := Charts()
	if len(ids) != len(specs) {
		t.Fatalf("IDs length %d != Charts length %d", len(ids), len(specs))
	}
	for i, id := range ids {
		if specs[i].ID != id {
			t.Errorf("IDs[%d] = %q, Charts[%d].ID = %q", i, id, i, specs[i].ID)
		}
	}
}

func TestDashboardConstants(t *testing.T) {
	if DashboardID != "executive_dashboard" {
		t.Errorf("DashboardID = %q", DashboardID)
	}
	if err := errors.ValidateChartID(DashboardID); err != nil {
		t.Errorf("DashboardID fails id validation: %v", err)
	}
}
