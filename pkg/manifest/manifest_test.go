package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/errors"
)

const validManifest = `
title = "Regional Impact Report"

[[charts]]
id = "regional_roi"
kind = "horizontal_bar"
title = "ROI by Region"
value_suffix = "%"
points = [
  { label = "Southeast", value = 31.2 },
  { label = "Gulf Coast", value = 28.9 },
]

[[charts]]
id = "uptake_trend"
kind = "multi_line"
title = "Uptake Over Time"
labels = ["Q1", "Q2", "Q3"]
series = [
  { name = "Baseline", values = [40.0, 42.0, 45.0] },
  { name = "CAP", values = [55.0, 61.0, 68.0] },
]
`

func TestRead(t *testing.T) {
	m, err := Read(strings.NewReader(validManifest))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	if m.Title != "Regional Impact Report" {
		t.Errorf("Title = %q", m.Title)
	}
	if len(m.Charts) != 2 {
		t.Fatalf("got %d charts, want 2", len(m.Charts))
	}

	first := m.Charts[0]
	if first.ID != "regional_roi" || first.Kind != chart.KindHorizontalBar {
		t.Errorf("first chart = %q/%s", first.ID, first.Kind)
	}
	if first.Points[1].Value != 28.9 {
		t.Errorf("second point value = %v", first.Points[1].Value)
	}

	second := m.Charts[1]
	if len(second.Series) != 2 || len(second.Series[0].Values) != 3 {
		t.Errorf("seriated chart decoded wrong: %+v", second)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{
			name:     "malformed toml",
			input:    `[[charts]` + "\n",
			wantCode: errors.ErrCodeInvalidManifest,
		},
		{
			name:     "no charts",
			input:    `title = "empty"`,
			wantCode: errors.ErrCodeInvalidManifest,
		},
		{
			name: "invalid kind",
			input: `
[[charts]]
id = "bad"
kind = "hologram"
title = "Bad"
points = [{ label = "x", value = 1.0 }]
`,
			wantCode: errors.ErrCodeInvalidKind,
		},
		{
			name: "empty points",
			input: `
[[charts]]
id = "empty_chart"
kind = "donut"
title = "Empty"
`,
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name: "duplicate ids",
			input: `
[[charts]]
id = "dup"
kind = "donut"
title = "One"
points = [{ label = "x", value = 1.0 }]

[[charts]]
id = "dup"
kind = "donut"
title = "Two"
points = [{ label = "y", value = 2.0 }]
`,
			wantCode: errors.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Read should fail")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("code = %q, want %q (err: %v)", errors.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "charts.toml")
	if err := os.WriteFile(path, []byte(validManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(m.Charts) != 2 {
		t.Errorf("got %d charts, want 2", len(m.Charts))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %q, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
