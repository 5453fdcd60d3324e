package errors

import (
	"strings"
	"testing"
)

func TestValidateChartID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid simple", "roi", false},
		{"valid snake case", "roi_disaster_type", false},
		{"valid with digits", "chart_2", false},
		{"empty", "", true},
		{"uppercase", "ROI", true},
		{"leading digit", "2charts", true},
		{"leading underscore", "_roi", true},
		{"path separator", "a/b", true},
		{"spaces", "roi chart", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChartID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChartID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSpec) {
				t.Errorf("ValidateChartID(%q) code = %q, want INVALID_SPEC", tt.id, GetCode(err))
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{"valid", "Hurricane", false},
		{"valid with punctuation", "Terrebonne Parish (Hurricane Francine)", false},
		{"empty", "", true},
		{"control character", "bad\x00label", true},
		{"newline", "two\nlines", true},
		{"too long", strings.Repeat("x", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
		})
	}
}

func TestValidateManifestFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"valid", "charts.toml", false},
		{"empty", "", true},
		{"with path", "dir/charts.toml", true},
		{"backslash", `dir\charts.toml`, true},
		{"hidden", ".charts.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManifestFilename(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateManifestFilename(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid relative", "graphics/roi.png", false},
		{"valid absolute", "/tmp/out/roi.png", false},
		{"empty", "", true},
		{"traversal", "../escape.png", true},
		{"null byte", "bad\x00.png", true},
		{"too long", strings.Repeat("p", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
