package chart

import (
	"testing"

	"github.com/jefffranzen/capviz/pkg/errors"
)

func validFlatSpec() Spec {
	return Spec{
		ID:    "roi_disaster_type",
		Kind:  KindHorizontalBar,
		Title: "Return on Investment by Disaster Type",
		Points: []Point{
			{Label: "Hurricane", Value: 37.3},
			{Label: "Flood", Value: 22.1},
		},
	}
}

func validSeriatedSpec() Spec {
	return Spec{
		ID:     "volunteer_trends",
		Kind:   KindMultiLine,
		Title:  "Volunteer Engagement",
		Labels: []string{"FY20", "FY21"},
		Series: []Series{
			{Name: "National Average", Values: []float64{100, 102}},
			{Name: "CAP Jurisdictions", Values: []float64{100, 103}},
		},
	}
}

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Spec)
		spec     Spec
		wantErr  bool
		wantCode errors.Code
	}{
		{name: "valid flat", spec: validFlatSpec()},
		{name: "valid seriated", spec: validSeriatedSpec()},
		{
			name:     "empty id",
			spec:     validFlatSpec(),
			mutate:   func(s *Spec) { s.ID = "" },
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name:     "unknown kind",
			spec:     validFlatSpec(),
			mutate:   func(s *Spec) { s.Kind = "sunburst" },
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidKind,
		},
		{
			name:     "empty data points",
			spec:     validFlatSpec(),
			mutate:   func(s *Spec) { s.Points = nil },
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name:     "empty series",
			spec:     validSeriatedSpec(),
			mutate:   func(s *Spec) { s.Series = nil },
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name:     "series length mismatch",
			spec:     validSeriatedSpec(),
			mutate:   func(s *Spec) { s.Series[0].Values = []float64{100} },
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name:     "seriated without labels",
			spec:     validSeriatedSpec(),
			mutate:   func(s *Spec) { s.Labels = nil },
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name:     "points on seriated kind",
			spec:     validSeriatedSpec(),
			mutate:   func(s *Spec) { s.Points = []Point{{Label: "x", Value: 1}} },
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name:     "width below minimum",
			spec:     validFlatSpec(),
			mutate:   func(s *Spec) { s.Width = 800 },
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name:     "height below minimum",
			spec:     validFlatSpec(),
			mutate:   func(s *Spec) { s.Height = 500 },
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidSpec,
		},
		{
			name:   "explicit legal size",
			spec:   validFlatSpec(),
			mutate: func(s *Spec) { s.Width = 1400; s.Height = 800 },
		},
		{
			name:     "control characters in label",
			spec:     validFlatSpec(),
			mutate:   func(s *Spec) { s.Points[0].Label = "bad\x00" },
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := tt.spec
			if tt.mutate != nil {
				tt.mutate(&spec)
			}
			err := spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() code = %q, want %q", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestWithDefaults(t *testing.T) {
	s := validFlatSpec().WithDefaults()
	if s.Width != MinWidth || s.Height != MinHeight {
		t.Errorf("defaults = %dx%d, want %dx%d", s.Width, s.Height, MinWidth, MinHeight)
	}

	// Explicit sizes survive.
	s2 := validFlatSpec()
	s2.Width, s2.Height = 1600, 900
	s2 = s2.WithDefaults()
	if s2.Width != 1600 || s2.Height != 900 {
		t.Errorf("explicit size overridden: got %dx%d", s2.Width, s2.Height)
	}

	// Radar gets an axis cap.
	r := Spec{ID: "sentiment", Kind: KindRadar}
	if got := r.WithDefaults().AxisMax; got != 100 {
		t.Errorf("radar AxisMax = %v, want 100", got)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		if err != nil {
			t.Errorf("ParseKind(%q) error: %v", k, err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %q", k, got)
		}
	}

	if _, err := ParseKind("treemap"); !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("ParseKind(treemap) code = %q, want INVALID_KIND", errors.GetCode(err))
	}
}

func TestKindSeriated(t *testing.T) {
	seriated := map[Kind]bool{
		KindGroupedBar: true,
		KindMultiLine:  true,
		KindRadar:      true,
	}
	for _, k := range Kinds() {
		if got := k.Seriated(); got != seriated[k] {
			t.Errorf("%s.Seriated() = %v, want %v", k, got, seriated[k])
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		suffix string
		v      float64
		want   string
	}{
		{"percent one decimal", "", "%", 37.3, "37.3%"},
		{"whole number", "", "%", 28, "28%"},
		{"prefix", "+", "%", 1366.67, "+1366.7%"},
		{"days suffix", "", " days", 4, "4 days"},
		{"bare", "", "", 100, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Spec{ValuePrefix: tt.prefix, ValueSuffix: tt.suffix}
			if got := s.FormatValue(tt.v); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestFormatShare(t *testing.T) {
	s := Spec{Points: []Point{
		{Label: "a", Value: 75},
		{Label: "b", Value: 25},
	}}
	if got := s.FormatShare(25); got != "25.0%" {
		t.Errorf("FormatShare(25) = %q, want 25.0%%", got)
	}

	empty := Spec{}
	if got := empty.FormatShare(10); got != "0%" {
		t.Errorf("FormatShare on empty spec = %q, want 0%%", got)
	}
}

func TestMaxValue(t *testing.T) {
	s := validFlatSpec()
	if got := s.MaxValue(); got != 37.3 {
		t.Errorf("MaxValue = %v, want 37.3", got)
	}

	s.Benchmark = &Benchmark{Value: 50}
	if got := s.MaxValue(); got != 50 {
		t.Errorf("MaxValue with benchmark = %v, want 50", got)
	}

	if got := validSeriatedSpec().MaxValue(); got != 103 {
		t.Errorf("seriated MaxValue = %v, want 103", got)
	}
}

func TestPalette(t *testing.T) {
	p := Palette()
	if p[0] != ColorPrimary || p[1] != ColorSecondary {
		t.Fatalf("palette must lead with brand pair, got %v", p[:2])
	}
	if ColorPrimary != "#CC0000" || ColorSecondary != "#6B7C93" {
		t.Fatal("brand constants changed")
	}

	// Wraps around.
	if PaletteColor(len(p)) != p[0] {
		t.Error("PaletteColor should wrap")
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := TruncateLabel("short", 10); got != "short" {
		t.Errorf("TruncateLabel(short) = %q", got)
	}
	got := TruncateLabel("Terrebonne Parish (Hurricane Francine)", 12)
	if len([]rune(got)) > 12 {
		t.Errorf("TruncateLabel too long: %q", got)
	}
}
