// Package chart defines the chart specification model shared by the
// interactive and static renderers.
//
// A [Spec] describes one chart: its identity, kind, data, and styling
// accents. Specs are immutable once built; a renderer consumes a spec
// without modifying it, so the same spec can safely be rendered to both
// artifact formats concurrently.
//
// Flat kinds (bars, donut, bubble) carry their data in Points. Seriated
// kinds (grouped_bar, multi_line, radar) carry shared category Labels and
// one Series of values per named group; every series must supply exactly
// one value per label.
package chart

import (
	"github.com/jefffranzen/capviz/pkg/errors"
)

// Minimum output dimensions in logical pixels. Static artifacts are
// rendered at [RenderScale]x these dimensions.
const (
	MinWidth  = 1200
	MinHeight = 600

	// RenderScale is the supersampling factor for static raster output.
	RenderScale = 2
)

// Point is one labeled value in a flat chart.
type Point struct {
	Label string  `json:"label" toml:"label"`
	Value float64 `json:"value" toml:"value"`
}

// Series is one named group of values in a seriated chart. Values align
// positionally with the spec's Labels.
type Series struct {
	Name   string    `json:"name" toml:"name"`
	Values []float64 `json:"values" toml:"values"`
}

// Benchmark is a dashed reference line drawn across the value axis,
// e.g. the overall ROI that individual bars are compared against.
type Benchmark struct {
	Value float64 `json:"value" toml:"value"`
	Label string  `json:"label" toml:"label"`
}

// Spec describes one chart to render.
type Spec struct {
	// ID uniquely identifies the chart within a catalog and doubles as
	// the output file basename (<id>.html, <id>.png).
	ID string `json:"id" toml:"id"`

	Kind Kind `json:"kind" toml:"kind"`

	Title    string `json:"title" toml:"title"`
	Subtitle string `json:"subtitle,omitempty" toml:"subtitle"`

	// Points holds the data for flat kinds.
	Points []Point `json:"points,omitempty" toml:"points"`

	// Labels and Series hold the data for seriated kinds.
	Labels []string `json:"labels,omitempty" toml:"labels"`
	Series []Series `json:"series,omitempty" toml:"series"`

	// Axis titles. For horizontal kinds XAxisTitle names the value axis.
	XAxisTitle string `json:"x_axis_title,omitempty" toml:"x_axis_title"`
	YAxisTitle string `json:"y_axis_title,omitempty" toml:"y_axis_title"`

	// ValuePrefix and ValueSuffix wrap formatted values in labels and
	// tooltips (e.g. "+" and "%").
	ValuePrefix string `json:"value_prefix,omitempty" toml:"value_prefix"`
	ValueSuffix string `json:"value_suffix,omitempty" toml:"value_suffix"`

	// Benchmark draws a dashed reference line when set.
	Benchmark *Benchmark `json:"benchmark,omitempty" toml:"benchmark"`

	// Note is a framed callout drawn inside the plot area.
	Note string `json:"note,omitempty" toml:"note"`

	// CenterLabel is the caption inside a donut hole.
	CenterLabel string `json:"center_label,omitempty" toml:"center_label"`

	// AxisMax caps the value axis of radar charts (defaults to 100).
	AxisMax float64 `json:"axis_max,omitempty" toml:"axis_max"`

	// Width and Height are logical pixel dimensions. Zero means the
	// 1200x600 default; values below the minimum are rejected.
	Width  int `json:"width,omitempty" toml:"width"`
	Height int `json:"height,omitempty" toml:"height"`
}

// WithDefaults returns a copy of the spec with unset dimensions filled in.
// The receiver is not modified.
func (s Spec) WithDefaults() Spec {
	if s.Width == 0 {
		s.Width = MinWidth
	}
	if s.Height == 0 {
		s.Height = MinHeight
	}
	if s.Kind == KindRadar && s.AxisMax == 0 {
		s.AxisMax = 100
	}
	return s
}

// Validate checks the spec against the catalog invariants. It returns an
// INVALID_SPEC or INVALID_KIND coded error describing the first violation.
// Dimensions of zero are treated as "use the default" and pass.
func (s Spec) Validate() error {
	if err := errors.ValidateChartID(s.ID); err != nil {
		return err
	}

	if !s.Kind.Valid() {
		return errors.New(errors.ErrCodeInvalidKind, "chart %q: unrecognized kind %q", s.ID, string(s.Kind))
	}

	if s.Kind.Seriated() {
		if err := s.validateSeries(); err != nil {
			return err
		}
	} else {
		if err := s.validatePoints(); err != nil {
			return err
		}
	}

	if s.Width != 0 && s.Width < MinWidth {
		return errors.New(errors.ErrCodeInvalidSpec, "chart %q: width %d below minimum %d", s.ID, s.Width, MinWidth)
	}
	if s.Height != 0 && s.Height < MinHeight {
		return errors.New(errors.ErrCodeInvalidSpec, "chart %q: height %d below minimum %d", s.ID, s.Height, MinHeight)
	}

	return nil
}

func (s Spec) validatePoints() error {
	if len(s.Points) == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "chart %q: no data points", s.ID)
	}
	for i, p := range s.Points {
		if err := errors.ValidateLabel(p.Label); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSpec, err, "chart %q: point %d", s.ID, i)
		}
	}
	if len(s.Series) > 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "chart %q: kind %s takes points, not series", s.ID, s.Kind)
	}
	return nil
}

func (s Spec) validateSeries() error {
	if len(s.Series) == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "chart %q: no data points", s.ID)
	}
	if len(s.Labels) == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "chart %q: seriated kind %s requires labels", s.ID, s.Kind)
	}
	for _, l := range s.Labels {
		if err := errors.ValidateLabel(l); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSpec, err, "chart %q", s.ID)
		}
	}
	for _, srs := range s.Series {
		if srs.Name == "" {
			return errors.New(errors.ErrCodeInvalidSpec, "chart %q: series with empty name", s.ID)
		}
		if len(srs.Values) != len(s.Labels) {
			return errors.New(errors.ErrCodeInvalidSpec,
				"chart %q: series %q has %d values for %d labels", s.ID, srs.Name, len(srs.Values), len(s.Labels))
		}
	}
	if len(s.Points) > 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "chart %q: kind %s takes series, not points", s.ID, s.Kind)
	}
	return nil
}

// MaxValue returns the largest data value in the spec. Used by painters
// to size the value axis.
func (s Spec) MaxValue() float64 {
	var maxVal float64
	for _, p := range s.Points {
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}
	for _, srs := range s.Series {
		for _, v := range srs.Values {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if s.Benchmark != nil && s.Benchmark.Value > maxVal {
		maxVal = s.Benchmark.Value
	}
	return maxVal
}
