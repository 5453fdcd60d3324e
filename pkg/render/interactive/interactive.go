// Package interactive renders chart specifications as self-contained,
// browser-viewable HTML documents with hover tooltips.
//
// Rendering is built on [github.com/go-echarts/go-echarts/v2]. Every chart
// gets the fixed brand palette and centered title/subtitle block; element
// IDs are pinned to the spec ID so that rendering the same spec twice
// produces identical documents.
package interactive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/errors"
)

// Render produces the interactive HTML artifact for one chart.
// It fails with an INVALID_SPEC or INVALID_KIND error if the spec does not
// validate, and RENDER_RESOURCE if document generation fails.
func Render(spec chart.Spec) ([]byte, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec = spec.WithDefaults()

	c, err := build(spec)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := renderCharter(c, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderResource, err, "render %s.html", spec.ID)
	}
	return buf.Bytes(), nil
}

// renderable is the subset of the go-echarts chart API used here: every
// concrete chart type can render itself into a writer.
type renderable interface {
	components.Charter
	Render(w io.Writer) error
}

func renderCharter(c components.Charter, buf *bytes.Buffer) error {
	r, ok := c.(renderable)
	if !ok {
		return fmt.Errorf("chart type %T is not renderable", c)
	}
	return r.Render(buf)
}

// build dispatches a validated spec to its kind-specific builder.
func build(spec chart.Spec) (components.Charter, error) {
	switch spec.Kind {
	case chart.KindHorizontalBar, chart.KindAnnotatedBar:
		return buildHorizontalBar(spec), nil
	case chart.KindRankedBar:
		return buildRankedBar(spec), nil
	case chart.KindDonut:
		return buildDonut(spec), nil
	case chart.KindGroupedBar:
		return buildGroupedBar(spec), nil
	case chart.KindMultiLine:
		return buildMultiLine(spec), nil
	case chart.KindBubbleScatterLog:
		return buildBubbleScatter(spec), nil
	case chart.KindRadar:
		return buildRadar(spec), nil
	}
	// Validate has already rejected unknown kinds; this is a safety net
	// for kinds added to the model but not yet to the renderer.
	return nil, errors.New(errors.ErrCodeUnsupported, "no interactive builder for kind %q", spec.Kind)
}

// globalOptions returns the option set shared by every chart: brand
// colors, centered titles, deterministic element ID, and tooltips.
// A spec note is folded into the subtitle block.
func globalOptions(spec chart.Spec, trigger string) []charts.GlobalOpts {
	if spec.Note != "" {
		if spec.Subtitle != "" {
			spec.Subtitle += "\n" + spec.Note
		} else {
			spec.Subtitle = spec.Note
		}
	}
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       spec.Title,
			Width:           fmt.Sprintf("%dpx", spec.Width),
			Height:          fmt.Sprintf("%dpx", spec.Height),
			ChartID:         spec.ID,
			BackgroundColor: chart.ColorBackground,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    spec.Title,
			Subtitle: spec.Subtitle,
			Left:     "center",
			TitleStyle: &opts.TextStyle{
				Color:    chart.ColorText,
				FontSize: 22,
			},
			SubtitleStyle: &opts.TextStyle{
				Color:    chart.ColorSecondary,
				FontSize: 14,
			},
		}),
		charts.WithColorsOpts(opts.Colors(seriesColors(spec))),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: trigger,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(len(spec.Series) > 1),
			Bottom: "0",
		}),
	}
}

// seriesColors picks the color cycle for a spec. Seriated charts color by
// series (secondary first so the CAP series lands on brand red, matching
// the report's baseline-vs-CAP convention); flat charts color by point.
func seriesColors(spec chart.Spec) []string {
	if spec.Kind.Seriated() {
		if len(spec.Series) == 2 {
			return []string{chart.ColorSecondary, chart.ColorPrimary}
		}
		return chart.Palette()
	}
	return chart.Palette()
}

// valueFormatter builds an echarts label formatter carrying the spec's
// value prefix/suffix, e.g. "+{c}%".
func valueFormatter(spec chart.Spec) string {
	return spec.ValuePrefix + "{c}" + spec.ValueSuffix
}
