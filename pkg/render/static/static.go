// Package static renders chart specifications to PNG images suitable for
// slide decks and print.
//
// Drawing is done with [github.com/fogleman/gg] on an oversampled canvas:
// the context is allocated at the spec size times the render scale and all
// geometry is computed in device pixels, which keeps text crisp at the
// default 2x scale. Output is deterministic for a given spec and scale.
package static

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/errors"
)

type options struct {
	scale int
}

// Option configures a render.
type Option func(*options)

// WithScale overrides the default supersampling factor. Values below 1
// are ignored.
func WithScale(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.scale = n
		}
	}
}

// Render produces the static PNG artifact for one chart.
// It fails with an INVALID_SPEC or INVALID_KIND error if the spec does not
// validate, and RENDER_RESOURCE if fonts or encoding fail.
func Render(spec chart.Spec, opts ...Option) ([]byte, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec = spec.WithDefaults()

	o := options{scale: chart.RenderScale}
	for _, opt := range opts {
		opt(&o)
	}
	s := float64(o.scale)

	f, err := loadFaces(s)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(spec.Width*o.scale, spec.Height*o.scale)
	l := newLayout(spec, s)
	drawChrome(dc, spec, l, f)

	switch spec.Kind {
	case chart.KindHorizontalBar, chart.KindAnnotatedBar:
		drawHorizontalBars(dc, spec, l, f)
	case chart.KindRankedBar:
		drawRankedBars(dc, spec, l, f)
	case chart.KindDonut:
		drawDonut(dc, spec, l, f)
	case chart.KindGroupedBar:
		drawGroupedBars(dc, spec, l, f)
	case chart.KindMultiLine:
		drawMultiLine(dc, spec, l, f)
	case chart.KindBubbleScatterLog:
		drawBubbleScatter(dc, spec, l, f)
	case chart.KindRadar:
		drawRadar(dc, spec, l, f)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "no static painter for kind %q", spec.Kind)
	}

	if spec.Note != "" {
		drawNoteBox(dc, spec.Note, l, f)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderResource, err, "encode %s.png", spec.ID)
	}
	return buf.Bytes(), nil
}

// layout carries the canvas geometry in device pixels.
type layout struct {
	s          float64 // render scale
	w, h       float64 // full canvas
	left, top  float64 // plot rect
	right, bot float64
}

func newLayout(spec chart.Spec, s float64) layout {
	l := layout{
		s: s,
		w: float64(spec.Width) * s,
		h: float64(spec.Height) * s,
	}
	l.left = 80 * s
	l.right = l.w - 80*s
	l.top = 110 * s
	l.bot = l.h - 70*s
	// Horizontal bars carry category names in the left gutter.
	if spec.Kind == chart.KindHorizontalBar || spec.Kind == chart.KindAnnotatedBar {
		l.left = 210 * s
	}
	return l
}

func (l layout) plotW() float64 { return l.right - l.left }
func (l layout) plotH() float64 { return l.bot - l.top }

// drawChrome paints the background and the title block.
func drawChrome(dc *gg.Context, spec chart.Spec, l layout, f *faces) {
	dc.SetHexColor(chart.ColorBackground)
	dc.Clear()

	dc.SetFontFace(f.title)
	dc.SetHexColor(chart.ColorText)
	dc.DrawStringAnchored(spec.Title, l.w/2, 40*l.s, 0.5, 0.5)

	if spec.Subtitle != "" {
		dc.SetFontFace(f.subtitle)
		dc.SetHexColor(chart.ColorSecondary)
		dc.DrawStringAnchored(spec.Subtitle, l.w/2, 74*l.s, 0.5, 0.5)
	}
}

// drawNoteBox paints a framed annotation in the upper right of the plot.
func drawNoteBox(dc *gg.Context, note string, l layout, f *faces) {
	dc.SetFontFace(f.bold)
	tw, th := dc.MeasureString(note)
	pad := 8 * l.s
	x := l.right - tw - 2*pad
	y := l.top + 6*l.s
	w := tw + 2*pad
	h := th + 2*pad

	dc.SetHexColor(chart.ColorBackground)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
	dc.SetHexColor(chart.ColorAccentDark)
	dc.SetLineWidth(1.5 * l.s)
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()
	dc.DrawStringAnchored(note, x+w/2, y+h/2, 0.5, 0.35)
}

// drawLegend paints a centered swatch legend under the plot area.
func drawLegend(dc *gg.Context, names, colors []string, l layout, f *faces) {
	dc.SetFontFace(f.label)
	sw := 14 * l.s // swatch side
	gap := 8 * l.s
	itemGap := 28 * l.s

	total := 0.0
	widths := make([]float64, len(names))
	for i, name := range names {
		tw, _ := dc.MeasureString(name)
		widths[i] = sw + gap + tw
		total += widths[i]
	}
	total += itemGap * float64(len(names)-1)

	x := (l.w - total) / 2
	y := l.h - 32*l.s
	for i, name := range names {
		dc.SetHexColor(colors[i])
		dc.DrawRectangle(x, y-sw/2, sw, sw)
		dc.Fill()
		dc.SetHexColor(chart.ColorText)
		dc.DrawStringAnchored(name, x+sw+gap, y, 0, 0.35)
		x += widths[i] + itemGap
	}
}

// drawBenchmarkY paints a dashed horizontal benchmark line at value v on
// a linear or log value axis described by toY.
func drawBenchmarkY(dc *gg.Context, b *chart.Benchmark, toY func(float64) float64, l layout, f *faces) {
	y := toY(b.Value)
	dc.SetHexColor(chart.ColorAccentDark)
	dc.SetLineWidth(1.5 * l.s)
	dc.SetDash(6*l.s, 4*l.s)
	dc.DrawLine(l.left, y, l.right, y)
	dc.Stroke()
	dc.SetDash()
	if b.Label != "" {
		dc.SetFontFace(f.label)
		dc.DrawStringAnchored(b.Label, l.right, y-8*l.s, 1, 0.5)
	}
}

// niceMax pads a data maximum so bars and lines stay inside the plot.
func niceMax(max float64) float64 {
	if max <= 0 {
		return 1
	}
	return max * 1.12
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// logPos maps v onto [0,1] between lo and hi on a log10 scale.
func logPos(v, lo, hi float64) float64 {
	if v <= 0 || lo <= 0 || hi <= lo {
		return 0
	}
	return (math.Log10(v) - math.Log10(lo)) / (math.Log10(hi) - math.Log10(lo))
}
