package static

import (
	"github.com/fogleman/gg"

	"github.com/jefffranzen/capviz/pkg/chart"
)

// drawHorizontalBars paints one bar per point, top to bottom, with the
// category name in the left gutter and the value at the bar tip.
func drawHorizontalBars(dc *gg.Context, spec chart.Spec, l layout, f *faces) {
	max := niceMax(spec.MaxValue())
	n := float64(len(spec.Points))
	rowH := l.plotH() / n
	barH := rowH * 0.55

	for i, p := range spec.Points {
		y := l.top + rowH*float64(i) + rowH/2
		w := l.plotW() * p.Value / max

		dc.SetHexColor(chart.PaletteColor(i))
		dc.DrawRectangle(l.left, y-barH/2, w, barH)
		dc.Fill()

		dc.SetFontFace(f.label)
		dc.SetHexColor(chart.ColorText)
		dc.DrawStringAnchored(chart.TruncateLabel(p.Label, 30), l.left-12*l.s, y, 1, 0.35)

		dc.SetFontFace(f.bold)
		dc.DrawStringAnchored(spec.FormatValue(p.Value), l.left+w+10*l.s, y, 0, 0.35)
	}

	if b := spec.Benchmark; b != nil {
		x := l.left + l.plotW()*b.Value/max
		dc.SetHexColor(chart.ColorAccentDark)
		dc.SetLineWidth(1.5 * l.s)
		dc.SetDash(6*l.s, 4*l.s)
		dc.DrawLine(x, l.top, x, l.bot)
		dc.Stroke()
		dc.SetDash()
		if b.Label != "" {
			dc.SetFontFace(f.label)
			dc.DrawStringAnchored(b.Label, x, l.top-10*l.s, 0.5, 0.5)
		}
	}
}

// drawRankedBars paints vertical columns in spec order with values on top.
func drawRankedBars(dc *gg.Context, spec chart.Spec, l layout, f *faces) {
	max := niceMax(spec.MaxValue())
	n := float64(len(spec.Points))
	colW := l.plotW() / n
	barW := colW * 0.6
	toY := func(v float64) float64 { return l.bot - l.plotH()*v/max }

	drawBaseline(dc, l)

	for i, p := range spec.Points {
		cx := l.left + colW*float64(i) + colW/2
		y := toY(p.Value)

		dc.SetHexColor(chart.PaletteColor(i))
		dc.DrawRectangle(cx-barW/2, y, barW, l.bot-y)
		dc.Fill()

		dc.SetFontFace(f.bold)
		dc.SetHexColor(chart.ColorText)
		dc.DrawStringAnchored(spec.FormatValue(p.Value), cx, y-10*l.s, 0.5, 0.5)

		dc.SetFontFace(f.tick)
		dc.DrawStringAnchored(chart.TruncateLabel(p.Label, 18), cx, l.bot+16*l.s, 0.5, 0.5)
	}

	if spec.Benchmark != nil {
		drawBenchmarkY(dc, spec.Benchmark, toY, l, f)
	}
}

// drawGroupedBars paints side-by-side bars per category with a legend of
// series names.
func drawGroupedBars(dc *gg.Context, spec chart.Spec, l layout, f *faces) {
	max := 0.0
	for _, s := range spec.Series {
		for _, v := range s.Values {
			if v > max {
				max = v
			}
		}
	}
	max = niceMax(max)

	groups := float64(len(spec.Labels))
	series := float64(len(spec.Series))
	groupW := l.plotW() / groups
	barW := groupW * 0.7 / series
	colors := seriesPalette(spec)

	drawBaseline(dc, l)

	for gi, label := range spec.Labels {
		gx := l.left + groupW*float64(gi)
		start := gx + (groupW-barW*series)/2
		for si, s := range spec.Series {
			v := s.Values[gi]
			x := start + barW*float64(si)
			y := l.bot - l.plotH()*v/max

			dc.SetHexColor(colors[si])
			dc.DrawRectangle(x, y, barW*0.92, l.bot-y)
			dc.Fill()

			dc.SetFontFace(f.tick)
			dc.SetHexColor(chart.ColorText)
			dc.DrawStringAnchored(spec.FormatValue(v), x+barW*0.46, y-8*l.s, 0.5, 0.5)
		}

		dc.SetFontFace(f.tick)
		dc.SetHexColor(chart.ColorText)
		dc.DrawStringAnchored(chart.TruncateLabel(label, 20), gx+groupW/2, l.bot+16*l.s, 0.5, 0.5)
	}

	drawLegend(dc, seriesNames(spec), colors, l, f)
}

// drawBaseline paints the x axis line at the bottom of the plot.
func drawBaseline(dc *gg.Context, l layout) {
	dc.SetHexColor(chart.ColorSecondary)
	dc.SetLineWidth(1 * l.s)
	dc.DrawLine(l.left, l.bot, l.right, l.bot)
	dc.Stroke()
}

// seriesPalette picks colors by series. Two-series charts follow the
// baseline-vs-CAP convention of secondary first, brand red second.
func seriesPalette(spec chart.Spec) []string {
	if len(spec.Series) == 2 {
		return []string{chart.ColorSecondary, chart.ColorPrimary}
	}
	colors := make([]string, len(spec.Series))
	for i := range spec.Series {
		colors[i] = chart.PaletteColor(i)
	}
	return colors
}

func seriesNames(spec chart.Spec) []string {
	names := make([]string, len(spec.Series))
	for i, s := range spec.Series {
		names[i] = s.Name
	}
	return names
}
