package static

import (
	"math"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/jefffranzen/capviz/pkg/chart"
)

// drawMultiLine paints one line per series over shared category labels.
// The first of two series reads as the baseline: dashed, no fill. Later
// series draw solid with a soft fill underneath.
func drawMultiLine(dc *gg.Context, spec chart.Spec, l layout, f *faces) {
	max := 0.0
	for _, s := range spec.Series {
		for _, v := range s.Values {
			if v > max {
				max = v
			}
		}
	}
	max = niceMax(max)

	n := len(spec.Labels)
	toX := func(i int) float64 {
		if n == 1 {
			return l.left + l.plotW()/2
		}
		return lerp(l.left, l.right, float64(i)/float64(n-1))
	}
	toY := func(v float64) float64 { return l.bot - l.plotH()*v/max }
	colors := seriesPalette(spec)

	drawValueGrid(dc, spec, max, toY, l, f)
	drawBaseline(dc, l)

	dc.SetFontFace(f.tick)
	dc.SetHexColor(chart.ColorText)
	for i, label := range spec.Labels {
		dc.DrawStringAnchored(label, toX(i), l.bot+16*l.s, 0.5, 0.5)
	}

	for si, s := range spec.Series {
		dashed := si == 0 && len(spec.Series) > 1

		if !dashed {
			// Fill under the line down to the axis
			setHexAlpha(dc, colors[si], 0.15)
			dc.MoveTo(toX(0), l.bot)
			for i, v := range s.Values {
				dc.LineTo(toX(i), toY(v))
			}
			dc.LineTo(toX(len(s.Values)-1), l.bot)
			dc.ClosePath()
			dc.Fill()
		}

		dc.SetHexColor(colors[si])
		if dashed {
			dc.SetLineWidth(2 * l.s)
			dc.SetDash(7*l.s, 5*l.s)
		} else {
			dc.SetLineWidth(3 * l.s)
		}
		for i := 1; i < len(s.Values); i++ {
			dc.DrawLine(toX(i-1), toY(s.Values[i-1]), toX(i), toY(s.Values[i]))
		}
		dc.Stroke()
		dc.SetDash()

		for i, v := range s.Values {
			dc.DrawCircle(toX(i), toY(v), 4*l.s)
			dc.Fill()
		}
	}

	drawLegend(dc, seriesNames(spec), colors, l, f)
}

// drawBubbleScatter paints one sized bubble per point on a log value
// axis. Bubble area tracks the value against the largest point.
func drawBubbleScatter(dc *gg.Context, spec chart.Spec, l layout, f *faces) {
	max := spec.MaxValue()
	minPos := math.Inf(1)
	for _, p := range spec.Points {
		if p.Value > 0 && p.Value < minPos {
			minPos = p.Value
		}
	}
	if math.IsInf(minPos, 1) {
		minPos = 1
	}
	lo := math.Pow(10, math.Floor(math.Log10(minPos)))
	hi := math.Pow(10, math.Ceil(math.Log10(niceMax(max))))
	toY := func(v float64) float64 { return l.bot - l.plotH()*logPos(v, lo, hi) }

	// Decade gridlines
	dc.SetFontFace(f.tick)
	for d := lo; d <= hi; d *= 10 {
		y := toY(d)
		dc.SetHexColor("#E2E8F0")
		dc.SetLineWidth(1 * l.s)
		dc.DrawLine(l.left, y, l.right, y)
		dc.Stroke()
		dc.SetHexColor(chart.ColorSecondary)
		dc.DrawStringAnchored(strconv.FormatFloat(d, 'f', -1, 64), l.left-10*l.s, y, 1, 0.35)
	}
	drawBaseline(dc, l)

	n := float64(len(spec.Points))
	colW := l.plotW() / n
	for i, p := range spec.Points {
		cx := l.left + colW*float64(i) + colW/2
		cy := toY(p.Value)
		r := bubbleRadius(p.Value, max, l.s)

		setHexAlpha(dc, chart.PaletteColor(i), 0.75)
		dc.DrawCircle(cx, cy, r)
		dc.Fill()
		dc.SetHexColor(chart.PaletteColor(i))
		dc.SetLineWidth(2 * l.s)
		dc.DrawCircle(cx, cy, r)
		dc.Stroke()

		dc.SetFontFace(f.bold)
		dc.SetHexColor(chart.ColorText)
		dc.DrawStringAnchored(spec.FormatValue(p.Value), cx, cy-r-10*l.s, 0.5, 0.5)

		dc.SetFontFace(f.tick)
		dc.DrawStringAnchored(chart.TruncateLabel(p.Label, 18), cx, l.bot+16*l.s, 0.5, 0.5)
	}

	if spec.Benchmark != nil {
		drawBenchmarkY(dc, spec.Benchmark, toY, l, f)
	}
}

// drawValueGrid paints horizontal gridlines with tick values for a
// linear axis.
func drawValueGrid(dc *gg.Context, spec chart.Spec, max float64, toY func(float64) float64, l layout, f *faces) {
	const ticks = 5
	dc.SetFontFace(f.tick)
	for i := 1; i <= ticks; i++ {
		v := max * float64(i) / ticks
		y := toY(v)
		dc.SetHexColor("#E2E8F0")
		dc.SetLineWidth(1 * l.s)
		dc.DrawLine(l.left, y, l.right, y)
		dc.Stroke()
		dc.SetHexColor(chart.ColorSecondary)
		dc.DrawStringAnchored(spec.FormatValue(math.Round(v)), l.left-10*l.s, y, 1, 0.35)
	}
}

// bubbleRadius maps a value to a radius between 8 and 30 logical pixels.
func bubbleRadius(v, max, s float64) float64 {
	if max <= 0 {
		return 8 * s
	}
	return (8 + 22*v/max) * s
}

// setHexAlpha sets the fill/stroke color from a #RRGGBB string with an
// explicit alpha.
func setHexAlpha(dc *gg.Context, hex string, alpha float64) {
	if len(hex) != 7 || hex[0] != '#' {
		dc.SetRGBA(0, 0, 0, alpha)
		return
	}
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	dc.SetRGBA(float64(r)/255, float64(g)/255, float64(b)/255, alpha)
}
