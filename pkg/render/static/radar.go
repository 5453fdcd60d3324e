package static

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/jefffranzen/capviz/pkg/chart"
)

// drawRadar paints a spider chart: five concentric rings, one spoke per
// label, and one translucent polygon per series.
func drawRadar(dc *gg.Context, spec chart.Spec, l layout, f *faces) {
	cx := l.w / 2
	cy := l.top + l.plotH()/2
	radius := math.Min(l.plotW(), l.plotH()) / 2 * 0.78

	axisMax := spec.AxisMax
	if axisMax <= 0 {
		axisMax = niceMax(spec.MaxValue())
	}

	n := len(spec.Labels)
	angleAt := func(i int) float64 {
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}
	pointAt := func(i int, v float64) (float64, float64) {
		r := radius * v / axisMax
		a := angleAt(i)
		return cx + math.Cos(a)*r, cy + math.Sin(a)*r
	}

	// Rings
	const rings = 5
	dc.SetLineWidth(1 * l.s)
	for ring := 1; ring <= rings; ring++ {
		v := axisMax * float64(ring) / rings
		dc.SetHexColor("#E2E8F0")
		x0, y0 := pointAt(0, v)
		dc.MoveTo(x0, y0)
		for i := 1; i < n; i++ {
			dc.LineTo(pointAt(i, v))
		}
		dc.ClosePath()
		dc.Stroke()
	}

	// Spokes and axis labels
	dc.SetFontFace(f.label)
	for i, label := range spec.Labels {
		x, y := pointAt(i, axisMax)
		dc.SetHexColor("#E2E8F0")
		dc.DrawLine(cx, cy, x, y)
		dc.Stroke()

		a := angleAt(i)
		lx := cx + math.Cos(a)*(radius+20*l.s)
		ly := cy + math.Sin(a)*(radius+20*l.s)
		ax := 0.5
		if math.Cos(a) > 0.3 {
			ax = 0
		} else if math.Cos(a) < -0.3 {
			ax = 1
		}
		dc.SetHexColor(chart.ColorText)
		dc.DrawStringAnchored(chart.TruncateLabel(label, 24), lx, ly, ax, 0.35)
	}

	// Series polygons
	colors := seriesPalette(spec)
	for si, s := range spec.Series {
		fillAlpha := 0.25
		if si == 0 && len(spec.Series) > 1 {
			fillAlpha = 0.12
		}

		setHexAlpha(dc, colors[si], fillAlpha)
		tracePolygon(dc, s.Values, pointAt)
		dc.Fill()

		dc.SetHexColor(colors[si])
		dc.SetLineWidth(2 * l.s)
		tracePolygon(dc, s.Values, pointAt)
		dc.Stroke()

		for i, v := range s.Values {
			x, y := pointAt(i, v)
			dc.DrawCircle(x, y, 3.5*l.s)
			dc.Fill()
		}
	}

	drawLegend(dc, seriesNames(spec), colors, l, f)
}

func tracePolygon(dc *gg.Context, values []float64, pointAt func(int, float64) (float64, float64)) {
	for i, v := range values {
		x, y := pointAt(i, v)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}
