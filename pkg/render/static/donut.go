package static

import (
	"math"
	"strings"

	"github.com/fogleman/gg"

	"github.com/jefffranzen/capviz/pkg/chart"
)

// drawDonut paints a donut chart with outside labels carrying each
// slice's share and an optional multi-line center label.
func drawDonut(dc *gg.Context, spec chart.Spec, l layout, f *faces) {
	cx := l.w / 2
	cy := l.top + l.plotH()/2
	outer := math.Min(l.plotW(), l.plotH()) / 2 * 0.82
	inner := outer * 0.55

	total := 0.0
	for _, p := range spec.Points {
		total += p.Value
	}
	if total <= 0 {
		return
	}

	angle := -math.Pi / 2
	for i, p := range spec.Points {
		sweep := 2 * math.Pi * p.Value / total

		dc.SetHexColor(chart.PaletteColor(i))
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, outer, angle, angle+sweep)
		dc.ClosePath()
		dc.Fill()

		mid := angle + sweep/2
		lx := cx + math.Cos(mid)*(outer+16*l.s)
		ly := cy + math.Sin(mid)*(outer+16*l.s)
		ax := 0.0
		if math.Cos(mid) < 0 {
			ax = 1.0
		}
		dc.SetFontFace(f.label)
		dc.SetHexColor(chart.ColorText)
		label := chart.TruncateLabel(p.Label, 26) + ": " + spec.FormatShare(p.Value)
		dc.DrawStringAnchored(label, lx, ly, ax, 0.35)

		angle += sweep
	}

	// Punch the hole
	dc.SetHexColor(chart.ColorBackground)
	dc.DrawCircle(cx, cy, inner)
	dc.Fill()

	if spec.CenterLabel != "" {
		lines := strings.Split(spec.CenterLabel, "\n")
		lineH := 26 * l.s
		y := cy - lineH*float64(len(lines)-1)/2
		for i, line := range lines {
			if i == 0 {
				dc.SetFontFace(f.center)
				dc.SetHexColor(chart.ColorPrimary)
			} else {
				dc.SetFontFace(f.label)
				dc.SetHexColor(chart.ColorText)
			}
			dc.DrawStringAnchored(line, cx, y, 0.5, 0.35)
			y += lineH
		}
	}
}
