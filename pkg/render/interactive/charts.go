package interactive

import (
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jefffranzen/capviz/pkg/chart"
)

func buildHorizontalBar(spec chart.Spec) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(spec, "axis")...)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: spec.YAxisTitle}),
		charts.WithYAxisOpts(opts.YAxis{Name: spec.XAxisTitle}),
	)
	bar.XYReversal()

	bar.SetXAxis(pointLabels(spec)).AddSeries("", barData(spec),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "right",
			Formatter: valueFormatter(spec),
		}),
	)
	if spec.Benchmark != nil {
		// Reversed axes put the value scale on X.
		bar.SetSeriesOptions(
			charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
				Name:  spec.Benchmark.Label,
				XAxis: spec.Benchmark.Value,
			}),
			benchmarkStyle(),
		)
	}
	return bar
}

func buildRankedBar(spec chart.Spec) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(spec, "axis")...)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: spec.XAxisTitle}),
		charts.WithYAxisOpts(opts.YAxis{Name: spec.YAxisTitle}),
	)

	bar.SetXAxis(pointLabels(spec)).AddSeries("", barData(spec),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "top",
			Formatter: valueFormatter(spec),
		}),
	)
	if spec.Benchmark != nil {
		bar.SetSeriesOptions(
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
				Name:  spec.Benchmark.Label,
				YAxis: spec.Benchmark.Value,
			}),
			benchmarkStyle(),
		)
	}
	return bar
}

func buildDonut(spec chart.Spec) *charts.Pie {
	// ECharts carries no free annotation layer here, so the center label
	// rides along on the subtitle block.
	if spec.CenterLabel != "" {
		label := strings.ReplaceAll(spec.CenterLabel, "\n", " ")
		if spec.Subtitle != "" {
			spec.Subtitle += "\n" + label
		} else {
			spec.Subtitle = label
		}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOptions(spec, "item")...)

	items := make([]opts.PieData, len(spec.Points))
	for i, p := range spec.Points {
		items[i] = opts.PieData{Name: p.Label, Value: p.Value}
	}
	pie.AddSeries("", items,
		charts.WithPieChartOpts(opts.PieChart{
			Radius: []string{"45%", "70%"},
		}),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {d}%",
		}),
	)
	return pie
}

func buildGroupedBar(spec chart.Spec) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(spec, "axis")...)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: spec.XAxisTitle}),
		charts.WithYAxisOpts(opts.YAxis{Name: spec.YAxisTitle}),
	)

	bar.SetXAxis(spec.Labels)
	for _, s := range spec.Series {
		items := make([]opts.BarData, len(s.Values))
		for i, v := range s.Values {
			items[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(s.Name, items)
	}
	bar.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "top",
			Formatter: valueFormatter(spec),
		}),
	)
	return bar
}

func buildMultiLine(spec chart.Spec) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions(spec, "axis")...)
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: spec.XAxisTitle}),
		charts.WithYAxisOpts(opts.YAxis{Name: spec.YAxisTitle}),
	)

	line.SetXAxis(spec.Labels)
	for i, s := range spec.Series {
		items := make([]opts.LineData, len(s.Values))
		for j, v := range s.Values {
			items[j] = opts.LineData{Value: v}
		}
		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}),
		}
		// First series is the baseline and draws dashed; the CAP series
		// stays solid with a soft fill underneath.
		if i == 0 && len(spec.Series) > 1 {
			seriesOpts = append(seriesOpts,
				charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Width: 2}),
			)
		} else {
			seriesOpts = append(seriesOpts,
				charts.WithLineStyleOpts(opts.LineStyle{Width: 3}),
				charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.15)}),
			)
		}
		line.AddSeries(s.Name, items, seriesOpts...)
	}
	return line
}

func buildBubbleScatter(spec chart.Spec) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(globalOptions(spec, "item")...)
	scatter.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: spec.XAxisTitle, Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: spec.YAxisTitle, Type: "log"}),
	)

	max := spec.MaxValue()
	items := make([]opts.ScatterData, len(spec.Points))
	for i, p := range spec.Points {
		items[i] = opts.ScatterData{
			Name:       p.Label,
			Value:      p.Value,
			SymbolSize: bubbleSize(p.Value, max),
		}
	}
	scatter.SetXAxis(pointLabels(spec)).AddSeries("", items,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "top",
			Formatter: valueFormatter(spec),
		}),
	)
	if spec.Benchmark != nil {
		scatter.SetSeriesOptions(
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
				Name:  spec.Benchmark.Label,
				YAxis: spec.Benchmark.Value,
			}),
			benchmarkStyle(),
		)
	}
	return scatter
}

func buildRadar(spec chart.Spec) *charts.Radar {
	axisMax := spec.AxisMax
	if axisMax <= 0 {
		axisMax = spec.MaxValue()
	}
	indicators := make([]*opts.Indicator, len(spec.Labels))
	for i, l := range spec.Labels {
		indicators[i] = &opts.Indicator{Name: l, Max: float32(axisMax)}
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(globalOptions(spec, "item")...)
	radar.SetGlobalOptions(
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator:   indicators,
			SplitNumber: 5,
		}),
	)

	for i, s := range spec.Series {
		values := append([]float64(nil), s.Values...)
		seriesOpts := []charts.SeriesOpts{
			charts.WithLineStyleOpts(opts.LineStyle{Width: 2}),
		}
		if i != 0 || len(spec.Series) == 1 {
			seriesOpts = append(seriesOpts,
				charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.25)}),
			)
		}
		radar.AddSeries(s.Name, []opts.RadarData{{Name: s.Name, Value: values}}, seriesOpts...)
	}
	return radar
}

// bubbleSize maps a point value to a symbol diameter between 15 and 60px,
// scaled linearly against the largest value in the spec.
func bubbleSize(v, max float64) int {
	if max <= 0 {
		return 15
	}
	return 15 + int(45*v/max)
}

func benchmarkStyle() charts.SeriesOpts {
	return charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
		Symbol: []string{"none", "none"},
		LineStyle: &opts.LineStyle{
			Type:  "dashed",
			Color: chart.ColorAccentDark,
		},
	})
}

func pointLabels(spec chart.Spec) []string {
	labels := make([]string, len(spec.Points))
	for i, p := range spec.Points {
		labels[i] = p.Label
	}
	return labels
}

// barData colors each bar from the brand cycle so single-series bar
// charts still read as branded rather than monochrome.
func barData(spec chart.Spec) []opts.BarData {
	items := make([]opts.BarData, len(spec.Points))
	for i, p := range spec.Points {
		items[i] = opts.BarData{
			Value:     p.Value,
			ItemStyle: &opts.ItemStyle{Color: chart.PaletteColor(i)},
		}
	}
	return items
}
