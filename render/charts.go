package render

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/plantops/gspmon/core/board"
	"github.com/plantops/gspmon/core/synth"
)

const (
	chartWidth  = "1200px"
	chartHeight = "400px"
)

func fleetMap(points []board.MapPoint, th Theme) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Plant Energy Map",
			Subtitle: "Gas separation plants, Rayong industrial cluster",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Longitude", Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Latitude", Type: "value", Scale: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: "420px"}),
	)
	byStatus := make(map[string][]opts.ScatterData)
	var order []string
	for _, p := range points {
		if _, ok := byStatus[p.Status]; !ok {
			order = append(order, p.Status)
		}
		byStatus[p.Status] = append(byStatus[p.Status], opts.ScatterData{
			Name:       p.SiteID,
			Value:      []interface{}{p.Lon, p.Lat},
			SymbolSize: int(p.EnergyMWh/20) + 5,
		})
	}
	for _, status := range order {
		sc.AddSeries(status, byStatus[status],
			charts.WithItemStyleOpts(opts.ItemStyle{Color: th.StatusColors[status]}))
	}
	return sc
}

func energyTrend(series []board.Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Energy Consumption Trends"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "MWh", Type: "value"}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
	)
	if len(series) == 0 {
		return line
	}
	labels := make([]string, len(series[0].Points))
	for i, p := range series[0].Points {
		labels[i] = p.Timestamp.Format("Jan 02")
	}
	line.SetXAxis(labels)
	for _, s := range series {
		data := make([]opts.LineData, len(s.Points))
		for i, p := range s.Points {
			data[i] = opts.LineData{Value: p.Value}
		}
		line.AddSeries(s.Label, data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	}
	return line
}

func carbonCredits(s board.Series, th Theme) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Carbon Credits Balance"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Credits", Type: "value", Scale: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
	)
	labels := make([]string, len(s.Points))
	data := make([]opts.LineData, len(s.Points))
	for i, p := range s.Points {
		labels[i] = p.Timestamp.Format("Jan 02")
		data[i] = opts.LineData{Value: p.Value}
	}
	line.SetXAxis(labels)
	line.AddSeries(s.Label, data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: th.AccentColor}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.2)}),
	)
	return line
}

func efficiencyBars(metrics []board.SiteMetric, th Theme) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Plant Efficiency"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "%", Type: "value", Min: 80, Max: 100}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
	)
	labels := make([]string, len(metrics))
	data := make([]opts.BarData, len(metrics))
	for i, m := range metrics {
		labels[i] = m.SiteID
		data[i] = opts.BarData{Value: m.Value}
	}
	bar.SetXAxis(labels)
	bar.AddSeries("Efficiency", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: th.AccentColor}))
	return bar
}

func stageGauge(g board.Gauge, color string) *charts.Gauge {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: g.Label}),
		charts.WithInitializationOpts(opts.Initialization{Width: "380px", Height: "300px"}),
	)
	gauge.AddSeries(g.Label, []opts.GaugeData{{Name: "%", Value: g.Value}},
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}))
	return gauge
}

func conversionGauge(c board.Conversion) *charts.Gauge {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    c.Gauge.Label,
			Subtitle: fmt.Sprintf("Target %.0f%%", c.ThresholdPct),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "500px", Height: "400px"}),
	)
	gauge.AddSeries(c.Gauge.Label, []opts.GaugeData{{Name: "%", Value: c.Gauge.Value}})
	return gauge
}

func proteinTrend(s board.Series, th Theme) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Protein Production Level"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "g/L", Type: "value", Scale: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
	)
	labels := make([]string, len(s.Points))
	data := make([]opts.LineData, len(s.Points))
	for i, p := range s.Points {
		labels[i] = p.Timestamp.Format("15:04")
		data[i] = opts.LineData{Value: p.Value}
	}
	line.SetXAxis(labels)
	line.AddSeries(s.Label, data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: th.AccentColor}))
	return line
}

func proteinCloud(points []synth.CloudPoint, th Theme) *charts.Scatter3D {
	sc := charts.NewScatter3D()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Protein Structure Distribution"}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: "500px"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: th.CloudColors},
		}),
	)
	data := make([]opts.Chart3DData, len(points))
	for i, p := range points {
		data[i] = opts.Chart3DData{Value: []interface{}{p.X, p.Y, p.Z, p.Color}}
	}
	sc.AddSeries("Protein", data)
	return sc
}

func molecularStructure(points []synth.CirclePoint, th Theme) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Molecular Structure"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: -1.5, Max: 1.5}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: -1.5, Max: 1.5}),
		charts.WithInitializationOpts(opts.Initialization{Width: "500px", Height: "500px"}),
	)
	data := make([]opts.ScatterData, len(points))
	for i, p := range points {
		data[i] = opts.ScatterData{
			Value:      []interface{}{p.X, p.Y},
			SymbolSize: int(p.Size) + 2,
		}
	}
	sc.AddSeries("Bonds", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: th.StageColors[1]}))
	return sc
}
