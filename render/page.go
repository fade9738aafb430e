// Package render turns dashboard snapshots into a self-contained HTML
// page built from go-echarts charts.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/plantops/gspmon/core/board"
)

// Page assembles the chart page for one snapshot.
func Page(snap board.Snapshot, th Theme) *components.Page {
	page := components.NewPage()
	page.PageTitle = th.PageTitle
	page.AddCharts(
		fleetMap(snap.Map, th),
		energyTrend(snap.EnergyTrend),
		carbonCredits(snap.CarbonCredits, th),
		efficiencyBars(snap.Efficiency, th),
	)
	for i, g := range snap.Pipeline {
		page.AddCharts(stageGauge(g, th.StageColors[i%len(th.StageColors)]))
	}
	page.AddCharts(
		conversionGauge(snap.Conversion),
		proteinTrend(snap.ProteinTrend, th),
		proteinCloud(snap.ProteinCloud, th),
		molecularStructure(snap.Molecular, th),
	)
	return page
}

// WriteHTML renders the full dashboard: the chart page with headline
// cards, the sidebar echo and process readouts injected above the charts.
func WriteHTML(w io.Writer, snap board.Snapshot, th Theme) error {
	var buf strings.Builder
	if err := Page(snap, th).Render(&buf); err != nil {
		return err
	}
	html := buf.String()
	html = strings.Replace(html, "<body>", "<body>\n"+staticHTML(snap, th), 1)
	html = strings.Replace(html, "</head>", customCSS+"</head>", 1)
	_, err := io.WriteString(w, html)
	return err
}

// staticHTML builds the non-chart sections: headline cards, the echoed
// sidebar state and the process condition table.
func staticHTML(snap board.Snapshot, th Theme) string {
	var b strings.Builder
	b.WriteString(`<div class="board-static">`)
	fmt.Fprintf(&b, `<div class="board-header"><h1>%s</h1><span class="board-meta">snapshot %s · %s</span></div>`,
		th.PageTitle, snap.ID, snap.Time.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, `<div class="board-controls">Plant: <strong>%s</strong> · Range: <strong>%s</strong> · CO2 alert threshold: <strong>%.0f ppm</strong></div>`,
		snap.Controls.Site, snap.Controls.TimeRange, snap.Controls.CO2Threshold)

	b.WriteString(`<div class="card-row">`)
	for _, c := range snap.Headline {
		cls := "delta-up"
		if strings.HasPrefix(c.Delta, "-") {
			cls = "delta-down"
		}
		fmt.Fprintf(&b, `<div class="card"><div class="card-title">%s</div><div class="card-value">%s</div><div class="card-delta %s">%s</div></div>`,
			c.Title, c.Value, cls, c.Delta)
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="card-row">`)
	for _, c := range snap.Process {
		fmt.Fprintf(&b, `<div class="card"><div class="card-title">%s</div><div class="card-value">%s</div><div class="card-delta delta-up">%s</div></div>`,
			c.Label, c.Value, c.Status)
	}
	b.WriteString(`</div>`)

	conv := snap.Conversion
	fmt.Fprintf(&b, `<div class="board-controls">CO2 Consumed: <strong>%.1f%%</strong> · Protein Yield: <strong>%.1f%%</strong> · Process Efficiency: <strong>%.1f%%</strong></div>`,
		conv.CO2ConsumedPct, conv.ProteinYieldPct, conv.EfficiencyPct)

	b.WriteString(`</div>`)
	return b.String()
}

const customCSS = `
    <style>
        body {
            max-width: 1280px;
            margin: 0 auto;
            padding: 20px;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif;
        }
        .board-header { border-bottom: 2px solid #00acc1; margin-bottom: 16px; }
        .board-meta { color: #777; font-size: 12px; }
        .board-controls { margin: 12px 0; color: #444; }
        .card-row { display: flex; gap: 16px; margin: 16px 0; }
        .card {
            flex: 1;
            border: 1px solid #e0e0e0;
            border-radius: 8px;
            padding: 14px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.08);
        }
        .card-title { font-size: 13px; color: #666; }
        .card-value { font-size: 22px; font-weight: 600; margin: 6px 0; }
        .card-delta { font-size: 12px; }
        .delta-up { color: #2e7d32; }
        .delta-down { color: #c62828; }
    </style>
`
