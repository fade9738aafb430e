// Package board assembles dashboard snapshots: every chart payload for
// one render pass, built from synthetic series and fixed mock figures.
package board

import (
	"fmt"
	"time"

	"github.com/plantops/gspmon/core/model"
	"github.com/plantops/gspmon/core/synth"
)

// Sidebar vocabulary.
const (
	AllSites = "All Plants"

	Range24H = "24H"
	Range7D  = "7D"
	Range30D = "30D"
	RangeYTD = "YTD"
)

// CO2 alert threshold bounds in ppm.
const (
	ThresholdMin = 0
	ThresholdMax = 1000
)

// Controls mirrors the dashboard sidebar: plant selector, time range and
// CO2 alert threshold. The values are display state only: they are
// validated and echoed back in every Snapshot, and no generated series
// depends on them.
type Controls struct {
	Site         string  `json:"site"`
	TimeRange    string  `json:"time_range"`
	CO2Threshold float64 `json:"co2_threshold"`
}

// DefaultControls returns the sidebar defaults.
func DefaultControls() Controls {
	return Controls{Site: AllSites, TimeRange: Range7D, CO2Threshold: 500}
}

// SiteOptions returns the plant selector vocabulary.
func SiteOptions() []string {
	opts := []string{AllSites}
	for _, s := range model.Fleet() {
		opts = append(opts, s.ID)
	}
	return opts
}

// TimeRanges returns the selectable ranges in display order.
func TimeRanges() []string {
	return []string{Range24H, Range7D, Range30D, RangeYTD}
}

// Validate checks the control values against the sidebar vocabulary.
func (c Controls) Validate() error {
	ok := false
	for _, o := range SiteOptions() {
		if c.Site == o {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("unknown site %q", c.Site)
	}
	ok = false
	for _, r := range TimeRanges() {
		if c.TimeRange == r {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("unknown time range %q", c.TimeRange)
	}
	if c.CO2Threshold < ThresholdMin || c.CO2Threshold > ThresholdMax {
		return fmt.Errorf("co2 threshold %f outside [%d,%d]", c.CO2Threshold, ThresholdMin, ThresholdMax)
	}
	return nil
}

// MetricCard is one headline figure with its period-over-period delta.
type MetricCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Delta string `json:"delta"`
}

// MapPoint is one plant on the fleet map. EnergyMWh doubles as the
// bubble magnitude.
type MapPoint struct {
	SiteID        string  `json:"id"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Status        string  `json:"status"`
	EnergyMWh     float64 `json:"magnitude"`
	EfficiencyPct float64 `json:"efficiency_pct"`
}

// Point is a single time series sample.
type Point struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// Series is a labelled time series.
type Series struct {
	Label  string  `json:"label"`
	Points []Point `json:"points"`
}

// SiteMetric is one per-plant scalar, used by the efficiency bars.
type SiteMetric struct {
	SiteID string  `json:"site_id"`
	Value  float64 `json:"value"`
}

// Gauge is a dial reading in [0,100] with its display label.
type Gauge struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Conversion groups the CO2-to-protein panel: the efficiency dial with
// its alert threshold and three sampled percentage cards.
type Conversion struct {
	Gauge           Gauge   `json:"gauge"`
	ThresholdPct    float64 `json:"threshold_pct"`
	CO2ConsumedPct  float64 `json:"co2_consumed_pct"`
	ProteinYieldPct float64 `json:"protein_yield_pct"`
	EfficiencyPct   float64 `json:"process_efficiency_pct"`
}

// Condition is one process parameter readout.
type Condition struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Status string `json:"status"`
}

// Snapshot is one complete set of dashboard payloads, regenerated from
// scratch on every build. Nothing is cached between builds.
type Snapshot struct {
	ID            string              `json:"id"`
	Time          time.Time           `json:"time"`
	Controls      Controls            `json:"controls"`
	Headline      []MetricCard        `json:"headline"`
	Map           []MapPoint          `json:"map"`
	EnergyTrend   []Series            `json:"energy_trend"`
	CarbonCredits Series              `json:"carbon_credits"`
	Efficiency    []SiteMetric        `json:"efficiency"`
	Pipeline      []Gauge             `json:"pipeline"`
	Conversion    Conversion          `json:"conversion"`
	ProteinTrend  Series              `json:"protein_trend"`
	ProteinCloud  []synth.CloudPoint  `json:"protein_cloud"`
	Molecular     []synth.CirclePoint `json:"molecular"`
	Process       []Condition         `json:"process"`
}

// TotalEnergyMWh sums the per-plant map magnitudes.
func (s Snapshot) TotalEnergyMWh() float64 {
	var sum float64
	for _, p := range s.Map {
		sum += p.EnergyMWh
	}
	return sum
}

// MeanEfficiencyPct averages the per-plant efficiency bars.
func (s Snapshot) MeanEfficiencyPct() float64 {
	if len(s.Efficiency) == 0 {
		return 0
	}
	var sum float64
	for _, m := range s.Efficiency {
		sum += m.Value
	}
	return sum / float64(len(s.Efficiency))
}

// Conversion dial figures.
const (
	ConversionEfficiencyPct = 84.3
	ConversionTargetPct     = 85
)

// HeadlineCards returns the four summary cards. Figures are fixed mock
// values.
func HeadlineCards() []MetricCard {
	return []MetricCard{
		{Title: "Total Energy Consumption", Value: "1,234 MWh", Delta: "-2.5%"},
		{Title: "Carbon Emissions", Value: "456 tons", Delta: "-3.2%"},
		{Title: "Carbon Credits", Value: "789 units", Delta: "+5.1%"},
		{Title: "Efficiency Score", Value: "94.5%", Delta: "+1.2%"},
	}
}

// PipelineStages returns the four conversion stage dials.
func PipelineStages() []Gauge {
	return []Gauge{
		{Label: "CO2 Capture", Value: 85},
		{Label: "Bacterial Processing", Value: 92},
		{Label: "Protein Synthesis", Value: 78},
		{Label: "Final Product", Value: 95},
	}
}

// ProcessConditions returns the fixed process parameter readouts.
func ProcessConditions() []Condition {
	return []Condition{
		{Label: "Temperature", Value: "37.2°C", Status: "Optimal"},
		{Label: "pH Level", Value: "7.2", Status: "Optimal"},
		{Label: "Pressure", Value: "1.2 atm", Status: "Optimal"},
		{Label: "Flow Rate", Value: "2.5 L/min", Status: "Optimal"},
	}
}
