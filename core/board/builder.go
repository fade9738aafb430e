package board

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/plantops/gspmon/core/model"
	"github.com/plantops/gspmon/core/synth"
)

// Cloud shape names accepted by Params.
const (
	CloudNormal = "normal"
	CloudSphere = "sphere"
)

// Energy trend series start on a fixed date so successive renders line
// up on the same axis.
var trendStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Params configures snapshot assembly.
type Params struct {
	Seed           int64  `json:"seed"`
	CloudSeed      int64  `json:"cloud_seed"`
	CloudShape     string `json:"cloud_shape"`
	CloudPoints    int    `json:"cloud_points"`
	TrendDays      int    `json:"trend_days"`
	ProteinMinutes int    `json:"protein_minutes"`
	CurvePoints    int    `json:"curve_points"`
}

// SetDefaults applies fallback values for optional fields. Seed stays
// zero so unseeded builders vary per render.
func (p *Params) SetDefaults() {
	if p.CloudSeed == 0 {
		p.CloudSeed = 42
	}
	if p.CloudShape == "" {
		p.CloudShape = CloudSphere
	}
	if p.CloudPoints <= 0 {
		p.CloudPoints = 1000
	}
	if p.TrendDays <= 0 {
		p.TrendDays = 30
	}
	if p.ProteinMinutes <= 0 {
		p.ProteinMinutes = 100
	}
	if p.CurvePoints <= 0 {
		p.CurvePoints = 100
	}
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	if p.CloudShape != CloudNormal && p.CloudShape != CloudSphere {
		return fmt.Errorf("unknown cloud shape %s", p.CloudShape)
	}
	if p.CloudPoints <= 0 {
		return fmt.Errorf("cloud_points must be >0")
	}
	if p.TrendDays < 2 {
		return fmt.Errorf("trend_days must be >=2")
	}
	if p.ProteinMinutes <= 0 {
		return fmt.Errorf("protein_minutes must be >0")
	}
	if p.CurvePoints < 2 {
		return fmt.Errorf("curve_points must be >=2")
	}
	return nil
}

// Builder assembles snapshots. Every Build draws from a fresh stream, so
// no chart state carries across renders; with a non-zero seed, builds of
// the same instant are identical regardless of control values.
type Builder struct {
	params Params
}

// NewBuilder creates a Builder after applying defaults and validation.
func NewBuilder(p Params) (*Builder, error) {
	p.SetDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Builder{params: p}, nil
}

// Params returns the effective assembly parameters.
func (b *Builder) Params() Params {
	return b.params
}

// Build assembles a complete snapshot for the given instant. Controls
// are echoed into the result and influence nothing else.
func (b *Builder) Build(at time.Time, controls Controls) Snapshot {
	g := synth.New(b.params.Seed)
	cg := synth.New(b.params.CloudSeed)

	snap := Snapshot{
		ID:       uuid.NewString(),
		Time:     at,
		Controls: controls,
		Headline: HeadlineCards(),
		Pipeline: PipelineStages(),
		Process:  ProcessConditions(),
	}
	snap.Map = b.mapPoints(g)
	snap.EnergyTrend = b.energyTrend(g)
	snap.CarbonCredits = b.carbonCredits(g)
	snap.Efficiency = b.efficiency(g)
	snap.Conversion = b.conversion(g)
	snap.ProteinTrend = b.proteinTrend(g, at)
	snap.ProteinCloud = b.cloud(cg)
	snap.Molecular = synth.Circle(b.params.CurvePoints, 0)
	return snap
}

// MolecularFrame returns one phase-shifted frame of the molecular curve
// for animated views.
func (b *Builder) MolecularFrame(phase float64) []synth.CirclePoint {
	return synth.Circle(b.params.CurvePoints, phase)
}

func (b *Builder) mapPoints(g *synth.Generator) []MapPoint {
	fleet := model.Fleet()
	energy := g.Uniform(len(fleet), 100, 500)
	eff := g.Uniform(len(fleet), 85, 98)
	pts := make([]MapPoint, len(fleet))
	for i, s := range fleet {
		pts[i] = MapPoint{
			SiteID:        s.ID,
			Lat:           s.Lat,
			Lon:           s.Lon,
			Status:        s.Status.String(),
			EnergyMWh:     energy[i],
			EfficiencyPct: eff[i],
		}
	}
	return pts
}

func (b *Builder) energyTrend(g *synth.Generator) []Series {
	days := b.params.TrendDays
	wave := floats.Span(make([]float64, days), 0, 10)
	fleet := model.Fleet()
	series := make([]Series, len(fleet))
	for i, s := range fleet {
		base := g.Uniform(days, 100, 150)
		pts := make([]Point, days)
		for d := range pts {
			pts[d] = Point{
				Timestamp: trendStart.AddDate(0, 0, d),
				Value:     base[d] + float64(i+1)*10 + math.Sin(wave[d])*20,
			}
		}
		series[i] = Series{Label: s.ID, Points: pts}
	}
	return series
}

func (b *Builder) carbonCredits(g *synth.Generator) Series {
	days := b.params.TrendDays
	walk := g.RandomWalk(days, 10, 1000)
	pts := make([]Point, days)
	for d := range pts {
		pts[d] = Point{Timestamp: trendStart.AddDate(0, 0, d), Value: walk[d]}
	}
	return Series{Label: "Carbon Credits", Points: pts}
}

func (b *Builder) efficiency(g *synth.Generator) []SiteMetric {
	fleet := model.Fleet()
	vals := g.Uniform(len(fleet), 85, 98)
	out := make([]SiteMetric, len(fleet))
	for i, s := range fleet {
		out[i] = SiteMetric{SiteID: s.ID, Value: vals[i]}
	}
	return out
}

func (b *Builder) conversion(g *synth.Generator) Conversion {
	return Conversion{
		Gauge:           Gauge{Label: "Conversion Efficiency", Value: ConversionEfficiencyPct},
		ThresholdPct:    ConversionTargetPct,
		CO2ConsumedPct:  g.Uniform(1, 80, 90)[0],
		ProteinYieldPct: g.Uniform(1, 70, 80)[0],
		EfficiencyPct:   g.Uniform(1, 85, 95)[0],
	}
}

func (b *Builder) proteinTrend(g *synth.Generator, at time.Time) Series {
	n := b.params.ProteinMinutes
	walk := g.RandomWalk(n, 0.1, 5)
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{Timestamp: at.Add(time.Duration(i) * time.Minute), Value: walk[i]}
	}
	return Series{Label: "Protein Level", Points: pts}
}

func (b *Builder) cloud(g *synth.Generator) []synth.CloudPoint {
	if b.params.CloudShape == CloudNormal {
		return g.NormalCloud(b.params.CloudPoints)
	}
	return g.SphereCloud(b.params.CloudPoints)
}
