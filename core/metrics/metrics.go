package metrics

import "time"

// SnapshotEvent summarizes one assembled dashboard snapshot.
type SnapshotEvent struct {
	SnapshotID     string
	Seq            int
	TotalEnergyMWh float64
	MeanEfficiency float64
	BuildDuration  time.Duration
	Time           time.Time
}

// MetricsSink records feed emissions for observability purposes.
type MetricsSink interface {
	RecordSnapshot(ev SnapshotEvent) error
}

// SiteEnergyEvent is one plant's sample from the fleet map.
type SiteEnergyEvent struct {
	SiteID        string
	Status        string
	EnergyMWh     float64
	EfficiencyPct float64
	Time          time.Time
}

// SiteEnergyRecorder records per-plant samples.
type SiteEnergyRecorder interface {
	RecordSiteEnergy(evs []SiteEnergyEvent) error
}

// ConversionEvent captures the CO2-to-protein panel readings.
type ConversionEvent struct {
	CO2ConsumedPct       float64
	ProteinYieldPct      float64
	ProcessEfficiencyPct float64
	Time                 time.Time
}

// ConversionRecorder records conversion panel readings.
type ConversionRecorder interface {
	RecordConversion(ev ConversionEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSnapshot(SnapshotEvent) error       { return nil }
func (NopSink) RecordSiteEnergy([]SiteEnergyEvent) error { return nil }
func (NopSink) RecordConversion(ConversionEvent) error   { return nil }
