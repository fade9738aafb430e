package metrics

import coremetrics "github.com/plantops/gspmon/core/metrics"

// MultiSink fanouts feed emissions to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSnapshot forwards the record to all sinks, returning the first error encountered.
func (m *MultiSink) RecordSnapshot(ev coremetrics.SnapshotEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordSnapshot(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordSiteEnergy forwards per-plant samples.
func (m *MultiSink) RecordSiteEnergy(evs []coremetrics.SiteEnergyEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.SiteEnergyRecorder); ok {
			if err := rec.RecordSiteEnergy(evs); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordConversion forwards conversion panel readings.
func (m *MultiSink) RecordConversion(ev coremetrics.ConversionEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.ConversionRecorder); ok {
			if err := rec.RecordConversion(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
