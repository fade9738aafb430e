package metrics

import (
	coremetrics "github.com/plantops/gspmon/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records feed emissions in Prometheus metrics.
type PromSink struct {
	snapshots      prometheus.Counter
	buildSeconds   prometheus.Histogram
	fleetEnergy    prometheus.Gauge
	fleetEff       prometheus.Gauge
	siteEnergy     *prometheus.GaugeVec
	siteEfficiency *prometheus.GaugeVec
	conversion     *prometheus.GaugeVec
}

// NewPromSink registers feed metrics on the default Prometheus registerer.
// The Prometheus server is started separately.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{}
	var err error
	s.snapshots, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "board_snapshots_total",
		Help: "Total number of snapshots assembled by the feed",
	}))
	if err != nil {
		return nil, err
	}
	s.buildSeconds, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "board_snapshot_build_seconds",
		Help:    "Time to assemble one snapshot",
		Buckets: prometheus.DefBuckets,
	}))
	if err != nil {
		return nil, err
	}
	s.fleetEnergy, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_energy_total_mwh",
		Help: "Sum of per-plant energy magnitudes in the last snapshot",
	}))
	if err != nil {
		return nil, err
	}
	s.fleetEff, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_mean_efficiency_pct",
		Help: "Mean plant efficiency in the last snapshot",
	}))
	if err != nil {
		return nil, err
	}
	s.siteEnergy, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "site_energy_mwh",
		Help: "Per-plant energy magnitude in the last snapshot",
	}, []string{"site_id", "status"}))
	if err != nil {
		return nil, err
	}
	s.siteEfficiency, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "site_efficiency_pct",
		Help: "Per-plant efficiency in the last snapshot",
	}, []string{"site_id"}))
	if err != nil {
		return nil, err
	}
	s.conversion, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "conversion_metric_pct",
		Help: "CO2-to-protein panel readings from the last snapshot",
	}, []string{"metric"}))
	if err != nil {
		return nil, err
	}
	return s, nil
}

// register tolerates duplicate registration so repeated sink construction
// reuses the existing collectors.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(C), nil
		}
		var zero C
		return zero, err
	}
	return c, nil
}

// RecordSnapshot updates the snapshot counters and fleet gauges.
func (s *PromSink) RecordSnapshot(ev coremetrics.SnapshotEvent) error {
	s.snapshots.Inc()
	s.buildSeconds.Observe(ev.BuildDuration.Seconds())
	s.fleetEnergy.Set(ev.TotalEnergyMWh)
	s.fleetEff.Set(ev.MeanEfficiency)
	return nil
}

// RecordSiteEnergy updates the per-plant gauges.
func (s *PromSink) RecordSiteEnergy(evs []coremetrics.SiteEnergyEvent) error {
	for _, ev := range evs {
		s.siteEnergy.WithLabelValues(ev.SiteID, ev.Status).Set(ev.EnergyMWh)
		s.siteEfficiency.WithLabelValues(ev.SiteID).Set(ev.EfficiencyPct)
	}
	return nil
}

// RecordConversion updates the conversion panel gauges.
func (s *PromSink) RecordConversion(ev coremetrics.ConversionEvent) error {
	s.conversion.WithLabelValues("co2_consumed").Set(ev.CO2ConsumedPct)
	s.conversion.WithLabelValues("protein_yield").Set(ev.ProteinYieldPct)
	s.conversion.WithLabelValues("process_efficiency").Set(ev.ProcessEfficiencyPct)
	return nil
}
