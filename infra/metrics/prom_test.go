package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/plantops/gspmon/core/metrics"
)

func TestPromSink_RecordSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink, ok := sinkIf.(*PromSink)
	if !ok {
		t.Fatalf("expected PromSink")
	}
	ev := coremetrics.SnapshotEvent{
		SnapshotID:     "snap-1",
		Seq:            3,
		TotalEnergyMWh: 812.5,
		MeanEfficiency: 88.25,
		BuildDuration:  20 * time.Millisecond,
		Time:           time.Now(),
	}
	if err := sink.RecordSnapshot(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP fleet_energy_total_mwh Sum of per-plant energy magnitudes in the last snapshot
# TYPE fleet_energy_total_mwh gauge
fleet_energy_total_mwh 812.5
`
	if err := testutil.CollectAndCompare(sink.fleetEnergy, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected fleet energy: %v", err)
	}

	expectedEff := `
# HELP fleet_mean_efficiency_pct Mean plant efficiency in the last snapshot
# TYPE fleet_mean_efficiency_pct gauge
fleet_mean_efficiency_pct 88.25
`
	if err := testutil.CollectAndCompare(sink.fleetEff, strings.NewReader(expectedEff)); err != nil {
		t.Errorf("unexpected fleet efficiency: %v", err)
	}

	if c := testutil.CollectAndCount(sink.buildSeconds); c == 0 {
		t.Errorf("build duration not recorded")
	}
	if got := testutil.ToFloat64(sink.snapshots); got != 1 {
		t.Errorf("expected 1 snapshot, got %v", got)
	}
}

func TestPromSink_RecordSiteEnergy(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink := sinkIf.(*PromSink)
	samples := []coremetrics.SiteEnergyEvent{
		{SiteID: "GSP1", Status: "Operational", EnergyMWh: 120.5, EfficiencyPct: 91.5},
		{SiteID: "GSP4", Status: "Maintenance", EnergyMWh: 95.25, EfficiencyPct: 72.5},
	}
	if err := sink.RecordSiteEnergy(samples); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP site_energy_mwh Per-plant energy magnitude in the last snapshot
# TYPE site_energy_mwh gauge
site_energy_mwh{site_id="GSP1",status="Operational"} 120.5
site_energy_mwh{site_id="GSP4",status="Maintenance"} 95.25
`
	if err := testutil.CollectAndCompare(sink.siteEnergy, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected site energy: %v", err)
	}

	expectedEff := `
# HELP site_efficiency_pct Per-plant efficiency in the last snapshot
# TYPE site_efficiency_pct gauge
site_efficiency_pct{site_id="GSP1"} 91.5
site_efficiency_pct{site_id="GSP4"} 72.5
`
	if err := testutil.CollectAndCompare(sink.siteEfficiency, strings.NewReader(expectedEff)); err != nil {
		t.Errorf("unexpected site efficiency: %v", err)
	}
}

func TestPromSink_RecordConversion(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink := sinkIf.(*PromSink)
	ev := coremetrics.ConversionEvent{
		CO2ConsumedPct:       84.5,
		ProteinYieldPct:      75.25,
		ProcessEfficiencyPct: 90.5,
		Time:                 time.Now(),
	}
	if err := sink.RecordConversion(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP conversion_metric_pct CO2-to-protein panel readings from the last snapshot
# TYPE conversion_metric_pct gauge
conversion_metric_pct{metric="co2_consumed"} 84.5
conversion_metric_pct{metric="process_efficiency"} 90.5
conversion_metric_pct{metric="protein_yield"} 75.25
`
	if err := testutil.CollectAndCompare(sink.conversion, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected conversion metrics: %v", err)
	}
}

func TestPromSink_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create first sink: %v", err)
	}
	second, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create second sink: %v", err)
	}
	ev := coremetrics.SnapshotEvent{TotalEnergyMWh: 10, MeanEfficiency: 90}
	if err := first.RecordSnapshot(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if err := second.RecordSnapshot(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if got := testutil.ToFloat64(second.(*PromSink).snapshots); got != 2 {
		t.Errorf("expected shared counter at 2, got %v", got)
	}
}
