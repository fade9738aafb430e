package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/plantops/gspmon/core/metrics"
	"github.com/plantops/gspmon/infra/logger"
)

// InfluxSink writes feed emissions to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// Close shuts down the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

// RecordSnapshot writes the snapshot summary as a line protocol point.
func (s *InfluxSink) RecordSnapshot(ev coremetrics.SnapshotEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("board_snapshot").
		AddTag("snapshot_id", ev.SnapshotID).
		AddTag("component", "feed").
		AddField("seq", ev.Seq).
		AddField("total_energy_mwh", round3(ev.TotalEnergyMWh)).
		AddField("mean_efficiency_pct", round3(ev.MeanEfficiency)).
		AddField("build_ms", round3(ev.BuildDuration.Seconds()*1000)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordSiteEnergy writes one point per plant sample.
func (s *InfluxSink) RecordSiteEnergy(evs []coremetrics.SiteEnergyEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, ev := range evs {
		p := write.NewPointWithMeasurement("site_energy").
			AddTag("site_id", ev.SiteID).
			AddTag("status", ev.Status).
			AddTag("component", "feed").
			AddField("energy_mwh", round3(ev.EnergyMWh)).
			AddField("efficiency_pct", round3(ev.EfficiencyPct)).
			SetTime(ev.Time)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordConversion writes the conversion panel readings.
func (s *InfluxSink) RecordConversion(ev coremetrics.ConversionEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("conversion_panel").
		AddTag("component", "feed").
		AddField("co2_consumed_pct", round3(ev.CO2ConsumedPct)).
		AddField("protein_yield_pct", round3(ev.ProteinYieldPct)).
		AddField("process_efficiency_pct", round3(ev.ProcessEfficiencyPct)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
