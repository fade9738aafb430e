package metrics

import (
	"context"

	"github.com/plantops/gspmon/core/events"
	coremetrics "github.com/plantops/gspmon/core/metrics"
	"github.com/plantops/gspmon/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// each published snapshot. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus *eventbus.Bus[events.SnapshotEvent], sink coremetrics.MetricsSink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				record(sink, ev)
			}
		}
	}()
}

func record(sink coremetrics.MetricsSink, ev events.SnapshotEvent) {
	snap := ev.Snapshot
	_ = sink.RecordSnapshot(coremetrics.SnapshotEvent{
		SnapshotID:     snap.ID,
		Seq:            ev.Seq,
		TotalEnergyMWh: snap.TotalEnergyMWh(),
		MeanEfficiency: snap.MeanEfficiencyPct(),
		BuildDuration:  ev.BuildDuration,
		Time:           ev.Time,
	})
	if rec, ok := sink.(coremetrics.SiteEnergyRecorder); ok {
		samples := make([]coremetrics.SiteEnergyEvent, 0, len(snap.Map))
		for _, p := range snap.Map {
			samples = append(samples, coremetrics.SiteEnergyEvent{
				SiteID:        p.SiteID,
				Status:        p.Status,
				EnergyMWh:     p.EnergyMWh,
				EfficiencyPct: p.EfficiencyPct,
				Time:          ev.Time,
			})
		}
		_ = rec.RecordSiteEnergy(samples)
	}
	if rec, ok := sink.(coremetrics.ConversionRecorder); ok {
		_ = rec.RecordConversion(coremetrics.ConversionEvent{
			CO2ConsumedPct:       snap.Conversion.CO2ConsumedPct,
			ProteinYieldPct:      snap.Conversion.ProteinYieldPct,
			ProcessEfficiencyPct: snap.Conversion.EfficiencyPct,
			Time:                 ev.Time,
		})
	}
}
