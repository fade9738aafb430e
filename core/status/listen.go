package status

import (
	"context"

	"github.com/plantops/gspmon/core/events"
	"github.com/plantops/gspmon/internal/eventbus"
)

// Listen subscribes to snapshot events and keeps the store current. It
// returns immediately and stops when the context is canceled.
func Listen(ctx context.Context, bus *eventbus.Bus[events.SnapshotEvent], store Store) {
	if bus == nil || store == nil {
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
				Apply(store, ev)
			}
		}
	}()
}

// Apply records one snapshot event into the store.
func Apply(store Store, ev events.SnapshotEvent) {
	snap := ev.Snapshot
	store.RecordFeed(FeedStatus{
		SnapshotID:     snap.ID,
		Seq:            ev.Seq,
		TotalEnergyMWh: snap.TotalEnergyMWh(),
		MeanEfficiency: snap.MeanEfficiencyPct(),
		BuildMillis:    ev.BuildDuration.Seconds() * 1000,
		Time:           ev.Time,
	})
	samples := make([]SiteSample, len(snap.Map))
	for i, p := range snap.Map {
		samples[i] = SiteSample{
			SiteID:        p.SiteID,
			Status:        p.Status,
			EnergyMWh:     p.EnergyMWh,
			EfficiencyPct: p.EfficiencyPct,
			Time:          ev.Time,
		}
	}
	store.RecordSites(samples)
}
