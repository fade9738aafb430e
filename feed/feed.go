package feed

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/plantops/gspmon/config"
	"github.com/plantops/gspmon/core/board"
	coreevents "github.com/plantops/gspmon/core/events"
	"github.com/plantops/gspmon/infra/logger"
	"github.com/plantops/gspmon/internal/eventbus"
)

// Feed periodically assembles dashboard snapshots and publishes them on the
// event bus.
type Feed struct {
	cfg     config.FeedConfig
	builder *board.Builder
	bus     *eventbus.Bus[coreevents.SnapshotEvent]
	log     logger.Logger
	seq     int
}

var (
	snapshotsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_snapshots_total",
		Help: "Total snapshots published by the feed",
	})
	energySum = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_energy_mwh_sum",
		Help: "Sum of fleet energy readings across snapshots",
	})
	lastEmit = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "feed_last_emit_timestamp_seconds",
		Help: "Last emission time",
	})
	buildHist = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "feed_build_seconds",
		Help:    "Time to assemble one snapshot",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(snapshotsTotal, energySum, lastEmit, buildHist)
}

// New creates a new Feed.
func New(cfg config.FeedConfig, builder *board.Builder, bus *eventbus.Bus[coreevents.SnapshotEvent]) *Feed {
	return &Feed{
		cfg:     cfg,
		builder: builder,
		bus:     bus,
		log:     logger.New("feed"),
	}
}

// Start publishes snapshots at the configured interval until context
// cancellation. The first snapshot is published immediately.
func (f *Feed) Start(ctx context.Context) {
	interval := time.Duration(f.cfg.IntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	f.emit(f.Generate(time.Now()))
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			f.emit(f.Generate(now))
		}
	}
}

// Generate assembles the next snapshot event at the given time.
func (f *Feed) Generate(now time.Time) coreevents.SnapshotEvent {
	f.seq++
	start := time.Now()
	snap := f.builder.Build(now, board.DefaultControls())
	return coreevents.SnapshotEvent{
		Seq:           f.seq,
		Snapshot:      snap,
		BuildDuration: time.Since(start),
		Time:          now,
	}
}

func (f *Feed) emit(ev coreevents.SnapshotEvent) {
	f.log.Infof("snapshot %d energy=%.1f efficiency=%.1f", ev.Seq, ev.Snapshot.TotalEnergyMWh(), ev.Snapshot.MeanEfficiencyPct())
	f.log.Debugf("snapshot %s built in %s", ev.Snapshot.ID, ev.BuildDuration)
	if f.bus != nil {
		f.bus.Publish(ev)
	}
	snapshotsTotal.Inc()
	energySum.Add(ev.Snapshot.TotalEnergyMWh())
	lastEmit.Set(float64(time.Now().Unix()))
	buildHist.Observe(ev.BuildDuration.Seconds())
}
