package status

import (
	"context"
	"testing"
	"time"

	"github.com/plantops/gspmon/core/board"
	"github.com/plantops/gspmon/core/events"
	"github.com/plantops/gspmon/internal/eventbus"
)

func TestMemoryStoreFeed(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.Feed(); ok {
		t.Fatalf("empty store should report no feed")
	}
	s.RecordFeed(FeedStatus{SnapshotID: "snap-1", Seq: 3, TotalEnergyMWh: 1500})
	f, ok := s.Feed()
	if !ok || f.SnapshotID != "snap-1" || f.Seq != 3 {
		t.Fatalf("unexpected feed status %#v", f)
	}
}

func TestMemoryStoreSitesFilter(t *testing.T) {
	s := NewMemoryStore()
	s.RecordSites([]SiteSample{
		{SiteID: "GSP2", Status: "Operational", EnergyMWh: 200},
		{SiteID: "GSP1", Status: "Operational", EnergyMWh: 100},
		{SiteID: "GSP3", Status: "Maintenance", EnergyMWh: 300},
	})
	all := s.Sites(Filter{})
	if len(all) != 3 || all[0].SiteID != "GSP1" {
		t.Fatalf("expected sorted listing got %#v", all)
	}
	maint := s.Sites(Filter{Status: "Maintenance"})
	if len(maint) != 1 || maint[0].SiteID != "GSP3" {
		t.Fatalf("status filter failed: %#v", maint)
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	s := NewMemoryStore()
	s.RecordSites([]SiteSample{{SiteID: "GSP1", EnergyMWh: 100}})
	s.RecordSites([]SiteSample{{SiteID: "GSP1", EnergyMWh: 250}})
	out := s.Sites(Filter{})
	if len(out) != 1 || out[0].EnergyMWh != 250 {
		t.Fatalf("sample not replaced: %#v", out)
	}
}

func TestApply(t *testing.T) {
	s := NewMemoryStore()
	b, err := board.NewBuilder(board.Params{Seed: 1})
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	snap := b.Build(time.Now(), board.DefaultControls())
	Apply(s, events.SnapshotEvent{Seq: 7, Snapshot: snap, BuildDuration: 2 * time.Millisecond, Time: snap.Time})
	f, ok := s.Feed()
	if !ok || f.Seq != 7 || f.SnapshotID != snap.ID {
		t.Fatalf("feed not applied: %#v", f)
	}
	if f.BuildMillis != 2 {
		t.Fatalf("build millis %f want 2", f.BuildMillis)
	}
	if got := s.Sites(Filter{}); len(got) != 6 {
		t.Fatalf("expected 6 site samples got %d", len(got))
	}
}

func TestListen(t *testing.T) {
	s := NewMemoryStore()
	bus := eventbus.New[events.SnapshotEvent]()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	Listen(ctx, bus, s)

	b, err := board.NewBuilder(board.Params{Seed: 1})
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	snap := b.Build(time.Now(), board.DefaultControls())
	bus.Publish(events.SnapshotEvent{Seq: 1, Snapshot: snap, Time: snap.Time})

	deadline := time.After(500 * time.Millisecond)
	for {
		if f, ok := s.Feed(); ok && f.Seq == 1 {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("listener did not record feed status")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
