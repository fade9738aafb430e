package metrics

import (
	"errors"
	"sync"
	"testing"

	coremetrics "github.com/plantops/gspmon/core/metrics"
)

type fakeSink struct {
	mu          sync.Mutex
	snapshots   int
	siteBatches int
	conversions int
	err         error
}

func (f *fakeSink) RecordSnapshot(coremetrics.SnapshotEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshots++
	return f.err
}

func (f *fakeSink) RecordSiteEnergy([]coremetrics.SiteEnergyEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.siteBatches++
	return f.err
}

func (f *fakeSink) RecordConversion(coremetrics.ConversionEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conversions++
	return f.err
}

func (f *fakeSink) counts() (int, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshots, f.siteBatches, f.conversions
}

// basicSink implements only the mandatory snapshot recorder.
type basicSink struct{ snapshots int }

func (b *basicSink) RecordSnapshot(coremetrics.SnapshotEvent) error {
	b.snapshots++
	return nil
}

func TestMultiSinkForwardsAll(t *testing.T) {
	f1 := &fakeSink{}
	f2 := &fakeSink{}
	b := &basicSink{}
	multi := NewMultiSink(f1, b, f2)

	if err := multi.RecordSnapshot(coremetrics.SnapshotEvent{}); err != nil {
		t.Fatalf("snapshot error: %v", err)
	}
	if err := multi.RecordSiteEnergy([]coremetrics.SiteEnergyEvent{{SiteID: "GSP1"}}); err != nil {
		t.Fatalf("site energy error: %v", err)
	}
	if err := multi.RecordConversion(coremetrics.ConversionEvent{}); err != nil {
		t.Fatalf("conversion error: %v", err)
	}

	for i, f := range []*fakeSink{f1, f2} {
		s, sb, c := f.counts()
		if s != 1 || sb != 1 || c != 1 {
			t.Errorf("sink %d counts: %d %d %d", i, s, sb, c)
		}
	}
	if b.snapshots != 1 {
		t.Errorf("basic sink snapshots: %d", b.snapshots)
	}
}

func TestMultiSinkFirstError(t *testing.T) {
	boom := errors.New("boom")
	f1 := &fakeSink{err: boom}
	f2 := &fakeSink{}
	multi := NewMultiSink(f1, f2)

	if err := multi.RecordSnapshot(coremetrics.SnapshotEvent{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if s, _, _ := f2.counts(); s != 0 {
		t.Errorf("second sink called after error: %d", s)
	}
}
