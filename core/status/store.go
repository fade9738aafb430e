package status

import (
	"sort"
	"sync"
	"time"
)

// FeedStatus captures the most recent feed emission.
type FeedStatus struct {
	SnapshotID     string    `json:"snapshot_id"`
	Seq            int       `json:"seq"`
	TotalEnergyMWh float64   `json:"total_energy_mwh"`
	MeanEfficiency float64   `json:"mean_efficiency_pct"`
	BuildMillis    float64   `json:"build_ms"`
	Time           time.Time `json:"time"`
}

// SiteSample is the last recorded fleet map sample for one plant.
type SiteSample struct {
	SiteID        string    `json:"site_id"`
	Status        string    `json:"status"`
	EnergyMWh     float64   `json:"energy_mwh"`
	EfficiencyPct float64   `json:"efficiency_pct"`
	Time          time.Time `json:"time"`
}

// Filter narrows Sites listings.
type Filter struct {
	Status string
}

// Store tracks the live feed state for the status API.
type Store interface {
	RecordFeed(FeedStatus)
	RecordSites([]SiteSample)
	Feed() (FeedStatus, bool)
	Sites(Filter) []SiteSample
}

// MemoryStore is the in-memory Store implementation.
type MemoryStore struct {
	mu    sync.RWMutex
	feed  FeedStatus
	seen  bool
	sites map[string]SiteSample
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sites: map[string]SiteSample{}}
}

// RecordFeed stores the latest feed emission.
func (s *MemoryStore) RecordFeed(f FeedStatus) {
	s.mu.Lock()
	s.feed = f
	s.seen = true
	s.mu.Unlock()
}

// RecordSites stores the latest per-plant samples.
func (s *MemoryStore) RecordSites(samples []SiteSample) {
	s.mu.Lock()
	for _, sample := range samples {
		s.sites[sample.SiteID] = sample
	}
	s.mu.Unlock()
}

// Feed returns the last feed emission, if any was recorded.
func (s *MemoryStore) Feed() (FeedStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.feed, s.seen
}

// Sites lists the stored samples matching the filter, sorted by plant ID.
func (s *MemoryStore) Sites(f Filter) []SiteSample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]SiteSample, 0, len(s.sites))
	for _, sample := range s.sites {
		if f.Status != "" && sample.Status != f.Status {
			continue
		}
		res = append(res, sample)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].SiteID < res[j].SiteID })
	return res
}
