package model

import (
	"encoding/json"
	"fmt"
)

// SiteStatus defines the operating state of a gas separation plant.
type SiteStatus int

const (
	StatusOperational SiteStatus = iota
	StatusMaintenance
	StatusUnderReview
)

// String returns the display label used across dashboards and APIs.
func (s SiteStatus) String() string {
	switch s {
	case StatusOperational:
		return "Operational"
	case StatusMaintenance:
		return "Maintenance"
	case StatusUnderReview:
		return "Under Review"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status as its display label.
func (s SiteStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the display label form produced by MarshalJSON.
func (s *SiteStatus) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	v, err := ParseSiteStatus(label)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSiteStatus maps a display label back to its status.
func ParseSiteStatus(label string) (SiteStatus, error) {
	switch label {
	case "Operational":
		return StatusOperational, nil
	case "Maintenance":
		return StatusMaintenance, nil
	case "Under Review":
		return StatusUnderReview, nil
	default:
		return 0, fmt.Errorf("unknown site status %q", label)
	}
}

// Site represents one gas separation plant in the Rayong fleet.
type Site struct {
	ID     string     `json:"id"`
	Lat    float64    `json:"lat"`
	Lon    float64    `json:"lon"`
	Status SiteStatus `json:"status"`
}

// Map view constants shared by the render layer. The fleet sits within a
// few kilometres, so a single fixed center covers all sites.
const (
	MapCenterLat = 12.7333
	MapCenterLon = 101.1500
	MapZoom      = 11
)

// Fleet returns the six plants covered by the dashboards. The table is
// fixed: sites are never added, removed or mutated at runtime. A fresh
// slice is returned on every call so callers cannot alias shared state.
func Fleet() []Site {
	return []Site{
		{ID: "GSP1", Lat: 12.7503, Lon: 101.1318, Status: StatusOperational},
		{ID: "GSP2", Lat: 12.7432, Lon: 101.1445, Status: StatusOperational},
		{ID: "GSP3", Lat: 12.7366, Lon: 101.1392, Status: StatusMaintenance},
		{ID: "GSP4", Lat: 12.7299, Lon: 101.1503, Status: StatusOperational},
		{ID: "GSP5", Lat: 12.7233, Lon: 101.1477, Status: StatusOperational},
		{ID: "GSP6", Lat: 12.7166, Lon: 101.1555, Status: StatusUnderReview},
	}
}

// SiteByID looks up a plant by its identifier.
func SiteByID(id string) (Site, bool) {
	for _, s := range Fleet() {
		if s.ID == id {
			return s, true
		}
	}
	return Site{}, false
}
