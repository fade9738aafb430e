package sites

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plantops/gspmon/core/model"
)

func TestListHandler(t *testing.T) {
	h := NewListHandler()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/sites", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out struct {
		Sites       []model.Site `json:"sites"`
		Center      [2]float64   `json:"center"`
		Zoom        int          `json:"zoom"`
		SiteOptions []string     `json:"site_options"`
		TimeRanges  []string     `json:"time_ranges"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Sites) != 6 {
		t.Fatalf("expected 6 sites, got %d", len(out.Sites))
	}
	if out.Center[0] != model.MapCenterLat || out.Center[1] != model.MapCenterLon {
		t.Fatalf("unexpected center %v", out.Center)
	}
	if out.Zoom != model.MapZoom {
		t.Fatalf("unexpected zoom %d", out.Zoom)
	}
	if len(out.SiteOptions) != 7 || out.SiteOptions[0] != "All Plants" {
		t.Fatalf("unexpected site options %v", out.SiteOptions)
	}
	if len(out.TimeRanges) != 4 || out.TimeRanges[1] != "7D" {
		t.Fatalf("unexpected time ranges %v", out.TimeRanges)
	}
}

func TestListHandler_MethodNotAllowed(t *testing.T) {
	h := NewListHandler()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/sites", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", rr.Code)
	}
}
