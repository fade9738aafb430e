package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/plantops/gspmon/core/board"
	"github.com/plantops/gspmon/core/events"
	"github.com/plantops/gspmon/core/status"
	"github.com/plantops/gspmon/render"
)

func testBuilder(t *testing.T) *board.Builder {
	t.Helper()
	b, err := board.NewBuilder(board.Params{
		Seed:           5,
		CloudPoints:    20,
		TrendDays:      5,
		ProteinMinutes: 10,
		CurvePoints:    10,
	})
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	return b
}

func TestSnapshotHandler_Defaults(t *testing.T) {
	h := NewSnapshotHandler(testBuilder(t))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/board/snapshot", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var snap board.Snapshot
	if err := json.Unmarshal(rr.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Controls != board.DefaultControls() {
		t.Fatalf("unexpected controls %#v", snap.Controls)
	}
	if len(snap.Map) != 6 || len(snap.EnergyTrend) != 6 {
		t.Fatalf("unexpected payload sizes %d %d", len(snap.Map), len(snap.EnergyTrend))
	}
	if len(snap.Headline) != 4 || len(snap.Pipeline) != 4 {
		t.Fatalf("missing fixed panels")
	}
}

func TestSnapshotHandler_EchoesControls(t *testing.T) {
	h := NewSnapshotHandler(testBuilder(t))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/board/snapshot?site=GSP2&range=24H&co2_threshold=750", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var snap board.Snapshot
	if err := json.Unmarshal(rr.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := board.Controls{Site: "GSP2", TimeRange: "24H", CO2Threshold: 750}
	if snap.Controls != want {
		t.Fatalf("controls not echoed: %#v", snap.Controls)
	}
}

func TestSnapshotHandler_RejectsBadControls(t *testing.T) {
	h := NewSnapshotHandler(testBuilder(t))
	cases := []string{
		"/api/board/snapshot?site=GSP9",
		"/api/board/snapshot?range=90D",
		"/api/board/snapshot?co2_threshold=abc",
		"/api/board/snapshot?co2_threshold=1500",
	}
	for _, url := range cases {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", url, nil)
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", url, rr.Code)
		}
	}
}

func TestSnapshotHandler_MethodNotAllowed(t *testing.T) {
	h := NewSnapshotHandler(testBuilder(t))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/board/snapshot", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", rr.Code)
	}
}

func TestFeedStatusHandler_Empty(t *testing.T) {
	h := NewFeedStatusHandler(status.NewMemoryStore())
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/board/status", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status %d", rr.Code)
	}
}

func TestFeedStatusHandler_Basic(t *testing.T) {
	store := status.NewMemoryStore()
	snap := testBuilder(t).Build(time.Now(), board.DefaultControls())
	status.Apply(store, events.SnapshotEvent{Seq: 2, Snapshot: snap, BuildDuration: time.Millisecond, Time: time.Now()})

	h := NewFeedStatusHandler(store)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/board/status", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out struct {
		Feed  status.FeedStatus   `json:"feed"`
		Sites []status.SiteSample `json:"sites"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Feed.Seq != 2 || out.Feed.SnapshotID != snap.ID {
		t.Fatalf("unexpected feed %#v", out.Feed)
	}
	if len(out.Sites) != 6 {
		t.Fatalf("expected 6 sites, got %d", len(out.Sites))
	}
}

func TestFeedStatusHandler_Filter(t *testing.T) {
	store := status.NewMemoryStore()
	snap := testBuilder(t).Build(time.Now(), board.DefaultControls())
	status.Apply(store, events.SnapshotEvent{Seq: 1, Snapshot: snap, Time: time.Now()})

	h := NewFeedStatusHandler(store)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/board/status?status=Maintenance", nil)
	h.ServeHTTP(rr, req)
	var out struct {
		Sites []status.SiteSample `json:"sites"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Sites) != 1 || out.Sites[0].SiteID != "GSP3" {
		t.Fatalf("unexpected filter result %#v", out.Sites)
	}
}

func TestPageHandler_ServesHTML(t *testing.T) {
	h := NewPageHandler(testBuilder(t), render.DefaultTheme())
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type %s", ct)
	}
	if !strings.Contains(rr.Body.String(), "PTT Integrated Management System") {
		t.Fatalf("page title missing")
	}
}

func TestPageHandler_NotFound(t *testing.T) {
	h := NewPageHandler(testBuilder(t), render.DefaultTheme())
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/favicon.ico", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status %d", rr.Code)
	}
}
