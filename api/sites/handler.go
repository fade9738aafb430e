package sites

import (
	"encoding/json"
	"net/http"

	"github.com/plantops/gspmon/core/board"
	"github.com/plantops/gspmon/core/model"
)

// NewListHandler returns an HTTP handler exposing the fixed plant
// register via GET /api/sites, along with the map framing and the
// sidebar vocabulary.
func NewListHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		out := struct {
			Sites       []model.Site `json:"sites"`
			Center      [2]float64   `json:"center"`
			Zoom        int          `json:"zoom"`
			SiteOptions []string     `json:"site_options"`
			TimeRanges  []string     `json:"time_ranges"`
		}{
			Sites:       model.Fleet(),
			Center:      [2]float64{model.MapCenterLat, model.MapCenterLon},
			Zoom:        model.MapZoom,
			SiteOptions: board.SiteOptions(),
			TimeRanges:  board.TimeRanges(),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
