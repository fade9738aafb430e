package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/plantops/gspmon/core/board"
)

// NewSnapshotHandler returns an HTTP handler exposing the full board
// payload via GET /api/board/snapshot. Sidebar query parameters are
// validated and echoed back in the response; the generated series do not
// depend on them.
func NewSnapshotHandler(builder *board.Builder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controls, err := controlsFromQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		snap := builder.Build(time.Now(), controls)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// controlsFromQuery reads the sidebar state from query parameters,
// falling back to the defaults for absent values.
func controlsFromQuery(r *http.Request) (board.Controls, error) {
	c := board.DefaultControls()
	q := r.URL.Query()
	if v := q.Get("site"); v != "" {
		c.Site = v
	}
	if v := q.Get("range"); v != "" {
		c.TimeRange = v
	}
	if v := q.Get("co2_threshold"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return board.Controls{}, fmt.Errorf("invalid co2_threshold %q", v)
		}
		c.CO2Threshold = f
	}
	if err := c.Validate(); err != nil {
		return board.Controls{}, err
	}
	return c, nil
}
