package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/plantops/gspmon/core/status"
)

// NewFeedStatusHandler returns an HTTP handler exposing the last feed
// emission via GET /api/board/status. The optional status query parameter
// filters the per-plant samples.
func NewFeedStatusHandler(store status.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		fs, ok := store.Feed()
		if !ok {
			http.Error(w, "no snapshot emitted yet", http.StatusServiceUnavailable)
			return
		}
		f := status.Filter{Status: r.URL.Query().Get("status")}
		out := struct {
			Feed  status.FeedStatus   `json:"feed"`
			Sites []status.SiteSample `json:"sites"`
		}{Feed: fs, Sites: store.Sites(f)}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
