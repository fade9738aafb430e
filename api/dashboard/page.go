package dashboard

import (
	"net/http"
	"time"

	"github.com/plantops/gspmon/core/board"
	"github.com/plantops/gspmon/render"
)

// NewPageHandler returns the rendered HTML dashboard via GET /.
func NewPageHandler(builder *board.Builder, th render.Theme) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
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
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := render.WriteHTML(w, snap, th); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
