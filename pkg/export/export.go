package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/plantops/gspmon/core/board"
)

// WriteJSON writes the fleet energy table to w in JSON format.
func WriteJSON(w io.Writer, points []board.MapPoint) error {
	enc := json.NewEncoder(w)
	return enc.Encode(points)
}

// WriteCSV writes the fleet energy table to w in CSV format.
func WriteCSV(w io.Writer, points []board.MapPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"site_id", "status", "energy_mwh", "efficiency_pct"}); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{
			p.SiteID,
			p.Status,
			strconv.FormatFloat(p.EnergyMWh, 'f', -1, 64),
			strconv.FormatFloat(p.EfficiencyPct, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
