package render

import "github.com/plantops/gspmon/core/model"

// Theme carries the fixed dashboard palette and page chrome.
type Theme struct {
	PageTitle    string
	StatusColors map[string]string
	StageColors  []string
	CloudColors  []string
	AccentColor  string
}

// DefaultTheme returns the plant dashboard palette.
func DefaultTheme() Theme {
	return Theme{
		PageTitle: "PTT Integrated Management System",
		StatusColors: map[string]string{
			model.StatusOperational.String(): "#00acc1",
			model.StatusMaintenance.String(): "#ffd700",
			model.StatusUnderReview.String(): "#ff7043",
		},
		StageColors: []string{"#4CAF50", "#2196F3", "#FFC107", "#9C27B0"},
		CloudColors: []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
		AccentColor: "#00acc1",
	}
}
