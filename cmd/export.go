package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/plantops/gspmon/core/board"
	"github.com/plantops/gspmon/pkg/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the per-plant energy table",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (stdout when omitted)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	builder, err := board.NewBuilder(cfg.Board)
	if err != nil {
		return err
	}
	snap := builder.Build(time.Now(), board.DefaultControls())

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	switch exportFormat {
	case "csv":
		return export.WriteCSV(w, snap.Map)
	case "json":
		return export.WriteJSON(w, snap.Map)
	default:
		return fmt.Errorf("unknown format %s", exportFormat)
	}
}
