package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/plantops/gspmon/core/board"
	"github.com/plantops/gspmon/render"
)

var (
	snapshotFormat string
	snapshotOut    string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Assemble one dashboard snapshot and print it",
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotFormat, "format", "json", "output format: json or html")
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "", "output file (stdout when omitted)")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
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
	if snapshotOut != "" {
		f, err := os.Create(snapshotOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	switch snapshotFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "html":
		return render.WriteHTML(w, snap, render.DefaultTheme())
	default:
		return fmt.Errorf("unknown format %s", snapshotFormat)
	}
}
