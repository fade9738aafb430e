package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantops/gspmon/core/model"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the gas separation plants",
	RunE:  runSites,
}

func init() {
	rootCmd.AddCommand(sitesCmd)
}

func runSites(cmd *cobra.Command, args []string) error {
	for _, s := range model.Fleet() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %.4f  %.4f  %s\n", s.ID, s.Lat, s.Lon, s.Status)
	}
	return nil
}
