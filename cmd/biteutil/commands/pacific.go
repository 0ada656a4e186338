package commands

import (
	"fmt"
	"time"

	"biteutil/internal/components/chrono"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pacificCmd)
}

var pacificCmd = &cobra.Command{
	Use:   "pacific [<utc-rfc3339>...]",
	Short: "Converts UTC instants to Pacific civil time, defaults to now.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var instants []time.Time
		for _, arg := range args {
			parsed, err := time.Parse(time.RFC3339, arg)
			if err != nil {
				return fmt.Errorf("parse %q: %w", arg, err)
			}
			instants = append(instants, parsed)
		}
		if len(instants) == 0 {
			instants = append(instants, time.Now())
		}

		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"UTC", "Pacific", "Zone", "Start String"})
		for _, instant := range instants {
			pacific := chrono.ConvertUTCToPacific(instant)
			zone, _ := pacific.Zone()
			t.AppendRow(table.Row{
				instant.UTC().Format(time.RFC3339),
				pacific.Format(time.DateTime),
				zone,
				chrono.FormatPacificStartString(pacific),
			})
		}
		t.Render()
		return nil
	},
}
