package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"biteutil/internal/components/chrono"
	"biteutil/lib/calendar"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var icsOutput *string

func init() {
	icsOutput = windowsCmd.Flags().String("ics", "", "Also write the transitions to this iCalendar file.")
	rootCmd.AddCommand(windowsCmd)
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}

var windowsCmd = &cobra.Command{
	Use:   "windows <from-year> <to-year> [--ics <path/to/out.ics>]",
	Short: "Lists the daylight saving windows of a range of years.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseYear(args[0])
		if err != nil {
			return err
		}
		to, err := parseYear(args[1])
		if err != nil {
			return err
		}
		if to < from {
			return fmt.Errorf("to-year %d is before from-year %d", to, from)
		}

		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Year", "PDT Starts", "PST Resumes"})
		for year := from; year <= to; year++ {
			window := chrono.DSTWindowFor(year)
			t.AppendRow(table.Row{
				year,
				window.Start.Format("Mon Jan 2 15:04"),
				window.End.Format("Mon Jan 2 15:04"),
			})
		}
		t.Render()

		if *icsOutput == "" {
			return nil
		}
		err = writeCalendarFile(*icsOutput, from, to)
		if err != nil {
			return err
		}
		slog.Info("wrote calendar", "path", *icsOutput, "years", to-from+1)
		return nil
	},
}

func writeCalendarFile(path string, from, to int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = calendar.WriteDSTCalendar(f, from, to, time.Now())
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
