package commands

import (
	"fmt"
	"strconv"

	"biteutil/lib/textutil"

	"github.com/spf13/cobra"
)

var percentDigits *int

func init() {
	percentDigits = percentCmd.Flags().Int("digits", 0, "Number of decimal places to keep.")
	rootCmd.AddCommand(percentCmd)
}

var percentCmd = &cobra.Command{
	Use:   "percent <numerator> <denominator> [--digits n]",
	Short: "Formats numerator/denominator as a percentage.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		numerator, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("numerator: %w", err)
		}
		denominator, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("denominator: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), textutil.PercentStringDigits(numerator, denominator, *percentDigits))
		return nil
	},
}
