package commands

import (
	"fmt"
	"io"
	"strings"

	"biteutil/lib/jsonutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(jsonCmd)
}

var jsonCmd = &cobra.Command{
	Use:   "json < input.json",
	Short: "Reads JSON from stdin and prints it back compacted, empty input prints nothing.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		value, err := jsonutil.ParseJSON(strings.TrimSpace(string(input)))
		if err != nil {
			return err
		}
		out, err := jsonutil.DumpJSON(value)
		if err != nil {
			return err
		}
		if out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	},
}
