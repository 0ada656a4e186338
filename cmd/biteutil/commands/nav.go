package commands

import (
	"fmt"
	"os"

	"biteutil/lib/jsonutil"
	"biteutil/lib/nav"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(navCmd)
}

var navCmd = &cobra.Command{
	Use:   "nav <path/to/nav.json> <name>",
	Short: "Marks a scope of a main nav file as selected and prints the result.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		contents, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var mainNav nav.MainNav
		err = jsonutil.Default.Decode(string(contents), &mainNav)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		nav.SetActiveNav(&mainNav, args[1])

		out, err := jsonutil.DumpJSON(mainNav)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}
