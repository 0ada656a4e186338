package commands

import (
	"fmt"
	"strings"
	"time"

	"biteutil/internal/components/telemetry"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

var pingTimeout *time.Duration

func init() {
	pingTimeout = pingCmd.Flags().Duration("timeout", 5*time.Second, "How long to wait for the server.")
	rootCmd.AddCommand(pingCmd)
}

var pingCmd = &cobra.Command{
	Use:   "ping <address>",
	Short: "Checks that a biteutil server is up by calling its health endpoint.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		address := args[0]
		if !strings.Contains(address, "://") {
			address = "http://" + address
		}

		client := resty.New().
			SetBaseURL(strings.TrimSuffix(address, "/")).
			SetTimeout(*pingTimeout)
		telemetry.InstrumentResty(client, telemetry.NewScopedAPI("ping", telemetry.SlogAPI{}))

		res, err := client.R().SetContext(cmd.Context()).Get("/health")
		if err != nil {
			return err
		}
		if res.IsError() {
			return fmt.Errorf("health check failed: %s", res.Status())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", res.String(), res.Time())
		return nil
	},
}
