package commands

import (
	"context"
	"log/slog"
	"time"

	components "biteutil/internal/components/telemetry"
	"biteutil/internal/service"
	"biteutil/lib/configutil"
	"biteutil/lib/telemetry"
	"biteutil/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

type ServeConfig struct {
	Port          int              `json:"port" yaml:"port"`
	Debug         bool             `json:"debug" yaml:"debug"`
	PercentDigits int              `json:"percent_digits" yaml:"percent_digits"`
	Telemetry     telemetry.Config `json:"telemetry" yaml:"telemetry"`
}

const serviceName = "biteutil"

func defaultServeConfig() ServeConfig {
	return ServeConfig{Port: 8080}
}

var (
	serveConfigPath *string
	servePort       *int
)

func init() {
	serveConfigPath = serveCmd.Flags().String("config", "biteutil.json5", "Config file, a <name>.local.<ext> next to it overrides it.")
	servePort = serveCmd.Flags().Int("port", 0, "Port to listen on, overrides the config.")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [--config <path/to/biteutil.json5>] [--port <port>]",
	Short: "Serves the helpers as a JSON HTTP API.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfigOr(*serveConfigPath, defaultServeConfig())
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		if *servePort != 0 {
			cfg.Port = *servePort
		}
		telemetry.InitSlog(debug || cfg.Debug)

		ctx := serviceutil.SignalContext()

		var tel telemetry.Telemetry
		if cfg.Telemetry.Enabled() {
			tel, err = telemetry.Setup(ctx, serviceName, cfg.Telemetry)
		} else {
			// a shared telemetry.json5 further up applies when the config has none
			tel, err = telemetry.SetupFromEnv(ctx, serviceName)
		}
		if err != nil {
			serviceutil.Fatal("failed to setup telemetry", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err := tel.Shutdown(shutdownCtx)
			if err != nil {
				slog.Warn("failed to shutdown telemetry", "err", err)
			}
		}()

		err = telemetry.InstrumentPerfStats(ctx, 30*time.Second)
		if err != nil {
			serviceutil.Fatal("failed to instrument perf stats", err)
		}
		otelTel, err := components.NewOtelAPI(components.SlogAPI{})
		if err != nil {
			serviceutil.Fatal("failed to create telemetry api", err)
		}

		svc := service.NewUtilService(
			service.NewCoreAPIs(service.WithCustomTelemetryAPI(otelTel)),
			service.Config{PercentDigits: cfg.PercentDigits},
		)

		slog.Info(
			"effective config",
			"port", cfg.Port,
			"percent_digits", cfg.PercentDigits,
			"telemetry", tel.TracerProvider != nil,
		)
		err = serviceutil.ServeHttp(ctx, serviceutil.NewHttpServer(cfg.Port, svc.Handler()))
		if err != nil {
			slog.Error("http server stopped", "err", err)
		}
	},
}
