package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/hilthontt/pipeline-demo/internal/infrastructure/configs"
	"github.com/hilthontt/pipeline-demo/internal/infrastructure/logging"
	"github.com/hilthontt/pipeline-demo/internal/infrastructure/metrics"
	"github.com/hilthontt/pipeline-demo/internal/infrastructure/preflight"
	"github.com/hilthontt/pipeline-demo/internal/infrastructure/tracing"
	"github.com/hilthontt/pipeline-demo/internal/presentation/api"
	"github.com/hilthontt/pipeline-demo/internal/presentation/handler/health"
	"github.com/hilthontt/pipeline-demo/internal/presentation/handler/landing"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "pipeline-demo: %v\n", err)
		os.Exit(1)
	}
}

// run returns nil once the server has shut down on SIGINT, SIGTERM or
// cancellation of ctx. Only startup failures are returned as errors.
func run(ctx context.Context) error {
	// Uptime is measured from here, before anything can accept a connection.
	startTime := time.Now()

	cfg, err := configs.Load(configs.DetermineConfigPath())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.LoggerConfig{
		Logger:   cfg.Logger.Logger,
		Encoding: cfg.Logger.Encoding,
		Level:    cfg.Logger.Level,
		FilePath: cfg.Logger.FilePath,
		AppName:  cfg.App.Name,
	})
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer func() { _ = logger.Close() }()

	landingHandler := landing.NewHandler(cfg.App.Version, time.Now)
	healthHandler := health.NewHandler(startTime, time.Now)

	if err := preflight.Run(preflight.Checks{
		GoVersion:     runtime.Version(),
		Port:          cfg.HTTP.Port,
		RenderLanding: landingHandler.Render,
	}); err != nil {
		logger.Error(logging.General, logging.Preflight, "preflight checks failed", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
		return fmt.Errorf("preflight: %w", err)
	}

	shutdownTracer, err := tracing.InitTracer(tracing.Config{
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		Endpoint:       cfg.Tracing.Endpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize the tracer: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			logger.Error(logging.Tracing, logging.Shutdown, "failed to flush traces", map[logging.ExtraKey]any{
				logging.ErrorMessage: err.Error(),
			})
		}
	}()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(startTime, time.Now)
		logger.Info(logging.Prometheus, logging.Startup, "uptime metric exposed at /metrics", nil)
	}

	app := api.NewApplication(*cfg, landingHandler, healthHandler, m, logger)

	ctx, stop := api.WithShutdownSignals(ctx, logger)
	defer stop()

	return app.Run(ctx, app.Mount())
}
