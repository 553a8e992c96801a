package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hilthontt/pipeline-demo/internal/infrastructure/configs"
	"github.com/hilthontt/pipeline-demo/internal/infrastructure/json"
	"github.com/hilthontt/pipeline-demo/internal/infrastructure/logging"
	"github.com/hilthontt/pipeline-demo/internal/infrastructure/metrics"
	healthHandler "github.com/hilthontt/pipeline-demo/internal/presentation/handler/health"
	landingHandler "github.com/hilthontt/pipeline-demo/internal/presentation/handler/landing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrAlreadyStarted = errors.New("application already started")

type Application struct {
	config         configs.Config
	landingHandler *landingHandler.Handler
	healthHandler  *healthHandler.Handler
	metrics        *metrics.Metrics
	logger         logging.Logger

	started atomic.Bool
	state   atomic.Int32
}

// NewApplication wires the handlers without touching the network. metrics may
// be nil, in which case /metrics is not mounted.
func NewApplication(
	config configs.Config,
	landingHandler *landingHandler.Handler,
	healthHandler *healthHandler.Handler,
	metrics *metrics.Metrics,
	logger logging.Logger,
) *Application {
	return &Application{
		config:         config,
		landingHandler: landingHandler,
		healthHandler:  healthHandler,
		metrics:        metrics,
		logger:         logger,
	}
}

func (app *Application) State() State {
	return State(app.state.Load())
}

func (app *Application) setState(s State) {
	app.state.Store(int32(s))
}

func (app *Application) Mount() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.loggerMiddleware)
	r.Use(app.recoverer)
	r.Use(middleware.GetHead)

	r.NotFound(json.WriteNotFound)
	r.MethodNotAllowed(json.WriteMethodNotAllowed)

	r.Get("/", app.landingHandler.GetLanding)
	r.Get("/health", app.healthHandler.GetHealth)

	if app.metrics != nil {
		r.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	}

	return otelhttp.NewHandler(r, app.config.App.Name,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

// Run binds the configured address and serves until ctx is done. A bind
// failure is returned before the application leaves StateCreated.
func (app *Application) Run(ctx context.Context, mux http.Handler) error {
	addr := app.config.HTTP.Addr()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}

	return app.Serve(ctx, ln, mux)
}

// Serve accepts connections on ln until ctx is done, then stops accepting and
// waits up to the configured shutdown timeout for in-flight requests. Requests
// still running after the timeout are dropped and Serve still returns nil.
func (app *Application) Serve(ctx context.Context, ln net.Listener, mux http.Handler) error {
	if app.started.Swap(true) {
		_ = ln.Close()
		return ErrAlreadyStarted
	}

	srv := &http.Server{
		Handler:      mux,
		ReadTimeout:  app.config.HTTP.ReadTimeout,
		WriteTimeout: app.config.HTTP.WriteTimeout,
		IdleTimeout:  app.config.HTTP.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	app.setState(StateListening)
	app.logger.Info(logging.General, logging.Startup, "server has started", map[logging.ExtraKey]any{
		logging.Address: ln.Addr().String(),
		logging.Version: app.config.App.Version,
	})

	select {
	case err := <-serveErr:
		app.setState(StateStopped)
		return fmt.Errorf("server stopped unexpectedly: %w", err)
	case <-ctx.Done():
	}

	app.setState(StateTerminating)
	app.logger.Info(logging.General, logging.Shutdown, "draining connections", map[logging.ExtraKey]any{
		logging.Address: ln.Addr().String(),
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		// Whatever is still running gets dropped; the stop itself is clean.
		app.logger.Warn(logging.General, logging.Shutdown, "drain timed out, closing remaining connections", map[logging.ExtraKey]any{
			logging.Address:      ln.Addr().String(),
			logging.ErrorMessage: err.Error(),
		})
		_ = srv.Close()
	}
	<-serveErr

	app.setState(StateStopped)

	app.logger.Info(logging.General, logging.Shutdown, "server has stopped", map[logging.ExtraKey]any{
		logging.Address: ln.Addr().String(),
	})

	return nil
}

// WithShutdownSignals returns a context that is cancelled on SIGINT or SIGTERM.
func WithShutdownSignals(parent context.Context, logger logging.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(quit)

		select {
		case s := <-quit:
			logger.Info(logging.General, logging.Shutdown, "signal caught", map[logging.ExtraKey]any{
				logging.Signal: s.String(),
			})
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
