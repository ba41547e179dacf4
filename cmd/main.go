package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/gradeplan/internal/adapters/coursefile"
	"github.com/okian/gradeplan/internal/adapters/render"
	service "github.com/okian/gradeplan/internal/app"
	"github.com/okian/gradeplan/internal/config"
	"github.com/okian/gradeplan/pkg/logger"
	"github.com/okian/gradeplan/pkg/metrics"
)

// Metrics server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since the logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Optional Prometheus listener; off unless configured.
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr, log)
	}

	course, err := coursefile.Load(ctx, cfg.CourseFile)
	if err != nil {
		log.Error(ctx, "failed to load course file", logger.String("path", cfg.CourseFile), logger.Error(err))
		return 1
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithScenarioScores(cfg.ScenarioScores),
	)

	report, err := svc.Evaluate(ctx, course)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrZeroTotalWeight):
			log.Error(ctx, "total weight is zero; enter valid weights", logger.Error(err))
		case errors.Is(err, service.ErrFinalNotFound):
			log.Error(ctx, "final exam category not found among the categories", logger.Error(err))
		case errors.Is(err, service.ErrDegenerateSolve):
			log.Error(ctx, "cannot compute required final score; check the final weight", logger.Error(err))
		default:
			log.Error(ctx, "evaluation failed", logger.Error(err))
		}
		return 1
	}

	if err := render.Text(os.Stdout, report); err != nil {
		log.Error(ctx, "failed to render report", logger.Error(err))
		return 1
	}

	// With a metrics listener up, stay alive until interrupted so the
	// evaluation counters can be scraped.
	if cfg.MetricsAddr != "" {
		log.Info(ctx, "report rendered; waiting for interrupt", logger.String("metrics_addr", cfg.MetricsAddr))
		<-ctx.Done()
	}

	return 0
}

// serveMetrics exposes the Prometheus registry until the context ends.
func serveMetrics(ctx context.Context, addr string, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info(ctx, "serving metrics", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(ctx, "metrics server failed", logger.Error(err))
	}
}
