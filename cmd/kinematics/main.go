// Command kinematics runs a projectile system and logs speed statistics.
//
// Configuration comes from defaults, an optional YAML file (-config) and
// UNITVEC_* environment variables, in that order.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/unitvec"
	"github.com/hupe1980/unitvec/internal/config"
	"github.com/hupe1980/unitvec/internal/kernel"
	"github.com/hupe1980/unitvec/testutil"
	"github.com/hupe1980/unitvec/typed"
	"github.com/hupe1980/unitvec/unit"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	dumpConfig := flag.Bool("dump-config", false, "print the effective configuration and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if *dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	logger := unitvec.NewTextLogger(level)
	if strings.EqualFold(cfg.LogFormat, "json") {
		logger = unitvec.NewJSONLogger(level)
	}

	if mode, ok := cfg.KernelMode(); ok {
		useKernel(ctx, logger, mode)
	}

	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	metrics := &unitvec.BasicMetricsCollector{}
	var collector unitvec.MetricsCollector = metrics

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		collector = multiCollector{metrics, unitvec.NewPrometheusCollector(reg, "unitvec")}

		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metricsHandler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.ErrorContext(ctx, "metrics server failed", "error", err)
			}
		}()
		defer srv.Close()

		logger.InfoContext(ctx, "serving metrics", "addr", cfg.MetricsAddr)
	}

	sys, err := unitvec.Kinematics[float64]().
		Capacity(cfg.Bodies).
		Parallelism(parallelism).
		ShardSize(cfg.ShardSize).
		Logger(logger).
		Metrics(collector).
		Build()
	if err != nil {
		return err
	}

	rng := testutil.NewRNG(cfg.Seed)
	for range cfg.Bodies {
		sys.Spawn(0, 0, rng.Float64(-10, 10), rng.Float64(0, 30))
	}
	sys.Accelerate(0, -cfg.Gravity)

	logger.WithKernel(kernel.ActiveMode().String()).WithCount(cfg.Bodies).InfoContext(ctx, "simulation started",
		"steps", cfg.Steps,
		"dt", cfg.TimeStep,
		"parallelism", parallelism,
	)

	dt := typed.New[unit.Seconds](cfg.TimeStep)
	start := time.Now()

	for range cfg.Steps {
		if err := sys.Step(ctx, dt); err != nil {
			return err
		}
	}

	stats, err := sys.Stats()
	if err != nil {
		return err
	}
	logger.LogStats(ctx, stats)

	m := metrics.GetStats()
	logger.InfoContext(ctx, "simulation finished",
		"elapsed", time.Since(start),
		"steps", m.StepCount,
		"avg_step", time.Duration(m.StepAvgNanos),
		"bodies_integrated", m.BodiesIntegrated,
	)

	if level <= slog.LevelDebug {
		if b, ok := sys.Body(0); ok {
			logger.DebugContext(ctx, "first body", "x", b.X, "y", b.Y, "vx", b.VX, "vy", b.VY)
		}
	}

	return nil
}

// useKernel switches the kernel mode and warns when the CPU cannot run it.
func useKernel(ctx context.Context, logger *unitvec.Logger, mode kernel.Mode) bool {
	kernel.Use(mode)

	if active := kernel.ActiveMode(); active != mode {
		logger.WarnContext(ctx, "kernel mode unavailable",
			"requested", mode.String(),
			"active", active.String(),
		)
		return false
	}

	return true
}

// multiCollector fans metrics out to several collectors.
type multiCollector []unitvec.MetricsCollector

func (m multiCollector) RecordStep(bodies int, duration time.Duration, err error) {
	for _, c := range m {
		c.RecordStep(bodies, duration, err)
	}
}

func (m multiCollector) RecordSpawn() {
	for _, c := range m {
		c.RecordSpawn()
	}
}

func metricsHandler(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return mux
}
