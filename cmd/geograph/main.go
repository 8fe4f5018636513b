// Command geograph builds a random geometric graph and fills it with random
// edges, logging lifecycle events. With -metrics-addr it keeps serving
// Prometheus metrics and a graph summary until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/eventlog"
	"github.com/katalvlaran/geograph/metrics"
)

const shutdownTimeout = 10 * time.Second

var (
	nodes       = flag.Int("n", 1000, "number of nodes")
	edges       = flag.Int("edges", 10000, "edges to insert (clamped to n(n-1)/2)")
	seed        = flag.Int64("seed", core.DefaultSeed, "master random seed")
	initP       = flag.Int("init-parallelism", core.DefaultInitParallelism, "point generation workers")
	edgeP       = flag.Int("edge-parallelism", 0, "insert/count workers (0 = 2 x init-parallelism)")
	unlocked    = flag.Bool("unlocked", false, "commit edges without the matrix lock")
	sharedRand  = flag.Bool("shared-rand", false, "draw from one shared random source")
	dump        = flag.Bool("dump", false, "print the full adjacency matrix")
	verbose     = flag.Bool("v", false, "log per-batch progress")
	metricsAddr = flag.String("metrics-addr", "", "serve /metrics on this address after the run")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	collector := metrics.New()
	registry := prometheus.NewRegistry()
	if err := collector.Register(registry); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	opts := []core.GraphOption{
		core.WithSeed(*seed),
		core.WithInitParallelism(*initP),
		core.WithObserver(eventlog.New(logger)),
		core.WithObserver(collector),
	}
	if *edgeP != 0 {
		opts = append(opts, core.WithEdgeParallelism(*edgeP))
	}
	if *unlocked {
		opts = append(opts, core.WithLockPolicy(core.Unlocked))
	}
	if *sharedRand {
		opts = append(opts, core.WithRandPolicy(core.Shared))
	}

	g, err := core.NewGraph(*nodes, opts...)
	if err != nil {
		return err
	}
	logger.Info(g.Summary())

	g.InsertRandomEdges(*edges)
	logger.Info(g.Summary())
	if *dump {
		fmt.Print(g.String())
	}

	if *metricsAddr == "" {
		return nil
	}

	return serve(ctx, logger, g, registry)
}

// serve exposes metrics and a summary endpoint until ctx is cancelled.
func serve(ctx context.Context, logger *slog.Logger, g *core.Graph, registry *prometheus.Registry) error {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/graph", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, g.Summary())
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{Addr: *metricsAddr, Handler: r}
	serverErrs := make(chan error, 1)
	go func() {
		defer close(serverErrs)
		logger.Info("serving metrics", "addr", *metricsAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrs <- err
		}
	}()

	select {
	case err := <-serverErrs:
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
