package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/internal/history"
	"github.com/katalvlaran/pathviz/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the visualizer API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	f := cmd.Flags()
	f.String("listen", ":8080", "HTTP listen address")
	f.Duration("step-delay", engine.DefaultStepDelay, "pause after every search step")
	f.Bool("metrics", true, "serve Prometheus metrics on /metrics")
	bindFlags(a.v, cmd, map[string]string{
		config.KeyListen:    "listen",
		config.KeyStepDelay: "step-delay",
		config.KeyMetrics:   "metrics",
	})

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	board, err := a.board()
	if err != nil {
		return err
	}
	store, err := history.Open(a.cfg.HistoryDir, a.log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			a.log.Warn("closing history", slog.String("error", err.Error()))
		}
	}()

	var reg *prometheus.Registry
	if a.cfg.Metrics {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	srv, err := server.New(server.Config{
		Addr:      a.cfg.Listen,
		Board:     board,
		Diagonal:  a.cfg.Diagonal,
		Algorithm: a.cfg.Algorithm,
		StepDelay: a.cfg.StepDelay,
		Logger:    a.log,
		Metrics:   reg,
		History:   store,
	})
	if err != nil {
		return err
	}
	a.log.Info("board ready",
		slog.Int("width", board.Width),
		slog.Int("height", board.Height),
		slog.Bool("diagonal", a.cfg.Diagonal),
	)

	return srv.Start(ctx)
}
