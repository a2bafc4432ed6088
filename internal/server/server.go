// Package server is the HTTP request layer of pathviz. It owns one live
// board, edits it on request, runs searches through an engine.Runner and
// streams their frames over a websocket.
//
// Malformed coordinates are not errors: the edit is skipped and the
// handler still answers 200 with the current board. Only undecodable JSON
// bodies and unknown algorithm names are rejected.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/history"
	"github.com/katalvlaran/pathviz/search"
)

// DefaultDensity is used by /api/random when the request names none.
const DefaultDensity = 0.3

// ErrNoBoard indicates a Config without a board.
var ErrNoBoard = errors.New("server: no board configured")

// Config wires a Server.
//
// Board     – the live board; the server takes ownership.
// Algorithm – default strategy for /api/algorithm requests naming none.
// Metrics   – registry served on /metrics; nil disables both the endpoint
// and engine instrumentation.
// History   – optional run log; nil disables /api/history.
type Config struct {
	Addr      string
	Board     *grid.Grid
	Diagonal  bool
	Algorithm string
	StepDelay time.Duration
	Logger    *slog.Logger
	Metrics   *prometheus.Registry
	History   *history.Store
}

// Server serves the pathviz API.
type Server struct {
	log      *slog.Logger
	eng      *engine.Engine
	runner   *engine.Runner
	history  *history.Store
	metrics  *prometheus.Registry
	upgrader websocket.Upgrader

	mu        sync.Mutex // guards the fields below
	board     *grid.Grid
	diagonal  bool
	algorithm string

	httpServer *http.Server
}

// New builds a Server from cfg.
func New(cfg Config) (*Server, error) {
	if cfg.Board == nil {
		return nil, ErrNoBoard
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	algorithm := cfg.Algorithm
	if algorithm == "" {
		algorithm = "A*"
	}

	opts := []engine.Option{engine.WithLogger(log)}
	if cfg.Metrics != nil {
		opts = append(opts, engine.WithMetrics(engine.NewMetrics(cfg.Metrics)))
	}
	eng := engine.New(opts...)
	if _, ok := eng.Registry().Lookup(algorithm); !ok {
		return nil, engine.ErrUnknownAlgorithm
	}

	s := &Server{
		log:       log,
		eng:       eng,
		history:   cfg.History,
		metrics:   cfg.Metrics,
		board:     cfg.Board,
		diagonal:  cfg.Diagonal,
		algorithm: algorithm,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.runner = engine.NewRunner(eng,
		engine.WithDelay(cfg.StepDelay),
		engine.WithOnDone(s.finish),
	)
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Handler returns the routed API with CORS headers applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/algorithms", s.handleAlgorithms)
	mux.HandleFunc("GET /api/grid", s.handleGrid)
	mux.HandleFunc("GET /api/grid.png", s.handleGridPNG)
	mux.HandleFunc("POST /api/grid", s.handleSetGrid)
	mux.HandleFunc("POST /api/obstacle", s.handleObstacle)
	mux.HandleFunc("POST /api/start", s.handleSetStart)
	mux.HandleFunc("DELETE /api/start", s.handleUnsetStart)
	mux.HandleFunc("POST /api/goal", s.handleSetGoal)
	mux.HandleFunc("DELETE /api/goal", s.handleUnsetGoal)
	mux.HandleFunc("POST /api/clear", s.handleClear)
	mux.HandleFunc("POST /api/reset", s.handleReset)
	mux.HandleFunc("POST /api/random", s.handleRandom)
	mux.HandleFunc("POST /api/diagonal", s.handleDiagonal)
	mux.HandleFunc("POST /api/algorithm", s.handleAlgorithm)
	mux.HandleFunc("POST /api/stop", s.handleStop)
	mux.HandleFunc("GET /api/result", s.handleResult)
	mux.HandleFunc("POST /api/run", s.handleRun)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /api/stream", s.handleStream)
	if s.metrics != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{}))
	}

	return cors(mux)
}

// Runner exposes the background runner, mainly for tests.
func (s *Server) Runner() *engine.Runner { return s.runner }

// Start serves until ctx is done, then shuts down gracefully and stops any
// running search.
func (s *Server) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	s.runner.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Warn("shutdown failed, closing", slog.String("error", err.Error()))
		return s.httpServer.Close()
	}

	return nil
}

// finish runs on the worker goroutine when a background run completes.
func (s *Server) finish(d engine.Done) {
	s.mu.Lock()
	s.board.AdoptMarks(d.Board)
	diagonal := s.diagonal
	s.mu.Unlock()

	if s.history == nil {
		return
	}
	rec := history.Record{
		RunID:    d.RunID.String(),
		Board:    strings.Join(d.Board.Layout().Rows, "\n"),
		Width:    d.Board.Width,
		Height:   d.Board.Height,
		Diagonal: diagonal,
		Summary:  d.Result.Summary(),
	}
	if err := s.history.Put(rec); err != nil {
		s.log.Warn("run not recorded", slog.String("run", rec.RunID), slog.String("error", err.Error()))
	}
}

// snapshot returns a clone of the live board and the current settings.
func (s *Server) snapshot() (*grid.Grid, bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone(), s.diagonal, s.algorithm
}

// edit applies fn to the live board and answers with the result.
func (s *Server) edit(w http.ResponseWriter, fn func(g *grid.Grid)) {
	s.mu.Lock()
	fn(s.board)
	snap := s.board.Snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

// pathPoints converts a path to [x,y] pairs for JSON.
func pathPoints(path []grid.Point) [][2]int {
	out := make([][2]int, len(path))
	for i, p := range path {
		out[i] = [2]int{p.X, p.Y}
	}
	return out
}

func summaries(results []search.Result) []search.Summary {
	out := make([]search.Summary, len(results))
	for i, r := range results {
		out[i] = r.Summary()
	}
	return out
}
