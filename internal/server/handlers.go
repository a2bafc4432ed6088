package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	uuid "github.com/satori/go.uuid"

	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/search"
)

// errBadBody marks a request body that could not be decoded.
var errBadBody = errors.New("server: malformed request body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// isJSON reports whether r carries a JSON body.
func isJSON(r *http.Request) bool {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mt == "application/json"
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("%w: %v", errBadBody, err)
}

type coordRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

// coords reads x and y from a JSON body or from form values. ok is false
// when either is missing or not an integer.
func coords(r *http.Request) (x, y int, ok bool, err error) {
	if isJSON(r) {
		var req coordRequest
		if err := decode(r, &req); err != nil {
			return 0, 0, false, err
		}
		if req.X == nil || req.Y == nil {
			return 0, 0, false, nil
		}
		return *req.X, *req.Y, true, nil
	}

	if err := r.ParseForm(); err != nil {
		return 0, 0, false, fmt.Errorf("%w: %v", errBadBody, err)
	}
	x, errX := strconv.Atoi(r.FormValue("x"))
	y, errY := strconv.Atoi(r.FormValue("y"))
	if errX != nil || errY != nil {
		return 0, 0, false, nil
	}
	return x, y, true, nil
}

// editAt decodes coordinates and applies fn when they are well-formed.
func (s *Server) editAt(w http.ResponseWriter, r *http.Request, fn func(g *grid.Grid, x, y int)) {
	x, y, ok, err := coords(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.edit(w, func(g *grid.Grid) {
		if ok {
			fn(g, x, y)
		}
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"running": s.runner.Running(),
	})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, _ *http.Request) {
	_, diagonal, current := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"algorithms": s.eng.Algorithms(),
		"current":    current,
		"diagonal":   diagonal,
	})
}

func (s *Server) handleGrid(w http.ResponseWriter, _ *http.Request) {
	s.edit(w, func(*grid.Grid) {})
}

// handleGridPNG renders the live board. Query: scale (pixels per cell).
func (s *Server) handleGridPNG(w http.ResponseWriter, r *http.Request) {
	scale := render.DefaultScale
	if v, err := strconv.Atoi(r.URL.Query().Get("scale")); err == nil && v > 0 && v <= 64 {
		scale = v
	}
	g, _, _ := s.snapshot()

	var path []grid.Point
	if res, ok := s.runner.Last(); ok && res.Success {
		path = res.Path
	}
	w.Header().Set("Content-Type", "image/png")
	if err := render.PNG(w, g, scale, path); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleObstacle(w http.ResponseWriter, r *http.Request) {
	s.editAt(w, r, (*grid.Grid).ToggleObstacle)
}

func (s *Server) handleSetStart(w http.ResponseWriter, r *http.Request) {
	s.editAt(w, r, (*grid.Grid).SetStart)
}

func (s *Server) handleSetGoal(w http.ResponseWriter, r *http.Request) {
	s.editAt(w, r, (*grid.Grid).SetGoal)
}

func (s *Server) handleUnsetStart(w http.ResponseWriter, _ *http.Request) {
	s.edit(w, (*grid.Grid).UnsetStart)
}

func (s *Server) handleUnsetGoal(w http.ResponseWriter, _ *http.Request) {
	s.edit(w, (*grid.Grid).UnsetGoal)
}

func (s *Server) handleClear(w http.ResponseWriter, _ *http.Request) {
	s.edit(w, (*grid.Grid).ClearPath)
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.edit(w, (*grid.Grid).Clear)
}

type randomRequest struct {
	Density  *float64 `json:"density"`
	Seed     int64    `json:"seed"`
	Solvable bool     `json:"solvable"`
}

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	var req randomRequest
	if err := decode(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	density := DefaultDensity
	if req.Density != nil {
		density = *req.Density
	}
	s.edit(w, func(g *grid.Grid) {
		g.RandomObstacles(density, req.Seed)
		if req.Solvable {
			g.OpenPath(s.diagonal)
		}
	})
}

type diagonalRequest struct {
	Enabled bool `json:"enabled"`
}

func (s *Server) handleDiagonal(w http.ResponseWriter, r *http.Request) {
	var req diagonalRequest
	if err := decode(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	s.diagonal = req.Enabled
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]bool{"diagonal": req.Enabled})
}

type algorithmRequest struct {
	Algorithm string `json:"algorithm"`
}

// handleAlgorithm starts a background run on a copy of the live board. The
// live board's marks are cleared now and replaced by the run's marks when
// it finishes.
func (s *Server) handleAlgorithm(w http.ResponseWriter, r *http.Request) {
	var req algorithmRequest
	if isJSON(r) {
		if err := decode(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		req.Algorithm = r.FormValue("algorithm")
	}

	// The previous run's completion repaints the live board under s.mu, so
	// join it before clearing marks.
	s.runner.Stop()

	s.mu.Lock()
	if req.Algorithm == "" {
		req.Algorithm = s.algorithm
	}
	if _, ok := s.eng.Registry().Lookup(req.Algorithm); !ok {
		s.mu.Unlock()
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("unknown algorithm %q", req.Algorithm))
		return
	}
	s.algorithm = req.Algorithm
	s.board.ResetTransient()
	board, diagonal := s.board.Clone(), s.diagonal
	s.mu.Unlock()

	id, err := s.runner.Start(board, req.Algorithm, diagonal)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "started",
		"runId":     id.String(),
		"algorithm": req.Algorithm,
	})
}

func (s *Server) handleStop(w http.ResponseWriter, _ *http.Request) {
	s.runner.Stop()
	writeJSON(w, http.StatusOK, map[string]string{"status": "stopped"})
}

type resultResponse struct {
	RunID   string          `json:"runId,omitempty"`
	Running bool            `json:"running"`
	Summary *search.Summary `json:"summary,omitempty"`
	Path    [][2]int        `json:"path,omitempty"`
}

func (s *Server) handleResult(w http.ResponseWriter, _ *http.Request) {
	resp := resultResponse{Running: s.runner.Running()}
	if id := s.runner.RunID(); id != uuid.Nil {
		resp.RunID = id.String()
	}
	if res, ok := s.runner.Last(); ok {
		sum := res.Summary()
		resp.Summary = &sum
		resp.Path = pathPoints(res.Path)
	}
	writeJSON(w, http.StatusOK, resp)
}

// maxBoardCells bounds boards posted by clients.
const maxBoardCells = 1 << 20

type cellRequest struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Type string `json:"type"`
}

// boardRequest is a posted board: dimensions plus the non-empty cells.
type boardRequest struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Cells  []cellRequest `json:"cells"`
}

var cellRoles = map[string]grid.CellType{
	"empty":    grid.Empty,
	"obstacle": grid.Obstacle,
	"wall":     grid.Obstacle,
	"start":    grid.Start,
	"goal":     grid.Goal,
}

// build constructs the posted board. Cells with an unknown type or outside
// the board are ignored; later cells win.
func (b *boardRequest) build() (*grid.Grid, error) {
	if b.Width > 0 && b.Height > 0 && b.Width*b.Height > maxBoardCells {
		return nil, fmt.Errorf("%w: board of %dx%d exceeds %d cells", errBadBody, b.Width, b.Height, maxBoardCells)
	}
	g, err := grid.New(b.Width, b.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadBody, err)
	}
	for _, c := range b.Cells {
		if role, ok := cellRoles[strings.ToLower(c.Type)]; ok {
			g.SetCellRole(c.X, c.Y, role)
		}
	}
	return g, nil
}

// handleSetGrid replaces the live board with a posted one. Any running
// search is stopped first.
func (s *Server) handleSetGrid(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decode(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	g, err := req.build()
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.runner.Stop()
	s.mu.Lock()
	s.board = g
	s.mu.Unlock()
	s.edit(w, func(*grid.Grid) {})
}

type runRequest struct {
	Algorithms    []string      `json:"algorithms"`
	Diagonal      *bool         `json:"diagonal"`
	AllowDiagonal *bool         `json:"allowDiagonal"`
	Grid          *boardRequest `json:"grid"`
}

// runResult is one strategy's summary plus its traces.
type runResult struct {
	search.Summary
	Path     [][2]int `json:"path"`
	Visited  [][2]int `json:"visited"`
	Frontier [][2]int `json:"frontier"`
}

func runResults(results []search.Result) []runResult {
	sums := summaries(results)
	out := make([]runResult, len(results))
	for i, r := range results {
		out[i] = runResult{
			Summary:  sums[i],
			Path:     pathPoints(r.Path),
			Visited:  pathPoints(r.Visited),
			Frontier: pathPoints(r.Frontier),
		}
	}
	return out
}

// handleRun compares strategies synchronously, on the posted grid when one
// is given and on a copy of the live board otherwise. An empty list runs
// every registered strategy.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := decode(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	board, diagonal, _ := s.snapshot()
	if req.Grid != nil {
		g, err := req.Grid.build()
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		board = g
	}
	switch {
	case req.Diagonal != nil:
		diagonal = *req.Diagonal
	case req.AllowDiagonal != nil:
		diagonal = *req.AllowDiagonal
	}
	names := req.Algorithms
	if len(names) == 0 {
		names = s.eng.Algorithms()
	}
	for _, n := range names {
		if _, ok := s.eng.Registry().Lookup(n); !ok {
			writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("%v: %q", engine.ErrUnknownAlgorithm, n))
			return
		}
	}

	results := s.eng.Compare(board, names, diagonal)
	resp := map[string]any{"results": runResults(results)}
	if f, ok := engine.Fastest(results); ok {
		resp["fastest"] = f.Algorithm
	}
	if f, ok := engine.FewestExpanded(results); ok {
		resp["fewestExpanded"] = f.Algorithm
	}
	if c, ok := engine.Cheapest(results); ok {
		resp["cheapest"] = c.Algorithm
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleHistory lists recent runs. Query: limit (default 20).
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSONError(w, http.StatusNotImplemented, "run history is disabled")
		return
	}
	limit := 20
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	recs, err := s.history.Recent(limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, recs)
}
