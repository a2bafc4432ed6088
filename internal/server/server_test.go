package server_test

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/history"
	"github.com/katalvlaran/pathviz/internal/server"
	"github.com/katalvlaran/pathviz/search"
)

type ServerSuite struct {
	suite.Suite
	srv     *server.Server
	http    *httptest.Server
	history *history.Store
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	store, err := history.Open("", nil)
	s.Require().NoError(err)
	s.history = store

	s.srv, err = server.New(server.Config{
		Board: grid.MustParse(
			"S..",
			".#.",
			"..G",
		),
		Algorithm: "Dijkstra",
		Metrics:   prometheus.NewRegistry(),
		History:   store,
	})
	s.Require().NoError(err)
	s.http = httptest.NewServer(s.srv.Handler())
}

func (s *ServerSuite) TearDownTest() {
	s.srv.Runner().Stop()
	s.http.Close()
	s.Require().NoError(s.history.Close())
}

// do sends a request and returns the status and body.
func (s *ServerSuite) do(method, path, contentType, body string) (int, []byte) {
	req, err := http.NewRequest(method, s.http.URL+path, strings.NewReader(body))
	s.Require().NoError(err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, data
}

func (s *ServerSuite) postJSON(path, body string) (int, []byte) {
	return s.do(http.MethodPost, path, "application/json", body)
}

func (s *ServerSuite) board() grid.Snapshot {
	code, data := s.do(http.MethodGet, "/api/grid", "", "")
	s.Require().Equal(http.StatusOK, code)
	var snap grid.Snapshot
	s.Require().NoError(json.Unmarshal(data, &snap))
	return snap
}

// runAndWait starts a background run and waits for it to finish.
func (s *ServerSuite) runAndWait(name string) {
	code, data := s.postJSON("/api/algorithm", `{"algorithm":"`+name+`"}`)
	s.Require().Equal(http.StatusOK, code, string(data))
	s.srv.Runner().Wait()
}

func (s *ServerSuite) TestNew_Errors() {
	_, err := server.New(server.Config{})
	s.ErrorIs(err, server.ErrNoBoard)

	_, err = server.New(server.Config{Board: grid.MustParse("S.G"), Algorithm: "bogus"})
	s.ErrorIs(err, engine.ErrUnknownAlgorithm)
}

func (s *ServerSuite) TestHealthAndAlgorithms() {
	code, data := s.do(http.MethodGet, "/api/health", "", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"status":"ok","running":false}`, string(data))

	code, data = s.do(http.MethodGet, "/api/algorithms", "", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"algorithms":["A*","Dijkstra","D* Lite","BMSSP"],"current":"Dijkstra","diagonal":false}`, string(data))
}

func (s *ServerSuite) TestGrid() {
	snap := s.board()
	s.Equal(3, snap.Width)
	s.Equal([2]int{0, 0}, snap.Start)
	s.Equal([2]int{2, 2}, snap.Goal)
	s.Equal(grid.Obstacle, snap.Cells[1][1])
}

func (s *ServerSuite) TestObstacle_JSONAndForm() {
	code, _ := s.postJSON("/api/obstacle", `{"x":1,"y":0}`)
	s.Equal(http.StatusOK, code)
	s.Equal(grid.Obstacle, s.board().Cells[0][1])

	form := url.Values{"x": {"1"}, "y": {"0"}}.Encode()
	code, _ = s.do(http.MethodPost, "/api/obstacle", "application/x-www-form-urlencoded", form)
	s.Equal(http.StatusOK, code)
	s.Equal(grid.Empty, s.board().Cells[0][1])
}

func (s *ServerSuite) TestObstacle_MalformedIsNoOp() {
	before := s.board()
	for _, body := range []string{`{"x":9,"y":9}`, `{"x":1}`, `{}`, ``} {
		code, _ := s.postJSON("/api/obstacle", body)
		s.Equal(http.StatusOK, code, body)
	}
	code, _ := s.do(http.MethodPost, "/api/obstacle", "application/x-www-form-urlencoded", "x=a&y=1")
	s.Equal(http.StatusOK, code)
	s.Equal(before, s.board())
}

func (s *ServerSuite) TestBadJSON() {
	for _, path := range []string{"/api/obstacle", "/api/random", "/api/run", "/api/algorithm", "/api/diagonal"} {
		code, data := s.postJSON(path, `{"x":`)
		s.Equal(http.StatusBadRequest, code, path)
		s.Contains(string(data), "error", path)
	}
}

func (s *ServerSuite) TestEndpoints() {
	code, _ := s.postJSON("/api/start", `{"x":2,"y":0}`)
	s.Equal(http.StatusOK, code)
	s.Equal([2]int{2, 0}, s.board().Start)

	code, _ = s.do(http.MethodDelete, "/api/goal", "", "")
	s.Equal(http.StatusOK, code)
	s.Equal([2]int{-1, -1}, s.board().Goal)

	code, _ = s.postJSON("/api/goal", `{"x":1,"y":1}`)
	s.Equal(http.StatusOK, code)
	s.Equal([2]int{-1, -1}, s.board().Goal, "goal cannot sit on an obstacle")

	code, _ = s.do(http.MethodDelete, "/api/start", "", "")
	s.Equal(http.StatusOK, code)
	s.Equal([2]int{-1, -1}, s.board().Start)
}

func (s *ServerSuite) TestRandomAndReset() {
	code, _ := s.postJSON("/api/random", `{"density":1,"seed":3}`)
	s.Equal(http.StatusOK, code)
	snap := s.board()
	s.Equal(grid.Start, snap.Cells[0][0])
	s.Equal(grid.Obstacle, snap.Cells[0][1])
	s.Equal(grid.Goal, snap.Cells[2][2])

	code, _ = s.postJSON("/api/reset", "")
	s.Equal(http.StatusOK, code)
	snap = s.board()
	s.Equal([2]int{-1, -1}, snap.Start)
	for _, row := range snap.Cells {
		for _, c := range row {
			s.Equal(grid.Empty, c)
		}
	}
}

func (s *ServerSuite) TestRandom_Solvable() {
	code, _ := s.postJSON("/api/random", `{"density":1,"solvable":true}`)
	s.Require().Equal(http.StatusOK, code)

	s.runAndWait("A*")
	res, ok := s.srv.Runner().Last()
	s.Require().True(ok)
	s.True(res.Success, "a route was opened through the filled board")
}

func (s *ServerSuite) TestAlgorithm_RunsInBackground() {
	s.runAndWait("dijkstra")

	code, data := s.do(http.MethodGet, "/api/result", "", "")
	s.Require().Equal(http.StatusOK, code)
	var resp struct {
		RunID   string         `json:"runId"`
		Running bool           `json:"running"`
		Summary search.Summary `json:"summary"`
		Path    [][2]int       `json:"path"`
	}
	s.Require().NoError(json.Unmarshal(data, &resp))
	s.NotEmpty(resp.RunID)
	s.False(resp.Running)
	s.True(resp.Summary.Success)
	s.Equal(4.0, resp.Summary.Cost)
	s.Equal([][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, resp.Path)

	snap := s.board()
	s.Equal(grid.Path, snap.Cells[0][1], "marks adopted from the finished run")
	s.Equal(grid.Visited, snap.Cells[1][0])

	code, _ = s.postJSON("/api/clear", "")
	s.Equal(http.StatusOK, code)
	s.Equal(grid.Empty, s.board().Cells[0][1])

	code, data = s.do(http.MethodGet, "/api/algorithms", "", "")
	s.Equal(http.StatusOK, code)
	s.Contains(string(data), `"current":"dijkstra"`)
}

func (s *ServerSuite) TestAlgorithm_FormAndDefault() {
	code, _ := s.do(http.MethodPost, "/api/algorithm", "application/x-www-form-urlencoded", "algorithm=astar")
	s.Equal(http.StatusOK, code)
	s.srv.Runner().Wait()
	res, ok := s.srv.Runner().Last()
	s.Require().True(ok)
	s.Equal("A*", res.Algorithm)

	code, _ = s.postJSON("/api/algorithm", "")
	s.Equal(http.StatusOK, code, "empty body reuses the current algorithm")
	s.srv.Runner().Wait()
	res, _ = s.srv.Runner().Last()
	s.Equal("A*", res.Algorithm)
}

func (s *ServerSuite) TestAlgorithm_Unknown() {
	code, data := s.postJSON("/api/algorithm", `{"algorithm":"bfs"}`)
	s.Equal(http.StatusBadRequest, code)
	s.Contains(string(data), "unknown algorithm")
	s.False(s.srv.Runner().Running())
}

func (s *ServerSuite) TestStop_Idle() {
	code, data := s.postJSON("/api/stop", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"status":"stopped"}`, string(data))
}

func (s *ServerSuite) TestDiagonal() {
	code, data := s.postJSON("/api/diagonal", `{"enabled":true}`)
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"diagonal":true}`, string(data))

	s.runAndWait("A*")
	res, _ := s.srv.Runner().Last()
	s.Len(res.Path, 4, "diagonal moves shorten the route")
}

func (s *ServerSuite) TestRun_Compare() {
	code, data := s.postJSON("/api/run", "")
	s.Require().Equal(http.StatusOK, code)
	var resp struct {
		Results        []search.Summary `json:"results"`
		Cheapest       string           `json:"cheapest"`
		FewestExpanded string           `json:"fewestExpanded"`
		Fastest        string           `json:"fastest"`
	}
	s.Require().NoError(json.Unmarshal(data, &resp))
	s.Require().Len(resp.Results, 4)
	for _, r := range resp.Results {
		s.True(r.Success, r.Algorithm)
		s.Equal(4.0, r.Cost, r.Algorithm)
	}
	s.NotEmpty(resp.Cheapest)
	s.NotEmpty(resp.FewestExpanded)
	s.NotEmpty(resp.Fastest)

	s.Equal(grid.Empty, s.board().Cells[0][1], "comparison leaves the live board unpainted")

	code, _ = s.postJSON("/api/run", `{"algorithms":["A*","nope"]}`)
	s.Equal(http.StatusBadRequest, code)
}

func (s *ServerSuite) TestAlgorithm_RestartLeavesBoardUnpainted() {
	srv, err := server.New(server.Config{
		Board:     grid.MustParse("S...", ".##.", "...G"),
		StepDelay: 200 * time.Millisecond,
	})
	s.Require().NoError(err)
	h := srv.Handler()
	defer srv.Runner().Stop()

	post := func(body string) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/algorithm", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		h.ServeHTTP(rec, req)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	}
	post(`{"algorithm":"Dijkstra"}`)
	post(`{"algorithm":"A*"}`)
	s.Require().True(srv.Runner().Running(), "second run is still pacing")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/grid", nil))
	var snap grid.Snapshot
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &snap))
	for y, row := range snap.Cells {
		for x, c := range row {
			s.False(c.IsMark(), "cell (%d,%d) kept mark %v from the stopped run", x, y, c)
		}
	}
}

func (s *ServerSuite) TestRun_PostedGridAndTraces() {
	body := `{
		"algorithms": ["A*", "Dijkstra"],
		"allowDiagonal": false,
		"grid": {
			"width": 3, "height": 2,
			"cells": [
				{"x":0,"y":0,"type":"start"},
				{"x":1,"y":0,"type":"obstacle"},
				{"x":2,"y":0,"type":"goal"},
				{"x":9,"y":9,"type":"obstacle"},
				{"x":1,"y":1,"type":"lava"}
			]
		}
	}`
	code, data := s.postJSON("/api/run", body)
	s.Require().Equal(http.StatusOK, code, string(data))
	var resp struct {
		Results []struct {
			search.Summary
			Path     [][2]int `json:"path"`
			Visited  [][2]int `json:"visited"`
			Frontier [][2]int `json:"frontier"`
		} `json:"results"`
	}
	s.Require().NoError(json.Unmarshal(data, &resp))
	s.Require().Len(resp.Results, 2)
	for _, r := range resp.Results {
		s.True(r.Success, r.Algorithm)
		s.Equal(4.0, r.Cost, r.Algorithm)
		s.Equal([][2]int{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 0}}, r.Path, r.Algorithm)
		s.Equal([2]int{0, 0}, r.Visited[0], r.Algorithm)
		s.Len(r.Visited, r.Expanded, r.Algorithm)
		s.NotEmpty(r.Frontier, r.Algorithm)
	}

	s.Equal(3, s.board().Height, "posted grid leaves the live board alone")

	code, _ = s.postJSON("/api/run", `{"grid":{"width":0,"height":2}}`)
	s.Equal(http.StatusBadRequest, code)
}

func (s *ServerSuite) TestRun_TracesOnLiveBoard() {
	code, data := s.postJSON("/api/run", `{"algorithms":["Dijkstra"]}`)
	s.Require().Equal(http.StatusOK, code)
	s.Contains(string(data), `"path":[[0,0],[1,0],[2,0],[2,1],[2,2]]`)
	s.Contains(string(data), `"visited":[[0,0],`)
}

func (s *ServerSuite) TestSetGrid() {
	code, data := s.postJSON("/api/grid", `{"width":4,"height":1,"cells":[
		{"x":0,"y":0,"type":"start"},
		{"x":3,"y":0,"type":"goal"},
		{"x":2,"y":0,"type":"wall"}
	]}`)
	s.Require().Equal(http.StatusOK, code, string(data))
	var snap grid.Snapshot
	s.Require().NoError(json.Unmarshal(data, &snap))
	s.Equal(4, snap.Width)
	s.Equal(1, snap.Height)
	s.Equal([2]int{0, 0}, snap.Start)
	s.Equal([2]int{3, 0}, snap.Goal)
	s.Equal(grid.Obstacle, snap.Cells[0][2])

	s.runAndWait("A*")
	res, ok := s.srv.Runner().Last()
	s.Require().True(ok)
	s.False(res.Success, "the wall cuts the only route")

	code, _ = s.postJSON("/api/grid", `{"width":-1,"height":3}`)
	s.Equal(http.StatusBadRequest, code)
	code, _ = s.postJSON("/api/grid", `{"width":2048,"height":2048}`)
	s.Equal(http.StatusBadRequest, code)
	code, _ = s.postJSON("/api/grid", `{"width":`)
	s.Equal(http.StatusBadRequest, code)
	s.Equal(4, s.board().Width, "rejected posts keep the board")
}

func (s *ServerSuite) TestHistory() {
	s.runAndWait("BMSSP")

	code, data := s.do(http.MethodGet, "/api/history?limit=5", "", "")
	s.Require().Equal(http.StatusOK, code)
	var recs []history.Record
	s.Require().NoError(json.Unmarshal(data, &recs))
	s.Require().Len(recs, 1)
	s.Equal("BMSSP", recs[0].Summary.Algorithm)
	s.Equal("S..\n.#.\n..G", recs[0].Board)
	s.Equal(s.srv.Runner().RunID().String(), recs[0].RunID)
}

func (s *ServerSuite) TestHistory_Disabled() {
	srv, err := server.New(server.Config{Board: grid.MustParse("S.G")})
	s.Require().NoError(err)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history", nil))
	s.Equal(http.StatusNotImplemented, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Equal(http.StatusNotFound, rec.Code, "no registry, no metrics endpoint")
}

func (s *ServerSuite) TestMetrics() {
	s.runAndWait("A*")
	code, data := s.do(http.MethodGet, "/metrics", "", "")
	s.Equal(http.StatusOK, code)
	s.Contains(string(data), `pathviz_search_runs_total{algorithm="A*",success="true"} 1`)
}

func (s *ServerSuite) TestGridPNG() {
	s.runAndWait("A*")
	resp, err := http.Get(s.http.URL + "/api/grid.png?scale=10")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal("image/png", resp.Header.Get("Content-Type"))

	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	img, err := png.Decode(bytes.NewReader(data))
	s.Require().NoError(err)
	s.Equal(30, img.Bounds().Dx())
}

func (s *ServerSuite) TestCORS() {
	req, err := http.NewRequest(http.MethodOptions, s.http.URL+"/api/obstacle", nil)
	s.Require().NoError(err)
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusNoContent, resp.StatusCode)
	s.Equal("*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func (s *ServerSuite) TestStream() {
	wsURL := "ws" + strings.TrimPrefix(s.http.URL, "http") + "/api/stream"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	s.Require().NoError(err)
	defer conn.Close()
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))

	var hello engine.Frame
	s.Require().NoError(conn.ReadJSON(&hello))
	s.Equal(0, hello.Seq)
	s.True(hello.Done)
	s.Equal(3, hello.Grid.Width)

	code, _ := s.postJSON("/api/algorithm", `{"algorithm":"A*"}`)
	s.Require().Equal(http.StatusOK, code)

	steps := 0
	for {
		var f engine.Frame
		s.Require().NoError(conn.ReadJSON(&f))
		s.Equal("A*", f.Algorithm)
		if f.Done {
			s.Require().NotNil(f.Summary)
			s.True(f.Summary.Success)
			s.Equal(steps+1, f.Seq)
			break
		}
		steps++
		s.Equal(steps, f.Seq)
	}
	s.Positive(steps)
}
