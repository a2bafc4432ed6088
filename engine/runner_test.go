package engine_test

import (
	"sync"
	"testing"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/searchtest"
)

// RunnerSuite groups tests for the asynchronous Runner.
type RunnerSuite struct {
	suite.Suite
	eng *engine.Engine
}

func (s *RunnerSuite) SetupTest() {
	s.eng = engine.New()
}

// TestRunToCompletion: frames arrive in order and the last one is Done.
func (s *RunnerSuite) TestRunToCompletion() {
	r := engine.NewRunner(s.eng, engine.WithDelay(0), engine.WithBuffer(1024))
	frames, unsubscribe := r.Subscribe()
	defer unsubscribe()

	live := searchtest.Wall5()
	id, err := r.Start(live, "Dijkstra", false)
	require.NoError(s.T(), err)
	require.NotEqual(s.T(), uuid.Nil, id)
	r.Wait()
	s.False(r.Running())

	res, ok := r.Last()
	s.True(ok)
	s.True(res.Success)
	s.Equal(8.0, res.Cost)
	s.Equal(id, r.RunID())

	var last engine.Frame
	seq := 0
	for len(frames) > 0 {
		f := <-frames
		s.Equal(seq+1, f.Seq)
		s.Equal(id.String(), f.RunID)
		seq = f.Seq
		last = f
	}
	s.True(last.Done)
	s.Require().NotNil(last.Summary)
	s.Equal(9, last.Summary.PathLength)
	s.Equal(len(res.Frontier)+1, last.Seq, "one frame per relaxation plus the final one")

	s.Equal([]string{"S.#..", "..#..", "..#..", "..#..", "....G"}, live.Rows(), "the caller's board is not painted")
}

// TestOnDoneAdoptsMarks: the completion callback receives the searched clone.
func (s *RunnerSuite) TestOnDoneAdoptsMarks() {
	live := searchtest.Open5()
	var (
		mu  sync.Mutex
		got engine.Done
	)
	r := engine.NewRunner(s.eng, engine.WithDelay(0), engine.WithOnDone(func(d engine.Done) {
		mu.Lock()
		defer mu.Unlock()
		got = d
		live.AdoptMarks(d.Board)
	}))

	id, err := r.Start(live, "A*", false)
	s.Require().NoError(err)
	r.Wait()

	mu.Lock()
	defer mu.Unlock()
	s.Equal(id, got.RunID)
	s.True(got.Result.Success)
	for _, p := range got.Result.Path[1 : len(got.Result.Path)-1] {
		s.Equal(grid.Path, live.Type(p.X, p.Y))
	}
}

// TestStopCancelsPacing: a long delay does not hold Stop hostage.
func (s *RunnerSuite) TestStopCancelsPacing() {
	r := engine.NewRunner(s.eng, engine.WithDelay(time.Hour))
	_, err := r.Start(searchtest.Open5(), "BMSSP", false)
	s.Require().NoError(err)
	s.True(r.Running())

	stopped := make(chan struct{})
	go func() {
		r.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		s.FailNow("Stop did not return")
	}
	s.False(r.Running())

	res, ok := r.Last()
	s.True(ok)
	s.True(res.Success, "the search itself still runs to completion")
}

// TestStartReplacesRun: a second Start joins the first run before launching.
func (s *RunnerSuite) TestStartReplacesRun() {
	r := engine.NewRunner(s.eng, engine.WithDelay(time.Hour))
	first, err := r.Start(searchtest.Open5(), "A*", false)
	s.Require().NoError(err)

	second, err := r.Start(searchtest.Wall5(), "D* Lite", false)
	s.Require().NoError(err)
	s.NotEqual(first, second)
	s.Equal(second, r.RunID())

	r.Stop()
	res, ok := r.Last()
	s.True(ok)
	s.Equal("D* Lite", res.Algorithm)
}

// TestStartErrors: bad input leaves the runner idle.
func (s *RunnerSuite) TestStartErrors() {
	r := engine.NewRunner(s.eng)

	_, err := r.Start(nil, "A*", false)
	s.ErrorIs(err, engine.ErrNilGrid)

	_, err = r.Start(searchtest.Open5(), "Floyd", false)
	s.ErrorIs(err, engine.ErrUnknownAlgorithm)

	s.False(r.Running())
	_, ok := r.Last()
	s.False(ok)
	r.Stop()
	r.Wait()
}

// TestUnsubscribe closes the channel and tolerates repeated calls.
func (s *RunnerSuite) TestUnsubscribe() {
	r := engine.NewRunner(s.eng, engine.WithDelay(0))
	frames, unsubscribe := r.Subscribe()
	unsubscribe()
	unsubscribe()

	_, open := <-frames
	s.False(open)

	_, err := r.Start(searchtest.Open5(), "A*", true)
	s.Require().NoError(err)
	r.Wait()
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}
