package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Frame is one update published by a Runner: a board snapshot after a
// relaxation, or the final board with Done set and Summary filled in.
type Frame struct {
	RunID     string          `json:"runId"`
	Seq       int             `json:"seq"`
	Algorithm string          `json:"algorithm"`
	Visited   int             `json:"visited"`
	Frontier  int             `json:"frontier"`
	Grid      grid.Snapshot   `json:"grid"`
	Done      bool            `json:"done"`
	Summary   *search.Summary `json:"summary,omitempty"`
}

// Done describes a completed run. Board is the clone the search ran on,
// marks included.
type Done struct {
	RunID  uuid.UUID
	Result search.Result
	Board  *grid.Grid
}

// Runner runs at most one search at a time on a worker goroutine.
//
// Start clones the board, so the caller may keep editing its own copy while
// the search runs. Starting a new run stops and joins the previous one
// first. The running flag is set before Start returns and cleared after the
// final frame and OnDone callback.
type Runner struct {
	eng     *Engine
	options RunnerOptions

	ctl     sync.Mutex // serializes Start and Stop
	mu      sync.Mutex // guards the fields below
	cancel  context.CancelFunc
	done    chan struct{}
	runID   uuid.UUID
	last    search.Result
	hasLast bool
	subs    map[int]chan Frame
	nextSub int

	running atomic.Bool
}

// NewRunner returns a Runner using eng with opts applied over
// DefaultRunnerOptions.
func NewRunner(eng *Engine, opts ...RunnerOption) *Runner {
	cfg := DefaultRunnerOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Runner{
		eng:     eng,
		options: cfg,
		subs:    make(map[int]chan Frame),
	}
}

// Running reports whether a search is in progress.
func (r *Runner) Running() bool { return r.running.Load() }

// Last returns the result of the most recently completed run.
func (r *Runner) Last() (search.Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.hasLast
}

// RunID returns the id of the current or most recent run, uuid.Nil if none.
func (r *Runner) RunID() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runID
}

// Subscribe registers a frame listener. Frames are dropped for a subscriber
// whose buffer is full. The returned function unsubscribes and closes the
// channel.
func (r *Runner) Subscribe() (<-chan Frame, func()) {
	ch := make(chan Frame, r.options.Buffer)
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = ch
	r.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subs, id)
			r.mu.Unlock()
			close(ch)
		})
	}
}

// Start launches name on a clone of g and returns the run id. Any previous
// run is stopped and joined first. An unknown name returns
// ErrUnknownAlgorithm and leaves the runner idle.
func (r *Runner) Start(g *grid.Grid, name string, allowDiagonal bool) (uuid.UUID, error) {
	if g == nil {
		return uuid.Nil, ErrNilGrid
	}
	s, ok := r.eng.registry.Lookup(name)
	if !ok {
		return uuid.Nil, ErrUnknownAlgorithm
	}

	r.ctl.Lock()
	defer r.ctl.Unlock()
	r.stopLocked()

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	board := g.Clone()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	r.mu.Lock()
	r.cancel, r.done, r.runID = cancel, done, id
	r.mu.Unlock()

	r.running.Store(true)
	r.eng.log.Info("run started",
		slog.String("run", id.String()),
		slog.String("algorithm", s.Name()),
		slog.Bool("diagonal", allowDiagonal),
	)
	go r.work(ctx, id, board, s.Name(), allowDiagonal, done)

	return id, nil
}

// Stop cancels pacing and step frames of the current run and waits for the
// search to return. The final Done frame is still published. It is a no-op
// when idle.
func (r *Runner) Stop() {
	r.ctl.Lock()
	defer r.ctl.Unlock()
	r.stopLocked()
}

// Wait blocks until the current run, if any, has finished.
func (r *Runner) Wait() {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (r *Runner) stopLocked() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel = nil
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (r *Runner) work(ctx context.Context, id uuid.UUID, board *grid.Grid, name string, diagonal bool, done chan struct{}) {
	defer close(done)
	defer r.running.Store(false)

	seq := 0
	step := func(g *grid.Grid, visited, frontier []grid.Point) {
		if ctx.Err() != nil {
			return
		}
		seq++
		r.publish(Frame{
			RunID:     id.String(),
			Seq:       seq,
			Algorithm: name,
			Visited:   len(visited),
			Frontier:  len(frontier),
			Grid:      g.Snapshot(),
		})
		r.pause(ctx)
	}

	res := r.eng.Run(board, name, diagonal, step)

	r.mu.Lock()
	r.last, r.hasLast = res, true
	r.mu.Unlock()

	sum := res.Summary()
	r.publish(Frame{
		RunID:     id.String(),
		Seq:       seq + 1,
		Algorithm: name,
		Visited:   len(res.Visited),
		Frontier:  len(res.Frontier),
		Grid:      board.Snapshot(),
		Done:      true,
		Summary:   &sum,
	})
	if r.options.OnDone != nil {
		r.options.OnDone(Done{RunID: id, Result: res, Board: board})
	}
	r.eng.log.Info("run finished",
		slog.String("run", id.String()),
		slog.String("algorithm", name),
		slog.Bool("success", res.Success),
		slog.Bool("cancelled", ctx.Err() != nil),
	)
}

// pause sleeps for the configured delay or until ctx is done.
func (r *Runner) pause(ctx context.Context) {
	if r.options.Delay <= 0 {
		return
	}
	t := time.NewTimer(r.options.Delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (r *Runner) publish(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range r.subs {
		select {
		case ch <- f:
		default:
		}
	}
}
