package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	uuid "github.com/satori/go.uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/history"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/search"
)

type runFlags struct {
	algorithms []string
	png        string
	scale      int
	show       bool
	color      bool
}

func newRunCmd(a *app) *cobra.Command {
	var rf runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compare algorithms on one board",
		Long: "Run each algorithm on its own copy of the board and print a comparison table.\n" +
			"The board painted by --algorithm can be printed with --show or saved with --png.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.OutOrStdout(), rf)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&rf.algorithms, "algorithms", nil, "algorithms to compare (default all)")
	f.StringVar(&rf.png, "png", "", "save the painted board as a PNG file")
	f.IntVar(&rf.scale, "scale", render.DefaultScale, "PNG pixels per cell")
	f.BoolVar(&rf.show, "show", false, "print the painted board")
	f.BoolVar(&rf.color, "color", false, "color the printed board with ANSI escapes")

	return cmd
}

func (a *app) run(out io.Writer, rf runFlags) error {
	board, err := a.board()
	if err != nil {
		return err
	}
	eng := engine.New(engine.WithLogger(a.log))
	names := rf.algorithms
	if len(names) == 0 {
		names = eng.Algorithms()
	}
	for _, n := range names {
		if _, ok := eng.Registry().Lookup(n); !ok {
			return fmt.Errorf("%w: %q (known: %s)", engine.ErrUnknownAlgorithm, n, strings.Join(eng.Algorithms(), ", "))
		}
	}

	results := eng.Compare(board, names, a.cfg.Diagonal)
	writeTable(out, results)
	if err := a.record(board, results); err != nil {
		return err
	}

	if !rf.show && rf.png == "" {
		return nil
	}
	painted := board.Clone()
	res := eng.Run(painted, a.cfg.Algorithm, a.cfg.Diagonal, nil)
	if rf.show {
		fmt.Fprintf(out, "\n%s:\n", res.Algorithm)
		if rf.color {
			fmt.Fprint(out, render.Text(painted))
		} else {
			fmt.Fprintln(out, painted.String())
		}
	}
	if rf.png != "" {
		if err := render.SavePNG(rf.png, painted, rf.scale, res.Path); err != nil {
			return err
		}
		a.log.Info("board saved", slog.String("file", rf.png))
	}

	return nil
}

// writeTable prints one row per result followed by the winners.
func writeTable(out io.Writer, results []search.Result) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tFOUND\tCOST\tPATH\tEXPANDED\tTIME(µs)\tEFFICIENCY\tRATING")
	for _, r := range results {
		s := r.Summary()
		fmt.Fprintf(tw, "%s\t%t\t%.3f\t%d\t%d\t%d\t%.1f%%\t%s\n",
			s.Algorithm, s.Success, s.Cost, s.PathLength, s.Expanded, s.ElapsedMicros, s.Efficiency, s.Rating)
	}
	_ = tw.Flush()

	if f, ok := engine.Fastest(results); ok {
		fmt.Fprintf(out, "fastest: %s\n", f.Algorithm)
	}
	if f, ok := engine.FewestExpanded(results); ok {
		fmt.Fprintf(out, "fewest expanded: %s\n", f.Algorithm)
	}
	if _, ok := engine.Cheapest(results); !ok {
		fmt.Fprintln(out, "no path found")
	}
}

// record appends results to the run log when a history directory is set.
func (a *app) record(board *grid.Grid, results []search.Result) error {
	if a.cfg.HistoryDir == "" {
		return nil
	}
	store, err := history.Open(a.cfg.HistoryDir, a.log)
	if err != nil {
		return err
	}
	defer store.Close()

	layout := strings.Join(board.Layout().Rows, "\n")
	for _, r := range results {
		id, err := uuid.NewV4()
		if err != nil {
			return err
		}
		err = store.Put(history.Record{
			RunID:    id.String(),
			Board:    layout,
			Width:    board.Width,
			Height:   board.Height,
			Diagonal: a.cfg.Diagonal,
			Summary:  r.Summary(),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.HistoryDir == "" {
				return fmt.Errorf("history: --history-dir is required")
			}
			store, err := history.Open(a.cfg.HistoryDir, a.log)
			if err != nil {
				return err
			}
			defer store.Close()

			recs, err := store.Recent(limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "FINISHED\tALGORITHM\tBOARD\tFOUND\tCOST\tEXPANDED\tRUN")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%t\t%.3f\t%d\t%s\n",
					r.FinishedAt.Format("2006-01-02 15:04:05"), r.Summary.Algorithm,
					r.Width, r.Height, r.Summary.Success, r.Summary.Cost, r.Summary.Expanded, r.RunID)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")

	return cmd
}
