package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/config"
)

// app carries state resolved by the root command for its subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	envFile string
	cfg     config.Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "pathviz",
		Short:        "Grid pathfinding engine and visualizer",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "YAML config file")
	f.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded into the environment if present")
	f.Int("width", 40, "board width for generated boards")
	f.Int("height", 25, "board height for generated boards")
	f.String("layout", "", "YAML layout file; overrides width and height")
	f.Float64("density", 0, "random obstacle density in [0,1]")
	f.Int64("seed", 0, "random obstacle seed")
	f.Bool("solvable", false, "clear the fewest obstacles needed to join start and goal")
	f.Bool("diagonal", false, "allow diagonal moves")
	f.String("algorithm", "A*", "default algorithm")
	f.String("log-level", "info", "debug, info, warn or error")
	f.String("log-format", "text", "text or json")
	f.String("history-dir", "", "BadgerDB directory for the run log")
	bindFlags(a.v, root, map[string]string{
		config.KeyWidth:      "width",
		config.KeyHeight:     "height",
		config.KeyLayout:     "layout",
		config.KeyDensity:    "density",
		config.KeySeed:       "seed",
		config.KeySolvable:   "solvable",
		config.KeyDiagonal:   "diagonal",
		config.KeyAlgorithm:  "algorithm",
		config.KeyLogLevel:   "log-level",
		config.KeyLogFormat:  "log-format",
		config.KeyHistoryDir: "history-dir",
	})

	root.AddCommand(newServeCmd(a), newRunCmd(a), newHistoryCmd(a))

	return root
}

// load resolves configuration and the logger. Flags win over env, env over
// the config file, and the config file over defaults.
func (a *app) load(cmd *cobra.Command) error {
	if err := config.LoadDotenv(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	log, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	slog.SetDefault(log)

	return nil
}

// board builds the configured board: a layout file, or an open board with
// start and goal in opposite corners. Random obstacles are added on top and,
// with solvable set, opened up again just enough to join the endpoints.
func (a *app) board() (*grid.Grid, error) {
	var (
		g   *grid.Grid
		err error
	)
	if a.cfg.Layout != "" {
		g, err = grid.LoadLayout(a.cfg.Layout)
	} else {
		g, err = grid.New(a.cfg.Width, a.cfg.Height)
		if err == nil {
			g.SetStart(0, 0)
			g.SetGoal(g.Width-1, g.Height-1)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	g.RandomObstacles(a.cfg.Density, a.cfg.Seed)
	if a.cfg.Solvable {
		if cleared := g.OpenPath(a.cfg.Diagonal); len(cleared) > 0 {
			a.log.Debug("opened board", slog.Int("cleared", len(cleared)))
		}
	}

	return g, nil
}

// bindFlags binds each config key to the named local or persistent flag of
// cmd. A missing flag is a programming error.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		fl := cmd.Flags().Lookup(name)
		if fl == nil {
			fl = cmd.PersistentFlags().Lookup(name)
		}
		if err := v.BindPFlag(key, fl); err != nil {
			panic(fmt.Sprintf("bind %s: %v", name, err))
		}
	}
}
