// Package config loads process configuration for cmd/pathviz from defaults,
// an optional YAML file, an optional .env file and PATHVIZ_* environment
// variables, in increasing order of precedence. Command-line flags bound by
// the caller take precedence over all of them.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. PATHVIZ_WIDTH.
const EnvPrefix = "PATHVIZ"

// Keys understood by Load.
const (
	KeyListen     = "listen"
	KeyWidth      = "width"
	KeyHeight     = "height"
	KeyDiagonal   = "diagonal"
	KeyAlgorithm  = "algorithm"
	KeyStepDelay  = "stepDelay"
	KeyLayout     = "layout"
	KeyDensity    = "density"
	KeySeed       = "seed"
	KeySolvable   = "solvable"
	KeyLogLevel   = "logLevel"
	KeyLogFormat  = "logFormat"
	KeyMetrics    = "metrics"
	KeyHistoryDir = "historyDir"
)

// Sentinel errors returned by Load and Validate.
var (
	ErrInvalid    = errors.New("config: invalid value")
	ErrReadFile   = errors.New("config: cannot read config file")
	ErrReadDotenv = errors.New("config: cannot read env file")
)

// Config is the resolved process configuration.
type Config struct {
	Listen     string        `mapstructure:"listen"`
	Width      int           `mapstructure:"width"`
	Height     int           `mapstructure:"height"`
	Diagonal   bool          `mapstructure:"diagonal"`
	Algorithm  string        `mapstructure:"algorithm"`
	StepDelay  time.Duration `mapstructure:"stepDelay"`
	Layout     string        `mapstructure:"layout"`
	Density    float64       `mapstructure:"density"`
	Seed       int64         `mapstructure:"seed"`
	Solvable   bool          `mapstructure:"solvable"`
	LogLevel   string        `mapstructure:"logLevel"`
	LogFormat  string        `mapstructure:"logFormat"`
	Metrics    bool          `mapstructure:"metrics"`
	HistoryDir string        `mapstructure:"historyDir"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyListen, ":8080")
	v.SetDefault(KeyWidth, 40)
	v.SetDefault(KeyHeight, 25)
	v.SetDefault(KeyDiagonal, false)
	v.SetDefault(KeyAlgorithm, "A*")
	v.SetDefault(KeyStepDelay, 10*time.Millisecond)
	v.SetDefault(KeyLayout, "")
	v.SetDefault(KeyDensity, 0.0)
	v.SetDefault(KeySeed, int64(0))
	v.SetDefault(KeySolvable, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyMetrics, true)
	v.SetDefault(KeyHistoryDir, "")
}

// Load resolves the configuration held by v. path names an optional YAML
// file; an empty path skips it. Env variables are bound with EnvPrefix.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w %q: %v", ErrReadFile, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadDotenv loads KEY=VALUE pairs from each file into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotenv(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%w %q: %v", ErrReadDotenv, p, err)
		}
	}
	return nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: board size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.StepDelay < 0:
		return fmt.Errorf("%w: stepDelay %s", ErrInvalid, c.StepDelay)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %g not in [0,1]", ErrInvalid, c.Density)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: logFormat %q", ErrInvalid, c.LogFormat)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

// Logger builds the process logger writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: logLevel %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}
