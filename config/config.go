// Package config holds cityroute's runtime configuration.
//
// Values are layered by viper, lowest precedence first: built-in defaults,
// the YAML config file, CITYROUTE_* environment variables (nested keys use
// underscores, e.g. CITYROUTE_SERVER_ADDR), then command-line flags bound by
// the CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cityroute/gen"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "CITYROUTE"

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full runtime configuration.
type Config struct {
	// Graph is the path of the NODES/ARCS file to load.
	Graph    string         `mapstructure:"graph" yaml:"graph"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// MarshalYAML writes durations as "5s" rather than nanoseconds, matching
// what viper decodes on the way back in.
func (s ServerConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Addr            string `yaml:"addr"`
		ReadTimeout     string `yaml:"read_timeout"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
	}{s.Addr, s.ReadTimeout.String(), s.ShutdownTimeout.String()}, nil
}

// GenerateConfig holds the defaults of `cityroute generate`.
type GenerateConfig struct {
	Rows         int     `mapstructure:"rows" yaml:"rows"`
	Cols         int     `mapstructure:"cols" yaml:"cols"`
	Seed         int64   `mapstructure:"seed" yaml:"seed"`
	Jitter       float64 `mapstructure:"jitter" yaml:"jitter"`
	Spacing      float64 `mapstructure:"spacing" yaml:"spacing"`
	DiagonalProb float64 `mapstructure:"diagonal_prob" yaml:"diagonal_prob"`
}

// GenConfig converts to the generator's Config.
func (g GenerateConfig) GenConfig() gen.Config {
	return gen.Config{
		Rows:         g.Rows,
		Cols:         g.Cols,
		Spacing:      g.Spacing,
		Jitter:       g.Jitter,
		Seed:         g.Seed,
		DiagonalProb: g.DiagonalProb,
	}
}

// Default returns the built-in configuration.
func Default() Config {
	gc := gen.DefaultConfig()

	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Generate: GenerateConfig{
			Rows:         gc.Rows,
			Cols:         gc.Cols,
			Seed:         gc.Seed,
			Jitter:       gc.Jitter,
			Spacing:      gc.Spacing,
			DiagonalProb: gc.DiagonalProb,
		},
	}
}

// SetDefaults registers every key of Default with v, so environment
// variables and Unmarshal see the full key set.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("graph", d.Graph)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("generate.rows", d.Generate.Rows)
	v.SetDefault("generate.cols", d.Generate.Cols)
	v.SetDefault("generate.seed", d.Generate.Seed)
	v.SetDefault("generate.jitter", d.Generate.Jitter)
	v.SetDefault("generate.spacing", d.Generate.Spacing)
	v.SetDefault("generate.diagonal_prob", d.Generate.DiagonalProb)
}

// Load resolves the configuration held by v. If v has a config file set
// it is read first; a missing file is an error.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := v.ConfigFileUsed(); file != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		bad("log.level %q (want debug, info, warn or error)", c.Log.Level)
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		bad("log.format %q (want %s or %s)", c.Log.Format, FormatText, FormatJSON)
	}
	if c.Server.Addr == "" {
		bad("server.addr is empty")
	}
	if c.Server.ReadTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		bad("server timeouts must not be negative")
	}
	g := c.Generate
	if g.Rows < 1 || g.Cols < 1 {
		bad("generate grid %d×%d (each must be ≥ 1)", g.Rows, g.Cols)
	}
	if g.Jitter < 0 || g.Jitter > 0.45 {
		bad("generate.jitter %g outside [0, 0.45]", g.Jitter)
	}
	if !(g.Spacing > 0) {
		bad("generate.spacing %g must be positive", g.Spacing)
	}
	if g.DiagonalProb < 0 || g.DiagonalProb > 1 {
		bad("generate.diagonal_prob %g outside [0, 1]", g.DiagonalProb)
	}

	return errors.Join(errs...)
}

// WriteYAML writes c as a YAML document that Load can read back.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode yaml: %w", err)
	}

	return enc.Close()
}

// NewLogger builds a slog.Logger writing to w. An unparsable level falls
// back to info; Validate rejects it earlier.
func NewLogger(c LogConfig, w io.Writer) *slog.Logger {
	lvl, err := parseLevel(c.Level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(s))

	return lvl, err
}
