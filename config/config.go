// Package config loads gridview configuration with viper: built-in defaults,
// then an optional YAML file, then TACGRID_* environment variables, then
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/tacgrid/logging"
	"github.com/katalvlaran/tacgrid/pathfinding"
	"github.com/katalvlaran/tacgrid/physics"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig indicates a configuration value that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is prepended to environment variable names:
// pathfinding.open_set is read from TACGRID_PATHFINDING_OPEN_SET.
const EnvPrefix = "TACGRID"

// Config is the full gridview configuration.
type Config struct {
	Level       string      `mapstructure:"level"`
	Log         Log         `mapstructure:"log"`
	Pathfinding Pathfinding `mapstructure:"pathfinding"`
	View        View        `mapstructure:"view"`
}

// Log configures the process logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Pathfinding configures the engine.
type Pathfinding struct {
	ProbeDistance  float64  `mapstructure:"probe_distance"`
	ObstacleLayers []string `mapstructure:"obstacle_layers"`
	OpenSet        string   `mapstructure:"open_set"`
}

// View configures the debug viewer.
type View struct {
	ShowExplored bool `mapstructure:"show_explored"`
	Watch        bool `mapstructure:"watch"`
}

// flag name → config key
var flagKeys = map[string]string{
	"level":           "level",
	"log-level":       "log.level",
	"log-format":      "log.format",
	"probe-distance":  "pathfinding.probe_distance",
	"obstacle-layers": "pathfinding.obstacle_layers",
	"open-set":        "pathfinding.open_set",
	"show-explored":   "view.show_explored",
	"watch":           "view.watch",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("level", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("pathfinding.probe_distance", pathfinding.DefaultProbeDistance)
	v.SetDefault("pathfinding.obstacle_layers", []string{"obstacles"})
	v.SetDefault("pathfinding.open_set", pathfinding.OpenSetLinear.String())
	v.SetDefault("view.show_explored", true)
	v.SetDefault("view.watch", true)
}

// RegisterFlags adds the configuration flags to fs. Their defaults match the
// built-in defaults, so an unset flag never overrides a file or environment
// value.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "path to a YAML configuration file")
	fs.StringP("level", "l", "", "path to the level document")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "text", "log format (text, json)")
	fs.Float64("probe-distance", pathfinding.DefaultProbeDistance, "vertical half-span of the obstacle probe")
	fs.StringSlice("obstacle-layers", []string{"obstacles"}, "obstacle layers that block cells")
	fs.String("open-set", pathfinding.OpenSetLinear.String(), "open set strategy (linear, heap)")
	fs.Bool("show-explored", true, "mark cells expanded by the last search")
	fs.Bool("watch", true, "reload the level when its file changes")
}

// Load resolves the configuration from fs (after fs.Parse) and validates it.
// fs may be nil, in which case only defaults, the environment and no file
// are used.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("config: read %s: %w", f.Value.String(), err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: log.format: %v", ErrInvalidConfig, err)
	}
	d := c.Pathfinding.ProbeDistance
	if !(d > 0) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: pathfinding.probe_distance: %v must be positive and finite", ErrInvalidConfig, d)
	}
	if _, err := pathfinding.ParseOpenSet(c.Pathfinding.OpenSet); err != nil {
		return fmt.Errorf("%w: pathfinding.open_set: %v", ErrInvalidConfig, err)
	}
	if len(c.Pathfinding.ObstacleLayers) == 0 {
		return fmt.Errorf("%w: pathfinding.obstacle_layers: at least one layer is required", ErrInvalidConfig)
	}
	for i, l := range c.Pathfinding.ObstacleLayers {
		if strings.TrimSpace(l) == "" {
			return fmt.Errorf("%w: pathfinding.obstacle_layers[%d]: empty name", ErrInvalidConfig, i)
		}
	}
	return nil
}

// Logger builds the process logger described by c.Log. Call after Validate.
func (c *Config) Logger(w io.Writer, lv *slog.LevelVar) *slog.Logger {
	lvl, _ := logging.ParseLevel(c.Log.Level)
	lv.Set(lvl)
	format, _ := logging.ParseFormat(c.Log.Format)
	return logging.New(w, lv, format)
}

// EngineOptions translates c.Pathfinding into engine options. Layer names are
// resolved against layers; names the level never declared are an error.
func (c *Config) EngineOptions(layers *physics.Layers, log *slog.Logger) ([]pathfinding.Option, error) {
	mask, err := layers.Mask(c.Pathfinding.ObstacleLayers...)
	if err != nil {
		return nil, fmt.Errorf("%w: pathfinding.obstacle_layers: %v", ErrInvalidConfig, err)
	}
	kind, err := pathfinding.ParseOpenSet(c.Pathfinding.OpenSet)
	if err != nil {
		return nil, fmt.Errorf("%w: pathfinding.open_set: %v", ErrInvalidConfig, err)
	}
	return []pathfinding.Option{
		pathfinding.WithLogger(log),
		pathfinding.WithProbeDistance(c.Pathfinding.ProbeDistance),
		pathfinding.WithObstacleLayers(mask),
		pathfinding.WithOpenSet(kind),
	}, nil
}
