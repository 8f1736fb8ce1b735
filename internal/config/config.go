// Package config loads engpower settings from defaults, an optional YAML
// file, the environment and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/abhisek/engpower/internal/quiz"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ENGPOWER_"

// Config is the full set of runtime settings.
type Config struct {
	DB                string  `koanf:"db"`
	Bank              string  `koanf:"bank"`
	ReviewProbability float64 `koanf:"review_probability" validate:"gte=0,lte=1"`
	LeaderboardSize   int     `koanf:"leaderboard_size" validate:"gte=1,lte=100"`
	Audio             Audio   `koanf:"audio"`
	Log               Log     `koanf:"log"`
}

// Audio configures question read-back.
type Audio struct {
	Enabled bool          `koanf:"enabled"`
	Command string        `koanf:"command"`
	Args    []string      `koanf:"args"`
	Timeout time.Duration `koanf:"timeout" validate:"gte=0"`
}

// Log configures the structured log file.
type Log struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	File  string `koanf:"file"`
}

// Default returns the compiled-in settings.
func Default() Config {
	return Config{
		ReviewProbability: quiz.DefaultReviewProbability,
		LeaderboardSize:   10,
		Audio: Audio{
			Enabled: true,
			Timeout: 10 * time.Second,
		},
		Log: Log{Level: "info"},
	}
}

// Options tells Load where to look.
type Options struct {
	// File is an explicit config file. It must exist when set.
	File string

	// Flags are the parsed command-line flags. Only flags named in
	// flagKeys override configuration.
	Flags *pflag.FlagSet

	// DotEnv files are loaded into the process environment before env
	// variables are read. Missing files are ignored.
	DotEnv []string
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"db":                 "db",
	"bank":               "bank",
	"review-probability": "review_probability",
	"audio":              "audio.enabled",
	"log-level":          "log.level",
	"log-file":           "log.file",
}

// Load builds a validated Config.
func Load(opts Options) (Config, error) {
	k := koanf.New(".")

	path := opts.File
	if path == "" {
		path = defaultConfigFile()
	}
	if path != "" {
		err := k.Load(file.Provider(path), yaml.Parser())
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist) && opts.File == "":
			// The default config file is optional.
		default:
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	for _, f := range opts.DotEnv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	if opts.Flags != nil {
		p := posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(opts.Flags, f)
		})
		if err := k.Load(p, nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envKey maps ENGPOWER_LOG__LEVEL to log.level and
// ENGPOWER_REVIEW_PROBABILITY to review_probability.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate checks field constraints.
func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel converts Log.Level to a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// defaultConfigFile returns $XDG_CONFIG_HOME/engpower/config.yaml, or ""
// when no config directory can be resolved.
func defaultConfigFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "engpower", "config.yaml")
}
