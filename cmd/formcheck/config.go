package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

const envPrefix = "FORMCHECK_"

// Color modes.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Config holds the settings read from FORMCHECK_* variables.
type Config struct {
	LogLevel      string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text"`
	Color         string `env:"COLOR" envDefault:"auto"`
	PathCacheSize int    `env:"PATH_CACHE_SIZE" envDefault:"512"`
	EnvFile       string `env:"ENV_FILE"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
		return Config{}, err
	}
	if cfg.EnvFile == "" {
		return cfg, nil
	}

	// Variables from the extra file override the environment, so parse again.
	if err := config.LoadEnv(cfg.EnvFile); err != nil {
		return Config{}, err
	}
	config.ResetCache()
	if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.PathCacheSize < 0 {
		return fmt.Errorf("%sPATH_CACHE_SIZE must not be negative, got %d", envPrefix, c.PathCacheSize)
	}
	switch c.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("%sCOLOR must be auto, always or never, got %q", envPrefix, c.Color)
	}
	return nil
}

type commandKey struct{}

func (c Config) logger(w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("formcheck")),
		logger.WithContextValue("command", commandKey{}),
	), nil
}

// colorEnabled resolves the color mode for w. In auto mode color is used
// only on terminals and never when NO_COLOR is set.
func (c Config) colorEnabled(w io.Writer) bool {
	switch c.Color {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
