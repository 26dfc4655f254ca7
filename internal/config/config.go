package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/lcd-menu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuFile     = "LCD_MENU_FILE"
	envWidth        = "LCD_MENU_WIDTH"
	envHeight       = "LCD_MENU_HEIGHT"
	envRollInterval = "LCD_MENU_ROLL_INTERVAL"
	envShowFooter   = "LCD_MENU_FOOTER"
	envTrace        = "LCD_MENU_TRACE"
	envLogFile      = "LCD_MENU_LOG_FILE"
)

// ErrNoMenuFile is reported by Validate when no menu definition was given.
var ErrNoMenuFile = errors.New("no menu file given (use -menu or " + envMenuFile + ")")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("lcd-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menuFile := fs.String("menu", envOrDefault(env, envMenuFile, ""), "path to the menu definition (.yaml, .yml or .toml)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "display width in characters (0 uses 16)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "display height in rows (0 uses 2)")
	roll := fs.Duration("roll-interval", envOrDuration(env, envRollInterval, 0), "delay between marquee steps (0 uses 300ms)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help below the display")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *roll < 0 {
		return Config{}, fmt.Errorf("roll-interval must be >= 0 (got %s)", *roll)
	}

	cfg := Config{
		App: app.Config{
			MenuFile:     *menuFile,
			Width:        *width,
			Height:       *height,
			RollInterval: *roll,
			ShowFooter:   *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"menu":         *menuFile,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"rollInterval": roll.String(),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.MenuFile) == "" {
		return ErrNoMenuFile
	}
	if _, err := os.Stat(cfg.App.MenuFile); err != nil {
		return fmt.Errorf("menu file: %w", err)
	}
	return nil
}
