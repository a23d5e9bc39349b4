package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/training-mod-tui/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose   bool
	PrintJSON bool
}

const (
	envLayout          = "TRAINING_MENU_LAYOUT"
	envDefaults        = "TRAINING_MENU_DEFAULTS"
	envInput           = "TRAINING_MENU_INPUT"
	envOutput          = "TRAINING_MENU_OUTPUT"
	envPollInterval    = "TRAINING_MENU_POLL_INTERVAL"
	envPublishInterval = "TRAINING_MENU_PUBLISH_INTERVAL"
	envWidth           = "TRAINING_MENU_WIDTH"
	envHeight          = "TRAINING_MENU_HEIGHT"
	envShowFooter      = "TRAINING_MENU_FOOTER"
	envVerbose         = "TRAINING_MENU_VERBOSE"
	envPrintJSON       = "TRAINING_MENU_PRINT"
	envTrace           = "TRAINING_MENU_TRACE"
	envLogFile         = "TRAINING_MENU_LOG_FILE"
)

const (
	defaultPollInterval    = 250 * time.Millisecond
	defaultPublishInterval = 250 * time.Millisecond
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("training-mod-tui", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	layout := fs.String("layout", envOrDefault(env, envLayout, ""), "path to a YAML menu layout (empty uses the built-in menu)")
	defaults := fs.String("defaults", envOrDefault(env, envDefaults, ""), "path to the saved defaults JSON (empty keeps defaults in memory)")
	input := fs.String("input", envOrDefault(env, envInput, ""), "path polled for selections pushed by the host process")
	output := fs.String("output", envOrDefault(env, envOutput, ""), "path the current selections are written to on change")
	pollInterval := fs.Duration("poll-interval", envOrDuration(env, envPollInterval, defaultPollInterval), "how often the input file is checked")
	publishInterval := fs.Duration("publish-interval", envOrDuration(env, envPublishInterval, defaultPublishInterval), "minimum delay between writes of the output file")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help footer")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	printJSON := fs.Bool("print", envOrBool(env, envPrintJSON, true), "print the final selections as JSON on exit")
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
	if *pollInterval < 0 {
		return Config{}, fmt.Errorf("poll-interval must be >= 0 (got %s)", *pollInterval)
	}
	if *publishInterval < 0 {
		return Config{}, fmt.Errorf("publish-interval must be >= 0 (got %s)", *publishInterval)
	}

	cfg := Config{
		App: app.Config{
			LayoutPath:      *layout,
			DefaultsPath:    *defaults,
			InputPath:       *input,
			OutputPath:      *output,
			PollInterval:    *pollInterval,
			PublishInterval: *publishInterval,
			Width:           *width,
			Height:          *height,
			ShowFooter:      *footer,
			Verbose:         *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose:   *verbose,
			PrintJSON: *printJSON,
		},
		Flags: map[string]string{
			"layout":          *layout,
			"defaults":        *defaults,
			"input":           *input,
			"output":          *output,
			"pollInterval":    pollInterval.String(),
			"publishInterval": publishInterval.String(),
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"footer":          strconv.FormatBool(*footer),
			"print":           strconv.FormatBool(*printJSON),
			"trace":           strconv.FormatBool(*trace),
			"verbose":         strconv.FormatBool(*verbose),
			"logFile":         *logFile,
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

// Validate checks file-system related options that flag parsing cannot.
func Validate(cfg Config) error {
	var errs []error
	if path := cfg.App.LayoutPath; path != "" {
		info, err := os.Stat(path)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("layout: %w", err))
		case info.IsDir():
			errs = append(errs, fmt.Errorf("layout: %s is a directory", path))
		}
	}
	if in, out := cfg.App.InputPath, cfg.App.OutputPath; in != "" && out != "" && filepath.Clean(in) == filepath.Clean(out) {
		errs = append(errs, fmt.Errorf("input and output must differ (both %s)", in))
	}
	if def, out := cfg.App.DefaultsPath, cfg.App.OutputPath; def != "" && out != "" && filepath.Clean(def) == filepath.Clean(out) {
		errs = append(errs, fmt.Errorf("defaults and output must differ (both %s)", def))
	}
	return errors.Join(errs...)
}
