package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/dirprompt/internal/app"
	"github.com/atomicstack/dirprompt/internal/ui"
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
	envBasePath = "DIRPROMPT_BASE_PATH"
	envDotFiles = "DIRPROMPT_DOTFILES"
	envPageSize = "DIRPROMPT_PAGE_SIZE"
	envMessage  = "DIRPROMPT_MESSAGE"
	envFooter   = "DIRPROMPT_FOOTER"
	envWidth    = "DIRPROMPT_WIDTH"
	envHeight   = "DIRPROMPT_HEIGHT"
	envTrace    = "DIRPROMPT_TRACE"
	envLogFile  = "DIRPROMPT_LOG_FILE"
)

const (
	defaultPageSize = 10
	defaultMessage  = "Select a file"
	defaultLogFile  = "dirprompt.log"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. The base path
// may be given by flag, by the first positional argument, or by environment,
// in that order of precedence.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("dirprompt", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	basePath := fs.String("base-path", "", "directory the prompt starts in and returns paths relative to")
	dotFiles := fs.Bool("dotfiles", envOrBool(env, envDotFiles, false), "list entries whose names start with a dot")
	pageSize := fs.Int("page-size", envOrInt(env, envPageSize, defaultPageSize), "number of choice lines shown at once")
	message := fs.String("message", envOrDefault(env, envMessage, defaultMessage), "question shown above the choices")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "show key hints below the prompt")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, defaultLogFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	base := *basePath
	rest := fs.Args()
	if base == "" && len(rest) > 0 {
		base, rest = rest[0], rest[1:]
	}
	if len(rest) > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}
	if base == "" {
		base = envOrDefault(env, envBasePath, "")
	}

	if *pageSize < 1 {
		return Config{}, fmt.Errorf("page-size must be >= 1 (got %d)", *pageSize)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			BasePath:      base,
			AllowDotFiles: *dotFiles,
			PageSize:      *pageSize,
			Message:       *message,
			ShowFooter:    *footer,
			Width:         *width,
			Height:        *height,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"basePath": base,
			"dotfiles": strconv.FormatBool(*dotFiles),
			"pageSize": strconv.Itoa(*pageSize),
			"message":  *message,
			"footer":   strconv.FormatBool(*footer),
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
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
	if strings.TrimSpace(cfg.App.BasePath) == "" {
		return fmt.Errorf("%w: pass -base-path, a positional directory or %s", ui.ErrMissingBasePath, envBasePath)
	}
	return nil
}
