// Package logging configures the zerolog loggers used by the command line
// tool and the tests.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment overrides.
const (
	EnvLogLevel     = "SETUP_MIRRORS_LOG_LEVEL"
	EnvLogTimestamp = "SETUP_MIRRORS_LOG_TIMESTAMP"
	EnvLogNoColor   = "SETUP_MIRRORS_LOG_NOCOLOR"
)

// App is the value of the app field on every event.
const App = "setup-mirrors"

// Profile selects the default logger settings.
type Profile int

const (
	// ProfileRuntime logs info and above in color, with timestamps.
	ProfileRuntime Profile = iota
	// ProfileTest logs debug and above without color or timestamps.
	ProfileTest
)

// Config controls the console logger.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	// Out defaults to stderr so stdout stays free for tables and codes.
	Out io.Writer
}

var configureOnce sync.Once

// DefaultConfig returns the settings of a profile before env overrides.
func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, NoColor: true}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

// ApplyEnv overrides cfg from the variables returned by getenv.
// Unparsable values are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if lvl, ok := parseLevel(getenv(EnvLogLevel)); ok {
		c.Level = lvl
	}

	if v, ok := parseBool(getenv(EnvLogTimestamp)); ok {
		c.Timestamp = v
	}

	if v, ok := parseBool(getenv(EnvLogNoColor)); ok {
		c.NoColor = v
	}
}

// New builds a console logger for cfg.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}

	if !cfg.Timestamp {
		output.PartsExclude = []string{zerolog.TimestampFieldName}
	}

	ctx := zerolog.New(output).Level(cfg.Level).With().Str("app", App)
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}

	return ctx.Logger()
}

// Configure sets the global logger once for the process and returns it.
func Configure(profile Profile) zerolog.Logger {
	configureOnce.Do(func() {
		cfg := DefaultConfig(profile)
		cfg.ApplyEnv(os.Getenv)
		log.Logger = New(cfg)
	})

	return log.Logger
}

// ConfigureRuntime is Configure(ProfileRuntime).
func ConfigureRuntime() zerolog.Logger {
	return Configure(ProfileRuntime)
}

// ConfigureTests is Configure(ProfileTest).
func ConfigureTests() zerolog.Logger {
	return Configure(ProfileTest)
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}

	return v, true
}
