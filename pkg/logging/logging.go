package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// KeyError is the key for errors in log lines.
	KeyError = "err"

	// KeyApp is the key for the application name.
	KeyApp = "app"

	// KeyHandler is the key for the name of the discord handler processing an event.
	KeyHandler = "handler"

	// KeyEventID is the key for the correlation ID given to each handled discord event.
	KeyEventID = "event_id"

	// KeyGuildID is the key for a guild ID.
	KeyGuildID = "guild_id"

	// KeyUserID is the key for a user ID.
	KeyUserID = "user_id"

	// KeyChannelID is the key for a channel ID.
	KeyChannelID = "channel_id"

	// KeyCommand is the key for a prefix command name.
	KeyCommand = "command"
)

// EnvLogLevel is the environment variable for the log level.
const EnvLogLevel = `LOG_LEVEL`

// ErrNoAppName is returned when a logger is requested without an application name.
var ErrNoAppName = errors.New("no application name provided")

// Name is the name of the application the logger is created for.
type Name string

// Config is the configuration for a logger.
type Config struct {
	// appName is the name of the application.
	appName Name

	// level is the minimum level that is written.
	level slog.Level

	// w is where the log lines are written.
	w io.Writer
}

// NewConfig creates a logger configuration for the application. The level is read from LOG_LEVEL and defaults to info.
func NewConfig(appName Name) *Config {
	level := slog.LevelInfo
	if envLevel := os.Getenv(EnvLogLevel); envLevel != "" {
		if lvl, err := ParseLevel(envLevel); err == nil {
			level = lvl
		}
	}

	return &Config{
		appName: appName,
		level:   level,
		w:       os.Stdout,
	}
}

// WithWriter returns a copy of the configuration writing to w.
func (c *Config) WithWriter(w io.Writer) *Config {
	cp := *c
	cp.w = w
	return &cp
}

// WithLevel returns a copy of the configuration with the given minimum level.
func (c *Config) WithLevel(level slog.Level) *Config {
	cp := *c
	cp.level = level
	return &cp
}

// CommonLogger creates the JSON logger used across the application.
func CommonLogger(c *Config) (*slog.Logger, error) {
	if c == nil || c.appName == "" {
		return nil, ErrNoAppName
	}

	h := slog.NewJSONHandler(c.w, &slog.HandlerOptions{
		AddSource: c.level == slog.LevelDebug,
		Level:     c.level,
	})

	return slog.New(h).With(slog.String(KeyApp, string(c.appName))), nil
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
