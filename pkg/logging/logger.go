package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Prefix is written before every non-JSON log line.
const Prefix = "🎨 "

// Options controls logger construction. Zero values fall back to the
// environment and then to the defaults.
type Options struct {
	Name   string
	Level  string
	Output io.Writer
}

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	return New(Options{Name: name, Level: level, Output: output})
}

// New creates a logger from opts. A level of the form "json" or
// "json:<level>" switches to JSON output, as does ICONMAKER_JSON_LOG=1.
func New(opts Options) hclog.Logger {
	level, jsonFormat := ParseLevel(opts.Level)
	if os.Getenv("ICONMAKER_JSON_LOG") == "1" {
		jsonFormat = true
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
		if logPath := os.Getenv("ICONMAKER_LOG_PATH"); logPath != "" {
			if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				output = file
			}
		}
	}

	if !jsonFormat {
		output = NewPrefixWriter(Prefix, output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ParseLevel splits "json:<level>" into its level and JSON flag. An empty
// level resolves through GetLogLevel.
func ParseLevel(raw string) (level string, jsonFormat bool) {
	if raw == "" {
		raw = GetLogLevel()
	}
	if strings.HasPrefix(raw, "json") {
		parts := strings.SplitN(raw, ":", 2)
		if len(parts) > 1 && parts[1] != "" {
			return parts[1], true
		}
		return "info", true
	}
	return raw, false
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv("ICONMAKER_LOG_LEVEL")
	if level == "" {
		level = "warn" // Default to warn for production safety
	}
	return level
}
