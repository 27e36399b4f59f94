package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLogLevel overrides the default log level.
	EnvLogLevel = "XORCRACK_LOG_LEVEL"
	// EnvJSONLog switches output to JSON when set to "1".
	EnvJSONLog = "XORCRACK_JSON_LOG"

	defaultLevel = "warn"
)

// NewLogger creates an hclog logger writing to output, or stderr when output
// is nil.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv(EnvJSONLog) == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// Level picks the first non-empty of the given levels, then the environment,
// then "warn".
func Level(candidates ...string) string {
	for _, l := range candidates {
		if l != "" {
			return l
		}
	}
	if l := os.Getenv(EnvLogLevel); l != "" {
		return l
	}
	return defaultLevel
}
