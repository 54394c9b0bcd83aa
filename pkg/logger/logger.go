// Package logger constructs the process-wide zerolog logger. Components
// derive their own sub-loggers from it with a "component" field.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	serviceName    = "framepay"
	serviceVersion = "0.3.0"
)

type Config struct {
	// Level is a zerolog level name; unknown values fall back to info.
	Level      string `yaml:"level"`
	TimeFormat string `yaml:"time_format"`
	// Pretty switches to the human-readable console writer for local runs.
	Pretty bool `yaml:"pretty"`
}

// New returns a logger with production defaults, for use before the
// configuration has been loaded.
func New() zerolog.Logger {
	return NewWithConfig(Config{Level: "info"})
}

func NewWithConfig(config Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	var out io.Writer = os.Stdout
	if config.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).With().
		Timestamp().
		Str("service", serviceName).
		Str("version", serviceVersion).
		Logger()
}
