// FILE: lixenwraith/configfile/log.go
package configfile

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogConfig captures options for the codec logger.
type LogConfig struct {
	Level     string    // optional level ("debug", "info", ...), defaults to info
	Output    io.Writer // optional writer, defaults to os.Stderr
	Component string    // optional component name, defaults to "configfile"
}

// NewLogger builds a zerolog logger annotated with a component field.
func NewLogger(cfg LogConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	component := cfg.Component
	if component == "" {
		component = "configfile"
	}

	zerolog.TimeFieldFormat = time.RFC3339

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
