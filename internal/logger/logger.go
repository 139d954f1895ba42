package logger

import (
	"github.com/rs/zerolog"

	"zkdiff/internal/config"
)

// New creates a new logger instance from the application log configuration.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
