package logger

import (
	"io"
	stdlog "log"

	"github.com/rs/zerolog"

	"zkdiff/internal/common"
	"zkdiff/internal/config"
)

// LoggerBuilder provides a fluent interface for building loggers
type LoggerBuilder struct {
	config  LoggerConfig
	factory *WriterFactory
}

// NewLoggerBuilder creates a new logger builder
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config:  DefaultLoggerConfig(),
		factory: NewWriterFactory(),
	}
}

// WithConfig sets the logger configuration from the application config
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	lb.config = convertConfig(cfg)
	return lb
}

// WithLevel overrides the log level
func (lb *LoggerBuilder) WithLevel(level zerolog.Level) *LoggerBuilder {
	lb.config.Level = level
	return lb
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (zerolog.Logger, error) {
	if err := lb.validateConfig(); err != nil {
		return zerolog.Logger{}, err
	}

	writers := lb.createWriters()
	if len(writers) == 0 {
		return zerolog.Logger{}, common.NewError("no output writers configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	logger := zerolog.New(multiWriter).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger()

	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)

	return logger, nil
}

// validateConfig validates the logger configuration
func (lb *LoggerBuilder) validateConfig() error {
	if lb.config.EnableFile && lb.config.FilePath == "" {
		return common.NewValidationError("file_path", lb.config.FilePath, "file path required when file logging enabled")
	}

	if lb.config.MaxSizeMB <= 0 {
		return common.NewValidationError("max_size_mb", lb.config.MaxSizeMB, "max size must be positive")
	}

	return nil
}

// createWriters creates the appropriate writers based on configuration
func (lb *LoggerBuilder) createWriters() []io.Writer {
	var writers []io.Writer

	if lb.config.EnableConsole {
		writers = append(writers, lb.factory.CreateConsoleWriter(lb.config.Format))
	}

	if lb.config.EnableFile {
		writers = append(writers, lb.factory.CreateFileWriter(lb.config))
	}

	return writers
}

// convertConfig converts application config to logger config
func convertConfig(cfg config.LogConfig) LoggerConfig {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := LoggerConfig{
		Level:         level,
		Format:        ParseFormat(cfg.LogFormat),
		EnableConsole: true,
		EnableFile:    cfg.LogFile != "",
		FilePath:      cfg.LogFile,
		MaxSizeMB:     cfg.MaxLogSizeMB,
		MaxBackups:    cfg.MaxLogBackups,
	}
	if out.MaxSizeMB <= 0 {
		out.MaxSizeMB = 100
	}
	if out.MaxBackups < 0 {
		out.MaxBackups = 3
	}
	return out
}
