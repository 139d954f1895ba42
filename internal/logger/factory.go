package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory creates log writers based on format
type WriterFactory struct{}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{}
}

// CreateConsoleWriter creates a console writer
func (wf *WriterFactory) CreateConsoleWriter(format LogFormat) io.Writer {
	return wf.wrapWriter(os.Stderr, format, false)
}

// CreateFileWriter creates a file writer with rotation
func (wf *WriterFactory) CreateFileWriter(config LoggerConfig) io.Writer {
	// Lumberjack reports directory problems on first write.
	_ = os.MkdirAll(filepath.Dir(config.FilePath), 0755)

	lumberjackLogger := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		LocalTime:  true,
		MaxBackups: config.MaxBackups,
	}

	return wf.wrapWriter(lumberjackLogger, config.Format, true)
}

// wrapWriter applies the format to the underlying writer. Console format on
// file output disables color codes.
func (wf *WriterFactory) wrapWriter(w io.Writer, format LogFormat, noColor bool) io.Writer {
	switch format {
	case FormatJSON:
		return w
	case FormatText:
		return zerolog.ConsoleWriter{Out: w, NoColor: true}
	default:
		return zerolog.ConsoleWriter{Out: w, NoColor: noColor}
	}
}
