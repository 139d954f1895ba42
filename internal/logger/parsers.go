package logger

import (
	"strings"

	"github.com/rs/zerolog"

	"zkdiff/internal/common"
)

// ParseLevel parses a string log level to zerolog.Level
func ParseLevel(levelStr string) (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.InfoLevel, common.WrapError(err, "invalid log level")
	}
	return level, nil
}

// ParseFormat parses a string format to LogFormat
func ParseFormat(formatStr string) LogFormat {
	switch strings.ToLower(formatStr) {
	case "json":
		return FormatJSON
	case "console":
		return FormatConsole
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}
