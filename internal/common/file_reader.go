package common

import (
	"os"

	"github.com/rs/zerolog"
)

// FileReader handles input file reading for proof generation.
type FileReader struct {
	logger zerolog.Logger
}

// NewFileReader creates a new FileReader instance
func NewFileReader(logger zerolog.Logger) *FileReader {
	return &FileReader{
		logger: logger.With().Str("component", "FileReader").Logger(),
	}
}

// FileExists checks whether the path names an existing regular file.
func (fr *FileReader) FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadFile reads the full content of a file. Missing, unreadable, and
// directory paths all surface as FileReadError.
func (fr *FileReader) ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, NewFileReadError(path, err)
	}
	if info.IsDir() {
		return nil, NewFileReadError(path, NewError("path is a directory"))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewFileReadError(path, err)
	}

	fr.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("Read input file")
	return content, nil
}
