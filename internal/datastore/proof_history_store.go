// Package datastore persists proof generation metadata to local Parquet
// files so past runs can be listed without reopening the proof files.
package datastore

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"

	"zkdiff/internal/common"
	"zkdiff/internal/config"
	"zkdiff/internal/models"
)

const historyFileName = "proof_history.parquet"

// ProofHistoryStore handles reading and writing the proof history file.
type ProofHistoryStore struct {
	config *config.StorageConfig
	logger zerolog.Logger
}

// NewProofHistoryStore creates a new ProofHistoryStore.
func NewProofHistoryStore(cfg *config.StorageConfig, logger zerolog.Logger) (*ProofHistoryStore, error) {
	if cfg == nil {
		return nil, common.NewValidationError("config", cfg, "storage config cannot be nil")
	}
	if cfg.HistoryBasePath == "" {
		return nil, common.NewValidationError("history_base_path", cfg.HistoryBasePath, "history base path is not configured")
	}

	return &ProofHistoryStore{
		config: cfg,
		logger: logger.With().Str("component", "ProofHistoryStore").Logger(),
	}, nil
}

// filePath returns the history parquet file location.
func (phs *ProofHistoryStore) filePath() string {
	return filepath.Join(phs.config.HistoryBasePath, historyFileName)
}

// AppendRecord adds one record to the history file. The file is rewritten
// through a temporary file and renamed into place, since parquet files
// cannot be extended by raw appends.
func (phs *ProofHistoryStore) AppendRecord(record models.ProofHistoryRecord) error {
	existing, err := phs.ListRecords()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(phs.config.HistoryBasePath, 0755); err != nil {
		return common.WrapError(err, "failed to create history directory: "+phs.config.HistoryBasePath)
	}

	all := append(existing, record)
	tmpPath := phs.filePath() + ".tmp"
	if err := phs.writeRecords(tmpPath, all); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, phs.filePath()); err != nil {
		_ = os.Remove(tmpPath)
		return common.WrapError(err, "failed to replace history file")
	}

	phs.logger.Debug().
		Str("file_path", phs.filePath()).
		Int("records", len(all)).
		Msg("Appended proof history record")
	return nil
}

// ListRecords reads all records from the history file. A missing file
// yields an empty list.
func (phs *ProofHistoryStore) ListRecords() ([]models.ProofHistoryRecord, error) {
	path := phs.filePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return []models.ProofHistoryRecord{}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, common.WrapError(err, "failed to open history file: "+path)
	}
	defer file.Close()

	reader := parquet.NewGenericReader[models.ProofHistoryRecord](file)
	defer reader.Close()

	records := make([]models.ProofHistoryRecord, 0)
	for {
		batch := make([]models.ProofHistoryRecord, 64)
		n, err := reader.Read(batch)
		if n > 0 {
			records = append(records, batch[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "EOF") {
				break
			}
			return nil, common.WrapError(err, "failed to read history records")
		}
	}

	return records, nil
}

// writeRecords writes the full record set to the given path.
func (phs *ProofHistoryStore) writeRecords(path string, records []models.ProofHistoryRecord) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return common.WrapError(err, "failed to create history file: "+path)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[models.ProofHistoryRecord](file, phs.compressionOption())
	if _, err := writer.Write(records); err != nil {
		_ = writer.Close()
		return common.WrapError(err, "failed to write history records")
	}
	return writer.Close()
}

// compressionOption maps the configured codec name to a parquet option.
func (phs *ProofHistoryStore) compressionOption() parquet.WriterOption {
	switch strings.ToLower(phs.config.CompressionCodec) {
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	case "none", "uncompressed":
		return parquet.Compression(&parquet.Uncompressed)
	default:
		return parquet.Compression(&parquet.Zstd)
	}
}
