package config

// StorageConfig defines configuration for the local proof history store
type StorageConfig struct {
	// HistoryEnabled toggles recording of generation metadata.
	HistoryEnabled bool `json:"history_enabled,omitempty" yaml:"history_enabled,omitempty"`
	// HistoryBasePath is the directory holding the history parquet file.
	HistoryBasePath string `json:"history_base_path,omitempty" yaml:"history_base_path,omitempty"`
	// CompressionCodec selects the parquet compression: zstd, gzip, snappy or none.
	CompressionCodec string `json:"compression_codec,omitempty" yaml:"compression_codec,omitempty" validate:"omitempty,compressioncodec"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		HistoryEnabled:   false,
		HistoryBasePath:  DefaultHistoryBasePath,
		CompressionCodec: "zstd",
	}
}
