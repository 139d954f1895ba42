package models

import "time"

// ProofHistoryRecord is one row of the local proof history store: the
// public metadata of a generation run. It never carries diff content.
type ProofHistoryRecord struct {
	RunID       string `parquet:"run_id"`
	GeneratedAt int64  `parquet:"generated_at"` // Unix milliseconds
	FileAPath   string `parquet:"file_a_path"`
	FileBPath   string `parquet:"file_b_path"`
	FileAHash   string `parquet:"file_a_hash"`
	FileBHash   string `parquet:"file_b_hash"`
	ProofHash   string `parquet:"proof_hash"`
	MethodID    string `parquet:"method_id"`
	OutputPath  string `parquet:"output_path"`
	Inserts     int32  `parquet:"inserts"`
	Deletes     int32  `parquet:"deletes"`
	Redacted    int32  `parquet:"redacted"`
}

// GeneratedAtTime returns the generation timestamp as time.Time.
func (r *ProofHistoryRecord) GeneratedAtTime() time.Time {
	return time.UnixMilli(r.GeneratedAt)
}
