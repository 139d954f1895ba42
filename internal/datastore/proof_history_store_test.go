package datastore

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zkdiff/internal/config"
	"zkdiff/internal/models"
)

func newTestStore(t *testing.T) *ProofHistoryStore {
	t.Helper()

	cfg := config.NewDefaultStorageConfig()
	cfg.HistoryBasePath = t.TempDir()

	store, err := NewProofHistoryStore(&cfg, zerolog.Nop())
	require.NoError(t, err)
	return store
}

func sampleRecord(runID string) models.ProofHistoryRecord {
	return models.ProofHistoryRecord{
		RunID:       runID,
		GeneratedAt: time.Now().UnixMilli(),
		FileAPath:   "a.txt",
		FileBPath:   "b.txt",
		FileAHash:   "aa",
		FileBHash:   "bb",
		ProofHash:   "cc",
		MethodID:    "dd",
		OutputPath:  "zkdiff.proof",
		Inserts:     2,
		Deletes:     1,
		Redacted:    1,
	}
}

func TestProofHistoryStore_EmptyListFromMissingFile(t *testing.T) {
	store := newTestStore(t)

	records, err := store.ListRecords()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestProofHistoryStore_AppendAndList(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AppendRecord(sampleRecord("run-1")))
	require.NoError(t, store.AppendRecord(sampleRecord("run-2")))

	records, err := store.ListRecords()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "run-1", records[0].RunID)
	assert.Equal(t, "run-2", records[1].RunID)
	assert.Equal(t, int32(2), records[0].Inserts)
	assert.Equal(t, "cc", records[1].ProofHash)
}

func TestProofHistoryStore_RequiresBasePath(t *testing.T) {
	cfg := config.NewDefaultStorageConfig()
	cfg.HistoryBasePath = ""

	_, err := NewProofHistoryStore(&cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestProofHistoryStore_CompressionCodecs(t *testing.T) {
	for _, codec := range []string{"zstd", "gzip", "snappy", "none"} {
		t.Run(codec, func(t *testing.T) {
			cfg := config.NewDefaultStorageConfig()
			cfg.HistoryBasePath = t.TempDir()
			cfg.CompressionCodec = codec

			store, err := NewProofHistoryStore(&cfg, zerolog.Nop())
			require.NoError(t, err)

			require.NoError(t, store.AppendRecord(sampleRecord("run")))
			records, err := store.ListRecords()
			require.NoError(t, err)
			assert.Len(t, records, 1)
		})
	}
}
