// Package orchestrator drives proof generation: it validates and assembles
// host-side inputs, invokes the Execution Contract once, and persists the
// resulting proof record. It performs no cryptography beyond what the
// commitment and zkvm packages provide.
package orchestrator

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"zkdiff/internal/common"
	"zkdiff/internal/commitment"
	"zkdiff/internal/config"
	"zkdiff/internal/datastore"
	"zkdiff/internal/models"
	"zkdiff/internal/redact"
	"zkdiff/internal/zkvm"
)

// Orchestrator coordinates one proof generation per Generate call.
type Orchestrator struct {
	logger     zerolog.Logger
	prover     zkvm.Prover
	fileReader *common.FileReader
	history    *datastore.ProofHistoryStore
}

// OrchestratorBuilder provides a fluent interface for creating Orchestrator
type OrchestratorBuilder struct {
	logger  zerolog.Logger
	prover  zkvm.Prover
	history *datastore.ProofHistoryStore
}

// NewOrchestratorBuilder creates a new OrchestratorBuilder
func NewOrchestratorBuilder(logger zerolog.Logger) *OrchestratorBuilder {
	return &OrchestratorBuilder{
		logger: logger.With().Str("component", "Orchestrator").Logger(),
	}
}

// WithProver sets the Execution Contract implementation
func (b *OrchestratorBuilder) WithProver(prover zkvm.Prover) *OrchestratorBuilder {
	b.prover = prover
	return b
}

// WithHistoryStore sets an optional proof history store
func (b *OrchestratorBuilder) WithHistoryStore(store *datastore.ProofHistoryStore) *OrchestratorBuilder {
	b.history = store
	return b
}

// Build creates a new Orchestrator instance
func (b *OrchestratorBuilder) Build() (*Orchestrator, error) {
	if b.prover == nil {
		return nil, common.NewValidationError("prover", b.prover, "prover cannot be nil")
	}

	return &Orchestrator{
		logger:     b.logger,
		prover:     b.prover,
		fileReader: common.NewFileReader(b.logger),
		history:    b.history,
	}, nil
}

// GenerateRequest carries the inputs of one proof generation.
type GenerateRequest struct {
	FileAPath     string
	FileBPath     string
	RedactionSpec string
	OutputPath    string
}

// GenerateResult carries the persisted record and run metadata.
type GenerateResult struct {
	RunID      string
	Record     *models.ProofRecord
	OutputPath string
}

// readResult holds one concurrently loaded and hashed input file.
type readResult struct {
	content []byte
	digest  string
	err     error
}

// Generate runs the full generation flow: input validation, concurrent file
// loading and hashing, one atomic Execute call, and persistence. Validation
// failures surface before the Execution Contract is touched; execution
// failures propagate without writing any proof file.
func (o *Orchestrator) Generate(req GenerateRequest) (*GenerateResult, error) {
	runID := uuid.New().String()
	logger := o.logger.With().Str("run_id", runID).Logger()

	ranges, err := redact.ParseRanges(req.RedactionSpec)
	if err != nil {
		return nil, err
	}

	fileA, fileB, err := o.loadInputFiles(req.FileAPath, req.FileBPath)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("file_a", req.FileAPath).
		Str("file_a_hash", fileA.digest).
		Str("file_b", req.FileBPath).
		Str("file_b_hash", fileB.digest).
		Int("redaction_ranges", len(ranges)).
		Msg("Generating proof")

	input := zkvm.SealedInput{
		FileAHash:    fileA.digest,
		FileBHash:    fileB.digest,
		FileAContent: string(fileA.content),
		FileBContent: string(fileB.content),
		Ranges:       ranges,
	}

	methodID := zkvm.GuestMethodID()
	output, receipt, err := o.prover.Execute(methodID, input)
	if err != nil {
		return nil, err
	}

	record := &models.ProofRecord{
		Verified:       true,
		Output:         *output,
		MethodID:       methodID,
		ProofGenerated: true,
		Receipt:        receipt,
	}

	if err := o.persistRecord(record, req.OutputPath); err != nil {
		return nil, err
	}
	logger.Info().Str("output", req.OutputPath).Msg("Proof saved")

	o.recordHistory(logger, runID, req, record)

	return &GenerateResult{
		RunID:      runID,
		Record:     record,
		OutputPath: req.OutputPath,
	}, nil
}

// loadInputFiles reads and hashes both input files concurrently, then
// synchronizes on both results before returning.
func (o *Orchestrator) loadInputFiles(pathA, pathB string) (readResult, readResult, error) {
	var wg sync.WaitGroup
	var resultA, resultB readResult

	load := func(path string, out *readResult) {
		defer wg.Done()
		content, err := o.fileReader.ReadFile(path)
		if err != nil {
			out.err = err
			return
		}
		out.content = content
		out.digest = commitment.FileDigestHex(content)
	}

	wg.Add(2)
	go load(pathA, &resultA)
	go load(pathB, &resultB)
	wg.Wait()

	if resultA.err != nil {
		return readResult{}, readResult{}, resultA.err
	}
	if resultB.err != nil {
		return readResult{}, readResult{}, resultB.err
	}
	return resultA, resultB, nil
}

// persistRecord writes the proof record as indented JSON.
func (o *Orchestrator) persistRecord(record *models.ProofRecord, path string) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return common.WrapError(err, "failed to encode proof record")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return common.WrapError(err, "failed to write proof file: "+path)
	}
	return nil
}

// recordHistory appends run metadata to the history store when one is
// configured. History failures never fail the generation itself.
func (o *Orchestrator) recordHistory(logger zerolog.Logger, runID string, req GenerateRequest, record *models.ProofRecord) {
	if o.history == nil {
		return
	}

	stats := models.CalculateDiffStats(record.Output.DiffLines)
	err := o.history.AppendRecord(models.ProofHistoryRecord{
		RunID:       runID,
		GeneratedAt: time.Now().UnixMilli(),
		FileAPath:   req.FileAPath,
		FileBPath:   req.FileBPath,
		FileAHash:   record.Output.FileAHash,
		FileBHash:   record.Output.FileBHash,
		ProofHash:   record.Output.ProofHash,
		MethodID:    record.MethodID,
		OutputPath:  req.OutputPath,
		Inserts:     int32(stats.Inserts),
		Deletes:     int32(stats.Deletes),
		Redacted:    int32(stats.Redacted),
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to record proof history")
	}
}

// NewHistoryStore creates the history store for the given storage config
// when history recording is enabled; it returns nil otherwise.
func NewHistoryStore(cfg *config.StorageConfig, logger zerolog.Logger) (*datastore.ProofHistoryStore, error) {
	if cfg == nil || !cfg.HistoryEnabled {
		return nil, nil
	}
	return datastore.NewProofHistoryStore(cfg, logger)
}
