// Package verifier re-checks persisted proof records. It never needs the
// original input files: the attestation receipt carries everything required
// to reproduce the committed output.
package verifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"zkdiff/internal/models"
	"zkdiff/internal/zkvm"
)

// Reason classifies why verification failed. Reasons are diagnostic only;
// the Verified boolean is the sole externally-trusted signal, and no reason
// ever describes redacted content.
type Reason string

const (
	// ReasonNone means verification succeeded.
	ReasonNone Reason = ""
	// ReasonMalformedRecord means the proof file is not valid JSON or
	// lacks required fields.
	ReasonMalformedRecord Reason = "malformed_record"
	// ReasonBadReceipt means the attestation receipt is corrupt or forged.
	ReasonBadReceipt Reason = "bad_receipt"
	// ReasonMethodIDMismatch means the receipt attests to a different
	// program identity than the record claims.
	ReasonMethodIDMismatch Reason = "method_id_mismatch"
	// ReasonMalformedOutput means the attested output violates the
	// structural invariants of a proof output.
	ReasonMalformedOutput Reason = "malformed_output"
	// ReasonOutputMismatch means the record's embedded output differs
	// from the output the receipt attests to.
	ReasonOutputMismatch Reason = "output_mismatch"
)

// Result is one verification verdict.
type Result struct {
	Verified bool
	Reason   Reason
	Detail   string
}

// SerializationError reports a proof file that could not be decoded. For
// the verify operation it is treated as a verification failure, not a crash.
type SerializationError struct {
	Path    string
	Wrapped error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("cannot decode proof file '%s': %v", e.Path, e.Wrapped)
}

func (e *SerializationError) Unwrap() error {
	return e.Wrapped
}

// Verifier checks proof records against the Execution Contract.
type Verifier struct {
	logger   zerolog.Logger
	contract zkvm.Verifier
}

// NewVerifier creates a new Verifier.
func NewVerifier(contract zkvm.Verifier, logger zerolog.Logger) *Verifier {
	return &Verifier{
		logger:   logger.With().Str("component", "Verifier").Logger(),
		contract: contract,
	}
}

// VerifyFile loads a proof record from disk and verifies it. Decoding
// failures yield a negative verdict rather than an error.
func (v *Verifier) VerifyFile(path string) (Result, *models.ProofRecord) {
	record, err := LoadRecord(path)
	if err != nil {
		v.logger.Warn().Err(err).Str("path", path).Msg("Proof file does not decode")
		return Result{Verified: false, Reason: ReasonMalformedRecord, Detail: err.Error()}, nil
	}
	return v.VerifyRecord(record), record
}

// VerifyRecord checks the record's receipt against its claimed program
// identity and the attested output against the record's embedded copy.
func (v *Verifier) VerifyRecord(record *models.ProofRecord) Result {
	attested, err := v.contract.Verify(record.Receipt, record.MethodID)
	if err != nil {
		reason := ReasonBadReceipt
		if errors.Is(err, zkvm.ErrMethodIDMismatch) {
			reason = ReasonMethodIDMismatch
		}
		v.logger.Warn().Err(err).Str("reason", string(reason)).Msg("Receipt verification failed")
		return Result{Verified: false, Reason: reason, Detail: err.Error()}
	}

	if err := attested.Validate(); err != nil {
		return Result{Verified: false, Reason: ReasonMalformedOutput, Detail: err.Error()}
	}

	if !outputsEqual(attested, &record.Output) {
		return Result{
			Verified: false,
			Reason:   ReasonOutputMismatch,
			Detail:   "record output differs from the attested output",
		}
	}

	return Result{Verified: true}
}

// LoadRecord decodes a persisted proof record, rejecting files that are not
// valid JSON or that lack the fields every record must carry.
func LoadRecord(path string) (*models.ProofRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SerializationError{Path: path, Wrapped: err}
	}

	var record models.ProofRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &SerializationError{Path: path, Wrapped: err}
	}

	if record.MethodID == "" {
		return nil, &SerializationError{Path: path, Wrapped: fmt.Errorf("missing method_id")}
	}
	if record.Receipt == "" {
		return nil, &SerializationError{Path: path, Wrapped: fmt.Errorf("missing receipt")}
	}

	return &record, nil
}

// outputsEqual compares two outputs through their canonical JSON encoding.
func outputsEqual(a, b *models.ProofOutput) bool {
	aJSON, errA := json.Marshal(a)
	bJSON, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(aJSON, bJSON)
}
