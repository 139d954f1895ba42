// Package zkvm is the boundary to the proving environment: a deterministic
// guest computation is submitted for execution and comes back with an
// attestation receipt that binds its output to the program that produced it.
// Receipts verify without re-running the computation and without access to
// the original file contents.
package zkvm

import (
	"errors"
	"fmt"

	"zkdiff/internal/models"
	"zkdiff/internal/redact"
)

// SealedInput carries everything the guest computation consumes. The file
// hashes are precomputed by the host; the guest recomputes and checks them
// before doing any work.
type SealedInput struct {
	FileAHash    string
	FileBHash    string
	FileAContent string
	FileBContent string
	Ranges       []redact.Range
}

// Prover executes the guest computation and attests to its output.
//
// Execute is one atomic, blocking call: it either completes with an output
// and a receipt or fails entirely. Cancellation mid-call is not supported,
// and callers must not retry a failed execution silently. The same
// (methodID, input) pair always yields a byte-identical output.
type Prover interface {
	Execute(methodID string, input SealedInput) (*models.ProofOutput, string, error)
}

// Verifier checks a receipt against an expected program identity and, on
// success, returns the output the receipt committed to. Verification cost is
// independent of the original input size. Concurrent Verify calls share no
// mutable state.
type Verifier interface {
	Verify(receipt string, methodID string) (*models.ProofOutput, error)
}

// Verification failure classes. These stay coarse on purpose: a negative
// verdict must never describe redacted content.
var (
	// ErrBadReceipt indicates the receipt blob is corrupt, forged, or not
	// an attestation at all.
	ErrBadReceipt = errors.New("invalid attestation receipt")
	// ErrMethodIDMismatch indicates the receipt attests to a different
	// program than the one expected.
	ErrMethodIDMismatch = errors.New("receipt attests to a different program")
)

// ExecutionError reports that the guest computation could not complete or
// attest. It is fatal to proof generation.
type ExecutionError struct {
	Stage string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution failed during %s: %v", e.Stage, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// NewExecutionError creates a new ExecutionError.
func NewExecutionError(stage string, err error) *ExecutionError {
	return &ExecutionError{Stage: stage, Err: err}
}
