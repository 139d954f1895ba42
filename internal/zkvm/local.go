package zkvm

import (
	"fmt"

	"github.com/rs/zerolog"

	"zkdiff/internal/models"
)

// LocalProver runs the guest computation in-process and issues signed
// attestation receipts for its output. It stands in for a zkVM backend
// during development: the receipt binds output to program identity and is
// tamper-evident, but it does not hide the execution from the local host.
// It satisfies both Prover and Verifier so generate and verify share one
// implementation.
type LocalProver struct {
	logger zerolog.Logger
}

// NewLocalProver creates a new LocalProver.
func NewLocalProver(logger zerolog.Logger) *LocalProver {
	return &LocalProver{
		logger: logger.With().Str("component", "LocalProver").Logger(),
	}
}

// Execute runs the guest computation and attests to its output. Only the
// built-in guest program is known to this prover.
func (p *LocalProver) Execute(methodID string, input SealedInput) (*models.ProofOutput, string, error) {
	if methodID != GuestMethodID() {
		return nil, "", NewExecutionError("dispatch", fmt.Errorf("unknown program identity %s", methodID))
	}

	output, err := runGuest(input)
	if err != nil {
		return nil, "", NewExecutionError("guest", err)
	}

	receipt, err := IssueReceipt(methodID, output)
	if err != nil {
		return nil, "", NewExecutionError("attestation", err)
	}

	p.logger.Debug().
		Str("method_id", methodID).
		Int("diff_lines", len(output.DiffLines)).
		Msg("Guest computation attested")

	return output, receipt, nil
}

// Verify checks a receipt against the expected program identity and returns
// the output it committed to, without re-running the computation.
func (p *LocalProver) Verify(receipt string, methodID string) (*models.ProofOutput, error) {
	return openReceipt(receipt, methodID)
}
