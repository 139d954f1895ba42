package models

import (
	"encoding/hex"
	"fmt"
)

// digestHexLength is the hex-encoded length of a 256-bit digest.
const digestHexLength = 64

// Validate checks the structural invariants of a single diff line: a valid
// operation, exactly one of content/redacted length, and the line number
// matching the operation's file side.
func (dl *DiffLine) Validate() error {
	if !dl.Operation.IsValid() {
		return fmt.Errorf("unknown operation %q", dl.Operation)
	}

	if (dl.Content == nil) == (dl.RedactedLength == nil) {
		return fmt.Errorf("exactly one of content and redacted_length must be set")
	}

	switch dl.Operation {
	case OperationDelete:
		if dl.LineNumberA == nil || dl.LineNumberB != nil {
			return fmt.Errorf("delete entry must carry line_number_a only")
		}
		if *dl.LineNumberA < 1 {
			return fmt.Errorf("line_number_a must be 1-indexed, got %d", *dl.LineNumberA)
		}
	case OperationInsert:
		if dl.LineNumberB == nil || dl.LineNumberA != nil {
			return fmt.Errorf("insert entry must carry line_number_b only")
		}
		if *dl.LineNumberB < 1 {
			return fmt.Errorf("line_number_b must be 1-indexed, got %d", *dl.LineNumberB)
		}
	}

	if dl.RedactedLength != nil && *dl.RedactedLength < 0 {
		return fmt.Errorf("redacted_length must not be negative")
	}

	return nil
}

// Validate checks the structural invariants of a proof output: well-formed
// hex digests and well-formed diff lines. It does not (and cannot) recompute
// the commitment; that binding is the attestation's job.
func (po *ProofOutput) Validate() error {
	if err := validateDigest("file_a_hash", po.FileAHash); err != nil {
		return err
	}
	if err := validateDigest("file_b_hash", po.FileBHash); err != nil {
		return err
	}
	if err := validateDigest("proof_hash", po.ProofHash); err != nil {
		return err
	}

	for i := range po.DiffLines {
		if err := po.DiffLines[i].Validate(); err != nil {
			return fmt.Errorf("diff line %d: %w", i, err)
		}
	}

	return nil
}

func validateDigest(name, digest string) error {
	if len(digest) != digestHexLength {
		return fmt.Errorf("%s must be %d hex characters, got %d", name, digestHexLength, len(digest))
	}
	if _, err := hex.DecodeString(digest); err != nil {
		return fmt.Errorf("%s is not valid hex: %w", name, err)
	}
	return nil
}
