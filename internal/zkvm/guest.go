package zkvm

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"zkdiff/internal/commitment"
	"zkdiff/internal/diff"
	"zkdiff/internal/models"
	"zkdiff/internal/redact"
)

// GuestVersion changes whenever the guest computation's observable behavior
// changes, which also changes the program identity and invalidates receipts
// issued for earlier versions.
const GuestVersion = 1

// GuestMethodID returns the identity of the built-in guest program: a
// SHA3-256 digest over its versioned descriptor, hex-encoded.
func GuestMethodID() string {
	digest := sha3.Sum256([]byte(fmt.Sprintf("zkdiff/guest/v%d", GuestVersion)))
	return hex.EncodeToString(digest[:])
}

// runGuest is the deterministic computation the prover attests to. It checks
// the sealed file hashes, computes the minimal edit script, commits to the
// full pre-redaction script, and only then applies redaction to the exposed
// lines. It must stay free of clocks, randomness, and unordered iteration.
func runGuest(input SealedInput) (*models.ProofOutput, error) {
	digestA := commitment.FileDigest([]byte(input.FileAContent))
	digestB := commitment.FileDigest([]byte(input.FileBContent))

	if hex.EncodeToString(digestA[:]) != input.FileAHash {
		return nil, fmt.Errorf("file A content does not match its sealed hash")
	}
	if hex.EncodeToString(digestB[:]) != input.FileBHash {
		return nil, fmt.Errorf("file B content does not match its sealed hash")
	}

	linesA := diff.SplitLines(input.FileAContent)
	linesB := diff.SplitLines(input.FileBContent)

	script := buildScript(diff.Lines(linesA, linesB), linesA, linesB)

	// The commitment covers the true content of every edit; redaction is
	// applied afterwards so hidden lines stay bound to the proof hash.
	proofHash := commitment.ScriptCommitmentHex(digestA, digestB, script)

	return &models.ProofOutput{
		FileAHash: input.FileAHash,
		FileBHash: input.FileBHash,
		DiffLines: redact.Apply(script, input.Ranges),
		ProofHash: proofHash,
	}, nil
}

// buildScript converts raw edits into exposed diff lines with revealed
// content and 1-indexed positions. Keep edits are dropped here and never
// leave the guest.
func buildScript(edits []diff.Edit, linesA, linesB []string) []models.DiffLine {
	script := make([]models.DiffLine, 0, len(edits))
	for _, edit := range edits {
		switch edit.Op {
		case diff.OpDelete:
			number := edit.AIndex + 1
			content := linesA[edit.AIndex]
			script = append(script, models.DiffLine{
				LineNumberA: &number,
				Operation:   models.OperationDelete,
				Content:     &content,
			})
		case diff.OpInsert:
			number := edit.BIndex + 1
			content := linesB[edit.BIndex]
			script = append(script, models.DiffLine{
				LineNumberB: &number,
				Operation:   models.OperationInsert,
				Content:     &content,
			})
		}
	}
	return script
}
