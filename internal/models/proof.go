package models

// DiffOperation defines the kind of edit a diff line represents.
type DiffOperation string

const (
	// OperationInsert indicates a line present only in file B.
	OperationInsert DiffOperation = "Insert"
	// OperationDelete indicates a line present only in file A.
	OperationDelete DiffOperation = "Delete"
)

// IsValid reports whether the operation is one of the exposed edit kinds.
// Replace is never a distinct operation: it surfaces as an adjacent
// Delete/Insert pair.
func (op DiffOperation) IsValid() bool {
	return op == OperationInsert || op == OperationDelete
}

// DiffLine is one exposed edit record. Exactly one of Content and
// RedactedLength is set: Content carries the revealed line text,
// RedactedLength the character count of a hidden line. LineNumberA is set
// only for Delete entries, LineNumberB only for Insert entries; both are
// 1-indexed.
type DiffLine struct {
	LineNumberA    *int          `json:"line_number_a,omitempty"`
	LineNumberB    *int          `json:"line_number_b,omitempty"`
	Operation      DiffOperation `json:"operation"`
	Content        *string       `json:"content,omitempty"`
	RedactedLength *int          `json:"redacted_length,omitempty"`
}

// IsRedacted reports whether the line's content was withheld.
func (dl *DiffLine) IsRedacted() bool {
	return dl.Content == nil
}

// ProofOutput is the public journal of one attested diff computation.
// ProofHash binds the two file digests and the full pre-redaction edit
// script, so two outputs claiming the same ProofHash must come from the
// identical underlying diff even when their redactions differ.
type ProofOutput struct {
	FileAHash string     `json:"file_a_hash"`
	FileBHash string     `json:"file_b_hash"`
	DiffLines []DiffLine `json:"diff_lines"`
	ProofHash string     `json:"proof_hash"`
}

// ProofRecord is the persisted result of one generate run. It is written
// once and consumed wholesale by the verifier; Receipt is the opaque
// attestation blob binding Output to MethodID.
type ProofRecord struct {
	Verified       bool        `json:"verified"`
	Output         ProofOutput `json:"output"`
	MethodID       string      `json:"method_id"`
	ProofGenerated bool        `json:"proof_generated"`
	Receipt        string      `json:"receipt"`
}

// DiffStats summarizes an edit script for display and history purposes.
type DiffStats struct {
	Inserts  int `json:"inserts"`
	Deletes  int `json:"deletes"`
	Redacted int `json:"redacted"`
}

// CalculateDiffStats tallies operations and redactions over a script.
func CalculateDiffStats(lines []DiffLine) DiffStats {
	var stats DiffStats
	for i := range lines {
		switch lines[i].Operation {
		case OperationInsert:
			stats.Inserts++
		case OperationDelete:
			stats.Deletes++
		}
		if lines[i].IsRedacted() {
			stats.Redacted++
		}
	}
	return stats
}
