package redact

import (
	"unicode/utf8"

	"zkdiff/internal/models"
)

// Apply filters an edit script in place of its content: entries whose
// position is covered by a range of the matching operation lose their
// content and gain the character length of the hidden line instead. The
// input script is not modified; a new script is returned in the same order.
// Overlapping ranges of the same operation union naturally, since coverage
// by any one range redacts the entry.
func Apply(lines []models.DiffLine, ranges []Range) []models.DiffLine {
	out := make([]models.DiffLine, len(lines))
	for i := range lines {
		out[i] = lines[i]
		if !shouldRedact(&lines[i], ranges) {
			continue
		}

		length := utf8.RuneCountInString(*lines[i].Content)
		out[i].Content = nil
		out[i].RedactedLength = &length
	}
	return out
}

// shouldRedact determines the entry's 1-indexed position in the file its
// operation addresses and checks it against every range.
func shouldRedact(line *models.DiffLine, ranges []Range) bool {
	if line.Content == nil {
		return false
	}

	var position int
	switch line.Operation {
	case models.OperationDelete:
		if line.LineNumberA == nil {
			return false
		}
		position = *line.LineNumberA
	case models.OperationInsert:
		if line.LineNumberB == nil {
			return false
		}
		position = *line.LineNumberB
	default:
		return false
	}

	for _, r := range ranges {
		if r.Covers(line.Operation, position) {
			return true
		}
	}
	return false
}
