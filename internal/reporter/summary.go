// Package reporter renders proof outputs for the console. Rendering is
// presentation only: nothing here feeds the commitment or the attestation.
package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"

	"zkdiff/internal/config"
	"zkdiff/internal/models"
)

// Reporter writes diff summaries and previews.
type Reporter struct {
	config *config.ReporterConfig
	logger zerolog.Logger
	dmp    *diffmatchpatch.DiffMatchPatch
}

// NewReporter creates a new Reporter.
func NewReporter(cfg *config.ReporterConfig, logger zerolog.Logger) *Reporter {
	return &Reporter{
		config: cfg,
		logger: logger.With().Str("component", "Reporter").Logger(),
		dmp:    diffmatchpatch.New(),
	}
}

// WriteSummary writes the one-line diff summary in +N -M form.
func (r *Reporter) WriteSummary(w io.Writer, output *models.ProofOutput) {
	stats := models.CalculateDiffStats(output.DiffLines)
	fmt.Fprintf(w, "Summary: +%d -%d lines, %d redacted\n", stats.Inserts, stats.Deletes, stats.Redacted)
}

// WritePreview renders the diff lines. Revealed deletions print as "-",
// insertions as "+"; redacted entries show only their hidden length. When
// highlighting is enabled, an adjacent revealed Delete/Insert pair gets a
// character-level change marker line computed with diffmatchpatch.
func (r *Reporter) WritePreview(w io.Writer, output *models.ProofOutput) {
	lines := output.DiffLines
	if r.config.MaxPreviewLines > 0 && len(lines) > r.config.MaxPreviewLines {
		lines = lines[:r.config.MaxPreviewLines]
		defer fmt.Fprintf(w, "... (%d more lines)\n", len(output.DiffLines)-r.config.MaxPreviewLines)
	}

	for i := 0; i < len(lines); i++ {
		line := &lines[i]

		if r.config.HighlightReplacements && r.isRevealedReplacePair(lines, i) {
			r.writeReplacePair(w, line, &lines[i+1])
			i++
			continue
		}

		fmt.Fprintln(w, renderLine(line))
	}
}

// isRevealedReplacePair reports whether lines[i] and lines[i+1] form an
// adjacent Delete/Insert pair with both contents revealed.
func (r *Reporter) isRevealedReplacePair(lines []models.DiffLine, i int) bool {
	if i+1 >= len(lines) {
		return false
	}
	return lines[i].Operation == models.OperationDelete &&
		lines[i+1].Operation == models.OperationInsert &&
		!lines[i].IsRedacted() &&
		!lines[i+1].IsRedacted()
}

// writeReplacePair renders a replace pair with a marker line under the
// insertion showing which characters changed.
func (r *Reporter) writeReplacePair(w io.Writer, deleted, inserted *models.DiffLine) {
	fmt.Fprintln(w, renderLine(deleted))
	fmt.Fprintln(w, renderLine(inserted))

	diffs := r.dmp.DiffMain(*deleted.Content, *inserted.Content, false)
	diffs = r.dmp.DiffCleanupSemantic(diffs)

	var marker strings.Builder
	marker.WriteString("  ")
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			marker.WriteString(strings.Repeat(" ", len([]rune(d.Text))))
		case diffmatchpatch.DiffInsert:
			marker.WriteString(strings.Repeat("^", len([]rune(d.Text))))
		case diffmatchpatch.DiffDelete:
			// Deleted runs occupy no columns on the inserted line.
		}
	}

	if strings.TrimSpace(marker.String()) != "" {
		fmt.Fprintln(w, strings.TrimRight(marker.String(), " "))
	}
}

// renderLine renders one diff line in unified-diff style.
func renderLine(line *models.DiffLine) string {
	prefix := "+"
	position := 0
	if line.Operation == models.OperationDelete {
		prefix = "-"
		if line.LineNumberA != nil {
			position = *line.LineNumberA
		}
	} else if line.LineNumberB != nil {
		position = *line.LineNumberB
	}

	if line.IsRedacted() {
		length := 0
		if line.RedactedLength != nil {
			length = *line.RedactedLength
		}
		return fmt.Sprintf("%s [redacted: %d chars] (line %d)", prefix, length, position)
	}
	return fmt.Sprintf("%s %s", prefix, *line.Content)
}
