package reporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"zkdiff/internal/config"
	"zkdiff/internal/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func newTestReporter() *Reporter {
	cfg := config.NewDefaultReporterConfig()
	return NewReporter(&cfg, zerolog.Nop())
}

func sampleOutput() *models.ProofOutput {
	return &models.ProofOutput{
		DiffLines: []models.DiffLine{
			{LineNumberA: intPtr(2), Operation: models.OperationDelete, Content: strPtr("old value")},
			{LineNumberB: intPtr(2), Operation: models.OperationInsert, Content: strPtr("new value")},
			{LineNumberB: intPtr(4), Operation: models.OperationInsert, RedactedLength: intPtr(12)},
		},
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	newTestReporter().WriteSummary(&buf, sampleOutput())

	assert.Equal(t, "Summary: +2 -1 lines, 1 redacted\n", buf.String())
}

func TestWritePreview_RevealedAndRedactedLines(t *testing.T) {
	var buf bytes.Buffer
	newTestReporter().WritePreview(&buf, sampleOutput())
	out := buf.String()

	assert.Contains(t, out, "- old value")
	assert.Contains(t, out, "+ new value")
	assert.Contains(t, out, "[redacted: 12 chars] (line 4)")
	assert.NotContains(t, out, "secret")
}

func TestWritePreview_CapsLines(t *testing.T) {
	cfg := config.NewDefaultReporterConfig()
	cfg.MaxPreviewLines = 1
	cfg.HighlightReplacements = false
	r := NewReporter(&cfg, zerolog.Nop())

	var buf bytes.Buffer
	r.WritePreview(&buf, sampleOutput())

	assert.Contains(t, buf.String(), "(2 more lines)")
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestWritePreview_RedactedPairGetsNoHighlight(t *testing.T) {
	output := &models.ProofOutput{
		DiffLines: []models.DiffLine{
			{LineNumberA: intPtr(1), Operation: models.OperationDelete, RedactedLength: intPtr(6)},
			{LineNumberB: intPtr(1), Operation: models.OperationInsert, RedactedLength: intPtr(8)},
		},
	}

	var buf bytes.Buffer
	newTestReporter().WritePreview(&buf, output)

	assert.NotContains(t, buf.String(), "^")
	assert.Contains(t, buf.String(), "[redacted: 6 chars]")
	assert.Contains(t, buf.String(), "[redacted: 8 chars]")
}
