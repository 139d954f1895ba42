package commitment

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zkdiff/internal/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestFileDigest_MatchesSHA256(t *testing.T) {
	content := []byte("line1\nline2\n")
	expected := sha256.Sum256(content)

	assert.Equal(t, expected, FileDigest(content))
	assert.Equal(t, hex.EncodeToString(expected[:]), FileDigestHex(content))
}

func TestFileDigest_EmptyContent(t *testing.T) {
	// SHA-256 of the empty string is a fixed, well-known value.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		FileDigestHex(nil))
}

func sampleScript() []models.DiffLine {
	return []models.DiffLine{
		{LineNumberA: intPtr(2), Operation: models.OperationDelete, Content: strPtr("old line")},
		{LineNumberB: intPtr(2), Operation: models.OperationInsert, Content: strPtr("new line")},
	}
}

func TestScriptCommitment_Deterministic(t *testing.T) {
	a := FileDigest([]byte("a"))
	b := FileDigest([]byte("b"))

	first := ScriptCommitment(a, b, sampleScript())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ScriptCommitment(a, b, sampleScript()))
	}
}

func TestScriptCommitment_BindsContent(t *testing.T) {
	a := FileDigest([]byte("a"))
	b := FileDigest([]byte("b"))
	base := ScriptCommitment(a, b, sampleScript())

	changed := sampleScript()
	changed[0].Content = strPtr("old line tampered")
	assert.NotEqual(t, base, ScriptCommitment(a, b, changed))
}

func TestScriptCommitment_BindsPositions(t *testing.T) {
	a := FileDigest([]byte("a"))
	b := FileDigest([]byte("b"))
	base := ScriptCommitment(a, b, sampleScript())

	moved := sampleScript()
	moved[0].LineNumberA = intPtr(3)
	assert.NotEqual(t, base, ScriptCommitment(a, b, moved))
}

func TestScriptCommitment_BindsFileDigests(t *testing.T) {
	a := FileDigest([]byte("a"))
	b := FileDigest([]byte("b"))
	base := ScriptCommitment(a, b, sampleScript())

	assert.NotEqual(t, base, ScriptCommitment(b, a, sampleScript()))
	assert.NotEqual(t, base, ScriptCommitment(a, FileDigest([]byte("c")), sampleScript()))
}

func TestScriptCommitment_BindsOperationKind(t *testing.T) {
	a := FileDigest([]byte("a"))
	b := FileDigest([]byte("b"))

	deleteOnly := []models.DiffLine{
		{LineNumberA: intPtr(1), Operation: models.OperationDelete, Content: strPtr("x")},
	}
	insertOnly := []models.DiffLine{
		{LineNumberB: intPtr(1), Operation: models.OperationInsert, Content: strPtr("x")},
	}

	assert.NotEqual(t,
		ScriptCommitment(a, b, deleteOnly),
		ScriptCommitment(a, b, insertOnly))
}

func TestScriptCommitment_LengthPrefixPreventsBoundaryShifts(t *testing.T) {
	a := FileDigest([]byte("a"))
	b := FileDigest([]byte("b"))

	// "ab"+"c" and "a"+"bc" across two entries must not collide.
	first := []models.DiffLine{
		{LineNumberA: intPtr(1), Operation: models.OperationDelete, Content: strPtr("ab")},
		{LineNumberA: intPtr(2), Operation: models.OperationDelete, Content: strPtr("c")},
	}
	second := []models.DiffLine{
		{LineNumberA: intPtr(1), Operation: models.OperationDelete, Content: strPtr("a")},
		{LineNumberA: intPtr(2), Operation: models.OperationDelete, Content: strPtr("bc")},
	}

	assert.NotEqual(t, ScriptCommitment(a, b, first), ScriptCommitment(a, b, second))
}

func TestScriptCommitment_EmptyScript(t *testing.T) {
	a := FileDigest([]byte("same"))
	digest := ScriptCommitmentHex(a, a, nil)
	require.Len(t, digest, 64)
}
