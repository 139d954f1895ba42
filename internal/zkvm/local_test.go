package zkvm

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zkdiff/internal/commitment"
	"zkdiff/internal/models"
	"zkdiff/internal/redact"
)

func sealedInput(t *testing.T, contentA, contentB string, ranges []redact.Range) SealedInput {
	t.Helper()
	return SealedInput{
		FileAHash:    commitment.FileDigestHex([]byte(contentA)),
		FileBHash:    commitment.FileDigestHex([]byte(contentB)),
		FileAContent: contentA,
		FileBContent: contentB,
		Ranges:       ranges,
	}
}

func TestGuestMethodID_Stable(t *testing.T) {
	id := GuestMethodID()
	assert.Equal(t, id, GuestMethodID())

	raw, err := hex.DecodeString(id)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestLocalProver_ExecuteProducesExpectedScript(t *testing.T) {
	prover := NewLocalProver(zerolog.Nop())
	input := sealedInput(t, "line1\nline2\nline3\n", "line1\nmodified\nline3\nline4\n", nil)

	output, receipt, err := prover.Execute(GuestMethodID(), input)
	require.NoError(t, err)
	require.NotEmpty(t, receipt)

	require.Len(t, output.DiffLines, 3)

	assert.Equal(t, models.OperationDelete, output.DiffLines[0].Operation)
	require.NotNil(t, output.DiffLines[0].LineNumberA)
	assert.Equal(t, 2, *output.DiffLines[0].LineNumberA)
	require.NotNil(t, output.DiffLines[0].Content)
	assert.Equal(t, "line2", *output.DiffLines[0].Content)

	assert.Equal(t, models.OperationInsert, output.DiffLines[1].Operation)
	require.NotNil(t, output.DiffLines[1].LineNumberB)
	assert.Equal(t, 2, *output.DiffLines[1].LineNumberB)
	require.NotNil(t, output.DiffLines[1].Content)
	assert.Equal(t, "modified", *output.DiffLines[1].Content)

	assert.Equal(t, models.OperationInsert, output.DiffLines[2].Operation)
	require.NotNil(t, output.DiffLines[2].LineNumberB)
	assert.Equal(t, 4, *output.DiffLines[2].LineNumberB)
	require.NotNil(t, output.DiffLines[2].Content)
	assert.Equal(t, "line4", *output.DiffLines[2].Content)
}

func TestLocalProver_ExecuteIsDeterministic(t *testing.T) {
	prover := NewLocalProver(zerolog.Nop())
	input := sealedInput(t, "a\nb\nc\n", "a\nx\nc\n", nil)

	first, _, err := prover.Execute(GuestMethodID(), input)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		output, _, err := prover.Execute(GuestMethodID(), input)
		require.NoError(t, err)
		assert.Equal(t, first, output)
	}
}

func TestLocalProver_ExecuteRejectsUnknownProgram(t *testing.T) {
	prover := NewLocalProver(zerolog.Nop())
	input := sealedInput(t, "a\n", "b\n", nil)

	_, _, err := prover.Execute("deadbeef", input)
	require.Error(t, err)

	var execErr *ExecutionError
	assert.ErrorAs(t, err, &execErr)
}

func TestLocalProver_ExecuteRejectsSealedHashMismatch(t *testing.T) {
	prover := NewLocalProver(zerolog.Nop())
	input := sealedInput(t, "a\n", "b\n", nil)
	input.FileAHash = commitment.FileDigestHex([]byte("something else"))

	_, _, err := prover.Execute(GuestMethodID(), input)
	require.Error(t, err)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "guest", execErr.Stage)
}

func TestLocalProver_VerifyRoundTrip(t *testing.T) {
	prover := NewLocalProver(zerolog.Nop())
	input := sealedInput(t, "a\nb\n", "a\nc\n", nil)

	output, receipt, err := prover.Execute(GuestMethodID(), input)
	require.NoError(t, err)

	attested, err := prover.Verify(receipt, GuestMethodID())
	require.NoError(t, err)
	assert.Equal(t, output, attested)
}

func TestLocalProver_VerifyDetectsTamperedReceipt(t *testing.T) {
	prover := NewLocalProver(zerolog.Nop())
	input := sealedInput(t, "a\n", "b\n", nil)

	_, receipt, err := prover.Execute(GuestMethodID(), input)
	require.NoError(t, err)

	// Flip one character of the signed token.
	tampered := []byte(receipt)
	idx := len(tampered) / 2
	if tampered[idx] == 'A' {
		tampered[idx] = 'B'
	} else {
		tampered[idx] = 'A'
	}

	_, err = prover.Verify(string(tampered), GuestMethodID())
	require.Error(t, err)
}

func TestLocalProver_VerifyDetectsMethodIDMismatch(t *testing.T) {
	prover := NewLocalProver(zerolog.Nop())
	input := sealedInput(t, "a\n", "b\n", nil)

	_, receipt, err := prover.Execute(GuestMethodID(), input)
	require.NoError(t, err)

	other := strings.Repeat("ab", 32)
	_, err = prover.Verify(receipt, other)
	assert.ErrorIs(t, err, ErrMethodIDMismatch)
}

func TestLocalProver_VerifyRejectsGarbage(t *testing.T) {
	prover := NewLocalProver(zerolog.Nop())

	_, err := prover.Verify("not a receipt", GuestMethodID())
	assert.ErrorIs(t, err, ErrBadReceipt)
}

func TestGuest_ProofHashBindsRedactedContent(t *testing.T) {
	prover := NewLocalProver(zerolog.Nop())
	ranges, err := redact.ParseRanges("i:2-2")
	require.NoError(t, err)

	first, _, err := prover.Execute(GuestMethodID(), sealedInput(t, "a\nb\n", "a\nsecret-1\n", ranges))
	require.NoError(t, err)
	second, _, err := prover.Execute(GuestMethodID(), sealedInput(t, "a\nb\n", "a\nsecret-2\n", ranges))
	require.NoError(t, err)

	// Both outputs hide an 8-character line; only the commitment tells
	// them apart.
	require.True(t, first.DiffLines[1].IsRedacted())
	require.True(t, second.DiffLines[1].IsRedacted())
	assert.Equal(t, *first.DiffLines[1].RedactedLength, *second.DiffLines[1].RedactedLength)
	assert.NotEqual(t, first.ProofHash, second.ProofHash)
}

func TestGuest_RedactionHidesContentEverywhere(t *testing.T) {
	prover := NewLocalProver(zerolog.Nop())
	ranges, err := redact.ParseRanges("r:1-100")
	require.NoError(t, err)

	secret := "hunter2-super-secret"
	output, receipt, err := prover.Execute(GuestMethodID(),
		sealedInput(t, secret+"\n", "replacement\n", ranges))
	require.NoError(t, err)

	for i := range output.DiffLines {
		assert.True(t, output.DiffLines[i].IsRedacted())
	}
	assert.NotContains(t, receipt, secret)
}
