// Package commitment computes the digests that bind a proof output to the
// files and the full edit script it was derived from.
//
// The script commitment is computed over a canonical byte encoding of the
// two file digests followed by every non-Keep edit in script order:
//
//	op byte         0x01 Insert, 0x02 Delete
//	position        uint64 little-endian, 1-indexed (file A for Delete, file B for Insert)
//	content length  uint64 little-endian, byte length of the true line
//	content bytes   the true, pre-redaction line content
//
// Length prefixes make the encoding injective. The commitment is always fed
// the pre-redaction script, so the exposed proof hash binds the hidden lines'
// true content even though that content never appears in the output.
package commitment

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"zkdiff/internal/models"
)

// DigestSize is the byte length of all digests produced by this package.
const DigestSize = sha256.Size

// Operation tag bytes of the canonical script encoding.
const (
	tagInsert byte = 0x01
	tagDelete byte = 0x02
)

// FileDigest hashes raw file content, independent of line splitting.
func FileDigest(content []byte) [DigestSize]byte {
	return sha256.Sum256(content)
}

// FileDigestHex returns the hex-encoded file digest.
func FileDigestHex(content []byte) string {
	digest := FileDigest(content)
	return hex.EncodeToString(digest[:])
}

// ScriptCommitment binds the two file digests and the pre-redaction edit
// script into a single digest. Every entry must still carry its true
// content; redacted placeholders never enter the hash.
func ScriptCommitment(fileADigest, fileBDigest [DigestSize]byte, script []models.DiffLine) [DigestSize]byte {
	hasher := sha256.New()
	hasher.Write(fileADigest[:])
	hasher.Write(fileBDigest[:])

	var scratch [8]byte
	for i := range script {
		line := &script[i]

		var tag byte
		var position int
		switch line.Operation {
		case models.OperationInsert:
			tag = tagInsert
			position = valueOrZero(line.LineNumberB)
		case models.OperationDelete:
			tag = tagDelete
			position = valueOrZero(line.LineNumberA)
		default:
			continue
		}

		var content string
		if line.Content != nil {
			content = *line.Content
		}

		hasher.Write([]byte{tag})
		binary.LittleEndian.PutUint64(scratch[:], uint64(position))
		hasher.Write(scratch[:])
		binary.LittleEndian.PutUint64(scratch[:], uint64(len(content)))
		hasher.Write(scratch[:])
		hasher.Write([]byte(content))
	}

	var digest [DigestSize]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// ScriptCommitmentHex returns the hex-encoded script commitment.
func ScriptCommitmentHex(fileADigest, fileBDigest [DigestSize]byte, script []models.DiffLine) string {
	digest := ScriptCommitment(fileADigest, fileBDigest, script)
	return hex.EncodeToString(digest[:])
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
