package zkvm

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/sha3"

	"zkdiff/internal/models"
)

const receiptIssuer = "zkdiff-local-attestor"

// receiptClaims is the payload of a local attestation receipt. The journal
// is the canonical JSON encoding of the attested ProofOutput; its digest is
// carried separately so consumers can cross-check the decoded output.
type receiptClaims struct {
	MethodID      string `json:"method_id"`
	Journal       string `json:"journal"`
	JournalDigest string `json:"journal_digest"`
	jwt.RegisteredClaims
}

// attestorKey derives the receipt signing key for a program identity. The
// derivation is public, so receipts prove integrity and binding, not
// secrecy of the signer; production deployments substitute a real proving
// backend through the Prover and Verifier interfaces.
func attestorKey(methodID string) []byte {
	digest := sha3.Sum256([]byte("zkdiff/local-attestor/v1|" + methodID))
	return digest[:]
}

// journalDigest hashes the encoded journal bytes. SHA3 keeps the attestation
// hash space separate from the SHA-256 commitment space.
func journalDigest(journal []byte) string {
	digest := sha3.Sum256(journal)
	return hex.EncodeToString(digest[:])
}

// IssueReceipt signs a receipt binding the output journal to the method
// identity. The local attestor's key derivation is public, so anyone can
// issue receipts; they prove binding and integrity, not execution secrecy.
func IssueReceipt(methodID string, output *models.ProofOutput) (string, error) {
	journal, err := json.Marshal(output)
	if err != nil {
		return "", fmt.Errorf("failed to encode journal: %w", err)
	}

	claims := receiptClaims{
		MethodID:      methodID,
		Journal:       base64.StdEncoding.EncodeToString(journal),
		JournalDigest: journalDigest(journal),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: receiptIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(attestorKey(methodID))
	if err != nil {
		return "", fmt.Errorf("failed to sign receipt: %w", err)
	}
	return signed, nil
}

// openReceipt validates a receipt against the expected method identity and
// returns the attested output. A wrong program identity is reported as
// ErrMethodIDMismatch, any other defect as ErrBadReceipt.
func openReceipt(receipt, methodID string) (*models.ProofOutput, error) {
	// Read the claimed identity before checking the signature so identity
	// mismatches stay distinguishable from corrupted receipts.
	var unverified receiptClaims
	if _, _, err := jwt.NewParser().ParseUnverified(receipt, &unverified); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReceipt, err)
	}
	if unverified.MethodID != methodID {
		return nil, ErrMethodIDMismatch
	}

	var claims receiptClaims
	_, err := jwt.ParseWithClaims(receipt, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return attestorKey(methodID), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReceipt, err)
	}

	if claims.Issuer != receiptIssuer {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrBadReceipt, claims.Issuer)
	}

	journal, err := base64.StdEncoding.DecodeString(claims.Journal)
	if err != nil {
		return nil, fmt.Errorf("%w: journal is not valid base64", ErrBadReceipt)
	}
	if journalDigest(journal) != claims.JournalDigest {
		return nil, fmt.Errorf("%w: journal digest mismatch", ErrBadReceipt)
	}

	var output models.ProofOutput
	if err := json.Unmarshal(journal, &output); err != nil {
		return nil, fmt.Errorf("%w: journal does not decode", ErrBadReceipt)
	}
	return &output, nil
}
