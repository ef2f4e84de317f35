package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// GenerateKey returns a new random 256-bit shared key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneratingKey, err)
	}
	return key, nil
}

// Fingerprint is a short, non-reversible label for key: the first 8 bytes of
// its BLAKE2b-256 digest in hex. Two processes can compare fingerprints to
// confirm they share a key without exposing it.
func Fingerprint(key []byte) string {
	sum := blake2b.Sum256(key)
	return hex.EncodeToString(sum[:8])
}
