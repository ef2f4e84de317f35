package crypto

import "errors"

var (
	// ErrInvalidKey is returned when the shared key is not 256 bits long.
	ErrInvalidKey = errors.New("shared key must be 32 bytes")

	// ErrCreatingCipher is returned when the AEAD cannot be built from the key.
	ErrCreatingCipher = errors.New("failed to create cipher")

	// ErrGeneratingKey is returned when the OS random source fails.
	ErrGeneratingKey = errors.New("failed to generate key")

	errCiphertextTooShort = errors.New("ciphertext too short")
)
