package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// hasherPool holds reusable unkeyed BLAKE2b-256 hashers.
var hasherPool = sync.Pool{
	New: func() any {
		// New256 only fails for keys longer than 64 bytes
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Hash computes the BLAKE2b-256 digest of data using a hasher pulled from
// the package pool.
//
// Example usage:
//
//	digest := utils.Hash(fileContents)
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString returns the hex-encoded digest of data. Workers use it to tell
// whether a watched file really changed between two write events.
func HashString(data []byte) string {
	return hex.EncodeToString(Hash(data))
}
