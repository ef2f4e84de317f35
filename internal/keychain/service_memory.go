package keychain

import (
	"bytes"
	"context"
	"sync"
)

type memoryEntry struct {
	data       []byte
	accessible Accessible
}

// memoryKeychainService is a process-local KeychainService used by tests
// and by the in-memory store type.
type memoryKeychainService struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryKeychainService creates an empty in-memory keychain.
func NewMemoryKeychainService() KeychainService {
	return &memoryKeychainService{entries: make(map[string]memoryEntry)}
}

func (s *memoryKeychainService) Add(_ context.Context, attrs Attributes) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := attrs.Query.key()
	if _, ok := s.entries[k]; ok {
		return ErrDuplicateItem
	}
	s.entries[k] = memoryEntry{data: bytes.Clone(attrs.Data), accessible: attrs.Accessible}
	return nil
}

func (s *memoryKeychainService) Delete(_ context.Context, q Query) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := q.key()
	if _, ok := s.entries[k]; !ok {
		return ErrItemNotFound
	}
	delete(s.entries, k)
	return nil
}

func (s *memoryKeychainService) Search(_ context.Context, q Query) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[q.key()]
	if !ok {
		return nil, ErrItemNotFound
	}
	return bytes.Clone(e.data), nil
}
