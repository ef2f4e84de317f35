// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
)

type fileEntry struct {
	AccessGroup string     `json:"access_group"`
	Service     string     `json:"service"`
	Account     string     `json:"account"`
	Data        []byte     `json:"data"`
	Accessible  Accessible `json:"accessible"`
}

type fileDocument struct {
	Entries []fileEntry `json:"entries"`
}

// fileKeychainService keeps entries in a single 0600 JSON document. The
// document is re-read on every call and replaced atomically on every write,
// so two processes pointed at the same path see each other's changes.
type fileKeychainService struct {
	mu   sync.Mutex
	path string
}

// NewFileKeychainService returns a KeychainService backed by the file at
// path. The file and its directory are created on first write.
func NewFileKeychainService(path string) KeychainService {
	return &fileKeychainService{path: path}
}

func (s *fileKeychainService) Add(ctx context.Context, attrs Attributes) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	if idx := doc.find(attrs.Query); idx >= 0 {
		return ErrDuplicateItem
	}

	doc.Entries = append(doc.Entries, fileEntry{
		AccessGroup: attrs.AccessGroup,
		Service:     attrs.Service,
		Account:     attrs.Account,
		Data:        attrs.Data,
		Accessible:  attrs.Accessible,
	})

	logger.FromContext(ctx).Debug().
		Str("func", "fileKeychainService.Add").
		Str("account", attrs.Account).
		Int("entries", len(doc.Entries)).
		Msg("saving keychain file")

	return s.save(doc)
}

func (s *fileKeychainService) Delete(ctx context.Context, q Query) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	idx := doc.find(q)
	if idx < 0 {
		return ErrItemNotFound
	}
	doc.Entries = append(doc.Entries[:idx], doc.Entries[idx+1:]...)

	logger.FromContext(ctx).Debug().
		Str("func", "fileKeychainService.Delete").
		Str("account", q.Account).
		Int("entries", len(doc.Entries)).
		Msg("saving keychain file")

	return s.save(doc)
}

func (s *fileKeychainService) Search(_ context.Context, q Query) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := doc.find(q)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	return doc.Entries[idx].Data, nil
}

func (s *fileKeychainService) load() (*fileDocument, error) {
	doc := &fileDocument{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingKeychain, err)
	}
	if len(data) == 0 {
		return doc, nil
	}

	if err = json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingKeychain, err)
	}
	return doc, nil
}

func (s *fileKeychainService) save(doc *fileDocument) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingKeychain, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingKeychain, err)
	}

	// every save writes its own sibling temp file and renames it over the
	// original, so concurrent writers never share a temp path
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingKeychain, err)
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWritingKeychain, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWritingKeychain, err)
	}
	if err = os.Chmod(tmpPath, 0o600); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWritingKeychain, err)
	}
	if err = os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWritingKeychain, err)
	}
	return nil
}

func (d *fileDocument) find(q Query) int {
	for i, e := range d.Entries {
		if e.AccessGroup == q.AccessGroup && e.Service == q.Service && e.Account == q.Account {
			return i
		}
	}
	return -1
}
