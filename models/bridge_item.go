// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// TemporaryUserID is the owner id of the single hand-off item that the
// password manager parks for the authenticator (e.g. a freshly scanned
// TOTP secret that has not been attached to any account yet).
const TemporaryUserID = "000000000000"

// ErrEmptyModelData is returned by [BridgeItemRecord.Model] when the record
// has no encoded payload attached.
var ErrEmptyModelData = errors.New("bridge item has no model data")

// BridgeItemRecord is a single row of the shared bridge_items table.
//
// ObjectID is assigned by the store and identifies the row inside change sets
// and object contexts. ID is assigned by the producing app and is never
// regenerated by the store.
type BridgeItemRecord struct {
	ObjectID  int64
	ID        string
	UserID    string
	ModelData []byte
}

// Model decodes the JSON payload of the record.
func (r BridgeItemRecord) Model() (EncryptedItem, error) {
	if r.ModelData == nil {
		return EncryptedItem{}, ErrEmptyModelData
	}

	var item EncryptedItem
	if err := json.Unmarshal(r.ModelData, &item); err != nil {
		return EncryptedItem{}, fmt.Errorf("decode bridge item %q: %w", r.ID, err)
	}

	return item, nil
}

// EncryptedItem is the storage form of a shared item. Every string field
// except ID holds an independently sealed ciphertext, so a broken field
// never makes its siblings unreadable.
type EncryptedItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Favorite      bool    `json:"favorite"`
	AccountDomain *string `json:"accountDomain,omitempty"`
	AccountEmail  *string `json:"accountEmail,omitempty"`
	TotpKey       *string `json:"totpKey,omitempty"`
	Username      *string `json:"username,omitempty"`
}

// ItemView is the decrypted form of a shared item handed to callers.
// It is never persisted.
type ItemView struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Favorite      bool    `json:"favorite" yaml:"favorite"`
	AccountDomain *string `json:"accountDomain,omitempty" yaml:"accountDomain,omitempty"`
	AccountEmail  *string `json:"accountEmail,omitempty" yaml:"accountEmail,omitempty"`
	TotpKey       *string `json:"totpKey,omitempty" yaml:"totpKey,omitempty"`
	Username      *string `json:"username,omitempty" yaml:"username,omitempty"`
}

// AccountName returns the display label of the owning account:
// non-empty email and domain joined by " | ".
func (v ItemView) AccountName() string {
	parts := make([]string, 0, 2)
	for _, p := range []*string{v.AccountEmail, v.AccountDomain} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, " | ")
}

// SharedItemsUpdate is one emission of the shared items feed. A non-nil Err
// is always the last update sent on a feed.
type SharedItemsUpdate struct {
	Items []ItemView
	Err   error
}
