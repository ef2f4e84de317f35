// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals and opens shared bridge items with the symmetric key
// both apps read from the shared keychain.
//
// Every sensitive field is sealed on its own with AES-256-GCM and a fresh
// 96-bit nonce, and stored as base64(nonce ‖ ciphertext ‖ tag). An empty or
// non-base64 field opens to "not set" rather than an error.
package crypto

import (
	"context"
	"crypto/cipher"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
	"github.com/MKhiriev/go-authenticator-bridge/models"
)

type sharedCryptographyService struct {
	keys KeyProvider
}

// NewSharedCryptographyService returns a [CryptographyService] that reads
// the key from keys on every batch.
func NewSharedCryptographyService(keys KeyProvider) CryptographyService {
	return &sharedCryptographyService{keys: keys}
}

// DecryptItems implements [CryptographyService]. Fields that cannot be
// opened come back as nil; name, domain and email come back as "".
func (s *sharedCryptographyService) DecryptItems(ctx context.Context, items []models.EncryptedItem) ([]models.ItemView, error) {
	log := logger.FromContext(ctx)

	aead, err := s.batchAEAD(ctx, "sharedCryptographyService.DecryptItems")
	if err != nil {
		return nil, err
	}

	views := make([]models.ItemView, 0, len(items))
	for _, item := range items {
		opener := fieldOpener{aead: aead, log: log, itemID: item.ID}

		views = append(views, models.ItemView{
			ID:            item.ID,
			Name:          opener.openRequired("name", item.Name),
			Favorite:      item.Favorite,
			AccountDomain: opener.openOptionalDefault("accountDomain", item.AccountDomain),
			AccountEmail:  opener.openOptionalDefault("accountEmail", item.AccountEmail),
			TotpKey:       opener.openOptional("totpKey", item.TotpKey),
			Username:      opener.openOptional("username", item.Username),
		})
	}

	log.Debug().
		Str("func", "sharedCryptographyService.DecryptItems").
		Int("count", len(views)).
		Msg("items decrypted")

	return views, nil
}

// EncryptItems implements [CryptographyService]. Absent and empty values
// stay absent; no placeholder ciphertext is produced for them.
func (s *sharedCryptographyService) EncryptItems(ctx context.Context, items []models.ItemView) ([]models.EncryptedItem, error) {
	log := logger.FromContext(ctx)

	aead, err := s.batchAEAD(ctx, "sharedCryptographyService.EncryptItems")
	if err != nil {
		return nil, err
	}

	sealed := make([]models.EncryptedItem, 0, len(items))
	for _, item := range items {
		sealer := fieldSealer{aead: aead, log: log, itemID: item.ID}

		name := ""
		if p := sealer.seal("name", &item.Name); p != nil {
			name = *p
		}

		sealed = append(sealed, models.EncryptedItem{
			ID:            item.ID,
			Name:          name,
			Favorite:      item.Favorite,
			AccountDomain: sealer.seal("accountDomain", item.AccountDomain),
			AccountEmail:  sealer.seal("accountEmail", item.AccountEmail),
			TotpKey:       sealer.seal("totpKey", item.TotpKey),
			Username:      sealer.seal("username", item.Username),
		})
	}

	log.Debug().
		Str("func", "sharedCryptographyService.EncryptItems").
		Int("count", len(sealed)).
		Msg("items encrypted")

	return sealed, nil
}

// batchAEAD fetches the key once and builds the cipher for one batch. The
// key buffer is wiped before returning; the AEAD keeps its own schedule.
func (s *sharedCryptographyService) batchAEAD(ctx context.Context, fn string) (cipher.AEAD, error) {
	log := logger.FromContext(ctx)

	key, err := s.keys.GetAuthenticatorKey(ctx)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to get authenticator key")
		return nil, err
	}
	defer memguard.WipeBytes(key)

	aead, err := newAEAD(key)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create cipher from authenticator key")
		return nil, err
	}
	return aead, nil
}

type fieldSealer struct {
	aead   cipher.AEAD
	log    *logger.Logger
	itemID string
}

func (f fieldSealer) seal(field string, value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	out, err := sealString(f.aead, *value)
	if err != nil {
		f.log.Warn().Err(err).
			Str("func", "fieldSealer.seal").
			Str("item_id", f.itemID).
			Str("field", field).
			Msg("field left unset: seal failed")
		return nil
	}
	return &out
}

type fieldOpener struct {
	aead   cipher.AEAD
	log    *logger.Logger
	itemID string
}

func (f fieldOpener) openOptional(field string, value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	out, err := openString(f.aead, *value)
	if err != nil {
		f.log.Debug().Err(err).
			Str("func", "fieldOpener.openOptional").
			Str("item_id", f.itemID).
			Str("field", field).
			Msg("field left unset: open failed")
		return nil
	}
	return &out
}

func (f fieldOpener) openRequired(field, value string) string {
	if out := f.openOptional(field, &value); out != nil {
		return *out
	}
	return ""
}

func (f fieldOpener) openOptionalDefault(field string, value *string) *string {
	if value == nil {
		return nil
	}
	out := f.openRequired(field, *value)
	return &out
}
