package crypto

import (
	"context"

	"github.com/MKhiriev/go-authenticator-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyProvider hands out the shared symmetric key. Each call returns a fresh
// slice the caller owns; the service wipes it when a batch is done.
type KeyProvider interface {
	GetAuthenticatorKey(ctx context.Context) ([]byte, error)
}

// CryptographyService converts shared items between their plaintext and
// sealed forms, one field at a time.
//
// The key is fetched once per call and never kept between calls, so a
// rotated key is picked up by the next batch. A missing key fails the whole
// batch; a field that cannot be sealed or opened only loses that field.
type CryptographyService interface {
	// DecryptItems opens every sealed field of items.
	DecryptItems(ctx context.Context, items []models.EncryptedItem) ([]models.ItemView, error)

	// EncryptItems seals every field of items with a fresh nonce per field.
	EncryptItems(ctx context.Context, items []models.ItemView) ([]models.EncryptedItem, error)
}
