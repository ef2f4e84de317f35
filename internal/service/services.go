package service

import (
	"github.com/MKhiriev/go-authenticator-bridge/internal/crypto"
	"github.com/MKhiriev/go-authenticator-bridge/internal/keychain"
	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
	"github.com/MKhiriev/go-authenticator-bridge/internal/store"
)

type Services struct {
	BridgeItemService BridgeItemService
}

// NewServices wires the item service on top of the keychain and the store,
// with request validation in front.
func NewServices(storages *store.Storages, kc *keychain.Keychain, logger *logger.Logger) *Services {
	cryptoService := crypto.NewSharedCryptographyService(kc.Repository)
	itemService := NewBridgeItemService(cryptoService, kc.Repository, storages.BridgeDataStore, logger)

	return &Services{
		BridgeItemService: NewBridgeItemValidationService().Wrap(itemService),
	}
}
