package keychain

import (
	"fmt"

	"github.com/MKhiriev/go-authenticator-bridge/internal/config"
	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
)

// Keychain groups the shared keychain layers built from one configuration.
type Keychain struct {
	Service    KeychainService
	Storage    SharedKeychainStorage
	Repository SharedKeychainRepository
}

// NewKeychain selects the backend named by cfg.Backend and stacks the
// storage and repository layers on top of it.
func NewKeychain(cfg config.Keychain, log *logger.Logger) (*Keychain, error) {
	var (
		svc KeychainService
		err error
	)

	switch cfg.Backend {
	case config.KeychainBackendSystem:
		svc, err = NewSystemKeychainService()
	case config.KeychainBackendFile:
		svc = NewFileKeychainService(cfg.FilePath)
	case config.KeychainBackendMemory:
		svc = NewMemoryKeychainService()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		log.Err(err).Str("func", "NewKeychain").Str("backend", cfg.Backend).Msg("error creating keychain service")
		return nil, err
	}

	log.Debug().
		Str("func", "NewKeychain").
		Str("backend", cfg.Backend).
		Str("access_group", cfg.AccessGroup).
		Msg("keychain created")

	storage := NewSharedKeychainStorage(svc, cfg.AccessGroup, cfg.Service)
	return &Keychain{
		Service:    svc,
		Storage:    storage,
		Repository: NewSharedKeychainRepository(storage),
	}, nil
}
