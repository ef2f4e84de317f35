package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-authenticator-bridge/internal/config"
	"github.com/MKhiriev/go-authenticator-bridge/internal/keychain"
	"github.com/MKhiriev/go-authenticator-bridge/internal/logger"
	"github.com/MKhiriev/go-authenticator-bridge/internal/service"
	"github.com/MKhiriev/go-authenticator-bridge/internal/store"
	"github.com/MKhiriev/go-authenticator-bridge/internal/utils"
	"github.com/MKhiriev/go-authenticator-bridge/internal/workers"
)

// App is one process side of the bridge: the shared keychain, the shared
// database and the services built on them.
type App struct {
	Config   *config.StructuredConfig
	Keychain *keychain.Keychain
	Storages *store.Storages
	Services *service.Services

	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	kc, err := keychain.NewKeychain(cfg.Keychain, log)
	if err != nil {
		return nil, fmt.Errorf("create keychain: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	return &App{
		Config:   cfg,
		Keychain: kc,
		Storages: storages,
		Services: service.NewServices(storages, kc, log),
		logger:   log,
	}, nil
}

// RefreshWorker keeps the view context current with writes of other
// processes sharing the database file.
func (a *App) RefreshWorker() *workers.StoreRefreshWorker {
	return workers.NewStoreRefreshWorker(
		a.Storages.DatabasePath,
		a.Storages.BridgeDataStore.ViewContext(),
		a.Config.Workers.Debounce,
		a.logger,
	)
}

// Workers returns the vault file sync worker together with the refresh
// worker.
func (a *App) Workers() (*workers.Workers, error) {
	if a.Config.Workers.VaultFile == "" {
		return nil, errors.New(MsgNoVaultFile)
	}

	vault, err := workers.NewVaultFileSyncWorker(
		a.Config.Workers,
		a.Services.BridgeItemService,
		a.Keychain.Repository,
		utils.NewItemIDGenerator(),
		a.logger,
	)
	if err != nil {
		return nil, err
	}

	return workers.NewWorkers(vault, a.RefreshWorker()), nil
}

func (a *App) Close() error {
	return a.Storages.BridgeDataStore.Close()
}
