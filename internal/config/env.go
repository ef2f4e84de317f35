// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix keeps the bridge variables apart from those of the apps that
// embed it.
const envPrefix = "BRIDGE_"

// parseEnv fills cfg from BRIDGE_* variables via caarlos0/env.
//
// The shared paths (keychain file, container dir, vault file) are tagged
// expand, so both apps can name the same location relative to $HOME, e.g.
// BRIDGE_STORAGE_DB_CONTAINER_DIR=$HOME/Library/Group Containers/group.bridge.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error reading %s* environment: %w", envPrefix, err)
	}
	return nil
}
