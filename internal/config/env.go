// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Nested sections are read
// through their envPrefix tags, so the vault directory comes from VAULT_DIR
// and the retry ceiling from WORKERS_MAX_RETRIES. Unset variables leave the
// field zero for the later sources and defaults to fill.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
