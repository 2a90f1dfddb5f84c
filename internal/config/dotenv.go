// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// dotEnvFiles lists the .env files for mode, most specific first.
// godotenv never overrides a variable that is already set, so the first
// file defining a variable wins.
func dotEnvFiles(mode string) []string {
	if mode == "" {
		mode = string(ModeDevelopment)
	}

	return []string{
		".env." + mode + ".local",
		".env." + mode,
		".env.local",
		".env",
	}
}

// loadDotEnv loads the existing .env files of dir into the process
// environment. The mode is read from APP_MODE as already set in the
// environment, falling back to defaultMode.
func loadDotEnv(dir string, defaultMode Mode) error {
	mode := os.Getenv("APP_MODE")
	if mode == "" {
		mode = string(defaultMode)
	}

	for _, name := range dotEnvFiles(mode) {
		path := filepath.Join(dir, name)

		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error reading env file %s: %w", path, err)
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("error loading env file %s: %w", path, err)
		}
	}

	return nil
}
