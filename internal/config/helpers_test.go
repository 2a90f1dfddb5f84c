// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",
	"APP_MODE", "APP_API_KEY", "APP_API_BASE", "APP_ORIGIN",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
	"BUILD_ROOT", "BUILD_SRC_DIR", "BUILD_PUBLIC_DIR", "BUILD_OUT_DIR", "BUILD_ASSETS_DIR", "BUILD_BASE",
	"PROXY_PREFIX", "PROXY_TARGET",
	"RELAY_ADDRESS", "RELAY_UPSTREAM", "RELAY_API_KEY",
}

// clearEnvVars unsets every variable the config reads; the previous values
// are restored when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
