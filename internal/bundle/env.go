// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"strings"

	"github.com/MKhiriev/bus-catch/internal/config"
)

// PublicEnvPrefix marks environment variables exposed to application code
// through import.meta.env. Nothing else from the environment is exposed.
const PublicEnvPrefix = "VITE_"

// EnvDefines returns the values import.meta.env resolves to: MODE, DEV,
// PROD, BASE_URL and every variable in environ carrying [PublicEnvPrefix].
func EnvDefines(mode config.Mode, base string, environ []string) map[string]any {
	defines := map[string]any{
		"MODE":     mode.String(),
		"DEV":      !mode.IsProduction(),
		"PROD":     mode.IsProduction(),
		"BASE_URL": base,
	}

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(key, PublicEnvPrefix) {
			defines[key] = value
		}
	}
	return defines
}
