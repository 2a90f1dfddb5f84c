// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/bus-catch/internal/config"
	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/metrics"
	"github.com/stretchr/testify/require"
)

// newTestConfig returns a config whose build output is a small dist tree in
// a temp dir.
func newTestConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()

	root := t.TempDir()
	files := map[string]string{
		"dist/index.html":              `<!doctype html><html><head></head><body><div id="app"></div></body></html>`,
		"dist/assets/index-0a1b2c3d.js": `console.log("app");`,
		"dist/favicon.ico":             "icon",
	}
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}

	cfg := config.Defaults()
	cfg.Build.Root = root
	cfg.App.APIKey = "secret-key"
	return cfg
}

func newTestRouter(t *testing.T, cfg *config.StructuredConfig, opts ...Option) http.Handler {
	t.Helper()

	h, err := NewHandler(cfg, metrics.New("web"), logger.Nop(), opts...)
	require.NoError(t, err)
	return h.Init()
}

func serve(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
