// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/bus-catch/internal/utils"
)

const immutableCache = "public, max-age=31536000, immutable"

// newSPAHandler serves files from dir under base. Paths without a file
// extension are application routes and get index.html. Files under
// assetsDir carry content hashes and are cached indefinitely.
func newSPAHandler(dir, base, assetsDir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	assetsPrefix := "/" + strings.Trim(assetsDir, "/") + "/"

	spa := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if p == "" || path.Ext(p) == "" {
			r.URL.Path = "/"
			w.Header().Set("Cache-Control", "no-cache")
		} else if strings.HasPrefix(p, assetsPrefix) {
			w.Header().Set("Cache-Control", immutableCache)
		}
		fileServer.ServeHTTP(w, r)
	})

	prefix := strings.TrimSuffix(base, "/")
	if prefix == "" {
		return spa
	}
	return http.StripPrefix(prefix, spa)
}

// withoutPrefix answers 404 for prefix and everything below it instead of
// passing the request to next. API calls that no proxy took get an error
// rather than index.html.
func withoutPrefix(prefix string, next http.Handler) http.Handler {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			utils.WriteError(w, errMsgNotProxied, http.StatusNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
