// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fileSuffixes are tried in order after the specifier as written.
var fileSuffixes = []string{".js", ".mjs", ".vue", "/index.js"}

const nodeModules = "node_modules"

// Resolver maps import specifiers to absolute file paths.
type Resolver struct {
	root     string
	alias    map[string]string
	packages map[string]string
}

// NewResolver returns a resolver for cfg's root and aliases.
func NewResolver(cfg *Config) *Resolver {
	return &Resolver{root: cfg.Root, alias: cfg.Alias, packages: cfg.PackageAlias}
}

// Resolve returns the file specifier refers to when imported from importer.
//
// A package alias replaces a bare specifier only on an exact match, so
// "vue" may be redirected while "vue/x" is left alone. Aliases apply only
// at a "/" boundary, so "@/x" is aliased and "@x" is a package. "./" and
// "../" are relative to importer's directory. Anything else is a package
// under <root>/node_modules.
func (r *Resolver) Resolve(importer, specifier string) (string, error) {
	var candidate string

	if target, ok := r.packages[specifier]; ok {
		specifier = target
	}

	switch {
	case specifier == "":
		return "", fmt.Errorf("%w: empty specifier in %s", ErrUnresolvedImport, importer)
	case r.aliased(specifier) != "":
		candidate = r.aliased(specifier)
	case strings.HasPrefix(specifier, "./"), strings.HasPrefix(specifier, "../"):
		candidate = filepath.Join(filepath.Dir(importer), filepath.FromSlash(specifier))
	case strings.HasPrefix(specifier, "/"):
		candidate = filepath.Join(r.root, filepath.FromSlash(specifier))
	default:
		path, err := r.resolvePackage(specifier)
		if err != nil {
			return "", fmt.Errorf("%w: %q from %s: %v", ErrUnresolvedImport, specifier, importer, err)
		}
		candidate = path
	}

	if path, ok := lookupFile(candidate); ok {
		return path, nil
	}

	return "", fmt.Errorf("%w: %q from %s", ErrUnresolvedImport, specifier, importer)
}

func (r *Resolver) aliased(specifier string) string {
	for prefix, dir := range r.alias {
		if specifier == prefix {
			return dir
		}
		if rest, ok := strings.CutPrefix(specifier, prefix+"/"); ok {
			return filepath.Join(dir, filepath.FromSlash(rest))
		}
	}
	return ""
}

type packageJSON struct {
	Module string `json:"module"`
	Main   string `json:"main"`
}

func (r *Resolver) resolvePackage(specifier string) (string, error) {
	name, sub := splitPackage(specifier)
	dir := filepath.Join(r.root, nodeModules, filepath.FromSlash(name))

	if sub != "" {
		return filepath.Join(dir, filepath.FromSlash(sub)), nil
	}

	entry := "index.js"
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	switch {
	case err == nil:
		var pkg packageJSON
		if err = json.Unmarshal(data, &pkg); err != nil {
			return "", fmt.Errorf("parse package.json of %s: %w", name, err)
		}
		if pkg.Module != "" {
			entry = pkg.Module
		} else if pkg.Main != "" {
			entry = pkg.Main
		}
	case !os.IsNotExist(err):
		return "", err
	}

	return filepath.Join(dir, filepath.FromSlash(entry)), nil
}

// splitPackage splits "pkg/sub" or "@scope/pkg/sub" into name and subpath.
func splitPackage(specifier string) (name, sub string) {
	parts := strings.SplitN(specifier, "/", 3)
	if strings.HasPrefix(specifier, "@") && len(parts) > 1 {
		name = parts[0] + "/" + parts[1]
		if len(parts) == 3 {
			sub = parts[2]
		}
		return name, sub
	}

	name, sub, _ = strings.Cut(specifier, "/")
	return name, sub
}

// packageOf returns the package a file under root/node_modules belongs to,
// or "" for application files.
func packageOf(root, path string) string {
	rel, err := filepath.Rel(filepath.Join(root, nodeModules), path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	name, _ := splitPackage(filepath.ToSlash(rel))
	return name
}

func lookupFile(path string) (string, bool) {
	if isFile(path) {
		return filepath.Clean(path), true
	}
	for _, suffix := range fileSuffixes {
		if p := path + filepath.FromSlash(suffix); isFile(p) {
			return filepath.Clean(p), true
		}
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
