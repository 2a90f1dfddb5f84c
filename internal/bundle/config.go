// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"fmt"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/bus-catch/internal/config"
)

// IndexChunk is the name of the chunk holding every module no manual chunk
// claims. It cannot be used as a manual chunk name.
const IndexChunk = "index"

// AliasPrefix maps imports starting with "@/" to the source directory.
const AliasPrefix = "@"

// VueCompilerBuild is the vue build that compiles template strings in the
// browser. Components carry their template as a string, so "vue" resolves
// here rather than to the runtime-only build.
const VueCompilerBuild = "vue/dist/vue.esm-bundler.js"

// Config is the declarative build and dev-server configuration.
type Config struct {
	// Root is the absolute project root containing index.html.
	Root string
	// SrcDir is the absolute source directory.
	SrcDir string
	// PublicDir is the absolute directory copied verbatim to the output.
	PublicDir string

	Plugins []Plugin
	// Alias maps an import prefix to an absolute directory.
	Alias map[string]string
	// PackageAlias maps a bare package specifier to the specifier it is
	// resolved as.
	PackageAlias map[string]string
	// Base is the public path every emitted URL is prefixed with.
	Base string

	Server ServerOptions
	Build  BuildOptions
}

// ServerOptions configures the development server.
type ServerOptions struct {
	Proxy []ProxyRule
}

// ProxyRule is a declarative development proxy entry.
type ProxyRule struct {
	Prefix       string
	Target       string
	ChangeOrigin bool
}

// BuildOptions configures the production output.
type BuildOptions struct {
	// OutDir is relative to Root.
	OutDir string
	// AssetsDir is relative to OutDir.
	AssetsDir string
	// ManualChunks maps a chunk name to the packages it holds.
	ManualChunks map[string][]string
}

// NewConfig builds the configuration from the loaded settings and validates
// it.
func NewConfig(build config.Build, proxy config.Proxy) (*Config, error) {
	root, err := filepath.Abs(build.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: root %q: %v", ErrInvalidConfig, build.Root, err)
	}
	src := filepath.Join(root, build.SrcDir)

	cfg := &Config{
		Root:         root,
		SrcDir:       src,
		PublicDir:    filepath.Join(root, build.PublicDir),
		Plugins:      []Plugin{Vue(), DevTools()},
		Alias:        map[string]string{AliasPrefix: src},
		PackageAlias: map[string]string{"vue": VueCompilerBuild},
		Base:         build.Base,
		Server: ServerOptions{
			Proxy: []ProxyRule{{Prefix: proxy.Prefix, Target: proxy.Target, ChangeOrigin: true}},
		},
		Build: BuildOptions{
			OutDir:       build.OutDir,
			AssetsDir:    build.AssetsDir,
			ManualChunks: map[string][]string{"vendor": {"vue"}},
		},
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// OutPath returns the absolute output directory.
func (c *Config) OutPath() string {
	return filepath.Join(c.Root, c.Build.OutDir)
}

// AssetsPath returns the absolute assets directory.
func (c *Config) AssetsPath() string {
	return filepath.Join(c.OutPath(), c.Build.AssetsDir)
}

// AssetURL returns the public URL of a file written to the assets directory.
func (c *Config) AssetURL(name string) string {
	return c.Base + filepath.ToSlash(filepath.Join(c.Build.AssetsDir, name))
}

// Validate reports the first problem found in c.
func (c *Config) Validate() error {
	if !filepath.IsAbs(c.Root) {
		return fmt.Errorf("%w: root %q is not absolute", ErrInvalidConfig, c.Root)
	}

	if !strings.HasPrefix(c.Base, "/") || !strings.HasSuffix(c.Base, "/") {
		return fmt.Errorf("%w: base %q must start and end with /", ErrInvalidConfig, c.Base)
	}

	for _, rule := range c.Server.Proxy {
		u, err := url.Parse(rule.Target)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("%w: proxy target %q is not absolute", ErrInvalidConfig, rule.Target)
		}
	}

	out := filepath.Clean(c.Build.OutDir)
	if c.Build.OutDir == "" || out == "." || filepath.IsAbs(out) || out == ".." || strings.HasPrefix(out, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: out dir %q must be a directory below the root", ErrInvalidConfig, c.Build.OutDir)
	}

	assets := filepath.Clean(c.Build.AssetsDir)
	if filepath.IsAbs(assets) || assets == ".." || strings.HasPrefix(assets, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: assets dir %q escapes the out dir", ErrInvalidConfig, c.Build.AssetsDir)
	}

	owner := make(map[string]string)
	for _, name := range c.chunkNames() {
		if name == "" || name == IndexChunk {
			return fmt.Errorf("%w: chunk name %q is reserved or empty", ErrInvalidConfig, name)
		}
		for _, pkg := range c.Build.ManualChunks[name] {
			if prev, ok := owner[pkg]; ok {
				return fmt.Errorf("%w: %q is listed in chunks %q and %q", ErrInvalidConfig, pkg, prev, name)
			}
			owner[pkg] = name
		}
	}

	return nil
}

// chunkNames returns the manual chunk names in a stable order.
func (c *Config) chunkNames() []string {
	names := make([]string, 0, len(c.Build.ManualChunks))
	for name := range c.Build.ManualChunks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
