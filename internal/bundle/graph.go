// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type moduleKind int

const (
	kindJS moduleKind = iota
	kindCSS
	kindAsset
)

var assetExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".svg": true,
	".webp": true, ".ico": true, ".woff": true, ".woff2": true, ".ttf": true,
}

// ErrImportCycle is returned when modules import each other.
var ErrImportCycle = errors.New("import cycle")

type module struct {
	id   string
	name string
	pkg  string
	kind moduleKind

	code []byte
	css  []byte

	deps []*module
}

type asset struct {
	source string
	name   string
	data   []byte
}

// graph loads modules reachable from an entry. Modules are recorded in
// dependency order.
type graph struct {
	cfg          *Config
	resolver     *Resolver
	transformers []Transformer
	defines      map[string]any

	byID    map[string]*module
	loading map[string]bool
	next    int
	order   []*module
	assets  map[string]asset
}

func newGraph(cfg *Config, defines map[string]any) *graph {
	g := &graph{
		cfg:      cfg,
		resolver: NewResolver(cfg),
		defines:  defines,
		byID:     make(map[string]*module),
		loading:  make(map[string]bool),
		assets:   make(map[string]asset),
	}
	for _, p := range cfg.Plugins {
		if t, ok := p.(Transformer); ok {
			g.transformers = append(g.transformers, t)
		}
	}
	return g
}

func (g *graph) load(ctx context.Context, id string) (*module, error) {
	if m, ok := g.byID[id]; ok {
		return m, nil
	}
	if g.loading[id] {
		return nil, fmt.Errorf("%w: %s", ErrImportCycle, g.rel(id))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.loading[id] = true
	defer delete(g.loading, id)
	g.next++

	src, err := os.ReadFile(id)
	if err != nil {
		return nil, fmt.Errorf("read module: %w", err)
	}

	m := &module{
		id:   id,
		name: "__bc" + strconv.Itoa(g.next),
		pkg:  packageOf(g.cfg.Root, id),
	}

	code, err := g.transform(m, src)
	if err != nil {
		return nil, err
	}

	if m.kind == kindJS {
		if m.code, m.deps, err = g.link(ctx, id, code); err != nil {
			return nil, err
		}
	}

	g.byID[id] = m
	g.order = append(g.order, m)
	return m, nil
}

// transform turns src into JavaScript source, CSS or an asset reference.
func (g *graph) transform(m *module, src []byte) ([]byte, error) {
	ext := filepath.Ext(m.id)

	switch {
	case ext == ".css":
		m.kind = kindCSS
		m.css = src
		return nil, nil
	case assetExts[ext]:
		a := g.addAsset(m.id, src)
		m.kind = kindAsset
		return fmt.Appendf(nil, "export default %q;\n", g.cfg.AssetURL(a.name)), nil
	case ext == ".json":
		if !json.Valid(src) {
			return nil, fmt.Errorf("parse %s: invalid JSON", g.rel(m.id))
		}
		return fmt.Appendf(nil, "export default %s;\n", bytes.TrimSpace(src)), nil
	}

	for _, t := range g.transformers {
		code, css, handled, err := t.Transform(m.id, src)
		if err != nil {
			return nil, err
		}
		if handled {
			m.css = css
			return code, nil
		}
	}
	return src, nil
}

func (g *graph) addAsset(source string, data []byte) asset {
	if a, ok := g.assets[source]; ok {
		return a
	}
	ext := filepath.Ext(source)
	a := asset{
		source: source,
		name:   strings.TrimSuffix(filepath.Base(source), ext) + "-" + contentHash(data) + ext,
		data:   data,
	}
	g.assets[source] = a
	return a
}

// link resolves and loads every dependency of code and rewrites it into a
// function expression that returns the module's exports.
func (g *graph) link(ctx context.Context, id string, code []byte) ([]byte, []*module, error) {
	code = replaceEnv(code, g.defines)
	if line := dynamicImportLine(code); line > 0 {
		return nil, nil, fmt.Errorf("%w: %s line %d", ErrDynamicImport, g.rel(id), line)
	}
	src := parseModule(code)

	var deps []*module
	names := make(map[string]string, len(src.specifiers))
	for _, spec := range src.specifiers {
		path, err := g.resolver.Resolve(id, spec)
		if err != nil {
			return nil, nil, err
		}
		dep, err := g.load(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		deps = append(deps, dep)
		if dep.kind != kindCSS {
			names[spec] = dep.name
		}
	}

	return src.wrap(names), deps, nil
}

func (g *graph) rel(id string) string {
	rel, err := filepath.Rel(g.cfg.Root, id)
	if err != nil {
		return id
	}
	return filepath.ToSlash(rel)
}
