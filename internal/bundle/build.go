// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/MKhiriev/bus-catch/internal/config"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentWrites bounds the number of files written at once.
const maxConcurrentWrites = 8

type outputFile struct {
	path string
	data []byte
}

// Build packs the application under cfg.Root into cfg.OutPath().
//
// The output directory is emptied first. Any failure aborts the build and
// leaves whatever was written so far.
func Build(ctx context.Context, cfg *Config, mode config.Mode) (*Manifest, error) {
	outDir := cfg.OutPath()
	if err := os.RemoveAll(outDir); err != nil {
		return nil, fmt.Errorf("clean out dir: %w", err)
	}
	if err := os.MkdirAll(cfg.AssetsPath(), 0o755); err != nil {
		return nil, fmt.Errorf("create assets dir: %w", err)
	}

	doc, err := readIndex(filepath.Join(cfg.Root, indexHTML))
	if err != nil {
		return nil, err
	}
	entryNode, entrySrc := findEntry(doc)
	if entryNode == nil {
		return nil, ErrNoEntry
	}
	entryPath, ok := lookupFile(filepath.Join(cfg.Root, filepath.FromSlash(strings.TrimPrefix(entrySrc, "/"))))
	if !ok {
		return nil, fmt.Errorf("%w: entry %q", ErrUnresolvedImport, entrySrc)
	}

	g := newGraph(cfg, EnvDefines(mode, cfg.Base, os.Environ()))
	if _, err = g.load(ctx, entryPath); err != nil {
		return nil, err
	}

	manifest := &Manifest{
		Mode:   mode.String(),
		Chunks: make(map[string]Chunk),
		Assets: make(map[string]AssetFile),
	}

	chunks, err := splitChunks(cfg, g)
	if err != nil {
		return nil, err
	}

	var files []outputFile
	emitted := make(map[string]string)
	for _, c := range chunks {
		code := c.render(emitted)
		file := fmt.Sprintf("%s-%s.js", c.name, contentHash(code))
		emitted[c.name] = file

		files = append(files, outputFile{path: filepath.Join(cfg.AssetsPath(), file), data: code})
		manifest.Chunks[c.name] = Chunk{
			File:    slashJoin(cfg.Build.AssetsDir, file),
			Modules: c.moduleIDs(g),
			Size:    len(code),
		}
	}

	var css bytes.Buffer
	for _, m := range g.order {
		if len(m.css) > 0 {
			css.Write(bytes.TrimSpace(m.css))
			css.WriteString("\n")
		}
	}
	if css.Len() > 0 {
		file := fmt.Sprintf("%s-%s.css", IndexChunk, contentHash(css.Bytes()))
		files = append(files, outputFile{path: filepath.Join(cfg.AssetsPath(), file), data: css.Bytes()})
		manifest.CSS = slashJoin(cfg.Build.AssetsDir, file)
		manifest.CSSSize = css.Len()
	}

	if err = collectAssets(g, filepath.Join(cfg.SrcDir, "assets")); err != nil {
		return nil, err
	}
	for _, a := range g.assets {
		files = append(files, outputFile{path: filepath.Join(cfg.AssetsPath(), a.name), data: a.data})
		manifest.Assets[g.rel(a.source)] = AssetFile{File: slashJoin(cfg.Build.AssetsDir, a.name), Size: len(a.data)}
	}

	public, err := collectPublic(cfg.PublicDir, outDir)
	if err != nil {
		return nil, err
	}
	for _, f := range public {
		rel, _ := filepath.Rel(outDir, f.path)
		manifest.Public = append(manifest.Public, filepath.ToSlash(rel))
	}
	files = append(files, public...)

	if err = writeFiles(ctx, files); err != nil {
		return nil, err
	}

	tags := emittedTags{script: cfg.Base + manifest.Chunks[IndexChunk].File}
	for _, c := range chunks {
		if c.name != IndexChunk {
			tags.preloads = append(tags.preloads, cfg.Base+manifest.Chunks[c.name].File)
		}
	}
	if manifest.CSS != "" {
		tags.style = cfg.Base + manifest.CSS
	}
	if err = injectBuild(doc, entryNode, tags); err != nil {
		return nil, err
	}
	for _, p := range cfg.Plugins {
		if t, ok := p.(HTMLTransformer); ok {
			if err = t.TransformIndexHTML(doc, mode); err != nil {
				return nil, fmt.Errorf("plugin %s: %w", p.Name(), err)
			}
		}
	}

	page, err := renderIndex(doc)
	if err != nil {
		return nil, err
	}
	data, err := manifest.encode()
	if err != nil {
		return nil, err
	}

	if err = writeFiles(ctx, []outputFile{
		{path: filepath.Join(outDir, indexHTML), data: page},
		{path: filepath.Join(outDir, ManifestFile), data: data},
	}); err != nil {
		return nil, err
	}

	return manifest, nil
}

// chunk is an ordered group of modules emitted as one file.
type chunk struct {
	name    string
	modules []*module
	// imports lists, per chunk name, the module variables this chunk
	// needs from it.
	imports map[string][]string
	exports []string
}

func (c *chunk) render(emitted map[string]string) []byte {
	var buf bytes.Buffer

	deps := make([]string, 0, len(c.imports))
	for name := range c.imports {
		deps = append(deps, name)
	}
	sort.Strings(deps)
	for _, name := range deps {
		fmt.Fprintf(&buf, "import { %s } from \"./%s\";\n", strings.Join(c.imports[name], ", "), emitted[name])
	}

	for _, m := range c.modules {
		fmt.Fprintf(&buf, "const %s = %s;\n", m.name, m.code)
	}

	if len(c.exports) > 0 {
		fmt.Fprintf(&buf, "export { %s };\n", strings.Join(c.exports, ", "))
	}
	return buf.Bytes()
}

func (c *chunk) moduleIDs(g *graph) []string {
	ids := make([]string, len(c.modules))
	for i, m := range c.modules {
		ids[i] = g.rel(m.id)
	}
	return ids
}

// splitChunks assigns every JavaScript module to a chunk and returns the
// chunks in emission order: manual chunks first, index last. Packages
// listed in a manual chunk go there together with the packages they pull
// in that no other chunk lists. Empty manual chunks are dropped.
func splitChunks(cfg *Config, g *graph) ([]*chunk, error) {
	owner := make(map[string]string)
	for _, name := range cfg.chunkNames() {
		for _, pkg := range cfg.Build.ManualChunks[name] {
			owner[pkg] = name
		}
	}

	assigned := make(map[*module]string)
	var claim func(m *module, name string)
	claim = func(m *module, name string) {
		if _, ok := assigned[m]; ok || m.pkg == "" {
			return
		}
		if o, listed := owner[m.pkg]; listed && o != name {
			return
		}
		assigned[m] = name
		for _, dep := range m.deps {
			claim(dep, name)
		}
	}
	for _, name := range cfg.chunkNames() {
		for _, m := range g.order {
			if owner[m.pkg] == name {
				claim(m, name)
			}
		}
	}

	byName := make(map[string]*chunk)
	chunkOf := func(m *module) *chunk {
		name, ok := assigned[m]
		if !ok {
			name = IndexChunk
		}
		c, ok := byName[name]
		if !ok {
			c = &chunk{name: name, imports: make(map[string][]string)}
			byName[name] = c
		}
		return c
	}

	exported := make(map[*module]bool)
	for _, m := range g.order {
		if m.kind == kindCSS {
			continue
		}
		c := chunkOf(m)
		c.modules = append(c.modules, m)

		for _, dep := range m.deps {
			if dep.kind == kindCSS {
				continue
			}
			dc := chunkOf(dep)
			if dc == c {
				continue
			}
			if dc.name == IndexChunk {
				return nil, fmt.Errorf("%w: %s imports %s", ErrChunkDependency, g.rel(m.id), g.rel(dep.id))
			}
			if !slices.Contains(c.imports[dc.name], dep.name) {
				c.imports[dc.name] = append(c.imports[dc.name], dep.name)
			}
			if !exported[dep] {
				exported[dep] = true
				dc.exports = append(dc.exports, dep.name)
			}
		}
	}

	return orderChunks(byName)
}

// orderChunks sorts chunks so every chunk follows the chunks it imports.
func orderChunks(byName map[string]*chunk) ([]*chunk, error) {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		ordered []*chunk
		state   = make(map[string]int)
		visit   func(name string) error
	)
	visit = func(name string) error {
		switch state[name] {
		case 1:
			return fmt.Errorf("%w: chunk %q imports itself", ErrChunkDependency, name)
		case 2:
			return nil
		}
		state[name] = 1
		c := byName[name]
		deps := make([]string, 0, len(c.imports))
		for dep := range c.imports {
			deps = append(deps, dep)
		}
		sort.Strings(deps)
		for _, dep := range deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[name] = 2
		ordered = append(ordered, c)
		return nil
	}

	for _, name := range names {
		if name == IndexChunk {
			continue
		}
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	if _, ok := byName[IndexChunk]; ok {
		if err := visit(IndexChunk); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}

// collectAssets adds every file under dir to the graph's assets. A missing
// dir is not an error.
func collectAssets(g *graph, dir string) error {
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		g.addAsset(p, data)
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("collect assets: %w", err)
	}
	return nil
}

// collectPublic reads every file under dir for a verbatim copy into outDir.
func collectPublic(dir, outDir string) ([]outputFile, error) {
	var files []outputFile
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files = append(files, outputFile{path: filepath.Join(outDir, rel), data: data})
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("collect public files: %w", err)
	}
	return files, nil
}

func writeFiles(ctx context.Context, files []outputFile) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentWrites)

	for _, f := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
				return fmt.Errorf("create dir for %s: %w", f.path, err)
			}
			if err := os.WriteFile(f.path, f.data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", f.path, err)
			}
			return nil
		})
	}

	return eg.Wait()
}

// contentHash returns the first eight hex digits of data's SHA-256.
func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:8]
}

func slashJoin(dir, file string) string {
	return path.Join(filepath.ToSlash(dir), file)
}

