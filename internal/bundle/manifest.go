// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ManifestFile is the name of the manifest written to the output directory.
const ManifestFile = "manifest.json"

// Manifest describes one build's output. Paths of emitted files are relative
// to the output directory; module paths are relative to the project root.
// All paths use forward slashes.
type Manifest struct {
	Mode   string           `json:"mode"`
	Chunks map[string]Chunk `json:"chunks"`
	// CSS is the stylesheet, empty when no module contributed CSS.
	CSS     string `json:"css,omitempty"`
	CSSSize int    `json:"cssSize,omitempty"`
	// Assets maps a source file to its hashed copy.
	Assets map[string]AssetFile `json:"assets,omitempty"`
	// Public lists files copied verbatim from the public directory.
	Public []string `json:"public,omitempty"`
}

// Chunk is one emitted JavaScript file.
type Chunk struct {
	File    string   `json:"file"`
	Modules []string `json:"modules"`
	Size    int      `json:"size"`
}

// AssetFile is a copied static asset.
type AssetFile struct {
	File string `json:"file"`
	Size int    `json:"size"`
}

// OutputFile is a line of the build report.
type OutputFile struct {
	Path string
	Kind string
	Size int
}

// Files returns the emitted chunks and stylesheet ordered by path.
func (m *Manifest) Files() []OutputFile {
	files := make([]OutputFile, 0, len(m.Chunks)+1)
	for _, c := range m.Chunks {
		files = append(files, OutputFile{Path: c.File, Kind: "js", Size: c.Size})
	}
	if m.CSS != "" {
		files = append(files, OutputFile{Path: m.CSS, Kind: "css", Size: m.CSSSize})
	}
	for _, a := range m.Assets {
		files = append(files, OutputFile{Path: a.File, Kind: "asset", Size: a.Size})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

func (m *Manifest) encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return data, nil
}
