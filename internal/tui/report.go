// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/bus-catch/internal/bundle"
)

const pathWidth = 40

// RenderBuildReport lists the emitted files of a build under outDir with
// their sizes.
func RenderBuildReport(outDir string, m *bundle.Manifest, took time.Duration) string {
	files := m.Files()

	var b strings.Builder
	total := 0
	for _, f := range files {
		total += f.Size

		style, ok := kindStyles[f.Kind]
		if !ok {
			style = helpStyle
		}
		name := fitText(path.Join(outDir, f.Path), pathWidth)
		fmt.Fprintf(&b, "%s %s\n",
			style.Width(pathWidth).Render(name),
			sizeStyle.Width(10).Render(formatSize(f.Size)),
		)
	}
	if len(m.Public) > 0 {
		fmt.Fprintf(&b, "%s\n", helpStyle.Render(fmt.Sprintf("+ %d public file(s)", len(m.Public))))
	}

	footer := okStyle.Render(fmt.Sprintf("✓ %d file(s), %s, built in %s",
		len(files), formatSize(total), took.Round(time.Millisecond)))

	return renderPage(fmt.Sprintf("bus-catch %s build", m.Mode), strings.TrimRight(b.String(), "\n"), footer)
}

// RenderError formats a fatal command error.
func RenderError(err error) string {
	return errorStyle.Render("✗ "+err.Error()) + "\n"
}
