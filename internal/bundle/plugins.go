// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/MKhiriev/bus-catch/internal/config"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Plugin is a named build extension. A plugin opts into build stages by
// also implementing [Transformer] or [HTMLTransformer].
type Plugin interface {
	Name() string
}

// Transformer turns a source file into a JavaScript module and optional CSS.
// handled is false when the plugin does not apply to id.
type Transformer interface {
	Transform(id string, src []byte) (code, css []byte, handled bool, err error)
}

// HTMLTransformer edits the parsed index.html before it is written.
type HTMLTransformer interface {
	TransformIndexHTML(doc *html.Node, mode config.Mode) error
}

// DevToolsClientPath is the URL of the development tooling script.
const DevToolsClientPath = "/__devtools__/client.js"

// ── vue ─────────────────────────────────────────────────────────────────────

var (
	reScript      = regexp.MustCompile(`(?s)<script\b[^>]*>(.*?)</script>`)
	reScriptSetup = regexp.MustCompile(`<script\b[^>]*\ssetup\b[^>]*>`)
	reStyle       = regexp.MustCompile(`(?s)<style\b[^>]*>(.*?)</style>`)
	reTemplate    = regexp.MustCompile(`(?s)<template\b[^>]*>`)
	reExportDflt  = regexp.MustCompile(`(?m)^\s*export\s+default\s+`)
	templateClose = []byte("</template>")
)

type vuePlugin struct{}

// Vue returns the single-file component plugin. The <script> block becomes
// the module body, the <template> block is attached to the component as its
// template string and <style> blocks become CSS. The template is compiled
// in the browser, which needs the [VueCompilerBuild] of vue.
//
// <script setup> is rejected with [ErrScriptSetup]: its bindings reach the
// template only through a compiled render function.
func Vue() Plugin {
	return vuePlugin{}
}

func (vuePlugin) Name() string {
	return "vue"
}

func (vuePlugin) Transform(id string, src []byte) ([]byte, []byte, bool, error) {
	if filepath.Ext(id) != ".vue" {
		return nil, nil, false, nil
	}
	if reScriptSetup.Match(src) {
		return nil, nil, true, fmt.Errorf("%w: %s", ErrScriptSetup, id)
	}

	script, hasScript := extractScript(src)
	template, hasTemplate := extractTemplate(src)
	if !hasScript && !hasTemplate {
		return nil, nil, true, fmt.Errorf("%w: %s", ErrEmptyComponent, id)
	}

	var code bytes.Buffer
	if reExportDflt.Match(script) {
		code.Write(reExportDflt.ReplaceAll(script, []byte("\nconst __sfc__ = ")))
		code.WriteString("\n")
	} else {
		code.Write(script)
		code.WriteString("\nconst __sfc__ = {};\n")
	}

	if hasTemplate {
		quoted, err := jsString(string(bytes.TrimSpace(template)))
		if err != nil {
			return nil, nil, true, fmt.Errorf("quote template of %s: %w", id, err)
		}
		fmt.Fprintf(&code, "__sfc__.template = %s;\n", quoted)
	}
	code.WriteString("export default __sfc__;\n")

	var css bytes.Buffer
	for _, m := range reStyle.FindAllSubmatch(src, -1) {
		css.Write(bytes.TrimSpace(m[1]))
		css.WriteString("\n")
	}

	return code.Bytes(), css.Bytes(), true, nil
}

// jsString quotes s as a JavaScript string literal. HTML characters are
// kept as-is.
func jsString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

func extractScript(src []byte) ([]byte, bool) {
	m := reScript.FindSubmatch(src)
	if m == nil {
		return nil, false
	}
	return m[1], true
}

// extractTemplate returns the outermost template block. Nested <template>
// elements are kept inside it.
func extractTemplate(src []byte) ([]byte, bool) {
	open := reTemplate.FindIndex(src)
	if open == nil {
		return nil, false
	}
	end := bytes.LastIndex(src, templateClose)
	if end < open[1] {
		return nil, false
	}
	return src[open[1]:end], true
}

// ── devtools ────────────────────────────────────────────────────────────────

type devToolsPlugin struct{}

// DevTools returns the developer tooling plugin. In development mode it
// injects the tooling client script into index.html; in production it does
// nothing.
func DevTools() Plugin {
	return devToolsPlugin{}
}

func (devToolsPlugin) Name() string {
	return "devtools"
}

func (devToolsPlugin) TransformIndexHTML(doc *html.Node, mode config.Mode) error {
	if mode.IsProduction() {
		return nil
	}

	body := findElement(doc, atom.Body)
	if body == nil {
		return fmt.Errorf("devtools: index.html has no body")
	}

	body.AppendChild(newElement(atom.Script,
		html.Attribute{Key: "type", Val: "module"},
		html.Attribute{Key: "src", Val: DevToolsClientPath},
	))
	return nil
}
