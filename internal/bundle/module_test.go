// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"testing"

	"github.com/MKhiriev/bus-catch/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestParseImportClause(t *testing.T) {
	tests := []struct {
		clause string
		want   importDecl
	}{
		{clause: "", want: importDecl{}},
		{clause: "App", want: importDecl{def: "App"}},
		{clause: "* as api", want: importDecl{namespace: "api"}},
		{clause: "{ ref, computed as c }", want: importDecl{named: []binding{{"ref", "ref"}, {"computed", "c"}}}},
		{clause: "Vue, { createApp }", want: importDecl{def: "Vue", named: []binding{{"createApp", "createApp"}}}},
		{clause: "Vue, * as all", want: importDecl{def: "Vue", namespace: "all"}},
		{clause: "{\n  a,\n  b,\n}", want: importDecl{named: []binding{{"a", "a"}, {"b", "b"}}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseImportClause(tt.clause), tt.clause)
	}
}

func TestParseModule(t *testing.T) {
	src := `import { createApp } from 'vue'
import App from "@/App.vue";
import * as api from './api'
import './style.css'
export { helper as util } from './helper'
export * from './more'

const x = 1
export const answer = 42
export async function load() { return api.get() }
export class Store {}
function local() {}
export { local, x as y }
export default createApp(App)
`
	pm := parseModule([]byte(src))

	assert.Equal(t, []string{"./helper", "./more", "vue", "@/App.vue", "./api", "./style.css"}, pm.specifiers)
	assert.Equal(t, map[string]string{
		"answer":  "answer",
		"load":    "load",
		"Store":   "Store",
		"local":   "local",
		"y":       "x",
		"default": defaultLocal,
	}, pm.exports)

	body := string(pm.body)
	assert.NotContains(t, body, "import ")
	assert.NotContains(t, body, "export")
	assert.Contains(t, body, "const answer = 42")
	assert.Contains(t, body, "async function load()")
	assert.Contains(t, body, "class Store {}")
	assert.Contains(t, body, "const __default = createApp(App)")
}

func TestParsedModule_Wrap(t *testing.T) {
	src := `import { createApp, h as hyper } from 'vue'
import App from '@/App.vue'
import * as api from './api'
import './style.css'
export * from './more'
export { get as fetch } from './api'
export const n = 1
export default createApp(App)
`
	pm := parseModule([]byte(src))
	code := string(pm.wrap(map[string]string{
		"vue":       "__bc2",
		"@/App.vue": "__bc3",
		"./api":     "__bc4",
		"./more":    "__bc5",
	}))

	want := `(() => {
const { createApp, h: hyper } = __bc2;
const App = __bc3.default;
const api = __bc4;
const n = 1
const __default = createApp(App)
return { ...__bc5, fetch: __bc4.get, "default": __default, n: n };
})()`
	assert.Equal(t, want, code)
}

func TestReplaceEnv(t *testing.T) {
	defines := EnvDefines(config.ModeProduction, "/", []string{
		"VITE_API_BASE=https://example.com",
		"APP_API_KEY=secret",
		"PATH=/usr/bin",
	})

	code := replaceEnv([]byte(`const base = import.meta.env.VITE_API_BASE ?? '';
const key = import.meta.env.APP_API_KEY;
const prod = import.meta.env.PROD;
const mode = import.meta.env.MODE;`), defines)

	assert.Equal(t, `const base = "https://example.com" ?? '';
const key = undefined;
const prod = true;
const mode = "production";`, string(code))
}

func TestReplaceEnv_NodeEnv(t *testing.T) {
	src := []byte("export const createApp = () => process.env.NODE_ENV !== 'production'")

	prod := replaceEnv(src, EnvDefines(config.ModeProduction, "/", nil))
	dev := replaceEnv(src, EnvDefines(config.ModeDevelopment, "/", nil))

	assert.Equal(t, `export const createApp = () => "production" !== 'production'`, string(prod))
	assert.Equal(t, `export const createApp = () => "development" !== 'production'`, string(dev))
}

func TestDynamicImportLine(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{name: "static import", code: "import x from './x.js'\nx()", want: 0},
		{name: "import meta", code: "const m = import.meta.url", want: 0},
		{name: "method named import", code: "loader.import('./x.js')", want: 0},
		{name: "identifier suffix", code: "reimport('./x.js')", want: 0},
		{name: "lazy route", code: "const a = 1\nconst Lazy = () => import('./lazy.js')", want: 2},
		{name: "spaced call", code: "await import ( './x.js' )", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dynamicImportLine([]byte(tt.code)))
		})
	}
}

func TestEnvDefines(t *testing.T) {
	d := EnvDefines(config.ModeDevelopment, "/app/", []string{"VITE_X=1", "SECRET=2", "broken"})

	assert.Equal(t, map[string]any{
		"MODE":     "development",
		"DEV":      true,
		"PROD":     false,
		"BASE_URL": "/app/",
		"VITE_X":   "1",
	}, d)
}
