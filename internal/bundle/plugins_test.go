// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"strings"
	"testing"

	"github.com/MKhiriev/bus-catch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const appVue = `<template>
  <div class="app">
    <template v-if="ok">{{ msg }}</template>
  </div>
</template>

<script>
import Child from './Child.vue'
export default {
  components: { Child },
  data() { return { msg: 'hi', ok: true } }
}
</script>

<style>
.app { color: red; }
</style>
<style scoped>
.x { margin: 0; }
</style>
`

func TestVue_Transform(t *testing.T) {
	tr := Vue().(Transformer)

	code, css, handled, err := tr.Transform("/p/src/App.vue", []byte(appVue))

	require.NoError(t, err)
	assert.True(t, handled)

	js := string(code)
	assert.Contains(t, js, "import Child from './Child.vue'")
	assert.Contains(t, js, "const __sfc__ = {\n  components: { Child },")
	assert.Contains(t, js, `__sfc__.template = "<div class=\"app\">\n    <template v-if=\"ok\">{{ msg }}</template>\n  </div>";`)
	assert.True(t, strings.HasSuffix(js, "export default __sfc__;\n"))
	assert.Equal(t, 1, strings.Count(js, "export default"))

	assert.Equal(t, ".app { color: red; }\n.x { margin: 0; }\n", string(css))
}

func TestVue_TemplateOnly(t *testing.T) {
	tr := Vue().(Transformer)

	code, css, handled, err := tr.Transform("/p/src/Hello.vue", []byte("<template><p>hello</p></template>"))

	require.NoError(t, err)
	assert.True(t, handled)
	assert.Contains(t, string(code), "const __sfc__ = {};")
	assert.Contains(t, string(code), `__sfc__.template = "<p>hello</p>";`)
	assert.Empty(t, css)
}

func TestVue_EmptyComponent(t *testing.T) {
	tr := Vue().(Transformer)

	_, _, handled, err := tr.Transform("/p/src/Empty.vue", []byte("<style>.a{}</style>"))

	assert.True(t, handled)
	assert.ErrorIs(t, err, ErrEmptyComponent)
}

func TestVue_RejectsScriptSetup(t *testing.T) {
	tr := Vue().(Transformer)

	for _, src := range []string{
		"<script setup>\nconst msg = 'hi'\n</script>\n<template><p>{{ msg }}</p></template>",
		"<script>export default {}</script>\n<script lang=\"ts\" setup>const n = 1</script>",
	} {
		_, _, handled, err := tr.Transform("/p/src/Setup.vue", []byte(src))

		assert.True(t, handled)
		assert.ErrorIs(t, err, ErrScriptSetup)
	}
}

func TestVue_DataSetupAttributeIsNotScriptSetup(t *testing.T) {
	tr := Vue().(Transformer)

	_, _, _, err := tr.Transform("/p/src/Plain.vue", []byte(`<script data-setup="x">export default {}</script>`))

	assert.NoError(t, err)
}

func TestVue_IgnoresOtherFiles(t *testing.T) {
	tr := Vue().(Transformer)

	_, _, handled, err := tr.Transform("/p/src/main.js", []byte("export default 1"))

	require.NoError(t, err)
	assert.False(t, handled)
}

func parseHTML(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestDevTools_TransformIndexHTML(t *testing.T) {
	const page = `<!doctype html><html><head></head><body><div id="app"></div></body></html>`
	tr := DevTools().(HTMLTransformer)

	t.Run("development injects client", func(t *testing.T) {
		doc := parseHTML(t, page)
		require.NoError(t, tr.TransformIndexHTML(doc, config.ModeDevelopment))

		out, err := renderIndex(doc)
		require.NoError(t, err)
		assert.Contains(t, string(out), `<script type="module" src="/__devtools__/client.js"></script></body>`)
	})

	t.Run("production is a no-op", func(t *testing.T) {
		doc := parseHTML(t, page)
		require.NoError(t, tr.TransformIndexHTML(doc, config.ModeProduction))

		out, err := renderIndex(doc)
		require.NoError(t, err)
		assert.NotContains(t, string(out), DevToolsClientPath)
	})
}

func TestPlugins_OptionalHooks(t *testing.T) {
	_, vueHTML := Vue().(HTMLTransformer)
	_, devtoolsTransform := DevTools().(Transformer)

	assert.False(t, vueHTML)
	assert.False(t, devtoolsTransform)
}
