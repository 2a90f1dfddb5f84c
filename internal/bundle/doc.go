// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bundle is the static packer behind the build and the development
// server.
//
// [NewConfig] returns the declarative configuration: the vue and devtools
// plugins, the "@" alias for the source directory, the public base path, the
// development proxy rule and the output layout with its manual chunks.
// [Build] walks the import graph from the module entry named in index.html
// and writes hashed chunks, the stylesheet, copied assets, the rewritten
// index.html and a manifest to the output directory.
//
// Modules are wrapped in functions and concatenated. There is no
// transpiling, minification or tree shaking.
package bundle
