// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import "errors"

var (
	// ErrInvalidConfig is returned by [Config.Validate].
	ErrInvalidConfig = errors.New("invalid bundle configuration")
	// ErrUnresolvedImport is returned when an import specifier does not
	// resolve to a file.
	ErrUnresolvedImport = errors.New("unresolved import")
	// ErrDynamicImport is returned for a module calling import(). Lazy
	// chunks are not emitted, so the call would point at a missing file.
	ErrDynamicImport = errors.New("dynamic import is not supported")
	// ErrScriptSetup is returned for a component using <script setup>.
	ErrScriptSetup = errors.New("<script setup> is not supported")
	// ErrNoEntry is returned when index.html has no module entry script.
	ErrNoEntry = errors.New("no module entry script in index.html")
	// ErrEmptyComponent is returned for a .vue file with neither a script
	// nor a template block.
	ErrEmptyComponent = errors.New("component has no script or template")
	// ErrChunkDependency is returned when a manual chunk would have to
	// import from the index chunk.
	ErrChunkDependency = errors.New("manual chunk depends on application code")
)
