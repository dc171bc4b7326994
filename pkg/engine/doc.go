// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package engine configures and drives the gonja template engine: it maps
command-line settings onto the engine's config, resolves templates through
search-path and in-memory loaders, and renders with a merged variable
context.
*/
package engine
