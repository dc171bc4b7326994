// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikolalohinski/gonja/loaders"
)

// SearchPathLoader resolves template names against an ordered list of
// directories, first hit wins.
type SearchPathLoader struct {
	paths []string
}

var _ loaders.Loader = &SearchPathLoader{}

func NewSearchPathLoader(paths []string) *SearchPathLoader {
	return &SearchPathLoader{paths: paths}
}

func (l *SearchPathLoader) Path(name string) (string, error) {
	if filepath.IsAbs(name) {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name, nil
		}
		return "", fmt.Errorf("Template '%s' not found", name)
	}

	for _, dir := range l.paths {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("Template '%s' not found in search path [%s]",
		name, strings.Join(l.paths, ", "))
}

func (l *SearchPathLoader) Get(path string) (io.Reader, error) {
	resolved, err := l.Path(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("Reading template '%s': %s", resolved, err)
	}

	return bytes.NewReader(data), nil
}

// MemoryLoader serves templates from an in-memory map; used for stdin
// sources and the lambda front-end.
type MemoryLoader struct {
	templates map[string]string
}

var _ loaders.Loader = &MemoryLoader{}

func NewMemoryLoader(templates map[string]string) *MemoryLoader {
	return &MemoryLoader{templates: templates}
}

func (l *MemoryLoader) Path(name string) (string, error) {
	if _, found := l.templates[name]; found {
		return name, nil
	}
	return "", fmt.Errorf("Template '%s' not found in memory", name)
}

func (l *MemoryLoader) Get(path string) (io.Reader, error) {
	if src, found := l.templates[path]; found {
		return strings.NewReader(src), nil
	}
	return nil, fmt.Errorf("Template '%s' not found in memory", path)
}

// ChoiceLoader tries each loader in order, mirroring the engine-side
// chaining of an in-memory template in front of the filesystem.
type ChoiceLoader struct {
	loaders []loaders.Loader
}

var _ loaders.Loader = &ChoiceLoader{}

func NewChoiceLoader(ls []loaders.Loader) *ChoiceLoader {
	return &ChoiceLoader{loaders: ls}
}

func (l *ChoiceLoader) Path(name string) (string, error) {
	var lastErr error
	for _, loader := range l.loaders {
		path, err := loader.Path(name)
		if err == nil {
			return path, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func (l *ChoiceLoader) Get(path string) (io.Reader, error) {
	var lastErr error
	for _, loader := range l.loaders {
		reader, err := loader.Get(path)
		if err == nil {
			return reader, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
