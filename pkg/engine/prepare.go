// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"io"
	"regexp"
	"strings"

	"github.com/nikolalohinski/gonja/loaders"
)

var (
	lstripBlocksPattern = regexp.MustCompile(`(?m)^[ \t]+\{%`)
	trimBlocksPattern   = regexp.MustCompile(`([%#])\}\n`)
)

// preparingLoader rewrites template sources on their way into the engine:
// whitespace control (trim/lstrip blocks), trailing-newline handling and
// the output newline sequence are lexer-level policies that the engine
// itself does not expose. Applies to every loaded template, includes too.
type preparingLoader struct {
	inner    loaders.Loader
	settings Settings
}

var _ loaders.Loader = &preparingLoader{}

func newPreparingLoader(inner loaders.Loader, settings Settings) *preparingLoader {
	return &preparingLoader{inner: inner, settings: settings}
}

func (l *preparingLoader) Path(name string) (string, error) {
	return l.inner.Path(name)
}

func (l *preparingLoader) Get(path string) (io.Reader, error) {
	reader, err := l.inner.Get(path)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	return strings.NewReader(prepareSource(string(data), l.settings)), nil
}

func prepareSource(src string, settings Settings) string {
	// canonicalize newlines so the policies below see a single form
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")

	if settings.LstripBlocks {
		src = lstripBlocksPattern.ReplaceAllString(src, "{%")
	}
	if settings.TrimBlocks {
		src = trimBlocksPattern.ReplaceAllString(src, "$1}")
	}
	if !settings.KeepTrailingNewline {
		src = strings.TrimSuffix(src, "\n")
	}
	if len(settings.NewlineSequence) > 0 && settings.NewlineSequence != "\n" {
		src = strings.ReplaceAll(src, "\n", settings.NewlineSequence)
	}

	return src
}
