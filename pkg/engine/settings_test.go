// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"jinjitsu.dev/jinjitsu/pkg/engine"
)

func TestParseNewlineSequence(t *testing.T) {
	mappings := map[string]string{
		`\n`:   "\n",
		`\r\n`: "\r\n",
		`\r`:   "\r",
		"LF":   "\n",
		"CRLF": "\r\n",
		"CR":   "\r",
		"lf":   "\n",
		"crlf": "\r\n",
		"cr":   "\r",
		"\n":   "\n",
		"\r\n": "\r\n",
		"\r":   "\r",
	}

	for token, expected := range mappings {
		seq, err := engine.ParseNewlineSequence(token)
		require.NoError(t, err)
		require.Equal(t, expected, seq, "token %q", token)
	}

	for _, token := range []string{"", "newline", `\t`, "LFCR"} {
		_, err := engine.ParseNewlineSequence(token)
		require.Error(t, err, "token %q", token)
	}
}

func TestParseAutoescapeExts(t *testing.T) {
	exts, err := engine.ParseAutoescapeExts(" HTML , svg ,,tpl ")
	require.NoError(t, err)
	require.Equal(t, []string{"html", "svg", "tpl"}, exts)

	// an empty list is an error, not a request for the defaults
	for _, raw := range []string{"", " , ,"} {
		_, err = engine.ParseAutoescapeExts(raw)
		require.Error(t, err, "input %q", raw)
	}
}

func TestParseUndefined(t *testing.T) {
	strict, err := engine.ParseUndefined("strict")
	require.NoError(t, err)
	require.True(t, strict)

	for _, mode := range []string{"default", "debug", "chain"} {
		strict, err = engine.ParseUndefined(mode)
		require.NoError(t, err)
		require.False(t, strict, "mode %q", mode)
	}

	_, err = engine.ParseUndefined("lenient")
	require.Error(t, err)
}

func TestAutoescaping(t *testing.T) {
	settings := engine.NewDefaultSettings()

	require.True(t, settings.Autoescaping("page.html"))
	require.True(t, settings.Autoescaping("page.XML"))
	require.False(t, settings.Autoescaping("notes.txt"))
	require.False(t, settings.Autoescaping("Makefile"))

	settings.AutoescapeExts = []string{"svg"}
	require.True(t, settings.Autoescaping("icon.svg"))
	require.False(t, settings.Autoescaping("page.html"))

	settings.Autoescape = "on"
	require.True(t, settings.Autoescaping("notes.txt"))

	settings.Autoescape = "off"
	require.False(t, settings.Autoescaping("page.html"))
}

func TestStdinTemplateName(t *testing.T) {
	exts := engine.DefaultAutoescapeExts

	require.Equal(t, "__stdin__.txt", engine.StdinTemplateName("", exts))
	require.Equal(t, "__stdin__.txt", engine.StdinTemplateName("-", exts))
	require.Equal(t, "__stdin__.txt", engine.StdinTemplateName("out.conf", exts))
	require.Equal(t, "__stdin__.html", engine.StdinTemplateName("out.html", exts))
	require.Equal(t, "__stdin__.xml", engine.StdinTemplateName("dir/out.XML", exts))

	// output extension only wins when it participates in autoescaping
	require.Equal(t, "__stdin__.txt", engine.StdinTemplateName("out.html", []string{"svg"}))
}
