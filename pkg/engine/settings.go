// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"path/filepath"
	"strings"
)

const stdinTemplateBasename = "__stdin__"

// DefaultAutoescapeExts are the template name extensions that turn on
// escaping under the "smart" autoescape policy.
var DefaultAutoescapeExts = []string{"html", "htm", "xml", "xhtml"}

// newlineTokens maps every accepted --newline-sequence spelling to the
// literal characters handed to the engine. Shells differ on whether '\n'
// survives as two characters or one, so both spellings are accepted.
var newlineTokens = map[string]string{
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

// Settings carries already-normalized engine behavior knobs.
type Settings struct {
	Autoescape     string // smart, on, off
	AutoescapeExts []string

	StrictUndefined     bool
	TrimBlocks          bool
	LstripBlocks        bool
	KeepTrailingNewline bool
	NewlineSequence     string
}

func NewDefaultSettings() Settings {
	return Settings{
		Autoescape:      "smart",
		AutoescapeExts:  DefaultAutoescapeExts,
		StrictUndefined: true,
		NewlineSequence: "\n",
	}
}

// ParseNewlineSequence maps a --newline-sequence token to literal newline
// characters.
func ParseNewlineSequence(token string) (string, error) {
	if seq, found := newlineTokens[token]; found {
		return seq, nil
	}
	return "", fmt.Errorf(`Expected newline sequence to be one of \n, \r\n, or \r (also LF/CRLF/CR), but was '%s'`, token)
}

// ParseAutoescapeExts parses a comma separated extension list. An empty
// list is an error; callers wanting the defaults pass DefaultAutoescapeExts
// joined.
func ParseAutoescapeExts(raw string) ([]string, error) {
	var exts []string
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.ToLower(strings.TrimSpace(piece))
		if len(piece) > 0 {
			exts = append(exts, piece)
		}
	}

	if len(exts) == 0 {
		return nil, fmt.Errorf("Expected at least one extension for autoescaping")
	}
	return exts, nil
}

// ParseUndefined maps an undefined-handling mode to the engine's strictness
// switch. The engine resolves missing names to a chainable empty value when
// not strict, so default, debug and chain all select lenient mode.
func ParseUndefined(mode string) (bool, error) {
	switch mode {
	case "strict":
		return true, nil
	case "default", "debug", "chain":
		return false, nil
	default:
		return false, fmt.Errorf("Expected undefined mode to be one of strict, default, debug, or chain, but was '%s'", mode)
	}
}

// Autoescaping decides whether output escaping applies to the named
// template.
func (s Settings) Autoescaping(templateName string) bool {
	switch s.Autoescape {
	case "on":
		return true
	case "off":
		return false
	default:
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(templateName), "."))
		for _, candidate := range s.AutoescapeExts {
			if ext == candidate {
				return true
			}
		}
		return false
	}
}

// StdinTemplateName names the in-memory template holding stdin contents.
// The output path's extension is adopted only when it participates in
// autoescaping; everything else renders as plain text.
func StdinTemplateName(outputPath string, autoescapeExts []string) string {
	ext := "txt"
	if len(outputPath) > 0 && outputPath != "-" {
		candidate := strings.ToLower(strings.TrimPrefix(filepath.Ext(outputPath), "."))
		for _, autoExt := range autoescapeExts {
			if candidate == autoExt {
				ext = candidate
				break
			}
		}
	}
	return stdinTemplateBasename + "." + ext
}
