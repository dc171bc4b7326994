// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"

	"github.com/spf13/cobra"
	"jinjitsu.dev/jinjitsu/pkg/engine"
)

type EngineFlags struct {
	Autoescape     string
	AutoescapeExts string
	Undefined      string

	TrimBlocks          bool
	LstripBlocks        bool
	KeepTrailingNewline bool
	NewlineSequence     string
}

func (s *EngineFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.Autoescape, "autoescape", s.Autoescape, "HTML/XML escaping policy: smart chooses by extension, on always, off never")
	cmd.Flags().StringVar(&s.AutoescapeExts, "autoescape-exts", s.AutoescapeExts, "Extensions used by smart autoescape (format: ext,ext)")
	cmd.Flags().StringVar(&s.Undefined, "undefined", s.Undefined, "How to handle missing variables: strict, default, debug, or chain")
	cmd.Flags().BoolVar(&s.TrimBlocks, "trim-blocks", false, "Strip the first newline after a block")
	cmd.Flags().BoolVar(&s.LstripBlocks, "lstrip-blocks", false, "Strip leading spaces/tabs from the start of a line to a block")
	cmd.Flags().BoolVar(&s.KeepTrailingNewline, "keep-trailing-newline", false, "Keep a single trailing newline at the end of the output")
	cmd.Flags().StringVar(&s.NewlineSequence, "newline-sequence", s.NewlineSequence, `Newline characters to use in output: \n, \r\n, or \r (also LF/CRLF/CR)`)
}

// Settings normalizes the raw flag values into engine settings.
func (s *EngineFlags) Settings() (engine.Settings, error) {
	switch s.Autoescape {
	case "smart", "on", "off":
	default:
		return engine.Settings{}, fmt.Errorf("Expected autoescape policy to be one of smart, on, or off, but was '%s'", s.Autoescape)
	}

	exts, err := engine.ParseAutoescapeExts(s.AutoescapeExts)
	if err != nil {
		return engine.Settings{}, err
	}

	strict, err := engine.ParseUndefined(s.Undefined)
	if err != nil {
		return engine.Settings{}, err
	}

	newline, err := engine.ParseNewlineSequence(s.NewlineSequence)
	if err != nil {
		return engine.Settings{}, err
	}

	return engine.Settings{
		Autoescape:          s.Autoescape,
		AutoescapeExts:      exts,
		StrictUndefined:     strict,
		TrimBlocks:          s.TrimBlocks,
		LstripBlocks:        s.LstripBlocks,
		KeepTrailingNewline: s.KeepTrailingNewline,
		NewlineSequence:     newline,
	}, nil
}
