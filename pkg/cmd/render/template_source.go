// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"jinjitsu.dev/jinjitsu/pkg/engine"
	"jinjitsu.dev/jinjitsu/pkg/files"
)

type TemplateSourceOpts struct {
	Stdin       bool
	SearchPaths []string
	Output      string
}

func (s *TemplateSourceOpts) Set(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&s.Stdin, "stdin", false, "Read template from standard input (heredoc/pipe)")
	cmd.Flags().StringArrayVarP(&s.SearchPaths, "searchpath", "s", nil, "Add a directory to look for included/imported templates; the template's own directory is always included (can be specified multiple times)")
	cmd.Flags().StringVarP(&s.Output, "output", "o", "", "Write output to path, overwriting any existing file ('-' or absent means stdout)")
}

// Resolve validates the template/--stdin choice and produces the engine
// source: name, optional in-memory contents and the ordered search path.
func (s *TemplateSourceOpts) Resolve(args []string, autoescapeExts []string) (engine.Source, error) {
	templateArg := ""
	if len(args) > 0 {
		templateArg = args[0]
	}

	if s.Stdin && len(templateArg) > 0 {
		return engine.Source{}, fmt.Errorf("Expected either a template path or --stdin, but got both")
	}
	if !s.Stdin && len(templateArg) == 0 {
		return engine.Source{}, fmt.Errorf("Expected a template path or --stdin")
	}

	extraPaths, err := s.resolveSearchPaths()
	if err != nil {
		return engine.Source{}, err
	}

	if s.Stdin {
		data, err := files.ReadStdin()
		if err != nil {
			return engine.Source{}, err
		}

		paths := extraPaths
		if len(paths) == 0 {
			cwd, err := os.Getwd()
			if err != nil {
				return engine.Source{}, err
			}
			paths = []string{cwd}
		}

		return engine.Source{
			Name:        engine.StdinTemplateName(s.Output, autoescapeExts),
			InMemory:    data,
			SearchPaths: paths,
		}, nil
	}

	info, err := os.Stat(templateArg)
	if err != nil {
		return engine.Source{}, fmt.Errorf("Template not found: %s", templateArg)
	}
	if info.IsDir() {
		return engine.Source{}, fmt.Errorf("Template must be a file: %s", templateArg)
	}

	absTemplate, err := filepath.Abs(templateArg)
	if err != nil {
		return engine.Source{}, err
	}

	return engine.Source{
		Name:        filepath.Base(absTemplate),
		SearchPaths: append([]string{filepath.Dir(absTemplate)}, extraPaths...),
	}, nil
}

func (s *TemplateSourceOpts) resolveSearchPaths() ([]string, error) {
	var resolved []string
	for _, raw := range s.SearchPaths {
		info, err := os.Stat(raw)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("Search path must be an existing directory: %s", raw)
		}

		abs, err := filepath.Abs(raw)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, abs)
	}
	return resolved, nil
}
