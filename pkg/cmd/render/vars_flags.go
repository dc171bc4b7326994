// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"jinjitsu.dev/jinjitsu/pkg/cmd/ui"
	"jinjitsu.dev/jinjitsu/pkg/script"
	"jinjitsu.dev/jinjitsu/pkg/varsfile"
)

type VarsFlags struct {
	KVs     []string
	Files   []string
	Modules []string
}

func (s *VarsFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.KVs, "var", "D", nil, "Set a string variable (format: key=value) (can be specified multiple times; highest precedence)")
	cmd.Flags().StringArrayVar(&s.Files, "vars", nil, "Load variables from a json, yaml, toml, ini, or hcl file; top-level must be a mapping (can be specified multiple times)")
	cmd.Flags().StringArrayVarP(&s.Modules, "module", "m", nil, "Execute a Starlark file; its top-level names become variables (can be specified multiple times; lowest precedence)")
}

// Values merges all variable sources into a single flat mapping. Sources
// apply in fixed precedence order: module globals, then vars files, then
// explicit key=value pairs; within a source, flag order. Later writes win.
func (s *VarsFlags) Values(ui ui.UI) (map[string]interface{}, error) {
	vars := map[string]interface{}{}

	for _, path := range s.Modules {
		globals, err := script.Globals(path)
		if err != nil {
			return nil, err
		}
		ui.Debugf("module %s: %d globals\n", path, len(globals))
		for key, val := range globals {
			vars[key] = val
		}
	}

	for _, path := range s.Files {
		payload, err := varsfile.Load(path)
		if err != nil {
			return nil, err
		}
		ui.Debugf("vars file %s: %d keys\n", path, len(payload))
		for key, val := range payload {
			vars[key] = val
		}
	}

	for _, kv := range s.KVs {
		key, val, err := parseKV(kv)
		if err != nil {
			return nil, err
		}
		vars[key] = val
	}

	return vars, nil
}

func parseKV(kv string) (string, string, error) {
	pieces := strings.SplitN(kv, "=", 2)
	if len(pieces) != 2 {
		return "", "", fmt.Errorf("Expected format key=value for --var, but was '%s'", kv)
	}
	if len(pieces[0]) == 0 {
		return "", "", fmt.Errorf("Expected non-empty key for --var '%s'", kv)
	}
	return pieces[0], pieces[1], nil
}
