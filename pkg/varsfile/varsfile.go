// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package varsfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Load reads a variables file and returns its top-level mapping. The
// serialization format is picked by file extension.
func Load(path string) (map[string]interface{}, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("Vars file not found: %s", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("Vars file must be a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Reading vars file '%s': %s", path, err)
	}

	var vars map[string]interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		vars, err = parseJSON(data)
	case ".yaml", ".yml":
		vars, err = parseYAML(data)
	case ".toml":
		vars, err = parseTOML(data)
	case ".ini":
		vars, err = parseINI(data)
	case ".hcl":
		vars, err = parseHCL(data, path)
	default:
		return nil, fmt.Errorf("Unsupported vars file type for %s (expected json, yaml, toml, ini, or hcl)", path)
	}

	if err != nil {
		return nil, fmt.Errorf("Parsing vars file '%s': %s", path, err)
	}
	if vars == nil {
		return nil, fmt.Errorf("Vars file '%s' is empty; expected a mapping at the root", path)
	}

	return vars, nil
}

func parseJSON(data []byte) (map[string]interface{}, error) {
	var parsed interface{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&parsed); err != nil {
		return nil, err
	}

	return asMapping(parsed)
}

func parseYAML(data []byte) (map[string]interface{}, error) {
	var parsed interface{}

	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	return asMapping(parsed)
}

func parseTOML(data []byte) (map[string]interface{}, error) {
	var parsed interface{}

	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	return asMapping(parsed)
}

// parseINI exposes named sections as nested maps plus the DEFAULT section.
// DEFAULT keys propagate into every named section, the section's own keys
// winning. Key case is preserved and every value stays a string.
func parseINI(data []byte) (map[string]interface{}, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	defaults := file.Section(ini.DefaultSection).KeysHash()

	vars := map[string]interface{}{
		ini.DefaultSection: stringMapAsInterface(defaults),
	}

	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}

		merged := stringMapAsInterface(defaults)
		for key, val := range section.KeysHash() {
			merged[key] = val
		}
		vars[section.Name()] = merged
	}

	return vars, nil
}

func asMapping(parsed interface{}) (map[string]interface{}, error) {
	switch typed := parsed.(type) {
	case nil:
		return nil, nil
	case map[string]interface{}:
		return typed, nil
	default:
		return nil, fmt.Errorf("expected a mapping at the root, but was %T", parsed)
	}
}

func stringMapAsInterface(in map[string]string) map[string]interface{} {
	out := map[string]interface{}{}
	for k, v := range in {
		out[k] = v
	}
	return out
}
