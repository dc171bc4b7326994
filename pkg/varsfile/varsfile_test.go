// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package varsfile_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"jinjitsu.dev/jinjitsu/pkg/varsfile"
)

func TestLoadJSON(t *testing.T) {
	path := writeVarsFile(t, "vars.json", `{"name": "web", "count": 42, "nested": {"a": true}}`)

	vars, err := varsfile.Load(path)
	require.NoError(t, err)
	require.Equal(t, "web", vars["name"])
	require.Equal(t, json.Number("42"), vars["count"])
	require.Equal(t, map[string]interface{}{"a": true}, vars["nested"])
}

func TestLoadYAML(t *testing.T) {
	path := writeVarsFile(t, "vars.yaml", "host: localhost\nport: 8080\ntags:\n- a\n- b\n")

	vars, err := varsfile.Load(path)
	require.NoError(t, err)
	require.Equal(t, "localhost", vars["host"])
	require.Equal(t, 8080, vars["port"])
	require.Equal(t, []interface{}{"a", "b"}, vars["tags"])

	// .yml dispatches the same way
	path = writeVarsFile(t, "vars.yml", "key: val\n")
	vars, err = varsfile.Load(path)
	require.NoError(t, err)
	require.Equal(t, "val", vars["key"])
}

func TestLoadTOML(t *testing.T) {
	path := writeVarsFile(t, "vars.toml", "title = \"demo\"\n\n[owner]\nname = \"ops\"\n")

	vars, err := varsfile.Load(path)
	require.NoError(t, err)
	require.Equal(t, "demo", vars["title"])
	require.Equal(t, map[string]interface{}{"name": "ops"}, vars["owner"])
}

func TestLoadINI(t *testing.T) {
	path := writeVarsFile(t, "vars.ini", "[DEFAULT]\nenv = prod\n\n[server]\nHost = localhost\nport = 8080\n")

	vars, err := varsfile.Load(path)
	require.NoError(t, err)

	require.Equal(t, map[string]interface{}{"env": "prod"}, vars["DEFAULT"])
	// DEFAULT keys propagate into named sections; key case is preserved,
	// values stay strings
	require.Equal(t, map[string]interface{}{"env": "prod", "Host": "localhost", "port": "8080"}, vars["server"])
}

func TestLoadINISectionKeysWinOverDefaults(t *testing.T) {
	path := writeVarsFile(t, "vars.ini", "[DEFAULT]\nenv = prod\nregion = eu\n\n[staging]\nenv = staging\n")

	vars, err := varsfile.Load(path)
	require.NoError(t, err)

	require.Equal(t, map[string]interface{}{"env": "staging", "region": "eu"}, vars["staging"])
	require.Equal(t, map[string]interface{}{"env": "prod", "region": "eu"}, vars["DEFAULT"])
}

func TestLoadINIKeysBeforeSectionHeaderActAsDefaults(t *testing.T) {
	path := writeVarsFile(t, "vars.ini", "env = prod\n\n[server]\nhost = localhost\n")

	vars, err := varsfile.Load(path)
	require.NoError(t, err)

	require.Equal(t, map[string]interface{}{"env": "prod"}, vars["DEFAULT"])
	require.Equal(t, map[string]interface{}{"env": "prod", "host": "localhost"}, vars["server"])
}

func TestLoadHCL(t *testing.T) {
	path := writeVarsFile(t, "vars.hcl", `
name  = "web"
count = 3
ratio = 0.5
tags  = ["a", "b"]
meta  = { owner = "ops" }
`)

	vars, err := varsfile.Load(path)
	require.NoError(t, err)
	require.Equal(t, "web", vars["name"])
	require.Equal(t, int64(3), vars["count"])
	require.Equal(t, 0.5, vars["ratio"])
	require.Equal(t, []interface{}{"a", "b"}, vars["tags"])
	require.Equal(t, map[string]interface{}{"owner": "ops"}, vars["meta"])
}

func TestLoadHCLRejectsNonConstantExprs(t *testing.T) {
	path := writeVarsFile(t, "vars.hcl", "value = var.other\n")

	_, err := varsfile.Load(path)
	require.Error(t, err)
}

func TestLoadRejectsUnsupportedExtension(t *testing.T) {
	path := writeVarsFile(t, "vars.properties", "a=b\n")

	_, err := varsfile.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unsupported vars file type")
}

func TestLoadRejectsNonMappingRoot(t *testing.T) {
	for name, contents := range map[string]string{
		"list.json":   `[1, 2]`,
		"scalar.yaml": "just a string\n",
	} {
		path := writeVarsFile(t, name, contents)
		_, err := varsfile.Load(path)
		require.Error(t, err, "file %s", name)
	}
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := writeVarsFile(t, "empty.yaml", "")

	_, err := varsfile.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty")
}

func TestLoadRejectsMissingOrDirectory(t *testing.T) {
	_, err := varsfile.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")

	_, err = varsfile.Load(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a file")
}

func writeVarsFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}
