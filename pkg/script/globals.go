// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package script executes Starlark files and exposes their top-level names as
template variables, standing in for the dynamic-import style of variable
injection.
*/
package script

import (
	"fmt"
	"os"

	"github.com/k14s/starlark-go/resolve"
	"github.com/k14s/starlark-go/starlark"
	"github.com/k14s/starlark-go/syntax"
)

func init() {
	resolve.AllowFloat = true
	resolve.AllowSet = true
	resolve.AllowLambda = true
	resolve.AllowNestedDef = true
	resolve.AllowBitwise = true
	resolve.AllowRecursion = true
	resolve.AllowGlobalReassign = true
}

// Globals executes the Starlark file at path and returns its top-level
// names as Go values, underscore-prefixed ones included. Non-data values
// such as functions are skipped.
func Globals(path string) (map[string]interface{}, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("Module not found: %s", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("Module must be a file: %s", path)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Reading module '%s': %s", path, err)
	}

	file, err := syntax.Parse(path, string(src), syntax.BlockScanner)
	if err != nil {
		return nil, fmt.Errorf("Parsing module '%s': %s", path, err)
	}

	predeclared := starlark.StringDict{}

	prog, err := starlark.FileProgram(file, predeclared.Has)
	if err != nil {
		return nil, fmt.Errorf("Compiling module '%s': %s", path, err)
	}

	thread := &starlark.Thread{Name: "jinjitsu-module"}

	globals, err := prog.Init(thread, predeclared)
	if err != nil {
		return nil, fmt.Errorf("Loading module '%s': %s", path, err)
	}

	globals.Freeze()

	vars := map[string]interface{}{}
	for name, val := range globals {
		switch val.(type) {
		case *starlark.Function, *starlark.Builtin:
			continue
		}

		goVal, err := asGoValue(val)
		if err != nil {
			return nil, fmt.Errorf("Converting global '%s' from module '%s': %s", name, path, err)
		}
		vars[name] = goVal
	}

	return vars, nil
}
