// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// OutputFile writes rendered output to a path, replacing any existing file
// atomically. Parent directories are created as needed.
type OutputFile struct {
	path string
}

func NewOutputFile(path string) OutputFile {
	return OutputFile{path}
}

func (f OutputFile) Path() string { return f.path }

func (f OutputFile) Write(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("Creating output directory '%s': %s", dir, err)
	}

	if err := atomic.WriteFile(f.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("Writing output file '%s': %s", f.path, err)
	}

	return nil
}
