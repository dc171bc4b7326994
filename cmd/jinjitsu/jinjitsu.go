// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"
	"jinjitsu.dev/jinjitsu/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultJinjitsuCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "jinjitsu: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
