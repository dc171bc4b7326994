// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// Version is overridden at build time via -ldflags.
var Version = "0.4.0"

// EnsureMinimum errors when the running binary does not satisfy the given
// version constraint (e.g. ">= 0.3.0"). An empty constraint always passes.
func EnsureMinimum(constraint string) error {
	if len(constraint) == 0 {
		return nil
	}

	constraints, err := goversion.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("Parsing required version '%s': %s", constraint, err)
	}

	current, err := goversion.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("Parsing binary version '%s': %s", Version, err)
	}

	if !constraints.Check(current) {
		return fmt.Errorf("Version '%s' does not satisfy required version '%s'", Version, constraint)
	}

	return nil
}
