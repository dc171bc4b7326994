// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the full set of jinjitsu's "commands" -- instances of
cobra.Command (not to be confused with ./cmd which contains the bootstrapping
for executing jinjitsu in various environments).

The default command is "render".
*/
package cmd
