// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package render implements the "render" command.

Front-and-center is render.Options. This is both the host of jinjitsu
settings parsed from the command-line through Cobra AND the top-level logic
that implements the command: load variable sources, merge them, configure
the engine, render, write.
*/
package render
