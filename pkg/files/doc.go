// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files handles the process-level byte plumbing: one-shot reading of
standard input and writing rendered output to stdout or a file.
*/
package files
