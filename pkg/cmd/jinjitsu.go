// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
	cmdrender "jinjitsu.dev/jinjitsu/pkg/cmd/render"
	"jinjitsu.dev/jinjitsu/pkg/version"
)

type JinjitsuOptions struct{}

func NewDefaultJinjitsuOptions() *JinjitsuOptions {
	return &JinjitsuOptions{}
}

func NewDefaultJinjitsuCmd() *cobra.Command {
	return NewJinjitsuCmd(NewDefaultJinjitsuOptions())
}

func NewJinjitsuCmd(o *JinjitsuOptions) *cobra.Command {
	cmd := cmdrender.NewCmd(cmdrender.NewOptions())

	cmd.Use = "jinjitsu [template]"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "jinjitsu renders Jinja templates"
	cmd.Long = `jinjitsu renders Jinja templates.

Examples:
  jinjitsu template.j2 -D name=World
  jinjitsu --stdin -D user=alice < template.j2
  cat ../template.j2 | jinjitsu --stdin -s ../includes
  jinjitsu emails/welcome.html --vars vars.yaml -m extras.star -o out.html`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdrender.NewCmd(cmdrender.NewOptions())) // for explicit `jinjitsu render ...` invocations

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
