// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"jinjitsu.dev/jinjitsu/pkg/cmd/ui"
	"jinjitsu.dev/jinjitsu/pkg/engine"
	"jinjitsu.dev/jinjitsu/pkg/files"
	"jinjitsu.dev/jinjitsu/pkg/version"
)

type Options struct {
	Debug           bool
	RequiredVersion string

	TemplateSourceOpts TemplateSourceOpts
	VarsFlags          VarsFlags
	EngineFlags        EngineFlags
}

func NewOptions() *Options {
	return &Options{EngineFlags: EngineFlags{
		Autoescape:      "smart",
		AutoescapeExts:  strings.Join(engine.DefaultAutoescapeExts, ","),
		Undefined:       "strict",
		NewlineSequence: `\n`,
	}}
}

func NewCmd(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render [template]",
		Aliases: []string{"r"},
		Short:   "Render a Jinja template",
		Args:    cobra.MaximumNArgs(1),
		RunE:    func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output (full diagnostic detail)")
	cmd.Flags().StringVar(&o.RequiredVersion, "required-version", "", "Fail unless the binary version satisfies the given constraint (e.g. '>= 0.3.0')")
	o.TemplateSourceOpts.Set(cmd)
	o.VarsFlags.Set(cmd)
	o.EngineFlags.Set(cmd)
	return cmd
}

func (o *Options) Run(args []string) error {
	return o.RunWithUI(args, ui.NewTTY(o.Debug))
}

func (o *Options) RunWithUI(args []string, ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	err := version.EnsureMinimum(o.RequiredVersion)
	if err != nil {
		return err
	}

	settings, err := o.EngineFlags.Settings()
	if err != nil {
		return err
	}

	switch o.EngineFlags.Undefined {
	case "debug", "chain":
		ui.Warnf("Warning: undefined mode '%s' renders missing variables the same as 'default'\n", o.EngineFlags.Undefined)
	}

	vars, err := o.VarsFlags.Values(ui)
	if err != nil {
		return err
	}

	src, err := o.TemplateSourceOpts.Resolve(args, settings.AutoescapeExts)
	if err != nil {
		return err
	}

	src.Print(ui.DebugWriter())

	rendered, err := engine.NewRenderer(src, settings).Render(context.Background(), vars)
	if err != nil {
		return err
	}

	output := o.TemplateSourceOpts.Output
	if len(output) == 0 || output == "-" {
		ui.Printf("%s", rendered) // no newline
		return nil
	}

	ui.Debugf("writing: %s\n", output)

	return files.NewOutputFile(output).Write([]byte(rendered))
}
