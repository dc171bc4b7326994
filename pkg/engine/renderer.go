// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/nikolalohinski/gonja"
	"github.com/nikolalohinski/gonja/config"
	"github.com/nikolalohinski/gonja/loaders"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("jinjitsu.dev/jinjitsu/pkg/engine")

// Source identifies the template to render. InMemory holds stdin (or
// request) contents; when nil the template is resolved from SearchPaths.
type Source struct {
	Name        string
	InMemory    []byte
	SearchPaths []string
}

// Print describes the resolved template source on the debug stream.
func (s Source) Print(w io.Writer) {
	fmt.Fprintf(w, "template: %s\n", s.Name)
	if s.InMemory != nil {
		fmt.Fprintf(w, "in-memory source: %d bytes\n", len(s.InMemory))
	}
	fmt.Fprintf(w, "search path: %v\n", s.SearchPaths)
}

// Renderer wraps a configured gonja environment for a single template
// source.
type Renderer struct {
	env  *gonja.Environment
	name string
}

func NewRenderer(src Source, settings Settings) *Renderer {
	cfg := config.NewConfig()
	cfg.Autoescape = settings.Autoescaping(src.Name)
	cfg.StrictUndefined = settings.StrictUndefined

	var loader loaders.Loader = NewSearchPathLoader(src.SearchPaths)
	if src.InMemory != nil {
		loader = NewChoiceLoader([]loaders.Loader{
			NewMemoryLoader(map[string]string{src.Name: string(src.InMemory)}),
			loader,
		})
	}

	// Whitespace control and newline policy are applied to the source
	// before the engine parses it; gonja v1 does not implement them.
	loader = newPreparingLoader(loader, settings)

	return &Renderer{env: gonja.NewEnvironment(cfg, loader), name: src.Name}
}

// Render executes the template against the merged variable context.
func (r *Renderer) Render(ctx context.Context, vars map[string]interface{}) (string, error) {
	_, span := tracer.Start(ctx, "engine.Render",
		trace.WithAttributes(
			attribute.String("template", r.name),
			attribute.Int("vars", len(vars)),
		))
	defer span.End()

	tpl, err := r.env.GetTemplate(r.name)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("Loading template '%s': %s", r.name, err)
	}

	out, err := tpl.Execute(gonja.Context(vars))
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("Rendering template '%s': %s", r.name, err)
	}

	return out, nil
}
