// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"jinjitsu.dev/jinjitsu/pkg/engine"
)

// RenderRequest is a direct-invocation payload: template source plus a flat
// variable mapping and the engine knobs that make sense without a
// filesystem.
type RenderRequest struct {
	Template string                 `json:"template"`
	Name     string                 `json:"name,omitempty"`
	Vars     map[string]interface{} `json:"vars,omitempty"`

	Autoescape          string `json:"autoescape,omitempty"`
	TrimBlocks          bool   `json:"trimBlocks,omitempty"`
	LstripBlocks        bool   `json:"lstripBlocks,omitempty"`
	KeepTrailingNewline bool   `json:"keepTrailingNewline,omitempty"`
}

type RenderResponse struct {
	Output string `json:"output"`
}

func Handler(ctx context.Context, req RenderRequest) (RenderResponse, error) {
	if len(req.Template) == 0 {
		return RenderResponse{}, fmt.Errorf("Expected non-empty template")
	}

	settings := engine.NewDefaultSettings()
	settings.TrimBlocks = req.TrimBlocks
	settings.LstripBlocks = req.LstripBlocks
	settings.KeepTrailingNewline = req.KeepTrailingNewline

	switch req.Autoescape {
	case "":
		// keep smart default
	case "smart", "on", "off":
		settings.Autoescape = req.Autoescape
	default:
		return RenderResponse{}, fmt.Errorf("Expected autoescape policy to be one of smart, on, or off, but was '%s'", req.Autoescape)
	}

	name := req.Name
	if len(name) == 0 {
		name = engine.StdinTemplateName("", settings.AutoescapeExts)
	}

	renderer := engine.NewRenderer(engine.Source{
		Name:     name,
		InMemory: []byte(req.Template),
	}, settings)

	out, err := renderer.Render(ctx, req.Vars)
	if err != nil {
		return RenderResponse{}, err
	}

	return RenderResponse{Output: out}, nil
}

func main() {
	lambda.Start(Handler)
}
