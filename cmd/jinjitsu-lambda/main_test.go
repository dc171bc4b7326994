// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	resp, err := Handler(context.Background(), RenderRequest{
		Template: "Hello {{ name }}!",
		Vars:     map[string]interface{}{"name": "Lambda"},
	})
	require.NoError(t, err)
	require.Equal(t, "Hello Lambda!", resp.Output)
}

func TestHandlerAutoescapeByName(t *testing.T) {
	resp, err := Handler(context.Background(), RenderRequest{
		Template: "{{ val }}",
		Name:     "page.html",
		Vars:     map[string]interface{}{"val": "<b>"},
	})
	require.NoError(t, err)
	require.Equal(t, "&lt;b&gt;", resp.Output)
}

func TestHandlerValidation(t *testing.T) {
	_, err := Handler(context.Background(), RenderRequest{})
	require.Error(t, err)

	_, err = Handler(context.Background(), RenderRequest{Template: "x", Autoescape: "maybe"})
	require.Error(t, err)
}
