// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pipenav/pipenav/pkg/pipeline"
)

func TestParseParametersBasic(t *testing.T) {
	const data = `parameters:
  - name: env
    type: string
  - name: replicas
    type: number
    default: 3
  - name: verbose
    type: boolean
    default: false

steps:
  - script: echo hi
`

	params := pipeline.ParseParameters(data)
	require.Len(t, params, 3)

	require.Equal(t, "env", params[0].Name)
	require.Equal(t, "string", params[0].Type)
	require.True(t, params[0].Required())
	require.Equal(t, 1, params[0].Pos.LineIdx())

	require.Equal(t, "replicas", params[1].Name)
	require.Equal(t, "number", params[1].Type)
	require.False(t, params[1].Required())
	require.Equal(t, "3", *params[1].Default)

	require.Equal(t, "verbose", params[2].Name)
	require.Equal(t, "false", *params[2].Default)
}

func TestParseParametersRequiredIffNoDefault(t *testing.T) {
	const data = `parameters:
  - name: a
  - name: b
    default: ""
  - name: c
    default:
      x: 1
`

	params := pipeline.ParseParameters(data)
	require.Len(t, params, 3)

	for _, p := range params {
		require.Equal(t, p.Default == nil, p.Required(), "parameter %q", p.Name)
	}
	require.True(t, params[0].Required())
	require.False(t, params[1].Required())
	// object default appears as an empty value on the "default:" line itself
	require.False(t, params[2].Required())
}

func TestParseParametersCRLF(t *testing.T) {
	const lf = "parameters:\n  - name: env\n    type: string\n  - name: count\n    default: 1\n"
	crlf := strings.ReplaceAll(lf, "\n", "\r\n")

	require.Equal(t, pipeline.ParseParameters(lf), pipeline.ParseParameters(crlf))
}

func TestParseParametersTrailingComments(t *testing.T) {
	const data = `parameters:
  - name: env # the target environment
    type: string # always a string
`

	params := pipeline.ParseParameters(data)
	require.Len(t, params, 1)
	require.Equal(t, "env", params[0].Name)
	require.Equal(t, "string", params[0].Type)
}

func TestParseParametersCommentsAtColumnZero(t *testing.T) {
	const data = `parameters:
  - name: first
# a full-width descriptive comment does not end the block
  - name: second
`

	params := pipeline.ParseParameters(data)
	require.Len(t, params, 2)
	require.Equal(t, "second", params[1].Name)
}

func TestParseParametersOffDepthItemsSkipped(t *testing.T) {
	const data = `parameters:
  - name: top
    default:
      - name: nested
  - name: sibling
`

	params := pipeline.ParseParameters(data)
	require.Len(t, params, 2)
	require.Equal(t, "top", params[0].Name)
	require.Equal(t, "sibling", params[1].Name)
}

func TestParseParametersEmptyOrAbsent(t *testing.T) {
	require.Empty(t, pipeline.ParseParameters(""))
	require.Empty(t, pipeline.ParseParameters("steps:\n  - script: echo\n"))
	require.Empty(t, pipeline.ParseParameters("parameters:\n\nsteps:\n  - script: echo\n"))
}

func TestParseParametersIdempotent(t *testing.T) {
	const data = "parameters:\n  - name: env\n    type: string\n"

	require.Equal(t, pipeline.ParseParameters(data), pipeline.ParseParameters(data))
}
