// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pipenav/pipenav/pkg/validate"
)

func TestCheckUnusedParameters(t *testing.T) {
	const data = `parameters:
  - name: env
  - name: region
  - name: forgotten

steps:
  - script: echo ${{ parameters.env }}
  - ${{ if parameters.region }}:
      - script: echo ${{ parameters.region }}
`

	unused := validate.CheckUnusedParameters(data)
	require.Len(t, unused, 1)
	require.Equal(t, "forgotten", unused[0].Name)
	require.Equal(t, 3, unused[0].Pos.LineIdx())
}

func TestCheckUnusedParametersBareObjectShortCircuits(t *testing.T) {
	const data = `parameters:
  - name: env
  - name: region

steps:
  - script: echo '${{ convertToJson(parameters) }}'
`

	require.Empty(t, validate.CheckUnusedParameters(data))
}

func TestCheckUnusedParametersEachPassthroughShortCircuits(t *testing.T) {
	const data = `parameters:
  - name: env

steps:
  - template: other.yml
    parameters:
      ${{ each p in parameters }}:
        ${{ p.key }}: ${{ p.value }}
`

	require.Empty(t, validate.CheckUnusedParameters(data))
}

func TestCheckUnusedParametersPathSegmentIsNotBareObject(t *testing.T) {
	// "parameters" as a plain path segment carries no object meaning
	const data = `parameters:
  - name: env
  - name: forgotten

steps:
  - template: parameters/foo.yml
    parameters:
      env: ${{ parameters.env }}
`

	unused := validate.CheckUnusedParameters(data)
	require.Len(t, unused, 1)
	require.Equal(t, "forgotten", unused[0].Name)
}

func TestCheckUnusedParametersWordBounded(t *testing.T) {
	const data = `parameters:
  - name: run
  - name: runTests

steps:
  - script: echo ${{ parameters.runTests }}
`

	unused := validate.CheckUnusedParameters(data)
	require.Len(t, unused, 1)
	require.Equal(t, "run", unused[0].Name)
}

func TestCheckUnusedParametersNoDeclarations(t *testing.T) {
	require.Empty(t, validate.CheckUnusedParameters("steps:\n  - script: echo\n"))
}

func TestCheckUnusedParametersFunctionCallArgument(t *testing.T) {
	const data = `parameters:
  - name: flags

steps:
  - script: echo ${{ join(' ', parameters.flags) }}
`

	require.Empty(t, validate.CheckUnusedParameters(data))
}
