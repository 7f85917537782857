// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pipenav/pipenav/pkg/pipeline"
)

func TestParseVariablesMapForm(t *testing.T) {
	const data = `variables:
  buildConfiguration: Release
  artifactName: drop # trailing comment

steps:
  - script: echo $(buildConfiguration)
`

	block := pipeline.ParseVariables(data)
	require.Len(t, block.Variables, 2)
	require.Empty(t, block.Groups)

	v, found := block.Lookup("buildConfiguration")
	require.True(t, found)
	require.Equal(t, "Release", v.Value)
	require.Equal(t, 1, v.Pos.LineIdx())

	v, found = block.Lookup("artifactName")
	require.True(t, found)
	require.Equal(t, "drop", v.Value)
}

func TestParseVariablesListForm(t *testing.T) {
	const data = `variables:
  - name: buildConfiguration
    value: Release
  - group: deployment-secrets
  - name: artifactName
    value: drop
`

	block := pipeline.ParseVariables(data)
	require.Len(t, block.Variables, 2)
	require.Len(t, block.Groups, 1)

	require.Equal(t, "deployment-secrets", block.Groups[0].Name)
	require.Equal(t, 3, block.Groups[0].Pos.LineIdx())

	v, found := block.Lookup("buildConfiguration")
	require.True(t, found)
	require.Equal(t, "Release", v.Value)
	// position points at the declaring "- name:" line
	require.Equal(t, 1, v.Pos.LineIdx())
}

func TestParseVariablesFlushListItems(t *testing.T) {
	// list items flush at column 0
	const data = `variables:
- name: buildConfiguration
  value: Release
- group: deployment-secrets

steps:
  - script: echo $(buildConfiguration)
`

	block := pipeline.ParseVariables(data)
	require.Len(t, block.Variables, 1)
	require.Len(t, block.Groups, 1)

	v, found := block.Lookup("buildConfiguration")
	require.True(t, found)
	require.Equal(t, "Release", v.Value)
	require.Equal(t, 1, v.Pos.LineIdx())
	require.Equal(t, "deployment-secrets", block.Groups[0].Name)
}

func TestParseVariablesFormFixedByFirstLine(t *testing.T) {
	const data = `variables:
  - name: listStyle
    value: first
  mapStyle: ignored
`

	block := pipeline.ParseVariables(data)
	require.Len(t, block.Variables, 1)
	require.Equal(t, "listStyle", block.Variables[0].Name)
}

func TestParseVariablesTemplateEntriesIgnored(t *testing.T) {
	const data = `variables:
  - template: vars/common.yml
  - name: own
    value: yes
`

	block := pipeline.ParseVariables(data)
	require.Len(t, block.Variables, 1)
	require.Equal(t, "own", block.Variables[0].Name)
}

func TestParseVariablesAbsent(t *testing.T) {
	block := pipeline.ParseVariables("steps:\n  - script: echo\n")
	require.Empty(t, block.Variables)
	require.Empty(t, block.Groups)
}
