// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pipenav/pipenav/pkg/files"
	"github.com/pipenav/pipenav/pkg/validate"
	"github.com/pipenav/pipenav/pkg/workspace"
)

func newWorkspaceFixture() *workspace.Workspace {
	fsys := files.NewMemorySystem()
	fsys.MkdirAll("/ws/myrepo/.git")

	fsys.WriteFile("/ws/myrepo/azure-pipelines.yml", `trigger:
  - main

stages:
  - template: stages/build.yml
    parameters:
      env: prod
`)
	fsys.WriteFile("/ws/myrepo/stages/build.yml", `parameters:
  - name: env
  - name: region

jobs:
  - job: build
`)
	return workspace.NewWithSystem(fsys, "/ws", workspace.Config{})
}

func TestWorkspaceCandidates(t *testing.T) {
	candidates, err := newWorkspaceFixture().Candidates()
	require.NoError(t, err)

	var rels []string
	for _, c := range candidates {
		rels = append(rels, c.RelPath)
	}
	require.Equal(t, []string{"myrepo/azure-pipelines.yml", "myrepo/stages/build.yml"}, rels)
}

func TestWorkspaceValidateFile(t *testing.T) {
	ws := newWorkspaceFixture()

	issues, err := ws.ValidateFile("/ws/myrepo/azure-pipelines.yml")
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Equal(t, validate.IssueMissingRequiredParameter, issues[0].Kind)
	require.Equal(t, "region", issues[0].ParamName)
}

func TestWorkspaceValidateAll(t *testing.T) {
	results, err := newWorkspaceFixture().ValidateAll()
	require.NoError(t, err)

	// only the file with diagnostics shows up
	require.Len(t, results, 1)
	require.Equal(t, "/ws/myrepo/azure-pipelines.yml", results[0].Path)
	require.Len(t, results[0].Issues, 1)
}

func TestWorkspaceAliasTable(t *testing.T) {
	ws := workspace.NewWithSystem(files.NewMemorySystem(), "/ws", workspace.Config{
		Aliases: map[string]string{"templates": "from-config", "extra": "lib"},
	})

	text := `resources:
  repositories:
    - repository: templates
      name: org/from-file
`

	aliases := ws.AliasTable(text)
	require.Equal(t, "from-file", aliases["templates"]) // file wins
	require.Equal(t, "lib", aliases["extra"])
}

func TestWorkspaceScopedGraph(t *testing.T) {
	ws := newWorkspaceFixture()

	g, err := ws.ScopedGraph("/ws/myrepo/stages/build.yml", 2)
	require.NoError(t, err)

	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)
	require.Equal(t, "/ws/myrepo/azure-pipelines.yml", g.Edges[0].SourceID)
}
