// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pipenav/pipenav/pkg/files"
	"github.com/pipenav/pipenav/pkg/resolve"
)

func newRepoSystem() *files.MemorySystem {
	fsys := files.NewMemorySystem()
	fsys.MkdirAll("/ws/myrepo/.git")
	fsys.WriteFile("/ws/myrepo/pipelines/p.yml", "")
	fsys.WriteFile("/ws/myrepo/templates/build.yml", "")
	fsys.WriteFile("/ws/shared-templates/stages/build.yml", "")
	return fsys
}

func TestResolveRelative(t *testing.T) {
	r := resolve.NewResolver(newRepoSystem())

	resolved := r.Resolve("steps/test.yml", "/ws/myrepo/pipelines/p.yml", nil)
	require.NotNil(t, resolved)
	require.Equal(t, "/ws/myrepo/pipelines/steps/test.yml", resolved.AbsolutePath)
	require.Equal(t, resolve.KindLocalRelative, resolved.Kind)
	require.False(t, resolved.UnknownAlias)
}

func TestResolveRelativeDotSlashAndParent(t *testing.T) {
	r := resolve.NewResolver(newRepoSystem())

	resolved := r.Resolve("./steps/test.yml", "/ws/myrepo/pipelines/p.yml", nil)
	require.Equal(t, "/ws/myrepo/pipelines/steps/test.yml", resolved.AbsolutePath)

	resolved = r.Resolve("../templates/build.yml", "/ws/myrepo/pipelines/p.yml", nil)
	require.Equal(t, "/ws/myrepo/templates/build.yml", resolved.AbsolutePath)
}

func TestResolveRepoRootAbsolute(t *testing.T) {
	r := resolve.NewResolver(newRepoSystem())

	resolved := r.Resolve("/templates/build.yml", "/ws/myrepo/pipelines/p.yml", nil)
	require.Equal(t, "/ws/myrepo/templates/build.yml", resolved.AbsolutePath)
	require.Equal(t, resolve.KindRepoRootAbsolute, resolved.Kind)
}

func TestResolveSelfAlias(t *testing.T) {
	r := resolve.NewResolver(newRepoSystem())

	resolved := r.Resolve("steps/test.yml@self", "/ws/myrepo/pipelines/p.yml", map[string]string{})
	require.Equal(t, "/ws/myrepo/pipelines/steps/test.yml", resolved.AbsolutePath)
	require.Equal(t, resolve.KindSelfAlias, resolved.Kind)
}

func TestResolveCrossRepoAlias(t *testing.T) {
	r := resolve.NewResolver(newRepoSystem())
	aliases := map[string]string{"templates": "shared-templates"}

	resolved := r.Resolve("stages/build.yml@templates", "/ws/myrepo/pipelines/p.yml", aliases)
	require.NotNil(t, resolved)
	require.Equal(t, "/ws/shared-templates/stages/build.yml", resolved.AbsolutePath)
	require.Equal(t, "shared-templates", resolved.RepositoryName)
	require.Equal(t, "templates", resolved.Alias)
	require.Equal(t, resolve.KindCrossRepo, resolved.Kind)
}

func TestResolveUnknownAlias(t *testing.T) {
	r := resolve.NewResolver(newRepoSystem())

	resolved := r.Resolve("stages/build.yml@nope", "/ws/myrepo/pipelines/p.yml", map[string]string{})
	require.NotNil(t, resolved)
	require.True(t, resolved.UnknownAlias)
	require.Equal(t, "nope", resolved.Alias)
	require.Equal(t, "", resolved.AbsolutePath)
	require.Equal(t, resolve.KindUnknownAlias, resolved.Kind)
}

func TestResolveEmptyReference(t *testing.T) {
	r := resolve.NewResolver(newRepoSystem())

	require.Nil(t, r.Resolve("", "/ws/myrepo/pipelines/p.yml", nil))
	require.Nil(t, r.Resolve("   ", "/ws/myrepo/pipelines/p.yml", nil))
}

func TestRepoRootFallsBackToIncludingDir(t *testing.T) {
	fsys := files.NewMemorySystem()
	fsys.WriteFile("/plain/dir/p.yml", "")
	r := resolve.NewResolver(fsys)

	require.Equal(t, "/plain/dir", r.RepoRoot("/plain/dir"))

	resolved := r.Resolve("/templates/x.yml", "/plain/dir/p.yml", nil)
	require.Equal(t, "/plain/dir/templates/x.yml", resolved.AbsolutePath)
}
