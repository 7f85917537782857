// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pipenav/pipenav/pkg/files"
)

func TestIsYAMLPath(t *testing.T) {
	require.True(t, files.IsYAMLPath("stages/build.yml"))
	require.True(t, files.IsYAMLPath("azure-pipelines.yaml"))
	require.False(t, files.IsYAMLPath("readme.md"))
	require.False(t, files.IsYAMLPath("noextension"))
}

func TestLocalSystemListYAML(t *testing.T) {
	root := t.TempDir()

	mustWrite := func(relPath, contents string) {
		fullPath := filepath.Join(root, relPath)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(contents), 0o644))
	}

	mustWrite("azure-pipelines.yml", "trigger: none\n")
	mustWrite("stages/build.yml", "jobs: []\n")
	mustWrite("stages/notes.txt", "not yaml\n")
	mustWrite("node_modules/dep/ci.yml", "skipped\n")
	mustWrite("generated/out.yml", "skipped via config\n")

	fsys := files.NewLocalSystem([]string{"generated"})

	paths, err := fsys.ListYAML(root)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "azure-pipelines.yml"),
		filepath.Join(root, "stages/build.yml"),
	}, paths)

	require.True(t, fsys.Exists(filepath.Join(root, "azure-pipelines.yml")))
	require.False(t, fsys.Exists(filepath.Join(root, "stages")))
	require.True(t, fsys.IsDir(filepath.Join(root, "stages")))

	text, err := fsys.ReadFile(filepath.Join(root, "azure-pipelines.yml"))
	require.NoError(t, err)
	require.Equal(t, "trigger: none\n", text)

	_, err = fsys.ReadFile(filepath.Join(root, "absent.yml"))
	require.Error(t, err)
}

func TestMemorySystemListYAML(t *testing.T) {
	fsys := files.NewMemorySystem()
	fsys.MkdirAll("/ws/repo/.git")
	fsys.WriteFile("/ws/repo/a.yml", "a")
	fsys.WriteFile("/ws/repo/deep/b.yaml", "b")
	fsys.WriteFile("/ws/repo/vendor/c.yml", "c")
	fsys.WriteFile("/ws/repo/readme.md", "d")
	fsys.WriteFile("/ws/other/e.yml", "e")

	paths, err := fsys.ListYAML("/ws/repo")
	require.NoError(t, err)
	require.Equal(t, []string{"/ws/repo/a.yml", "/ws/repo/deep/b.yaml"}, paths)

	require.True(t, fsys.IsDir("/ws/repo/.git"))
	require.True(t, fsys.IsDir("/ws/repo/deep"))
	require.False(t, fsys.IsDir("/ws/repo/a.yml"))
	require.False(t, fsys.Exists("/ws/repo/deep"))
}
