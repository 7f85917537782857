// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package graph

import (
	"path/filepath"

	"github.com/pipenav/pipenav/pkg/files"
	"github.com/pipenav/pipenav/pkg/pipeline"
)

// BuildWorkspace builds the dependency graph of every YAML-like file under
// the workspace root (or under workspaceRoot/subPath when subPath is
// non-empty); relative paths in the result stay anchored at workspaceRoot.
// Synthetic nodes are created for unknown-alias and missing-file targets.
// baseAliases (may be nil) supplies workspace-wide repository aliases that
// each file's own resources block overrides.
func BuildWorkspace(fsys files.System, workspaceRoot, subPath string, baseAliases map[string]string) (Graph, error) {
	scanRoot := workspaceRoot
	if subPath != "" {
		scanRoot = filepath.Join(workspaceRoot, subPath)
	}

	paths, err := fsys.ListYAML(scanRoot)
	if err != nil {
		return Graph{}, err
	}

	b := newBuilder(fsys, workspaceRoot, baseAliases)

	for _, path := range paths {
		b.registerFile(path, false)
	}

	for _, path := range paths {
		text, ok := b.readFile(path)
		if !ok {
			continue
		}

		lines := pipeline.NormalizeLines(text)
		aliases := b.fileAliases(text)

		for _, ref := range pipeline.FindTemplateReferences(lines) {
			b.addReference(path, path, ref, aliases, DirectionNone)
		}
	}

	return b.finish(), nil
}
