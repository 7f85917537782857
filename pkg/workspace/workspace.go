// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package workspace ties the analytical core to one workspace root: it loads
the optional .pipenav.toml config, enumerates files, and exposes the
validation, graph and search entry points the CLI consumes. It deliberately
caches nothing between calls; persistent caching belongs to outer layers.
*/
package workspace

import (
	"path/filepath"

	"github.com/pipenav/pipenav/pkg/files"
	"github.com/pipenav/pipenav/pkg/graph"
	"github.com/pipenav/pipenav/pkg/pipeline"
	"github.com/pipenav/pipenav/pkg/search"
	"github.com/pipenav/pipenav/pkg/validate"
)

type Workspace struct {
	Root   string
	Config Config

	fsys files.System
}

// Open loads the workspace rooted at root from the local filesystem,
// honoring the config's ignore list and min_version constraint.
func Open(root, currentVersion string) (*Workspace, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	config, err := LoadConfig(files.NewLocalSystem(nil), absRoot)
	if err != nil {
		return nil, err
	}
	if err := config.CheckVersion(currentVersion); err != nil {
		return nil, err
	}

	return NewWithSystem(files.NewLocalSystem(config.Ignore), absRoot, config), nil
}

// NewWithSystem builds a workspace over an arbitrary (possibly in-memory)
// filesystem. The config is taken as given; no version check is applied.
func NewWithSystem(fsys files.System, root string, config Config) *Workspace {
	return &Workspace{Root: root, Config: config, fsys: fsys}
}

func (w *Workspace) System() files.System { return w.fsys }

// ListFiles returns the sorted absolute paths of every YAML-like file under
// the root.
func (w *Workspace) ListFiles() ([]string, error) {
	return w.fsys.ListYAML(w.Root)
}

// Candidates returns the search candidate set, keyed by absolute path with
// root-relative display paths, in enumeration order.
func (w *Workspace) Candidates() ([]search.Candidate, error) {
	paths, err := w.ListFiles()
	if err != nil {
		return nil, err
	}

	candidates := make([]search.Candidate, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(w.Root, path)
		if err != nil {
			rel = path
		}
		candidates = append(candidates, search.Candidate{AbsPath: path, RelPath: rel})
	}
	return candidates, nil
}

// AliasTable derives the alias table in effect for one file: the config's
// workspace-wide aliases overlaid with the file's own resources block.
func (w *Workspace) AliasTable(text string) map[string]string {
	aliases := map[string]string{}
	for alias, folder := range w.Config.Aliases {
		aliases[alias] = folder
	}
	for alias, folder := range pipeline.ParseRepositoryAliases(text) {
		aliases[alias] = folder
	}
	return aliases
}

// ValidateFile runs every call-site of one file.
func (w *Workspace) ValidateFile(filePath string) ([]validate.DiagnosticIssue, error) {
	text, err := w.fsys.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	lines := pipeline.NormalizeLines(text)
	aliases := w.AliasTable(text)
	validator := validate.NewCallSiteValidator(w.fsys)

	var issues []validate.DiagnosticIssue
	for _, ref := range pipeline.FindTemplateReferences(lines) {
		issues = append(issues, validator.ValidateCallSite(lines, ref, filePath, aliases)...)
	}
	return issues, nil
}

// FileIssues pairs one file with its diagnostics.
type FileIssues struct {
	Path   string
	Issues []validate.DiagnosticIssue
}

// ValidateAll sweeps the whole workspace, in sorted file order, returning
// only files that produced diagnostics.
func (w *Workspace) ValidateAll() ([]FileIssues, error) {
	paths, err := w.ListFiles()
	if err != nil {
		return nil, err
	}

	var results []FileIssues
	for _, path := range paths {
		issues, err := w.ValidateFile(path)
		if err != nil {
			continue // vanished between listing and read; graph reports these
		}
		if len(issues) > 0 {
			results = append(results, FileIssues{Path: path, Issues: issues})
		}
	}
	return results, nil
}

// Graph builds the workspace-wide dependency graph, optionally scoped to a
// sub-path.
func (w *Workspace) Graph(subPath string) (graph.Graph, error) {
	return graph.BuildWorkspace(w.fsys, w.Root, subPath, w.Config.Aliases)
}

// ScopedGraph builds the bounded-depth graph around one focal file.
func (w *Workspace) ScopedGraph(filePath string, depth int) (graph.Graph, error) {
	return graph.BuildScoped(w.fsys, filePath, w.Root, depth, w.Config.Aliases)
}
