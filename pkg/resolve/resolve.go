// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

// Package resolve turns raw template reference strings into absolute
// candidate paths. It is pure path algebra: the only filesystem access is the
// walk up from the including file looking for a version-control marker
// directory, and callers are expected to perform their own existence check on
// the result.
package resolve

import (
	"path/filepath"
	"strings"

	"github.com/pipenav/pipenav/pkg/files"
)

// SelfAlias is the literal alias referring to the repository the including
// file itself lives in.
const SelfAlias = "self"

// repoMarkerDir marks the root of a repository checkout.
const repoMarkerDir = ".git"

// ReferenceKind classifies how a reference string was resolved.
type ReferenceKind int

const (
	KindLocalRelative ReferenceKind = iota
	KindRepoRootAbsolute
	KindCrossRepo
	KindSelfAlias
	KindUnknownAlias
)

func (k ReferenceKind) String() string {
	switch k {
	case KindLocalRelative:
		return "local-relative"
	case KindRepoRootAbsolute:
		return "repo-root-absolute"
	case KindCrossRepo:
		return "cross-repo"
	case KindSelfAlias:
		return "self-alias"
	case KindUnknownAlias:
		return "unknown-alias"
	default:
		return "unknown"
	}
}

// ResolvedReference is the outcome of resolving one reference string. After
// successful resolution exactly one of AbsolutePath != "" or
// UnknownAlias == true holds.
type ResolvedReference struct {
	AbsolutePath   string
	RepositoryName string
	Alias          string
	UnknownAlias   bool
	Kind           ReferenceKind
}

// Resolver resolves reference strings against an alias table and the
// filesystem layout around the including file.
type Resolver struct {
	fsys files.System
}

func NewResolver(fsys files.System) Resolver {
	return Resolver{fsys: fsys}
}

// Resolve computes the absolute candidate path for rawRef as written in
// includingFile. It returns nil only for an empty or whitespace-only
// reference; an alias missing from the table yields UnknownAlias instead.
func (r Resolver) Resolve(rawRef, includingFile string, aliases map[string]string) *ResolvedReference {
	rawRef = strings.TrimSpace(rawRef)
	if rawRef == "" {
		return nil
	}

	refPath := rawRef
	alias := ""
	if idx := strings.LastIndex(rawRef, "@"); idx >= 0 {
		refPath = strings.TrimSpace(rawRef[:idx])
		alias = strings.TrimSpace(rawRef[idx+1:])
	}
	refPath = strings.TrimPrefix(refPath, "./")
	if refPath == "" {
		return nil
	}

	includingDir := filepath.Dir(includingFile)

	if alias != "" && alias != SelfAlias {
		folder, found := aliases[alias]
		if !found {
			return &ResolvedReference{Alias: alias, UnknownAlias: true, Kind: KindUnknownAlias}
		}

		repoRoot := r.RepoRoot(includingDir)
		abs := filepath.Join(filepath.Dir(repoRoot), folder, strings.TrimPrefix(refPath, "/"))

		return &ResolvedReference{
			AbsolutePath:   abs,
			RepositoryName: folder,
			Alias:          alias,
			Kind:           KindCrossRepo,
		}
	}

	kind := KindLocalRelative
	if alias == SelfAlias {
		kind = KindSelfAlias
	}

	if strings.HasPrefix(refPath, "/") {
		if kind == KindLocalRelative {
			kind = KindRepoRootAbsolute
		}
		return &ResolvedReference{
			AbsolutePath: filepath.Join(r.RepoRoot(includingDir), strings.TrimPrefix(refPath, "/")),
			Alias:        alias,
			Kind:         kind,
		}
	}

	return &ResolvedReference{
		AbsolutePath: filepath.Join(includingDir, refPath),
		Alias:        alias,
		Kind:         kind,
	}
}

// RepoRoot walks up from dir to the nearest ancestor containing a
// version-control marker directory. When no marker is found it falls back to
// dir itself, treating the including file's directory as the repository root.
func (r Resolver) RepoRoot(dir string) string {
	for current := dir; ; {
		if r.fsys.IsDir(filepath.Join(current, repoMarkerDir)) {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return dir
		}
		current = parent
	}
}
