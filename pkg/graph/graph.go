// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

// Package graph builds the template dependency graph of a workspace: nodes
// are pipeline files (or synthetic stand-ins for missing files and unknown
// aliases), edges are inclusion references. Node and edge values are
// immutable once a build returns them and serialize directly to JSON or DOT.
package graph

import (
	"encoding/json"
	"fmt"
)

// NodeKind is the closed set of node classifications.
type NodeKind int

const (
	KindPipelineRoot NodeKind = iota
	KindLocalTemplate
	KindExternalTemplate
	KindMissingFile
	KindUnknownAlias
)

func (k NodeKind) String() string {
	switch k {
	case KindPipelineRoot:
		return "pipeline-root"
	case KindLocalTemplate:
		return "local-template"
	case KindExternalTemplate:
		return "external-template"
	case KindMissingFile:
		return "missing-file"
	case KindUnknownAlias:
		return "unknown-alias"
	default:
		return "unknown"
	}
}

func (k NodeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Direction annotates scoped-graph edges relative to the focal file.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUpstream
	DirectionDownstream
)

func (d Direction) String() string {
	switch d {
	case DirectionUpstream:
		return "upstream"
	case DirectionDownstream:
		return "downstream"
	default:
		return ""
	}
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Node identity is path-based for resolvable files, so one template
// referenced from many call-sites collapses to one node. Synthetic IDs for
// missing-file and unknown-alias targets are prefixed so they never collide
// with paths or with each other.
type Node struct {
	ID                     string   `json:"id"`
	Kind                   NodeKind `json:"kind"`
	DisplayLabel           string   `json:"label"`
	RelativePath           string   `json:"relativePath,omitempty"`
	ParameterCount         int      `json:"parameterCount"`
	RequiredParameterCount int      `json:"requiredParameterCount"`
	IsScope                bool     `json:"isScope,omitempty"`
}

// Edge is deduplicated by (source, target) within one build. Label carries
// the alias annotation for cross-repo references.
type Edge struct {
	SourceID  string    `json:"source"`
	TargetID  string    `json:"target"`
	Label     string    `json:"label,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

func missingFileID(absPath string) string { return "missing:" + absPath }

func unknownAliasID(alias string) string { return fmt.Sprintf("unknown-alias:%s", alias) }
