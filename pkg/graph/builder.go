// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package graph

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pipenav/pipenav/pkg/files"
	"github.com/pipenav/pipenav/pkg/pipeline"
	"github.com/pipenav/pipenav/pkg/resolve"
)

// rootOnlyKeys mark a file as a pipeline root on their own.
var rootOnlyKeys = []string{"trigger", "pr", "schedules", "extends", "pool"}

// contentKeys mark a pipeline root only when the file declares no parameters
// (a template exposing steps or jobs carries a parameters contract).
var contentKeys = []string{"stages", "jobs", "steps"}

// builder accumulates mutable node and edge state during one build and emits
// immutable Graph values only once all inputs are known.
type builder struct {
	fsys        files.System
	resolver    resolve.Resolver
	root        string
	baseAliases map[string]string

	nodeOrder []string
	nodes     map[string]*nodeState
	edgeOrder []edgeKey
	edges     map[edgeKey]Edge

	texts map[string]string // per-build snapshot cache
}

type nodeState struct {
	id      string
	kind    NodeKind
	label   string
	relPath string
	absPath string // empty for synthetic nodes
	isScope bool
}

type edgeKey struct {
	source string
	target string
}

func newBuilder(fsys files.System, root string, baseAliases map[string]string) *builder {
	return &builder{
		fsys:        fsys,
		resolver:    resolve.NewResolver(fsys),
		root:        root,
		baseAliases: baseAliases,
		nodes:       map[string]*nodeState{},
		edges:       map[edgeKey]Edge{},
		texts:       map[string]string{},
	}
}

// fileAliases derives the alias table for one file, overlaying the file's
// own resources block on any workspace-wide base aliases.
func (b *builder) fileAliases(text string) map[string]string {
	if len(b.baseAliases) == 0 {
		return pipeline.ParseRepositoryAliases(text)
	}
	aliases := map[string]string{}
	for alias, folder := range b.baseAliases {
		aliases[alias] = folder
	}
	for alias, folder := range pipeline.ParseRepositoryAliases(text) {
		aliases[alias] = folder
	}
	return aliases
}

func (b *builder) readFile(absPath string) (string, bool) {
	if text, found := b.texts[absPath]; found {
		return text, true
	}
	text, err := b.fsys.ReadFile(absPath)
	if err != nil {
		return "", false
	}
	b.texts[absPath] = text
	return text, true
}

// registerFile adds (or returns) the node for an existing file.
func (b *builder) registerFile(absPath string, external bool) *nodeState {
	if node, found := b.nodes[absPath]; found {
		if external && node.kind == KindLocalTemplate {
			node.kind = KindExternalTemplate
		}
		return node
	}

	kind := KindLocalTemplate
	if external {
		kind = KindExternalTemplate
	} else if text, ok := b.readFile(absPath); ok && isPipelineRoot(text) {
		kind = KindPipelineRoot
	}

	node := &nodeState{
		id:      absPath,
		kind:    kind,
		label:   filepath.Base(absPath),
		relPath: b.relPath(absPath),
		absPath: absPath,
	}
	b.nodes[absPath] = node
	b.nodeOrder = append(b.nodeOrder, absPath)
	return node
}

func (b *builder) registerMissing(absPath string) *nodeState {
	id := missingFileID(absPath)
	if node, found := b.nodes[id]; found {
		return node
	}
	node := &nodeState{
		id:      id,
		kind:    KindMissingFile,
		label:   filepath.Base(absPath),
		relPath: b.relPath(absPath),
	}
	b.nodes[id] = node
	b.nodeOrder = append(b.nodeOrder, id)
	return node
}

func (b *builder) registerUnknownAlias(alias string) *nodeState {
	id := unknownAliasID(alias)
	if node, found := b.nodes[id]; found {
		return node
	}
	node := &nodeState{
		id:    id,
		kind:  KindUnknownAlias,
		label: "@" + alias,
	}
	b.nodes[id] = node
	b.nodeOrder = append(b.nodeOrder, id)
	return node
}

func (b *builder) addEdge(sourceID, targetID, label string, direction Direction) {
	key := edgeKey{sourceID, targetID}
	if _, found := b.edges[key]; found {
		return
	}
	b.edges[key] = Edge{SourceID: sourceID, TargetID: targetID, Label: label, Direction: direction}
	b.edgeOrder = append(b.edgeOrder, key)
}

// addReference resolves one call-site and records its target node and edge.
// Returns the target node, or nil when the reference is empty.
func (b *builder) addReference(sourceID, sourceFile string, ref pipeline.TemplateReference, aliases map[string]string, direction Direction) *nodeState {
	resolved := b.resolver.Resolve(ref.Raw, sourceFile, aliases)
	if resolved == nil {
		return nil
	}

	var target *nodeState
	label := ""

	switch {
	case resolved.UnknownAlias:
		target = b.registerUnknownAlias(resolved.Alias)
		label = "@" + resolved.Alias

	case b.fsys.Exists(resolved.AbsolutePath):
		target = b.registerFile(resolved.AbsolutePath, resolved.Kind == resolve.KindCrossRepo)
		if resolved.Kind == resolve.KindCrossRepo {
			label = "@" + resolved.Alias
		}

	default:
		target = b.registerMissing(resolved.AbsolutePath)
		if resolved.Kind == resolve.KindCrossRepo {
			label = "@" + resolved.Alias
		}
	}

	b.addEdge(sourceID, target.id, label, direction)
	return target
}

// finish joins the parameter-count side table and emits the immutable graph.
func (b *builder) finish() Graph {
	var graph Graph

	for _, id := range b.nodeOrder {
		state := b.nodes[id]
		node := Node{
			ID:           state.id,
			Kind:         state.kind,
			DisplayLabel: state.label,
			RelativePath: state.relPath,
			IsScope:      state.isScope,
		}

		if state.absPath != "" {
			if text, ok := b.readFile(state.absPath); ok {
				for _, param := range pipeline.ParseParameters(text) {
					node.ParameterCount++
					if param.Required() {
						node.RequiredParameterCount++
					}
				}
			}
		}

		graph.Nodes = append(graph.Nodes, node)
	}

	for _, key := range b.edgeOrder {
		graph.Edges = append(graph.Edges, b.edges[key])
	}

	return graph
}

func (b *builder) relPath(absPath string) string {
	rel, err := filepath.Rel(b.root, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return absPath
	}
	return rel
}

// isPipelineRoot classifies a file as a pipeline entry point from its
// top-level keys. Clean documents use the YAML parser; documents the parser
// rejects (template expressions in odd places, duplicate keys) fall back to a
// column-zero line scan.
func isPipelineRoot(text string) bool {
	keys := topLevelKeys(text)

	hasParams := false
	for _, key := range keys {
		if key == "parameters" {
			hasParams = true
		}
	}

	for _, key := range keys {
		for _, rootKey := range rootOnlyKeys {
			if key == rootKey {
				return true
			}
		}
		if !hasParams {
			for _, contentKey := range contentKeys {
				if key == contentKey {
					return true
				}
			}
		}
	}
	return false
}

func topLevelKeys(text string) []string {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err == nil {
		if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 && doc.Content[0].Kind == yaml.MappingNode {
			var keys []string
			content := doc.Content[0].Content
			for i := 0; i+1 < len(content); i += 2 {
				keys = append(keys, content[i].Value)
			}
			return keys
		}
	}

	var keys []string
	for _, line := range pipeline.NormalizeLines(text) {
		if len(line) == 0 || line[0] == ' ' || line[0] == '\t' || line[0] == '#' || line[0] == '-' {
			continue
		}
		if idx := strings.Index(line, ":"); idx > 0 {
			keys = append(keys, strings.TrimSpace(line[:idx]))
		}
	}
	return keys
}
