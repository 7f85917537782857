// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package graph

import (
	"github.com/pipenav/pipenav/pkg/files"
	"github.com/pipenav/pipenav/pkg/pipeline"
	"github.com/pipenav/pipenav/pkg/resolve"
)

// MaxScopedDepth bounds how many hops a scoped build may traverse in either
// direction.
const MaxScopedDepth = 10

type callerEdge struct {
	source string
	label  string
}

// BuildScoped builds the graph around one focal file: up to depth hops of
// downstream dependencies and upstream callers, found by scanning the whole
// workspace's reference sets. Depth is clamped to [1, MaxScopedDepth]. Each
// traversal carries a per-path visited set, so a reference cycling back to an
// open ancestor is recorded as an edge but never recursed into.
func BuildScoped(fsys files.System, filePath, workspaceRoot string, depth int, baseAliases map[string]string) (Graph, error) {
	if depth < 1 {
		depth = 1
	}
	if depth > MaxScopedDepth {
		depth = MaxScopedDepth
	}

	paths, err := fsys.ListYAML(workspaceRoot)
	if err != nil {
		return Graph{}, err
	}

	b := newBuilder(fsys, workspaceRoot, baseAliases)

	focal := b.registerFile(filePath, false)
	focal.isScope = true

	// reverse index: no such index pre-exists in the core, so upstream
	// discovery scans every file's references once
	callers := map[string][]callerEdge{}
	for _, path := range paths {
		text, ok := b.readFile(path)
		if !ok {
			continue
		}
		aliases := b.fileAliases(text)
		for _, ref := range pipeline.FindTemplateReferences(pipeline.NormalizeLines(text)) {
			resolved := b.resolver.Resolve(ref.Raw, path, aliases)
			if resolved == nil || resolved.UnknownAlias {
				continue
			}
			label := ""
			if resolved.Kind == resolve.KindCrossRepo {
				label = "@" + resolved.Alias
			}
			callers[resolved.AbsolutePath] = append(callers[resolved.AbsolutePath], callerEdge{source: path, label: label})
		}
	}

	var downstream func(file string, budget int, open map[string]struct{})
	downstream = func(file string, budget int, open map[string]struct{}) {
		text, ok := b.readFile(file)
		if !ok {
			return
		}
		aliases := b.fileAliases(text)
		for _, ref := range pipeline.FindTemplateReferences(pipeline.NormalizeLines(text)) {
			target := b.addReference(file, file, ref, aliases, DirectionDownstream)
			if target == nil || target.absPath == "" {
				continue
			}
			if _, isOpen := open[target.absPath]; isOpen {
				continue
			}
			if budget <= 1 {
				continue
			}
			downstream(target.absPath, budget-1, cloneWith(open, target.absPath))
		}
	}

	var upstream func(file string, budget int, open map[string]struct{})
	upstream = func(file string, budget int, open map[string]struct{}) {
		for _, caller := range callers[file] {
			b.registerFile(caller.source, false)
			b.addEdge(caller.source, file, caller.label, DirectionUpstream)

			if _, isOpen := open[caller.source]; isOpen {
				continue
			}
			if budget <= 1 {
				continue
			}
			upstream(caller.source, budget-1, cloneWith(open, caller.source))
		}
	}

	openSet := map[string]struct{}{filePath: {}}
	downstream(filePath, depth, openSet)
	upstream(filePath, depth, cloneWith(map[string]struct{}{}, filePath))

	return b.finish(), nil
}

func cloneWith(set map[string]struct{}, key string) map[string]struct{} {
	next := make(map[string]struct{}, len(set)+1)
	for k := range set {
		next[k] = struct{}{}
	}
	next[key] = struct{}{}
	return next
}
