// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package graph

import (
	"fmt"
	"strings"
)

var dotShapes = map[NodeKind]string{
	KindPipelineRoot:     "box",
	KindLocalTemplate:    "ellipse",
	KindExternalTemplate: "component",
	KindMissingFile:      "octagon",
	KindUnknownAlias:     "diamond",
}

// AsDOT renders the graph in Graphviz DOT form.
func (g Graph) AsDOT() string {
	var sb strings.Builder

	sb.WriteString("digraph pipelines {\n")
	sb.WriteString("  rankdir=LR;\n")

	for _, node := range g.Nodes {
		label := node.DisplayLabel
		if node.RelativePath != "" {
			label = node.RelativePath
		}
		attrs := fmt.Sprintf("label=%s, shape=%s", dotQuote(label), dotShapes[node.Kind])
		if node.IsScope {
			attrs += ", style=bold"
		}
		fmt.Fprintf(&sb, "  %s [%s];\n", dotQuote(node.ID), attrs)
	}

	for _, edge := range g.Edges {
		attrs := ""
		if edge.Label != "" {
			attrs = fmt.Sprintf(" [label=%s]", dotQuote(edge.Label))
		}
		fmt.Fprintf(&sb, "  %s -> %s%s;\n", dotQuote(edge.SourceID), dotQuote(edge.TargetID), attrs)
	}

	sb.WriteString("}\n")

	return sb.String()
}

func dotQuote(s string) string {
	return `"` + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`) + `"`
}
