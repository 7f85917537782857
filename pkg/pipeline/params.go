// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"strings"

	"github.com/pipenav/pipenav/pkg/filepos"
)

// Parameter is one entry of a top-level parameters block. Default is nil when
// the declaration carries no default value; that absence is exactly what
// makes the parameter required.
type Parameter struct {
	Name    string
	Type    string
	Default *string
	Pos     filepos.Position
}

// Required reports whether callers must supply this parameter.
func (p Parameter) Required() bool { return p.Default == nil }

// DefaultParameterType is assumed when a declaration has no type property.
const DefaultParameterType = "string"

// ParseParameters extracts the declared parameters of a pipeline template, in
// declaration order. Only list items at the depth of the first-seen item are
// treated as parameters; items at other depths (and any surrounding comments)
// are skipped. The block ends at the first non-blank, non-indented line that
// is neither a list marker nor a comment.
func ParseParameters(text string) []Parameter {
	lines := NormalizeLines(text)

	start := -1
	for i, line := range lines {
		if indentOf(line) == 0 && strings.TrimSpace(stripLineComment(line)) == "parameters:" {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	var params []Parameter
	itemIndent := -1

	for i := start + 1; i < len(lines); i++ {
		line := lines[i]
		if isBlank(line) || isComment(line) {
			continue
		}

		ind := indentOf(line)
		content := strings.TrimSpace(stripLineComment(line))

		if ind == 0 && !strings.HasPrefix(content, "-") {
			break
		}

		if !strings.HasPrefix(content, "- name:") {
			continue
		}
		if itemIndent == -1 {
			itemIndent = ind
		}
		if ind != itemIndent {
			continue
		}

		param := Parameter{
			Name: unquote(strings.TrimSpace(strings.TrimPrefix(content, "- name:"))),
			Type: DefaultParameterType,
			Pos:  filepos.NewPosition(i),
		}
		if param.Name == "" {
			continue
		}

		parseParameterProps(lines, i+1, itemIndent, &param)
		params = append(params, param)
	}

	return params
}

// parseParameterProps scans the sub-block of one "- name:" item for its type
// and default properties. A "default:" key with an empty value still counts
// as a default (the value is an object or list on the following lines).
func parseParameterProps(lines []string, from, itemIndent int, param *Parameter) {
	propIndent := -1

	for i := from; i < len(lines); i++ {
		line := lines[i]
		if isBlank(line) || isComment(line) {
			continue
		}

		ind := indentOf(line)
		if ind <= itemIndent {
			return
		}

		content := strings.TrimSpace(stripLineComment(line))
		if strings.HasPrefix(content, "- ") {
			// part of a default value list
			continue
		}

		key, value, ok := splitKeyValue(content)
		if !ok {
			continue
		}
		if propIndent == -1 {
			propIndent = ind
		}
		if ind != propIndent {
			continue
		}

		switch key {
		case "type":
			if value != "" {
				param.Type = unquote(value)
			}
		case "default":
			defaultVal := unquote(value)
			param.Default = &defaultVal
		}
	}
}
