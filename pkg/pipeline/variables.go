// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"strings"

	"github.com/pipenav/pipenav/pkg/filepos"
)

// Variable is one pipeline-level variable declaration.
type Variable struct {
	Name  string
	Value string
	Pos   filepos.Position
}

// VariableGroup is a reference to an externally defined variable group.
type VariableGroup struct {
	Name string
	Pos  filepos.Position
}

// VariableBlock is the parsed top-level "variables:" block of one file.
type VariableBlock struct {
	Variables []Variable
	Groups    []VariableGroup
}

// Lookup finds a variable by name; the first declaration wins.
func (b VariableBlock) Lookup(name string) (Variable, bool) {
	for _, v := range b.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// ParseVariables extracts declared variables and variable-group references.
// Both YAML forms are supported: map form ("key: value" lines directly under
// the block) and list form ("- name:" / "value:" pairs plus "- group:"
// entries). The form is detected from the first content line under the key
// and is fixed for the remainder of the block.
func ParseVariables(text string) VariableBlock {
	var block VariableBlock

	lines := NormalizeLines(text)

	start := -1
	for i, line := range lines {
		if indentOf(line) == 0 && strings.TrimSpace(stripLineComment(line)) == "variables:" {
			start = i
			break
		}
	}
	if start == -1 {
		return block
	}

	listForm := false
	formKnown := false
	childIndent := -1
	currentName := ""
	currentNamePos := filepos.NewUnknownPosition()
	seen := map[string]struct{}{}

	appendVar := func(name, value string, pos filepos.Position) {
		if name == "" {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		block.Variables = append(block.Variables, Variable{Name: name, Value: value, Pos: pos})
	}

	for i := start + 1; i < len(lines); i++ {
		line := lines[i]
		if isBlank(line) || isComment(line) {
			continue
		}

		ind := indentOf(line)
		content := strings.TrimSpace(stripLineComment(line))

		// list items commonly sit flush at column 0; only a new top-level key
		// (or a column-0 non-item line in map form) ends the block
		if ind == 0 && (!strings.HasPrefix(content, "- ") || (formKnown && !listForm)) {
			break
		}

		if !formKnown {
			listForm = strings.HasPrefix(content, "- ")
			formKnown = true
			childIndent = ind
		}

		if !listForm {
			if ind != childIndent {
				continue
			}
			key, value, ok := splitKeyValue(content)
			if !ok {
				continue
			}
			appendVar(key, unquote(value), filepos.NewPosition(i))
			continue
		}

		switch {
		case strings.HasPrefix(content, "- name:"):
			if ind != childIndent {
				continue
			}
			currentName = unquote(strings.TrimSpace(strings.TrimPrefix(content, "- name:")))
			currentNamePos = filepos.NewPosition(i)

		case strings.HasPrefix(content, "- group:"):
			if ind != childIndent {
				continue
			}
			currentName = ""
			name := unquote(strings.TrimSpace(strings.TrimPrefix(content, "- group:")))
			if name != "" {
				block.Groups = append(block.Groups, VariableGroup{Name: name, Pos: filepos.NewPosition(i)})
			}

		case strings.HasPrefix(content, "- "):
			// some other list entry (e.g. "- template:"), not a variable
			currentName = ""

		default:
			if currentName == "" || ind <= childIndent {
				continue
			}
			key, value, ok := splitKeyValue(content)
			if !ok || key != "value" {
				continue
			}
			appendVar(currentName, unquote(value), currentNamePos)
			currentName = ""
		}
	}

	return block
}
