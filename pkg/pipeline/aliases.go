// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"strings"
)

// ParseRepositoryAliases extracts the alias -> repository-folder-name mapping
// declared under a top-level "resources:" / "repositories:" block. The folder
// name is the final slash-delimited segment of the repository's "name:"
// property (e.g. "org/shared-templates" -> "shared-templates"). Parsing stops
// at a shallower list-item indent or at any line outside the resources block.
func ParseRepositoryAliases(text string) map[string]string {
	aliases := map[string]string{}

	lines := NormalizeLines(text)

	inResources := false
	reposIndent := -1
	itemIndent := -1
	currentAlias := ""

	for _, line := range lines {
		if isBlank(line) || isComment(line) {
			continue
		}

		ind := indentOf(line)
		content := strings.TrimSpace(stripLineComment(line))

		if !inResources {
			if ind == 0 && content == "resources:" {
				inResources = true
			}
			continue
		}
		if ind == 0 {
			break
		}

		if reposIndent == -1 {
			if content == "repositories:" {
				reposIndent = ind
			}
			continue
		}
		// list items commonly sit flush with "repositories:" itself; only a
		// shallower line or a sibling key ends the block
		if ind < reposIndent {
			break
		}
		if ind == reposIndent && !strings.HasPrefix(content, "- ") {
			break
		}

		if strings.HasPrefix(content, "- repository:") {
			if itemIndent == -1 {
				itemIndent = ind
			}
			if ind < itemIndent {
				break
			}
			if ind > itemIndent {
				continue
			}
			currentAlias = unquote(strings.TrimSpace(strings.TrimPrefix(content, "- repository:")))
			continue
		}

		if strings.HasPrefix(content, "- ") {
			// a sibling list entry of another kind; its properties are not
			// repository names (deeper list lines are property values)
			if ind <= itemIndent || itemIndent == -1 {
				currentAlias = ""
			}
			continue
		}

		if currentAlias == "" || itemIndent == -1 || ind <= itemIndent {
			continue
		}

		key, value, ok := splitKeyValue(content)
		if !ok || key != "name" {
			continue
		}

		name := unquote(value)
		if name == "" {
			continue
		}
		pieces := strings.Split(name, "/")
		aliases[currentAlias] = pieces[len(pieces)-1]
	}

	return aliases
}
