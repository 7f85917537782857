// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"strings"
)

// NormalizeLines splits text into lines, treating CRLF and LF input
// identically. Every parser in this package operates over the result, so line
// indexes are stable regardless of the original line-ending convention.
func NormalizeLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// indentOf returns the count of leading whitespace characters. YAML forbids
// tabs for indentation; if they appear anyway each one counts as a single
// column, which keeps positions consistent with editor columns.
func indentOf(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return len(line)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// stripLineComment removes a trailing " # ..." comment, tolerating the key
// content itself containing '#' inside quotes.
func stripLineComment(line string) string {
	inSingle, inDouble := false, false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '#':
			if inSingle || inDouble {
				continue
			}
			if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
				return strings.TrimRight(line[:i], " \t")
			}
		}
	}
	return line
}

// splitKeyValue splits a "key: value" content line (already trimmed and
// comment-stripped). Returns false when the line does not look like a mapping
// entry. Quotes around the key are dropped.
func splitKeyValue(content string) (string, string, bool) {
	idx := strings.Index(content, ":")
	if idx <= 0 {
		return "", "", false
	}
	key := strings.TrimSpace(content[:idx])
	key = strings.Trim(key, `"'`)
	if key == "" {
		return "", "", false
	}
	value := strings.TrimSpace(content[idx+1:])
	return key, value, true
}

// unquote drops one level of matching surrounding quotes.
func unquote(value string) string {
	if len(value) >= 2 {
		if (value[0] == '\'' && value[len(value)-1] == '\'') ||
			(value[0] == '"' && value[len(value)-1] == '"') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

func isQuoted(value string) bool {
	return len(value) >= 2 &&
		((value[0] == '\'' && value[len(value)-1] == '\'') ||
			(value[0] == '"' && value[len(value)-1] == '"'))
}
