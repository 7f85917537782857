// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"regexp"
	"strings"

	"github.com/pipenav/pipenav/pkg/filepos"
)

// PassedArgument is one argument supplied at a template inclusion call-site.
// Value is the raw scalar text; it is empty when the argument's value is an
// object or list nested on the following lines. NameSpan covers the argument
// name token so diagnostics can highlight it precisely.
type PassedArgument struct {
	Name     string
	Value    string
	Pos      filepos.Position
	NameSpan filepos.Span
}

// CallArgs is the parsed argument set of one call-site. Args preserves
// source order; duplicate names keep the first occurrence, since later
// duplicates are alternative conditional branches rather than overrides.
type CallArgs struct {
	Args []PassedArgument

	// Passthrough is set when the block contains a
	// "${{ each X in parameters }}:" line, which forwards every declared
	// parameter implicitly. Validators must not report missing, unknown or
	// mistyped arguments for such a call-site.
	Passthrough bool
}

// Lookup finds a passed argument by name.
func (a CallArgs) Lookup(name string) (PassedArgument, bool) {
	for _, arg := range a.Args {
		if arg.Name == name {
			return arg, true
		}
	}
	return PassedArgument{}, false
}

var (
	conditionalRegexp = regexp.MustCompile(`^\$\{\{\s*(if|elseif|else)\b.*\}\}:\s*$`)
	passthroughRegexp = regexp.MustCompile(`^\$\{\{\s*each\s+\S+\s+in\s+parameters\s*\}\}:\s*$`)
)

// ParseTemplateArguments collects the arguments passed at the inclusion on
// line inclusionLineIdx. It locates the "parameters:" sub-block indented
// deeper than the inclusion line and gathers entries that are direct children
// of that block or nested one level inside a structural conditional
// (`${{ if }}:` / `${{ elseif }}:` / `${{ else }}:`) line. Conditional lines
// themselves are never arguments. Scanning stops at the first line whose
// indent returns to or below the inclusion line's own indent.
func ParseTemplateArguments(lines []string, inclusionLineIdx int) CallArgs {
	var result CallArgs

	if inclusionLineIdx < 0 || inclusionLineIdx >= len(lines) {
		return result
	}

	templIndent := indentOf(lines[inclusionLineIdx])
	paramsIndent := -1
	argIndent := -1
	condIndent := -1
	objectIndent := -1 // indent of an open object-valued entry, -1 when none
	seen := map[string]struct{}{}

	for i := inclusionLineIdx + 1; i < len(lines); i++ {
		line := lines[i]
		if isBlank(line) || isComment(line) {
			continue
		}

		ind := indentOf(line)
		if ind <= templIndent {
			break
		}

		content := strings.TrimSpace(stripLineComment(line))

		if paramsIndent == -1 {
			if content == "parameters:" {
				paramsIndent = ind
			}
			continue
		}
		if ind <= paramsIndent {
			break
		}

		// lines inside an object-valued entry belong to that entry's value,
		// including sequence items at the body's depth
		if objectIndent != -1 {
			if ind > objectIndent {
				continue
			}
			objectIndent = -1
		}

		if condIndent != -1 && ind <= condIndent {
			condIndent = -1
		}

		if passthroughRegexp.MatchString(content) {
			result.Passthrough = true
			continue
		}

		if argIndent == -1 {
			argIndent = ind
		}

		if conditionalRegexp.MatchString(content) {
			condIndent = ind
			continue
		}

		if strings.HasPrefix(content, "- ") {
			continue
		}

		name, value, ok := splitKeyValue(content)
		if !ok {
			continue
		}

		direct := ind == argIndent
		insideConditional := condIndent != -1 && ind > condIndent
		if !direct && !insideConditional {
			continue
		}

		if value == "" {
			objectIndent = ind
		}

		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		pos := filepos.NewPosition(i)
		result.Args = append(result.Args, PassedArgument{
			Name:     name,
			Value:    value,
			Pos:      pos,
			NameSpan: filepos.NewSpan(pos, ind, ind+len(name)),
		})
	}

	return result
}

// HasAllParametersPassthrough reports whether the call-site forwards every
// declared parameter via the each-in-parameters idiom.
func HasAllParametersPassthrough(lines []string, inclusionLineIdx int) bool {
	return ParseTemplateArguments(lines, inclusionLineIdx).Passthrough
}
