// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"regexp"

	"github.com/pipenav/pipenav/pkg/filepos"
	"github.com/pipenav/pipenav/pkg/pipeline"
)

// UnusedParameter is a declared parameter whose name is never referenced in
// the declaring file. Pos is the declaration line, for precise highlighting.
type UnusedParameter struct {
	Name string
	Pos  filepos.Position
}

var (
	expressionSpanRegexp  = regexp.MustCompile(`\$\{\{(.*?)\}\}`)
	parametersTokenRegexp = regexp.MustCompile(`\bparameters\b`)
	parameterUsageRegexp  = regexp.MustCompile(`\bparameters\.([A-Za-z_][A-Za-z0-9_]*)`)
)

// CheckUnusedParameters reports declared parameters that are never consumed.
// A "bare object" reference inside any "${{ ... }}" expression (the whole
// parameters collection interpolated or passed to a function, e.g.
// "${{ convertToJson(parameters) }}" or "${{ each p in parameters }}")
// short-circuits the check: every parameter counts as used. Outside
// expression spans the word carries no object meaning (a path segment like
// "parameters/foo.yml" is just text). Otherwise usage is every word-bounded
// "parameters.<name>" token, in any reference context.
func CheckUnusedParameters(text string) []UnusedParameter {
	declared := pipeline.ParseParameters(text)
	if len(declared) == 0 {
		return nil
	}

	lines := pipeline.NormalizeLines(text)

	used := map[string]struct{}{}

	for _, line := range lines {
		for _, expr := range expressionSpanRegexp.FindAllStringSubmatch(line, -1) {
			for _, loc := range parametersTokenRegexp.FindAllStringIndex(expr[1], -1) {
				if bareObjectReference(expr[1], loc[1]) {
					return nil
				}
			}
		}

		for _, m := range parameterUsageRegexp.FindAllStringSubmatch(line, -1) {
			used[m[1]] = struct{}{}
		}
	}

	var unused []UnusedParameter
	for _, param := range declared {
		if _, found := used[param.Name]; !found {
			unused = append(unused, UnusedParameter{Name: param.Name, Pos: param.Pos})
		}
	}
	return unused
}

// bareObjectReference decides whether the "parameters" token ending at end
// references the whole collection rather than a named property
// ("parameters.x"). expr is the inside of one "${{ ... }}" span, so a
// trailing bare token is always a real reference.
func bareObjectReference(expr string, end int) bool {
	for i := end; i < len(expr); i++ {
		switch expr[i] {
		case ' ', '\t':
			continue
		case '.':
			return false
		default:
			return true
		}
	}
	return true
}
