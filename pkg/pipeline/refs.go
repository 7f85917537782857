// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"regexp"
	"strings"

	"github.com/pipenav/pipenav/pkg/filepos"
)

// TemplateReference is one inclusion call-site: the raw reference string as
// written (possibly "path@alias"), the line it appears on and the span of the
// "template:" keyword for diagnostics that attach to the call-site itself.
type TemplateReference struct {
	Raw     string
	Pos     filepos.Position
	KeySpan filepos.Span
}

var templateLineRegexp = regexp.MustCompile(`^(\s*(?:-\s+)?)template:(.*)$`)

// FindTemplateReferences scans every line for a template inclusion directive,
// whether it appears as a list item ("- template: x.yml") or a bare mapping
// key ("template: x.yml"). References with an empty value are still reported;
// resolution decides what to do with them.
func FindTemplateReferences(lines []string) []TemplateReference {
	var refs []TemplateReference

	for i, line := range lines {
		if isComment(line) {
			continue
		}
		m := templateLineRegexp.FindStringSubmatch(stripLineComment(line))
		if m == nil {
			continue
		}

		pos := filepos.NewPosition(i)
		keyStart := len(m[1])

		refs = append(refs, TemplateReference{
			Raw:     unquote(strings.TrimSpace(m[2])),
			Pos:     pos,
			KeySpan: filepos.NewSpan(pos, keyStart, keyStart+len("template:")),
		})
	}

	return refs
}
