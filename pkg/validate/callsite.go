// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"fmt"
	"strings"

	"github.com/pipenav/pipenav/pkg/files"
	"github.com/pipenav/pipenav/pkg/pipeline"
	"github.com/pipenav/pipenav/pkg/resolve"
)

// CallSiteValidator checks the arguments passed at template inclusion
// call-sites against the declaration contract of the included file.
type CallSiteValidator struct {
	fsys     files.System
	resolver resolve.Resolver
}

func NewCallSiteValidator(fsys files.System) CallSiteValidator {
	return CallSiteValidator{fsys: fsys, resolver: resolve.NewResolver(fsys)}
}

// ValidateFile runs every call-site of one file, deriving the alias table
// from the same text. Results keep call-site order.
func (v CallSiteValidator) ValidateFile(text, filePath string) []DiagnosticIssue {
	lines := pipeline.NormalizeLines(text)
	aliases := pipeline.ParseRepositoryAliases(text)

	var issues []DiagnosticIssue
	for _, ref := range pipeline.FindTemplateReferences(lines) {
		issues = append(issues, v.ValidateCallSite(lines, ref, filePath, aliases)...)
	}
	return issues
}

// ValidateCallSite validates one inclusion call-site. Unresolvable references
// (empty, unknown alias, unreadable target) yield no issues: there is nothing
// to validate against, and missing files are the graph's concern.
func (v CallSiteValidator) ValidateCallSite(lines []string, ref pipeline.TemplateReference, includingFile string, aliases map[string]string) []DiagnosticIssue {
	resolved := v.resolver.Resolve(ref.Raw, includingFile, aliases)
	if resolved == nil || resolved.UnknownAlias {
		return nil
	}

	targetText, err := v.fsys.ReadFile(resolved.AbsolutePath)
	if err != nil {
		return nil
	}

	declared := pipeline.ParseParameters(targetText)
	args := pipeline.ParseTemplateArguments(lines, ref.Pos.LineIdx())
	if args.Passthrough {
		return nil
	}

	insertionLine := ref.Pos.LineIdx() + 1
	for _, arg := range args.Args {
		if arg.Pos.LineIdx()+1 > insertionLine {
			insertionLine = arg.Pos.LineIdx() + 1
		}
	}

	var issues []DiagnosticIssue

	for _, param := range declared {
		if !param.Required() {
			continue
		}
		if _, passed := args.Lookup(param.Name); passed {
			continue
		}
		issues = append(issues, DiagnosticIssue{
			Message:       fmt.Sprintf("Missing required parameter '%s'", param.Name),
			Severity:      SeverityError,
			Kind:          IssueMissingRequiredParameter,
			Span:          ref.KeySpan,
			ParamName:     param.Name,
			ParamType:     param.Type,
			InsertionLine: insertionLine,
		})
	}

	declaredByName := map[string]pipeline.Parameter{}
	for _, param := range declared {
		declaredByName[param.Name] = param
	}

	for _, arg := range args.Args {
		param, known := declaredByName[arg.Name]
		if !known {
			issues = append(issues, DiagnosticIssue{
				Message:     fmt.Sprintf("Unknown parameter '%s'", arg.Name),
				Severity:    SeverityWarning,
				Kind:        IssueUnknownParameter,
				Span:        arg.NameSpan,
				ParamName:   arg.Name,
				PassedValue: arg.Value,
			})
			continue
		}

		if arg.Value == "" || strings.HasPrefix(arg.Value, expressionPrefix) {
			continue
		}
		if compatibleWithType(param.Type, arg.Value) {
			continue
		}
		issues = append(issues, DiagnosticIssue{
			Message:     fmt.Sprintf("Parameter '%s' expects type %s, got '%s'", arg.Name, param.Type, arg.Value),
			Severity:    SeverityWarning,
			Kind:        IssueTypeMismatch,
			Span:        arg.NameSpan,
			ParamName:   arg.Name,
			ParamType:   param.Type,
			PassedValue: arg.Value,
		})
	}

	return issues
}
