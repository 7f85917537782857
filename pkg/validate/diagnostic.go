// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

// Package validate produces diagnostics for template inclusion call-sites:
// missing required parameters, unknown parameters, coarse type mismatches and
// declared-but-unconsumed parameters. Diagnostics are plain values with
// line/column spans suitable for direct use as editor highlight ranges.
package validate

import (
	"github.com/pipenav/pipenav/pkg/filepos"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// IssueKind is the closed set of diagnostic kinds this package produces.
type IssueKind int

const (
	IssueMissingRequiredParameter IssueKind = iota
	IssueUnknownParameter
	IssueTypeMismatch
)

func (k IssueKind) String() string {
	switch k {
	case IssueMissingRequiredParameter:
		return "missing-required-parameter"
	case IssueUnknownParameter:
		return "unknown-parameter"
	case IssueTypeMismatch:
		return "type-mismatch"
	default:
		return "unknown"
	}
}

// DiagnosticIssue is one finding at a call-site. Span points at the most
// specific recoverable token: the parameter-name token for unknown/mismatch
// issues, the "template:" keyword for missing ones. InsertionLine is the line
// index at which a fix-up could insert a missing argument.
type DiagnosticIssue struct {
	Message  string
	Severity Severity
	Kind     IssueKind
	Span     filepos.Span

	ParamName     string
	ParamType     string
	PassedValue   string
	InsertionLine int
}
