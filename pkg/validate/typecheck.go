// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"regexp"
	"strings"
)

// expressionPrefix marks a template-expression value; such values are opaque
// to this analysis and are never type checked.
const expressionPrefix = "${{"

// valueKind is the coarse lexical shape of a passed scalar.
type valueKind int

const (
	kindString valueKind = iota
	kindNumber
	kindBoolean
	kindObjectOrList
)

var numberRegexp = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

func inferValueKind(raw string) valueKind {
	if isQuoted(raw) {
		return kindString
	}
	if strings.HasPrefix(raw, "[") || strings.HasPrefix(raw, "{") {
		return kindObjectOrList
	}
	switch strings.ToLower(raw) {
	case "true", "false":
		return kindBoolean
	}
	if numberRegexp.MatchString(raw) {
		return kindNumber
	}
	return kindString
}

// compatibleWithType reports whether a raw scalar is acceptable for the
// declared parameter type. The table is deliberately permissive where the
// line-oriented scan cannot see the real value: object-family types accept
// plain strings because multi-line bodies appear as opaque strings here, and
// number accepts quoted numeric strings.
func compatibleWithType(declaredType, raw string) bool {
	switch strings.ToLower(declaredType) {
	case "string":
		return inferValueKind(raw) != kindObjectOrList

	case "number":
		if inferValueKind(raw) == kindNumber {
			return true
		}
		return isQuoted(raw) && numberRegexp.MatchString(unquote(raw))

	case "boolean":
		if inferValueKind(raw) == kindBoolean {
			return true
		}
		lower := strings.ToLower(unquote(raw))
		return isQuoted(raw) && (lower == "true" || lower == "false")

	default:
		// object, step, stepList, job, jobList, stage, stageList, ...
		kind := inferValueKind(raw)
		return kind == kindObjectOrList || kind == kindString
	}
}

func isQuoted(value string) bool {
	return len(value) >= 2 &&
		((value[0] == '\'' && value[len(value)-1] == '\'') ||
			(value[0] == '"' && value[len(value)-1] == '"'))
}

func unquote(value string) string {
	if isQuoted(value) {
		return value[1 : len(value)-1]
	}
	return value
}
