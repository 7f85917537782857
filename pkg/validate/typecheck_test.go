// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInferValueKind(t *testing.T) {
	cases := []struct {
		raw      string
		expected valueKind
	}{
		{"true", kindBoolean},
		{"FALSE", kindBoolean},
		{"42", kindNumber},
		{"-3.14", kindNumber},
		{"[a, b]", kindObjectOrList},
		{"{k: v}", kindObjectOrList},
		{`"42"`, kindString},
		{"'true'", kindString},
		{"hello", kindString},
		{"1.2.3", kindString},
	}

	for _, c := range cases {
		require.Equal(t, c.expected, inferValueKind(c.raw), "value %q", c.raw)
	}
}

func TestCompatibleWithType(t *testing.T) {
	cases := []struct {
		declaredType string
		raw          string
		compatible   bool
	}{
		{"string", "hello", true},
		{"string", "42", true},
		{"string", "[a]", false},

		{"number", "42", true},
		{"number", `"42"`, true},
		{"number", "abc", false},
		{"number", "true", false},

		{"boolean", "true", true},
		{"boolean", "False", true},
		{"boolean", `"true"`, true},
		{"boolean", "1", false},

		// object-family types tolerate opaque strings: multi-line bodies are
		// invisible to a line-oriented scan
		{"object", "{k: v}", true},
		{"object", "anything", true},
		{"stepList", "[]", true},
		{"jobList", "plain text", true},
	}

	for _, c := range cases {
		require.Equal(t, c.compatible, compatibleWithType(c.declaredType, c.raw),
			"type %s value %q", c.declaredType, c.raw)
	}
}
