// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pipeline contains the line-oriented parsers that extract structure
from pipeline-definition YAML: declared parameters, arguments passed at a
template inclusion call-site, repository alias tables, pipeline variables, and
the inclusion references themselves.

These parsers are deliberately heuristic. They scan indentation-significant
lines instead of building a full YAML document tree, which keeps every result
tied to an exact line and column in the original text and lets them degrade
gracefully on malformed input: parse what is unambiguous, silently stop at
anything that is not. They never return errors.

All functions are pure over their inputs; none of them touch the filesystem
or share state between calls.
*/
package pipeline
