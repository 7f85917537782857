// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a
file) and a line within that source, plus Span: a Position narrowed to a
column range on that line.

Positions are crucial when reporting diagnostics to the user. All parsers in
this codebase operate over a zero-based slice of lines; Position stores that
zero-based index and converts to the one-based form only when formatting for
humans. Spans carry the column range of the most specific recoverable token so
presentation layers can use them directly as highlight ranges.
*/
package filepos
