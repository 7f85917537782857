// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
)

// Position identifies a line within a source. Line indexes are zero based
// (they index into the slice produced by splitting the source on newlines).
type Position struct {
	lineIdx int
	file    string
	known   bool
}

func NewPosition(lineIdx int) Position {
	if lineIdx < 0 {
		panic("Line indexes are 0 based")
	}
	return Position{lineIdx: lineIdx, known: true}
}

// NewPositionInFile returns the Position of line index "lineIdx" within the file "file".
func NewPositionInFile(lineIdx int, file string) Position {
	p := NewPosition(lineIdx)
	p.file = file
	return p
}

// NewUnknownPosition is equivalent of zero value Position.
func NewUnknownPosition() Position {
	return Position{}
}

func (p Position) IsKnown() bool { return p.known }

// LineIdx returns the zero-based line index.
func (p Position) LineIdx() int {
	if !p.known {
		panic("Position is unknown")
	}
	return p.lineIdx
}

// LineNum returns the one-based line number, suitable for display.
func (p Position) LineNum() int { return p.LineIdx() + 1 }

func (p Position) GetFile() string { return p.file }

func (p Position) WithFile(file string) Position {
	p.file = file
	return p
}

func (p Position) AsString() string {
	return "line " + p.AsCompactString()
}

func (p Position) AsCompactString() string {
	filePrefix := p.file
	if len(filePrefix) > 0 {
		filePrefix += ":"
	}
	if p.IsKnown() {
		return fmt.Sprintf("%s%d", filePrefix, p.LineNum())
	}
	return fmt.Sprintf("%s?", filePrefix)
}

// Span is a Position narrowed to a column range. Columns are zero-based byte
// offsets into the line; EndCol is exclusive.
type Span struct {
	Position
	StartCol int
	EndCol   int
}

func NewSpan(pos Position, startCol, endCol int) Span {
	if startCol < 0 || endCol < startCol {
		panic("Span columns are out of order")
	}
	return Span{Position: pos, StartCol: startCol, EndCol: endCol}
}

func (s Span) AsCompactString() string {
	return fmt.Sprintf("%s:%d-%d", s.Position.AsCompactString(), s.StartCol, s.EndCol)
}
