// File: position.go
// Title: Source Positions
// Description: Position spans carried by tokens and nodes, and the line
//              index used to turn byte offsets into 1-based line and
//              column numbers for diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package ast

import (
	"sort"
	"unicode/utf8"
)

// Position is a byte span in the source. Start includes any leading
// whitespace or skipped text, Delimiter is the first byte of the content,
// End is exclusive.
type Position struct {
	Start     int `json:"start" yaml:"start"`
	Delimiter int `json:"delimiter" yaml:"delimiter"`
	End       int `json:"end" yaml:"end"`
}

// Len returns the number of bytes covered by the span
func (p Position) Len() int {
	return p.End - p.Start
}

// Cover returns the span from the start of p to the end of q
func (p Position) Cover(q Position) Position {
	return Position{Start: p.Start, Delimiter: p.Delimiter, End: q.End}
}

// LineIndex maps byte offsets of one source text to lines and columns
type LineIndex struct {
	source     string
	lineStarts []int
}

// NewLineIndex indexes the line starts of source
func NewLineIndex(source string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{source: source, lineStarts: starts}
}

// LineColumn returns the 1-based line and column of offset. Columns count
// runes, so a multi-byte letter advances the column by one. Offsets past
// the end clamp to the end of the source.
func (li *LineIndex) LineColumn(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(li.source) {
		offset = len(li.source)
	}
	idx := sort.Search(len(li.lineStarts), func(i int) bool {
		return li.lineStarts[i] > offset
	}) - 1
	lineStart := li.lineStarts[idx]
	return idx + 1, utf8.RuneCountInString(li.source[lineStart:offset]) + 1
}

// Line returns the text of the 1-based line without its newline
func (li *LineIndex) Line(line int) string {
	if line < 1 || line > len(li.lineStarts) {
		return ""
	}
	start := li.lineStarts[line-1]
	end := len(li.source)
	if line < len(li.lineStarts) {
		end = li.lineStarts[line] - 1
	}
	if end > start && li.source[end-1] == '\r' {
		end--
	}
	return li.source[start:end]
}

// LineColumn is a convenience for one-off lookups
func LineColumn(source string, offset int) (line, column int) {
	return NewLineIndex(source).LineColumn(offset)
}
