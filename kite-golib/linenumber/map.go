package linenumber

import "sort"

// Map converts byte offsets to and from (line number, column) pairs.
// Byte offsets, line numbers, and columns are all zero-based. Lines end at
// "\n", "\r\n" or a lone "\r", the same terminators the tokenizer reports as
// newlines.
type Map struct {
	ByteCount   int   // ByteCount is the number of bytes in the buffer
	LineOffsets []int // LineOffsets contains the byte offset of the first char of each line
	LineEnds    []int // LineEnds contains the byte offset of each line's terminator, or ByteCount
}

// NewMap creates a map for the given buffer.
func NewMap(buf []byte) *Map {
	m := Map{
		ByteCount:   len(buf),
		LineOffsets: []int{0},
	}
	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case '\r':
			m.LineEnds = append(m.LineEnds, i)
			if i+1 < len(buf) && buf[i+1] == '\n' {
				i++
			}
			m.LineOffsets = append(m.LineOffsets, i+1)
		case '\n':
			m.LineEnds = append(m.LineEnds, i)
			m.LineOffsets = append(m.LineOffsets, i+1)
		}
	}
	m.LineEnds = append(m.LineEnds, len(buf))
	return &m
}

// Offset converts a line number and column offset (both zero-based) to a byte offset.
func (m *Map) Offset(line, column int) int {
	return m.LineOffsets[line] + column
}

// LineCol converts a byte offset to a line number and column offset (both zero based).
// An offset inside a line terminator belongs to the line the terminator ends.
func (m *Map) LineCol(offset int) (line, column int) {
	line = sort.Search(len(m.LineOffsets)-1, func(i int) bool { return offset < m.LineOffsets[i+1] })
	return line, offset - m.LineOffsets[line]
}

// Column gets the zero-based column for a byte offset
func (m *Map) Column(offset int) int {
	_, col := m.LineCol(offset)
	return col
}

// Line gets the zero-based line number for a byte offset
func (m *Map) Line(offset int) int {
	line, _ := m.LineCol(offset)
	return line
}

// Position gets the one-based line and column for a byte offset, as printed
// in diagnostics.
func (m *Map) Position(offset int) (line, column int) {
	line, column = m.LineCol(offset)
	return line + 1, column + 1
}

// LineBounds gets the begin and end of the given line number, such that buf[begin:end] will
// contain the complete contents of the line without its terminator.
func (m *Map) LineBounds(line int) (begin, end int) {
	return m.LineOffsets[line], m.LineEnds[line]
}

// LineCount gets the number of lines (equal to the number of line terminators plus one)
func (m *Map) LineCount() int {
	return len(m.LineOffsets)
}
