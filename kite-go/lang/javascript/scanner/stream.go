package scanner

import (
	"fmt"
	"math"
)

// StreamPosition is a byte offset into an input stream.
type StreamPosition uint32

// InvalidPosition is never a valid offset in a stream.
const InvalidPosition = StreamPosition(math.MaxUint32)

// LengthFrom returns the number of bytes between other and p. other must not be after p.
func (p StreamPosition) LengthFrom(other StreamPosition) uint32 {
	if other > p {
		panic(fmt.Sprintf("position %d is after %d", other, p))
	}
	return uint32(p - other)
}

// InputStream is the source the tokenizer reads from. Reads never block and
// never allocate; mark and rewind give exact backtracking.
type InputStream interface {
	// ReadASCII returns the next byte, or EndChar at the end of the stream.
	ReadASCII() AsciiChar
	// UnreadASCII pushes back the byte most recently returned by ReadASCII.
	UnreadASCII(ch AsciiChar)

	ReadNonASCII() NonASCIIChar
	UnreadNonASCII(ch NonASCIIChar)

	// Mark returns the current cursor.
	Mark() StreamPosition
	// Rewind moves the cursor back to a position returned by Mark.
	Rewind(pos StreamPosition)

	// CheckASCIIText reports whether text occurs at pos, without moving the cursor.
	CheckASCIIText(text string, pos StreamPosition) bool
}

// BufferStream is an InputStream over an in-memory byte slice.
type BufferStream struct {
	data []byte
	cur  int
}

// NewBufferStream creates a stream positioned at the start of data.
func NewBufferStream(data []byte) *BufferStream {
	if uint64(len(data)) >= uint64(InvalidPosition) {
		panic("input too large for a stream")
	}
	return &BufferStream{data: data}
}

// ReadASCII implements InputStream
func (s *BufferStream) ReadASCII() AsciiChar {
	if s.cur >= len(s.data) {
		return EndChar
	}
	ch := AsciiChar(s.data[s.cur])
	s.cur++
	return ch
}

// UnreadASCII implements InputStream
func (s *BufferStream) UnreadASCII(ch AsciiChar) {
	if ch.IsEnd() {
		return
	}
	if s.cur == 0 {
		panic("unread at start of stream")
	}
	s.cur--
}

// ReadNonASCII implements InputStream
func (s *BufferStream) ReadNonASCII() NonASCIIChar {
	panic("non-ascii input is not yet supported")
}

// UnreadNonASCII implements InputStream
func (s *BufferStream) UnreadNonASCII(ch NonASCIIChar) {
	panic("non-ascii input is not yet supported")
}

// Mark implements InputStream
func (s *BufferStream) Mark() StreamPosition {
	return StreamPosition(s.cur)
}

// Rewind implements InputStream
func (s *BufferStream) Rewind(pos StreamPosition) {
	if int(pos) > s.cur {
		panic(fmt.Sprintf("rewind forward from %d to %d", s.cur, pos))
	}
	s.cur = int(pos)
}

// CheckASCIIText implements InputStream
func (s *BufferStream) CheckASCIIText(text string, pos StreamPosition) bool {
	begin := int(pos)
	end := begin + len(text)
	if end > len(s.data) {
		return false
	}
	return string(s.data[begin:end]) == text
}

// Bytes returns the underlying buffer.
func (s *BufferStream) Bytes() []byte {
	return s.data
}

// Len returns the size of the buffer in bytes.
func (s *BufferStream) Len() int {
	return len(s.data)
}

// Text returns the bytes covered by loc.
func (s *BufferStream) Text(loc Location) []byte {
	return loc.Text(s.data)
}
