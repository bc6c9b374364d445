package scanner

// AsciiChar is a single byte read from a stream, or EndChar.
type AsciiChar int32

// EndChar marks the end of a stream.
const EndChar = AsciiChar(-1)

// IsEnd reports whether ch is the end marker.
func (ch AsciiChar) IsEnd() bool { return ch == EndChar }

// IsASCIIOrEnd reports whether ch is a 7-bit byte or the end marker.
func (ch AsciiChar) IsASCIIOrEnd() bool { return ch < 0x80 }

// IsChar reports whether ch equals the byte c.
func (ch AsciiChar) IsChar(c byte) bool { return ch == AsciiChar(c) }

// IsWhitespace is true for space and horizontal tab. Line terminators are not whitespace.
func (ch AsciiChar) IsWhitespace() bool { return ch == ' ' || ch == '\t' }

// IsLowerLetter reports whether ch is in a-z.
func (ch AsciiChar) IsLowerLetter() bool { return ch >= 'a' && ch <= 'z' }

// IsUpperLetter reports whether ch is in A-Z.
func (ch AsciiChar) IsUpperLetter() bool { return ch >= 'A' && ch <= 'Z' }

// IsLetter reports whether ch is an ASCII letter.
func (ch AsciiChar) IsLetter() bool { return ch.IsLowerLetter() || ch.IsUpperLetter() }

// IsDigit reports whether ch is in 0-9.
func (ch AsciiChar) IsDigit() bool { return ch >= '0' && ch <= '9' }

// IsOctDigit reports whether ch is in 0-7.
func (ch AsciiChar) IsOctDigit() bool { return ch >= '0' && ch <= '7' }

// IsHexDigit reports whether ch is in 0-9, a-f or A-F.
func (ch AsciiChar) IsHexDigit() bool {
	return ch.IsDigit() || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// IsIdentifierStart is true for letters, '_' and '$'.
func (ch AsciiChar) IsIdentifierStart() bool {
	return ch.IsLetter() || ch == '_' || ch == '$'
}

// IsIdentifierContinue is true for identifier start characters and digits.
func (ch AsciiChar) IsIdentifierContinue() bool {
	return ch.IsIdentifierStart() || ch.IsDigit()
}

// IsCarriageReturn reports whether ch is '\r'.
func (ch AsciiChar) IsCarriageReturn() bool { return ch == '\r' }

// IsLineFeed reports whether ch is '\n'.
func (ch AsciiChar) IsLineFeed() bool { return ch == '\n' }

// OctetValue returns the raw byte. It panics on EndChar.
func (ch AsciiChar) OctetValue() byte {
	if ch.IsEnd() {
		panic("octet value of end of stream")
	}
	return byte(ch)
}

// ASCIIValue returns the 7-bit value. It panics on EndChar and on bytes >= 0x80.
func (ch AsciiChar) ASCIIValue() byte {
	if ch.IsEnd() || !ch.IsASCIIOrEnd() {
		panic("not an ascii character")
	}
	return byte(ch)
}

// NonASCIIChar is a decoded code point, or one of the sentinels.
type NonASCIIChar int32

const (
	// EndNonASCII marks the end of a stream.
	EndNonASCII = NonASCIIChar(-1)
	// ErrorNonASCII marks an undecodable sequence.
	ErrorNonASCII = NonASCIIChar(-2)
)

// IsEnd reports whether ch is the end marker.
func (ch NonASCIIChar) IsEnd() bool { return ch == EndNonASCII }

// IsError reports whether ch is the decoding error marker.
func (ch NonASCIIChar) IsError() bool { return ch == ErrorNonASCII }

// IsValid reports whether ch holds a code point.
func (ch NonASCIIChar) IsValid() bool { return ch >= 0 }
