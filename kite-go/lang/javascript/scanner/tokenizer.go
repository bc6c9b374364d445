package scanner

// Mode parameterizes a tokenizer run.
type Mode interface {
	// CaresAboutNewline reports whether line terminators inside block
	// comments should be noted.
	CaresAboutNewline() bool
	// NoteNewline is called for each line terminator the mode is told about.
	NoteNewline()
}

// FullMode produces every token including trivia. It counts newline tokens
// but ignores line terminators inside block comments.
type FullMode struct {
	newlines int
}

// CaresAboutNewline implements Mode
func (m *FullMode) CaresAboutNewline() bool { return false }

// NoteNewline implements Mode
func (m *FullMode) NoteNewline() { m.newlines++ }

// Newlines returns the number of newlines noted so far.
func (m *FullMode) Newlines() int { return m.newlines }

// A Tokenizer turns an InputStream into tokens on demand. It supports one
// token of pushback and exact backtracking through MarkPosition and
// RewindPosition.
type Tokenizer struct {
	stream InputStream
	mode   Mode

	pushedBack    Token
	hasPushedBack bool

	start StreamPosition // start of the token being scanned
	err   *TokenError
}

// NewTokenizer creates a tokenizer reading from stream.
func NewTokenizer(stream InputStream, mode Mode) *Tokenizer {
	if mode == nil {
		mode = &FullMode{}
	}
	return &Tokenizer{
		stream: stream,
		mode:   mode,
	}
}

// Err returns the error behind the most recent Error token, or nil.
func (t *Tokenizer) Err() *TokenError {
	return t.err
}

// NextToken returns the pushed back token if there is one, and otherwise
// scans the next token. Keywords are only recognized when checkKeywords is
// set; otherwise they scan as identifiers. NextToken panics once an Error
// token has been returned.
func (t *Tokenizer) NextToken(checkKeywords bool) Token {
	if t.hasPushedBack {
		t.hasPushedBack = false
		return t.pushedBack
	}
	if t.err != nil {
		panic("next token requested after tokenizer error: " + t.err.Error())
	}
	return t.readToken(checkKeywords)
}

// PushBackToken makes tok the result of the next call to NextToken. Only one
// token may be pending at a time.
func (t *Tokenizer) PushBackToken(tok Token) {
	if t.hasPushedBack {
		panic("token already pushed back")
	}
	t.pushedBack = tok
	t.hasPushedBack = true
}

// MarkPosition returns a position that RewindPosition can return to. A
// pending pushed back token is included in what a rewind replays.
func (t *Tokenizer) MarkPosition() StreamPosition {
	if t.hasPushedBack {
		return t.pushedBack.Location.Start
	}
	return t.stream.Mark()
}

// RewindPosition discards any pushed back token and moves the stream back to pos.
func (t *Tokenizer) RewindPosition(pos StreamPosition) {
	t.hasPushedBack = false
	t.stream.Rewind(pos)
}

func (t *Tokenizer) read() AsciiChar {
	return t.stream.ReadASCII()
}

func (t *Tokenizer) unread(ch AsciiChar) {
	t.stream.UnreadASCII(ch)
}

func (t *Tokenizer) location() Location {
	return Location{Start: t.start, End: t.stream.Mark()}
}

func (t *Tokenizer) emit(kind Kind) Token {
	return Token{Kind: kind, Location: t.location()}
}

func (t *Tokenizer) fail(reason ErrorReason, expected Kind, ch AsciiChar) Token {
	loc := t.location()
	t.err = &TokenError{Reason: reason, Expected: expected, Location: loc}
	if !ch.IsEnd() {
		t.err.Char = ch.OctetValue()
	}
	return Token{Kind: Error, Location: loc}
}

func (t *Tokenizer) readToken(checkKeywords bool) Token {
	t.start = t.stream.Mark()
	ch := t.read()

	switch {
	case ch.IsWhitespace():
		return t.readWhitespace()
	case ch.IsIdentifierStart():
		return t.readIdentifier(ch, checkKeywords)
	}

	if !ch.IsEnd() {
		if kind := singleChar[ch.OctetValue()]; kind != Error {
			return t.emit(kind)
		}
	}

	if ch.IsDigit() {
		if ch.IsChar('0') {
			return t.readNumberStartingWithZero()
		}
		return t.readDecimal()
	}

	switch ch {
	case '/':
		next := t.read()
		switch next {
		case '/':
			return t.readLineComment()
		case '*':
			return t.readBlockComment()
		case '=':
			return t.emit(SlashAssign)
		}
		t.unread(next)
		return t.emit(Slash)
	case '=':
		if t.accept('=') {
			return t.switch2(Equal, StrictEqual)
		}
		return t.emit(Assign)
	case '!':
		if t.accept('=') {
			return t.switch2(NotEqual, StrictNotEqual)
		}
		return t.emit(Bang)
	case '<':
		if t.accept('=') {
			return t.emit(LessEqual)
		}
		if t.accept('<') {
			return t.switch2(ShiftLeft, ShiftLeftAssign)
		}
		return t.emit(Less)
	case '>':
		if t.accept('=') {
			return t.emit(GreaterEqual)
		}
		if t.accept('>') {
			if t.accept('>') {
				return t.switch2(ShiftRight, ShiftRightAssign)
			}
			return t.switch2(ArithmeticShiftRight, ArithmeticShiftRightAssign)
		}
		return t.emit(Greater)
	case '*':
		return t.switch2(Star, StarAssign)
	case '+':
		return t.switch3(Plus, PlusAssign, '+', PlusPlus)
	case '-':
		return t.switch3(Minus, MinusAssign, '-', MinusMinus)
	case '%':
		return t.switch2(Percent, PercentAssign)
	case '&':
		return t.switch3(BitAnd, BitAndAssign, '&', LogicalAnd)
	case '|':
		return t.switch3(BitOr, BitOrAssign, '|', LogicalOr)
	case '^':
		return t.switch2(BitXor, BitXorAssign)
	case '\n', '\r':
		return t.readNewline(ch)
	case EndChar:
		return t.emit(End)
	}

	if !ch.IsASCIIOrEnd() {
		return t.fail(CantHandleUnicodeYet, Error, ch)
	}
	return t.fail(UnrecognizedChar, Error, ch)
}

// accept consumes the next byte if it is c.
func (t *Tokenizer) accept(c byte) bool {
	ch := t.read()
	if ch.IsChar(c) {
		return true
	}
	t.unread(ch)
	return false
}

// switch2 emits tok1 if the next byte is '=', and tok0 otherwise.
func (t *Tokenizer) switch2(tok0, tok1 Kind) Token {
	if t.accept('=') {
		return t.emit(tok1)
	}
	return t.emit(tok0)
}

// switch3 is switch2 with a third alternative for a doubled operator.
func (t *Tokenizer) switch3(tok0, tok1 Kind, ch2 byte, tok2 Kind) Token {
	if t.accept('=') {
		return t.emit(tok1)
	}
	if t.accept(ch2) {
		return t.emit(tok2)
	}
	return t.emit(tok0)
}

func (t *Tokenizer) readWhitespace() Token {
	for {
		ch := t.read()
		if !ch.IsWhitespace() {
			t.unread(ch)
			return t.emit(Whitespace)
		}
	}
}

func (t *Tokenizer) readIdentifier(first AsciiChar, checkKeywords bool) Token {
	n := uint32(1)
	tail := uint32(first.OctetValue())
	for {
		ch := t.read()
		if !ch.IsIdentifierContinue() {
			t.unread(ch)
			break
		}
		n++
		tail = (tail << 8) | uint32(ch.OctetValue())
	}
	if checkKeywords {
		if kind, ok := lookupKeyword(t.stream, t.start, n, tail); ok {
			return t.emit(kind)
		}
	}
	return t.emit(Identifier)
}

func (t *Tokenizer) readNewline(ch AsciiChar) Token {
	if ch.IsCarriageReturn() {
		t.accept('\n')
	}
	t.mode.NoteNewline()
	return t.emit(Newline)
}

func (t *Tokenizer) readLineComment() Token {
	for {
		ch := t.read()
		if ch.IsEnd() || ch.IsLineFeed() || ch.IsCarriageReturn() {
			t.unread(ch)
			return t.emit(LineComment)
		}
	}
}

func (t *Tokenizer) readBlockComment() Token {
	for {
		ch := t.read()
		switch {
		case ch.IsEnd():
			return t.fail(PrematureEnd, BlockComment, ch)
		case ch.IsChar('*'):
			if t.accept('/') {
				return t.emit(BlockComment)
			}
		case ch.IsLineFeed(), ch.IsCarriageReturn():
			if ch.IsCarriageReturn() {
				t.accept('\n')
			}
			if t.mode.CaresAboutNewline() {
				t.mode.NoteNewline()
			}
		}
	}
}

func (t *Tokenizer) readNumberStartingWithZero() Token {
	ch := t.read()
	switch {
	case ch.IsChar('x') || ch.IsChar('X'):
		return t.readHex()
	case ch.IsOctDigit():
		return t.readOctal()
	case ch.IsChar('.'):
		return t.readFraction()
	case ch.IsChar('e') || ch.IsChar('E'):
		return t.readExponent()
	case ch.IsIdentifierContinue():
		return t.fail(BadNumber, IntegerLiteral, ch)
	}
	t.unread(ch)
	return t.emit(IntegerLiteral)
}

func (t *Tokenizer) readHex() Token {
	ch := t.read()
	if ch.IsEnd() {
		return t.fail(PrematureEnd, HexIntegerLiteral, ch)
	}
	if !ch.IsHexDigit() {
		return t.fail(BadNumber, HexIntegerLiteral, ch)
	}
	for {
		ch = t.read()
		if !ch.IsHexDigit() {
			break
		}
	}
	return t.finishNumber(ch, HexIntegerLiteral)
}

func (t *Tokenizer) readOctal() Token {
	for {
		ch := t.read()
		if !ch.IsOctDigit() {
			return t.finishNumber(ch, OctIntegerLiteral)
		}
	}
}

func (t *Tokenizer) readDecimal() Token {
	for {
		ch := t.read()
		switch {
		case ch.IsDigit():
			continue
		case ch.IsChar('.'):
			return t.readFraction()
		case ch.IsChar('e') || ch.IsChar('E'):
			return t.readExponent()
		}
		return t.finishNumber(ch, IntegerLiteral)
	}
}

func (t *Tokenizer) readFraction() Token {
	for {
		ch := t.read()
		switch {
		case ch.IsDigit():
			continue
		case ch.IsChar('e') || ch.IsChar('E'):
			return t.readExponent()
		}
		return t.finishNumber(ch, FloatLiteral)
	}
}

func (t *Tokenizer) readExponent() Token {
	ch := t.read()
	if ch.IsChar('+') || ch.IsChar('-') {
		ch = t.read()
	}
	if ch.IsEnd() {
		return t.fail(PrematureEnd, FloatLiteral, ch)
	}
	if !ch.IsDigit() {
		return t.fail(BadNumber, FloatLiteral, ch)
	}
	for {
		ch = t.read()
		if !ch.IsDigit() {
			return t.finishNumber(ch, FloatLiteral)
		}
	}
}

// finishNumber checks the byte following a literal. A literal may not run
// into an identifier or another digit.
func (t *Tokenizer) finishNumber(ch AsciiChar, kind Kind) Token {
	if ch.IsIdentifierContinue() {
		return t.fail(BadNumber, kind, ch)
	}
	t.unread(ch)
	return t.emit(kind)
}
