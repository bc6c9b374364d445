package scanner

import "fmt"

// ErrorReason classifies a tokenizer failure.
type ErrorReason int

const (
	// PrematureEnd means the input ended inside a token.
	PrematureEnd ErrorReason = iota + 1
	// CantHandleUnicodeYet means a byte >= 0x80 appeared outside a comment.
	CantHandleUnicodeYet
	// BadNumber means a numeric literal was malformed.
	BadNumber
	// UnrecognizedChar means no token starts with the offending byte.
	UnrecognizedChar
)

var reasonStrings = map[ErrorReason]string{
	PrematureEnd:         "premature end of input",
	CantHandleUnicodeYet: "non-ascii input is not supported",
	BadNumber:            "malformed number",
	UnrecognizedChar:     "unrecognized character",
}

func (r ErrorReason) String() string {
	if s, ok := reasonStrings[r]; ok {
		return s
	}
	return fmt.Sprintf("ErrorReason(%d)", int(r))
}

// TokenError describes why the tokenizer produced an Error token.
type TokenError struct {
	Reason ErrorReason
	// Expected is the kind of token being scanned, for PrematureEnd.
	Expected Kind
	// Char is the offending byte, for UnrecognizedChar and CantHandleUnicodeYet.
	Char     byte
	Location Location
}

// Error implements error
func (e *TokenError) Error() string {
	switch e.Reason {
	case PrematureEnd:
		return fmt.Sprintf("%d: %s in %s", e.Location.Start, e.Reason, e.Expected)
	case UnrecognizedChar, CantHandleUnicodeYet:
		return fmt.Sprintf("%d: %s %q", e.Location.Start, e.Reason, e.Char)
	default:
		return fmt.Sprintf("%d: %s", e.Location.Start, e.Reason)
	}
}
