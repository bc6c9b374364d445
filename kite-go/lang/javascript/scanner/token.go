package scanner

import (
	"fmt"
	"strconv"
)

// Kind is the lexical class of a token.
type Kind uint8

// The list of token kinds. Range predicates below depend on this order.
const (
	Error Kind = iota
	End
	Whitespace
	Newline
	LineComment
	BlockComment
	Identifier

	literalBegin
	IntegerLiteral
	HexIntegerLiteral
	OctIntegerLiteral
	FloatLiteral
	literalEnd

	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	OpenBrace
	CloseBrace
	Dot
	Semicolon
	Comma
	Question
	Colon

	comparisonBegin
	Equal          // ==
	StrictEqual    // ===
	NotEqual       // !=
	StrictNotEqual // !==
	Less
	LessEqual
	Greater
	GreaterEqual
	comparisonEnd

	Tilde
	Bang
	Plus
	PlusPlus
	Minus
	MinusMinus
	Star
	Slash
	Percent
	ShiftLeft            // <<
	ShiftRight           // >>>
	ArithmeticShiftRight // >>
	BitAnd
	BitOr
	BitXor
	LogicalAnd
	LogicalOr

	assignmentBegin
	Assign
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	ShiftLeftAssign
	ShiftRightAssign
	ArithmeticShiftRightAssign
	BitAndAssign
	BitOrAssign
	BitXorAssign
	assignmentEnd

	keywordBegin
	BreakKeyword
	CaseKeyword
	CatchKeyword
	ContinueKeyword
	DefaultKeyword
	DeleteKeyword
	DoKeyword
	ElseKeyword
	FinallyKeyword
	ForKeyword
	FunctionKeyword
	IfKeyword
	InKeyword
	InstanceofKeyword
	NewKeyword
	ReturnKeyword
	SwitchKeyword
	ThisKeyword
	ThrowKeyword
	TryKeyword
	TypeofKeyword
	VarKeyword
	VoidKeyword
	WhileKeyword
	keywordEnd

	numKinds
)

var kindNames = [...]string{
	Error:        "Error",
	End:          "End",
	Whitespace:   "Whitespace",
	Newline:      "Newline",
	LineComment:  "LineComment",
	BlockComment: "BlockComment",
	Identifier:   "Identifier",

	IntegerLiteral:    "IntegerLiteral",
	HexIntegerLiteral: "HexIntegerLiteral",
	OctIntegerLiteral: "OctIntegerLiteral",
	FloatLiteral:      "FloatLiteral",

	OpenParen:    "(",
	CloseParen:   ")",
	OpenBracket:  "[",
	CloseBracket: "]",
	OpenBrace:    "{",
	CloseBrace:   "}",
	Dot:          ".",
	Semicolon:    ";",
	Comma:        ",",
	Question:     "?",
	Colon:        ":",

	Equal:          "==",
	StrictEqual:    "===",
	NotEqual:       "!=",
	StrictNotEqual: "!==",
	Less:           "<",
	LessEqual:      "<=",
	Greater:        ">",
	GreaterEqual:   ">=",

	Tilde:                "~",
	Bang:                 "!",
	Plus:                 "+",
	PlusPlus:             "++",
	Minus:                "-",
	MinusMinus:           "--",
	Star:                 "*",
	Slash:                "/",
	Percent:              "%",
	ShiftLeft:            "<<",
	ShiftRight:           ">>>",
	ArithmeticShiftRight: ">>",
	BitAnd:               "&",
	BitOr:                "|",
	BitXor:               "^",
	LogicalAnd:           "&&",
	LogicalOr:            "||",

	Assign:                     "=",
	PlusAssign:                 "+=",
	MinusAssign:                "-=",
	StarAssign:                 "*=",
	SlashAssign:                "/=",
	PercentAssign:              "%=",
	ShiftLeftAssign:            "<<=",
	ShiftRightAssign:           ">>>=",
	ArithmeticShiftRightAssign: ">>=",
	BitAndAssign:               "&=",
	BitOrAssign:                "|=",
	BitXorAssign:               "^=",

	BreakKeyword:      "break",
	CaseKeyword:       "case",
	CatchKeyword:      "catch",
	ContinueKeyword:   "continue",
	DefaultKeyword:    "default",
	DeleteKeyword:     "delete",
	DoKeyword:         "do",
	ElseKeyword:       "else",
	FinallyKeyword:    "finally",
	ForKeyword:        "for",
	FunctionKeyword:   "function",
	IfKeyword:         "if",
	InKeyword:         "in",
	InstanceofKeyword: "instanceof",
	NewKeyword:        "new",
	ReturnKeyword:     "return",
	SwitchKeyword:     "switch",
	ThisKeyword:       "this",
	ThrowKeyword:      "throw",
	TryKeyword:        "try",
	TypeofKeyword:     "typeof",
	VarKeyword:        "var",
	VoidKeyword:       "void",
	WhileKeyword:      "while",
}

// String returns the source spelling of operators and keywords, and the
// kind name for everything else.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k > keywordBegin && k < keywordEnd }

// IsAssignment reports whether k is '=' or a compound assignment.
func (k Kind) IsAssignment() bool { return k > assignmentBegin && k < assignmentEnd }

// IsLiteral reports whether k is a numeric literal.
func (k Kind) IsLiteral() bool { return k > literalBegin && k < literalEnd }

// IsComparison reports whether k is an equality or relational operator.
func (k Kind) IsComparison() bool { return k > comparisonBegin && k < comparisonEnd }

// IsTrivia reports whether k carries no syntax: whitespace, newlines and comments.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, Newline, LineComment, BlockComment:
		return true
	}
	return false
}

// IsAtomic reports whether a token of kind k forms a complete primary
// expression on its own.
func (k Kind) IsAtomic() bool {
	return k == Identifier || k == ThisKeyword || k.IsLiteral()
}

// Location is the half-open byte range [Start, End) of a token.
type Location struct {
	Start StreamPosition
	End   StreamPosition
}

// Len returns the number of bytes covered.
func (l Location) Len() uint32 {
	return l.End.LengthFrom(l.Start)
}

// Text returns the bytes of src covered by l.
func (l Location) Text(src []byte) []byte {
	return src[l.Start:l.End]
}

// Token is a kind and the source range it was scanned from.
type Token struct {
	Kind     Kind
	Location Location
}

// Text returns the source bytes of the token.
func (t Token) Text(src []byte) []byte {
	return t.Location.Text(src)
}

// String gets a debug representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s[%d:%d]", t.Kind, t.Location.Start, t.Location.End)
}
