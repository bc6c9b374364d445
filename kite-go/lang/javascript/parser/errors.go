package parser

import (
	"fmt"

	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
	"github.com/kiteco/oxyjs/kite-golib/errors"
)

// Reason identifies why a parse failed.
type Reason int

// List of error reasons.
const (
	// Unspecified is a failure without a more specific reason.
	Unspecified Reason = iota
	// TokenizerError means the tokenizer could not produce a token; see ParseError.TokenErr.
	TokenizerError
	// UnexpectedToken means a specific token kind was required and another was found.
	UnexpectedToken
	// ExpectedVariableName means a var statement lacked an identifier.
	ExpectedVariableName
	// ExpectedCommaOrSemicolon means a var declaration was not followed by ',' or ';'.
	ExpectedCommaOrSemicolon
	// ExpectedCommaOrCloseParen means an argument was not followed by ',' or ')'.
	ExpectedCommaOrCloseParen
	// ExpectedExpression means an operand was required and none could start.
	ExpectedExpression
	// ExpectedStatement means a statement was required and none could start.
	ExpectedStatement
	// MaxDepthExceeded means nesting went deeper than Options.MaxDepth.
	MaxDepthExceeded
)

var reasonString = map[Reason]string{
	Unspecified:               "syntax error",
	TokenizerError:            "tokenizer error",
	UnexpectedToken:           "unexpected token",
	ExpectedVariableName:      "expected variable name",
	ExpectedCommaOrSemicolon:  "expected ',' or ';'",
	ExpectedCommaOrCloseParen: "expected ',' or ')'",
	ExpectedExpression:        "expected expression",
	ExpectedStatement:         "expected statement",
	MaxDepthExceeded:          "maximum nesting depth exceeded",
}

// String representation of a Reason.
func (r Reason) String() string {
	if s, ok := reasonString[r]; ok {
		return s
	}
	return fmt.Sprintf("invalid reason (%d)", r)
}

// ParseError is returned for any input the parser rejects. The message is
// only formatted when Error is called.
type ParseError struct {
	Reason Reason
	// Token is the token at which the error was detected.
	Token scanner.Token
	// Expected is set for UnexpectedToken.
	Expected scanner.Kind
	// TokenErr is set for TokenizerError.
	TokenErr *scanner.TokenError
}

// Error implements error
func (e *ParseError) Error() string {
	switch e.Reason {
	case TokenizerError:
		if e.TokenErr != nil {
			return e.TokenErr.Error()
		}
	case UnexpectedToken:
		return fmt.Sprintf("%d: %s: expected %s, got %s",
			e.Token.Location.Start, e.Reason, e.Expected, e.Token.Kind)
	}
	return fmt.Sprintf("%d: %s, got %s", e.Token.Location.Start, e.Reason, e.Token.Kind)
}

// Position returns the byte offset the error refers to.
func (e *ParseError) Position() scanner.StreamPosition {
	if e.Reason == TokenizerError && e.TokenErr != nil {
		return e.TokenErr.Location.Start
	}
	return e.Token.Location.Start
}

// ErrorReason returns the reason behind an error returned by this package,
// or Unspecified for any other error. Errors wrapped with kite-golib/errors
// are unwrapped first.
func ErrorReason(err error) Reason {
	if perr, ok := errors.Cause(err).(*ParseError); ok {
		return perr.Reason
	}
	return Unspecified
}
