package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
)

// Options for a parser
type Options struct {
	// Trace prints the productions entered and the tokens consumed.
	Trace       bool
	TraceWriter io.Writer // defaults to os.Stdout
	// MaxDepth bounds the nesting of statements and expressions; 0 means no bound.
	MaxDepth int
}

// DefaultOptions for a parser
var DefaultOptions = Options{
	MaxDepth: 2000,
}

// AstBuilder builds a tree from the tokens of a stream by recursive descent,
// using precedence climbing for operators. It never recovers from an error:
// the first one is returned and the builder must not be used afterwards.
type AstBuilder struct {
	tokenizer *scanner.Tokenizer
	opts      Options

	// skippedNewline is set when the last call to nextToken skipped a line
	// terminator. Only postfix ++ and -- consult it.
	skippedNewline bool

	depth int
}

// NewAstBuilder creates a builder reading from stream.
func NewAstBuilder(stream scanner.InputStream, opts Options) *AstBuilder {
	if opts.TraceWriter == nil {
		opts.TraceWriter = os.Stdout
	}
	return &AstBuilder{
		tokenizer: scanner.NewTokenizer(stream, &scanner.FullMode{}),
		opts:      opts,
	}
}

func (b *AstBuilder) printTrace(a ...interface{}) {
	b.printTraceSymbol("  ", a...)
}

func (b *AstBuilder) printTraceSymbol(symbol string, a ...interface{}) {
	const dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "
	fmt.Fprintf(b.opts.TraceWriter, "%s%9d: ", symbol, b.tokenizer.MarkPosition())
	i := 2 * b.depth
	for i > len(dots) {
		fmt.Fprint(b.opts.TraceWriter, dots)
		i -= len(dots)
	}
	fmt.Fprint(b.opts.TraceWriter, dots[:i])
	fmt.Fprintln(b.opts.TraceWriter, a...)
}

func trace(b *AstBuilder, msg string) *AstBuilder {
	if b.opts.Trace {
		b.printTrace(msg, "(")
	}
	b.depth++
	return b
}

// Usage pattern: defer un(trace(b, "..."))
func un(b *AstBuilder) {
	b.depth--
	if b.opts.Trace {
		b.printTrace(")")
	}
}

func (b *AstBuilder) checkDepth() error {
	if b.opts.MaxDepth > 0 && b.depth > b.opts.MaxDepth {
		return b.fail(MaxDepthExceeded, scanner.Token{
			Kind:     scanner.Error,
			Location: scanner.Location{Start: b.tokenizer.MarkPosition(), End: b.tokenizer.MarkPosition()},
		})
	}
	return nil
}

func (b *AstBuilder) fail(reason Reason, tok scanner.Token) error {
	err := &ParseError{Reason: reason, Token: tok}
	if b.opts.Trace {
		b.printTraceSymbol("**", "ERROR:", err)
	}
	return err
}

func (b *AstBuilder) unexpected(expected scanner.Kind, tok scanner.Token) error {
	err := &ParseError{Reason: UnexpectedToken, Token: tok, Expected: expected}
	if b.opts.Trace {
		b.printTraceSymbol("**", "ERROR:", err)
	}
	return err
}

// nextToken returns the next token that is not whitespace, a comment or a
// newline.
func (b *AstBuilder) nextToken(checkKeywords bool) (scanner.Token, error) {
	b.skippedNewline = false
	for {
		tok := b.tokenizer.NextToken(checkKeywords)
		switch {
		case tok.Kind == scanner.Error:
			return tok, &ParseError{Reason: TokenizerError, Token: tok, TokenErr: b.tokenizer.Err()}
		case tok.Kind == scanner.Newline:
			b.skippedNewline = true
		case tok.Kind.IsTrivia():
		default:
			if b.opts.Trace {
				b.printTraceSymbol(" -", tok.Kind)
			}
			return tok, nil
		}
	}
}

// peek returns the next token without consuming it.
func (b *AstBuilder) peek() (scanner.Token, error) {
	mark := b.tokenizer.MarkPosition()
	tok, err := b.nextToken(true)
	if err != nil {
		return tok, err
	}
	b.tokenizer.RewindPosition(mark)
	return tok, nil
}

// mustMatch consumes the next token if it has the given kind, and otherwise
// leaves it in place and returns an UnexpectedToken error.
func (b *AstBuilder) mustMatch(kind scanner.Kind) (scanner.Token, error) {
	mark := b.tokenizer.MarkPosition()
	tok, err := b.nextToken(true)
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		b.tokenizer.RewindPosition(mark)
		return tok, b.unexpected(kind, tok)
	}
	return tok, nil
}

// maybeMatch consumes the next token only if it has the given kind.
func (b *AstBuilder) maybeMatch(kind scanner.Kind) (scanner.Token, bool, error) {
	mark := b.tokenizer.MarkPosition()
	tok, err := b.nextToken(true)
	if err != nil {
		return tok, false, err
	}
	if tok.Kind != kind {
		b.tokenizer.RewindPosition(mark)
		return tok, false, nil
	}
	return tok, true, nil
}
