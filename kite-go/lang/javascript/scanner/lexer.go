package scanner

// LexOptions represents configuration for Lex
type LexOptions struct {
	// KeepTrivia keeps whitespace, newline and comment tokens.
	KeepTrivia bool
	// CheckKeywords classifies reserved words as keywords rather than identifiers.
	CheckKeywords bool
}

// DefaultLexOptions is a LexOptions object with default values.
var DefaultLexOptions = LexOptions{
	KeepTrivia:    true,
	CheckKeywords: true,
}

// Lex extracts all tokens from buf, ending with the End token. On a tokenizer
// error the tokens before the error are returned along with the error.
func Lex(buf []byte, opts LexOptions) ([]Token, error) {
	tokenizer := NewTokenizer(NewBufferStream(buf), &FullMode{})

	var toks []Token
	for {
		tok := tokenizer.NextToken(opts.CheckKeywords)
		if tok.Kind == Error {
			lexErrors.Hit()
			return toks, tokenizer.Err()
		}
		if opts.KeepTrivia || !tok.Kind.IsTrivia() {
			toks = append(toks, tok)
		}
		if tok.Kind == End {
			lexErrors.Miss()
			return toks, nil
		}
	}
}

// Count returns the number of non-trivia tokens in buf, excluding End.
func Count(buf []byte) (int, error) {
	toks, err := Lex(buf, LexOptions{CheckKeywords: true})
	if err != nil {
		return 0, err
	}
	return len(toks) - 1, nil
}
