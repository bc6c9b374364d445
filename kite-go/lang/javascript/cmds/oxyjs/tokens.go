package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
	"github.com/kiteco/oxyjs/kite-golib/errors"
	"github.com/kr/pretty"
)

type tokensArgs struct {
	Files      []string `arg:"positional" help:"files to tokenize, stdin if omitted"`
	Trivia     bool     `help:"include whitespace, newlines and comments"`
	NoKeywords bool     `arg:"--no-keywords" help:"report reserved words as identifiers"`
	Debug      bool     `help:"dump token structs"`
	CacheSize  int      `help:"lex cache entries (default from OXYJS_LEX_CACHE_SIZE)"`
}

func (a *tokensArgs) Validate() error {
	if a.CacheSize < 1 {
		return errors.New("--cachesize must be at least 1")
	}
	return nil
}

func (a *tokensArgs) Handle() error {
	if err := scanner.SetLexCacheSize(a.CacheSize); err != nil {
		return errors.Wrapf(err, "error creating lex cache")
	}

	files := a.Files
	if len(files) == 0 {
		files = []string{""}
	}

	opts := scanner.LexOptions{KeepTrivia: a.Trivia, CheckKeywords: !a.NoKeywords}
	var errs errors.Errors
	for _, path := range files {
		src, name, err := readSource(path)
		if err != nil {
			errs = errors.Append(errs, err)
			continue
		}

		toks, err := scanner.LexCached(src, opts)
		if len(files) > 1 {
			fmt.Printf("%s:\n", name)
		}
		if a.Debug {
			pretty.Println(toks)
		} else {
			writeTokens(os.Stdout, toks, src)
		}
		if err != nil {
			errs = errors.Append(errs, locate(name, src, err))
		}
	}
	if errs != nil {
		return errs
	}
	return nil
}

func writeTokens(w io.Writer, toks []scanner.Token, src []byte) {
	for _, tok := range toks {
		fmt.Fprintf(w, "%6d  %-20s %q\n", tok.Location.Start, tok.Kind, tok.Text(src))
	}
}
