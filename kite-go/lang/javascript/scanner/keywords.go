package scanner

import "fmt"

type keyword struct {
	kind Kind
	text string
}

var (
	// keywordsByTail maps the last (up to) four bytes of each keyword, packed
	// big-endian into a word, to the keyword. The tokenizer accumulates the same
	// word while scanning an identifier, so a candidate is found with one lookup.
	keywordsByTail map[uint32]keyword

	// singleChar maps bytes that always form a token by themselves.
	singleChar [256]Kind
)

func init() {
	keywordsByTail = make(map[uint32]keyword)
	for k := keywordBegin + 1; k < keywordEnd; k++ {
		text := k.String()
		tail := tailWord(text)
		if prev, found := keywordsByTail[tail]; found {
			panic(fmt.Sprintf("keywords %q and %q share a tail word", prev.text, text))
		}
		keywordsByTail[tail] = keyword{kind: k, text: text}
	}

	for _, k := range []Kind{
		OpenParen, CloseParen, OpenBracket, CloseBracket, OpenBrace, CloseBrace,
		Dot, Semicolon, Comma, Question, Colon, Tilde,
	} {
		singleChar[k.String()[0]] = k
	}
}

func tailWord(text string) uint32 {
	var w uint32
	for i := 0; i < len(text); i++ {
		w = (w << 8) | uint32(text[i])
	}
	return w
}

// lookupKeyword classifies an identifier of length n starting at start whose
// tail word is tail. The part of a long keyword that fell out of the tail word
// is confirmed against the stream.
func lookupKeyword(stream InputStream, start StreamPosition, n uint32, tail uint32) (Kind, bool) {
	kw, found := keywordsByTail[tail]
	if !found || uint32(len(kw.text)) != n {
		return Identifier, false
	}
	if len(kw.text) > 4 && !stream.CheckASCIIText(kw.text[:len(kw.text)-4], start) {
		return Identifier, false
	}
	return kw.kind, true
}
