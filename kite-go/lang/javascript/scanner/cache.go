package scanner

import (
	"bytes"
	"sync"

	spooky "github.com/dgryski/go-spooky"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultLexCacheSize is the number of lexed buffers kept by LexCached.
const DefaultLexCacheSize = 256

var (
	cacheLock sync.Mutex
	lexCache  *lru.Cache
)

type lexKey struct {
	hash uint64
	opts LexOptions
}

type lexEntry struct {
	src  []byte
	toks []Token
	err  error
}

// SetLexCacheSize replaces the lex cache with an empty one holding up to size entries.
func SetLexCacheSize(size int) error {
	cache, err := lru.New(size)
	if err != nil {
		return err
	}
	cacheLock.Lock()
	defer cacheLock.Unlock()
	lexCache = cache
	return nil
}

// PurgeLexCache empties the lex cache
func PurgeLexCache() {
	cacheLock.Lock()
	defer cacheLock.Unlock()
	if lexCache != nil {
		lexCache.Purge()
	}
}

// LexCached is Lex with results memoized by content hash. An entry is only
// used if its source matches buf byte for byte. The returned slice is a copy
// owned by the caller.
func LexCached(buf []byte, opts LexOptions) ([]Token, error) {
	key := lexKey{hash: hashContents(buf), opts: opts}

	cache := getLexCache()
	if v, ok := cache.Get(key); ok {
		if entry := v.(*lexEntry); bytes.Equal(entry.src, buf) {
			cacheHits.Hit()
			return copyTokens(entry.toks), entry.err
		}
	}
	cacheHits.Miss()

	toks, err := Lex(buf, opts)
	cache.Add(key, &lexEntry{
		src:  append([]byte(nil), buf...),
		toks: copyTokens(toks),
		err:  err,
	})
	return toks, err
}

func getLexCache() *lru.Cache {
	cacheLock.Lock()
	defer cacheLock.Unlock()
	if lexCache == nil {
		// lru.New only fails for non-positive sizes
		lexCache, _ = lru.New(DefaultLexCacheSize)
	}
	return lexCache
}

func copyTokens(toks []Token) []Token {
	if toks == nil {
		return nil
	}
	out := make([]Token, len(toks))
	copy(out, toks)
	return out
}

var hashContents = spooky.Hash64
