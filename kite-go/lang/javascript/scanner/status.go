package scanner

import "github.com/kiteco/oxyjs/kite-golib/status"

var (
	section   = status.NewSection("lang/javascript (scanner)")
	lexErrors = section.Ratio("Lex errors")
	cacheHits = section.Ratio("Lex cache hits")
)
