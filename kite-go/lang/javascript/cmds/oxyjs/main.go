package main

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/kiteco/oxyjs/kite-go/lang/javascript/parser"
	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
	"github.com/kiteco/oxyjs/kite-golib/cmdline"
	"github.com/kiteco/oxyjs/kite-golib/envutil"
	"github.com/kiteco/oxyjs/kite-golib/errors"
	"github.com/kiteco/oxyjs/kite-golib/linenumber"
)

func main() {
	cmdline.MustDispatch(
		cmdline.Command{
			Name:     "parse",
			Synopsis: "parse a file and print its syntax tree",
			Args: &parseArgs{
				Repeat:   1,
				Print:    true,
				Trace:    envutil.GetenvDefaultBool("OXYJS_TRACE", false),
				MaxDepth: parser.DefaultOptions.MaxDepth,
			},
		},
		cmdline.Command{
			Name:     "tokens",
			Synopsis: "list the tokens of one or more files",
			Args: &tokensArgs{
				CacheSize: envutil.GetenvDefaultInt("OXYJS_LEX_CACHE_SIZE", scanner.DefaultLexCacheSize),
			},
		},
		cmdline.Command{
			Name:     "box",
			Synopsis: "show the value encoding of literals",
			Args:     &boxArgs{},
		},
	)
}

// readSource reads path, or stdin if path is empty or "-". It returns the
// name to use in diagnostics.
func readSource(path string) ([]byte, string, error) {
	if path == "" || path == "-" {
		src, err := ioutil.ReadAll(os.Stdin)
		return src, "<stdin>", errors.WrapfOrNil(err, "error reading stdin")
	}
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "error reading %s", path)
	}
	return src, filepath.Base(path), nil
}

// locate prefixes a scanner or parser error with name:line:col.
func locate(name string, src []byte, err error) error {
	var pos scanner.StreamPosition
	switch e := errors.Cause(err).(type) {
	case *parser.ParseError:
		pos = e.Position()
	case *scanner.TokenError:
		pos = e.Location.Start
	default:
		return errors.Wrapf(err, "%s", name)
	}
	line, col := linenumber.NewMap(src).Position(int(pos))
	return errors.Wrapf(err, "%s:%d:%d", name, line, col)
}
