package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
	"github.com/kiteco/oxyjs/kite-go/lang/javascript/vm"
	"github.com/kiteco/oxyjs/kite-golib/errors"
)

type boxArgs struct {
	Literals []string `arg:"positional,required" help:"numbers, quoted strings, true, false, null or undefined"`
}

func (a *boxArgs) Handle() error {
	for _, lit := range a.Literals {
		v, err := box(lit)
		if err != nil {
			return errors.Wrapf(err, "cannot box %s", lit)
		}
		fmt.Printf("%-24s %s\n", lit, v)
	}
	return nil
}

// box encodes a literal as an immediate Value.
func box(lit string) (vm.Value, error) {
	switch lit {
	case "true":
		return vm.NewImmBool(true), nil
	case "false":
		return vm.NewImmBool(false), nil
	case "null":
		return vm.NewImmNull(), nil
	case "undefined":
		return vm.NewImmUndef(), nil
	}

	if len(lit) >= 2 && (lit[0] == '"' || lit[0] == '\'') && lit[len(lit)-1] == lit[0] {
		s := lit[1 : len(lit)-1]
		if lit[0] == '"' {
			unquoted, err := strconv.Unquote(lit)
			if err != nil {
				return 0, errors.Wrapf(err, "bad string literal")
			}
			s = unquoted
		}
		if len(s) > vm.ImmStrMaxLength {
			return 0, errors.Errorf("string of %d bytes is longer than %d", len(s), vm.ImmStrMaxLength)
		}
		return vm.NewImmStr([]byte(s)), nil
	}

	negative := strings.HasPrefix(lit, "-")
	src := []byte(strings.TrimPrefix(lit, "-"))
	toks, err := scanner.Lex(src, scanner.LexOptions{})
	if err != nil {
		return 0, err
	}
	if len(toks) != 2 || !toks[0].Kind.IsLiteral() {
		return 0, errors.New("not a literal")
	}
	v, err := vm.LiteralValue(toks[0], src)
	if err != nil || !negative {
		return v, err
	}
	return negate(v)
}

func negate(v vm.Value) (vm.Value, error) {
	var f float64
	switch u := v.Unpack().(type) {
	case vm.Int32:
		if u != 0 {
			return vm.NewImmI32(-int32(u)), nil
		}
	case vm.Float64:
		f = float64(u)
		if f == math.Ldexp(1, 31) {
			return vm.NewImmI32(math.MinInt32), nil
		}
	}
	nv, ok := vm.TryNewImmF64(-f)
	if !ok {
		return 0, vm.ErrNotImmediate
	}
	return nv, nil
}
