package vm

import (
	"math"
	"strconv"

	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
	"github.com/kiteco/oxyjs/kite-golib/errors"
)

// ErrNotImmediate is returned when a literal's value has no immediate encoding
// and would need a heap box.
var ErrNotImmediate = errors.New("value cannot be stored as an immediate")

// LiteralValue converts a numeric literal token to a Value. Integer literals
// that fit in 32 bits become integers; everything else becomes a double.
func LiteralValue(tok scanner.Token, src []byte) (Value, error) {
	text := string(tok.Text(src))

	var f float64
	switch tok.Kind {
	case scanner.IntegerLiteral:
		f = radixValue(text, 10)
	case scanner.HexIntegerLiteral:
		f = radixValue(text[2:], 16)
	case scanner.OctIntegerLiteral:
		f = radixValue(text[1:], 8)
	case scanner.FloatLiteral:
		var err error
		f, err = strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, errors.Wrapf(err, "bad float literal %q", text)
		}
		return floatValue(f, text)
	default:
		return 0, errors.Errorf("%s is not a numeric literal", tok.Kind)
	}

	if f <= math.MaxInt32 {
		return NewImmI32(int32(f)), nil
	}
	return floatValue(f, text)
}

func floatValue(f float64, text string) (Value, error) {
	v, ok := TryNewImmF64(f)
	if !ok {
		return 0, errors.Wrapf(ErrNotImmediate, "literal %s", text)
	}
	return v, nil
}

// radixValue converts digits already validated by the tokenizer. Values past
// 2^53 round the way repeated multiply-add does.
func radixValue(digits string, base int) float64 {
	if n, err := strconv.ParseUint(digits, base, 64); err == nil {
		return float64(n)
	}
	var f float64
	for i := 0; i < len(digits); i++ {
		d, _ := strconv.ParseUint(digits[i:i+1], base, 8)
		f = f*float64(base) + float64(d)
	}
	return f
}
