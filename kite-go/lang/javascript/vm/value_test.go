package vm

import (
	"math"
	"testing"

	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
	"github.com/kiteco/oxyjs/kite-golib/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmI32(t *testing.T) {
	for _, i := range []int32{0, 1, -1, 42, math.MaxInt32, math.MinInt32} {
		v := NewImmI32(i)
		assert.True(t, v.IsImmI32(), "%d", i)
		assert.False(t, v.IsImmF64(), "%d", i)
		assert.Equal(t, i, v.UncheckedImmI32())

		got, ok := v.ImmI32()
		assert.True(t, ok)
		assert.Equal(t, i, got)
		assert.Equal(t, Int32(i), v.Unpack())
	}
}

func TestUndefNull(t *testing.T) {
	undef, null := NewImmUndef(), NewImmNull()

	assert.True(t, undef.IsImmUndefNull())
	assert.True(t, undef.IsImmUndef())
	assert.False(t, undef.IsImmNull())
	assert.True(t, null.IsImmUndefNull())
	assert.True(t, null.IsImmNull())
	assert.False(t, null.IsImmUndef())

	assert.Equal(t, Undefined{}, undef.Unpack())
	assert.Equal(t, Null{}, null.Unpack())
}

func TestImmBool(t *testing.T) {
	tru, fls := NewImmBool(true), NewImmBool(false)
	assert.True(t, tru.IsImmBool())
	assert.True(t, tru.IsImmTrue())
	assert.False(t, tru.IsImmFalse())
	assert.True(t, fls.IsImmFalse())
	assert.NotEqual(t, tru, fls)

	b, ok := tru.ImmBool()
	assert.True(t, ok)
	assert.True(t, b)
	assert.Equal(t, Bool(false), fls.Unpack())

	_, ok = NewImmI32(1).ImmBool()
	assert.False(t, ok)
}

func TestImmStr(t *testing.T) {
	for _, s := range []string{"", "a", "abc", "abcdefg", "\x00\xff"} {
		v := NewImmStr([]byte(s))
		assert.True(t, v.IsImmStr(), "%q", s)
		assert.Equal(t, len(s), v.UncheckedImmStrLen())
		assert.Equal(t, []byte(s), v.UncheckedImmStr())
		for i := range s {
			assert.Equal(t, s[i], v.UncheckedImmStrByte(i))
		}
		assert.Equal(t, ImmStr(s), v.Unpack())
	}

	assert.Equal(t, Value(tagImmStr), NewImmStr(nil))
	assert.Panics(t, func() { NewImmStr([]byte("abcdefgh")) })
}

func TestPtr(t *testing.T) {
	for _, addr := range []HeapAddr{0, 0x10, 0x7fff0000, 0xfffffffffffffff0} {
		v := NewPtr(addr)
		assert.True(t, v.IsPtr())
		assert.False(t, v.IsImmI32())
		assert.Equal(t, addr, v.UncheckedPtr())

		got, ok := v.Ptr()
		assert.True(t, ok)
		assert.Equal(t, addr, got)
		assert.Equal(t, Ptr(addr), v.Unpack())
	}

	assert.Panics(t, func() { NewPtr(0x1008) })
	assert.Panics(t, func() { NewPtr(1) })
}

func TestImmF64(t *testing.T) {
	encodable := []float64{
		0, 1, -1, 1.5, -2.25, 1e10, 1e-300,
		math.Pi, math.SmallestNonzeroFloat64,
		math.Ldexp(1, 128), -math.Ldexp(1, 128),
		math.Nextafter(math.Ldexp(1, 129), 0),
	}
	for _, f := range encodable {
		require.True(t, CanEncodeImmF64(f), "%g", f)
		v := NewImmF64(f)
		assert.True(t, v.IsImmF64(), "%g", f)
		assert.False(t, v.IsImmI32(), "%g", f)
		assert.False(t, v.IsPtr(), "%g", f)
		assert.Equal(t, math.Float64bits(f), math.Float64bits(v.UncheckedImmF64()), "%g", f)
		assert.Equal(t, Float64(f), v.Unpack())
	}

	negZero := NewImmF64(math.Copysign(0, -1))
	assert.True(t, math.Signbit(negZero.UncheckedImmF64()))

	notEncodable := []float64{
		math.Ldexp(1, 129), -math.Ldexp(1, 129), 1e300,
		math.MaxFloat64, math.Inf(1), math.Inf(-1), math.NaN(),
	}
	for _, f := range notEncodable {
		assert.False(t, CanEncodeImmF64(f), "%g", f)
		_, ok := TryNewImmF64(f)
		assert.False(t, ok, "%g", f)
		assert.Panics(t, func() { NewImmF64(f) }, "%g", f)
	}
}

func TestTagsAreDisjoint(t *testing.T) {
	values := []Value{
		NewImmI32(7), NewImmUndef(), NewImmNull(), NewImmBool(true),
		NewImmStr([]byte("x")), NewPtr(0x40), NewImmF64(7),
	}
	for i, v := range values {
		preds := []bool{
			v.IsImmI32(), v.IsImmUndefNull(), v.IsImmBool(),
			v.IsImmStr(), v.IsPtr(), v.IsImmF64(),
		}
		var n int
		for _, p := range preds {
			if p {
				n++
			}
		}
		assert.Equal(t, 1, n, "value %d: %s", i, v)
	}
}

func TestCheckedAccessorsRejectOtherTags(t *testing.T) {
	v := NewImmF64(2.5)
	_, ok := v.ImmI32()
	assert.False(t, ok)
	_, ok = v.ImmStr()
	assert.False(t, ok)
	_, ok = v.Ptr()
	assert.False(t, ok)

	_, ok = NewImmI32(3).ImmF64()
	assert.False(t, ok)
}

func TestUnpackUnusedTags(t *testing.T) {
	assert.Panics(t, func() { Value(5).Unpack() })
	assert.Panics(t, func() { Value(0x1236).Unpack() })
}

func TestString(t *testing.T) {
	assert.Contains(t, NewImmI32(-3).String(), "int32 -3")
	assert.Contains(t, NewImmStr([]byte("hi")).String(), `str "hi"`)
	assert.Contains(t, NewImmF64(0.5).String(), "f64 0.5")
	assert.Contains(t, NewImmUndef().String(), "undefined")
}

func literal(t *testing.T, src string) (Value, error) {
	toks, err := scanner.Lex([]byte(src), scanner.LexOptions{})
	require.NoError(t, err, src)
	require.Len(t, toks, 2, src)
	return LiteralValue(toks[0], []byte(src))
}

func TestLiteralValue(t *testing.T) {
	ints := map[string]int32{
		"0":          0,
		"42":         42,
		"0x1F":       31,
		"0XfF":       255,
		"017":        15,
		"00":         0,
		"2147483647": math.MaxInt32,
	}
	for src, expected := range ints {
		v, err := literal(t, src)
		require.NoError(t, err, src)
		got, ok := v.ImmI32()
		require.True(t, ok, "%s: %s", src, v)
		assert.Equal(t, expected, got, src)
	}

	floats := map[string]float64{
		"2147483648":          2147483648,
		"0xFFFFFFFF":          4294967295,
		"1.5":                 1.5,
		"1.":                  1,
		"0.25":                0.25,
		"1e3":                 1000,
		"2E-2":                0.02,
		"0x10000000000000000": math.Ldexp(1, 64),
	}
	for src, expected := range floats {
		v, err := literal(t, src)
		require.NoError(t, err, src)
		got, ok := v.ImmF64()
		require.True(t, ok, "%s: %s", src, v)
		assert.Equal(t, expected, got, src)
	}
}

func TestLiteralValue_Overflow(t *testing.T) {
	v, err := literal(t, "99999999999999999999")
	require.NoError(t, err)
	got, ok := v.ImmF64()
	require.True(t, ok)
	assert.InEpsilon(t, 1e20, got, 1e-12)
}

func TestLiteralValue_NotImmediate(t *testing.T) {
	for _, src := range []string{"1e300", "1e400", "1e39"} {
		_, err := literal(t, src)
		require.Error(t, err, src)
		assert.Equal(t, ErrNotImmediate, errors.Cause(err), src)
	}
}

func TestLiteralValue_NotLiteral(t *testing.T) {
	_, err := literal(t, "foo")
	assert.Error(t, err)
}
