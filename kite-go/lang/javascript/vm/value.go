// Package vm defines the 64-bit value representation used by the
// interpreter. A Value is either an immediate (a 32-bit integer, undefined,
// null, a boolean, a string of up to 7 bytes or a double in a limited
// exponent range) or a tagged reference to a heap object.
//
// The low four bits hold the tag:
//
//   0000  int32, payload in the high 32 bits
//   0001  undefined (payload 1) or null (payload 2), in the high 32 bits
//   0010  boolean, payload in the high 32 bits
//   0011  short string, length in bits 4-7, byte i in bits 8(i+1)...8(i+1)+7
//   0100  heap reference, address in the remaining bits (16-byte aligned)
//   0111..1111  double
//
// A double is stored by rotating its bits left by 5, which moves the top four
// exponent bits into the low nibble, and adding 7. Only doubles whose nibble
// is at most 8 fit, which is every finite double with magnitude below 2^129.
// Larger values, infinities and NaN must be boxed on the heap.
package vm

import (
	"fmt"
	"math"
	"math/bits"
)

// Value is a tagged 64-bit word.
type Value uint64

// HeapAddr is the address of a heap object. The heap hands out 16-byte
// aligned addresses so the low four bits are free for the tag.
type HeapAddr uint64

const (
	maskTag = 0xF

	tagImmI32       = 0x0
	tagImmUndefNull = 0x1
	tagImmBool      = 0x2
	tagImmStr       = 0x3
	tagPtr          = 0x4
	tagImmF64Min    = 0x7
	tagImmF64Max    = 0xF

	shiftImmI32       = 32
	shiftImmUndefNull = 32
	shiftImmBool      = 32

	payloadUndef = 1
	payloadNull  = 2

	shiftImmStrLength = 4
	maskImmStrLength  = 0xF

	// ImmStrMaxLength is the longest string that fits in a Value.
	ImmStrMaxLength = 7

	f64TagAdjust = 7
	f64Rotate    = 5
	f64MaxNibble = 8
)

// NewImmI32 encodes an integer
func NewImmI32(i int32) Value {
	return Value(uint64(uint32(i))<<shiftImmI32 | tagImmI32)
}

// NewImmUndef encodes undefined
func NewImmUndef() Value {
	return Value(payloadUndef<<shiftImmUndefNull | tagImmUndefNull)
}

// NewImmNull encodes null
func NewImmNull() Value {
	return Value(payloadNull<<shiftImmUndefNull | tagImmUndefNull)
}

// NewImmBool encodes a boolean
func NewImmBool(b bool) Value {
	var payload uint64
	if b {
		payload = 1
	}
	return Value(payload<<shiftImmBool | tagImmBool)
}

// NewImmStr encodes a string of at most ImmStrMaxLength bytes. It panics on
// longer input.
func NewImmStr(s []byte) Value {
	if len(s) > ImmStrMaxLength {
		panic(fmt.Sprintf("immediate string of %d bytes, max is %d", len(s), ImmStrMaxLength))
	}
	v := uint64(tagImmStr) | uint64(len(s))<<shiftImmStrLength
	for i, c := range s {
		v |= uint64(c) << (uint(i+1) * 8)
	}
	return Value(v)
}

// NewPtr encodes a heap reference. It panics if addr is not 16-byte aligned.
func NewPtr(addr HeapAddr) Value {
	if addr&maskTag != 0 {
		panic(fmt.Sprintf("heap address %#x is not 16-byte aligned", uint64(addr)))
	}
	return Value(uint64(addr) | tagPtr)
}

// CanEncodeImmF64 reports whether f can be stored as an immediate.
func CanEncodeImmF64(f float64) bool {
	rot := bits.RotateLeft64(math.Float64bits(f), f64Rotate)
	return rot&maskTag <= f64MaxNibble
}

// TryNewImmF64 encodes f if it fits in an immediate.
func TryNewImmF64(f float64) (Value, bool) {
	rot := bits.RotateLeft64(math.Float64bits(f), f64Rotate)
	if rot&maskTag > f64MaxNibble {
		return 0, false
	}
	return Value(rot + f64TagAdjust), true
}

// NewImmF64 encodes f. It panics if CanEncodeImmF64(f) is false.
func NewImmF64(f float64) Value {
	v, ok := TryNewImmF64(f)
	if !ok {
		panic(fmt.Sprintf("%g cannot be stored as an immediate", f))
	}
	return v
}

func (v Value) tag() uint64 {
	return uint64(v) & maskTag
}

// IsImmI32 reports whether v holds an integer.
func (v Value) IsImmI32() bool { return v.tag() == tagImmI32 }

// IsImmUndefNull reports whether v is undefined or null.
func (v Value) IsImmUndefNull() bool { return v.tag() == tagImmUndefNull }

// IsImmUndef reports whether v is undefined.
func (v Value) IsImmUndef() bool { return v == NewImmUndef() }

// IsImmNull reports whether v is null.
func (v Value) IsImmNull() bool { return v == NewImmNull() }

// IsImmBool reports whether v holds a boolean.
func (v Value) IsImmBool() bool { return v.tag() == tagImmBool }

// IsImmTrue reports whether v is true.
func (v Value) IsImmTrue() bool { return v == NewImmBool(true) }

// IsImmFalse reports whether v is false.
func (v Value) IsImmFalse() bool { return v == NewImmBool(false) }

// IsImmStr reports whether v holds a short string.
func (v Value) IsImmStr() bool { return v.tag() == tagImmStr }

// IsPtr reports whether v is a heap reference.
func (v Value) IsPtr() bool { return v.tag() == tagPtr }

// IsImmF64 reports whether v holds a double.
func (v Value) IsImmF64() bool { return v.tag() >= tagImmF64Min }

// The Unchecked accessors decode the payload without looking at the tag.
// The result is meaningless if the matching predicate is false.

// UncheckedImmI32 decodes an integer
func (v Value) UncheckedImmI32() int32 {
	return int32(uint64(v) >> shiftImmI32)
}

// UncheckedImmBool decodes a boolean
func (v Value) UncheckedImmBool() bool {
	return uint64(v)>>shiftImmBool != 0
}

// UncheckedImmStrLen decodes the length of a short string
func (v Value) UncheckedImmStrLen() int {
	return int(uint64(v)>>shiftImmStrLength) & maskImmStrLength
}

// UncheckedImmStrByte decodes byte i of a short string
func (v Value) UncheckedImmStrByte(i int) byte {
	return byte(uint64(v) >> (uint(i+1) * 8))
}

// UncheckedImmStr decodes a short string
func (v Value) UncheckedImmStr() []byte {
	n := v.UncheckedImmStrLen()
	out := make([]byte, n)
	for i := range out {
		out[i] = v.UncheckedImmStrByte(i)
	}
	return out
}

// UncheckedPtr decodes a heap reference
func (v Value) UncheckedPtr() HeapAddr {
	return HeapAddr(uint64(v) &^ maskTag)
}

// UncheckedImmF64 decodes a double
func (v Value) UncheckedImmF64() float64 {
	return math.Float64frombits(bits.RotateLeft64(uint64(v)-f64TagAdjust, -f64Rotate))
}

// ImmI32 returns the integer held by v, if any.
func (v Value) ImmI32() (int32, bool) {
	if !v.IsImmI32() {
		return 0, false
	}
	return v.UncheckedImmI32(), true
}

// ImmBool returns the boolean held by v, if any.
func (v Value) ImmBool() (bool, bool) {
	if !v.IsImmBool() {
		return false, false
	}
	return v.UncheckedImmBool(), true
}

// ImmStr returns the short string held by v, if any.
func (v Value) ImmStr() ([]byte, bool) {
	if !v.IsImmStr() {
		return nil, false
	}
	return v.UncheckedImmStr(), true
}

// Ptr returns the heap address held by v, if any.
func (v Value) Ptr() (HeapAddr, bool) {
	if !v.IsPtr() {
		return 0, false
	}
	return v.UncheckedPtr(), true
}

// ImmF64 returns the double held by v, if any.
func (v Value) ImmF64() (float64, bool) {
	if !v.IsImmF64() {
		return 0, false
	}
	return v.UncheckedImmF64(), true
}

// String gets a debug representation of the value
func (v Value) String() string {
	return fmt.Sprintf("%#016x(%s)", uint64(v), v.Unpack())
}
