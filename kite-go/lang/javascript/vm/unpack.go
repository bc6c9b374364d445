package vm

import (
	"fmt"
	"strconv"
)

// Unpacked is the decoded form of a Value. It is one of Int32, Undefined,
// Null, Bool, Ptr, ImmStr or Float64.
type Unpacked interface {
	fmt.Stringer
	unpacked()
}

// Int32 is an unpacked integer
type Int32 int32

// Undefined is the unpacked undefined value
type Undefined struct{}

// Null is the unpacked null value
type Null struct{}

// Bool is an unpacked boolean
type Bool bool

// Ptr is an unpacked heap reference
type Ptr HeapAddr

// ImmStr is an unpacked short string
type ImmStr []byte

// Float64 is an unpacked double
type Float64 float64

func (Int32) unpacked()     {}
func (Undefined) unpacked() {}
func (Null) unpacked()      {}
func (Bool) unpacked()      {}
func (Ptr) unpacked()       {}
func (ImmStr) unpacked()    {}
func (Float64) unpacked()   {}

func (i Int32) String() string   { return "int32 " + strconv.Itoa(int(i)) }
func (Undefined) String() string { return "undefined" }
func (Null) String() string      { return "null" }
func (b Bool) String() string    { return "bool " + strconv.FormatBool(bool(b)) }
func (p Ptr) String() string     { return fmt.Sprintf("ptr %#x", uint64(p)) }
func (s ImmStr) String() string  { return "str " + strconv.Quote(string(s)) }
func (f Float64) String() string { return "f64 " + strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Unpack decodes v. It panics on the unused tags 5 and 6, which no
// constructor produces.
func (v Value) Unpack() Unpacked {
	switch tag := v.tag(); {
	case tag == tagImmI32:
		return Int32(v.UncheckedImmI32())
	case tag == tagImmUndefNull:
		if uint32(uint64(v)>>shiftImmUndefNull) == payloadUndef {
			return Undefined{}
		}
		return Null{}
	case tag == tagImmBool:
		return Bool(v.UncheckedImmBool())
	case tag == tagImmStr:
		return ImmStr(v.UncheckedImmStr())
	case tag == tagPtr:
		return Ptr(v.UncheckedPtr())
	case tag >= tagImmF64Min && tag <= tagImmF64Max:
		return Float64(v.UncheckedImmF64())
	default:
		panic(fmt.Sprintf("unexpected value tag %#x", tag))
	}
}
