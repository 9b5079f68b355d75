package hal

import (
	"fmt"
	"strconv"
)

// ObjectID is the opaque handle the HAL hands out for every audio entity.
// It is only ever passed back to the OS, never dereferenced here.
type ObjectID uint32

const (
	// UnknownObjectID is the reserved "no such object" sentinel.
	UnknownObjectID ObjectID = 0
	// SystemObjectID names the one distinguished system object.
	SystemObjectID ObjectID = 1
)

// FourCC packs a four-character code the way the HAL spells all of its
// selectors, scopes and class tags.
func FourCC(code string) uint32 {
	if len(code) != 4 {
		panic("hal: four-char code must be exactly 4 bytes: " + strconv.Quote(code))
	}
	return uint32(code[0])<<24 | uint32(code[1])<<16 | uint32(code[2])<<8 | uint32(code[3])
}

func fourCCString(v uint32) string {
	b := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("0x%08X", v)
		}
	}
	return "'" + string(b[:]) + "'"
}

// Selector identifies which property of an object is being addressed.
type Selector uint32

func (s Selector) String() string { return fourCCString(uint32(s)) }

// Scope partitions a device's properties into its global, input, output
// and play-through sections.
type Scope uint32

const (
	ScopeGlobal      Scope = 0x676c6f62 // 'glob'
	ScopeInput       Scope = 0x696e7074 // 'inpt'
	ScopeOutput      Scope = 0x6f757470 // 'outp'
	ScopePlayThrough Scope = 0x70747275 // 'ptru'
	ScopeWildcard    Scope = 0x2a2a2a2a // '****'
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeInput:
		return "input"
	case ScopeOutput:
		return "output"
	case ScopePlayThrough:
		return "playThrough"
	case ScopeWildcard:
		return "wildcard"
	}
	return fourCCString(uint32(s))
}

// Element indexes a channel or sub-unit within a scope. ElementMain is the
// whole-scope aggregate.
type Element uint32

const (
	ElementMain     Element = 0
	ElementWildcard Element = 0xFFFFFFFF
)

// PropertyAddress is the (selector, scope, element) triple that names one
// readable/writable/observable property of an object. It is a plain value:
// two addresses are equal exactly when all three fields are equal, which
// also makes it usable as a map key. There is no wildcard-congruence
// matching; a wildcard field only ever compares equal to itself.
type PropertyAddress struct {
	Selector Selector
	Scope    Scope
	Element  Element
}

// Addr builds a global/main address for a selector, the overwhelmingly
// common case.
func Addr(sel Selector) PropertyAddress {
	return PropertyAddress{Selector: sel, Scope: ScopeGlobal, Element: ElementMain}
}

// AddrIn builds an address with explicit scope and element.
func AddrIn(sel Selector, scope Scope, element Element) PropertyAddress {
	return PropertyAddress{Selector: sel, Scope: scope, Element: element}
}

func (a PropertyAddress) String() string {
	return fmt.Sprintf("%s/%s/%d", a.Selector, a.Scope, uint32(a.Element))
}
