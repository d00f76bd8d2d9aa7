package mangler

import (
	"fmt"
	"strconv"
)

// Mangler is the facade the translator calls to resolve a builtin call
// to a linkage symbol (spec.md §4.3). A second implementation (e.g. one
// that special-cases a vendor's builtin library naming quirks) can
// satisfy this interface without the dispatch core changing.
type Mangler interface {
	Mangle(base string, args []ArgType) string
}

type itaniumMangler struct{}

// New returns the Itanium-grammar Mangler every caller in this module
// uses.
func New() Mangler { return itaniumMangler{} }

func (itaniumMangler) Mangle(base string, args []ArgType) string {
	out := "_Z" + strconv.Itoa(len(base)) + base
	if len(args) == 0 {
		return out + "v"
	}
	for _, a := range args {
		out += encodeType(a)
	}
	return out
}

func encodeType(t ArgType) string {
	switch t.Kind {
	case KindVoid:
		return "v"
	case KindBool:
		return "b"
	case KindInt:
		return encodeInt(t.Width, t.Signed)
	case KindFloat:
		return encodeFloat(t.Width)
	case KindVector:
		elem := encodeType(ArgType{Kind: t.ElemKind, Width: t.Width, Signed: true})
		return fmt.Sprintf("Dv%d_%s", t.ElemCount, elem)
	case KindPointer:
		return encodePointer(t)
	default:
		return "v"
	}
}

func encodeInt(width uint8, signed bool) string {
	switch width {
	case 1:
		return "b"
	case 8:
		if signed {
			return "a"
		}
		return "h"
	case 16:
		if signed {
			return "s"
		}
		return "t"
	case 32:
		if signed {
			return "i"
		}
		return "j"
	case 64:
		if signed {
			return "l"
		}
		return "m"
	default:
		return fmt.Sprintf("u%di%d", width, width) // vendor-extended-type fallback for an odd width
	}
}

func encodeFloat(width uint8) string {
	switch width {
	case 16:
		return "Dh"
	case 32:
		return "f"
	case 64:
		return "d"
	default:
		return fmt.Sprintf("u%df%d", width, width)
	}
}

// addrSpaceName maps an OpenCL address space to the vendor qualifier
// name clang itself mangles pointers with ("AS0".."AS4").
func addrSpaceName(as AddressSpace) string {
	return "AS" + strconv.Itoa(int(as))
}

func encodePointer(t ArgType) string {
	out := "P"
	asName := addrSpaceName(t.AddrSpace)
	out += "U" + strconv.Itoa(len(asName)) + asName
	if t.Const {
		out += "K"
	}
	if t.Volatile {
		out += "V"
	}
	if t.Pointee != nil {
		out += encodeType(*t.Pointee)
	} else {
		out += "v"
	}
	return out
}
