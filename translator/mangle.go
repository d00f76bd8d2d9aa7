package translator

import (
	"fmt"

	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/mangler"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// signHint overrides the signedness the mangler sees for one argument
// (spec.md §4.3's "signedness overrides"). Nil means "as declared".
type signHint struct {
	signed bool
}

var (
	forceSigned   = &signHint{signed: true}
	forceUnsigned = &signHint{signed: false}
)

// argTypeOf maps an IR type onto the mangler's argument vocabulary.
func (t *Translator) argTypeOf(ty llir.TypeHandle, hint *signHint, volatileQual bool) mangler.ArgType {
	switch inner := t.builder.Type(ty).Inner.(type) {
	case llir.IntType:
		if inner.Width == 1 {
			return mangler.Bool()
		}
		signed := inner.Signed
		if hint != nil {
			signed = hint.signed
		}
		return mangler.Int(inner.Width, signed)
	case llir.FloatType:
		return mangler.Float(inner.Width)
	case llir.VectorType:
		elem := t.argTypeOf(inner.Elem, hint, false)
		return mangler.Vector(elem.Kind, elem.Width, inner.Count)
	case llir.PointerType:
		pointee := t.argTypeOf(inner.Pointee, hint, false)
		return mangler.Pointer(pointee, mangler.AddressSpace(inner.AddressSpace), false, volatileQual)
	default:
		return mangler.ArgType{Kind: mangler.KindVoid}
	}
}

// callBuiltin emits a call to an external builtin, mangling the symbol
// from the base name and the supplied argument shapes.
func (t *Translator) callBuiltin(resTy llir.TypeHandle, hasResult bool, base string, argTypes []mangler.ArgType, args []llir.ValueHandle, attrs ...llir.CallAttr) (llir.ValueHandle, error) {
	return t.appendInst(llir.Instruction{
		Op:        llir.OpCall,
		HasResult: hasResult,
		Type:      resTy,
		Callee:    t.mangler.Mangle(base, argTypes),
		Operands:  args,
		CallAttrs: attrs,
	})
}

// callBuiltinUnmangled is for the __mux_* namespace, whose barrier entry
// points are not Itanium-mangled.
func (t *Translator) callBuiltinUnmangled(resTy llir.TypeHandle, hasResult bool, symbol string, args []llir.ValueHandle, attrs ...llir.CallAttr) (llir.ValueHandle, error) {
	return t.appendInst(llir.Instruction{
		Op:        llir.OpCall,
		HasResult: hasResult,
		Type:      resTy,
		Callee:    symbol,
		Operands:  args,
		CallAttrs: attrs,
	})
}

// muxTypeSuffix renders the "_<ty>" suffix of a __mux_sub_group_shuffle
// builtin from the shuffled value's IR type (spec.md §4.1.8).
func (t *Translator) muxTypeSuffix(ty llir.TypeHandle) string {
	switch inner := t.builder.Type(ty).Inner.(type) {
	case llir.IntType:
		return fmt.Sprintf("i%d", inner.Width)
	case llir.FloatType:
		return fmt.Sprintf("f%d", inner.Width)
	case llir.VectorType:
		return fmt.Sprintf("v%d%s", inner.Count, t.muxTypeSuffix(inner.Elem))
	default:
		return "i32"
	}
}

// openclTypeName renders an IR type as the OpenCL C spelling used both
// by kernel_arg_type metadata and the convert_<type> builtin family.
func (t *Translator) openclTypeName(ty llir.TypeHandle) string {
	switch inner := t.builder.Type(ty).Inner.(type) {
	case llir.VoidType:
		return "void"
	case llir.IntType:
		return openclIntName(inner.Width, inner.Signed)
	case llir.FloatType:
		switch inner.Width {
		case 16:
			return "half"
		case 64:
			return "double"
		default:
			return "float"
		}
	case llir.VectorType:
		return fmt.Sprintf("%s%d", t.openclTypeName(inner.Elem), inner.Count)
	default:
		return "void"
	}
}

func openclIntName(width uint8, signed bool) string {
	var base string
	switch width {
	case 1:
		return "bool"
	case 8:
		base = "char"
	case 16:
		base = "short"
	case 32:
		base = "int"
	case 64:
		base = "long"
	default:
		base = "int"
	}
	if !signed {
		return "u" + base
	}
	return base
}

// signHintFromResult derives the signedness override builtin mangling
// takes from an operation's SPIR-V result type (spec.md §4.1.8:
// "signedness hints derived from the result type").
func (t *Translator) signHintFromResult(tyID spirv.SpvId) *signHint {
	b, ok := t.state.lookup(tyID)
	if !ok || !b.HasType {
		return nil
	}
	elem, _ := t.scalarOf(b.Type)
	if it, isInt := t.builder.Type(elem).Inner.(llir.IntType); isInt {
		if it.Signed {
			return forceSigned
		}
		return forceUnsigned
	}
	return nil
}
