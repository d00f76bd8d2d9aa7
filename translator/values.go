package translator

import (
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// Binding helpers. Every result id a family translator produces goes
// through one of these so the id_table entry always carries the
// originating record plus the kind-appropriate handle (spec.md §3).

func (t *Translator) bindType(rec spirv.OpcodeRecord, id spirv.SpvId, ty llir.TypeHandle) {
	t.state.bind(id, &binding{Op: rec.Op, Rec: rec, Type: ty, HasType: true})
}

func (t *Translator) bindValue(rec spirv.OpcodeRecord, tyID, id spirv.SpvId, val llir.ValueHandle) {
	ty, _ := t.state.requireType(tyID)
	t.state.bind(id, &binding{Op: rec.Op, Rec: rec, TypeID: tyID, ValueType: ty, Value: val, HasValue: true})
}

// bindTypedValue is bindValue for values whose IR type is known directly
// rather than through a SPIR-V type id (allocas, synthesized casts).
func (t *Translator) bindTypedValue(rec spirv.OpcodeRecord, tyID spirv.SpvId, ty llir.TypeHandle, id spirv.SpvId, val llir.ValueHandle) {
	t.state.bind(id, &binding{Op: rec.Op, Rec: rec, TypeID: tyID, ValueType: ty, Value: val, HasValue: true})
}

func (t *Translator) bindConst(rec spirv.OpcodeRecord, tyID, id spirv.SpvId, c llir.ConstHandle) {
	ty, _ := t.state.requireType(tyID)
	t.state.bind(id, &binding{Op: rec.Op, Rec: rec, TypeID: tyID, ValueType: ty, Const: c, HasConst: true})
}

func (t *Translator) bindGlobal(rec spirv.OpcodeRecord, tyID, id spirv.SpvId, g llir.GlobalHandle) {
	ty, _ := t.state.requireType(tyID)
	t.state.bind(id, &binding{Op: rec.Op, Rec: rec, TypeID: tyID, ValueType: ty, Global: g, HasGlobal: true})
}

func (t *Translator) bindFunc(rec spirv.OpcodeRecord, id spirv.SpvId, fn llir.FuncHandle, pending bool) {
	t.state.bind(id, &binding{Op: rec.Op, Rec: rec, Func: fn, HasFunc: true, Pending: pending})
}

// bindMarker records an id produced by a recognized opcode that emits no
// IR (OpTypeSampledImage, OpGenericPtrMemSemantics, the matrix family).
func (t *Translator) bindMarker(rec spirv.OpcodeRecord, id spirv.SpvId) {
	t.state.bind(id, &binding{Op: rec.Op, Rec: rec})
}

// value resolves an operand id to an SSA value, whichever arena backs it.
func (t *Translator) value(id spirv.SpvId) (llir.ValueHandle, error) {
	b, ok := t.state.lookup(id)
	if !ok {
		return 0, spirv.NewErrorId(spirv.MalformedInstruction, 0, id, "undefined id")
	}
	switch {
	case b.HasValue:
		return b.Value, nil
	case b.HasConst:
		return llir.ConstValue(b.Const), nil
	case b.HasGlobal:
		return llir.GlobalValue(b.Global), nil
	default:
		return 0, spirv.NewErrorId(spirv.MalformedInstruction, 0, id, "id does not resolve to a value")
	}
}

// valueType resolves the IR type an operand value carries.
func (t *Translator) valueType(id spirv.SpvId) (llir.TypeHandle, error) {
	b, ok := t.state.lookup(id)
	if !ok {
		return 0, spirv.NewErrorId(spirv.MalformedInstruction, 0, id, "undefined id")
	}
	if b.HasConst {
		return t.builder.Const(b.Const).Type, nil
	}
	if b.HasValue || b.HasGlobal {
		return b.ValueType, nil
	}
	return 0, spirv.NewErrorId(spirv.MalformedInstruction, 0, id, "id carries no typed value")
}

// constOf reports the constant behind an operand id, when there is one.
func (t *Translator) constOf(id spirv.SpvId) (llir.ConstHandle, bool) {
	b, ok := t.state.lookup(id)
	if !ok || !b.HasConst {
		return 0, false
	}
	return b.Const, true
}

// intConstValue unwraps an integer (or bool) constant's numeric value,
// looking through the spec-constant wrapper.
func (t *Translator) intConstValue(id spirv.SpvId) (uint64, bool) {
	c, ok := t.constOf(id)
	if !ok {
		return 0, false
	}
	return constIntBits(t.builder.Const(c).Value)
}

func constIntBits(v llir.ConstPayload) (uint64, bool) {
	switch cv := v.(type) {
	case llir.IntConst:
		return cv.Bits, true
	case llir.BoolConst:
		if cv.Value {
			return 1, true
		}
		return 0, true
	case llir.SpecConst:
		return constIntBits(cv.Inner)
	default:
		return 0, false
	}
}

// values resolves a run of operand ids starting at word index from.
func (t *Translator) values(rec spirv.OpcodeRecord, from int) ([]llir.ValueHandle, error) {
	out := make([]llir.ValueHandle, 0, rec.Len()-from)
	for i := from; i < rec.Len(); i++ {
		v, err := t.value(rec.Id(i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// typeRecord returns the originating record of a type id, used when a
// consumer needs operand details the IR type dropped (image access
// qualifiers, kernel argument type naming).
func (t *Translator) typeRecord(id spirv.SpvId) (spirv.OpcodeRecord, bool) {
	b, ok := t.state.lookup(id)
	if !ok {
		return spirv.OpcodeRecord{}, false
	}
	return b.Rec, true
}

// pointeeOf unwraps a pointer IR type.
func (t *Translator) pointeeOf(ptr llir.TypeHandle) (llir.TypeHandle, llir.AddressSpace, bool) {
	if p, ok := t.builder.Type(ptr).Inner.(llir.PointerType); ok {
		return p.Pointee, p.AddressSpace, true
	}
	return 0, 0, false
}

// scalarOf strips one level of vector, returning the element type and
// lane count (count 0 for scalars).
func (t *Translator) scalarOf(ty llir.TypeHandle) (llir.TypeHandle, uint32) {
	if v, ok := t.builder.Type(ty).Inner.(llir.VectorType); ok {
		return v.Elem, v.Count
	}
	return ty, 0
}

// intWidth returns an integer type's bit width (vectors report their
// element width); ok is false for non-integer types.
func (t *Translator) intWidth(ty llir.TypeHandle) (uint8, bool) {
	elem, _ := t.scalarOf(ty)
	if it, ok := t.builder.Type(elem).Inner.(llir.IntType); ok {
		return it.Width, true
	}
	return 0, false
}

// sizeOfType computes a type's size in bytes against the module's
// addressing width, for OpCopyMemory's memcpy length (spec.md §4.1.5).
func (t *Translator) sizeOfType(ty llir.TypeHandle) uint64 {
	switch inner := t.builder.Type(ty).Inner.(type) {
	case llir.IntType:
		if inner.Width < 8 {
			return 1
		}
		return uint64(inner.Width) / 8
	case llir.FloatType:
		return uint64(inner.Width) / 8
	case llir.VectorType:
		count := uint64(inner.Count)
		if count == 3 {
			count = 4 // OpenCL 3-vectors occupy 4 lanes
		}
		return count * t.sizeOfType(inner.Elem)
	case llir.MatrixType:
		return uint64(inner.Columns) * t.sizeOfType(inner.Column)
	case llir.ArrayType:
		return uint64(inner.Length) * t.sizeOfType(inner.Elem)
	case llir.StructType:
		var total uint64
		for _, m := range inner.Members {
			total += t.sizeOfType(m)
		}
		return total
	case llir.PointerType:
		return uint64(t.state.addressingBits) / 8
	default:
		return 0
	}
}
