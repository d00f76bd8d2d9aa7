package translator

import (
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// translateMemory implements spec.md §4.1.5: variables, loads and
// stores, bulk copies, and address computation.
func (t *Translator) translateMemory(rec spirv.OpcodeRecord) error {
	switch rec.Op {
	case spirv.OpVariable:
		return t.translateVariable(rec)
	case spirv.OpLoad:
		return t.translateLoad(rec)
	case spirv.OpStore:
		return t.translateStore(rec)
	case spirv.OpCopyMemory:
		return t.translateCopyMemory(rec)
	case spirv.OpCopyMemorySized:
		return t.translateCopyMemorySized(rec)
	case spirv.OpAccessChain, spirv.OpInBoundsAccessChain:
		return t.translateAccessChain(rec, true, rec.Op == spirv.OpInBoundsAccessChain)
	case spirv.OpPtrAccessChain, spirv.OpInBoundsPtrAccessChain:
		return t.translateAccessChain(rec, false, rec.Op == spirv.OpInBoundsPtrAccessChain)
	case spirv.OpArrayLength:
		return t.translateArrayLength(rec)
	case spirv.OpCopyObject:
		return t.translateCopyObject(rec)
	case spirv.OpGenericPtrMemSemantics, spirv.OpImageTexelPointer:
		t.bindMarker(rec, rec.Id(1))
		return nil
	default:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "unreachable memory dispatch")
	}
}

func (t *Translator) translateVariable(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	sc := spirv.StorageClass(rec.MustWord(2))
	hasInit := rec.Len() > 3

	ptrTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	pointee, _, isPtr := t.pointeeOf(ptrTy)
	if !isPtr {
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, resID, "OpVariable result type is not a pointer")
	}
	name := t.state.names[resID]

	// BuiltIn-decorated variables become external globals of the pointee
	// type regardless of storage class (spec.md §4.1.5).
	if d, ok := t.state.firstDecoration(resID, spirv.DecorationBuiltIn); ok && len(d.Operands) > 0 {
		as, err := t.addressSpaceOf(sc)
		if err != nil {
			return err
		}
		bi := spirv.BuiltIn(d.Operands[0])
		g := t.builder.AddGlobal(llir.Global{
			Name:         "__spirv_" + bi.String(),
			Type:         pointee,
			AddressSpace: as,
			BuiltIn:      bi.String(),
			Linkage:      llir.LinkageExternal,
		})
		t.applyGlobalDecorations(resID, g)
		t.bindGlobal(rec, resTyID, resID, g)
		return nil
	}

	switch sc {
	case spirv.StorageClassUniformConstant:
		g := llir.Global{
			Name:         name,
			Type:         pointee,
			AddressSpace: llir.AddressSpaceUniformConstant,
			Linkage:      llir.LinkagePrivate,
			Constant:     true,
			UnnamedAddr:  true,
		}
		if hasInit {
			if c, ok := t.constOf(rec.Id(3)); ok {
				g.Init = c
				g.HasInit = true
				g.Type = t.builder.Const(c).Type
			}
		}
		h := t.builder.AddGlobal(g)
		t.applyGlobalDecorations(resID, h)
		t.bindGlobal(rec, resTyID, resID, h)
		return nil

	case spirv.StorageClassWorkgroup:
		h := t.builder.AddGlobal(llir.Global{
			Name: name, Type: pointee,
			AddressSpace: llir.AddressSpaceWorkgroup,
			Linkage:      llir.LinkageInternal,
		})
		t.applyGlobalDecorations(resID, h)
		t.bindGlobal(rec, resTyID, resID, h)
		return nil

	case spirv.StorageClassCrossWorkgroup:
		g := llir.Global{
			Name: name, Type: pointee,
			AddressSpace: llir.AddressSpaceCrossWorkgroup,
			Linkage:      llir.LinkageExternal,
		}
		if hasInit {
			if c, ok := t.constOf(rec.Id(3)); ok {
				g.Init = c
				g.HasInit = true
			}
		}
		h := t.builder.AddGlobal(g)
		t.applyGlobalDecorations(resID, h)
		t.bindGlobal(rec, resTyID, resID, h)
		return nil

	case spirv.StorageClassFunction:
		if !t.hasCurrentBlock {
			return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, resID, "function-scope OpVariable outside a basic block")
		}
		align := uint32(1)
		if d, ok := t.state.firstDecoration(resID, spirv.DecorationAlignment); ok && len(d.Operands) > 0 {
			align = d.Operands[0]
		}
		v, err := t.appendInst(llir.Instruction{
			Op: llir.OpAlloca, HasResult: true, Type: pointee,
			Aligned: true, Alignment: align,
		})
		if err != nil {
			return err
		}
		if hasInit {
			init, err := t.value(rec.Id(3))
			if err != nil {
				return err
			}
			if _, err := t.appendInst(llir.Instruction{Op: llir.OpStore, Operands: []llir.ValueHandle{v, init}}); err != nil {
				return err
			}
		}
		t.bindTypedValue(rec, resTyID, ptrTy, resID, v)
		return nil

	case spirv.StorageClassInput:
		// Handled by the BuiltIn path above; a plain Input variable has
		// no kernel-side storage.
		t.bindMarker(rec, resID)
		return nil

	case spirv.StorageClassGeneric, spirv.StorageClassImage:
		return spirv.NewErrorf(spirv.InvalidStorageClass, rec.Op, "OpVariable storage class %s is not supported", sc)

	default:
		return spirv.NewErrorf(spirv.InvalidStorageClass, rec.Op, "OpVariable storage class %s is not supported", sc)
	}
}

// applyGlobalDecorations handles Alignment and LinkageAttributes on
// module-scope variables (spec.md §4.1.5).
func (t *Translator) applyGlobalDecorations(resID spirv.SpvId, g llir.GlobalHandle) {
	if d, ok := t.state.firstDecoration(resID, spirv.DecorationAlignment); ok && len(d.Operands) > 0 {
		t.builder.SetGlobalAlign(g, d.Operands[0])
	}
	if d, ok := t.state.firstDecoration(resID, spirv.DecorationLinkageAttributes); ok && len(d.Operands) >= 2 {
		_, consumed := decodeLiteralString(d.Operands)
		if spirv.LinkageType(d.Operands[consumed]) == spirv.LinkageTypeLinkOnceODR &&
			t.state.extensions["SPV_KHR_linkonce_odr"] {
			t.builder.SetGlobalLinkage(g, llir.LinkageLinkOnceODR)
		}
	}
}

// memoryAccessFlags decodes the optional MemoryAccess mask and trailing
// alignment literal starting at word index from.
func memoryAccessFlags(rec spirv.OpcodeRecord, from int) (volatile, aligned bool, alignment uint32) {
	mask, ok := rec.Word(from)
	if !ok {
		return false, false, 0
	}
	m := spirv.MemoryAccess(mask)
	volatile = m&spirv.MemoryAccessVolatile != 0
	if m&spirv.MemoryAccessAligned != 0 {
		aligned = true
		alignment, _ = rec.Word(from + 1)
	}
	return volatile, aligned, alignment
}

func (t *Translator) translateLoad(rec spirv.OpcodeRecord) error {
	resTyID, resID, ptrID := rec.Id(0), rec.Id(1), rec.Id(2)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	ptr, err := t.value(ptrID)
	if err != nil {
		return err
	}
	volatile, aligned, alignment := memoryAccessFlags(rec, 3)
	volatile = volatile || t.state.hasDecoration(ptrID, spirv.DecorationVolatile)
	if !aligned && t.state.capabilities[spirv.CapabilityKernel] {
		if d, ok := t.state.firstDecoration(ptrID, spirv.DecorationAlignment); ok && len(d.Operands) > 0 {
			aligned = true
			alignment = d.Operands[0]
		}
	}
	v, err := t.appendInst(llir.Instruction{
		Op: llir.OpLoad, HasResult: true, Type: resTy,
		Operands: []llir.ValueHandle{ptr},
		Volatile: volatile, Aligned: aligned, Alignment: alignment,
	})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateStore(rec spirv.OpcodeRecord) error {
	ptrID := rec.Id(0)
	ptr, err := t.value(ptrID)
	if err != nil {
		return err
	}
	obj, err := t.value(rec.Id(1))
	if err != nil {
		return err
	}
	volatile, aligned, alignment := memoryAccessFlags(rec, 2)
	volatile = volatile || t.state.hasDecoration(ptrID, spirv.DecorationVolatile)
	if !aligned && t.state.capabilities[spirv.CapabilityKernel] {
		if d, ok := t.state.firstDecoration(ptrID, spirv.DecorationAlignment); ok && len(d.Operands) > 0 {
			aligned = true
			alignment = d.Operands[0]
		}
	}
	_, err = t.appendInst(llir.Instruction{
		Op: llir.OpStore, Operands: []llir.ValueHandle{ptr, obj},
		Volatile: volatile, Aligned: aligned, Alignment: alignment,
	})
	return err
}

func (t *Translator) translateCopyMemory(rec spirv.OpcodeRecord) error {
	dst, err := t.value(rec.Id(0))
	if err != nil {
		return err
	}
	src, err := t.value(rec.Id(1))
	if err != nil {
		return err
	}
	dstTy, err := t.valueType(rec.Id(0))
	if err != nil {
		return err
	}
	pointee, _, isPtr := t.pointeeOf(dstTy)
	if !isPtr {
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, rec.Id(0), "OpCopyMemory target is not a pointer")
	}
	volatile, aligned, alignment := memoryAccessFlags(rec, 2)
	_, err = t.appendInst(llir.Instruction{
		Op: llir.OpMemCpy, Operands: []llir.ValueHandle{dst, src},
		MemSize:  t.sizeOfType(pointee),
		Volatile: volatile, Aligned: aligned, Alignment: alignment,
	})
	return err
}

func (t *Translator) translateCopyMemorySized(rec spirv.OpcodeRecord) error {
	dst, err := t.value(rec.Id(0))
	if err != nil {
		return err
	}
	src, err := t.value(rec.Id(1))
	if err != nil {
		return err
	}
	size, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	volatile, aligned, alignment := memoryAccessFlags(rec, 3)

	// A source that strips to a constant global array whose elements all
	// equal the first lowers to a memset of the repeated byte.
	if byteVal, ok := t.repeatedByteSource(rec.Id(1)); ok {
		i8 := t.builder.IntType(8, false)
		rep := llir.ConstValue(t.builder.IntConstant(i8, uint64(byteVal)))
		_, err = t.appendInst(llir.Instruction{
			Op: llir.OpMemSet, Operands: []llir.ValueHandle{dst, rep, size},
			Volatile: volatile, Aligned: aligned, Alignment: alignment,
		})
		return err
	}
	_, err = t.appendInst(llir.Instruction{
		Op: llir.OpMemCpy, Operands: []llir.ValueHandle{dst, src, size},
		Volatile: volatile, Aligned: aligned, Alignment: alignment,
	})
	return err
}

// repeatedByteSource reports whether id names a constant global array of
// integers whose every element equals the first, and the repeated byte.
func (t *Translator) repeatedByteSource(id spirv.SpvId) (byte, bool) {
	b, ok := t.state.lookup(id)
	if !ok || !b.HasGlobal {
		return 0, false
	}
	g := t.builder.Global(b.Global)
	if !g.HasInit {
		return 0, false
	}
	comp, ok := t.builder.Const(g.Init).Value.(llir.CompositeConst)
	if !ok || len(comp.Elems) == 0 {
		return 0, false
	}
	first, ok := constIntBits(t.builder.Const(comp.Elems[0]).Value)
	if !ok {
		return 0, false
	}
	for _, e := range comp.Elems[1:] {
		v, ok := constIntBits(t.builder.Const(e).Value)
		if !ok || v != first {
			return 0, false
		}
	}
	return byte(first), true
}

// translateAccessChain emits a typed getelementptr; the non-Ptr variants
// get a leading zero index (spec.md §4.1.5).
func (t *Translator) translateAccessChain(rec spirv.OpcodeRecord, leadingZero, inBounds bool) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	base, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	indices, err := t.values(rec, 3)
	if err != nil {
		return err
	}
	operands := make([]llir.ValueHandle, 0, len(indices)+2)
	operands = append(operands, base)
	if leadingZero {
		i32 := t.builder.IntType(32, false)
		operands = append(operands, llir.ConstValue(t.builder.IntConstant(i32, 0)))
	}
	operands = append(operands, indices...)

	v, err := t.appendInst(llir.Instruction{
		Op: llir.OpGEP, HasResult: true, Type: resTy,
		Operands: operands, InBounds: inBounds,
	})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateArrayLength(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	ptr, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	v, err := t.appendInst(llir.Instruction{
		Op: llir.OpArrayLength, HasResult: true, Type: resTy,
		Operands: []llir.ValueHandle{ptr},
		Indices:  []uint32{rec.MustWord(3)},
	})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

// translateCopyObject clones a pointer through a fresh slot so the new
// id has distinct storage; non-pointer operands bind directly under the
// new id (spec.md §4.1.5).
func (t *Translator) translateCopyObject(rec spirv.OpcodeRecord) error {
	resTyID, resID, srcID := rec.Id(0), rec.Id(1), rec.Id(2)
	srcTy, err := t.valueType(srcID)
	if err != nil {
		return err
	}
	src, err := t.value(srcID)
	if err != nil {
		return err
	}
	pointee, _, isPtr := t.pointeeOf(srcTy)
	if !isPtr {
		t.bindTypedValue(rec, resTyID, srcTy, resID, src)
		return nil
	}
	slot, err := t.appendInst(llir.Instruction{Op: llir.OpAlloca, HasResult: true, Type: pointee, Aligned: true, Alignment: 1})
	if err != nil {
		return err
	}
	old, err := t.appendInst(llir.Instruction{Op: llir.OpLoad, HasResult: true, Type: pointee, Operands: []llir.ValueHandle{src}})
	if err != nil {
		return err
	}
	if _, err := t.appendInst(llir.Instruction{Op: llir.OpStore, Operands: []llir.ValueHandle{slot, old}}); err != nil {
		return err
	}
	t.bindTypedValue(rec, resTyID, srcTy, resID, slot)
	return nil
}
