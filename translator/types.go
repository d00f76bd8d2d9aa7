package translator

import (
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// translateType implements spec.md §4.1.2: one IR type per SPIR-V type
// opcode, with the two-step forward-pointer / incomplete-struct protocol
// for cyclic type graphs.
func (t *Translator) translateType(rec spirv.OpcodeRecord) error {
	switch rec.Op {
	case spirv.OpTypeVoid:
		t.bindType(rec, rec.Id(0), t.builder.VoidType())
		return nil

	case spirv.OpTypeBool:
		t.bindType(rec, rec.Id(0), t.builder.IntType(1, false))
		return nil

	case spirv.OpTypeInt:
		width := rec.MustWord(1)
		signed := rec.MustWord(2) == 1
		t.bindType(rec, rec.Id(0), t.builder.IntType(uint8(width), signed))
		return nil

	case spirv.OpTypeFloat:
		width := rec.MustWord(1)
		switch width {
		case 16, 32, 64:
		default:
			return spirv.NewErrorf(spirv.MalformedInstruction, rec.Op, "float width %d is not 16, 32, or 64", width)
		}
		t.bindType(rec, rec.Id(0), t.builder.FloatType(uint8(width)))
		return nil

	case spirv.OpTypeVector:
		elem, err := t.state.requireType(rec.Id(1))
		if err != nil {
			return err
		}
		t.bindType(rec, rec.Id(0), t.builder.VectorType(elem, rec.MustWord(2)))
		return nil

	case spirv.OpTypeMatrix:
		col, err := t.state.requireType(rec.Id(1))
		if err != nil {
			return err
		}
		t.bindType(rec, rec.Id(0), t.builder.MatrixType(col, rec.MustWord(2)))
		return nil

	case spirv.OpTypeArray:
		elem, err := t.state.requireType(rec.Id(1))
		if err != nil {
			return err
		}
		length, ok := t.intConstValue(rec.Id(2))
		if !ok {
			return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, rec.Id(2), "array length is not a constant")
		}
		t.bindType(rec, rec.Id(0), t.builder.ArrayType(elem, uint32(length)))
		return nil

	case spirv.OpTypeRuntimeArray:
		elem, err := t.state.requireType(rec.Id(1))
		if err != nil {
			return err
		}
		t.bindType(rec, rec.Id(0), t.builder.RuntimeArrayType(elem))
		return nil

	case spirv.OpTypeFunction:
		ret, err := t.state.requireType(rec.Id(1))
		if err != nil {
			return err
		}
		params := make([]llir.TypeHandle, 0, rec.Len()-2)
		paramIDs := make([]spirv.SpvId, 0, rec.Len()-2)
		for i := 2; i < rec.Len(); i++ {
			p, err := t.state.requireType(rec.Id(i))
			if err != nil {
				return err
			}
			params = append(params, p)
			paramIDs = append(paramIDs, rec.Id(i))
		}
		t.state.paramTypeIDs[rec.Id(0)] = paramIDs
		t.bindType(rec, rec.Id(0), t.builder.FunctionType(ret, params))
		return nil

	case spirv.OpTypePointer:
		return t.translateTypePointer(rec)

	case spirv.OpTypeForwardPointer:
		// Declares the pointer id ahead of its defining OpTypePointer.
		ptrID := rec.Id(0)
		sc := spirv.StorageClass(rec.MustWord(1))
		as, err := t.addressSpaceOf(sc)
		if err != nil {
			return err
		}
		fwd := t.builder.ForwardPointerType(as)
		t.state.forwardPointerIDs[ptrID] = true
		t.state.bind(ptrID, &binding{Op: rec.Op, Rec: rec, Type: fwd, HasType: true, Pending: true})
		return nil

	case spirv.OpTypeStruct:
		return t.translateTypeStruct(rec)

	case spirv.OpTypeEvent:
		t.bindType(rec, rec.Id(0), t.builder.EventType())
		return nil

	case spirv.OpTypeImage:
		return t.translateTypeImage(rec)

	case spirv.OpTypeSampler:
		t.bindType(rec, rec.Id(0), t.builder.SamplerType())
		return nil

	case spirv.OpTypeOpaque:
		name, _ := rec.String(1)
		t.bindType(rec, rec.Id(0), t.builder.OpaqueType(name))
		return nil

	case spirv.OpTypeSampledImage:
		// No IR type: the (image, sampler) pair is tracked in
		// sampled_images when OpSampledImage constructs one.
		t.bindMarker(rec, rec.Id(0))
		return nil

	case spirv.OpTypeDeviceEvent:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "device-side enqueue is not supported")

	case spirv.OpTypeQueue:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "device-side enqueue is not supported")

	case spirv.OpTypeReserveId, spirv.OpTypePipe:
		// Recognized; pipes themselves are unsupported, so the type
		// produces no IR and any operation on it fails instead.
		t.bindMarker(rec, rec.Id(0))
		return nil

	default:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "unreachable type dispatch")
	}
}

func (t *Translator) translateTypePointer(rec spirv.OpcodeRecord) error {
	resID := rec.Id(0)
	sc := spirv.StorageClass(rec.MustWord(1))
	pointeeID := rec.Id(2)
	as, err := t.addressSpaceOf(sc)
	if err != nil {
		return err
	}

	if t.state.forwardPointerIDs[resID] {
		// This is the defining declaration of a forward pointer: the
		// pointee must be bound by now, so complete the placeholder and
		// revisit any struct waiting on it.
		pointee, err := t.state.requireType(pointeeID)
		if err != nil {
			return err
		}
		b, _ := t.state.lookup(resID)
		t.builder.ResolveForwardPointer(b.Type, pointee)
		b.Pending = false
		delete(t.state.forwardPointerIDs, resID)
		t.completeStructs()
		return nil
	}

	pointee, err := t.state.requireType(pointeeID)
	if err != nil {
		return err
	}
	t.bindType(rec, resID, t.builder.PointerType(pointee, as))
	return nil
}

func (t *Translator) translateTypeStruct(rec spirv.OpcodeRecord) error {
	resID := rec.Id(0)
	name := t.state.names[resID]
	packed := t.state.hasDecoration(resID, spirv.DecorationCPacked) &&
		t.state.capabilities[spirv.CapabilityKernel]

	memberIDs := make([]spirv.SpvId, 0, rec.Len()-1)
	complete := true
	for i := 1; i < rec.Len(); i++ {
		id := rec.Id(i)
		memberIDs = append(memberIDs, id)
		if b, ok := t.state.lookup(id); !ok || !b.HasType || b.Pending {
			complete = false
		}
	}

	h := t.builder.DeclareStructType(name)
	t.bindType(rec, resID, h)
	if !complete {
		// Emit the empty named aggregate now; the member list is
		// finalized once every forward pointer resolves.
		t.state.incompleteStructs = append(t.state.incompleteStructs, IncompleteStruct{
			StructID: resID, StructType: h, MemberIDs: memberIDs, Packed: packed,
		})
		return nil
	}
	members, err := t.memberTypes(memberIDs)
	if err != nil {
		return err
	}
	t.builder.ResolveStructType(h, members, packed)
	return nil
}

// completeStructs finalizes every incomplete struct whose forward-
// referenced members have all resolved (spec.md §4.2).
func (t *Translator) completeStructs() {
	remaining := t.state.incompleteStructs[:0]
	for _, s := range t.state.incompleteStructs {
		ready := true
		for _, id := range s.MemberIDs {
			if b, ok := t.state.lookup(id); !ok || !b.HasType || b.Pending {
				ready = false
				break
			}
		}
		if !ready {
			remaining = append(remaining, s)
			continue
		}
		members, err := t.memberTypes(s.MemberIDs)
		if err != nil {
			remaining = append(remaining, s)
			continue
		}
		t.builder.ResolveStructType(s.StructType, members, s.Packed)
	}
	t.state.incompleteStructs = remaining
}

func (t *Translator) memberTypes(ids []spirv.SpvId) ([]llir.TypeHandle, error) {
	out := make([]llir.TypeHandle, 0, len(ids))
	for _, id := range ids {
		ty, err := t.state.requireType(id)
		if err != nil {
			return nil, err
		}
		out = append(out, ty)
	}
	return out, nil
}

// translateTypeImage collapses dim+arrayed into the target image kinds
// spec.md §4.1.2 enumerates.
func (t *Translator) translateTypeImage(rec spirv.OpcodeRecord) error {
	dim := spirv.Dim(rec.MustWord(2))
	arrayed := rec.MustWord(4) == 1

	var kind llir.ImageKind
	switch {
	case dim == spirv.Dim1D && !arrayed:
		kind = llir.Image1D
	case dim == spirv.Dim1D && arrayed:
		kind = llir.Image1DArray
	case dim == spirv.Dim2D && !arrayed:
		kind = llir.Image2D
	case dim == spirv.Dim2D && arrayed:
		kind = llir.Image2DArray
	case dim == spirv.Dim3D && !arrayed:
		kind = llir.Image3D
	case dim == spirv.DimBuffer && !arrayed:
		kind = llir.Image1DBuffer
	default:
		return spirv.NewErrorf(spirv.UnsupportedOpcode, rec.Op, "image dimensionality %d (arrayed=%v) is not supported", dim, arrayed)
	}
	t.bindType(rec, rec.Id(0), t.builder.ImageType(kind))
	return nil
}

// addressSpaceOf maps a storage class onto the target address-space
// numbering (spec.md §4.1.5).
func (t *Translator) addressSpaceOf(sc spirv.StorageClass) (llir.AddressSpace, error) {
	switch sc {
	case spirv.StorageClassFunction, spirv.StorageClassPrivate, spirv.StorageClassInput:
		return llir.AddressSpacePrivate, nil
	case spirv.StorageClassCrossWorkgroup:
		return llir.AddressSpaceCrossWorkgroup, nil
	case spirv.StorageClassUniformConstant:
		return llir.AddressSpaceUniformConstant, nil
	case spirv.StorageClassWorkgroup:
		return llir.AddressSpaceWorkgroup, nil
	case spirv.StorageClassGeneric:
		if !t.state.Device.HasGenericAddressSpace {
			return 0, spirv.NewError(spirv.InvalidStorageClass, spirv.OpTypePointer, "device does not support the generic address space")
		}
		return llir.AddressSpaceGeneric, nil
	default:
		return 0, spirv.NewErrorf(spirv.InvalidStorageClass, spirv.OpTypePointer, "storage class %s has no address space mapping", sc)
	}
}
