package translator

import (
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/mangler"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// translateAtomicOrGroup implements spec.md §4.1.8: barriers, atomics,
// and group/subgroup collectives.
func (t *Translator) translateAtomicOrGroup(rec spirv.OpcodeRecord) error {
	switch rec.Op {
	case spirv.OpControlBarrier:
		return t.translateControlBarrier(rec)
	case spirv.OpMemoryBarrier:
		return t.translateMemoryBarrier(rec)

	case spirv.OpAtomicIAdd:
		return t.translateBinaryAtomic(rec, "atomic_add")
	case spirv.OpAtomicISub:
		return t.translateBinaryAtomic(rec, "atomic_sub")
	case spirv.OpAtomicSMin, spirv.OpAtomicUMin:
		return t.translateBinaryAtomic(rec, "atomic_min")
	case spirv.OpAtomicSMax, spirv.OpAtomicUMax:
		return t.translateBinaryAtomic(rec, "atomic_max")
	case spirv.OpAtomicAnd:
		return t.translateBinaryAtomic(rec, "atomic_and")
	case spirv.OpAtomicOr:
		return t.translateBinaryAtomic(rec, "atomic_or")
	case spirv.OpAtomicXor:
		return t.translateBinaryAtomic(rec, "atomic_xor")
	case spirv.OpAtomicExchange:
		return t.translateBinaryAtomic(rec, "atomic_xchg")
	case spirv.OpAtomicFAddEXT:
		return t.translateBinaryAtomic(rec, "atomic_fetch_add_explicit")
	case spirv.OpAtomicFMinEXT:
		return t.translateBinaryAtomic(rec, "atomic_fetch_min_explicit")
	case spirv.OpAtomicFMaxEXT:
		return t.translateBinaryAtomic(rec, "atomic_fetch_max_explicit")

	case spirv.OpAtomicIIncrement:
		return t.translateUnaryAtomic(rec, "atomic_inc")
	case spirv.OpAtomicIDecrement:
		return t.translateUnaryAtomic(rec, "atomic_dec")

	case spirv.OpAtomicLoad:
		return t.translateAtomicLoad(rec)
	case spirv.OpAtomicStore:
		return t.translateAtomicStore(rec)
	case spirv.OpAtomicCompareExchange, spirv.OpAtomicCompareExchangeWeak:
		return t.translateAtomicCompareExchange(rec)
	case spirv.OpAtomicFlagTestAndSet:
		return t.translateAtomicFlagTestAndSet(rec)
	case spirv.OpAtomicFlagClear:
		return t.translateAtomicFlagClear(rec)

	default:
		return t.translateGroup(rec)
	}
}

func (t *Translator) translateControlBarrier(rec spirv.OpcodeRecord) error {
	execID := rec.Id(0)
	exec, err := t.value(execID)
	if err != nil {
		return err
	}
	mem, err := t.value(rec.Id(1))
	if err != nil {
		return err
	}
	sem, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	voidTy := t.builder.VoidType()
	i32 := t.builder.IntType(32, false)
	zero := llir.ConstValue(t.builder.IntConstant(i32, 0))

	// A constant execution scope picks the barrier at translation time;
	// otherwise the module-level wrapper decides at run time (spec.md
	// §4.1.8, scenarios E and F).
	if scope, ok := t.intConstValue(execID); ok {
		name := muxWorkGroupBarrier
		if spirv.Scope(scope) == spirv.ScopeSubgroup {
			name = muxSubGroupBarrier
		}
		_, err := t.callBuiltinUnmangled(voidTy, false, name,
			[]llir.ValueHandle{zero, mem, sem}, muxBarrierAttrs...)
		return err
	}

	wrapper := t.ensureBarrierWrapper()
	_, err = t.appendInst(llir.Instruction{
		Op:       llir.OpCall,
		Callee:   t.builder.FunctionName(wrapper),
		Operands: []llir.ValueHandle{exec, mem, sem},
	})
	return err
}

func (t *Translator) translateMemoryBarrier(rec spirv.OpcodeRecord) error {
	scope, err := t.value(rec.Id(0))
	if err != nil {
		return err
	}
	sem, err := t.value(rec.Id(1))
	if err != nil {
		return err
	}
	_, err = t.callBuiltinUnmangled(t.builder.VoidType(), false, muxMemBarrier,
		[]llir.ValueHandle{scope, sem}, muxBarrierAttrs...)
	return err
}

// atomicPointerArg builds the volatile-qualified pointer argument shape
// atomics mangle with (spec.md §4.1.8).
func (t *Translator) atomicPointerArg(ptrTy llir.TypeHandle, hint *signHint) mangler.ArgType {
	pointee, as, ok := t.pointeeOf(ptrTy)
	if !ok {
		return mangler.ArgType{Kind: mangler.KindVoid}
	}
	return mangler.Pointer(t.argTypeOf(pointee, hint, false), mangler.AddressSpace(as), false, true)
}

// functionScopeAtomic implements the address-space-0 rule: the result is
// a plain non-atomic load of the original value (spec.md §4.1.8).
func (t *Translator) functionScopeAtomic(rec spirv.OpcodeRecord, ptr llir.ValueHandle, resTy llir.TypeHandle) error {
	v, err := t.appendInst(llir.Instruction{Op: llir.OpLoad, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{ptr}})
	if err != nil {
		return err
	}
	t.bindValue(rec, rec.Id(0), rec.Id(1), v)
	return nil
}

func (t *Translator) translateBinaryAtomic(rec spirv.OpcodeRecord, base string) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	ptrID := rec.Id(2)
	ptr, err := t.value(ptrID)
	if err != nil {
		return err
	}
	val, err := t.value(rec.Id(rec.Len() - 1))
	if err != nil {
		return err
	}
	ptrTy, err := t.valueType(ptrID)
	if err != nil {
		return err
	}
	if _, as, ok := t.pointeeOf(ptrTy); ok && as == llir.AddressSpacePrivate {
		return t.functionScopeAtomic(rec, ptr, resTy)
	}
	hint := t.signHintFromResult(resTyID)
	argTypes := []mangler.ArgType{
		t.atomicPointerArg(ptrTy, hint),
		t.argTypeOf(resTy, hint, false),
	}
	v, err := t.callBuiltin(resTy, true, base, argTypes, []llir.ValueHandle{ptr, val})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateUnaryAtomic(rec spirv.OpcodeRecord, base string) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	ptrID := rec.Id(2)
	ptr, err := t.value(ptrID)
	if err != nil {
		return err
	}
	ptrTy, err := t.valueType(ptrID)
	if err != nil {
		return err
	}
	if _, as, ok := t.pointeeOf(ptrTy); ok && as == llir.AddressSpacePrivate {
		return t.functionScopeAtomic(rec, ptr, resTy)
	}
	hint := t.signHintFromResult(resTyID)
	v, err := t.callBuiltin(resTy, true, base,
		[]mangler.ArgType{t.atomicPointerArg(ptrTy, hint)}, []llir.ValueHandle{ptr})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateAtomicLoad(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	ptrID := rec.Id(2)
	ptr, err := t.value(ptrID)
	if err != nil {
		return err
	}
	sem, err := t.value(rec.Id(4))
	if err != nil {
		return err
	}
	ptrTy, err := t.valueType(ptrID)
	if err != nil {
		return err
	}
	if _, as, ok := t.pointeeOf(ptrTy); ok && as == llir.AddressSpacePrivate {
		return t.functionScopeAtomic(rec, ptr, resTy)
	}
	hint := t.signHintFromResult(resTyID)
	i32 := t.builder.IntType(32, true)
	argTypes := []mangler.ArgType{t.atomicPointerArg(ptrTy, hint), t.argTypeOf(i32, nil, false)}
	v, err := t.callBuiltin(resTy, true, "atomic_load_explicit", argTypes, []llir.ValueHandle{ptr, sem})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateAtomicStore(rec spirv.OpcodeRecord) error {
	ptrID := rec.Id(0)
	ptr, err := t.value(ptrID)
	if err != nil {
		return err
	}
	sem, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	val, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	ptrTy, err := t.valueType(ptrID)
	if err != nil {
		return err
	}
	valTy, err := t.valueType(rec.Id(3))
	if err != nil {
		return err
	}
	if _, as, ok := t.pointeeOf(ptrTy); ok && as == llir.AddressSpacePrivate {
		_, err := t.appendInst(llir.Instruction{Op: llir.OpStore, Operands: []llir.ValueHandle{ptr, val}})
		return err
	}
	i32 := t.builder.IntType(32, true)
	argTypes := []mangler.ArgType{
		t.atomicPointerArg(ptrTy, nil),
		t.argTypeOf(valTy, nil, false),
		t.argTypeOf(i32, nil, false),
	}
	_, err = t.callBuiltin(t.builder.VoidType(), false, "atomic_store_explicit", argTypes,
		[]llir.ValueHandle{ptr, val, sem})
	return err
}

func (t *Translator) translateAtomicCompareExchange(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	ptrID := rec.Id(2)
	ptr, err := t.value(ptrID)
	if err != nil {
		return err
	}
	value, err := t.value(rec.Id(6))
	if err != nil {
		return err
	}
	comparator, err := t.value(rec.Id(7))
	if err != nil {
		return err
	}
	ptrTy, err := t.valueType(ptrID)
	if err != nil {
		return err
	}
	if _, as, ok := t.pointeeOf(ptrTy); ok && as == llir.AddressSpacePrivate {
		return t.functionScopeAtomic(rec, ptr, resTy)
	}
	hint := t.signHintFromResult(resTyID)
	at := t.argTypeOf(resTy, hint, false)
	argTypes := []mangler.ArgType{t.atomicPointerArg(ptrTy, hint), at, at}
	v, err := t.callBuiltin(resTy, true, "atomic_cmpxchg", argTypes,
		[]llir.ValueHandle{ptr, comparator, value})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateAtomicFlagTestAndSet(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	ptrID := rec.Id(2)
	ptr, err := t.value(ptrID)
	if err != nil {
		return err
	}
	sem, err := t.value(rec.Id(4))
	if err != nil {
		return err
	}
	ptrTy, err := t.valueType(ptrID)
	if err != nil {
		return err
	}
	i32 := t.builder.IntType(32, true)
	argTypes := []mangler.ArgType{t.atomicPointerArg(ptrTy, nil), t.argTypeOf(i32, nil, false)}
	v, err := t.callBuiltin(resTy, true, "atomic_flag_test_and_set_explicit", argTypes,
		[]llir.ValueHandle{ptr, sem})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateAtomicFlagClear(rec spirv.OpcodeRecord) error {
	ptrID := rec.Id(0)
	ptr, err := t.value(ptrID)
	if err != nil {
		return err
	}
	sem, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	ptrTy, err := t.valueType(ptrID)
	if err != nil {
		return err
	}
	i32 := t.builder.IntType(32, true)
	argTypes := []mangler.ArgType{t.atomicPointerArg(ptrTy, nil), t.argTypeOf(i32, nil, false)}
	_, err = t.callBuiltin(t.builder.VoidType(), false, "atomic_flag_clear_explicit", argTypes,
		[]llir.ValueHandle{ptr, sem})
	return err
}
