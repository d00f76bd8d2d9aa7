package translator

import (
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/mangler"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// translateGroup covers the group/subgroup collectives of spec.md
// §4.1.8: async copies, predicates, broadcast, reductions and scans,
// and subgroup shuffles.
func (t *Translator) translateGroup(rec spirv.OpcodeRecord) error {
	switch rec.Op {
	case spirv.OpGroupAsyncCopy:
		return t.translateGroupAsyncCopy(rec)
	case spirv.OpGroupWaitEvents:
		return t.translateGroupWaitEvents(rec)
	case spirv.OpGroupAll:
		return t.translateGroupPredicate(rec, "all")
	case spirv.OpGroupAny:
		return t.translateGroupPredicate(rec, "any")
	case spirv.OpGroupBroadcast:
		return t.translateGroupBroadcast(rec)

	case spirv.OpGroupIAdd, spirv.OpGroupFAdd:
		return t.translateGroupReduction(rec, "add", "add", nil)
	case spirv.OpGroupUMin:
		return t.translateGroupReduction(rec, "u_min", "min", forceUnsigned)
	case spirv.OpGroupSMin:
		return t.translateGroupReduction(rec, "s_min", "min", forceSigned)
	case spirv.OpGroupFMin:
		return t.translateGroupReduction(rec, "min", "min", nil)
	case spirv.OpGroupUMax:
		return t.translateGroupReduction(rec, "u_max", "max", forceUnsigned)
	case spirv.OpGroupSMax:
		return t.translateGroupReduction(rec, "s_max", "max", forceSigned)
	case spirv.OpGroupFMax:
		return t.translateGroupReduction(rec, "max", "max", nil)
	case spirv.OpGroupIMulKHR, spirv.OpGroupFMulKHR:
		return t.translateGroupReduction(rec, "mul", "mul", nil)
	case spirv.OpGroupBitwiseAndKHR:
		return t.translateGroupReduction(rec, "and", "and", nil)
	case spirv.OpGroupBitwiseOrKHR:
		return t.translateGroupReduction(rec, "or", "or", nil)
	case spirv.OpGroupBitwiseXorKHR:
		return t.translateGroupReduction(rec, "xor", "xor", nil)
	case spirv.OpGroupLogicalAndKHR:
		return t.translateGroupReduction(rec, "logical_and", "logical_and", nil)
	case spirv.OpGroupLogicalOrKHR:
		return t.translateGroupReduction(rec, "logical_or", "logical_or", nil)
	case spirv.OpGroupLogicalXorKHR:
		return t.translateGroupReduction(rec, "logical_xor", "logical_xor", nil)

	case spirv.OpSubgroupShuffleINTEL:
		return t.translateSubgroupShuffle(rec, "")
	case spirv.OpSubgroupShuffleUpINTEL:
		return t.translateSubgroupShuffle(rec, "_up")
	case spirv.OpSubgroupShuffleDownINTEL:
		return t.translateSubgroupShuffle(rec, "_down")
	case spirv.OpSubgroupShuffleXorINTEL:
		return t.translateSubgroupShuffle(rec, "_xor")

	default:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "unreachable group dispatch")
	}
}

func (t *Translator) translateGroupAsyncCopy(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	// Operands after the scope: dst, src, numElements, stride, event.
	args := make([]llir.ValueHandle, 0, 5)
	argTypes := make([]mangler.ArgType, 0, 5)
	for i := 3; i < rec.Len(); i++ {
		v, err := t.value(rec.Id(i))
		if err != nil {
			return err
		}
		ty, err := t.valueType(rec.Id(i))
		if err != nil {
			return err
		}
		args = append(args, v)
		argTypes = append(argTypes, t.argTypeOf(ty, nil, false))
	}
	v, err := t.callBuiltin(resTy, true, "async_work_group_strided_copy", argTypes, args,
		llir.CallAttrConvergent)
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateGroupWaitEvents(rec spirv.OpcodeRecord) error {
	num, err := t.value(rec.Id(1))
	if err != nil {
		return err
	}
	events, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	numTy, err := t.valueType(rec.Id(1))
	if err != nil {
		return err
	}
	eventsTy, err := t.valueType(rec.Id(2))
	if err != nil {
		return err
	}
	argTypes := []mangler.ArgType{t.argTypeOf(numTy, forceSigned, false), t.argTypeOf(eventsTy, nil, false)}
	_, err = t.callBuiltin(t.builder.VoidType(), false, "wait_group_events", argTypes,
		[]llir.ValueHandle{num, events}, llir.CallAttrConvergent)
	return err
}

// translateGroupPredicate lowers OpGroupAll/OpGroupAny through the
// cached predicate wrapper, with i1<->i32 casts at the boundary.
func (t *Translator) translateGroupPredicate(rec spirv.OpcodeRecord, op string) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	scope, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	pred, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	i32 := t.builder.IntType(32, true)
	wide, err := t.appendInst(llir.Instruction{Op: llir.OpZExt, HasResult: true, Type: i32, Operands: []llir.ValueHandle{pred}})
	if err != nil {
		return err
	}
	wrapper := t.ensurePredicateWrapper(op)
	r, err := t.appendInst(llir.Instruction{
		Op: llir.OpCall, HasResult: true, Type: i32,
		Callee:   t.builder.FunctionName(wrapper),
		Operands: []llir.ValueHandle{scope, wide},
	})
	if err != nil {
		return err
	}
	v, err := t.appendInst(llir.Instruction{Op: llir.OpTrunc, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{r}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateGroupBroadcast(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	scope, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	val, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	localID := rec.Id(4)
	idVal, err := t.value(localID)
	if err != nil {
		return err
	}
	idTy, err := t.valueType(localID)
	if err != nil {
		return err
	}

	// The local-id operand is a scalar or a 2/3-vector; its lane count
	// is the wrapper's dimensionality.
	elemTy, lanes := t.scalarOf(idTy)
	dim := int(lanes)
	if dim == 0 {
		dim = 1
	}
	ids := make([]llir.ValueHandle, 0, dim)
	if lanes == 0 {
		ids = append(ids, idVal)
	} else {
		i32 := t.builder.IntType(32, false)
		for i := 0; i < dim; i++ {
			idx := llir.ConstValue(t.builder.IntConstant(i32, uint64(i)))
			lane, err := t.appendInst(llir.Instruction{
				Op: llir.OpExtractElement, HasResult: true, Type: elemTy,
				Operands: []llir.ValueHandle{idVal, idx},
			})
			if err != nil {
				return err
			}
			ids = append(ids, lane)
		}
	}

	wrapper := t.ensureBroadcastWrapper(rec.Id(0), resTy, dim)
	operands := append([]llir.ValueHandle{scope, val}, ids...)
	v, err := t.appendInst(llir.Instruction{
		Op: llir.OpCall, HasResult: true, Type: resTy,
		Callee:   t.builder.FunctionName(wrapper),
		Operands: operands,
	})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

// translateGroupReduction lowers the reduce/scan family through the
// cached per-(operation, op, type) wrapper (spec.md §4.1.8, §4.6).
func (t *Translator) translateGroupReduction(rec spirv.OpcodeRecord, opKey, base string, hint *signHint) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	scope, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	operation := spirv.GroupOperation(rec.MustWord(3))
	x, err := t.value(rec.Id(4))
	if err != nil {
		return err
	}
	wrapper := t.ensureReductionWrapper(operation, opKey, base, hint, resTyID, resTy)
	v, err := t.appendInst(llir.Instruction{
		Op: llir.OpCall, HasResult: true, Type: resTy,
		Callee:   t.builder.FunctionName(wrapper),
		Operands: []llir.ValueHandle{scope, x},
	})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

// translateSubgroupShuffle emits the direct __mux_sub_group_shuffle*
// call, suffixed by the shuffled value's type (spec.md §4.1.8).
func (t *Translator) translateSubgroupShuffle(rec spirv.OpcodeRecord, variant string) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	val, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	idx, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	symbol := "__mux_sub_group_shuffle" + variant + "_" + t.muxTypeSuffix(resTy)
	v, err := t.callBuiltinUnmangled(resTy, true, symbol, []llir.ValueHandle{val, idx},
		llir.CallAttrConvergent)
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}
