package translator

import (
	"fmt"

	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/mangler"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// Synthesized helper functions (spec.md §4.6). Each wrapper takes the
// group scope as its first argument and branches on "is subgroup?",
// so a constant scope folds the branch away under always-inline.

// mux barrier entry points (spec.md §4.1.8, GLOSSARY "Mux builtin").
const (
	muxSubGroupBarrier  = "__mux_sub_group_barrier"
	muxWorkGroupBarrier = "__mux_work_group_barrier"
	muxMemBarrier       = "__mux_mem_barrier"
)

var muxBarrierAttrs = []llir.CallAttr{llir.CallAttrNoMerge, llir.CallAttrNoDuplicate}

// ensureBarrierWrapper synthesizes, once per module, the wrapper that
// picks a barrier at run time when the execution scope is not constant
// (spec.md §4.1.8, scenario F).
func (t *Translator) ensureBarrierWrapper() llir.FuncHandle {
	if t.state.hasBarrierWrapper {
		return t.state.barrierWrapper
	}
	i32 := t.builder.IntType(32, false)
	voidTy := t.builder.VoidType()
	fn := t.builder.BeginFunction(llir.Function{
		Name:    "barrier_wrapper",
		Conv:    llir.CallSPIRFunc,
		Linkage: llir.LinkageInternal,
		RetType: voidTy,
		Params:  []llir.Param{{Type: i32, Name: "execution"}, {Type: i32, Name: "memory"}, {Type: i32, Name: "semantics"}},
	})
	t.builder.AddFuncAttr(fn, llir.FuncAttrAlwaysInline)
	t.builder.AddFuncAttr(fn, llir.FuncAttrConvergent)

	exec := t.builder.Param(fn, 0).Value
	mem := t.builder.Param(fn, 1).Value
	sem := t.builder.Param(fn, 2).Value
	zero := llir.ConstValue(t.builder.IntConstant(i32, 0))
	subgroupScope := llir.ConstValue(t.builder.IntConstant(i32, uint64(spirv.ScopeSubgroup)))

	entry := t.builder.CreateBlock(fn, "entry")
	sgBlk := t.builder.CreateBlock(fn, "subgroup.barrier")
	wgBlk := t.builder.CreateBlock(fn, "workgroup.barrier")
	exit := t.builder.CreateBlock(fn, "exit")

	i1 := t.builder.IntType(1, false)
	isSG := t.builder.AppendInst(fn, entry, llir.Instruction{
		Op: llir.OpICmpEq, HasResult: true, Type: i1,
		Operands: []llir.ValueHandle{exec, subgroupScope},
	})
	t.builder.AppendInst(fn, entry, llir.Instruction{
		Op: llir.OpCondBr, Operands: []llir.ValueHandle{isSG},
		Targets: []llir.BlockHandle{sgBlk, wgBlk},
	})
	t.builder.AppendInst(fn, sgBlk, llir.Instruction{
		Op: llir.OpCall, Callee: muxSubGroupBarrier,
		Operands:  []llir.ValueHandle{zero, mem, sem},
		CallAttrs: muxBarrierAttrs,
	})
	t.builder.AppendInst(fn, sgBlk, llir.Instruction{Op: llir.OpBr, Targets: []llir.BlockHandle{exit}})
	t.builder.AppendInst(fn, wgBlk, llir.Instruction{
		Op: llir.OpCall, Callee: muxWorkGroupBarrier,
		Operands:  []llir.ValueHandle{zero, mem, sem},
		CallAttrs: muxBarrierAttrs,
	})
	t.builder.AppendInst(fn, wgBlk, llir.Instruction{Op: llir.OpBr, Targets: []llir.BlockHandle{exit}})
	t.builder.AppendInst(fn, exit, llir.Instruction{Op: llir.OpRet})
	t.builder.EndFunction(fn)

	t.state.barrierWrapper = fn
	t.state.hasBarrierWrapper = true
	return fn
}

// twoArmWrapper builds the common scope-dispatch wrapper shape: an
// is-subgroup comparison selecting between a sub_group_* and a
// work_group_* body, each arm returning its own call result.
func (t *Translator) twoArmWrapper(name string, retTy llir.TypeHandle, params []llir.Param,
	emitArm func(fn llir.FuncHandle, blk llir.BlockHandle, subgroup bool) llir.ValueHandle) llir.FuncHandle {

	i32 := t.builder.IntType(32, false)
	fn := t.builder.BeginFunction(llir.Function{
		Name:    name,
		Conv:    llir.CallSPIRFunc,
		Linkage: llir.LinkageInternal,
		RetType: retTy,
		Params:  params,
	})
	t.builder.AddFuncAttr(fn, llir.FuncAttrAlwaysInline)
	t.builder.AddFuncAttr(fn, llir.FuncAttrConvergent)

	entry := t.builder.CreateBlock(fn, "entry")
	sgBlk := t.builder.CreateBlock(fn, "subgroup")
	wgBlk := t.builder.CreateBlock(fn, "workgroup")

	exec := t.builder.Param(fn, 0).Value
	subgroupScope := llir.ConstValue(t.builder.IntConstant(i32, uint64(spirv.ScopeSubgroup)))
	i1 := t.builder.IntType(1, false)
	isSG := t.builder.AppendInst(fn, entry, llir.Instruction{
		Op: llir.OpICmpEq, HasResult: true, Type: i1,
		Operands: []llir.ValueHandle{exec, subgroupScope},
	})
	t.builder.AppendInst(fn, entry, llir.Instruction{
		Op: llir.OpCondBr, Operands: []llir.ValueHandle{isSG},
		Targets: []llir.BlockHandle{sgBlk, wgBlk},
	})
	sgRes := emitArm(fn, sgBlk, true)
	t.builder.AppendInst(fn, sgBlk, llir.Instruction{Op: llir.OpRetValue, Operands: []llir.ValueHandle{sgRes}})
	wgRes := emitArm(fn, wgBlk, false)
	t.builder.AppendInst(fn, wgBlk, llir.Instruction{Op: llir.OpRetValue, Operands: []llir.ValueHandle{wgRes}})
	t.builder.EndFunction(fn)
	return fn
}

// ensureReductionWrapper caches the per-(operation, op, operand type)
// group-collective wrapper (spec.md §4.1.8, §4.6).
func (t *Translator) ensureReductionWrapper(operation spirv.GroupOperation, opKey string, base string, hint *signHint, operandTyID spirv.SpvId, operandTy llir.TypeHandle) llir.FuncHandle {
	key := ReductionWrapperKey{Operation: operation.Name(), Op: opKey, OperandTy: operandTyID}
	if fn, ok := t.state.reductionWrapperCache[key]; ok {
		return fn
	}
	i32 := t.builder.IntType(32, false)
	name := fmt.Sprintf("group_%s_%s_%s", operation.Name(), opKey, t.muxTypeSuffix(operandTy))
	at := t.argTypeOf(operandTy, hint, false)

	fn := t.twoArmWrapper(name, operandTy,
		[]llir.Param{{Type: i32, Name: "scope"}, {Type: operandTy, Name: "x"}},
		func(fn llir.FuncHandle, blk llir.BlockHandle, subgroup bool) llir.ValueHandle {
			prefix := "work_group_"
			if subgroup {
				prefix = "sub_group_"
			}
			symbol := t.mangler.Mangle(prefix+operation.Name()+"_"+base, []mangler.ArgType{at})
			return t.builder.AppendInst(fn, blk, llir.Instruction{
				Op: llir.OpCall, HasResult: true, Type: operandTy,
				Callee:    symbol,
				Operands:  []llir.ValueHandle{t.builder.Param(fn, 1).Value},
				CallAttrs: []llir.CallAttr{llir.CallAttrConvergent},
			})
		})
	t.state.reductionWrapperCache[key] = fn
	return fn
}

// ensurePredicateWrapper caches the all/any wrapper, which carries i32
// predicates across the builtin boundary (spec.md §4.1.8).
func (t *Translator) ensurePredicateWrapper(op string) llir.FuncHandle {
	if fn, ok := t.state.predicateWrapperCache[op]; ok {
		return fn
	}
	i32 := t.builder.IntType(32, true)
	scopeTy := t.builder.IntType(32, false)
	at := mangler.Int(32, true)

	fn := t.twoArmWrapper("group_"+op, i32,
		[]llir.Param{{Type: scopeTy, Name: "scope"}, {Type: i32, Name: "predicate"}},
		func(fn llir.FuncHandle, blk llir.BlockHandle, subgroup bool) llir.ValueHandle {
			prefix := "work_group_"
			if subgroup {
				prefix = "sub_group_"
			}
			symbol := t.mangler.Mangle(prefix+op, []mangler.ArgType{at})
			return t.builder.AppendInst(fn, blk, llir.Instruction{
				Op: llir.OpCall, HasResult: true, Type: i32,
				Callee:    symbol,
				Operands:  []llir.ValueHandle{t.builder.Param(fn, 1).Value},
				CallAttrs: []llir.CallAttr{llir.CallAttrConvergent},
			})
		})
	t.state.predicateWrapperCache[op] = fn
	return fn
}

// ensureBroadcastWrapper caches the per-(value type, dimensionality)
// broadcast wrapper. The work-group arm casts every local-id argument
// to size_t — the second documented forced-shape mangling path
// (spec.md §4.3, §4.1.8).
func (t *Translator) ensureBroadcastWrapper(valueTyID spirv.SpvId, valueTy llir.TypeHandle, dim int) llir.FuncHandle {
	key := BroadcastWrapperKey{ValueTy: valueTyID, Dim: dim}
	if fn, ok := t.state.broadcastWrapperCache[key]; ok {
		return fn
	}
	i32 := t.builder.IntType(32, false)
	sizeT := t.builder.IntType(uint8(t.state.addressingBits), false)
	params := []llir.Param{{Type: i32, Name: "scope"}, {Type: valueTy, Name: "value"}}
	for i := 0; i < dim; i++ {
		params = append(params, llir.Param{Type: i32, Name: fmt.Sprintf("id%d", i)})
	}
	valAT := t.argTypeOf(valueTy, nil, false)

	name := fmt.Sprintf("group_broadcast_%dd_%s", dim, t.muxTypeSuffix(valueTy))
	fn := t.twoArmWrapper(name, valueTy, params,
		func(fn llir.FuncHandle, blk llir.BlockHandle, subgroup bool) llir.ValueHandle {
			val := t.builder.Param(fn, 1).Value
			if subgroup {
				// The sub-group flavor is one-dimensional: the first
				// local id selects the lane.
				symbol := t.mangler.Mangle("sub_group_broadcast", []mangler.ArgType{valAT, mangler.Int(32, false)})
				return t.builder.AppendInst(fn, blk, llir.Instruction{
					Op: llir.OpCall, HasResult: true, Type: valueTy,
					Callee:    symbol,
					Operands:  []llir.ValueHandle{val, t.builder.Param(fn, 2).Value},
					CallAttrs: []llir.CallAttr{llir.CallAttrConvergent},
				})
			}
			argTypes := []mangler.ArgType{valAT}
			args := []llir.ValueHandle{val}
			for i := 0; i < dim; i++ {
				wide := t.builder.AppendInst(fn, blk, llir.Instruction{
					Op: llir.OpZExt, HasResult: true, Type: sizeT,
					Operands: []llir.ValueHandle{t.builder.Param(fn, 2+i).Value},
				})
				argTypes = append(argTypes, mangler.Int(uint8(t.state.addressingBits), false))
				args = append(args, wide)
			}
			symbol := t.mangler.Mangle("work_group_broadcast", argTypes)
			return t.builder.AppendInst(fn, blk, llir.Instruction{
				Op: llir.OpCall, HasResult: true, Type: valueTy,
				Callee:    symbol,
				Operands:  args,
				CallAttrs: []llir.CallAttr{llir.CallAttrConvergent},
			})
		})
	t.state.broadcastWrapperCache[key] = fn
	return fn
}
