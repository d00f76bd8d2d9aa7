package translator

import (
	"fmt"

	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// translateControlFlow implements spec.md §4.1.7: labels, branches,
// switches, phis, returns, and lifetime markers.
func (t *Translator) translateControlFlow(rec spirv.OpcodeRecord) error {
	switch rec.Op {
	case spirv.OpLabel:
		return t.translateLabel(rec)
	case spirv.OpBranch:
		return t.translateBranch(rec)
	case spirv.OpBranchConditional:
		return t.translateBranchConditional(rec)
	case spirv.OpSwitch:
		return t.translateSwitch(rec)
	case spirv.OpLoopMerge:
		return t.translateLoopMerge(rec)
	case spirv.OpReturn:
		return t.emitTerminator(llir.Instruction{Op: llir.OpRet})
	case spirv.OpReturnValue:
		v, err := t.value(rec.Id(0))
		if err != nil {
			return err
		}
		return t.emitTerminator(llir.Instruction{Op: llir.OpRetValue, Operands: []llir.ValueHandle{v}})
	case spirv.OpUnreachable:
		return t.emitTerminator(llir.Instruction{Op: llir.OpUnreachable})
	case spirv.OpKill:
		return t.emitTerminator(llir.Instruction{Op: llir.OpUnreachable})
	case spirv.OpPhi:
		return t.translatePhi(rec)
	case spirv.OpLifetimeStart:
		return t.translateLifetime(rec, llir.OpLifetimeStart)
	case spirv.OpLifetimeStop:
		return t.translateLifetime(rec, llir.OpLifetimeStop)
	default:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "unreachable control-flow dispatch")
	}
}

// blockFor resolves a label id to a block handle within the current
// function, forward-creating the block when a branch or phi names it
// before its OpLabel appears.
func (t *Translator) blockFor(id spirv.SpvId) (llir.BlockHandle, error) {
	if !t.hasCurrentFunc {
		return 0, spirv.NewErrorId(spirv.MalformedInstruction, spirv.OpLabel, id, "label outside a function")
	}
	ids := t.blockIDs[t.currentFunc]
	if h, ok := ids[id]; ok {
		return h, nil
	}
	name := t.state.names[id]
	if name == "" {
		name = fmt.Sprintf("b%d", uint32(id))
	}
	h := t.builder.CreateBlock(t.currentFunc, name)
	ids[id] = h
	return h, nil
}

func (t *Translator) translateLabel(rec spirv.OpcodeRecord) error {
	resID := rec.Id(0)
	h, err := t.blockFor(resID)
	if err != nil {
		return err
	}

	// Stream order: a forward-created block is re-sequenced so the
	// linear order matches the instruction stream even though its
	// handle was assigned earlier.
	seq := t.blockSeq[t.currentFunc]
	t.blockSeq[t.currentFunc] = seq + 1
	t.builder.SetBlockSeq(t.currentFunc, h, seq)

	t.hasCurrentBlock = true
	t.currentBlock = h
	t.currentBlockID = resID
	t.bindMarker(rec, resID)

	if seq == 0 {
		if err := t.drainDeferredSpecOps(); err != nil {
			return err
		}
	}
	t.anchorLineRange()
	t.makeLexicalScopeForBlock(t.currentFunc, h)
	return nil
}

// emitTerminator appends a block terminator and performs the shared
// scope-closing transition (spec.md §4.1.7, §4.1.11).
func (t *Translator) emitTerminator(inst llir.Instruction) error {
	if _, err := t.appendInst(inst); err != nil {
		return err
	}
	t.closeScope()
	t.hasCurrentBlock = false
	return nil
}

func (t *Translator) translateBranch(rec spirv.OpcodeRecord) error {
	target, err := t.blockFor(rec.Id(0))
	if err != nil {
		return err
	}
	return t.emitTerminator(llir.Instruction{Op: llir.OpBr, Targets: []llir.BlockHandle{target}})
}

func (t *Translator) translateBranchConditional(rec spirv.OpcodeRecord) error {
	cond, err := t.value(rec.Id(0))
	if err != nil {
		return err
	}
	thenBlk, err := t.blockFor(rec.Id(1))
	if err != nil {
		return err
	}
	elseBlk, err := t.blockFor(rec.Id(2))
	if err != nil {
		return err
	}
	inst := llir.Instruction{
		Op:       llir.OpCondBr,
		Operands: []llir.ValueHandle{cond},
		Targets:  []llir.BlockHandle{thenBlk, elseBlk},
	}
	if rec.Len() >= 5 {
		inst.BranchWeights = [2]uint32{rec.MustWord(3), rec.MustWord(4)}
		inst.HasBranchWeights = true
	}
	return t.emitTerminator(inst)
}

func (t *Translator) translateSwitch(rec spirv.OpcodeRecord) error {
	selID := rec.Id(0)
	sel, err := t.value(selID)
	if err != nil {
		return err
	}
	selTy, err := t.valueType(selID)
	if err != nil {
		return err
	}
	def, err := t.blockFor(rec.Id(1))
	if err != nil {
		return err
	}

	// Case literal width follows the selector's scalar bit width: one
	// 32-bit word up to 32 bits, two beyond (spec.md §4.1.7).
	width, ok := t.intWidth(selTy)
	if !ok {
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, selID, "switch selector is not an integer")
	}
	literalWords := 1
	if width > 32 {
		literalWords = 2
	}

	var cases []llir.SwitchCase
	for i := 2; i+literalWords < rec.Len(); i += literalWords + 1 {
		var lit uint64
		if literalWords == 2 {
			lit = uint64(rec.MustWord(i)) | uint64(rec.MustWord(i+1))<<32
		} else {
			lit = uint64(rec.MustWord(i))
		}
		target, err := t.blockFor(rec.Id(i + literalWords))
		if err != nil {
			return err
		}
		cases = append(cases, llir.SwitchCase{Literal: lit, Target: target})
	}
	return t.emitTerminator(llir.Instruction{
		Op:       llir.OpSwitch,
		Operands: []llir.ValueHandle{sel},
		Default:  def,
		Cases:    cases,
	})
}

func (t *Translator) translateLoopMerge(rec spirv.OpcodeRecord) error {
	continueBlk, err := t.blockFor(rec.Id(1))
	if err != nil {
		return err
	}
	control := spirv.LoopControl(rec.MustWord(2))
	unroll := control&spirv.LoopControlUnroll != 0
	dontUnroll := control&spirv.LoopControlDontUnroll != 0
	switch {
	case unroll && dontUnroll:
		// Contradictory hints cancel out.
	case unroll:
		t.builder.SetBlockUnroll(t.currentFunc, continueBlk, llir.UnrollEnable)
	case dontUnroll:
		t.builder.SetBlockUnroll(t.currentFunc, continueBlk, llir.UnrollDisable)
	}
	return nil
}

func (t *Translator) translatePhi(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	idx := t.builder.BlockLen(t.currentFunc, t.currentBlock)
	v, err := t.appendInst(llir.Instruction{Op: llir.OpPhi, HasResult: true, Type: resTy})
	if err != nil {
		return err
	}
	fixup := phiFixup{Func: t.currentFunc, Block: t.currentBlock, Inst: idx, ResTy: resTy}
	for i := 2; i+1 < rec.Len(); i += 2 {
		fixup.Edges = append(fixup.Edges, pendingEdge{ValueID: rec.Id(i), BlockID: rec.Id(i + 1)})
	}
	t.pendingPhis = append(t.pendingPhis, fixup)
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

// populatePhi fills every pending phi's incoming edges once all
// predecessor blocks exist (spec.md §4.1.7). An edge whose value id was
// never bound (dead code only reachable via an untranslated back edge)
// falls back to an undef of the phi's type rather than failing.
func (t *Translator) populatePhi() {
	for _, fix := range t.pendingPhis {
		incoming := make([]llir.PhiIncoming, 0, len(fix.Edges))
		for _, e := range fix.Edges {
			v, err := t.value(e.ValueID)
			if err != nil {
				v = llir.ConstValue(t.builder.UndefConstant(fix.ResTy))
			}
			blk, ok := t.blockIDs[fix.Func][e.BlockID]
			if !ok {
				continue
			}
			incoming = append(incoming, llir.PhiIncoming{Value: v, Block: blk})
		}
		t.builder.PatchPhi(fix.Func, fix.Block, fix.Inst, incoming)
	}
	t.pendingPhis = nil
}

func (t *Translator) translateLifetime(rec spirv.OpcodeRecord, op llir.Op) error {
	ptr, err := t.value(rec.Id(0))
	if err != nil {
		return err
	}
	_, err = t.appendInst(llir.Instruction{
		Op:       op,
		Operands: []llir.ValueHandle{ptr},
		MemSize:  uint64(rec.MustWord(1)),
	})
	return err
}
