package translator

import (
	"github.com/oneapi-go/spirv-ll/dbgir"
	"github.com/oneapi-go/spirv-ll/device"
	"github.com/oneapi-go/spirv-ll/extinst"
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/mangler"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// phiFixup is one OpPhi awaiting its second-pass edge population
// (spec.md §4.1.7's populatePhi).
type phiFixup struct {
	Func  llir.FuncHandle
	Block llir.BlockHandle
	Inst  int // index into the block's Insts
	ResTy llir.TypeHandle
	Edges []pendingEdge
}

type pendingEdge struct {
	ValueID spirv.SpvId
	BlockID spirv.SpvId
}

// deferredSpecOp is one OpFRem/OpFMod OpSpecConstantOp held back until a
// function body opens (spec.md §4.5).
type deferredSpecOp struct {
	Rec spirv.OpcodeRecord
}

// Translator is the Dispatch Core (spec.md §2.7): translate(record) for
// each instruction in program order, then two closing passes (forward-
// reference resolution, phi-edge population).
type Translator struct {
	state   *ModuleState
	builder llir.Builder
	debug   dbgir.Builder
	mangler mangler.Mangler
	extReg  *extinst.Registry

	// currentFunc/currentBlock track the open-scope invariants spec.md
	// §3 names: at most one current function, at most one current basic
	// block. For kernels currentFunc is the SPIR_FUNC body; the
	// SPIR_KERNEL wrapper is reachable through wrapperOf.
	hasCurrentFunc    bool
	currentFunc       llir.FuncHandle
	currentFuncID     spirv.SpvId
	currentFuncTypeID spirv.SpvId
	currentIsDecl     bool

	hasCurrentBlock bool
	currentBlock    llir.BlockHandle
	currentBlockID  spirv.SpvId

	// blockIDs maps a function's block ids to their handles so branches
	// and populatePhi can resolve a target id without scanning; blockSeq
	// numbers OpLabel openings so the stream order survives
	// forward-created blocks.
	blockIDs map[llir.FuncHandle]map[spirv.SpvId]llir.BlockHandle
	blockSeq map[llir.FuncHandle]int

	pendingPhis []phiFixup

	// wrapperOf maps a kernel body function to its SPIR_KERNEL wrapper
	// (spec.md §4.1.4); paramIDs records each function's
	// OpFunctionParameter ids in declaration order.
	wrapperOf map[llir.FuncHandle]llir.FuncHandle
	paramIDs  map[llir.FuncHandle][]spirv.SpvId
	nextParam map[llir.FuncHandle]int

	// forwardPlaceholders maps a not-yet-defined callee id to the
	// placeholder FuncHandle synthesized for it (spec.md §3's
	// forward_function_refs).
	forwardPlaceholders map[spirv.SpvId]llir.FuncHandle

	// deferredSpecOps is drained at the first basic block of the first
	// function (spec.md §4.5).
	deferredSpecOps []deferredSpecOp
	deferredDrained bool

	// subprograms caches the lazily created per-function debug
	// subprogram (spec.md §4.1.11).
	subprograms map[llir.FuncHandle]dbgir.SubprogramHandle

	hasDebugFile bool
	debugFile    dbgir.FileHandle
	debugUnit    dbgir.CompileUnitHandle

	// overflowIntrinsics tracks llvm.{u}add/sub.with.overflow
	// declarations already emitted (spec.md §4.1.6: declared on demand).
	overflowIntrinsics map[string]llir.FuncHandle
}

// New constructs a Translator over a fresh llir.Builder and dbgir.Builder,
// ready to consume an opcode stream (spec.md §6's external interfaces).
func New(dev device.DeviceDescriptor, specInfo device.SpecInfoProvider) *Translator {
	return &Translator{
		state:   newModuleState(dev, specInfo),
		builder: llir.NewBuilder(),
		debug:   dbgir.NewBuilder(),
		mangler: mangler.New(),
		extReg:  extinst.NewRegistry(),

		blockIDs:            make(map[llir.FuncHandle]map[spirv.SpvId]llir.BlockHandle),
		blockSeq:            make(map[llir.FuncHandle]int),
		wrapperOf:           make(map[llir.FuncHandle]llir.FuncHandle),
		paramIDs:            make(map[llir.FuncHandle][]spirv.SpvId),
		nextParam:           make(map[llir.FuncHandle]int),
		forwardPlaceholders: make(map[spirv.SpvId]llir.FuncHandle),
		subprograms:         make(map[llir.FuncHandle]dbgir.SubprogramHandle),
		overflowIntrinsics:  make(map[string]llir.FuncHandle),
	}
}

// Translate walks every record in order (spec.md §4.1's translate
// contract), then runs the forward-reference-resolution and phi-edge
// population closing passes.
func (t *Translator) Translate(records []spirv.OpcodeRecord) (*llir.Module, error) {
	for _, rec := range records {
		if err := t.dispatch(rec); err != nil {
			return nil, err
		}
	}
	if err := t.resolveForwardReferences(); err != nil {
		return nil, err
	}
	t.populatePhi()
	return t.builder.Module(), nil
}

// ModuleState exposes the read-only symbol table for a downstream
// consumer after translation completes (spec.md §5's "after translation
// it is read-only").
func (t *Translator) ModuleState() *ModuleState { return t.state }

// DebugBuilder exposes the debug-metadata arena built alongside the IR,
// so a consumer can resolve the opaque location handles instructions
// carry.
func (t *Translator) DebugBuilder() dbgir.Builder { return t.debug }

func (t *Translator) dispatch(rec spirv.OpcodeRecord) error {
	switch {
	case isMetadataOpcode(rec.Op):
		return t.translateMetadata(rec)
	case isTypeOpcode(rec.Op):
		return t.translateType(rec)
	case isConstantOpcode(rec.Op):
		return t.translateConstant(rec)
	case isFunctionOpcode(rec.Op):
		return t.translateFunction(rec)
	case isMemoryOpcode(rec.Op):
		return t.translateMemory(rec)
	case isControlFlowOpcode(rec.Op):
		return t.translateControlFlow(rec)
	case isAtomicOrGroupOpcode(rec.Op):
		return t.translateAtomicOrGroup(rec)
	case isCompositeOpcode(rec.Op):
		return t.translateComposite(rec)
	case isImageOpcode(rec.Op):
		return t.translateImage(rec)
	case isDebugOpcode(rec.Op):
		return t.translateDebug(rec)
	case isArithOpcode(rec.Op):
		return t.translateArith(rec)
	case rec.Op == spirv.OpUndef:
		return t.translateUndef(rec)
	case rec.Op == spirv.OpReadPipe || rec.Op == spirv.OpWritePipe:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "pipe operations are not supported")
	case rec.Op.Known():
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "recognized opcode is out of scope for the kernel profile")
	default:
		return spirv.NewError(spirv.MalformedInstruction, rec.Op, "opcode not recognized")
	}
}

// translateUndef implements the poison base case: OpUndef yields an
// undef value of the result type.
func (t *Translator) translateUndef(rec spirv.OpcodeRecord) error {
	resTy, err := t.state.requireType(rec.Id(0))
	if err != nil {
		return err
	}
	c := t.builder.UndefConstant(resTy)
	t.bindConst(rec, rec.Id(0), rec.Id(1), c)
	return nil
}

// appendInst is the one chokepoint every family file calls through, so
// the no-active-insertion-point invariant stays centralized.
func (t *Translator) appendInst(inst llir.Instruction) (llir.ValueHandle, error) {
	if !t.hasCurrentFunc || !t.hasCurrentBlock {
		return 0, spirv.NewError(spirv.MalformedInstruction, 0, "no active insertion point")
	}
	return t.builder.AppendInst(t.currentFunc, t.currentBlock, inst), nil
}

// resolveForwardReferences implements spec.md §5/§8's closing
// invariant: every forward function reference and forward pointer must
// be resolved, or translation fails.
func (t *Translator) resolveForwardReferences() error {
	for id := range t.state.forwardFuncRefs {
		if _, ok := t.forwardPlaceholders[id]; ok {
			return spirv.NewErrorId(spirv.ForwardReferenceUnresolved, spirv.OpFunctionCall, id,
				"forward function reference never resolved by OpFunctionEnd")
		}
	}
	for id := range t.state.forwardPointerIDs {
		b, ok := t.state.lookup(id)
		if !ok || !b.HasType || b.Pending {
			return spirv.NewErrorId(spirv.ForwardReferenceUnresolved, spirv.OpTypeForwardPointer, id,
				"forward pointer type never completed by a matching OpTypePointer")
		}
	}
	if len(t.state.incompleteStructs) != 0 {
		s := t.state.incompleteStructs[0]
		return spirv.NewErrorId(spirv.ForwardReferenceUnresolved, spirv.OpTypeStruct, s.StructID,
			"struct member list never finalized")
	}
	return nil
}
