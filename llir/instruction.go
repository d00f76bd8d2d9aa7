package llir

// Op enumerates the instruction opcodes the low-level IR supports,
// grouped the way spec.md §2.3 groups the translator's instruction
// surface: ALU, memory, address computation, casts, comparisons,
// control flow, and synchronization/atomics.
type Op uint8

const (
	OpUnknown Op = iota

	// ALU: binary arithmetic/bitwise/logical. Operands[0], Operands[1].
	OpAdd
	OpSub
	OpMul
	OpUDiv
	OpSDiv
	OpFDiv
	OpURem
	OpSRem
	OpFRem
	OpAnd
	OpOr
	OpXor
	OpShl
	OpLShr
	OpAShr
	OpFAdd
	OpFSub
	OpFMul

	// ALU: unary. Operands[0].
	OpNeg
	OpFNeg
	OpNot

	// Memory. Alloca has no operands; Load takes a pointer; Store takes
	// a pointer and a value and has no Result.
	OpAlloca
	OpLoad
	OpStore
	// MemCpy/MemSet carry (dst, src) / (dst, byteValue) operands; the
	// byte count is MemSize for OpCopyMemory's computed pointee size, or
	// a third operand value for OpCopyMemorySized.
	OpMemCpy
	OpMemSet
	OpLifetimeStart
	OpLifetimeStop

	// Address computation. Operands[0] is the base pointer, the rest are
	// indices (spec.md §4.1.8 OpAccessChain family).
	OpGEP
	// ArrayLength computes the element count of the runtime array tail
	// of a struct pointed to by Operands[0] (SUPPLEMENTED FEATURES).
	OpArrayLength

	// Casts. Operands[0] is the source value; Type is the destination.
	OpBitcast
	OpTrunc
	OpZExt
	OpSExt
	OpFPTrunc
	OpFPExt
	OpFPToUI
	OpFPToSI
	OpUIToFP
	OpSIToFP
	OpPtrToInt
	OpIntToPtr

	// Comparisons. Operands[0], Operands[1]; Result is always a bool or
	// bool-vector value.
	OpICmpEq
	OpICmpNe
	OpICmpUGT
	OpICmpUGE
	OpICmpULT
	OpICmpULE
	OpICmpSGT
	OpICmpSGE
	OpICmpSLT
	OpICmpSLE
	OpFCmpOEQ
	OpFCmpONE
	OpFCmpOGT
	OpFCmpOGE
	OpFCmpOLT
	OpFCmpOLE
	OpFCmpUEQ
	OpFCmpUNE

	// Composite/select.
	OpSelect          // Operands: cond, trueVal, falseVal
	OpExtractValue    // Operands[0] aggregate, Indices for constant indices
	OpInsertValue     // Operands[0] aggregate, Operands[1] element, Indices
	OpExtractElement  // Operands: vector, index (dynamic)
	OpInsertElement   // Operands: vector, element, index (dynamic)
	OpShuffleVector   // Operands: v1, v2; Indices holds the lane mask
	OpCompositeConstruct

	// Call. Callee names the llir Function by name (resolved by the
	// caller against Module.Functions); Operands are the arguments.
	OpCall
	// CallExt is the call an extended-instruction-set handler emits;
	// Callee holds the mangled builtin symbol and Operands the arguments
	// (ExtSet/ExtOp are left unset).
	OpCallExt

	// Atomics. Operands[0] pointer, Operands[1] value (absent for Load),
	// Operands[2] comparand (CompareExchange only). Scope/Semantics hold
	// the raw SPIR-V memory scope/semantics words.
	OpAtomicLoad
	OpAtomicStore
	OpAtomicExchange
	OpAtomicCompareExchange
	OpAtomicIAdd
	OpAtomicISub
	OpAtomicAnd
	OpAtomicOr
	OpAtomicXor
	OpAtomicUMin
	OpAtomicUMax
	OpAtomicSMin
	OpAtomicSMax

	// Synchronization. ControlBarrier/MemoryBarrier read Scope/Semantics;
	// the non-constant-scope case is lowered by the translator into a
	// call to a synthesized wrapper (spec.md §4.1.9) before an
	// instruction of this kind is ever emitted.
	OpControlBarrier
	OpMemoryBarrier

	OpUndef
	OpPhi

	// Terminators.
	OpBr
	OpCondBr
	OpSwitch
	OpRet
	OpRetValue
	OpUnreachable
	OpKill // OpKill / OpTerminateInvocation
)

func (o Op) IsTerminator() bool {
	switch o {
	case OpBr, OpCondBr, OpSwitch, OpRet, OpRetValue, OpUnreachable, OpKill:
		return true
	default:
		return false
	}
}

// PhiIncoming is one (value, predecessor) pair of an OpPhi.
type PhiIncoming struct {
	Value ValueHandle
	Block BlockHandle
}

// SwitchCase is one (literal, target) pair of an OpSwitch.
type SwitchCase struct {
	Literal uint64
	Target  BlockHandle
}

// Instruction is one entry of a BasicBlock. Not every field applies to
// every Op; unused fields are left zero. This flat shape (rather than a
// sum type per Op) mirrors the teacher's ir.Expression arena entries,
// which are likewise one struct wide enough to cover every expression
// kind rather than an interface per kind, since the arena stores them by
// value.
type Instruction struct {
	Op     Op
	Result ValueHandle
	HasResult bool
	Type   TypeHandle

	Operands []ValueHandle
	Indices  []uint32 // constant indices for GEP/ExtractValue/InsertValue

	Callee string
	ExtSet string
	ExtOp  uint32

	Scope     uint32
	Semantics uint32

	Incoming []PhiIncoming

	Targets []BlockHandle // Br: [dest]; CondBr: [then, else]
	Cases   []SwitchCase
	Default BlockHandle

	// CallAttrs carries call-site attributes for OpCall/OpCallExt
	// (spec.md §4.1.9's NoMerge+NoDuplicate on barrier calls, the
	// param-attribute mirroring OpFunctionCall performs onto the call
	// site per spec.md §4.1.4).
	CallAttrs []CallAttr
	// ParamAttrs mirrors callee parameter attributes (ByVal/ZExt/...)
	// onto this call's arguments, one entry per operand, per spec.md
	// §4.1.4's "mirror the callee's parameter attributes onto the call
	// site" rule.
	ParamAttrs [][]ParamAttr

	// Volatile/Aligned mirror MemoryAccess flags on Load/Store/GEP's
	// backing memory op (spec.md §4.1.5).
	Volatile  bool
	Aligned   bool
	Alignment uint32

	// InBounds marks the InBounds* variant of GEP (spec.md §4.1.5).
	InBounds bool

	// MemSize is the byte count of an OpMemCpy whose size was computed
	// statically from the pointee type (OpCopyMemory's lowering).
	MemSize uint64

	// BranchWeights carries OpBranchConditional's optional two literal
	// weights as "branch_weights" profile metadata.
	BranchWeights    [2]uint32
	HasBranchWeights bool

	// NoSignedWrap/NoUnsignedWrap mirror the NSW/NUW decorations on
	// Add/Sub/Mul/Shl (spec.md §4.1.6).
	NoSignedWrap   bool
	NoUnsignedWrap bool

	// Loc is an opaque handle into whatever the dbgir.Builder
	// implementation uses to represent a resolved (line, column, scope,
	// inlined-at) debug location (spec.md §4.1.11); llir does not
	// interpret it, only carries it so a consumer (e.g. a textual IR
	// dumper) can resolve it back through the same dbgir.Builder.
	HasLoc bool
	Loc    uint32
}

// CallAttr is a call-site attribute (spec.md §4.1.4, §4.1.9).
type CallAttr uint8

const (
	CallAttrNoMerge CallAttr = iota
	CallAttrNoDuplicate
	CallAttrConvergent
)
