// Package translator implements the Dispatch Core (spec.md §2.7, §4):
// a linear, opcode-keyed walk over a SPIR-V instruction stream that
// maintains ModuleState and emits low-level IR through llir.Builder and
// dbgir.Builder.
package translator

import (
	"fmt"

	"github.com/oneapi-go/spirv-ll/dbgir"
	"github.com/oneapi-go/spirv-ll/device"
	"github.com/oneapi-go/spirv-ll/extinst"
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// binding is the id_table's per-SpvId entry (spec.md §3): the opcode
// that produced the id, plus at most one of a type/value/const/global/
// function handle (the id namespace is flat, but each id only ever
// resolves through one of these accessors since the core knows from the
// producing opcode which kind to expect).
type binding struct {
	Op spirv.Opcode

	// Rec is the full originating record (spec.md §3's "originating
	// opcode record"), kept so later consumers can re-read operand
	// details the eager translation did not need (image access
	// qualifiers, type signedness for kernel argument naming).
	Rec spirv.OpcodeRecord

	// TypeID is the SPIR-V result-type id of a value-producing opcode,
	// and ValueType its resolved IR type.
	TypeID    spirv.SpvId
	ValueType llir.TypeHandle

	Type    llir.TypeHandle
	HasType bool

	Value    llir.ValueHandle
	HasValue bool

	Const    llir.ConstHandle
	HasConst bool

	Global    llir.GlobalHandle
	HasGlobal bool

	Func    llir.FuncHandle
	HasFunc bool

	// Pending marks a forward-function-reference placeholder (spec.md
	// §3's forward_function_refs) or a forward basic block awaiting
	// OpLabel; resolved bindings clear it.
	Pending bool
}

// DecorationRecord is one OpDecorate/OpMemberDecorate's payload: the
// decoration kind plus its literal operand words, in the order they
// appeared (spec.md §3, §4.2's "decoration queries are ordered").
type DecorationRecord struct {
	Kind      spirv.Decoration
	Operands  []uint32
}

type memberKey struct {
	id     spirv.SpvId
	member uint32
}

// EntryPointInfo is one OpEntryPoint record (spec.md §3).
type EntryPointInfo struct {
	Model spirv.ExecutionModel
	Name  string
}

// IncompleteStruct is a struct recorded as incomplete because one of its
// member ids was a not-yet-resolved forward pointer (spec.md §3, §4.1.2).
type IncompleteStruct struct {
	StructID      spirv.SpvId
	StructType    llir.TypeHandle
	MemberIDs     []spirv.SpvId
	Packed        bool
}

// ReductionWrapperKey identifies a synthesized group-reduction wrapper
// (spec.md §4.6): (group operation kind, op name with signedness
// prefix, operand type id).
type ReductionWrapperKey struct {
	Operation string // "reduce" / "scan_exclusive" / "scan_inclusive"
	Op        string // e.g. "s_min", "u_max", "add"
	OperandTy spirv.SpvId
}

// BroadcastWrapperKey identifies a synthesized group-broadcast wrapper:
// (value type id, dimensionality).
type BroadcastWrapperKey struct {
	ValueTy spirv.SpvId
	Dim     int
}

// lineRange is the debug-info scope state machine spec.md §9 describes:
// {no range}, {range open, no instructions yet}, {range open, 1+
// instructions emitted since the anchor}.
type lineRange struct {
	Active     bool
	Anchored   bool // false while the range opened outside any basic block
	Line       uint32
	Column     uint32
	File       spirv.SpvId
	AnchorFunc llir.FuncHandle
	AnchorBlk  llir.BlockHandle
	AnchorIdx  int // index into the block's Insts at the moment the range opened
}

// ModuleState is the mutable symbol table the dispatch core owns for the
// duration of one translation (spec.md §3).
type ModuleState struct {
	Device   device.DeviceDescriptor
	SpecInfo device.SpecInfoProvider

	idTable map[spirv.SpvId]*binding

	decorations       map[spirv.SpvId][]DecorationRecord
	memberDecorations map[memberKey][]DecorationRecord

	executionModes map[spirv.SpvId][]ExecutionModeRecord
	entryPoints    map[spirv.SpvId]EntryPointInfo

	capabilities map[spirv.Capability]bool
	extensions   map[string]bool

	forwardPointerIDs map[spirv.SpvId]bool
	incompleteStructs []IncompleteStruct
	forwardFuncRefs   map[spirv.SpvId]bool

	debugStrings map[spirv.SpvId]string
	names        map[spirv.SpvId]string
	memberNames  map[memberKey]string

	addressingModel spirv.AddressingModel
	addressingBits  uint32

	workgroupSizeHint    [3]uint32
	hasWorkgroupSizeHint bool

	sampledImages map[spirv.SpvId]sampledImagePair

	extInstSets map[spirv.SpvId]extinst.Set

	paramTypeIDs map[spirv.SpvId][]spirv.SpvId

	perBlockLexicalScope map[llir.BlockHandle]dbgir.LexicalBlockHandle

	implicitDebugScopesEnabled bool

	reductionWrapperCache  map[ReductionWrapperKey]llir.FuncHandle
	broadcastWrapperCache  map[BroadcastWrapperKey]llir.FuncHandle
	predicateWrapperCache  map[string]llir.FuncHandle
	barrierWrapper         llir.FuncHandle
	hasBarrierWrapper      bool

	sourceText    string
	sourceFile    spirv.SpvId
	sourceLang    spirv.SourceLanguage
	sourceVersion uint32
	hasSource     bool

	// deferredSpecConstantOps holds OpFRem/OpFMod OpSpecConstantOp ids
	// awaiting the first basic block of any function (spec.md §4.5).
	deferredSpecConstantOps []spirv.SpvId

	currentLine lineRange

	// renameSuffix counts ".old" suffixes already issued for a
	// given function name, so repeated collisions get distinct names
	// (spec.md §4.1.4's "rename the preexisting function").
	renameSuffix map[string]int
}

type sampledImagePair struct {
	Image   llir.ValueHandle
	Sampler llir.ValueHandle
}

// ExecutionModeRecord is one OpExecutionMode's payload.
type ExecutionModeRecord struct {
	Mode     spirv.ExecutionMode
	Operands []uint32
}

func newModuleState(dev device.DeviceDescriptor, specInfo device.SpecInfoProvider) *ModuleState {
	return &ModuleState{
		Device:   dev,
		SpecInfo: specInfo,

		idTable: make(map[spirv.SpvId]*binding),

		decorations:       make(map[spirv.SpvId][]DecorationRecord),
		memberDecorations: make(map[memberKey][]DecorationRecord),

		executionModes: make(map[spirv.SpvId][]ExecutionModeRecord),
		entryPoints:    make(map[spirv.SpvId]EntryPointInfo),

		capabilities: make(map[spirv.Capability]bool),
		extensions:   make(map[string]bool),

		forwardPointerIDs: make(map[spirv.SpvId]bool),
		forwardFuncRefs:   make(map[spirv.SpvId]bool),

		debugStrings: make(map[spirv.SpvId]string),
		names:        make(map[spirv.SpvId]string),
		memberNames:  make(map[memberKey]string),

		sampledImages: make(map[spirv.SpvId]sampledImagePair),
		extInstSets:   make(map[spirv.SpvId]extinst.Set),
		paramTypeIDs:  make(map[spirv.SpvId][]spirv.SpvId),

		perBlockLexicalScope: make(map[llir.BlockHandle]dbgir.LexicalBlockHandle),

		implicitDebugScopesEnabled: true,

		reductionWrapperCache: make(map[ReductionWrapperKey]llir.FuncHandle),
		broadcastWrapperCache: make(map[BroadcastWrapperKey]llir.FuncHandle),
		predicateWrapperCache: make(map[string]llir.FuncHandle),

		renameSuffix: make(map[string]int),
	}
}

func (s *ModuleState) bind(id spirv.SpvId, b *binding) {
	s.idTable[id] = b
}

func (s *ModuleState) lookup(id spirv.SpvId) (*binding, bool) {
	b, ok := s.idTable[id]
	return b, ok
}

// requireType resolves id to an already-bound type handle.
func (s *ModuleState) requireType(id spirv.SpvId) (llir.TypeHandle, error) {
	b, ok := s.lookup(id)
	if !ok || !b.HasType {
		return 0, spirv.NewErrorId(spirv.MalformedInstruction, 0, id, "expected a type id")
	}
	return b.Type, nil
}

// requireValue resolves id to an already-bound SSA value, whether
// produced by a constant, a global, or an instruction result.
func (s *ModuleState) requireValue(id spirv.SpvId) (llir.ValueHandle, error) {
	b, ok := s.lookup(id)
	if !ok {
		return 0, spirv.NewErrorId(spirv.MalformedInstruction, 0, id, "undefined id")
	}
	if b.HasValue {
		return b.Value, nil
	}
	return 0, spirv.NewErrorId(spirv.MalformedInstruction, 0, id, "id does not resolve to a value")
}

func (s *ModuleState) addDecoration(id spirv.SpvId, rec DecorationRecord) {
	s.decorations[id] = append(s.decorations[id], rec)
}

func (s *ModuleState) addMemberDecoration(id spirv.SpvId, member uint32, rec DecorationRecord) {
	k := memberKey{id: id, member: member}
	s.memberDecorations[k] = append(s.memberDecorations[k], rec)
}

// firstDecoration returns the first decoration of kind k on id, per
// spec.md §4.2's "first decoration of kind K on id X is well-defined".
func (s *ModuleState) firstDecoration(id spirv.SpvId, k spirv.Decoration) (DecorationRecord, bool) {
	for _, d := range s.decorations[id] {
		if d.Kind == k {
			return d, true
		}
	}
	return DecorationRecord{}, false
}

func (s *ModuleState) hasDecoration(id spirv.SpvId, k spirv.Decoration) bool {
	_, ok := s.firstDecoration(id, k)
	return ok
}

// allDecorations returns every decoration of kind k on id, in insertion
// order (a target may carry more than one of the same kind, e.g. two
// FuncParamAttr decorations).
func (s *ModuleState) allDecorations(id spirv.SpvId, k spirv.Decoration) []DecorationRecord {
	var out []DecorationRecord
	for _, d := range s.decorations[id] {
		if d.Kind == k {
			out = append(out, d)
		}
	}
	return out
}

func (s *ModuleState) nextRenameSuffix(name string) string {
	n := s.renameSuffix[name] + 1
	s.renameSuffix[name] = n
	out := name
	for i := 0; i < n; i++ {
		out += ".old"
	}
	return out
}

// mangler.ArgType helpers shared by every §4.1.6/§4.1.8/§4.1.10 builtin
// call site live in mangle.go since they depend on llir type lookups.

func (s *ModuleState) String() string {
	return fmt.Sprintf("ModuleState{ids=%d, capabilities=%d, extensions=%d}",
		len(s.idTable), len(s.capabilities), len(s.extensions))
}
