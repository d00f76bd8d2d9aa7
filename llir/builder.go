package llir

// Builder is the narrow facade the translator uses to populate a Module.
// It exists so the dispatch core (translator.Translator) never reaches
// into Module's slices directly: every mutation goes through a method
// here, the same discipline the teacher's ir.Module applies by only
// exposing GetOrCreate-style accessors instead of public Append methods
// on its arenas. A second implementation backed by a real external IR
// library can satisfy this interface without the dispatch core changing
// a line.
type Builder interface {
	// Types. Struct/Pointer forward declarations are two-step: declare a
	// placeholder handle, then resolve it once its referent is known.
	VoidType() TypeHandle
	IntType(width uint8, signed bool) TypeHandle
	FloatType(width uint8) TypeHandle
	VectorType(elem TypeHandle, count uint32) TypeHandle
	MatrixType(column TypeHandle, columns uint32) TypeHandle
	ArrayType(elem TypeHandle, length uint32) TypeHandle
	RuntimeArrayType(elem TypeHandle) TypeHandle
	PointerType(pointee TypeHandle, as AddressSpace) TypeHandle
	ForwardPointerType(as AddressSpace) TypeHandle
	ResolveForwardPointer(fwd TypeHandle, pointee TypeHandle)
	FunctionType(ret TypeHandle, params []TypeHandle) TypeHandle
	DeclareStructType(name string) TypeHandle
	ResolveStructType(h TypeHandle, members []TypeHandle, packed bool)
	ImageType(kind ImageKind) TypeHandle
	SamplerType() TypeHandle
	EventType() TypeHandle
	OpaqueType(name string) TypeHandle
	NameType(h TypeHandle, name string)
	Type(h TypeHandle) Type

	// Constants.
	IntConstant(typ TypeHandle, bits uint64) ConstHandle
	FloatConstant(typ TypeHandle, bits uint64) ConstHandle
	BoolConstant(typ TypeHandle, v bool) ConstHandle
	NullConstant(typ TypeHandle) ConstHandle
	CompositeConstant(typ TypeHandle, elems []ConstHandle) ConstHandle
	UndefConstant(typ TypeHandle) ConstHandle
	SpecConstant(typ TypeHandle, inner ConstPayload, specID uint32, hasID bool) ConstHandle
	SpecConstantOp(typ TypeHandle, innerOp uint16, operands []ConstHandle) ConstHandle
	Const(h ConstHandle) Const

	// Globals.
	AddGlobal(g Global) GlobalHandle
	SetGlobalAlign(g GlobalHandle, align uint32)
	SetGlobalLinkage(g GlobalHandle, l Linkage)
	Global(h GlobalHandle) Global

	// Functions. Begin returns the handle immediately so recursive/
	// forward calls can reference it before the body is built; End moves
	// the blocks accumulated since Begin into the function.
	BeginFunction(f Function) FuncHandle
	EndFunction(fn FuncHandle)
	SetKernelArgs(fn FuncHandle, args []KernelArgInfo)
	FindFunction(name string) (FuncHandle, bool)
	FunctionName(fn FuncHandle) string
	SetFunctionName(fn FuncHandle, name string)
	AddFuncAttr(fn FuncHandle, a FuncAttr)
	SetVariadic(fn FuncHandle)
	NumParams(fn FuncHandle) int
	Param(fn FuncHandle, i int) Param
	SetParam(fn FuncHandle, i int, p Param)
	Function(fn FuncHandle) Function
	// SetFunctionMeta writes back a Function value read via Function,
	// for the execution-mode metadata fields that have no dedicated
	// mutator (workgroup sizes, vec type hint, contraction).
	SetFunctionMeta(fn FuncHandle, f Function)
	// DeleteFunction marks a placeholder dead once its real definition
	// replaces it; RetargetCalls rewires every call site naming
	// oldCallee to newCallee, installing the supplied per-argument
	// attribute mirror on each rewired site.
	DeleteFunction(fn FuncHandle)
	RetargetCalls(oldCallee, newCallee string, paramAttrs [][]ParamAttr)

	// Blocks, valid only between BeginFunction and EndFunction (except
	// PatchPhi, which runs after every function has ended).
	CreateBlock(fn FuncHandle, name string) BlockHandle
	SetBlockSeq(fn FuncHandle, blk BlockHandle, seq int)
	SetBlockUnroll(fn FuncHandle, blk BlockHandle, u UnrollHint)
	BlockLen(fn FuncHandle, blk BlockHandle) int
	AppendInst(fn FuncHandle, blk BlockHandle, inst Instruction) ValueHandle
	SetInstLoc(fn FuncHandle, blk BlockHandle, idx int, loc uint32)
	PatchPhi(fn FuncHandle, blk BlockHandle, idx int, incoming []PhiIncoming)

	// Module hands back the fully populated Module. Called once, after
	// the dispatch core's forward-reference resolution and phi-edge
	// population passes (spec.md §3) both complete.
	Module() *Module
}

// moduleBuilder is the concrete Builder implementation: a thin set of
// mutators over a *Module plus the in-progress function/block state a
// BeginFunction/EndFunction pair spans.
type moduleBuilder struct {
	m *Module

	// pending holds blocks accumulated for each function currently open
	// between BeginFunction and EndFunction. Keyed by handle because the
	// translator synthesizes helper wrappers mid-function, so more than
	// one function can be open at once.
	pending   map[FuncHandle][]BasicBlock
	nextValue ValueHandle
}

// NewBuilder creates the concrete Builder used by the dispatch core.
func NewBuilder() Builder {
	m := NewModule()
	return &moduleBuilder{m: m, pending: make(map[FuncHandle][]BasicBlock)}
}

func (b *moduleBuilder) VoidType() TypeHandle { return b.m.typeTable.GetOrCreate("", VoidType{}) }

func (b *moduleBuilder) IntType(width uint8, signed bool) TypeHandle {
	return b.m.typeTable.GetOrCreate("", IntType{Width: width, Signed: signed})
}

func (b *moduleBuilder) FloatType(width uint8) TypeHandle {
	return b.m.typeTable.GetOrCreate("", FloatType{Width: width})
}

func (b *moduleBuilder) VectorType(elem TypeHandle, count uint32) TypeHandle {
	return b.m.typeTable.GetOrCreate("", VectorType{Elem: elem, Count: count})
}

func (b *moduleBuilder) MatrixType(column TypeHandle, columns uint32) TypeHandle {
	return b.m.typeTable.GetOrCreate("", MatrixType{Column: column, Columns: columns})
}

func (b *moduleBuilder) ArrayType(elem TypeHandle, length uint32) TypeHandle {
	return b.m.typeTable.GetOrCreate("", ArrayType{Elem: elem, Length: length})
}

func (b *moduleBuilder) RuntimeArrayType(elem TypeHandle) TypeHandle {
	return b.m.typeTable.GetOrCreate("", ArrayType{Elem: elem, Length: 0})
}

func (b *moduleBuilder) PointerType(pointee TypeHandle, as AddressSpace) TypeHandle {
	return b.m.typeTable.GetOrCreate("", PointerType{Pointee: pointee, AddressSpace: as})
}

// ForwardPointerType reserves a pointer type handle ahead of its
// pointee being known, per OpTypeForwardPointer (spec.md §3's
// forward_pointer_ids). It is deliberately never deduplicated.
func (b *moduleBuilder) ForwardPointerType(as AddressSpace) TypeHandle {
	b.m.Types = append(b.m.Types, Type{Inner: PointerType{AddressSpace: as, Incomplete: true}})
	return TypeHandle(len(b.m.Types) - 1)
}

func (b *moduleBuilder) ResolveForwardPointer(fwd TypeHandle, pointee TypeHandle) {
	as := b.m.Types[fwd].Inner.(PointerType).AddressSpace
	b.m.Types[fwd].Inner = PointerType{Pointee: pointee, AddressSpace: as, Incomplete: false}
}

func (b *moduleBuilder) FunctionType(ret TypeHandle, params []TypeHandle) TypeHandle {
	return b.m.typeTable.GetOrCreate("", FunctionType{Return: ret, Params: params})
}

// DeclareStructType reserves a named, empty struct type ahead of its
// member list being known, so a self-referential pointer-to-struct
// member can name it before ResolveStructType fills the body in.
func (b *moduleBuilder) DeclareStructType(name string) TypeHandle {
	b.m.Types = append(b.m.Types, Type{Name: name, Inner: StructType{Incomplete: true}})
	return TypeHandle(len(b.m.Types) - 1)
}

func (b *moduleBuilder) ResolveStructType(h TypeHandle, members []TypeHandle, packed bool) {
	b.m.Types[h].Inner = StructType{Members: members, Packed: packed}
}

func (b *moduleBuilder) ImageType(kind ImageKind) TypeHandle {
	return b.m.typeTable.GetOrCreate("", ImageType{Kind: kind})
}

func (b *moduleBuilder) SamplerType() TypeHandle {
	return b.m.typeTable.GetOrCreate("", SamplerType{})
}

func (b *moduleBuilder) EventType() TypeHandle {
	return b.m.typeTable.GetOrCreate("", EventType{})
}

func (b *moduleBuilder) OpaqueType(name string) TypeHandle {
	return b.m.typeTable.GetOrCreate("", OpaqueType{Name: name})
}

func (b *moduleBuilder) NameType(h TypeHandle, name string) {
	b.m.Types[h].Name = name
}

func (b *moduleBuilder) Type(h TypeHandle) Type { return b.m.Types[h] }

func (b *moduleBuilder) IntConstant(typ TypeHandle, bits uint64) ConstHandle {
	return b.m.constTable.GetOrCreate(typ, IntConst{Bits: bits})
}

func (b *moduleBuilder) FloatConstant(typ TypeHandle, bits uint64) ConstHandle {
	return b.m.constTable.GetOrCreate(typ, FloatConst{Bits: bits})
}

func (b *moduleBuilder) BoolConstant(typ TypeHandle, v bool) ConstHandle {
	return b.m.constTable.GetOrCreate(typ, BoolConst{Value: v})
}

func (b *moduleBuilder) NullConstant(typ TypeHandle) ConstHandle {
	return b.m.constTable.GetOrCreate(typ, NullConst{})
}

func (b *moduleBuilder) CompositeConstant(typ TypeHandle, elems []ConstHandle) ConstHandle {
	return b.m.constTable.GetOrCreate(typ, CompositeConst{Elems: elems})
}

func (b *moduleBuilder) UndefConstant(typ TypeHandle) ConstHandle {
	return b.m.constTable.GetOrCreate(typ, UndefConst{})
}

func (b *moduleBuilder) SpecConstant(typ TypeHandle, inner ConstPayload, specID uint32, hasID bool) ConstHandle {
	return b.m.constTable.GetOrCreate(typ, SpecConst{Inner: inner, SpecID: specID, HasID: hasID})
}

func (b *moduleBuilder) SpecConstantOp(typ TypeHandle, innerOp uint16, operands []ConstHandle) ConstHandle {
	return b.m.constTable.GetOrCreate(typ, SpecConstantOp{InnerOp: innerOp, Operands: operands})
}

func (b *moduleBuilder) Const(h ConstHandle) Const { return b.m.Constants[h] }

func (b *moduleBuilder) AddGlobal(g Global) GlobalHandle {
	b.m.Globals = append(b.m.Globals, g)
	return GlobalHandle(len(b.m.Globals) - 1)
}

func (b *moduleBuilder) SetGlobalAlign(g GlobalHandle, align uint32) {
	b.m.Globals[g].Align = align
}

func (b *moduleBuilder) SetGlobalLinkage(g GlobalHandle, l Linkage) {
	b.m.Globals[g].Linkage = l
}

func (b *moduleBuilder) Global(h GlobalHandle) Global { return b.m.Globals[h] }

func (b *moduleBuilder) BeginFunction(f Function) FuncHandle {
	for i := range f.Params {
		f.Params[i].Value = b.nextValue
		b.nextValue++
	}
	b.m.Functions = append(b.m.Functions, f)
	h := FuncHandle(len(b.m.Functions) - 1)
	b.pending[h] = nil
	return h
}

func (b *moduleBuilder) EndFunction(fn FuncHandle) {
	b.m.Functions[fn].Blocks = b.pending[fn]
	delete(b.pending, fn)
}

func (b *moduleBuilder) SetKernelArgs(fn FuncHandle, args []KernelArgInfo) {
	b.m.Functions[fn].KernelArgs = args
}

func (b *moduleBuilder) FindFunction(name string) (FuncHandle, bool) {
	for i := range b.m.Functions {
		if !b.m.Functions[i].Dead && b.m.Functions[i].Name == name {
			return FuncHandle(i), true
		}
	}
	return 0, false
}

func (b *moduleBuilder) FunctionName(fn FuncHandle) string { return b.m.Functions[fn].Name }

func (b *moduleBuilder) SetFunctionName(fn FuncHandle, name string) {
	b.m.Functions[fn].Name = name
}

func (b *moduleBuilder) AddFuncAttr(fn FuncHandle, a FuncAttr) {
	f := &b.m.Functions[fn]
	if !f.HasAttr(a) {
		f.Attrs = append(f.Attrs, a)
	}
}

func (b *moduleBuilder) SetVariadic(fn FuncHandle) { b.m.Functions[fn].Variadic = true }

func (b *moduleBuilder) NumParams(fn FuncHandle) int { return len(b.m.Functions[fn].Params) }

func (b *moduleBuilder) Param(fn FuncHandle, i int) Param { return b.m.Functions[fn].Params[i] }

func (b *moduleBuilder) SetParam(fn FuncHandle, i int, p Param) {
	b.m.Functions[fn].Params[i] = p
}

func (b *moduleBuilder) Function(fn FuncHandle) Function { return b.m.Functions[fn] }

func (b *moduleBuilder) SetFunctionMeta(fn FuncHandle, f Function) { b.m.Functions[fn] = f }

func (b *moduleBuilder) DeleteFunction(fn FuncHandle) {
	b.m.Functions[fn].Dead = true
	b.m.Functions[fn].Blocks = nil
	delete(b.pending, fn)
}

func (b *moduleBuilder) RetargetCalls(oldCallee, newCallee string, paramAttrs [][]ParamAttr) {
	retarget := func(blocks []BasicBlock) {
		for bi := range blocks {
			for ii := range blocks[bi].Insts {
				inst := &blocks[bi].Insts[ii]
				if (inst.Op == OpCall || inst.Op == OpCallExt) && inst.Callee == oldCallee {
					inst.Callee = newCallee
					if paramAttrs != nil {
						attrs := make([][]ParamAttr, len(paramAttrs))
						for i := range paramAttrs {
							attrs[i] = append([]ParamAttr(nil), paramAttrs[i]...)
						}
						inst.ParamAttrs = attrs
					}
				}
			}
		}
	}
	for fi := range b.m.Functions {
		retarget(b.m.Functions[fi].Blocks)
	}
	for _, blocks := range b.pending {
		retarget(blocks)
	}
}

func (b *moduleBuilder) CreateBlock(fn FuncHandle, name string) BlockHandle {
	blocks := b.pending[fn]
	blocks = append(blocks, BasicBlock{Name: name})
	b.pending[fn] = blocks
	return BlockHandle(len(blocks) - 1)
}

func (b *moduleBuilder) SetBlockSeq(fn FuncHandle, blk BlockHandle, seq int) {
	b.pending[fn][blk].Seq = seq
}

func (b *moduleBuilder) SetBlockUnroll(fn FuncHandle, blk BlockHandle, u UnrollHint) {
	b.pending[fn][blk].Unroll = u
}

func (b *moduleBuilder) BlockLen(fn FuncHandle, blk BlockHandle) int {
	return len(b.pending[fn][blk].Insts)
}

func (b *moduleBuilder) AppendInst(fn FuncHandle, blk BlockHandle, inst Instruction) ValueHandle {
	if inst.HasResult {
		inst.Result = b.nextValue
		b.nextValue++
	}
	blocks := b.pending[fn]
	blocks[blk].Insts = append(blocks[blk].Insts, inst)
	b.pending[fn] = blocks
	return inst.Result
}

func (b *moduleBuilder) SetInstLoc(fn FuncHandle, blk BlockHandle, idx int, loc uint32) {
	insts := b.pending[fn][blk].Insts
	insts[idx].HasLoc = true
	insts[idx].Loc = loc
}

// PatchPhi fills an OpPhi's incoming edges. It runs after EndFunction
// has moved the blocks into the module, so it indexes the function's
// final block slice rather than pending.
func (b *moduleBuilder) PatchPhi(fn FuncHandle, blk BlockHandle, idx int, incoming []PhiIncoming) {
	b.m.Functions[fn].Blocks[blk].Insts[idx].Incoming = incoming
}

func (b *moduleBuilder) Module() *Module { return b.m }
