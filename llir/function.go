package llir

// CallingConvention mirrors the two calling conventions an OpenCL SPIR-V
// module distinguishes by function storage class (spec.md §4.1.4):
// kernels reachable from the host, and ordinary device-side functions.
type CallingConvention uint8

const (
	CallSPIRFunc CallingConvention = iota
	CallSPIRKernel
)

// Linkage covers the symbol visibilities the translator assigns: plain
// external (entry points, cross-workgroup globals), internal (workgroup
// globals, synthesized wrappers), private (module-scope constant data),
// link-once-ODR (inline-hinted bodies and LinkageAttributes LinkOnceODR),
// and import (a declaration with no body).
type Linkage uint8

const (
	LinkageExternal Linkage = iota
	LinkageInternal
	LinkagePrivate
	LinkageLinkOnceODR
	LinkageImport
)

// ParamAttr mirrors spirv.FuncParamAttr, restated here so llir has no
// dependency on the wire-format package (translator is the only package
// that imports both).
type ParamAttr uint8

const (
	ParamAttrNone ParamAttr = iota
	ParamAttrZext
	ParamAttrSext
	ParamAttrByVal
	ParamAttrSret
	ParamAttrNoAlias
	ParamAttrNoCapture
	ParamAttrNoWrite
	ParamAttrNoReadWrite
	// ParamAttrNoUndef is attached to every kernel wrapper parameter
	// (spec.md §4.1.4), independent of any FuncParamAttr decoration.
	ParamAttrNoUndef
	ParamAttrReadNone
)

// FuncAttr is a function-level attribute the dispatch core attaches to a
// synthesized helper or a translated OpFunction (spec.md §4.1.4, §4.6):
// OptimizeNone/NoInline for OptNoneINTEL bodies, AlwaysInline/Convergent
// for synthesized barrier/reduction/broadcast/predicate wrappers.
type FuncAttr uint8

const (
	FuncAttrOptimizeNone FuncAttr = iota
	FuncAttrNoInline
	FuncAttrAlwaysInline
	FuncAttrConvergent
)

// KernelArgInfo carries the kernel_arg_* metadata OpenCL runtimes read
// off a kernel function (spec.md §4.1.4): address space, access
// qualifier, type name, type qualifier, and argument name, one entry per
// formal parameter of a CallSPIRKernel function.
type KernelArgInfo struct {
	AddrSpace    AddressSpace
	AccessQual   string // "none", "read_only", "write_only", "read_write"
	TypeName     string
	BaseTypeName string
	TypeQual     string // space-joined subset of "const", "restrict", "volatile"
	ArgName      string
}

type Param struct {
	Type  TypeHandle
	Attrs []ParamAttr
	// DereferenceableBytes implements MaxByteOffset on a pointer param
	// as "dereferenceable(N)" (spec.md §4.1.4).
	DereferenceableBytes uint32
	HasDereferenceable   bool
	Name  string
	Value ValueHandle
}

func (p Param) HasAttr(a ParamAttr) bool {
	for _, x := range p.Attrs {
		if x == a {
			return true
		}
	}
	return false
}

// Function is a translated OpFunction, covering both device functions
// and kernel entry points; WorkgroupSizeHint/VecTypeHint/WorkgroupSize
// are populated only when the corresponding OpExecutionMode targets it.
type Function struct {
	Name     string
	Conv     CallingConvention
	Linkage  Linkage
	RetType  TypeHandle
	Params   []Param
	KernelArgs []KernelArgInfo // len(KernelArgs) == len(Params) for kernels, nil otherwise

	WorkgroupSize     [3]uint32
	HasWorkgroupSize  bool
	WorkgroupSizeHint [3]uint32
	HasSizeHint       bool
	VecTypeHint       TypeHandle
	HasVecTypeHint    bool
	ReqdSubgroupSize  uint32
	HasSubgroupSize   bool
	MaxWorkDim        uint32
	HasMaxWorkDim     bool
	// NoContraction records ExecutionMode ContractionOff: the builder
	// clears the fast-math allow-contract flag on the kernel; backend
	// contraction is outside its reach.
	NoContraction bool

	Blocks []BasicBlock

	// IsDeclaration is true for an imported function with no body
	// (LinkageImport per spec.md SUPPLEMENTED FEATURES).
	IsDeclaration bool

	// Attrs carries function-level attributes (spec.md §4.1.4, §4.6):
	// OptNoneINTEL bodies get OptimizeNone+NoInline; synthesized helper
	// wrappers get AlwaysInline+Convergent.
	Attrs []FuncAttr

	// Variadic marks the printf-workaround function type rewrite
	// (spec.md §4.1.4).
	Variadic bool

	// Dead marks a forward-function-reference placeholder that has been
	// replaced by its real definition. Dead entries stay in the arena so
	// FuncHandles remain stable; every consumer skips them.
	Dead bool
}

func (f Function) HasAttr(a FuncAttr) bool {
	for _, x := range f.Attrs {
		if x == a {
			return true
		}
	}
	return false
}

// Global is a translated OpVariable outside a function body (spec.md
// §4.1.5): a kernel parameter surrogate, a module-scope constant, a
// workgroup-local allocation, or a cross-workgroup (global) buffer.
type Global struct {
	Name         string
	Type         TypeHandle
	AddressSpace AddressSpace
	Init         ConstHandle
	HasInit      bool
	BuiltIn      string // non-empty for a BuiltIn-decorated variable, e.g. "GlobalInvocationId"
	Linkage      Linkage
	Constant     bool
	UnnamedAddr  bool
	Align        uint32 // 0 when no Alignment decoration applied
}
