package extinst

import (
	"github.com/oneapi-go/spirv-ll/dbgir"
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/mangler"
)

// Set names one of the four extended-instruction sets spec.md
// recognizes for OpExtInstImport.
type Set uint8

const (
	SetUnknown Set = iota
	SetOpenCLStd
	SetCodeplayGroupAsyncCopies
	SetDebugInfo
	SetOpenCLDebugInfo100
)

// ImportNames maps the exact import strings a module's OpExtInstImport
// may carry to the Set the core recognizes, per spec.md §4.1.1's fixed
// list.
var ImportNames = map[string]Set{
	"OpenCL.std":                           SetOpenCLStd,
	"Codeplay.GroupAsyncCopies":            SetCodeplayGroupAsyncCopies,
	"NonSemantic.Codeplay.GroupAsyncCopies": SetCodeplayGroupAsyncCopies,
	"DebugInfo":                            SetDebugInfo,
	"OpenCL.DebugInfo.100":                 SetOpenCLDebugInfo100,
}

// ResolveImportName looks up the Set bound to an OpExtInstImport string.
func ResolveImportName(name string) (Set, bool) {
	s, ok := ImportNames[name]
	return s, ok
}

// IsDebugSet reports whether a Set's presence disables the core's
// implicit debug-scope synthesis (spec.md §3's implicit_debug_scopes_enabled).
func (s Set) IsDebugSet() bool { return s == SetDebugInfo || s == SetOpenCLDebugInfo100 }

// Context carries everything a Handler needs to lower one OpExtInst
// into the function body currently being built: the IR builder, the
// mangler for resolving builtin-library calls, and the (function,
// block) pair instructions are appended to.
type Context struct {
	Builder llir.Builder
	Mangler mangler.Mangler
	Debug   dbgir.Builder
	Func    llir.FuncHandle
	Block   llir.BlockHandle

	// CurrentFile/CurrentUnit let the DebugInfo/OpenCL.DebugInfo.100
	// handler anchor DebugFunction/DebugLexicalBlock nodes without
	// reaching back into translator.ModuleState (spec.md §4.4: "the
	// core does not inspect the handler's internals", so the handler
	// gets only what it needs through Context, not the whole state).
	CurrentFile  dbgir.FileHandle
	CurrentUnit  dbgir.CompileUnitHandle
}

// emit appends a CallExt instruction invoking the mangled symbol for
// base over args, returning its result value. hasResult sets the
// instruction's HasResult flag; every handler in this package passes
// true.
func (c *Context) emit(resultType llir.TypeHandle, hasResult bool, base string, argTypes []mangler.ArgType, args []llir.ValueHandle) llir.ValueHandle {
	symbol := c.Mangler.Mangle(base, argTypes)
	inst := llir.Instruction{
		Op:        llir.OpCallExt,
		HasResult: hasResult,
		Type:      resultType,
		Callee:    symbol,
		Operands:  args,
	}
	return c.Builder.AppendInst(c.Func, c.Block, inst)
}

// Handler translates one imported extended-instruction set's inner
// instruction numbers into IR. create(op) -> Ok | Err per spec.md §4.4:
// Translate returns an error for an instruction number the handler
// does not recognize. argTypes carries the mangling shape of each
// argument, resolved by the dispatch core from the operands' IR types
// (one entry per args element; nil for the debug sets, whose operands
// are metadata ids rather than SSA values).
type Handler interface {
	Translate(ctx *Context, instruction uint32, resultType llir.TypeHandle, args []llir.ValueHandle, argTypes []mangler.ArgType) (llir.ValueHandle, error)
}

// Registry binds a Set to its Handler, built once per translation.
// NewRegistry installs the handlers for all four supported sets up
// front.
type Registry struct {
	handlers map[Set]Handler
}

func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[Set]Handler)}
	r.handlers[SetOpenCLStd] = openCLStdHandler{}
	r.handlers[SetCodeplayGroupAsyncCopies] = groupAsyncCopiesHandler{}
	r.handlers[SetDebugInfo] = debugInfoHandler{}
	r.handlers[SetOpenCLDebugInfo100] = debugInfoHandler{}
	return r
}

func (r *Registry) Handler(s Set) (Handler, bool) {
	h, ok := r.handlers[s]
	return h, ok
}
