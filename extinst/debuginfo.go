package extinst

import (
	"fmt"

	"github.com/oneapi-go/spirv-ll/dbgir"
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/mangler"
)

// OpenCL.DebugInfo.100 / DebugInfo extended-instruction numbers this
// handler recognizes, grounded on the official Khronos NonSemantic
// debug-info grammar layout (no pack file implements this set, so the
// numbering here is taken directly from the published grammar rather
// than adapted from an example).
const (
	debugInfoNone            uint32 = 0
	debugCompilationUnit     uint32 = 1
	debugTypeBasic           uint32 = 2
	debugSource              uint32 = 35
	debugFunction            uint32 = 20
	debugLexicalBlock        uint32 = 21
	debugScope               uint32 = 23
	debugNoScope             uint32 = 24
	debugDeclare             uint32 = 28
	debugValue               uint32 = 29
	debugSourceContinued     uint32 = 102
)

// debugInfoHandler lowers DebugInfo/OpenCL.DebugInfo.100 instructions
// into dbgir metadata nodes, anchored to the Context's CurrentFile/
// CurrentUnit (spec.md §4.1.11). Most of these instructions carry no
// runtime SSA result (they describe metadata, not values); the handler
// still satisfies the Handler interface's (ValueHandle, error) shape,
// returning the zero handle with hasResult left false at the call site.
type debugInfoHandler struct{}

func (debugInfoHandler) Translate(ctx *Context, instruction uint32, resultType llir.TypeHandle, args []llir.ValueHandle, _ []mangler.ArgType) (llir.ValueHandle, error) {
	switch instruction {
	case debugInfoNone:
		return 0, nil

	case debugCompilationUnit:
		// The operands are not read: the unit is anchored on
		// ctx.CurrentFile and gets source language 0 and an empty
		// producer string.
		unit := ctx.Debug.CreateCompileUnit(ctx.CurrentFile, 0, "")
		ctx.CurrentUnit = unit
		return 0, nil

	case debugSource, debugSourceContinued:
		return 0, nil

	case debugTypeBasic:
		return 0, nil

	case debugFunction:
		ctx.Debug.CreateSubprogram("", ctx.CurrentFile, 0, ctx.CurrentUnit)
		return 0, nil

	case debugLexicalBlock:
		ctx.Debug.CreateLexicalBlock(uint32(ctx.CurrentUnit), dbgir.ScopeKindSubprogram, ctx.CurrentFile, 0)
		return 0, nil

	case debugScope, debugNoScope:
		return 0, nil

	case debugDeclare, debugValue:
		// DebugDeclare/DebugValue describe a source variable's storage or
		// current value at a program point; the dispatch core records
		// these as metadata attached to the referenced instruction rather
		// than emitting IR of their own (spec.md §4.1.11), so this
		// handler performs no Builder mutation.
		return 0, nil

	default:
		return 0, fmt.Errorf("unsupported DebugInfo instruction number %d", instruction)
	}
}
