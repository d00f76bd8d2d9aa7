package translator

import (
	"github.com/oneapi-go/spirv-ll/dbgir"
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// translateDebug implements spec.md §4.1.11's OpLine/OpNoLine handling.
// Closing a range applies its location to every instruction emitted
// since the anchor; block terminators and OpFunctionEnd reach the same
// close path through closeScope.
func (t *Translator) translateDebug(rec spirv.OpcodeRecord) error {
	switch rec.Op {
	case spirv.OpLine:
		t.closeLineRange()
		lr := &t.state.currentLine
		lr.Active = true
		lr.File = rec.Id(0)
		lr.Line = rec.MustWord(1)
		lr.Column = rec.MustWord(2)
		lr.Anchored = false
		if t.hasCurrentFunc && t.hasCurrentBlock {
			t.anchorLineRange()
		}
		return nil

	case spirv.OpNoLine:
		t.closeLineRange()
		return nil

	default:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "unreachable debug dispatch")
	}
}

// anchorLineRange pins the open range to the current insertion point;
// OpLabel calls it when a range opened before any block existed.
func (t *Translator) anchorLineRange() {
	lr := &t.state.currentLine
	if !lr.Active || lr.Anchored {
		return
	}
	lr.Anchored = true
	lr.AnchorFunc = t.currentFunc
	lr.AnchorBlk = t.currentBlock
	lr.AnchorIdx = t.builder.BlockLen(t.currentFunc, t.currentBlock)
}

// closeLineRange applies the open range's location to [anchor, now) and
// deactivates it (spec.md §4.1.11's range-close step).
func (t *Translator) closeLineRange() {
	lr := &t.state.currentLine
	if !lr.Active {
		return
	}
	defer func() { lr.Active = false; lr.Anchored = false }()
	if !lr.Anchored {
		return
	}
	end := t.builder.BlockLen(lr.AnchorFunc, lr.AnchorBlk)
	if end <= lr.AnchorIdx {
		return
	}

	scope, kind := t.scopeForBlock(lr.AnchorFunc, lr.AnchorBlk, lr.Line)
	if kind == dbgir.ScopeKindNone {
		return
	}
	loc := t.debug.CreateLocation(lr.Line, lr.Column, scope, kind, 0, false)
	t.debug.AttachLocation(t.builder, lr.AnchorFunc, lr.AnchorBlk, lr.AnchorIdx, end, loc)
}

// closeScope is the transition block terminators and function ends take:
// the open line range closes, applying its location (spec.md §4.1.7's
// "closes the current lexical scope").
func (t *Translator) closeScope() {
	t.closeLineRange()
}

// scopeForBlock resolves the debug scope a location should reference: a
// lexical block already recorded for the basic block, or (implicit mode)
// one created now, parented by the lazily created subprogram.
func (t *Translator) scopeForBlock(fn llir.FuncHandle, blk llir.BlockHandle, line uint32) (uint32, dbgir.ScopeKind) {
	if lb, ok := t.state.perBlockLexicalScope[blk]; ok {
		return uint32(lb), dbgir.ScopeKindLexicalBlock
	}
	if !t.state.implicitDebugScopesEnabled {
		return 0, dbgir.ScopeKindNone
	}
	sp := t.ensureSubprogram(fn, line)
	lb := t.debug.CreateLexicalBlock(uint32(sp), dbgir.ScopeKindSubprogram, t.ensureDebugFile(), line)
	t.state.perBlockLexicalScope[blk] = lb
	return uint32(lb), dbgir.ScopeKindLexicalBlock
}

// makeLexicalScopeForBlock implements OpLabel's "if implicit debug
// scopes are enabled and a line range is active, create a lexical block
// for the new basic block" (spec.md §4.1.7).
func (t *Translator) makeLexicalScopeForBlock(fn llir.FuncHandle, blk llir.BlockHandle) {
	if !t.state.implicitDebugScopesEnabled || !t.state.currentLine.Active {
		return
	}
	if _, ok := t.state.perBlockLexicalScope[blk]; ok {
		return
	}
	line := t.state.currentLine.Line
	sp := t.ensureSubprogram(fn, line)
	lb := t.debug.CreateLexicalBlock(uint32(sp), dbgir.ScopeKindSubprogram, t.ensureDebugFile(), line)
	t.state.perBlockLexicalScope[blk] = lb
}

func (t *Translator) ensureDebugFile() dbgir.FileHandle {
	if t.hasDebugFile {
		return t.debugFile
	}
	name := "<unknown>"
	if s, ok := t.state.debugStrings[t.state.sourceFile]; ok && s != "" {
		name = s
	}
	t.debugFile = t.debug.CreateFile(name, "")
	t.debugUnit = t.debug.CreateCompileUnit(t.debugFile, uint32(t.state.sourceLang), "spirv-ll")
	t.hasDebugFile = true
	return t.debugFile
}

// ensureSubprogram lazily creates the per-function subprogram (spec.md
// §4.1.11: created by the debug ext-set, or in implicit mode when the
// first line range closes inside the function).
func (t *Translator) ensureSubprogram(fn llir.FuncHandle, line uint32) dbgir.SubprogramHandle {
	if sp, ok := t.subprograms[fn]; ok {
		return sp
	}
	file := t.ensureDebugFile()
	sp := t.debug.CreateSubprogram(t.builder.FunctionName(fn), file, line, t.debugUnit)
	t.subprograms[fn] = sp
	return sp
}
