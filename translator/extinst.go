package translator

import (
	"github.com/oneapi-go/spirv-ll/extinst"
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/mangler"
	"github.com/oneapi-go/spirv-ll/spirv"
)

func extinstSetFromName(name string) (extinst.Set, bool) {
	return extinst.ResolveImportName(name)
}

// translateExtInst resolves the import id to its bound handler and
// delegates the inner instruction number (spec.md §4.1.1, §4.4).
func (t *Translator) translateExtInst(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	setID := rec.Id(2)
	instruction := rec.MustWord(3)

	set, ok := t.state.extInstSets[setID]
	if !ok {
		return spirv.NewErrorId(spirv.UnsupportedExtInstSet, rec.Op, setID, "OpExtInst set id was not imported")
	}
	handler, ok := t.extReg.Handler(set)
	if !ok {
		return spirv.NewErrorId(spirv.UnsupportedExtInstSet, rec.Op, setID, "no handler bound for extended instruction set")
	}

	// Debug-set instructions operate at module scope and consume ids the
	// core has not necessarily materialized as values; everything else
	// resolves its operands as SSA values (with their mangling shapes,
	// so the handler mangles from real types like every direct builtin
	// call site) and needs an insertion point.
	var args []llir.ValueHandle
	var argTypes []mangler.ArgType
	var resTy llir.TypeHandle
	if !set.IsDebugSet() {
		if !t.hasCurrentFunc || !t.hasCurrentBlock {
			return spirv.NewError(spirv.MalformedInstruction, rec.Op, "OpExtInst outside a basic block")
		}
		var err error
		resTy, err = t.state.requireType(resTyID)
		if err != nil {
			return err
		}
		if args, err = t.values(rec, 4); err != nil {
			return err
		}
		argTypes = make([]mangler.ArgType, len(args))
		for i := 4; i < rec.Len(); i++ {
			ty, err := t.valueType(rec.Id(i))
			if err != nil {
				return err
			}
			argTypes[i-4] = t.argTypeOf(ty, nil, false)
		}
	}

	ctx := &extinst.Context{
		Builder:     t.builder,
		Mangler:     t.mangler,
		Debug:       t.debug,
		Func:        t.currentFunc,
		Block:       t.currentBlock,
		CurrentFile: t.debugFile,
		CurrentUnit: t.debugUnit,
	}
	v, err := handler.Translate(ctx, instruction, resTy, args, argTypes)
	if err != nil {
		return spirv.NewErrorId(spirv.UnsupportedExtInstSet, rec.Op, resID, err.Error())
	}
	if set.IsDebugSet() {
		t.bindMarker(rec, resID)
		return nil
	}
	if _, isVoid := t.builder.Type(resTy).Inner.(llir.VoidType); isVoid {
		t.bindMarker(rec, resID)
	} else {
		t.bindTypedValue(rec, resTyID, resTy, resID, v)
	}
	return nil
}
