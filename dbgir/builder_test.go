package dbgir

import (
	"testing"

	"github.com/oneapi-go/spirv-ll/llir"
)

func TestAttachLocationRange(t *testing.T) {
	ir := llir.NewBuilder()
	i32 := ir.IntType(32, true)
	fn := ir.BeginFunction(llir.Function{Name: "f", RetType: i32})
	blk := ir.CreateBlock(fn, "entry")
	one := llir.ConstValue(ir.IntConstant(i32, 1))
	for i := 0; i < 3; i++ {
		ir.AppendInst(fn, blk, llir.Instruction{Op: llir.OpAdd, HasResult: true, Type: i32, Operands: []llir.ValueHandle{one, one}})
	}

	d := NewBuilder()
	file := d.CreateFile("kernel.cl", "")
	unit := d.CreateCompileUnit(file, 3, "test")
	sp := d.CreateSubprogram("f", file, 1, unit)
	lb := d.CreateLexicalBlock(uint32(sp), ScopeKindSubprogram, file, 1)
	loc := d.CreateLocation(4, 2, uint32(lb), ScopeKindLexicalBlock, 0, false)

	// Attach to the middle instruction only; past-the-end bounds clamp.
	d.AttachLocation(ir, fn, blk, 1, 2, loc)
	d.AttachLocation(ir, fn, blk, 2, 99, loc)
	ir.EndFunction(fn)

	insts := ir.Module().Functions[fn].Blocks[blk].Insts
	if insts[0].HasLoc {
		t.Errorf("inst 0 unexpectedly has a location")
	}
	for i := 1; i < 3; i++ {
		if !insts[i].HasLoc || insts[i].Loc != uint32(loc) {
			t.Errorf("inst %d location = (%v, %d), want (%v, %d)", i, insts[i].HasLoc, insts[i].Loc, true, loc)
		}
	}
}
