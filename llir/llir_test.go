package llir

import (
	"strings"
	"testing"
)

func TestTypeDeduplication(t *testing.T) {
	b := NewBuilder()
	i32a := b.IntType(32, true)
	i32b := b.IntType(32, true)
	if i32a != i32b {
		t.Errorf("identical int types got distinct handles %d, %d", i32a, i32b)
	}
	if u32 := b.IntType(32, false); u32 == i32a {
		t.Errorf("signedness ignored in dedup")
	}
	v4a := b.VectorType(i32a, 4)
	v4b := b.VectorType(i32b, 4)
	if v4a != v4b {
		t.Errorf("identical vector types got distinct handles")
	}
	f1 := b.FunctionType(i32a, []TypeHandle{i32a, v4a})
	f2 := b.FunctionType(i32a, []TypeHandle{i32a, v4a})
	if f1 != f2 {
		t.Errorf("identical function types got distinct handles")
	}
}

func TestIncompleteTypesNeverDeduplicate(t *testing.T) {
	b := NewBuilder()
	s1 := b.DeclareStructType("node")
	s2 := b.DeclareStructType("node")
	if s1 == s2 {
		t.Errorf("incomplete structs deduplicated")
	}
	p1 := b.ForwardPointerType(AddressSpaceCrossWorkgroup)
	p2 := b.ForwardPointerType(AddressSpaceCrossWorkgroup)
	if p1 == p2 {
		t.Errorf("forward pointers deduplicated")
	}
	i32 := b.IntType(32, true)
	b.ResolveForwardPointer(p1, i32)
	pt := b.Type(p1).Inner.(PointerType)
	if pt.Incomplete || pt.Pointee != i32 {
		t.Errorf("forward pointer not resolved: %+v", pt)
	}
}

func TestConstantDeduplication(t *testing.T) {
	b := NewBuilder()
	i32 := b.IntType(32, true)
	c1 := b.IntConstant(i32, 7)
	c2 := b.IntConstant(i32, 7)
	if c1 != c2 {
		t.Errorf("identical constants got distinct handles")
	}
	// Spec constants keep distinct identity even with equal defaults:
	// each may be independently overridden at link time.
	s1 := b.SpecConstant(i32, IntConst{Bits: 7}, 1, true)
	s2 := b.SpecConstant(i32, IntConst{Bits: 7}, 2, true)
	if s1 == s2 {
		t.Errorf("spec constants deduplicated")
	}
}

func TestValueHandleTagging(t *testing.T) {
	c := ConstValue(5)
	if h, ok := c.AsConst(); !ok || h != 5 {
		t.Errorf("AsConst(ConstValue(5)) = %d, %v", h, ok)
	}
	if _, ok := c.AsGlobal(); ok {
		t.Errorf("constant handle misread as global")
	}
	g := GlobalValue(3)
	if h, ok := g.AsGlobal(); !ok || h != 3 {
		t.Errorf("AsGlobal(GlobalValue(3)) = %d, %v", h, ok)
	}
	plain := ValueHandle(9)
	if _, ok := plain.AsConst(); ok {
		t.Errorf("instruction result misread as constant")
	}
}

func TestRetargetCalls(t *testing.T) {
	b := NewBuilder()
	i32 := b.IntType(32, true)
	fn := b.BeginFunction(Function{Name: "caller", RetType: i32, Params: []Param{{Type: i32}}})
	blk := b.CreateBlock(fn, "entry")
	b.AppendInst(fn, blk, Instruction{Op: OpCall, HasResult: true, Type: i32, Callee: "old", Operands: []ValueHandle{b.Param(fn, 0).Value}})
	b.AppendInst(fn, blk, Instruction{Op: OpRetValue})
	b.EndFunction(fn)

	b.RetargetCalls("old", "new", [][]ParamAttr{{ParamAttrSext}})
	got := b.Module().Functions[fn].Blocks[0].Insts[0]
	if got.Callee != "new" {
		t.Errorf("callee = %q, want new", got.Callee)
	}
	if len(got.ParamAttrs) != 1 || got.ParamAttrs[0][0] != ParamAttrSext {
		t.Errorf("param attrs = %v, want mirrored signext", got.ParamAttrs)
	}
}

func TestDumpStable(t *testing.T) {
	b := NewBuilder()
	i32 := b.IntType(32, true)
	fn := b.BeginFunction(Function{
		Name: "f", Conv: CallSPIRFunc, Linkage: LinkageInternal,
		RetType: i32, Params: []Param{{Type: i32, Name: "x"}},
	})
	blk := b.CreateBlock(fn, "entry")
	v := b.AppendInst(fn, blk, Instruction{Op: OpAdd, HasResult: true, Type: i32,
		Operands: []ValueHandle{b.Param(fn, 0).Value, ConstValue(b.IntConstant(i32, 1))}})
	b.AppendInst(fn, blk, Instruction{Op: OpRetValue, Operands: []ValueHandle{v}})
	b.EndFunction(fn)

	dump := b.Module().Dump()
	for _, want := range []string{"define internal spir_func i32 @f", "entry:", "add i32", "ret"} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump missing %q:\n%s", want, dump)
		}
	}
	if dump != b.Module().Dump() {
		t.Errorf("dump is not deterministic")
	}
}
