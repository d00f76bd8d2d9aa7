package extinst

import (
	"testing"

	"github.com/oneapi-go/spirv-ll/dbgir"
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/mangler"
)

func TestResolveImportName(t *testing.T) {
	cases := []struct {
		name string
		want Set
		ok   bool
	}{
		{"OpenCL.std", SetOpenCLStd, true},
		{"Codeplay.GroupAsyncCopies", SetCodeplayGroupAsyncCopies, true},
		{"NonSemantic.Codeplay.GroupAsyncCopies", SetCodeplayGroupAsyncCopies, true},
		{"DebugInfo", SetDebugInfo, true},
		{"OpenCL.DebugInfo.100", SetOpenCLDebugInfo100, true},
		{"GLSL.std.450", SetUnknown, false},
	}
	for _, tc := range cases {
		got, ok := ResolveImportName(tc.name)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ResolveImportName(%q) = %v, %v; want %v, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDebugSetsDisableImplicitScopes(t *testing.T) {
	if !SetDebugInfo.IsDebugSet() || !SetOpenCLDebugInfo100.IsDebugSet() {
		t.Errorf("debug sets not flagged as debug sets")
	}
	if SetOpenCLStd.IsDebugSet() || SetCodeplayGroupAsyncCopies.IsDebugSet() {
		t.Errorf("non-debug set flagged as debug set")
	}
}

func newContext(mkParams func(llir.Builder) []llir.TypeHandle) (*Context, llir.Builder, llir.FuncHandle, llir.BlockHandle) {
	b := llir.NewBuilder()
	var paramTypes []llir.TypeHandle
	if mkParams != nil {
		paramTypes = mkParams(b)
	}
	params := make([]llir.Param, len(paramTypes))
	for i, ty := range paramTypes {
		params[i] = llir.Param{Type: ty}
	}
	ret := b.FloatType(32)
	if len(paramTypes) > 0 {
		ret = paramTypes[0]
	}
	fn := b.BeginFunction(llir.Function{Name: "host", RetType: ret, Params: params})
	blk := b.CreateBlock(fn, "entry")
	ctx := &Context{Builder: b, Mangler: mangler.New(), Debug: dbgir.NewBuilder(), Func: fn, Block: blk}
	return ctx, b, fn, blk
}

// lastCallee runs one instruction through a handler and returns the
// mangled symbol of the emitted ext call.
func lastCallee(t *testing.T, set Set, instruction uint32, resultType llir.TypeHandle,
	ctx *Context, b llir.Builder, fn llir.FuncHandle, blk llir.BlockHandle,
	args []llir.ValueHandle, argTypes []mangler.ArgType) string {
	t.Helper()
	h, ok := NewRegistry().Handler(set)
	if !ok {
		t.Fatalf("no handler for set %v", set)
	}
	if _, err := h.Translate(ctx, instruction, resultType, args, argTypes); err != nil {
		t.Fatalf("Translate(%d): %v", instruction, err)
	}
	b.EndFunction(fn)
	insts := b.Module().Functions[fn].Blocks[blk].Insts
	inst := insts[len(insts)-1]
	if inst.Op != llir.OpCallExt {
		t.Fatalf("op = %v, want ext call", inst.Op)
	}
	return inst.Callee
}

// The mangled symbol follows the argument shape the dispatch core
// resolved, not a fixed one: f32, f64, vector, and integer-category
// instructions each produce their own encoding.
func TestOpenCLStdMangling(t *testing.T) {
	cases := []struct {
		name        string
		instruction uint32
		arg         func(b llir.Builder) llir.TypeHandle
		argType     mangler.ArgType
		want        string
	}{
		{"sin_f32", 61, func(b llir.Builder) llir.TypeHandle { return b.FloatType(32) },
			mangler.Float(32), "_Z3sinf"},
		{"sqrt_f64", 66, func(b llir.Builder) llir.TypeHandle { return b.FloatType(64) },
			mangler.Float(64), "_Z4sqrtd"},
		{"sin_float4", 61, func(b llir.Builder) llir.TypeHandle { return b.VectorType(b.FloatType(32), 4) },
			mangler.Vector(mangler.KindFloat, 32, 4), "_Z3sinDv4_f"},
		{"popcount_u32", 157, func(b llir.Builder) llir.TypeHandle { return b.IntType(32, false) },
			mangler.Int(32, false), "_Z8popcountj"},
		{"clz_i64", 147, func(b llir.Builder) llir.TypeHandle { return b.IntType(64, true) },
			mangler.Int(64, true), "_Z3clzl"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, b, fn, blk := newContext(func(b llir.Builder) []llir.TypeHandle {
				return []llir.TypeHandle{tc.arg(b)}
			})
			ty := b.Param(fn, 0).Type
			arg := b.Param(fn, 0).Value
			got := lastCallee(t, SetOpenCLStd, tc.instruction, ty, ctx, b, fn, blk,
				[]llir.ValueHandle{arg}, []mangler.ArgType{tc.argType})
			if got != tc.want {
				t.Errorf("callee = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOpenCLStdUnknownInstruction(t *testing.T) {
	ctx, b, _, _ := newContext(nil)
	f32 := b.FloatType(32)
	h, _ := NewRegistry().Handler(SetOpenCLStd)
	if _, err := h.Translate(ctx, 9999, f32, nil, nil); err == nil {
		t.Fatal("unknown instruction number accepted")
	}
}

func TestOpenCLStdArgTypeMismatch(t *testing.T) {
	ctx, b, fn, _ := newContext(func(b llir.Builder) []llir.TypeHandle {
		return []llir.TypeHandle{b.FloatType(32)}
	})
	f32 := b.FloatType(32)
	arg := b.Param(fn, 0).Value
	h, _ := NewRegistry().Handler(SetOpenCLStd)
	if _, err := h.Translate(ctx, 61, f32, []llir.ValueHandle{arg}, nil); err == nil {
		t.Fatal("argument/type count mismatch accepted")
	}
}

// Pointer operands of the async-copy set keep their address-space
// qualified pointer encoding in the mangled symbol.
func TestGroupAsyncCopiesPointerMangling(t *testing.T) {
	ctx, b, fn, blk := newContext(func(b llir.Builder) []llir.TypeHandle {
		i32 := b.IntType(32, false)
		localPtr := b.PointerType(i32, llir.AddressSpaceWorkgroup)
		globalPtr := b.PointerType(i32, llir.AddressSpaceCrossWorkgroup)
		return []llir.TypeHandle{localPtr, globalPtr, i32, i32, i32}
	})
	eventTy := b.EventType()
	args := make([]llir.ValueHandle, 5)
	for i := range args {
		args[i] = b.Param(fn, i).Value
	}
	uintArg := mangler.Int(32, false)
	argTypes := []mangler.ArgType{
		mangler.Pointer(uintArg, mangler.AddressSpaceLocal, false, false),
		mangler.Pointer(uintArg, mangler.AddressSpaceGlobal, false, false),
		uintArg, uintArg, uintArg,
	}
	got := lastCallee(t, SetCodeplayGroupAsyncCopies, 1, eventTy, ctx, b, fn, blk, args, argTypes)
	want := "_Z34async_work_group_strided_copy_2D2DPU3AS3jPU3AS1jjjj"
	if got != want {
		t.Errorf("callee = %q, want %q", got, want)
	}
}
