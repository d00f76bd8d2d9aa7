package translator

import (
	"errors"
	"testing"

	"github.com/oneapi-go/spirv-ll/device"
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

func rec(op spirv.Opcode, words ...uint32) spirv.OpcodeRecord {
	return spirv.NewOpcodeRecord(op, words)
}

// recStr builds a record whose operands are pre-words, then a
// word-padded literal string, then post-words.
func recStr(op spirv.Opcode, pre []uint32, s string, post ...uint32) spirv.OpcodeRecord {
	ib := spirv.NewInstructionBuilder()
	for _, w := range pre {
		ib.AddWord(w)
	}
	ib.AddString(s)
	for _, w := range post {
		ib.AddWord(w)
	}
	inst := ib.Build(op)
	return spirv.NewOpcodeRecord(op, inst.Words)
}

func kernelPrelude() []spirv.OpcodeRecord {
	return []spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
		rec(spirv.OpCapability, uint32(spirv.CapabilityAddresses)),
		rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)),
	}
}

func translate(t *testing.T, records []spirv.OpcodeRecord, spec device.SpecInfoProvider) (*llir.Module, *Translator) {
	t.Helper()
	tr := New(device.DeviceDescriptor{AddressBits: 64}, spec)
	mod, err := tr.Translate(records)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	return mod, tr
}

func findFunction(t *testing.T, mod *llir.Module, name string) *llir.Function {
	t.Helper()
	for i := range mod.Functions {
		if !mod.Functions[i].Dead && mod.Functions[i].Name == name {
			return &mod.Functions[i]
		}
	}
	t.Fatalf("function %q not found", name)
	return nil
}

func errKind(t *testing.T, err error) spirv.ErrorKind {
	t.Helper()
	var e *spirv.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not a *spirv.Error", err)
	}
	return e.Kind
}

// Scenario A: a minimal empty kernel produces an external SPIR_KERNEL
// wrapper forwarding to a SPIR_FUNC body, with reqd_work_group_size and
// empty kernel argument metadata.
func TestMinimalEmptyKernel(t *testing.T) {
	records := kernelPrelude()
	records = append(records,
		recStr(spirv.OpEntryPoint, []uint32{uint32(spirv.ExecutionModelKernel), 10}, "k"),
		rec(spirv.OpExecutionMode, 10, uint32(spirv.ExecutionModeLocalSize), 4, 2, 1),
		rec(spirv.OpTypeVoid, 1),
		rec(spirv.OpTypeFunction, 2, 1),
		rec(spirv.OpFunction, 1, 10, 0, 2),
		rec(spirv.OpLabel, 11),
		rec(spirv.OpReturn),
		rec(spirv.OpFunctionEnd),
	)
	mod, _ := translate(t, records, nil)

	wrapper := findFunction(t, mod, "k")
	if wrapper.Conv != llir.CallSPIRKernel {
		t.Errorf("wrapper calling convention = %v, want SPIR_KERNEL", wrapper.Conv)
	}
	if wrapper.Linkage != llir.LinkageExternal {
		t.Errorf("wrapper linkage = %v, want external", wrapper.Linkage)
	}
	if len(wrapper.Params) != 0 {
		t.Errorf("wrapper has %d params, want 0", len(wrapper.Params))
	}
	if !wrapper.HasWorkgroupSize || wrapper.WorkgroupSize != [3]uint32{4, 2, 1} {
		t.Errorf("reqd_work_group_size = %v (has=%v), want [4 2 1]", wrapper.WorkgroupSize, wrapper.HasWorkgroupSize)
	}
	if wrapper.KernelArgs == nil || len(wrapper.KernelArgs) != 0 {
		t.Errorf("kernel arg metadata = %v, want present and empty", wrapper.KernelArgs)
	}

	body := findFunction(t, mod, "k.body")
	if body.Conv != llir.CallSPIRFunc {
		t.Errorf("body calling convention = %v, want SPIR_FUNC", body.Conv)
	}
	if len(wrapper.Blocks) != 1 {
		t.Fatalf("wrapper has %d blocks, want 1", len(wrapper.Blocks))
	}
	insts := wrapper.Blocks[0].Insts
	if len(insts) != 2 || insts[0].Op != llir.OpCall || insts[0].Callee != "k.body" || insts[1].Op != llir.OpRet {
		t.Errorf("wrapper body = %+v, want [call k.body, ret]", insts)
	}
	for _, p := range wrapper.Params {
		if !p.HasAttr(llir.ParamAttrNoUndef) {
			t.Errorf("wrapper param missing noundef")
		}
	}
}

// Scenario B: a two-parameter integer add function has exactly an add
// and a ret of its result.
func TestIntegerAdd(t *testing.T) {
	records := []spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
		rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical32), uint32(spirv.MemoryModelOpenCL)),
		recStr(spirv.OpName, []uint32{20}, "addi"),
		rec(spirv.OpTypeInt, 1, 32, 0),
		rec(spirv.OpTypeFunction, 2, 1, 1, 1),
		rec(spirv.OpFunction, 1, 20, 0, 2),
		rec(spirv.OpFunctionParameter, 1, 21),
		rec(spirv.OpFunctionParameter, 1, 22),
		rec(spirv.OpLabel, 23),
		rec(spirv.OpIAdd, 1, 24, 21, 22),
		rec(spirv.OpReturnValue, 24),
		rec(spirv.OpFunctionEnd),
	}
	mod, _ := translate(t, records, nil)

	fn := findFunction(t, mod, "addi")
	if len(fn.Blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(fn.Blocks))
	}
	insts := fn.Blocks[0].Insts
	if len(insts) != 2 {
		t.Fatalf("instructions = %d, want add + ret", len(insts))
	}
	add := insts[0]
	if add.Op != llir.OpAdd {
		t.Fatalf("first inst op = %v, want add", add.Op)
	}
	if add.Operands[0] != fn.Params[0].Value || add.Operands[1] != fn.Params[1].Value {
		t.Errorf("add operands %v do not match the parameters %v, %v",
			add.Operands, fn.Params[0].Value, fn.Params[1].Value)
	}
	if insts[1].Op != llir.OpRetValue || insts[1].Operands[0] != add.Result {
		t.Errorf("second inst = %+v, want ret of the add result", insts[1])
	}
}

// Scenario C: a call to a not-yet-defined function goes through a
// placeholder that is deleted once the real definition lands, leaving
// exactly one call to the real symbol.
func TestForwardFunctionReference(t *testing.T) {
	records := []spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
		rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)),
		recStr(spirv.OpName, []uint32{30}, "g"),
		recStr(spirv.OpName, []uint32{40}, "h"),
		rec(spirv.OpTypeInt, 1, 32, 0),
		rec(spirv.OpTypeFunction, 2, 1, 1),
		// g calls h before h is defined.
		rec(spirv.OpFunction, 1, 30, 0, 2),
		rec(spirv.OpFunctionParameter, 1, 31),
		rec(spirv.OpLabel, 32),
		rec(spirv.OpFunctionCall, 1, 33, 40, 31),
		rec(spirv.OpReturnValue, 33),
		rec(spirv.OpFunctionEnd),
		rec(spirv.OpFunction, 1, 40, 0, 2),
		rec(spirv.OpFunctionParameter, 1, 41),
		rec(spirv.OpLabel, 42),
		rec(spirv.OpReturnValue, 41),
		rec(spirv.OpFunctionEnd),
	}
	mod, _ := translate(t, records, nil)

	g := findFunction(t, mod, "g")
	calls := 0
	for _, blk := range g.Blocks {
		for _, inst := range blk.Insts {
			if inst.Op == llir.OpCall {
				calls++
				if inst.Callee != "h" {
					t.Errorf("call targets %q, want h", inst.Callee)
				}
			}
		}
	}
	if calls != 1 {
		t.Errorf("calls in g = %d, want exactly 1", calls)
	}
	for i := range mod.Functions {
		f := &mod.Functions[i]
		if !f.Dead && f.Name == "spv.fwd.40" {
			t.Errorf("placeholder survived translation")
		}
	}
}

// Scenario D: an OpSpecConstant uses the provider's override when one is
// supplied for its SpecId, and the module default otherwise.
func TestSpecConstantOverride(t *testing.T) {
	build := func() []spirv.OpcodeRecord {
		return []spirv.OpcodeRecord{
			rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
			rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)),
			rec(spirv.OpDecorate, 3, uint32(spirv.DecorationSpecId), 42),
			rec(spirv.OpTypeInt, 1, 32, 0),
			rec(spirv.OpSpecConstant, 1, 3, 7),
		}
	}

	hasSpecWithValue := func(mod *llir.Module, want uint64) bool {
		for _, c := range mod.Constants {
			if sc, ok := c.Value.(llir.SpecConst); ok {
				if ic, ok := sc.Inner.(llir.IntConst); ok && ic.Bits == want {
					return true
				}
			}
		}
		return false
	}

	mod, _ := translate(t, build(), device.StaticSpecInfo{42: 0x2A})
	if !hasSpecWithValue(mod, 42) {
		t.Errorf("overridden spec constant 42 not found")
	}

	mod, _ = translate(t, build(), nil)
	if !hasSpecWithValue(mod, 7) {
		t.Errorf("default spec constant 7 not found")
	}
}

func addIntFunction(records []spirv.OpcodeRecord, body ...spirv.OpcodeRecord) []spirv.OpcodeRecord {
	records = append(records,
		rec(spirv.OpTypeVoid, 1),
		rec(spirv.OpTypeFunction, 2, 1),
	)
	records = append(records,
		rec(spirv.OpFunction, 1, 50, 0, 2),
		rec(spirv.OpLabel, 51),
	)
	records = append(records, body...)
	records = append(records,
		rec(spirv.OpReturn),
		rec(spirv.OpFunctionEnd),
	)
	return records
}

// Scenario E: a constant Subgroup execution scope emits the subgroup
// barrier directly, tagged nomerge+noduplicate, with no wrapper.
func TestControlBarrierConstantScope(t *testing.T) {
	records := kernelPrelude()
	records = append(records,
		rec(spirv.OpTypeInt, 3, 32, 0),
		rec(spirv.OpConstant, 3, 4, uint32(spirv.ScopeSubgroup)),
		rec(spirv.OpConstant, 3, 5, uint32(spirv.ScopeWorkgroup)),
		rec(spirv.OpConstant, 3, 6, 0x10),
	)
	records = addIntFunction(records,
		rec(spirv.OpControlBarrier, 4, 5, 6),
	)
	mod, _ := translate(t, records, nil)

	for i := range mod.Functions {
		if mod.Functions[i].Name == "barrier_wrapper" {
			t.Fatalf("barrier wrapper created for a constant scope")
		}
	}
	fn := findFunction(t, mod, "spv.fn.50")
	var barrierCalls int
	for _, inst := range fn.Blocks[0].Insts {
		if inst.Op == llir.OpCall && inst.Callee == "__mux_sub_group_barrier" {
			barrierCalls++
			attrs := map[llir.CallAttr]bool{}
			for _, a := range inst.CallAttrs {
				attrs[a] = true
			}
			if !attrs[llir.CallAttrNoMerge] || !attrs[llir.CallAttrNoDuplicate] {
				t.Errorf("barrier call attrs = %v, want nomerge+noduplicate", inst.CallAttrs)
			}
		}
	}
	if barrierCalls != 1 {
		t.Errorf("subgroup barrier calls = %d, want 1", barrierCalls)
	}
}

// Scenario F: a non-constant scope routes through the synthesized
// wrapper, which is alwaysinline+convergent and contains both barriers.
func TestControlBarrierDynamicScope(t *testing.T) {
	records := kernelPrelude()
	records = append(records,
		rec(spirv.OpTypeInt, 3, 32, 0),
		rec(spirv.OpTypePointer, 7, uint32(spirv.StorageClassWorkgroup), 3),
		rec(spirv.OpConstant, 3, 5, uint32(spirv.ScopeWorkgroup)),
		rec(spirv.OpConstant, 3, 6, 0x10),
	)
	records = append(records,
		rec(spirv.OpTypeVoid, 1),
		rec(spirv.OpTypeFunction, 2, 1),
	)
	records = append(records,
		rec(spirv.OpVariable, 7, 8, uint32(spirv.StorageClassWorkgroup)),
		rec(spirv.OpFunction, 1, 50, 0, 2),
		rec(spirv.OpLabel, 51),
		rec(spirv.OpLoad, 3, 9, 8),
		rec(spirv.OpControlBarrier, 9, 5, 6),
		rec(spirv.OpControlBarrier, 9, 5, 6),
		rec(spirv.OpReturn),
		rec(spirv.OpFunctionEnd),
	)
	mod, _ := translate(t, records, nil)

	wrapper := findFunction(t, mod, "barrier_wrapper")
	if !wrapper.HasAttr(llir.FuncAttrAlwaysInline) || !wrapper.HasAttr(llir.FuncAttrConvergent) {
		t.Errorf("wrapper attrs = %v, want alwaysinline+convergent", wrapper.Attrs)
	}
	var sub, work int
	for _, blk := range wrapper.Blocks {
		for _, inst := range blk.Insts {
			if inst.Op != llir.OpCall {
				continue
			}
			attrs := map[llir.CallAttr]bool{}
			for _, a := range inst.CallAttrs {
				attrs[a] = true
			}
			switch inst.Callee {
			case "__mux_sub_group_barrier":
				sub++
			case "__mux_work_group_barrier":
				work++
			default:
				continue
			}
			if !attrs[llir.CallAttrNoMerge] || !attrs[llir.CallAttrNoDuplicate] {
				t.Errorf("%s attrs = %v, want nomerge+noduplicate", inst.Callee, inst.CallAttrs)
			}
		}
	}
	if sub != 1 || work != 1 {
		t.Errorf("wrapper barrier calls sub=%d work=%d, want 1 each", sub, work)
	}

	// Only one wrapper despite two barrier sites.
	wrappers := 0
	for i := range mod.Functions {
		if !mod.Functions[i].Dead && mod.Functions[i].Name == "barrier_wrapper" {
			wrappers++
		}
	}
	if wrappers != 1 {
		t.Errorf("barrier wrappers = %d, want 1", wrappers)
	}

	fn := findFunction(t, mod, "spv.fn.50")
	calls := 0
	for _, inst := range fn.Blocks[0].Insts {
		if inst.Op == llir.OpCall && inst.Callee == "barrier_wrapper" {
			calls++
		}
	}
	if calls != 2 {
		t.Errorf("wrapper call sites = %d, want 2", calls)
	}
}

func TestDataLayoutSelection(t *testing.T) {
	for _, tc := range []struct {
		bits uint32
		want string
	}{
		{32, "e-p:32:32-i64:64-v16:16-v24:32-v32:32-v48:64-v96:128-v192:256-v256:256-v512:512-v1024:1024-n8:16:32:64"},
		{64, "e-i64:64-v16:16-v24:32-v32:32-v48:64-v96:128-v192:256-v256:256-v512:512-v1024:1024-n8:16:32:64"},
	} {
		tr := New(device.DeviceDescriptor{AddressBits: tc.bits}, nil)
		mod, err := tr.Translate([]spirv.OpcodeRecord{
			rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
			rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelLogical), uint32(spirv.MemoryModelOpenCL)),
		})
		if err != nil {
			t.Fatalf("bits=%d: %v", tc.bits, err)
		}
		if mod.DataLayout != tc.want {
			t.Errorf("bits=%d data layout = %q, want %q", tc.bits, mod.DataLayout, tc.want)
		}
		if mod.TargetTriple != "unknown-unknown-unknown" {
			t.Errorf("target triple = %q", mod.TargetTriple)
		}
	}
}

func TestUnsupportedCapability(t *testing.T) {
	tr := New(device.DeviceDescriptor{AddressBits: 64}, nil)
	_, err := tr.Translate([]spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityShader)),
	})
	if err == nil {
		t.Fatal("Shader capability accepted")
	}
	if kind := errKind(t, err); kind != spirv.UnsupportedCapability {
		t.Errorf("error kind = %v, want UnsupportedCapability", kind)
	}
}

func TestUnknownExtInstSet(t *testing.T) {
	tr := New(device.DeviceDescriptor{AddressBits: 64}, nil)
	_, err := tr.Translate([]spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
		recStr(spirv.OpExtInstImport, []uint32{4}, "GLSL.std.450"),
	})
	if err == nil {
		t.Fatal("unknown ext-inst set accepted")
	}
	if kind := errKind(t, err); kind != spirv.UnsupportedExtInstSet {
		t.Errorf("error kind = %v, want UnsupportedExtInstSet", kind)
	}
}

// Integer widths 8, 16, 32 and 64 all survive an arithmetic round trip.
func TestIntWidthsArithmetic(t *testing.T) {
	for _, width := range []uint32{8, 16, 32, 64} {
		records := []spirv.OpcodeRecord{
			rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
			rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)),
			rec(spirv.OpTypeInt, 1, width, 0),
			rec(spirv.OpTypeFunction, 2, 1, 1),
			rec(spirv.OpFunction, 1, 20, 0, 2),
			rec(spirv.OpFunctionParameter, 1, 21),
			rec(spirv.OpLabel, 22),
			rec(spirv.OpIMul, 1, 23, 21, 21),
			rec(spirv.OpISub, 1, 24, 23, 21),
			rec(spirv.OpReturnValue, 24),
			rec(spirv.OpFunctionEnd),
		}
		mod, _ := translate(t, records, nil)
		fn := findFunction(t, mod, "spv.fn.20")
		ty := mod.Type(fn.Params[0].Type)
		it, ok := ty.Inner.(llir.IntType)
		if !ok || it.Width != uint8(width) {
			t.Errorf("width %d: param type = %#v", width, ty.Inner)
		}
		if got := len(fn.Blocks[0].Insts); got != 3 {
			t.Errorf("width %d: insts = %d, want mul+sub+ret", width, got)
		}
	}
}

func TestLocalSizeOneOneOne(t *testing.T) {
	records := kernelPrelude()
	records = append(records,
		recStr(spirv.OpEntryPoint, []uint32{uint32(spirv.ExecutionModelKernel), 10}, "unit"),
		rec(spirv.OpExecutionMode, 10, uint32(spirv.ExecutionModeLocalSize), 1, 1, 1),
		rec(spirv.OpTypeVoid, 1),
		rec(spirv.OpTypeFunction, 2, 1),
		rec(spirv.OpFunction, 1, 10, 0, 2),
		rec(spirv.OpLabel, 11),
		rec(spirv.OpReturn),
		rec(spirv.OpFunctionEnd),
	)
	mod, _ := translate(t, records, nil)
	wrapper := findFunction(t, mod, "unit")
	if !wrapper.HasWorkgroupSize || wrapper.WorkgroupSize != [3]uint32{1, 1, 1} {
		t.Errorf("reqd_work_group_size = %v, want [1 1 1]", wrapper.WorkgroupSize)
	}
}

// VecTypeHint data-type code 5 with component count 4 decodes to a
// 4-lane float vector.
func TestVecTypeHintFloat4(t *testing.T) {
	records := kernelPrelude()
	records = append(records,
		recStr(spirv.OpEntryPoint, []uint32{uint32(spirv.ExecutionModelKernel), 10}, "hinted"),
		rec(spirv.OpExecutionMode, 10, uint32(spirv.ExecutionModeVecTypeHint), 5|4<<16),
		rec(spirv.OpTypeVoid, 1),
		rec(spirv.OpTypeFunction, 2, 1),
		rec(spirv.OpFunction, 1, 10, 0, 2),
		rec(spirv.OpLabel, 11),
		rec(spirv.OpReturn),
		rec(spirv.OpFunctionEnd),
	)
	mod, _ := translate(t, records, nil)
	wrapper := findFunction(t, mod, "hinted")
	if !wrapper.HasVecTypeHint {
		t.Fatal("vec_type_hint missing")
	}
	vt, ok := mod.Type(wrapper.VecTypeHint).Inner.(llir.VectorType)
	if !ok || vt.Count != 4 {
		t.Fatalf("hint type = %#v, want 4-lane vector", mod.Type(wrapper.VecTypeHint).Inner)
	}
	ft, ok := mod.Type(vt.Elem).Inner.(llir.FloatType)
	if !ok || ft.Width != 32 {
		t.Errorf("hint element = %#v, want float", mod.Type(vt.Elem).Inner)
	}
}

// OpLine attaches a location to instructions emitted inside the range;
// instructions after OpNoLine carry none.
func TestLineRangeAttachment(t *testing.T) {
	records := []spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
		rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)),
	}
	records = append(records,
		recStr(spirv.OpString, []uint32{5}, "kernel.cl"),
		rec(spirv.OpTypeInt, 1, 32, 0),
		rec(spirv.OpTypeFunction, 2, 1, 1),
		rec(spirv.OpFunction, 1, 20, 0, 2),
		rec(spirv.OpFunctionParameter, 1, 21),
		rec(spirv.OpLabel, 22),
		rec(spirv.OpLine, 5, 12, 3),
		rec(spirv.OpIAdd, 1, 23, 21, 21),
		rec(spirv.OpNoLine),
		rec(spirv.OpIMul, 1, 24, 23, 21),
		rec(spirv.OpReturnValue, 24),
		rec(spirv.OpFunctionEnd),
	)
	mod, _ := translate(t, records, nil)
	fn := findFunction(t, mod, "spv.fn.20")
	insts := fn.Blocks[0].Insts
	if !insts[0].HasLoc {
		t.Errorf("add inside OpLine range has no location")
	}
	if insts[1].HasLoc {
		t.Errorf("mul after OpNoLine unexpectedly has a location")
	}
}

// A module whose only debug content is OpSource/OpLine/OpNoLine dumps
// identically to the same module without them.
func TestDebugOnlyOpsAreIRNeutral(t *testing.T) {
	base := []spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
		rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)),
		rec(spirv.OpTypeVoid, 1),
	}
	withDebug := append([]spirv.OpcodeRecord{}, base[:2]...)
	withDebug = append(withDebug,
		recStr(spirv.OpString, []uint32{5}, "kernel.cl"),
		rec(spirv.OpSource, uint32(spirv.SourceLanguageOpenCLC), 300, 5),
		rec(spirv.OpLine, 5, 1, 1),
		rec(spirv.OpNoLine),
		base[2],
	)

	modA, _ := translate(t, base, nil)
	modB, _ := translate(t, withDebug, nil)
	if modA.Dump() != modB.Dump() {
		t.Errorf("debug-only opcodes changed the IR:\n--- without ---\n%s\n--- with ---\n%s", modA.Dump(), modB.Dump())
	}
}

// Switch literals on a 64-bit selector consume two words each.
func TestSwitchWideLiterals(t *testing.T) {
	records := []spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
		rec(spirv.OpCapability, uint32(spirv.CapabilityInt64)),
		rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)),
		rec(spirv.OpTypeVoid, 1),
		rec(spirv.OpTypeInt, 3, 64, 0),
		rec(spirv.OpTypeFunction, 2, 1, 3),
		rec(spirv.OpFunction, 1, 20, 0, 2),
		rec(spirv.OpFunctionParameter, 3, 21),
		rec(spirv.OpLabel, 22),
		// case 0x1_00000002 -> %25, default %24
		rec(spirv.OpSwitch, 21, 24, 2, 1, 25),
		rec(spirv.OpLabel, 24),
		rec(spirv.OpReturn),
		rec(spirv.OpLabel, 25),
		rec(spirv.OpReturn),
		rec(spirv.OpFunctionEnd),
	}
	mod, _ := translate(t, records, nil)
	fn := findFunction(t, mod, "spv.fn.20")
	var sw *llir.Instruction
	for bi := range fn.Blocks {
		for ii := range fn.Blocks[bi].Insts {
			if fn.Blocks[bi].Insts[ii].Op == llir.OpSwitch {
				sw = &fn.Blocks[bi].Insts[ii]
			}
		}
	}
	if sw == nil {
		t.Fatal("switch not emitted")
	}
	if len(sw.Cases) != 1 || sw.Cases[0].Literal != 1<<32|2 {
		t.Errorf("switch cases = %+v, want one case with literal 0x100000002", sw.Cases)
	}
}

// Two reductions over the same (operation, op, type) share one wrapper.
func TestGroupReductionWrapperCache(t *testing.T) {
	records := []spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
		rec(spirv.OpCapability, uint32(spirv.CapabilityGroups)),
		rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)),
		rec(spirv.OpTypeInt, 3, 32, 0),
		rec(spirv.OpConstant, 3, 4, uint32(spirv.ScopeWorkgroup)),
		rec(spirv.OpConstant, 3, 5, 9),
		rec(spirv.OpTypeVoid, 1),
		rec(spirv.OpTypeFunction, 2, 1),
		rec(spirv.OpFunction, 1, 50, 0, 2),
		rec(spirv.OpLabel, 51),
		rec(spirv.OpGroupIAdd, 3, 52, 4, uint32(spirv.GroupOperationReduce), 5),
		rec(spirv.OpGroupIAdd, 3, 53, 4, uint32(spirv.GroupOperationReduce), 52),
		rec(spirv.OpReturn),
		rec(spirv.OpFunctionEnd),
	}
	mod, _ := translate(t, records, nil)
	wrappers := 0
	for i := range mod.Functions {
		f := &mod.Functions[i]
		if !f.Dead && f.Name == "group_reduce_add_i32" {
			wrappers++
			if !f.HasAttr(llir.FuncAttrAlwaysInline) || !f.HasAttr(llir.FuncAttrConvergent) {
				t.Errorf("reduction wrapper attrs = %v", f.Attrs)
			}
		}
	}
	if wrappers != 1 {
		t.Errorf("reduction wrappers = %d, want 1", wrappers)
	}
}

// Phi edges are populated in the second pass once predecessors exist.
func TestPhiPopulation(t *testing.T) {
	records := []spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
		rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)),
		rec(spirv.OpTypeBool, 6),
		rec(spirv.OpConstantTrue, 6, 7),
		rec(spirv.OpTypeInt, 3, 32, 0),
		rec(spirv.OpConstant, 3, 4, 1),
		rec(spirv.OpConstant, 3, 5, 2),
		rec(spirv.OpTypeFunction, 2, 3),
		rec(spirv.OpFunction, 3, 20, 0, 2),
		rec(spirv.OpLabel, 21),
		rec(spirv.OpBranchConditional, 7, 22, 23),
		rec(spirv.OpLabel, 22),
		rec(spirv.OpBranch, 24),
		rec(spirv.OpLabel, 23),
		rec(spirv.OpBranch, 24),
		rec(spirv.OpLabel, 24),
		rec(spirv.OpPhi, 3, 25, 4, 22, 5, 23),
		rec(spirv.OpReturnValue, 25),
		rec(spirv.OpFunctionEnd),
	}
	mod, _ := translate(t, records, nil)
	fn := findFunction(t, mod, "spv.fn.20")
	var phi *llir.Instruction
	for bi := range fn.Blocks {
		for ii := range fn.Blocks[bi].Insts {
			if fn.Blocks[bi].Insts[ii].Op == llir.OpPhi {
				phi = &fn.Blocks[bi].Insts[ii]
			}
		}
	}
	if phi == nil {
		t.Fatal("phi not emitted")
	}
	if len(phi.Incoming) != 2 {
		t.Fatalf("phi incoming = %d, want 2", len(phi.Incoming))
	}
}

// A forward pointer that is never completed by OpTypePointer fails with
// ForwardReferenceUnresolved.
func TestUnresolvedForwardPointer(t *testing.T) {
	tr := New(device.DeviceDescriptor{AddressBits: 64}, nil)
	_, err := tr.Translate([]spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
		rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)),
		rec(spirv.OpTypeForwardPointer, 9, uint32(spirv.StorageClassCrossWorkgroup)),
	})
	if err == nil {
		t.Fatal("unresolved forward pointer accepted")
	}
	if kind := errKind(t, err); kind != spirv.ForwardReferenceUnresolved {
		t.Errorf("error kind = %v, want ForwardReferenceUnresolved", kind)
	}
}

// A self-referential struct built through OpTypeForwardPointer resolves
// once the pointer's defining OpTypePointer lands.
func TestForwardPointerStruct(t *testing.T) {
	records := []spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
		rec(spirv.OpCapability, uint32(spirv.CapabilityAddresses)),
		rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)),
		recStr(spirv.OpName, []uint32{10}, "node"),
		rec(spirv.OpTypeForwardPointer, 9, uint32(spirv.StorageClassCrossWorkgroup)),
		rec(spirv.OpTypeInt, 3, 32, 0),
		rec(spirv.OpTypeStruct, 10, 3, 9),
		rec(spirv.OpTypePointer, 9, uint32(spirv.StorageClassCrossWorkgroup), 10),
	}
	mod, tr := translate(t, records, nil)

	b, ok := tr.state.lookup(10)
	if !ok || !b.HasType {
		t.Fatal("struct id not bound")
	}
	st, ok := mod.Type(b.Type).Inner.(llir.StructType)
	if !ok {
		t.Fatalf("id 10 is %#v, not a struct", mod.Type(b.Type).Inner)
	}
	if st.Incomplete || len(st.Members) != 2 {
		t.Fatalf("struct = %+v, want 2 resolved members", st)
	}
	ptr, ok := mod.Type(st.Members[1]).Inner.(llir.PointerType)
	if !ok || ptr.Incomplete {
		t.Fatalf("second member = %#v, want completed pointer", mod.Type(st.Members[1]).Inner)
	}
	if ptr.Pointee != b.Type {
		t.Errorf("pointer points at type %d, want the struct itself (%d)", ptr.Pointee, b.Type)
	}
}

// An OpenCL.std call mangles from the operand's real type as resolved
// by the dispatch core: sqrt on a double emits _Z4sqrtd, not the f32
// encoding.
func TestExtInstManglesOperandTypes(t *testing.T) {
	records := []spirv.OpcodeRecord{
		rec(spirv.OpCapability, uint32(spirv.CapabilityKernel)),
		rec(spirv.OpCapability, uint32(spirv.CapabilityFloat64)),
		rec(spirv.OpMemoryModel, uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)),
		recStr(spirv.OpExtInstImport, []uint32{4}, "OpenCL.std"),
		rec(spirv.OpTypeFloat, 1, 64),
		rec(spirv.OpTypeFunction, 2, 1, 1),
		rec(spirv.OpFunction, 1, 20, 0, 2),
		rec(spirv.OpFunctionParameter, 1, 21),
		rec(spirv.OpLabel, 22),
		// OpenCL.std 66 = sqrt.
		rec(spirv.OpExtInst, 1, 23, 4, 66, 21),
		rec(spirv.OpReturnValue, 23),
		rec(spirv.OpFunctionEnd),
	}
	mod, _ := translate(t, records, nil)
	fn := findFunction(t, mod, "spv.fn.20")
	var call *llir.Instruction
	for ii := range fn.Blocks[0].Insts {
		if fn.Blocks[0].Insts[ii].Op == llir.OpCallExt {
			call = &fn.Blocks[0].Insts[ii]
		}
	}
	if call == nil {
		t.Fatal("ext call not emitted")
	}
	if call.Callee != "_Z4sqrtd" {
		t.Errorf("callee = %q, want _Z4sqrtd", call.Callee)
	}
	if call.Operands[0] != fn.Params[0].Value {
		t.Errorf("call operand %v does not match the parameter %v", call.Operands[0], fn.Params[0].Value)
	}
}
