// Golden snapshot tests for the translator: each case hand-builds a
// small binary SPIR-V module, translates it, and compares the textual
// IR dump to a golden file under testdata/golden/. Run with
// UPDATE_GOLDEN=1 to regenerate after intentional changes.
package snapshot_test

import (
	"path/filepath"
	"testing"

	spirvll "github.com/oneapi-go/spirv-ll"
	"github.com/oneapi-go/spirv-ll/device"
	"github.com/oneapi-go/spirv-ll/snapshot"
	"github.com/oneapi-go/spirv-ll/spirv"
)

type moduleCase struct {
	name  string
	build func() []byte
}

func TestSnapshots(t *testing.T) {
	cases := []moduleCase{
		{"empty_kernel", buildEmptyKernel},
		{"int_add", buildIntAdd},
		{"load_store", buildLoadStore},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := spirvll.Translate(tc.build(), spirvll.Options{
				Device: device.DeviceDescriptor{AddressBits: 64},
			})
			if err != nil {
				t.Fatalf("translate: %v", err)
			}
			snapshot.Compare(t, filepath.Join("testdata", "golden", tc.name+".ll"), result.Module.Dump())
		})
	}
}

func buildEmptyKernel() []byte {
	b := spirv.NewModuleBuilder(spirv.Version1_2)
	b.AddCapability(spirv.CapabilityKernel)
	b.AddCapability(spirv.CapabilityAddresses)
	b.SetMemoryModel(spirv.AddressingModelPhysical64, spirv.MemoryModelOpenCL)

	void := b.AddTypeVoid()
	fnTy := b.AddTypeFunction(void)
	fn := b.AddFunction(fnTy, void, spirv.FunctionControlNone)
	b.AddEntryPoint(spirv.ExecutionModelKernel, fn, "empty", nil)
	b.AddExecutionMode(fn, spirv.ExecutionModeLocalSize, 1, 1, 1)
	b.AddLabel()
	b.AddReturn()
	b.AddFunctionEnd()
	return b.Build()
}

func buildIntAdd() []byte {
	b := spirv.NewModuleBuilder(spirv.Version1_2)
	b.AddCapability(spirv.CapabilityKernel)
	b.SetMemoryModel(spirv.AddressingModelPhysical32, spirv.MemoryModelOpenCL)

	i32 := b.AddTypeInt(32, false)
	fnTy := b.AddTypeFunction(i32, i32, i32)
	fn := b.AddFunction(fnTy, i32, spirv.FunctionControlNone)
	b.AddName(fn, "addi")
	x := b.AddFunctionParameter(i32)
	y := b.AddFunctionParameter(i32)
	b.AddLabel()
	sum := b.AddBinaryOp(spirv.OpIAdd, i32, x, y)
	b.AddReturnValue(sum)
	b.AddFunctionEnd()
	return b.Build()
}

func buildLoadStore() []byte {
	b := spirv.NewModuleBuilder(spirv.Version1_2)
	b.AddCapability(spirv.CapabilityKernel)
	b.AddCapability(spirv.CapabilityAddresses)
	b.SetMemoryModel(spirv.AddressingModelPhysical64, spirv.MemoryModelOpenCL)

	void := b.AddTypeVoid()
	i32 := b.AddTypeInt(32, false)
	ptr := b.AddTypePointer(spirv.StorageClassCrossWorkgroup, i32)
	fnTy := b.AddTypeFunction(void, ptr)
	seven := b.AddConstant(i32, 7)
	fn := b.AddFunction(fnTy, void, spirv.FunctionControlNone)
	b.AddName(fn, "store7")
	p := b.AddFunctionParameter(ptr)
	b.AddLabel()
	b.AddStore(p, seven)
	_ = b.AddLoad(i32, p)
	b.AddReturn()
	b.AddFunctionEnd()
	return b.Build()
}
