package spirvll_test

import (
	"testing"

	spirvll "github.com/oneapi-go/spirv-ll"
	"github.com/oneapi-go/spirv-ll/device"
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

func TestTranslateEndToEnd(t *testing.T) {
	b := spirv.NewModuleBuilder(spirv.Version1_2)
	b.AddCapability(spirv.CapabilityKernel)
	b.AddCapability(spirv.CapabilityAddresses)
	b.SetMemoryModel(spirv.AddressingModelPhysical64, spirv.MemoryModelOpenCL)

	void := b.AddTypeVoid()
	fnTy := b.AddTypeFunction(void)
	fn := b.AddFunction(fnTy, void, spirv.FunctionControlNone)
	b.AddEntryPoint(spirv.ExecutionModelKernel, fn, "noop", nil)
	b.AddExecutionMode(fn, spirv.ExecutionModeLocalSize, 8, 1, 1)
	b.AddLabel()
	b.AddReturn()
	b.AddFunctionEnd()

	result, err := spirvll.Translate(b.Build(), spirvll.Options{
		Device: device.DeviceDescriptor{AddressBits: 64},
	})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	var kernel *llir.Function
	for i := range result.Module.Functions {
		f := &result.Module.Functions[i]
		if !f.Dead && f.Conv == llir.CallSPIRKernel {
			kernel = f
		}
	}
	if kernel == nil {
		t.Fatal("no kernel function produced")
	}
	if kernel.Name != "noop" {
		t.Errorf("kernel name = %q, want noop", kernel.Name)
	}
	if !kernel.HasWorkgroupSize || kernel.WorkgroupSize != [3]uint32{8, 1, 1} {
		t.Errorf("reqd_work_group_size = %v, want [8 1 1]", kernel.WorkgroupSize)
	}
}

func TestTranslateRejectsBadMagic(t *testing.T) {
	if _, err := spirvll.Translate(make([]byte, 32), spirvll.DefaultOptions()); err == nil {
		t.Fatal("garbage input accepted")
	}
}
