package spirvbin_test

import (
	"testing"

	"github.com/oneapi-go/spirv-ll/spirv"
	"github.com/oneapi-go/spirv-ll/spirvbin"
)

// buildEmptyKernel constructs scenario A from spec.md §8: a single
// OpenCL kernel entry point with no parameters and an empty body.
func buildEmptyKernel() []byte {
	b := spirv.NewModuleBuilder(spirv.Version1_0)
	b.AddCapability(spirv.CapabilityAddresses)
	b.AddCapability(spirv.CapabilityKernel)
	b.SetMemoryModel(spirv.AddressingModelPhysical64, spirv.MemoryModelOpenCL)

	voidTy := b.AddTypeVoid()
	fnTy := b.AddTypeFunction(voidTy)

	fn := b.AddFunction(fnTy, voidTy, spirv.FunctionControlNone)
	b.AddEntryPoint(spirv.ExecutionModelKernel, fn, "empty", nil)
	b.AddLabel()
	b.AddReturn()
	b.AddFunctionEnd()

	return b.Build()
}

func TestReaderDecodesHeader(t *testing.T) {
	data := buildEmptyKernel()
	r, err := spirvbin.NewReader(data)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.Header.Version != spirv.Version1_0 {
		t.Fatalf("version = %v, want 1.0", r.Header.Version)
	}
	if r.Header.Bound == 0 {
		t.Fatalf("bound must be nonzero")
	}
}

func TestReaderWalksEveryInstruction(t *testing.T) {
	data := buildEmptyKernel()
	r, err := spirvbin.NewReader(data)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	wantOps := []spirv.Opcode{
		spirv.OpCapability, spirv.OpCapability, spirv.OpMemoryModel,
		spirv.OpEntryPoint,
		spirv.OpTypeVoid, spirv.OpTypeFunction,
		spirv.OpFunction, spirv.OpLabel, spirv.OpReturn, spirv.OpFunctionEnd,
	}
	if len(records) != len(wantOps) {
		t.Fatalf("got %d records, want %d", len(records), len(wantOps))
	}
	for i, want := range wantOps {
		if records[i].Op != want {
			t.Errorf("record %d: op = %s, want %s", i, records[i].Op, want)
		}
	}
}

func TestReaderRejectsBadMagic(t *testing.T) {
	data := buildEmptyKernel()
	data[0] ^= 0xFF
	if _, err := spirvbin.NewReader(data); err == nil {
		t.Fatalf("expected an error for a corrupted magic number")
	}
}

func TestReaderRejectsTruncatedInstruction(t *testing.T) {
	data := buildEmptyKernel()
	r, err := spirvbin.NewReader(data[:len(data)-2])
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if _, err := r.ReadAll(); err == nil {
		t.Fatalf("expected an error for a truncated trailing instruction")
	}
}
