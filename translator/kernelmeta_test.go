package translator

import (
	"testing"

	"github.com/oneapi-go/spirv-ll/device"
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// The six kernel_arg_* fields exist per formal and derive their naming
// from the SPIR-V type graph, not the IR types.
func TestKernelArgMetadata(t *testing.T) {
	records := kernelPrelude()
	records = append(records,
		recStr(spirv.OpEntryPoint, []uint32{uint32(spirv.ExecutionModelKernel), 10}, "copy"),
		recStr(spirv.OpName, []uint32{21}, "in"),
		recStr(spirv.OpName, []uint32{22}, "n"),
		rec(spirv.OpTypeVoid, 1),
		rec(spirv.OpTypeInt, 3, 32, 0),
		rec(spirv.OpTypeVector, 4, 3, 4),
		rec(spirv.OpTypePointer, 5, uint32(spirv.StorageClassCrossWorkgroup), 4),
		rec(spirv.OpTypeFunction, 2, 1, 5, 3),
		rec(spirv.OpFunction, 1, 10, 0, 2),
		rec(spirv.OpFunctionParameter, 5, 21),
		rec(spirv.OpFunctionParameter, 3, 22),
		rec(spirv.OpLabel, 11),
		rec(spirv.OpReturn),
		rec(spirv.OpFunctionEnd),
	)
	mod, _ := translate(t, records, nil)

	wrapper := findFunction(t, mod, "copy")
	if len(wrapper.KernelArgs) != len(wrapper.Params) || len(wrapper.KernelArgs) != 2 {
		t.Fatalf("kernel args = %d entries for %d params", len(wrapper.KernelArgs), len(wrapper.Params))
	}

	in := wrapper.KernelArgs[0]
	if in.AddrSpace != llir.AddressSpaceCrossWorkgroup {
		t.Errorf("arg 0 addrspace = %d, want 1", in.AddrSpace)
	}
	if in.TypeName != "uint4*" {
		t.Errorf("arg 0 type = %q, want uint4*", in.TypeName)
	}
	if in.BaseTypeName != "uint __ext_vector(4)*" {
		t.Errorf("arg 0 base type = %q, want uint __ext_vector(4)*", in.BaseTypeName)
	}
	if in.ArgName != "in" {
		t.Errorf("arg 0 name = %q, want in", in.ArgName)
	}
	if in.AccessQual != "none" || in.TypeQual != "" {
		t.Errorf("arg 0 quals = %q/%q, want none/empty", in.AccessQual, in.TypeQual)
	}

	n := wrapper.KernelArgs[1]
	if n.AddrSpace != 0 || n.TypeName != "uint" || n.ArgName != "n" {
		t.Errorf("arg 1 = %+v, want addrspace 0, type uint, name n", n)
	}
}

// FuncParamAttr decorations land on the body formals and mismatched
// shapes are rejected.
func TestFuncParamAttrValidation(t *testing.T) {
	base := func(attr uint32, paramTy uint32) []spirv.OpcodeRecord {
		records := kernelPrelude()
		return append(records,
			rec(spirv.OpDecorate, 21, uint32(spirv.DecorationFuncParamAttr), attr),
			rec(spirv.OpTypeInt, 3, 32, 1),
			rec(spirv.OpTypePointer, 5, uint32(spirv.StorageClassCrossWorkgroup), 3),
			rec(spirv.OpTypeFunction, 2, 3, paramTy),
			rec(spirv.OpFunction, 3, 20, 0, 2),
			rec(spirv.OpFunctionParameter, paramTy, 21),
			rec(spirv.OpLabel, 22),
			rec(spirv.OpReturnValue, 21),
			rec(spirv.OpFunctionEnd),
		)
	}

	mod, _ := translate(t, base(uint32(spirv.FuncParamAttrSext), 3), nil)
	fn := findFunction(t, mod, "spv.fn.20")
	if !fn.Params[0].HasAttr(llir.ParamAttrSext) {
		t.Errorf("Sext not applied to integer param")
	}

	tr := New(device.DeviceDescriptor{AddressBits: 64}, nil)
	_, err := tr.Translate(base(uint32(spirv.FuncParamAttrByVal), 3))
	if err == nil {
		t.Fatal("ByVal on an integer param accepted")
	}
	if kind := errKind(t, err); kind != spirv.InvalidFunctionParameterAttribute {
		t.Errorf("error kind = %v, want InvalidFunctionParameterAttribute", kind)
	}
}
