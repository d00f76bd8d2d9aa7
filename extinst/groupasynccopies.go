package extinst

import (
	"fmt"

	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/mangler"
)

// groupAsyncCopyInstrNames maps the Codeplay.GroupAsyncCopies vendor
// extended-instruction-set numbers to the builtin base name the core
// calls. The core OpGroupAsyncCopy/OpGroupWaitEvents opcodes (spec.md
// §4.1.8) cover the 1D case directly; this vendor set exists for the
// 2D/3D strided variants clCreateCommandQueue kernels written against
// newer SPIR-V use (image-style row/slice-pitch copies), which the
// Khronos core grammar never added. Grounded on the same numeric-table
// idiom as openCLStdHandler since no pack file implements a vendor
// async-copy set.
var groupAsyncCopyInstrNames = map[uint32]string{
	1: "async_work_group_strided_copy_2D2D",
	2: "async_work_group_strided_copy_3D3D",
}

type groupAsyncCopiesHandler struct{}

// Translate mangles each instruction from the argument shapes the
// dispatch core resolved: the destination/source pointer operands keep
// their address-space-qualified pointer encoding and the shape scalars
// their integer widths. Every instruction in this set returns an
// event_t handle, matching spec.md §4.1.8's rule for the whole
// OpGroupAsyncCopy family.
func (groupAsyncCopiesHandler) Translate(ctx *Context, instruction uint32, resultType llir.TypeHandle, args []llir.ValueHandle, argTypes []mangler.ArgType) (llir.ValueHandle, error) {
	base, ok := groupAsyncCopyInstrNames[instruction]
	if !ok {
		return 0, fmt.Errorf("unsupported Codeplay.GroupAsyncCopies instruction number %d", instruction)
	}
	if len(argTypes) != len(args) {
		return 0, fmt.Errorf("%s: %d argument types for %d arguments", base, len(argTypes), len(args))
	}
	return ctx.emit(resultType, true, base, argTypes, args), nil
}
