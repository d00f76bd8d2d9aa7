package translator

import (
	"fmt"
	"strings"

	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// synthesizeKernelArgMetadata fills the six kernel_arg_* arrays on a
// kernel wrapper at OpFunctionEnd (spec.md §4.1.4): addr_space,
// access_qual, type, base_type, type_qual, name, one entry per formal.
func (t *Translator) synthesizeKernelArgMetadata(body, wrapper llir.FuncHandle) error {
	paramTyIDs := t.state.paramTypeIDs[t.currentFuncTypeID]
	n := t.builder.NumParams(wrapper)
	infos := make([]llir.KernelArgInfo, n)

	for i := 0; i < n; i++ {
		var info llir.KernelArgInfo
		info.AccessQual = "none"
		info.TypeQual = ""

		if i < len(paramTyIDs) {
			tyID := paramTyIDs[i]
			info.TypeName, info.BaseTypeName = t.spvTypeNames(tyID)
			if rec, ok := t.typeRecord(tyID); ok {
				switch rec.Op {
				case spirv.OpTypePointer:
					as, err := t.addressSpaceOf(spirv.StorageClass(rec.MustWord(1)))
					if err == nil {
						info.AddrSpace = as
					}
				case spirv.OpTypeImage:
					if rec.Len() > 8 {
						info.AccessQual = spirv.AccessQualifier(rec.MustWord(8)).String()
					} else {
						info.AccessQual = "read_only"
					}
				}
			}
		}

		p := t.builder.Param(body, i)
		info.ArgName = p.Name

		// Keep the wrapper's parameter names in sync so a consumer
		// reading either function sees the same argument spelling.
		wp := t.builder.Param(wrapper, i)
		wp.Name = p.Name
		t.builder.SetParam(wrapper, i, wp)

		infos[i] = info
	}
	t.builder.SetKernelArgs(wrapper, infos)
	return nil
}

// spvTypeNames derives the kernel_arg_type / kernel_arg_base_type
// spellings by walking the SPIR-V type graph (spec.md §4.1.4's naming
// rules), which preserves signedness the IR type system would keep but
// the metadata strings must spell out.
func (t *Translator) spvTypeNames(id spirv.SpvId) (string, string) {
	rec, ok := t.typeRecord(id)
	if !ok {
		return "void", "void"
	}
	switch rec.Op {
	case spirv.OpTypeVoid:
		return "void", "void"
	case spirv.OpTypeBool:
		return "bool", "bool"
	case spirv.OpTypeInt:
		name := openclIntName(uint8(rec.MustWord(1)), rec.MustWord(2) == 1)
		return name, name
	case spirv.OpTypeFloat:
		var name string
		switch rec.MustWord(1) {
		case 16:
			name = "half"
		case 64:
			name = "double"
		default:
			name = "float"
		}
		return name, name
	case spirv.OpTypeVector:
		elem, _ := t.spvTypeNames(rec.Id(1))
		n := rec.MustWord(2)
		return fmt.Sprintf("%s%d", elem, n), fmt.Sprintf("%s __ext_vector(%d)", elem, n)
	case spirv.OpTypePointer:
		base, baseBase := t.spvTypeNames(rec.Id(2))
		return base + "*", baseBase + "*"
	case spirv.OpTypeArray, spirv.OpTypeRuntimeArray:
		return "array", "array"
	case spirv.OpTypeStruct:
		name := t.state.names[rec.Id(0)]
		name = strings.ReplaceAll(name, ".", " ")
		if name == "" {
			name = "struct"
		}
		return name, name
	case spirv.OpTypeImage:
		name := imageTypeName(rec)
		return name, name
	case spirv.OpTypeEvent:
		return "event_t", "event_t"
	case spirv.OpTypeSampler:
		return "sampler_t", "sampler_t"
	case spirv.OpTypeOpaque:
		name, _ := rec.String(1)
		return name, name
	default:
		return "void", "void"
	}
}

func imageTypeName(rec spirv.OpcodeRecord) string {
	dim := spirv.Dim(rec.MustWord(2))
	arrayed := rec.MustWord(4) == 1
	switch {
	case dim == spirv.Dim1D && arrayed:
		return "image1d_array_t"
	case dim == spirv.Dim1D:
		return "image1d_t"
	case dim == spirv.Dim2D && arrayed:
		return "image2d_array_t"
	case dim == spirv.Dim2D:
		return "image2d_t"
	case dim == spirv.Dim3D:
		return "image3d_t"
	case dim == spirv.DimBuffer:
		return "image1d_buffer_t"
	default:
		return "image2d_t"
	}
}
